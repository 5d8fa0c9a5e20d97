package models

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// City maps a lowercase city name to its two-letter state code
type City struct {
	Name  string `json:"name"`
	State string `json:"state"`
}

// CityDirectory is an immutable, ordered city -> state table.
// Iteration order is the order the entries were supplied in.
type CityDirectory struct {
	entries []City
	index   map[string]string
}

// DefaultCities returns the built-in directory entries
func DefaultCities() []City {
	return []City{
		{Name: "seattle", State: "WA"},
		{Name: "portland", State: "OR"},
	}
}

// NewCityDirectory builds a directory from the given entries.
// Names are canonicalized to lowercase; a repeated name keeps its first position
// and takes the last state given for it.
func NewCityDirectory(cities []City) *CityDirectory {
	d := &CityDirectory{
		entries: make([]City, 0, len(cities)),
		index:   make(map[string]string, len(cities)),
	}

	position := make(map[string]int, len(cities))
	for _, c := range cities {
		name := CanonicalCity(c.Name)
		if i, seen := position[name]; seen {
			d.entries[i].State = c.State
		} else {
			position[name] = len(d.entries)
			d.entries = append(d.entries, City{Name: name, State: c.State})
		}
		d.index[name] = c.State
	}

	return d
}

// State returns the state code for city and whether it is known
func (d *CityDirectory) State(city string) (string, bool) {
	state, ok := d.index[CanonicalCity(city)]
	return state, ok
}

// Names returns the city names in directory order
func (d *CityDirectory) Names() []string {
	names := make([]string, len(d.entries))
	for i, c := range d.entries {
		names[i] = c.Name
	}
	return names
}

// CanonicalCity lower-cases a city name for lookup
func CanonicalCity(city string) string {
	return strings.ToLower(city)
}

// TitleCity renders a city name for display, e.g. "new york" -> "New York"
func TitleCity(city string) string {
	return cases.Title(language.English).String(city)
}
