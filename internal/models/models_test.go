package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestCityDirectory_State(t *testing.T) {
	dir := NewCityDirectory(DefaultCities())

	tests := []struct {
		name      string
		city      string
		wantState string
		wantOK    bool
	}{
		{name: "lowercase", city: "seattle", wantState: "WA", wantOK: true},
		{name: "title case", city: "Portland", wantState: "OR", wantOK: true},
		{name: "upper case", city: "SEATTLE", wantState: "WA", wantOK: true},
		{name: "unknown", city: "chicago", wantOK: false},
		{name: "empty", city: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, ok := dir.State(tt.city)
			if ok != tt.wantOK {
				t.Fatalf("State(%q) ok = %v, want %v", tt.city, ok, tt.wantOK)
			}
			if state != tt.wantState {
				t.Errorf("State(%q) = %q, want %q", tt.city, state, tt.wantState)
			}
		})
	}
}

func TestCityDirectory_NamesKeepOrder(t *testing.T) {
	dir := NewCityDirectory([]City{
		{Name: "Seattle", State: "WA"},
		{Name: "portland", State: "OR"},
		{Name: "SEATTLE", State: "XX"},
	})

	names := dir.Names()
	if strings.Join(names, ",") != "seattle,portland" {
		t.Errorf("Names() = %v, want [seattle portland]", names)
	}
	if state, _ := dir.State("seattle"); state != "XX" {
		t.Errorf("State(seattle) = %q, want last write XX", state)
	}
}

func TestTitleCity(t *testing.T) {
	tests := map[string]string{
		"seattle":  "Seattle",
		"new york": "New York",
		"CHICAGO":  "Chicago",
	}
	for in, want := range tests {
		if got := TitleCity(in); got != want {
			t.Errorf("TitleCity(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestOriginAllowList(t *testing.T) {
	list := NewOriginAllowList(DefaultAllowedOrigins())

	tests := []struct {
		origin string
		want   bool
	}{
		{"http://allowed1.example.com", true},
		{"http://allowed2.example.com", true},
		{"http://allowed1.example.com/", false},
		{"https://allowed1.example.com", false},
		{"http://allowed1.example.com:80", false},
		{"http://evil.example.com", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := list.Contains(tt.origin); got != tt.want {
			t.Errorf("Contains(%q) = %v, want %v", tt.origin, got, tt.want)
		}
	}
}

func TestOriginDecision(t *testing.T) {
	allowed := OriginDecision{Origin: "http://allowed1.example.com", Allowed: true}
	if got := allowed.Headers()["Access-Control-Allow-Origin"]; got != "http://allowed1.example.com" {
		t.Errorf("allowed header = %q", got)
	}
	if allowed.Body() != "You sent a whitelisted origin!\n" {
		t.Errorf("allowed body = %q", allowed.Body())
	}

	denied := OriginDecision{Origin: "http://evil.example.com"}
	if denied.Headers() != nil {
		t.Errorf("denied decision should not set headers, got %v", denied.Headers())
	}
	if !strings.Contains(denied.Body(), "http://evil.example.com") {
		t.Errorf("denied body = %q, want origin echoed", denied.Body())
	}
}

func TestParseDocument(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "object", raw: `{"a":1}`, want: `{"a":1}`},
		{name: "keeps inner spacing", raw: `{"a": [1, 2]}`, want: `{"a": [1, 2]}`},
		{name: "trims outer whitespace", raw: "  \"x\"\n", want: `"x"`},
		{name: "empty is null", raw: "", want: "null"},
		{name: "number", raw: "42", want: "42"},
		{name: "malformed", raw: `{"a":`, wantErr: true},
		{name: "invalid utf-8 string", raw: "\"\xff\xfe\"", wantErr: true},
		{name: "invalid utf-8 key", raw: "{\"\xc3\":1}", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ParseDocument([]byte(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDocument() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if string(doc.Bytes()) != tt.want {
				t.Errorf("ParseDocument() = %s, want %s", doc.Bytes(), tt.want)
			}
		})
	}
}

func TestDocument_EmbedsInResponse(t *testing.T) {
	doc, err := ParseDocument([]byte(`{"a":1}`))
	if err != nil {
		t.Fatalf("ParseDocument() failed: %v", err)
	}

	out, err := json.Marshal(map[string]Document{"foo": doc})
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if string(out) != `{"foo":{"a":1}}` {
		t.Errorf("Marshal() = %s", out)
	}
}
