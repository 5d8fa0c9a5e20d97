package services

import (
	"context"
	"net/url"
	"strings"
)

// statesField is the form field echoed back by the form service
const statesField = "states"

// formService implements FormService
type formService struct{}

// NewFormService creates a new form service
func NewFormService() FormService {
	return &formService{}
}

// States implements FormService.States. Parsing never fails: a malformed
// escape is kept literally and only "&" separates fields.
func (s *formService) States(ctx context.Context, body []byte) ([]string, error) {
	return s.StatesFromValues(parseForm(string(body))), nil
}

// StatesFromValues implements FormService.StatesFromValues.
// Blank values are dropped and order is preserved.
func (s *formService) StatesFromValues(values url.Values) []string {
	states := make([]string, 0, len(values[statesField]))
	for _, v := range values[statesField] {
		if v != "" {
			states = append(states, v)
		}
	}
	return states
}

// parseForm decodes an urlencoded body without rejecting anything.
// Pairs lacking "=" carry no value and are skipped.
func parseForm(body string) url.Values {
	values := url.Values{}
	for _, pair := range strings.Split(body, "&") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		values.Add(unescapeLenient(key), unescapeLenient(value))
	}
	return values
}

// unescapeLenient turns "+" into a space and decodes valid %XX escapes.
// Invalid escapes stay as written; invalid UTF-8 becomes U+FFFD.
func unescapeLenient(s string) string {
	s = strings.ReplaceAll(s, "+", " ")
	if !strings.Contains(s, "%") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
			continue
		}
		b.WriteByte(s[i])
	}
	return strings.ToValidUTF8(b.String(), "\uFFFD")
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
