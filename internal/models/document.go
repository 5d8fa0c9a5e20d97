package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"unicode/utf8"
)

// ErrInvalidDocument is returned when a payload is not valid UTF-8 JSON
var ErrInvalidDocument = errors.New("invalid JSON document")

// nullDocument is what an empty request body is stored as
var nullDocument = []byte("null")

// Document is an arbitrary JSON value stored in the object store.
// The raw bytes are kept as received, so a stored document reads back unchanged.
type Document json.RawMessage

// ParseDocument validates raw as a JSON value.
// Surrounding whitespace is trimmed; an empty payload becomes JSON null.
func ParseDocument(raw []byte) (Document, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return Document(append([]byte(nil), nullDocument...)), nil
	}
	if !utf8.Valid(trimmed) || !json.Valid(trimmed) {
		return nil, ErrInvalidDocument
	}
	return Document(append([]byte(nil), trimmed...)), nil
}

// MarshalJSON implements json.Marshaler
func (d Document) MarshalJSON() ([]byte, error) {
	if len(d) == 0 {
		return nullDocument, nil
	}
	return d, nil
}

// UnmarshalJSON implements json.Unmarshaler
func (d *Document) UnmarshalJSON(data []byte) error {
	if d == nil {
		return errors.New("models.Document: UnmarshalJSON on nil pointer")
	}
	*d = append((*d)[0:0], data...)
	return nil
}

// Bytes returns the raw JSON bytes
func (d Document) Bytes() []byte {
	return []byte(d)
}
