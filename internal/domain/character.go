package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Character is a record returned by the character API. Every field is
// optional; an empty string means the API did not provide it.
type Character struct {
	Name     string          `json:"name,omitempty"`
	Image    string          `json:"image,omitempty"`
	Origin   string          `json:"origin,omitempty"`
	Strength string          `json:"strength,omitempty"`
	Raw      json.RawMessage `json:"-"`
}

// ParseCharacter decodes an API payload that is either a single record or an
// array whose first element is the record.
func ParseCharacter(body []byte) (*Character, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("invalid JSON payload")
	}

	record := gjson.ParseBytes(body)
	if record.IsArray() {
		first := record.Get("0")
		if !first.Exists() {
			return nil, fmt.Errorf("empty character array")
		}
		record = first
	}

	if !record.IsObject() {
		return nil, fmt.Errorf("unexpected payload type %s", record.Type)
	}

	character := &Character{
		Name:     textField(record.Get("name")),
		Origin:   textField(record.Get("origin")),
		Strength: textField(record.Get("strength")),
		Raw:      json.RawMessage(record.Raw),
	}

	if image := record.Get("image"); image.Type == gjson.String {
		character.Image = strings.TrimSpace(image.Str)
	}

	return character, nil
}

// MatchesTerm reports whether the record's lowercased name equals the
// normalized search term.
func (c *Character) MatchesTerm(term string) bool {
	if c == nil || c.Name == "" {
		return false
	}
	return strings.ToLower(c.Name) == term
}

// MarshalRaw returns the record as the API sent it, or the typed fields when
// the raw payload is unavailable.
func (c *Character) MarshalRaw() ([]byte, error) {
	if len(c.Raw) > 0 {
		return c.Raw, nil
	}
	return json.Marshal(c)
}

// textField keeps any truthy scalar in textual form; missing, null, false, 0
// and empty strings are treated as absent.
func textField(value gjson.Result) string {
	switch value.Type {
	case gjson.String:
		return strings.TrimSpace(value.Str)
	case gjson.Number:
		if value.Num == 0 {
			return ""
		}
		return value.Raw
	case gjson.True:
		return "true"
	case gjson.JSON:
		return value.Raw
	default:
		return ""
	}
}
