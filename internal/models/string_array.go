package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// StringArray backs the image-gallery and keyword columns: a string list
// stored as JSON in a text column. Rows imported from the old site may
// hold a bare string instead of an array; Scan folds those into a
// one-element list so callers never see the difference.
type StringArray []string

func (a StringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal([]string(a))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (a *StringArray) Scan(value interface{}) error {
	if a == nil {
		return fmt.Errorf("models.StringArray: Scan on nil pointer")
	}

	var raw string
	switch v := value.(type) {
	case nil:
		*a = StringArray{}
		return nil
	case []byte:
		raw = string(v)
	case string:
		raw = v
	default:
		return fmt.Errorf("models.StringArray: unsupported Scan type %T", value)
	}

	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		*a = StringArray{}
		return nil
	}

	// Dispatch on the first byte: '[' is the current format, '"' a
	// JSON-quoted legacy value, anything else a raw legacy string.
	switch raw[0] {
	case '[':
		var items []string
		if err := json.Unmarshal([]byte(raw), &items); err == nil {
			*a = items
			return nil
		}
	case '"':
		var single string
		if err := json.Unmarshal([]byte(raw), &single); err == nil {
			if single == "" {
				*a = StringArray{}
			} else {
				*a = StringArray{single}
			}
			return nil
		}
	}

	*a = StringArray{raw}
	return nil
}
