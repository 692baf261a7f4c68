package models

import (
	"github.com/goccy/go-json"
)

// NamedEntity is one element of a movie's structured list fields (genres,
// keywords, cast, crew, production companies/countries, spoken languages).
// The source dataset stores these as open JSON objects with heterogeneous
// schemas; the only field the application relies on is "name", so it is
// lifted into a typed field and everything else rides along in Attrs.
type NamedEntity struct {
	Name  string
	Attrs map[string]any
}

// UnmarshalJSON pulls "name" out of the object and keeps the remaining
// keys in Attrs untouched.
func (e *NamedEntity) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if name, ok := raw["name"].(string); ok {
		e.Name = name
	}
	delete(raw, "name")
	if len(raw) > 0 {
		e.Attrs = raw
	} else {
		e.Attrs = nil
	}
	return nil
}

// MarshalJSON re-merges Name with the extra attributes so round-tripped
// entities look like the source objects.
func (e NamedEntity) MarshalJSON() ([]byte, error) {
	merged := make(map[string]any, len(e.Attrs)+1)
	for k, v := range e.Attrs {
		merged[k] = v
	}
	merged["name"] = e.Name
	return json.Marshal(merged)
}
