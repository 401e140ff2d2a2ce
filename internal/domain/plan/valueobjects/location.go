package valueobjects

import (
	"encoding/json"
)

// Location is the structured place payload stored in the JSONB location
// columns: name, description, lat, lon. Unknown keys are captured and
// survive a parse/serialize round trip unchanged.
type Location struct {
	Name        string
	Description string
	Lat         *float64
	Lon         *float64
	extra       map[string]interface{}
}

// NewLocation builds a location from its known fields.
func NewLocation(name, description string, lat, lon *float64) Location {
	return Location{
		Name:        name,
		Description: description,
		Lat:         lat,
		Lon:         lon,
	}
}

// ParseLocation normalizes any stored representation of a location: an
// already parsed Location, a raw map, a JSON string, or raw bytes.
// Normalization is idempotent; unparseable input yields the zero location.
func ParseLocation(v interface{}) Location {
	switch val := v.(type) {
	case nil:
		return Location{}
	case Location:
		return val
	case *Location:
		if val == nil {
			return Location{}
		}
		return *val
	case map[string]interface{}:
		return locationFromMap(val)
	case string:
		return parseLocationBytes([]byte(val))
	case []byte:
		return parseLocationBytes(val)
	case json.RawMessage:
		return parseLocationBytes(val)
	default:
		return Location{}
	}
}

func parseLocationBytes(raw []byte) Location {
	if len(raw) == 0 {
		return Location{}
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return Location{}
	}
	return locationFromMap(m)
}

func locationFromMap(m map[string]interface{}) Location {
	loc := Location{}
	for k, v := range m {
		switch k {
		case "name":
			if s, ok := v.(string); ok {
				loc.Name = s
				continue
			}
		case "description":
			if s, ok := v.(string); ok {
				loc.Description = s
				continue
			}
		case "lat":
			if f, ok := toFloat(v); ok {
				loc.Lat = &f
				continue
			}
		case "lon":
			if f, ok := toFloat(v); ok {
				loc.Lon = &f
				continue
			}
		}
		if loc.extra == nil {
			loc.extra = make(map[string]interface{})
		}
		loc.extra[k] = v
	}
	return loc
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// IsZero reports whether the location carries no data at all.
func (l Location) IsZero() bool {
	return l.Name == "" && l.Description == "" && l.Lat == nil && l.Lon == nil && len(l.extra) == 0
}

// Extra returns a copy of the captured unknown keys.
func (l Location) Extra() map[string]interface{} {
	if len(l.extra) == 0 {
		return nil
	}
	out := make(map[string]interface{}, len(l.extra))
	for k, v := range l.extra {
		out[k] = v
	}
	return out
}

// ToMap renders the location as the open mapping stored in the database.
func (l Location) ToMap() map[string]interface{} {
	m := make(map[string]interface{}, 4+len(l.extra))
	for k, v := range l.extra {
		m[k] = v
	}
	if l.Name != "" {
		m["name"] = l.Name
	}
	if l.Description != "" {
		m["description"] = l.Description
	}
	if l.Lat != nil {
		m["lat"] = *l.Lat
	}
	if l.Lon != nil {
		m["lon"] = *l.Lon
	}
	return m
}

// MarshalJSON serializes the known fields merged with captured extras.
func (l Location) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.ToMap())
}

// UnmarshalJSON parses the stored JSON object form.
func (l *Location) UnmarshalJSON(data []byte) error {
	*l = parseLocationBytes(data)
	return nil
}
