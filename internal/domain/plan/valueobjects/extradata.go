package valueobjects

import (
	"encoding/json"
)

// ExtraData is the open json_data mapping attached to plans, day places and
// schedules. Two keys are recognized: tags (ordered sequence of strings) and
// name_khong_dau (accent-free lowercase name used for search). Everything
// else passes through untouched.
type ExtraData struct {
	Tags         []string
	NameKhongDau string
	extra        map[string]interface{}
}

// ParseExtraData normalizes any stored representation of json_data: an
// already parsed ExtraData, a raw map, a JSON string, or raw bytes.
// Normalization is idempotent; unparseable input yields the empty mapping.
func ParseExtraData(v interface{}) ExtraData {
	switch val := v.(type) {
	case nil:
		return ExtraData{}
	case ExtraData:
		return val
	case *ExtraData:
		if val == nil {
			return ExtraData{}
		}
		return *val
	case map[string]interface{}:
		return extraDataFromMap(val)
	case string:
		return parseExtraDataBytes([]byte(val))
	case []byte:
		return parseExtraDataBytes(val)
	case json.RawMessage:
		return parseExtraDataBytes(val)
	default:
		return ExtraData{}
	}
}

func parseExtraDataBytes(raw []byte) ExtraData {
	if len(raw) == 0 {
		return ExtraData{}
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return ExtraData{}
	}
	return extraDataFromMap(m)
}

func extraDataFromMap(m map[string]interface{}) ExtraData {
	d := ExtraData{}
	for k, v := range m {
		switch k {
		case "tags":
			if tags, ok := toStringSlice(v); ok {
				d.Tags = tags
				continue
			}
		case "name_khong_dau":
			if s, ok := v.(string); ok {
				d.NameKhongDau = s
				continue
			}
		}
		if d.extra == nil {
			d.extra = make(map[string]interface{})
		}
		d.extra[k] = v
	}
	return d
}

func toStringSlice(v interface{}) ([]string, bool) {
	switch s := v.(type) {
	case []string:
		return s, true
	case []interface{}:
		out := make([]string, 0, len(s))
		for _, item := range s {
			str, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, str)
		}
		return out, true
	}
	return nil, false
}

// IsZero reports whether the mapping carries no data at all.
func (d ExtraData) IsZero() bool {
	return len(d.Tags) == 0 && d.NameKhongDau == "" && len(d.extra) == 0
}

// Get returns a pass-through key captured from the stored mapping.
func (d ExtraData) Get(key string) (interface{}, bool) {
	v, ok := d.extra[key]
	return v, ok
}

// Set stores a pass-through key, returning the updated mapping.
func (d ExtraData) Set(key string, value interface{}) ExtraData {
	out := d
	out.extra = make(map[string]interface{}, len(d.extra)+1)
	for k, v := range d.extra {
		out.extra[k] = v
	}
	out.extra[key] = value
	return out
}

// WithNameKhongDau returns a copy carrying the given search key.
func (d ExtraData) WithNameKhongDau(nameKhongDau string) ExtraData {
	out := d
	out.NameKhongDau = nameKhongDau
	return out
}

// WithTags returns a copy carrying the given tags.
func (d ExtraData) WithTags(tags []string) ExtraData {
	out := d
	out.Tags = tags
	return out
}

// ToMap renders the mapping as stored in the database.
func (d ExtraData) ToMap() map[string]interface{} {
	m := make(map[string]interface{}, 2+len(d.extra))
	for k, v := range d.extra {
		m[k] = v
	}
	if len(d.Tags) > 0 {
		m["tags"] = d.Tags
	}
	if d.NameKhongDau != "" {
		m["name_khong_dau"] = d.NameKhongDau
	}
	return m
}

// MarshalJSON serializes the recognized keys merged with captured extras.
func (d ExtraData) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.ToMap())
}

// UnmarshalJSON parses the stored JSON object form.
func (d *ExtraData) UnmarshalJSON(data []byte) error {
	*d = parseExtraDataBytes(data)
	return nil
}
