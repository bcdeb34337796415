package tableapi

import (
	"encoding/json"
	"strconv"
)

// RecordID is the backend-assigned record identifier. Some tables return it
// as a JSON number and some as a string, so it decodes from either.
type RecordID string

// UnmarshalJSON accepts both `"42"` and `42`.
func (id *RecordID) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = RecordID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = RecordID(n.String())
	return nil
}

// MarshalJSON re-emits a numeric id as a number so PATCH bodies match what
// the backend handed out.
func (id RecordID) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return json.Marshal(n)
	}
	return json.Marshal(string(id))
}

func (id RecordID) String() string { return string(id) }

// FieldMap is the raw field set of a record, keyed by the backend's display
// names.
type FieldMap map[string]interface{}

// Str returns the string value for key, or "" when the field is absent or
// not a string. Pointer values appear when a field map built by a mapper is
// read back (the create/update echo merge), so they are unwrapped too.
func (f FieldMap) Str(key string) string {
	if f == nil {
		return ""
	}
	switch v := f[key].(type) {
	case string:
		return v
	case *string:
		if v != nil {
			return *v
		}
	}
	return ""
}

// NullStr returns a pointer to the string value for key, or nil when the
// field is absent or empty. Empty strings collapse to nil so a cleared
// optional field round-trips as null.
func (f FieldMap) NullStr(key string) *string {
	s := f.Str(key)
	if s == "" {
		return nil
	}
	return &s
}

// Record is a single stored row as represented by the backend table API.
type Record struct {
	ID     RecordID `json:"id"`
	Fields FieldMap `json:"fields"`
}

// RecordsResponse is the backend's response envelope. Only records is
// consulted after create/update; the paging cursors are carried for listing.
type RecordsResponse struct {
	Records    []Record `json:"records"`
	Next       string   `json:"next,omitempty"`
	Prev       string   `json:"prev,omitempty"`
	NestedNext string   `json:"nestedNext,omitempty"`
	NestedPrev string   `json:"nestedPrev,omitempty"`
}

// IsEmptyValue reports whether a raw field value counts as "not echoed" by
// the backend: nil, empty string, zero number or false.
func IsEmptyValue(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case *string:
		return val == nil || *val == ""
	case bool:
		return !val
	case float64:
		return val == 0
	case json.Number:
		return val.String() == "0"
	}
	return false
}
