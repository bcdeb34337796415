package tableapi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordIDUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want RecordID
	}{
		{name: "string id", in: `{"id":"rec_abc","fields":{}}`, want: "rec_abc"},
		{name: "numeric id", in: `{"id":42,"fields":{}}`, want: "42"},
		{name: "numeric string id", in: `{"id":"42","fields":{}}`, want: "42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Record
			require.NoError(t, json.Unmarshal([]byte(tt.in), &r))
			assert.Equal(t, tt.want, r.ID)
		})
	}
}

func TestRecordIDMarshal(t *testing.T) {
	numeric, err := json.Marshal(RecordID("42"))
	require.NoError(t, err)
	assert.Equal(t, "42", string(numeric), "numeric ids go back out as numbers")

	text, err := json.Marshal(RecordID("rec_abc"))
	require.NoError(t, err)
	assert.Equal(t, `"rec_abc"`, string(text))
}

func TestFieldMapStr(t *testing.T) {
	val := "hello"
	var nilPtr *string
	f := FieldMap{
		"plain":   "value",
		"pointer": &val,
		"nilptr":  nilPtr,
		"number":  float64(7),
	}

	assert.Equal(t, "value", f.Str("plain"))
	assert.Equal(t, "hello", f.Str("pointer"))
	assert.Equal(t, "", f.Str("nilptr"))
	assert.Equal(t, "", f.Str("number"))
	assert.Equal(t, "", f.Str("absent"))

	var none FieldMap
	assert.Equal(t, "", none.Str("anything"))
}

func TestFieldMapNullStr(t *testing.T) {
	f := FieldMap{"set": "x", "empty": ""}

	got := f.NullStr("set")
	require.NotNil(t, got)
	assert.Equal(t, "x", *got)

	assert.Nil(t, f.NullStr("empty"), "empty string collapses to nil")
	assert.Nil(t, f.NullStr("absent"))
}

func TestIsEmptyValue(t *testing.T) {
	empty := ""
	set := "x"

	assert.True(t, IsEmptyValue(nil))
	assert.True(t, IsEmptyValue(""))
	assert.True(t, IsEmptyValue(&empty))
	assert.True(t, IsEmptyValue((*string)(nil)))
	assert.True(t, IsEmptyValue(false))
	assert.True(t, IsEmptyValue(float64(0)))
	assert.True(t, IsEmptyValue(json.Number("0")))

	assert.False(t, IsEmptyValue("x"))
	assert.False(t, IsEmptyValue(&set))
	assert.False(t, IsEmptyValue(true))
	assert.False(t, IsEmptyValue(float64(1.5)))
}
