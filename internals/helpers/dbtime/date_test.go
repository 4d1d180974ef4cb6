package dbtime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	d, err := Parse("2025-12-24")
	require.NoError(t, err)
	assert.Equal(t, "2025-12-24", d.String())

	_, err = Parse("24/12/2025")
	assert.Error(t, err)

	_, err = Parse("2025-12-24T10:00:00Z")
	assert.Error(t, err)
}

func TestFromTimeDropsClock(t *testing.T) {
	loc := time.FixedZone("X", 5*3600)
	d := FromTime(time.Date(2025, 3, 9, 23, 59, 59, 0, loc))
	assert.Equal(t, "2025-03-09", d.String())
}

func TestJSONRoundTrip(t *testing.T) {
	d, err := Parse("2025-06-01")
	require.NoError(t, err)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-06-01"`, string(b))

	var back DateOnly
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, d.String(), back.String())
}

func TestMarshalZeroIsNull(t *testing.T) {
	b, err := json.Marshal(DateOnly{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))

	var d DateOnly
	require.NoError(t, json.Unmarshal([]byte("null"), &d))
	assert.True(t, d.Time.IsZero())
}

func TestScan(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{name: "time.Time", input: time.Date(2025, 1, 15, 13, 30, 0, 0, time.UTC), want: "2025-01-15"},
		{name: "string", input: "2025-01-15", want: "2025-01-15"},
		{name: "bytes", input: []byte("2025-01-15"), want: "2025-01-15"},
		{name: "nil", input: nil, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d DateOnly
			require.NoError(t, d.Scan(tt.input))
			assert.Equal(t, tt.want, d.String())
		})
	}

	var d DateOnly
	assert.Error(t, d.Scan(42))
}

func TestValue(t *testing.T) {
	d, err := Parse("2025-07-04")
	require.NoError(t, err)
	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "2025-07-04", v)

	v, err = DateOnly{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
