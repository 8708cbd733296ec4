package datefmt

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAcceptsBothLayouts(t *testing.T) {
	display, err := Parse("23.09.2025")
	require.NoError(t, err)

	iso, err := Parse("2025-09-23")
	require.NoError(t, err)

	assert.Equal(t, display, iso)
	assert.Equal(t, "23.09.2025", iso.String(), "ISO input renders in the canonical layout")
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse("23/09/2025")
	assert.Error(t, err)
}

func TestParseEmptyIsZero(t *testing.T) {
	d, err := Parse("  ")
	require.NoError(t, err)
	assert.True(t, d.IsZero())
	assert.Equal(t, "", d.String())
}

func TestAddDays(t *testing.T) {
	d := New(time.Date(2025, 9, 20, 15, 30, 0, 0, time.UTC))
	assert.Equal(t, "20.10.2025", d.AddDays(30).String())
}

func TestJSONRoundTrip(t *testing.T) {
	d, err := Parse("01.02.2025")
	require.NoError(t, err)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"01.02.2025"`, string(raw))

	var decoded Date
	require.NoError(t, json.Unmarshal([]byte(`"2025-02-01"`), &decoded))
	assert.Equal(t, d, decoded)
}
