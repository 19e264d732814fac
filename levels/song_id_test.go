package levels

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSongIDUnmarshal(t *testing.T) {
	var row struct {
		SongID SongID `json:"songID"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"songID": 1234567}`), &row))
	n, ok := row.SongID.Numeric()
	assert.True(t, ok)
	assert.Equal(t, 1234567.0, n)
	assert.Equal(t, "1234567", row.SongID.String())

	require.NoError(t, json.Unmarshal([]byte(`{"songID": "NONG"}`), &row))
	_, ok = row.SongID.Numeric()
	assert.False(t, ok)
	assert.True(t, row.SongID.Is(SongNong))

	require.NoError(t, json.Unmarshal([]byte(`{"songID": null}`), &row))
	assert.True(t, row.SongID.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"songID": true}`), &row))
}

func TestSongIDNumericPolicy(t *testing.T) {
	tests := []struct {
		name    string
		id      SongID
		numeric bool
	}{
		{"int", SongIDFromInt(5), true},
		{"zero int", SongIDFromInt(0), true},
		{"numeric string", SongIDFromString("42"), true},
		{"empty string", SongIDFromString(""), false},
		{"blank string", SongIDFromString("   "), false},
		{"placeholder", SongIDFromString(SongOfficial), false},
		{"absent", SongID{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := tt.id.Numeric()
			assert.Equal(t, tt.numeric, ok)
		})
	}
}

func TestSongIDMarshalKeepsShape(t *testing.T) {
	out, err := json.Marshal([]SongID{SongIDFromInt(7), SongIDFromString("OFFICIAL"), {}})
	require.NoError(t, err)
	assert.JSONEq(t, `[7, "OFFICIAL", null]`, string(out))
}
