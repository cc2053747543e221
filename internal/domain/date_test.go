package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-06-10")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-10", d.String())
	assert.Equal(t, NewDate(2024, time.June, 10), d)

	_, err = ParseDate("10.06.2024")
	assert.Error(t, err)
}

func TestDateOf_DropsTimeOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	d := DateOf(time.Date(2024, time.June, 10, 23, 30, 0, 0, loc))
	assert.Equal(t, "2024-06-10", d.String())
}

func TestDate_DaysUntil(t *testing.T) {
	in := MustParseDate("2024-06-10")
	out := MustParseDate("2024-06-15")

	assert.Equal(t, 5, in.DaysUntil(out))
	assert.Equal(t, -5, out.DaysUntil(in))
	assert.Equal(t, 0, in.DaysUntil(in))
	assert.Equal(t, 1, MustParseDate("2024-02-28").DaysUntil(MustParseDate("2024-02-29")))
	assert.Equal(t, out, in.AddDays(5))
}

func TestDate_JSON(t *testing.T) {
	var payload struct {
		CheckIn Date `json:"check_in"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"check_in":"2024-06-10"}`), &payload))
	assert.Equal(t, MustParseDate("2024-06-10"), payload.CheckIn)

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"check_in":"2024-06-10"}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"check_in":"June 10"}`), &payload))
	assert.Error(t, json.Unmarshal([]byte(`{"check_in":20240610}`), &payload))
}

func TestDate_Scan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-06-10", d.String())

	require.NoError(t, d.Scan([]byte("2024-06-11")))
	assert.Equal(t, "2024-06-11", d.String())

	assert.Error(t, d.Scan(42))
}
