package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNow_ReturnsUTC(t *testing.T) {
	now := Now()
	assert.Equal(t, time.UTC, now.Location())
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2006-01-02", "1987-06-05")
	require.NoError(t, err)
	assert.Equal(t, 1987, parsed.Year())
	assert.Equal(t, time.June, parsed.Month())
	assert.Equal(t, 5, parsed.Day())
	assert.Equal(t, time.UTC, parsed.Location())
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := ParseDate("2006-01-02", "not-a-date")
	assert.Error(t, err)
}

func TestDateOnly(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	instant := time.Date(2024, 3, 15, 22, 30, 45, 123, loc)
	date := DateOnly(instant)

	assert.Equal(t, time.UTC, date.Location())
	assert.Equal(t, 0, date.Hour())
	assert.Equal(t, 0, date.Minute())
	// 22:30 EDT is already the next day in UTC
	assert.Equal(t, 16, date.Day())
}

func TestToUTC(t *testing.T) {
	loc := time.FixedZone("PST", -8*3600)
	local := time.Date(2024, 1, 1, 12, 0, 0, 0, loc)
	assert.Equal(t, time.UTC, ToUTC(local).Location())
	assert.True(t, local.Equal(ToUTC(local)))
}
