package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		endOfDay bool
		want     time.Time
	}{
		{"rfc3339 normalised to utc", "2025-03-01T10:00:00+02:00", false, time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)},
		{"rfc3339 ignores end of day", "2025-03-01T10:00:00Z", true, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)},
		{"date is midnight", "2025-03-01", false, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"date closes the day", " 2025-03-01 ", true, time.Date(2025, 3, 1, 23, 59, 59, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.value, tt.endOfDay)

			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := ParseDate("01/03/2025", false)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "01/03/2025")
}
