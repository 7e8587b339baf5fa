package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), *date)

	empty, err := ParseDate("")
	require.NoError(t, err)
	assert.True(t, empty.IsZero())

	_, err = ParseDate("05.03.2024")
	assert.Error(t, err)
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{
			name:     "data pura",
			input:    "2024-03-05",
			expected: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "iso sem fuso",
			input:    "2024-03-05T14:30:00",
			expected: time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC),
		},
		{
			name:     "data e hora com espaço",
			input:    "2024-03-05 14:30:00",
			expected: time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC),
		},
		{
			name:     "rfc3339",
			input:    "2024-03-05T14:30:00+01:00",
			expected: time.Date(2024, 3, 5, 14, 30, 0, 0, time.FixedZone("", 3600)),
		},
		{
			name:     "cabeçalho de e-mail",
			input:    "Tue, 5 Mar 2024 14:30:00 +0100",
			expected: time.Date(2024, 3, 5, 14, 30, 0, 0, time.FixedZone("", 3600)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseTimestamp(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(result), "got %s", result)
		})
	}
}

func TestParseTimestampInvalid(t *testing.T) {
	for _, input := range []string{"", "   ", "not a date", "2024-13-45"} {
		_, err := ParseTimestamp(input)
		assert.ErrorIs(t, err, ErrInvalidDate, input)
	}
}
