package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpiryFormatter_Format(t *testing.T) {
	tests := []struct {
		name     string
		expiry   string
		locale   string
		expected string
	}{
		{
			name:     "default locale",
			expiry:   "2024-01-01T00:00:00Z",
			locale:   "",
			expected: "1/1/2024, 12:00:00 AM",
		},
		{
			name:     "date only",
			expiry:   "2024-01-01",
			locale:   "en-US",
			expected: "1/1/2024, 12:00:00 AM",
		},
		{
			name:     "american english",
			expiry:   "2024-03-05T14:07:09Z",
			locale:   "en-US,en;q=0.9",
			expected: "3/5/2024, 2:07:09 PM",
		},
		{
			name:     "british english",
			expiry:   "2024-03-05T14:07:09Z",
			locale:   "en-GB",
			expected: "05/03/2024, 14:07:09",
		},
		{
			name:     "german with region",
			expiry:   "2024-03-05T14:07:09Z",
			locale:   "de-AT,de;q=0.8",
			expected: "5.3.2024, 14:07:09",
		},
		{
			name:     "russian",
			expiry:   "2024-03-05T14:07:09Z",
			locale:   "ru-RU,ru;q=0.9,en-US;q=0.8",
			expected: "05.03.2024, 14:07:09",
		},
		{
			name:     "japanese",
			expiry:   "2024-03-05T14:07:09Z",
			locale:   "ja",
			expected: "2024/3/5 14:07:09",
		},
		{
			name:     "unsupported locale falls back to default",
			expiry:   "2024-03-05T14:07:09Z",
			locale:   "xx",
			expected: "3/5/2024, 2:07:09 PM",
		},
		{
			name:     "invalid accept-language falls back to default",
			expiry:   "2024-03-05T14:07:09Z",
			locale:   ";;;",
			expected: "3/5/2024, 2:07:09 PM",
		},
		{
			name:     "offset is converted to display zone",
			expiry:   "2024-03-05T16:07:09+02:00",
			locale:   "en-GB",
			expected: "05/03/2024, 14:07:09",
		},
		{
			name:     "local date time with fraction",
			expiry:   "2024-03-05T14:07:09.123456",
			locale:   "en-GB",
			expected: "05/03/2024, 14:07:09",
		},
		{
			name:     "local date time without seconds",
			expiry:   "2024-03-05T14:07",
			locale:   "en-GB",
			expected: "05/03/2024, 14:07:00",
		},
	}

	f := NewExpiryFormatter(time.UTC)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.Format(tt.expiry, tt.locale)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestExpiryFormatter_DisplayLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	f := NewExpiryFormatter(tokyo)

	// дата с часовым поясом переводится в зону отображения
	got, err := f.Format("2024-01-01T00:00:00Z", "en-GB")
	require.NoError(t, err)
	assert.Equal(t, "01/01/2024, 09:00:00", got)

	// дата без времени считается полуночью по UTC
	got, err = f.Format("2024-01-01", "en-GB")
	require.NoError(t, err)
	assert.Equal(t, "01/01/2024, 09:00:00", got)

	// дата без часового пояса считается заданной в зоне отображения
	got, err = f.Format("2024-01-01T00:00:00", "en-GB")
	require.NoError(t, err)
	assert.Equal(t, "01/01/2024, 00:00:00", got)
}

func TestExpiryFormatter_InvalidExpiry(t *testing.T) {
	f := NewExpiryFormatter(nil)

	for _, expiry := range []string{"", "tomorrow", "2024-13-01T00:00:00Z", "01/01/2024"} {
		_, err := f.Format(expiry, "en-US")
		assert.ErrorIs(t, err, ErrInvalidExpiry, expiry)
	}
}
