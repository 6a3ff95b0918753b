package readtime

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimate(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		minutes int
		words   int
	}{
		{
			name:    "Empty text still reads for a minute",
			text:    "",
			minutes: 1,
			words:   0,
		},
		{
			name:    "Whitespace only",
			text:    "  \n\t ",
			minutes: 1,
			words:   0,
		},
		{
			name:    "Short text rounds up to a minute",
			text:    "በመጀመሪያ እግዚአብሔር ሰማይንና ምድርን ፈጠረ",
			minutes: 1,
			words:   5,
		},
		{
			name:    "Exactly one minute of words",
			text:    strings.Repeat("ቃል ", 200),
			minutes: 1,
			words:   200,
		},
		{
			name:    "One word over rounds up",
			text:    strings.Repeat("ቃል ", 201),
			minutes: 2,
			words:   201,
		},
		{
			name:    "Five minutes",
			text:    strings.Repeat("ቃል ", 1000),
			minutes: 5,
			words:   1000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Estimate(tt.text)

			assert.Equal(t, tt.minutes, got.Minutes)
			assert.Equal(t, tt.words, got.Words)
			assert.Contains(t, got.Text, "ደቂቃ")
		})
	}
}

func TestEstimateMonotonic(t *testing.T) {
	prev := 0

	for words := 0; words <= 2000; words += 50 {
		got := Estimate(strings.Repeat("ቃል ", words))

		assert.GreaterOrEqual(t, got.Minutes, prev, "minutes must not decrease at %d words", words)
		prev = got.Minutes
	}
}
