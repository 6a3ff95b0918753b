// Package readtime estimates reading duration from plain text.
package readtime

import (
	"fmt"
	"strings"
)

// WordsPerMinute is the fixed reading speed the estimate is based on.
// 200 WPM keeps estimates reproducible across the site.
const WordsPerMinute = 200

// Result is a reading-time estimate.
type Result struct {
	// Minutes is rounded up to the nearest whole minute, never below 1.
	Minutes int `json:"minutes"`
	Words   int `json:"words"`
	// Text is the Amharic display string, e.g. "3 ደቂቃ ንባብ".
	Text string `json:"text"`
}

// Estimate computes the reading time of the given text. Empty text still
// yields a 1-minute estimate.
func Estimate(text string) Result {
	words := len(strings.Fields(text))

	minutes := (words + WordsPerMinute - 1) / WordsPerMinute
	if minutes < 1 {
		minutes = 1
	}

	return Result{
		Minutes: minutes,
		Words:   words,
		Text:    fmt.Sprintf("%d ደቂቃ ንባብ", minutes),
	}
}
