package calendar

import "fmt"

// CadenceSuggestion summarizes how long the ready content buffer lasts at the
// user's posting frequency.
type CadenceSuggestion struct {
	WeeksOfContent float64
	Buffer         string
	Recommendation string
	NextCreation   string
}

var postsPerWeek = map[string]float64{
	"daily":           7,
	"every_other_day": 3.5,
	"weekly":          1,
	"bi-weekly":       0.5,
}

// Cadence evaluates the ready-content buffer against a posting frequency.
// Unknown frequencies are treated as weekly.
func Cadence(frequency string, readyCount int) CadenceSuggestion {
	perWeek, ok := postsPerWeek[frequency]
	if !ok {
		perWeek = postsPerWeek["weekly"]
	}

	weeks := float64(readyCount) / perWeek
	suggestion := CadenceSuggestion{
		WeeksOfContent: weeks,
		Buffer:         fmt.Sprintf("You have %.1f weeks of content ready", weeks),
	}

	switch {
	case weeks < 1:
		suggestion.Recommendation = "Create more content immediately, you're running low"
		suggestion.NextCreation = "Today"
	case weeks < 2:
		suggestion.Recommendation = "Consider creating content this week to maintain buffer"
		suggestion.NextCreation = "This week"
	default:
		suggestion.Recommendation = "Good content buffer, you can focus on other priorities"
		suggestion.NextCreation = "Next week"
	}

	return suggestion
}
