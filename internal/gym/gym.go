// Package gym analyzes how well captured content covers the theme mix an
// executive brand should maintain, and suggests what to work on next.
package gym

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"brandstudio/internal/logging"
	"brandstudio/internal/store"
)

// ThemeBalance compares one theme's share of content against the ideal mix.
type ThemeBalance struct {
	Theme          string  `json:"theme"`
	Count          int     `json:"count"`
	CurrentPercent float64 `json:"current_percent"`
	IdealPercent   float64 `json:"ideal_percent"`
	Weak           bool    `json:"weak"`
}

// Report is the outcome of a brand analysis run.
type Report struct {
	TotalNotes            int            `json:"total_notes"`
	ThemeCounts           map[string]int `json:"theme_counts"`
	Balance               []ThemeBalance `json:"balance"`
	Recommendations       []string       `json:"recommendations"`
	WeakThemes            []string       `json:"weak_themes"`
	LearningSuggestions   []string       `json:"learning_suggestions"`
	ImplementationPrompts []string       `json:"implementation_prompts"`
	WeeklyChallenge       string         `json:"weekly_challenge"`
}

// Analyzer computes brand reports from stored notes.
type Analyzer struct {
	store  *store.Store
	now    func() time.Time
	logger *slog.Logger
}

// Option customizes an Analyzer.
type Option func(*Analyzer)

// WithNow overrides the analyzer clock used for the weekly challenge.
func WithNow(now func() time.Time) Option {
	return func(a *Analyzer) {
		a.now = now
	}
}

// NewAnalyzer builds an analyzer over the given store.
func NewAnalyzer(st *store.Store, logger *slog.Logger, opts ...Option) *Analyzer {
	if logger == nil {
		logger = logging.NewNop()
	}
	a := &Analyzer{
		store:  st,
		now:    time.Now,
		logger: logging.WithComponent(logger, "gym"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// weakThreshold marks a theme weak when its share falls below 70% of ideal.
const weakThreshold = 0.7

// Analyze tallies themes across transcribed notes and builds the report.
func (a *Analyzer) Analyze(ctx context.Context) (*Report, error) {
	counts, err := a.store.ThemeCounts(ctx)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, count := range counts {
		total += count
	}

	report := &Report{
		TotalNotes:      total,
		ThemeCounts:     counts,
		WeeklyChallenge: weeklyChallenge(a.now()),
	}

	denominator := total
	if denominator == 0 {
		denominator = 1
	}

	for _, entry := range idealMix {
		count := counts[entry.theme]
		current := float64(count) / float64(denominator) * 100
		weak := current < entry.percent*weakThreshold
		report.Balance = append(report.Balance, ThemeBalance{
			Theme:          entry.theme,
			Count:          count,
			CurrentPercent: current,
			IdealPercent:   entry.percent,
			Weak:           weak,
		})
		if weak {
			report.WeakThemes = append(report.WeakThemes, entry.theme)
			report.Recommendations = append(report.Recommendations,
				fmt.Sprintf("Consider sharing more %s content. You're currently at %.1f%% vs ideal %.0f%%",
					entry.theme, current, entry.percent))
		}
	}

	if len(report.Recommendations) == 0 {
		report.Recommendations = append(report.Recommendations,
			"Great job maintaining balanced content! Keep up the diverse mix of themes.")
	}

	report.LearningSuggestions = suggestionsFor(report.WeakThemes, learningResources, maxLearningSuggestions)
	report.ImplementationPrompts = suggestionsFor(report.WeakThemes, implementationPrompts, maxImplementationPrompts)

	a.logger.Info("analyzed brand balance",
		logging.Int("total_notes", total),
		logging.Int("weak_themes", len(report.WeakThemes)))
	return report, nil
}

func suggestionsFor(themes []string, byTheme map[string][]string, limit int) []string {
	var out []string
	for _, theme := range themes {
		out = append(out, byTheme[theme]...)
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// TopThemes returns the most frequent themes in descending order.
func TopThemes(counts map[string]int, limit int) []string {
	themes := make([]string, 0, len(counts))
	for theme := range counts {
		themes = append(themes, theme)
	}
	sort.Slice(themes, func(i, j int) bool {
		if counts[themes[i]] != counts[themes[j]] {
			return counts[themes[i]] > counts[themes[j]]
		}
		return themes[i] < themes[j]
	})
	if len(themes) > limit {
		themes = themes[:limit]
	}
	return themes
}

func weeklyChallenge(now time.Time) string {
	_, week := now.ISOWeek()
	return weeklyChallenges[week%len(weeklyChallenges)]
}
