package gym_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"brandstudio/internal/gym"
	"brandstudio/internal/testsupport"
)

func TestAnalyzeEmptyStoreFlagsEverythingWeak(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	analyzer := gym.NewAnalyzer(st, nil)

	report, err := analyzer.Analyze(context.Background())
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if report.TotalNotes != 0 {
		t.Fatalf("expected zero notes, got %d", report.TotalNotes)
	}
	if len(report.WeakThemes) != 7 {
		t.Fatalf("expected all themes weak, got %v", report.WeakThemes)
	}
	if len(report.LearningSuggestions) == 0 || len(report.LearningSuggestions) > 5 {
		t.Fatalf("unexpected learning suggestions: %v", report.LearningSuggestions)
	}
	if len(report.ImplementationPrompts) == 0 || len(report.ImplementationPrompts) > 3 {
		t.Fatalf("unexpected prompts: %v", report.ImplementationPrompts)
	}
	if report.WeeklyChallenge == "" {
		t.Fatal("expected a weekly challenge")
	}
}

func TestAnalyzeBalancedContent(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	analyzer := gym.NewAnalyzer(st, nil)

	// Seed counts roughly matching the ideal mix.
	seed := map[string]int{
		"leadership":       5,
		"industry insights": 4,
		"personal story":   3,
		"strategy":         3,
		"innovation":       2,
		"team building":    2,
		"customer success": 1,
	}
	for theme, count := range seed {
		for i := 0; i < count; i++ {
			testsupport.NewNote(t, st, "note about "+theme, theme)
		}
	}

	report, err := analyzer.Analyze(context.Background())
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if len(report.WeakThemes) != 0 {
		t.Fatalf("expected no weak themes, got %v", report.WeakThemes)
	}
	if len(report.Recommendations) != 1 || !strings.Contains(report.Recommendations[0], "balanced") {
		t.Fatalf("expected balanced recommendation, got %v", report.Recommendations)
	}
}

func TestAnalyzeSkewedContentRecommendsWeakThemes(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	analyzer := gym.NewAnalyzer(st, nil)

	for i := 0; i < 10; i++ {
		testsupport.NewNote(t, st, "another product update", "product")
	}

	report, err := analyzer.Analyze(context.Background())
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if len(report.WeakThemes) == 0 {
		t.Fatal("expected weak themes for skewed content")
	}
	found := false
	for _, rec := range report.Recommendations {
		if strings.Contains(rec, "leadership") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected leadership recommendation, got %v", report.Recommendations)
	}
}

func TestWeeklyChallengeRotatesByWeek(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	challenges := make(map[string]bool)
	base := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	for week := 0; week < 5; week++ {
		when := base.AddDate(0, 0, 7*week)
		analyzer := gym.NewAnalyzer(st, nil, gym.WithNow(func() time.Time { return when }))
		report, err := analyzer.Analyze(ctx)
		if err != nil {
			t.Fatalf("Analyze failed: %v", err)
		}
		challenges[report.WeeklyChallenge] = true
	}
	if len(challenges) != 5 {
		t.Fatalf("expected 5 distinct weekly challenges, got %d", len(challenges))
	}
}

func TestTopThemes(t *testing.T) {
	counts := map[string]int{"leadership": 5, "product": 2, "strategy": 5, "innovation": 1}
	top := gym.TopThemes(counts, 2)
	if len(top) != 2 {
		t.Fatalf("expected 2 themes, got %v", top)
	}
	if top[0] != "leadership" || top[1] != "strategy" {
		t.Fatalf("unexpected ordering: %v", top)
	}
}
