package generation

import "strings"

// themeKeywords drives the rule-based fallback classifier. Order matters:
// earlier themes win when more than maxThemes match.
var themeKeywords = []struct {
	theme    string
	keywords []string
}{
	{"leadership", []string{"lead", "leader", "manage", "decision", "vision", "strategy", "team"}},
	{"product", []string{"product", "feature", "development", "launch", "innovation", "design"}},
	{"industry insights", []string{"market", "industry", "trend", "analysis", "forecast", "research"}},
	{"personal story", []string{"personal", "experience", "journey", "learned", "story", "challenge"}},
	{"strategy", []string{"strategy", "plan", "goal", "objective", "roadmap", "direction"}},
	{"customer success", []string{"customer", "client", "success", "satisfaction", "feedback", "support"}},
	{"team building", []string{"team", "collaboration", "culture", "hiring", "talent", "growth"}},
	{"innovation", []string{"innovation", "creative", "new", "breakthrough", "technology", "future"}},
}

// keywordThemes matches themes by keyword presence, capped at maxThemes.
func keywordThemes(text string) []string {
	lower := strings.ToLower(text)

	var detected []string
	for _, entry := range themeKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				detected = append(detected, entry.theme)
				break
			}
		}
		if len(detected) == maxThemes {
			break
		}
	}
	return detected
}
