package gym

// idealMix is the target theme distribution for an executive brand,
// in percent. Order drives the balance report.
var idealMix = []struct {
	theme   string
	percent float64
}{
	{"leadership", 25},
	{"industry insights", 20},
	{"personal story", 15},
	{"strategy", 15},
	{"innovation", 10},
	{"team building", 10},
	{"customer success", 5},
}

const (
	maxLearningSuggestions   = 5
	maxImplementationPrompts = 3
)

var learningResources = map[string][]string{
	"leadership": {
		"Read 'The First 90 Days' by Michael Watkins",
		"Watch Simon Sinek's TED Talk on 'Start With Why'",
		"Follow leadership insights from Brene Brown",
	},
	"industry insights": {
		"Subscribe to McKinsey Global Institute reports",
		"Follow Harvard Business Review weekly summaries",
		"Set up Google Alerts for your industry keywords",
	},
	"personal story": {
		"Read 'The Storytelling Edge' by Shane Snow",
		"Practice the Hero's Journey framework for business stories",
		"Document your weekly 'lessons learned' moments",
	},
	"strategy": {
		"Read 'Good Strategy Bad Strategy' by Richard Rumelt",
		"Study case studies from your industry leaders",
		"Follow strategy frameworks from BCG insights",
	},
	"innovation": {
		"Follow innovation labs from top tech companies",
		"Read 'The Innovator's Dilemma' by Clayton Christensen",
		"Join innovation-focused professional groups",
	},
}

var implementationPrompts = map[string][]string{
	"leadership": {
		"Record a story about a recent difficult decision you made and what you learned",
		"Share your framework for giving constructive feedback to team members",
		"Describe a time when you had to pivot strategy and how you communicated it",
	},
	"personal story": {
		"Tell the story of your biggest career failure and what it taught you",
		"Share what motivated you to join your current company or role",
		"Describe a mentor who shaped your leadership style",
	},
	"industry insights": {
		"Analyze a recent industry report and share your key takeaways",
		"Predict one major trend that will impact your industry in the next 2 years",
		"Compare your industry today vs. 5 years ago - what's changed?",
	},
	"strategy": {
		"Explain your approach to quarterly planning and goal setting",
		"Share how you evaluate and prioritize competing initiatives",
		"Describe your framework for making data-driven decisions",
	},
}

var weeklyChallenges = []string{
	"Share one personal failure and the lesson you learned",
	"Post about an industry trend you disagree with and why",
	"Tell the story behind a major decision you made recently",
	"Share a framework or process that's working well for your team",
	"Write about a book or article that changed your perspective",
}
