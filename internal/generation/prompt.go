package generation

import (
	"fmt"

	"brandstudio/internal/store"
)

// postSystemPrompt captures the instructions sent to the configured LLM when
// drafting a social post. Update this text centrally so every call stays in
// sync.
const postSystemPrompt = `You write in a warm, conversational tone with a mix of playful corporate humor, polished storytelling, and confident-but-approachable style. Your writing should feel like a senior leader chatting with a colleague over coffee, part mentor, part meme-sharer. You sound friendly and personable, but you're also sharp and narrative-driven. Prioritize short to medium-length sentences, and lean into a casual rhythm with professional polish. Avoid jargon or cliche phrases like "here's the kicker."

Style guide:

- Write in first-person, as if narrating your own experience.

- Blend personal anecdotes, quick insights, and useful advice.

- Be casually witty, slightly self-deprecating, and confidently insightful.

- Use vivid, concrete language and sensory phrasing when appropriate.

- Switch between short, punchy sentences and longer, flowing ones.

- Position achievements with humility and humor.

Tone: friendly, energetic, and self-aware. Confident but never arrogant. Lightly pokes fun at corporate norms while clearly understanding them.

Create a social media post based on the content the user provides. Keep it under 1300 characters and include relevant hashtags.`

// systemPrompt returns the per-format system prompt for a generation request.
func systemPrompt(contentType store.ContentType, tone string) string {
	switch contentType {
	case store.TypePost:
		return postSystemPrompt
	case store.TypeScript:
		return fmt.Sprintf("Create a 60-90 second video script in a %s tone based on the content the user provides. Include clear talking points and engagement hooks.", tone)
	case store.TypeNewsletter:
		return fmt.Sprintf("Create a newsletter snippet in a %s tone based on the content the user provides. Make it informative and actionable for business leaders.", tone)
	default:
		return fmt.Sprintf("Create engaging business content in a %s tone based on the content the user provides.", tone)
	}
}

// lengthDirective translates a requested length into an instruction appended
// to the system prompt. Unknown values are ignored rather than rejected.
func lengthDirective(length string) string {
	switch length {
	case "short":
		return " Keep it brief, a few sentences at most."
	case "long":
		return " Go deeper than usual and develop the idea fully."
	default:
		return ""
	}
}

// themeSystemPrompt instructs the LLM to classify transcript themes as JSON.
const themeSystemPrompt = `You are an expert at analyzing business content themes. Identify the main themes of the text from the following categories: leadership, product, industry insights, personal story, strategy, innovation, team building, customer success, market trends, company culture.

You must respond ONLY with a JSON object like: {"themes": ["leadership", "strategy"]}

Pick at most 3 themes. Now classify this text:`
