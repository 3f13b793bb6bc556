package generation

import (
	"fmt"

	"brandstudio/internal/store"
	"brandstudio/internal/textutil"
)

// fallbackBody renders a static template for the given format when no
// generation service is reachable. The source text is embedded verbatim,
// truncated to keep the draft skimmable.
func fallbackBody(contentType store.ContentType, source string) string {
	switch contentType {
	case store.TypePost:
		return fmt.Sprintf(`Just had one of those lightbulb moments...

%s

Anyone else experiencing this? Drop your thoughts below, I'm genuinely curious what your take is!

(And yes, I may have overthought this during my third coffee of the day.)

#Leadership #RealTalk #Growth`, textutil.Truncate(source, 200))
	case store.TypeScript:
		return fmt.Sprintf(`[HOOK] Okay, so this just happened and I had to share...

[MAIN POINT] %s

[PERSONAL TOUCH] Classic case of "learn something new every day," right?

[CALL TO ACTION] What's your experience with this? I'd love to hear your stories in the comments!

[DURATION: 60-90 seconds]`, textutil.Truncate(source, 150))
	case store.TypeNewsletter:
		return fmt.Sprintf(`This Week's "Aha!" Moment

So here's what went down this week...

%s

The Real Talk: sometimes the best insights come from the most unexpected places.

Your Move: take a moment to think about where your latest breakthrough came from. I bet it wasn't where you expected.

Stay curious`, textutil.Truncate(source, 300))
	default:
		return source
	}
}
