package shared

import (
	"fmt"

	"telegram-joke-bot/internal/domain/joke"
)

const (
	// GreetingText answers /start
	GreetingText = "Hello! I am a Telegram joke bot. Try /joke, /info"

	// TellJokeUsageText answers /telljoke without a joke
	TellJokeUsageText = "Put the joke after /telljoke!"

	// JokeNotedText acknowledges a learned joke
	JokeNotedText = "Ha! Ha! Duly noted."
)

// FormatJokeText formats a joke with its position among total jokes
func FormatJokeText(j *joke.Joke, total int) string {
	return fmt.Sprintf(
		"Joke %d of %d:\n%s\n(Got a better one? Tell me about it, with /telljoke …!)",
		j.Position(), total, j.Text())
}

// FormatUnknownText echoes text the bot does not understand
func FormatUnknownText(text string) string {
	return fmt.Sprintf("What do you mean, %s?", text)
}
