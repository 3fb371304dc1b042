package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWebhookURL(t *testing.T) {
	assert.Equal(t, "https://bot.example.com/webhook/s3cret", WebhookURL("https://bot.example.com", "s3cret"))
	assert.Equal(t, "https://bot.example.com/webhook/s3cret", WebhookURL("https://bot.example.com/", "s3cret"))
}

func TestCommands(t *testing.T) {
	var names []string
	for _, c := range Commands() {
		assert.NotEmpty(t, c.Description)
		names = append(names, c.Command)
	}
	assert.Equal(t, []string{"start", "joke", "telljoke", "info"}, names)
}
