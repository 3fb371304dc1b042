package telegram

import (
	"encoding/json"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// MethodSendMessage is the Bot API method a reply envelope invokes
const MethodSendMessage = "sendMessage"

// Mode tells a handler whether it may commit state changes
type Mode int

const (
	// ModeQuery is a read-only evaluation; mutations are reported, not committed
	ModeQuery Mode = iota
	// ModeUpdate is a state-mutating evaluation
	ModeUpdate
)

func (m Mode) String() string {
	if m == ModeUpdate {
		return "update"
	}
	return "query"
}

// Reply is the text a handler wants to send back to a chat
type Reply struct {
	ChatID int64
	Text   string
	// Upgrade is set when the command mutates shared state
	Upgrade bool
}

// Envelope is a sendMessage call returned in the webhook response body
type Envelope struct {
	Method string `json:"method"`
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
}

// NewEnvelope wraps a reply into a sendMessage call
func NewEnvelope(r Reply) Envelope {
	msg := tgbotapi.NewMessage(r.ChatID, r.Text)
	return Envelope{
		Method: MethodSendMessage,
		ChatID: msg.ChatID,
		Text:   msg.Text,
	}
}

// Encode serializes the envelope as JSON
func (e Envelope) Encode() ([]byte, error) {
	return json.Marshal(e)
}
