package telegram

import (
	"encoding/json"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Update is an inbound Telegram update reduced to the variants the bot acts on.
// It is either a TextMessage or Ignored.
type Update interface {
	isUpdate()
}

// TextMessage is a plain message with text content
type TextMessage struct {
	ChatID int64
	Text   string
}

// Ignored is any update the bot does not answer. Kind names the update field
// that was present, for logging.
type Ignored struct {
	Kind string
}

func (TextMessage) isUpdate() {}
func (Ignored) isUpdate()     {}

// DecodeUpdate parses a webhook body. The returned error is the JSON decoder's
// own error so callers can report it verbatim.
func DecodeUpdate(body []byte) (Update, error) {
	var u tgbotapi.Update
	if err := json.Unmarshal(body, &u); err != nil {
		return nil, err
	}
	return Classify(u), nil
}

// Classify maps a Telegram update onto the Update variants
func Classify(u tgbotapi.Update) Update {
	if u.Message != nil {
		if u.Message.Chat == nil || u.Message.Text == "" {
			return Ignored{Kind: "message"}
		}
		return TextMessage{ChatID: u.Message.Chat.ID, Text: u.Message.Text}
	}

	switch {
	case u.EditedMessage != nil:
		return Ignored{Kind: "edited_message"}
	case u.ChannelPost != nil:
		return Ignored{Kind: "channel_post"}
	case u.EditedChannelPost != nil:
		return Ignored{Kind: "edited_channel_post"}
	case u.InlineQuery != nil:
		return Ignored{Kind: "inline_query"}
	case u.ChosenInlineResult != nil:
		return Ignored{Kind: "chosen_inline_result"}
	case u.CallbackQuery != nil:
		return Ignored{Kind: "callback_query"}
	case u.ShippingQuery != nil:
		return Ignored{Kind: "shipping_query"}
	case u.PreCheckoutQuery != nil:
		return Ignored{Kind: "pre_checkout_query"}
	case u.Poll != nil:
		return Ignored{Kind: "poll"}
	case u.PollAnswer != nil:
		return Ignored{Kind: "poll_answer"}
	}
	return Ignored{Kind: "unknown"}
}
