package telegram

import (
	"context"
	"strings"
)

// Command is a text message addressed to a handler
type Command struct {
	ChatID int64
	Text   string
	// Args is the text following a matched prefix; empty for exact matches
	Args string
}

// HandlerFunc is a function that handles a command
type HandlerFunc func(ctx context.Context, cmd Command, mode Mode) (Reply, error)

// Dispatcher handles routing of text messages to appropriate handlers
type Dispatcher interface {
	// RegisterHandler registers a handler for an exact command text
	RegisterHandler(command string, handler HandlerFunc)
	// RegisterPrefix registers a handler for texts starting with prefix
	RegisterPrefix(prefix string, handler HandlerFunc)
	// Dispatch dispatches a message to the appropriate handler
	Dispatch(ctx context.Context, msg TextMessage, mode Mode) (Reply, error)
}

type prefixRoute struct {
	prefix  string
	handler HandlerFunc
}

// NewDispatcher creates a new dispatcher instance. Exact matches win over
// prefixes, prefixes are tried in registration order and fallback handles
// everything else.
func NewDispatcher(fallback HandlerFunc) Dispatcher {
	return &defaultDispatcher{
		handlers: make(map[string]HandlerFunc),
		fallback: fallback,
	}
}

type defaultDispatcher struct {
	handlers map[string]HandlerFunc
	prefixes []prefixRoute
	fallback HandlerFunc
}

func (d *defaultDispatcher) RegisterHandler(command string, handler HandlerFunc) {
	d.handlers[command] = handler
}

func (d *defaultDispatcher) RegisterPrefix(prefix string, handler HandlerFunc) {
	d.prefixes = append(d.prefixes, prefixRoute{prefix: prefix, handler: handler})
}

func (d *defaultDispatcher) Dispatch(ctx context.Context, msg TextMessage, mode Mode) (Reply, error) {
	cmd := Command{ChatID: msg.ChatID, Text: msg.Text}

	if handler, exists := d.handlers[msg.Text]; exists {
		return handler(ctx, cmd, mode)
	}

	for _, route := range d.prefixes {
		if args, ok := strings.CutPrefix(msg.Text, route.prefix); ok {
			cmd.Args = args
			return route.handler(ctx, cmd, mode)
		}
	}

	if d.fallback == nil {
		return Reply{}, nil
	}
	return d.fallback(ctx, cmd, mode)
}
