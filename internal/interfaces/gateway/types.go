// Package gateway implements the HTTP-shaped entry points of the bot. A host
// hands over a Request and gets a Response back; the host may evaluate a
// request read-only first and re-run it through Update when the response asks
// for an upgrade.
package gateway

import "strings"

// HeaderField is one header line. Order is preserved and keys may repeat.
type HeaderField struct {
	Key   string
	Value string
}

// Request is an inbound HTTP-shaped call
type Request struct {
	Method  string
	URL     string
	Headers []HeaderField
	Body    []byte
}

// Path returns the request target without its query string
func (r Request) Path() string {
	path, _, _ := strings.Cut(r.URL, "?")
	return path
}

// Response is the result of evaluating a Request
type Response struct {
	StatusCode int
	Headers    []HeaderField
	Body       []byte
	// Upgrade asks the host to re-run the request through the state-mutating entry point
	Upgrade bool
}

// Header returns the first value of key, matched case-insensitively
func (r Response) Header(key string) (string, bool) {
	for _, h := range r.Headers {
		if strings.EqualFold(h.Key, key) {
			return h.Value, true
		}
	}
	return "", false
}
