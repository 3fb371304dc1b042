// Package host describes the facts the bot needs from the process that runs
// it: who it is, what time it is and how many credits it holds.
package host

// Clock returns a non-decreasing nanosecond reading
type Clock interface {
	Now() uint64
}

// ClockFunc adapts a plain function to the Clock interface
type ClockFunc func() uint64

// Now implements Clock
func (f ClockFunc) Now() uint64 { return f() }

// Host is the collaborator that owns identity, time and resource balance
type Host interface {
	Clock

	// ID returns the process self-identifier
	ID() string

	// Balance returns the current credit balance
	Balance() uint64

	// AcceptCredits takes all of the available credits and returns the amount accepted
	AcceptCredits(available uint64) uint64
}
