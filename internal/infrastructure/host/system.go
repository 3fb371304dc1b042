package host

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"telegram-joke-bot/internal/domain/host"
)

// SystemHost supplies host facts from the running process
type SystemHost struct {
	id      string
	clock   host.Clock
	last    atomic.Uint64
	balance atomic.Uint64
}

// NewSystemHost creates a host with the given identifier. An empty id is
// replaced by a random UUID; a nil clock falls back to the wall clock.
func NewSystemHost(id string, clock host.Clock) *SystemHost {
	if id == "" {
		id = uuid.NewString()
	}
	if clock == nil {
		clock = host.ClockFunc(wallClock)
	}
	return &SystemHost{id: id, clock: clock}
}

func wallClock() uint64 {
	ns := time.Now().UnixNano()
	if ns < 0 {
		return 0
	}
	return uint64(ns)
}

// ID returns the process self-identifier
func (h *SystemHost) ID() string { return h.id }

// Now returns the clock reading, never smaller than a previous one
func (h *SystemHost) Now() uint64 {
	now := h.clock.Now()
	for {
		last := h.last.Load()
		if now <= last {
			return last
		}
		if h.last.CompareAndSwap(last, now) {
			return now
		}
	}
}

// Balance returns the current credit balance
func (h *SystemHost) Balance() uint64 { return h.balance.Load() }

// AcceptCredits takes everything available
func (h *SystemHost) AcceptCredits(available uint64) uint64 {
	h.balance.Add(available)
	return available
}
