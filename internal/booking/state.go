package booking

import (
	"time"

	"github.com/shareit/shareit-backend/internal/pkg/apperror"
)

// State is a query-time bucket relative to now. It is never persisted.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

var knownStates = map[State]struct{}{
	StateAll:      {},
	StateCurrent:  {},
	StatePast:     {},
	StateFuture:   {},
	StateWaiting:  {},
	StateRejected: {},
}

// ParseState matches raw case-sensitively. An empty string means ALL.
func ParseState(raw string) (State, error) {
	if raw == "" {
		return StateAll, nil
	}
	st := State(raw)
	if _, ok := knownStates[st]; !ok {
		return "", apperror.Validation("Unknown state: " + raw)
	}
	return st, nil
}

// Matches reports whether b falls into the bucket at time now.
func (st State) Matches(b *Booking, now time.Time) bool {
	switch st {
	case StateAll:
		return true
	case StateCurrent:
		return !b.Start.After(now) && !b.End.Before(now)
	case StatePast:
		return b.End.Before(now)
	case StateFuture:
		return b.Start.After(now)
	case StateWaiting:
		return b.Status == StatusWaiting
	case StateRejected:
		return b.Status == StatusRejected
	default:
		return false
	}
}
