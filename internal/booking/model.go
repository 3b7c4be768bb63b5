package booking

import (
	"time"

	"github.com/shareit/shareit-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.NotFound("booking not found")
	ErrOwnItem          = apperror.NotFound("item not found")
	ErrItemUnavailable  = apperror.Validation("item is not available for booking")
	ErrInvalidTimeRange = apperror.Validation("end must be after start")
	ErrDateInPast       = apperror.Validation("start and end must not be in the past")
	ErrAlreadyDecided   = apperror.Validation("booking has already been approved or rejected")
	ErrInvalidPage      = apperror.Validation("from must be >= 0 and size must be >= 1")
)

// Status is the persisted decision state of a booking.
type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
	StatusCanceled Status = "CANCELED"
)

// validTransitions is the booking state machine. Terminal states map to nothing.
var validTransitions = map[Status][]Status{
	StatusWaiting:  {StatusApproved, StatusRejected},
	StatusApproved: {},
	StatusRejected: {},
	StatusCanceled: {},
}

// CanTransitionTo reports whether moving from s to target is allowed.
func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range validTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are possible from s.
func (s Status) IsTerminal() bool {
	return len(validTransitions[s]) == 0
}

// Booking is a request by a booker to use an item between Start and End.
type Booking struct {
	ID          int64
	Start       time.Time
	End         time.Time
	ItemID      int64
	ItemName    string
	ItemOwnerID int64
	BookerID    int64
	BookerName  string
	Status      Status
}

// Query selects one page of a user's bookings.
type Query struct {
	State  State
	Now    time.Time
	Offset int
	Limit  int
}
