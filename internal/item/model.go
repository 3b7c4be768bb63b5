package item

import (
	"context"
	"time"

	"github.com/shareit/shareit-backend/internal/pkg/apperror"
)

var (
	ErrNotFound            = apperror.NotFound("item not found")
	ErrRequestNotFound     = apperror.NotFound("item request not found")
	ErrNameRequired        = apperror.Validation("name must not be blank")
	ErrDescriptionRequired = apperror.Validation("description must not be blank")
	ErrCommentRequired     = apperror.Validation("comment text must not be blank")
	ErrCommentNotAllowed   = apperror.Validation("only users who finished an approved booking of the item can comment")
)

// Item is a thing an owner offers for booking.
type Item struct {
	ID          int64
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	RequestID   *int64
}

// Comment is feedback left by a past booker.
type Comment struct {
	ID         int64
	Text       string
	ItemID     int64
	AuthorID   int64
	AuthorName string
	Created    time.Time
}

// BookingRef is the short form of a booking shown next to an item.
type BookingRef struct {
	ID       int64
	BookerID int64
}

// Details is an item together with its comments and, for the owner, the
// nearest approved bookings around now.
type Details struct {
	Item
	LastBooking *BookingRef
	NextBooking *BookingRef
	Comments    []*Comment
}

// BookingReader exposes the booking history the item views depend on.
type BookingReader interface {
	// LastAndNext returns the latest approved booking that started at or before now
	// and the earliest approved booking starting after now. Either may be nil.
	LastAndNext(ctx context.Context, itemID int64, now time.Time) (last, next *BookingRef, err error)
	// HasFinishedBooking reports whether the booker has an approved booking of the
	// item that ended before the given time.
	HasFinishedBooking(ctx context.Context, bookerID, itemID int64, before time.Time) (bool, error)
}

// RequestChecker reports whether an item request exists.
type RequestChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}
