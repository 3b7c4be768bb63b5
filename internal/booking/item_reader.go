package booking

import (
	"context"
	"time"

	"github.com/shareit/shareit-backend/internal/item"
)

type itemBookingReader struct {
	repo Repository
}

// NewItemBookingReader exposes approved bookings to the item service.
func NewItemBookingReader(repo Repository) item.BookingReader {
	return &itemBookingReader{repo: repo}
}

func (r *itemBookingReader) LastAndNext(ctx context.Context, itemID int64, now time.Time) (*item.BookingRef, *item.BookingRef, error) {
	approved, err := r.repo.ListByItemAndStatus(ctx, itemID, StatusApproved)
	if err != nil {
		return nil, nil, err
	}

	var last, next *item.BookingRef
	for _, b := range approved {
		ref := &item.BookingRef{ID: b.ID, BookerID: b.BookerID}
		if b.Start.After(now) {
			if next == nil {
				next = ref
			}
			continue
		}
		last = ref
	}
	return last, next, nil
}

func (r *itemBookingReader) HasFinishedBooking(ctx context.Context, bookerID, itemID int64, before time.Time) (bool, error) {
	finished, err := r.repo.ListByBookerItemStatusBefore(ctx, bookerID, itemID, StatusApproved, before)
	if err != nil {
		return false, err
	}
	return len(finished) > 0, nil
}
