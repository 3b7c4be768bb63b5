package booking

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/shareit/shareit-backend/internal/item"
	"github.com/shareit/shareit-backend/internal/user"
)

type CreateRequest struct {
	ItemID int64
	Start  time.Time
	End    time.Time
}

type Service interface {
	Create(ctx context.Context, bookerID int64, req CreateRequest) (*Booking, error)
	// UpdateStatus approves or rejects a waiting booking on behalf of the item owner.
	UpdateStatus(ctx context.Context, actorID, bookingID int64, approved bool) (*Booking, error)
	// GetByID returns the booking to its booker or to the item owner only.
	GetByID(ctx context.Context, actorID, bookingID int64) (*Booking, error)
	ListByBooker(ctx context.Context, userID int64, state string, offset, limit int) ([]*Booking, error)
	ListByOwner(ctx context.Context, userID int64, state string, offset, limit int) ([]*Booking, error)
}

type service struct {
	repo        Repository
	userService user.Service
	itemService item.Service
	clock       clockwork.Clock
}

func NewService(repo Repository, userService user.Service, itemService item.Service, clock clockwork.Clock) Service {
	return &service{
		repo:        repo,
		userService: userService,
		itemService: itemService,
		clock:       clock,
	}
}

func (s *service) Create(ctx context.Context, bookerID int64, req CreateRequest) (*Booking, error) {
	booker, err := s.userService.GetByID(ctx, bookerID)
	if err != nil {
		return nil, err
	}

	it, err := s.itemService.GetByID(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}

	if !it.Available {
		return nil, ErrItemUnavailable
	}

	// Self-booking is reported as a missing item.
	if it.OwnerID == booker.ID {
		return nil, ErrOwnItem
	}

	start, end := req.Start.UTC(), req.End.UTC()
	if !end.After(start) {
		return nil, ErrInvalidTimeRange
	}

	now := s.clock.Now().UTC()
	if start.Before(now) || end.Before(now) {
		return nil, ErrDateInPast
	}

	b := &Booking{
		Start:       start,
		End:         end,
		ItemID:      it.ID,
		ItemName:    it.Name,
		ItemOwnerID: it.OwnerID,
		BookerID:    booker.ID,
		BookerName:  booker.Name,
		Status:      StatusWaiting,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) UpdateStatus(ctx context.Context, actorID, bookingID int64, approved bool) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.ItemOwnerID != actorID {
		return nil, ErrNotFound
	}

	if b.Status.IsTerminal() {
		return nil, ErrAlreadyDecided
	}

	target := StatusRejected
	if approved {
		target = StatusApproved
	}
	if !b.Status.CanTransitionTo(target) {
		return nil, ErrAlreadyDecided
	}

	if err := s.repo.UpdateStatus(ctx, b.ID, b.Status, target); err != nil {
		return nil, err
	}
	b.Status = target
	return b, nil
}

func (s *service) GetByID(ctx context.Context, actorID, bookingID int64) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.BookerID != actorID && b.ItemOwnerID != actorID {
		return nil, ErrNotFound
	}
	return b, nil
}

func (s *service) ListByBooker(ctx context.Context, userID int64, state string, offset, limit int) ([]*Booking, error) {
	q, err := s.query(ctx, userID, state, offset, limit)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByBooker(ctx, userID, q)
}

func (s *service) ListByOwner(ctx context.Context, userID int64, state string, offset, limit int) ([]*Booking, error) {
	q, err := s.query(ctx, userID, state, offset, limit)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByOwner(ctx, userID, q)
}

// query checks the user first, then the state name, then paging.
func (s *service) query(ctx context.Context, userID int64, state string, offset, limit int) (Query, error) {
	if _, err := s.userService.GetByID(ctx, userID); err != nil {
		return Query{}, err
	}

	st, err := ParseState(state)
	if err != nil {
		return Query{}, err
	}

	if offset < 0 || limit < 1 {
		return Query{}, ErrInvalidPage
	}

	return Query{
		State:  st,
		Now:    s.clock.Now().UTC(),
		Offset: offset,
		Limit:  limit,
	}, nil
}
