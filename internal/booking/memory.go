package booking

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shareit/shareit-backend/internal/item"
	"github.com/shareit/shareit-backend/internal/user"
)

type memoryRepository struct {
	mu       sync.RWMutex
	bookings map[int64]Booking
	nextID   int64

	items item.Repository
	users user.Repository
}

// NewMemoryRepository creates a Repository kept in process memory. Item and
// user names are read back from the given repositories so renames show up the
// way a join would; the names captured at creation are used when a lookup fails.
func NewMemoryRepository(items item.Repository, users user.Repository) Repository {
	return &memoryRepository{
		bookings: make(map[int64]Booking),
		nextID:   1,
		items:    items,
		users:    users,
	}
}

func (r *memoryRepository) Create(_ context.Context, b *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b.ID = r.nextID
	r.nextID++
	r.bookings[b.ID] = *b
	return nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id int64) (*Booking, error) {
	r.mu.RLock()
	b, ok := r.bookings[id]
	r.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	r.refresh(ctx, &b)
	return &b, nil
}

func (r *memoryRepository) ListByBooker(ctx context.Context, bookerID int64, q Query) ([]*Booking, error) {
	return r.page(ctx, func(b Booking) bool {
		return b.BookerID == bookerID && q.State.Matches(&b, q.Now)
	}, q), nil
}

func (r *memoryRepository) ListByOwner(ctx context.Context, ownerID int64, q Query) ([]*Booking, error) {
	return r.page(ctx, func(b Booking) bool {
		return b.ItemOwnerID == ownerID && q.State.Matches(&b, q.Now)
	}, q), nil
}

func (r *memoryRepository) ListByBookerItemStatusBefore(ctx context.Context, bookerID, itemID int64, status Status, before time.Time) ([]*Booking, error) {
	result := r.collect(ctx, func(b Booking) bool {
		return b.BookerID == bookerID && b.ItemID == itemID && b.Status == status && b.End.Before(before)
	})
	sort.Slice(result, func(i, j int) bool {
		if !result[i].End.Equal(result[j].End) {
			return result[i].End.After(result[j].End)
		}
		return result[i].ID > result[j].ID
	})
	return result, nil
}

func (r *memoryRepository) ListByItemAndStatus(ctx context.Context, itemID int64, status Status) ([]*Booking, error) {
	result := r.collect(ctx, func(b Booking) bool {
		return b.ItemID == itemID && b.Status == status
	})
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Start.Equal(result[j].Start) {
			return result[i].Start.Before(result[j].Start)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (r *memoryRepository) UpdateStatus(_ context.Context, id int64, from, to Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return ErrNotFound
	}
	if b.Status != from {
		return ErrAlreadyDecided
	}
	b.Status = to
	r.bookings[id] = b
	return nil
}

// page sorts matches by start descending and cuts one page out of them.
func (r *memoryRepository) page(ctx context.Context, match func(Booking) bool, q Query) []*Booking {
	result := r.collect(ctx, match)
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Start.Equal(result[j].Start) {
			return result[i].Start.After(result[j].Start)
		}
		return result[i].ID > result[j].ID
	})

	if q.Offset >= len(result) {
		return []*Booking{}
	}
	result = result[q.Offset:]
	if q.Limit < len(result) {
		result = result[:q.Limit]
	}
	return result
}

func (r *memoryRepository) collect(ctx context.Context, match func(Booking) bool) []*Booking {
	r.mu.RLock()
	var result []*Booking
	for _, b := range r.bookings {
		if match(b) {
			b := b
			result = append(result, &b)
		}
	}
	r.mu.RUnlock()

	for _, b := range result {
		r.refresh(ctx, b)
	}
	return result
}

func (r *memoryRepository) refresh(ctx context.Context, b *Booking) {
	if it, err := r.items.GetByID(ctx, b.ItemID); err == nil {
		b.ItemName = it.Name
	}
	if u, err := r.users.GetByID(ctx, b.BookerID); err == nil {
		b.BookerName = u.Name
	}
}
