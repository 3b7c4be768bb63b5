package itemrequest

import (
	"context"
	"sort"
	"sync"
)

type memoryRepository struct {
	mu       sync.RWMutex
	requests map[int64]ItemRequest
	nextID   int64
}

// NewMemoryRepository creates a Repository kept in process memory.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		requests: make(map[int64]ItemRequest),
		nextID:   1,
	}
}

func (r *memoryRepository) Create(_ context.Context, req *ItemRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	req.ID = r.nextID
	r.nextID++
	stored := *req
	stored.Items = nil
	r.requests[req.ID] = stored
	return nil
}

func (r *memoryRepository) GetByID(_ context.Context, id int64) (*ItemRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, ok := r.requests[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &req, nil
}

func (r *memoryRepository) Exists(_ context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.requests[id]
	return ok, nil
}

func (r *memoryRepository) ListByRequestor(_ context.Context, requestorID int64) ([]*ItemRequest, error) {
	return r.filter(func(req ItemRequest) bool { return req.RequestorID == requestorID }, 0, -1), nil
}

func (r *memoryRepository) ListOthers(_ context.Context, userID int64, offset, limit int) ([]*ItemRequest, error) {
	return r.filter(func(req ItemRequest) bool { return req.RequestorID != userID }, offset, limit), nil
}

// filter returns matching requests newest first. A negative limit means no limit.
func (r *memoryRepository) filter(match func(ItemRequest) bool, offset, limit int) []*ItemRequest {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*ItemRequest
	for _, req := range r.requests {
		if match(req) {
			req := req
			matched = append(matched, &req)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].Created.Equal(matched[j].Created) {
			return matched[i].Created.After(matched[j].Created)
		}
		return matched[i].ID > matched[j].ID
	})

	if offset >= len(matched) {
		return nil
	}
	matched = matched[offset:]
	if limit >= 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched
}
