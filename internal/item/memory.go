package item

import (
	"context"
	"sort"
	"strings"
	"sync"
)

type memoryRepository struct {
	mu            sync.RWMutex
	items         map[int64]Item
	comments      []Comment
	nextID        int64
	nextCommentID int64
}

// NewMemoryRepository creates a Repository kept in process memory.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		items:         make(map[int64]Item),
		nextID:        1,
		nextCommentID: 1,
	}
}

func (r *memoryRepository) Create(_ context.Context, it *Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	it.ID = r.nextID
	r.nextID++
	r.items[it.ID] = copyItem(*it)
	return nil
}

func (r *memoryRepository) GetByID(_ context.Context, id int64) (*Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	it, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	found := copyItem(it)
	return &found, nil
}

func (r *memoryRepository) Update(_ context.Context, it *Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.items[it.ID]
	if !ok {
		return ErrNotFound
	}
	stored.Name = it.Name
	stored.Description = it.Description
	stored.Available = it.Available
	r.items[it.ID] = stored
	return nil
}

func (r *memoryRepository) ListByOwner(_ context.Context, ownerID int64, offset, limit int) ([]*Item, error) {
	return r.filter(func(it Item) bool { return it.OwnerID == ownerID }, offset, limit), nil
}

func (r *memoryRepository) Search(_ context.Context, text string, offset, limit int) ([]*Item, error) {
	needle := strings.ToLower(text)
	return r.filter(func(it Item) bool {
		return it.Available &&
			(strings.Contains(strings.ToLower(it.Name), needle) ||
				strings.Contains(strings.ToLower(it.Description), needle))
	}, offset, limit), nil
}

func (r *memoryRepository) ListByRequestIDs(_ context.Context, requestIDs []int64) ([]*Item, error) {
	wanted := make(map[int64]struct{}, len(requestIDs))
	for _, id := range requestIDs {
		wanted[id] = struct{}{}
	}
	return r.filter(func(it Item) bool {
		if it.RequestID == nil {
			return false
		}
		_, ok := wanted[*it.RequestID]
		return ok
	}, 0, -1), nil
}

func (r *memoryRepository) CreateComment(_ context.Context, c *Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c.ID = r.nextCommentID
	r.nextCommentID++
	r.comments = append(r.comments, *c)
	return nil
}

func (r *memoryRepository) ListComments(_ context.Context, itemIDs []int64) ([]*Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[int64]struct{}, len(itemIDs))
	for _, id := range itemIDs {
		wanted[id] = struct{}{}
	}

	var result []*Comment
	for _, c := range r.comments {
		if _, ok := wanted[c.ItemID]; ok {
			c := c
			result = append(result, &c)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].Created.Equal(result[j].Created) {
			return result[i].Created.Before(result[j].Created)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// filter returns matching items ordered by id. A negative limit means no limit.
func (r *memoryRepository) filter(match func(Item) bool, offset, limit int) []*Item {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*Item
	for _, it := range r.items {
		if match(it) {
			found := copyItem(it)
			matched = append(matched, &found)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	if offset >= len(matched) {
		return nil
	}
	matched = matched[offset:]
	if limit >= 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched
}

func copyItem(it Item) Item {
	if it.RequestID != nil {
		id := *it.RequestID
		it.RequestID = &id
	}
	return it
}
