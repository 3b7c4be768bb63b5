package itemrequest

import (
	"context"
	"strings"

	"github.com/jonboulle/clockwork"

	"github.com/shareit/shareit-backend/internal/item"
	"github.com/shareit/shareit-backend/internal/user"
)

type Service interface {
	Create(ctx context.Context, requestorID int64, description string) (*ItemRequest, error)
	ListOwn(ctx context.Context, userID int64) ([]*ItemRequest, error)
	ListOthers(ctx context.Context, userID int64, offset, limit int) ([]*ItemRequest, error)
	GetByID(ctx context.Context, userID, id int64) (*ItemRequest, error)
}

type service struct {
	repo        Repository
	items       item.Repository
	userService user.Service
	clock       clockwork.Clock
}

func NewService(repo Repository, items item.Repository, userService user.Service, clock clockwork.Clock) Service {
	return &service{
		repo:        repo,
		items:       items,
		userService: userService,
		clock:       clock,
	}
}

func (s *service) Create(ctx context.Context, requestorID int64, description string) (*ItemRequest, error) {
	if _, err := s.userService.GetByID(ctx, requestorID); err != nil {
		return nil, err
	}

	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrDescriptionRequired
	}

	req := &ItemRequest{
		Description: description,
		RequestorID: requestorID,
		Created:     s.clock.Now().UTC(),
	}
	if err := s.repo.Create(ctx, req); err != nil {
		return nil, err
	}
	req.Items = []*item.Item{}
	return req, nil
}

func (s *service) ListOwn(ctx context.Context, userID int64) ([]*ItemRequest, error) {
	if _, err := s.userService.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	list, err := s.repo.ListByRequestor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.attachItems(ctx, list)
}

func (s *service) ListOthers(ctx context.Context, userID int64, offset, limit int) ([]*ItemRequest, error) {
	if _, err := s.userService.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	list, err := s.repo.ListOthers(ctx, userID, offset, limit)
	if err != nil {
		return nil, err
	}
	return s.attachItems(ctx, list)
}

func (s *service) GetByID(ctx context.Context, userID, id int64) (*ItemRequest, error) {
	if _, err := s.userService.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	req, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	list, err := s.attachItems(ctx, []*ItemRequest{req})
	if err != nil {
		return nil, err
	}
	return list[0], nil
}

func (s *service) attachItems(ctx context.Context, list []*ItemRequest) ([]*ItemRequest, error) {
	if len(list) == 0 {
		return []*ItemRequest{}, nil
	}

	ids := make([]int64, 0, len(list))
	for _, req := range list {
		ids = append(ids, req.ID)
		req.Items = []*item.Item{}
	}

	items, err := s.items.ListByRequestIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]*ItemRequest, len(list))
	for _, req := range list {
		byID[req.ID] = req
	}
	for _, it := range items {
		if req, ok := byID[*it.RequestID]; ok {
			req.Items = append(req.Items, it)
		}
	}
	return list, nil
}
