package http

import (
	"github.com/shareit/shareit-backend/internal/item"
	"github.com/shareit/shareit-backend/internal/itemrequest"
	"github.com/shareit/shareit-backend/internal/pkg/datetime"
)

type CreateItemRequestBody struct {
	Description string `json:"description" binding:"required,notblank"`
}

// AnswerResponse is an item listed in answer to a request.
type AnswerResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     int64  `json:"ownerId"`
	RequestID   int64  `json:"requestId"`
}

type ItemRequestResponse struct {
	ID          int64             `json:"id"`
	Description string            `json:"description"`
	Created     datetime.DateTime `json:"created"`
	Items       []AnswerResponse  `json:"items"`
}

func NewItemRequestResponse(req *itemrequest.ItemRequest) ItemRequestResponse {
	answers := make([]AnswerResponse, 0, len(req.Items))
	for _, it := range req.Items {
		answers = append(answers, newAnswerResponse(it, req.ID))
	}

	return ItemRequestResponse{
		ID:          req.ID,
		Description: req.Description,
		Created:     datetime.New(req.Created),
		Items:       answers,
	}
}

func newAnswerResponse(it *item.Item, requestID int64) AnswerResponse {
	return AnswerResponse{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Available:   it.Available,
		OwnerID:     it.OwnerID,
		RequestID:   requestID,
	}
}

func newListResponse(list []*itemrequest.ItemRequest) []ItemRequestResponse {
	resp := make([]ItemRequestResponse, 0, len(list))
	for _, req := range list {
		resp = append(resp, NewItemRequestResponse(req))
	}
	return resp
}
