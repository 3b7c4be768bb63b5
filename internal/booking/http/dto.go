package http

import (
	"github.com/shareit/shareit-backend/internal/booking"
	"github.com/shareit/shareit-backend/internal/pkg/datetime"
	"github.com/shareit/shareit-backend/internal/pkg/request"
)

type CreateBookingRequest struct {
	ItemID int64              `json:"itemId" binding:"required,min=1"`
	Start  *datetime.DateTime `json:"start" binding:"required"`
	End    *datetime.DateTime `json:"end" binding:"required"`
}

type UpdateStatusRequest struct {
	Approved *bool `form:"approved" binding:"required"`
}

// ListBookingsRequest defines query parameters for both booking lists.
// An empty state means ALL.
type ListBookingsRequest struct {
	request.PageParams
	State string `form:"state"`
}

type ItemTag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type BookerTag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type BookingResponse struct {
	ID     int64             `json:"id"`
	Start  datetime.DateTime `json:"start"`
	End    datetime.DateTime `json:"end"`
	Status booking.Status    `json:"status"`
	Item   ItemTag           `json:"item"`
	Booker BookerTag         `json:"booker"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:     b.ID,
		Start:  datetime.New(b.Start),
		End:    datetime.New(b.End),
		Status: b.Status,
		Item:   ItemTag{ID: b.ItemID, Name: b.ItemName},
		Booker: BookerTag{ID: b.BookerID, Name: b.BookerName},
	}
}

func newListResponse(list []*booking.Booking) []BookingResponse {
	resp := make([]BookingResponse, 0, len(list))
	for _, b := range list {
		resp = append(resp, NewBookingResponse(b))
	}
	return resp
}
