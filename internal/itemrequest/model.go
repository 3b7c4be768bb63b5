package itemrequest

import (
	"time"

	"github.com/shareit/shareit-backend/internal/item"
	"github.com/shareit/shareit-backend/internal/pkg/apperror"
)

var (
	ErrNotFound            = apperror.NotFound("item request not found")
	ErrDescriptionRequired = apperror.Validation("description must not be blank")
)

// ItemRequest is a user's ask for an item nobody has listed yet.
type ItemRequest struct {
	ID          int64
	Description string
	RequestorID int64
	Created     time.Time

	// Items answering the request, filled by the service.
	Items []*item.Item
}
