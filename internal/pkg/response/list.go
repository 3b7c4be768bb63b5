package response

// NewList returns items, replacing a nil slice so JSON renders [] instead of null.
func NewList[T any](items []T) []T {
	if items == nil {
		return make([]T, 0)
	}
	return items
}
