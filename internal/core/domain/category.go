package domain

// CategoryType distinguishes dish categories from setmeal categories.
type CategoryType int

const (
	CategoryTypeDish    CategoryType = 1
	CategoryTypeSetmeal CategoryType = 2
)

// Category groups dishes or setmeals on the menu.
type Category struct {
	ID     int64        `json:"id"`
	Type   CategoryType `json:"type"`
	Name   string       `json:"name"`
	Sort   int          `json:"sort"`
	Status int          `json:"status"`
	AuditFields
}
