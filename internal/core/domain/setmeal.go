package domain

import "github.com/shopspring/decimal"

// Setmeal is a combo of dishes sold at a single price.
type Setmeal struct {
	ID          int64           `json:"id"`
	CategoryID  int64           `json:"categoryId"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Status      int             `json:"status"`
	Description string          `json:"description"`
	Image       string          `json:"image"` // OSS object URL
	AuditFields
}
