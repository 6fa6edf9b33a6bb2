package domain

// ShopStatus is the open/closed flag of the store front.
type ShopStatus int

const (
	ShopClosed ShopStatus = 0
	ShopOpen   ShopStatus = 1
)

// Valid reports whether s is a known status.
func (s ShopStatus) Valid() bool {
	return s == ShopClosed || s == ShopOpen
}

func (s ShopStatus) String() string {
	if s == ShopOpen {
		return "open"
	}
	return "closed"
}
