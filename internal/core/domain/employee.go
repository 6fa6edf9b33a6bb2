package domain

// Employee is a back-office account.
type Employee struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Phone        string `json:"phone"`
	Sex          string `json:"sex"`
	IDNumber     string `json:"idNumber"`
	Status       int    `json:"status"` // StatusEnabled or StatusDisabled
	AuditFields
}

// IsEnabled reports whether the account may log in.
func (e *Employee) IsEnabled() bool {
	return e.Status == StatusEnabled
}
