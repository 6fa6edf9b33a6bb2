package autofill

// OperationType tags a persistence call with the audit fields it must populate.
// The zero value marks a call that is not subject to auto-fill.
type OperationType int

const (
	OperationNone OperationType = iota
	OperationInsert
	OperationUpdate
)

func (o OperationType) String() string {
	switch o {
	case OperationInsert:
		return "INSERT"
	case OperationUpdate:
		return "UPDATE"
	default:
		return "NONE"
	}
}

// fields lists the audit fields an operation stamps, in assignment order.
func (o OperationType) fields() []auditField {
	switch o {
	case OperationInsert:
		return []auditField{createdAt, createdBy, updatedAt, updatedBy}
	case OperationUpdate:
		return []auditField{updatedAt, updatedBy}
	default:
		return nil
	}
}
