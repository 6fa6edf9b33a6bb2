package domain

import "time"

// SystemActorID stamps records written without an authenticated employee
// (startup bootstrap, background jobs).
const SystemActorID int64 = 0

// Status values shared by employees, categories and setmeals.
const (
	StatusDisabled = 0
	StatusEnabled  = 1
)

// Auditable is implemented by entities whose audit fields can be stamped
// without reflection.
type Auditable interface {
	SetCreated(at time.Time, by int64)
	SetUpdated(at time.Time, by int64)
}

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt time.Time `json:"createTime"`
	CreatedBy int64     `json:"createUser"` // Employee ID reference
	UpdatedAt time.Time `json:"updateTime"`
	UpdatedBy int64     `json:"updateUser"` // Employee ID reference
}

// SetCreated stamps the creation pair.
func (a *AuditFields) SetCreated(at time.Time, by int64) {
	a.CreatedAt = at
	a.CreatedBy = by
}

// SetUpdated stamps the last-update pair.
func (a *AuditFields) SetUpdated(at time.Time, by int64) {
	a.UpdatedAt = at
	a.UpdatedBy = by
}

var _ Auditable = (*AuditFields)(nil)
