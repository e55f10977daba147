package domain

import (
	"time"

	"github.com/google/uuid"
)

// Model is the identity shared by every persisted entity.
type Model struct {
	ID uuid.UUID `gorm:"primaryKey;type:uuid" json:"id"`
}

// EnsureID assigns a fresh identifier when none has been set yet.
func (m *Model) EnsureID() {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
}

// CreationAudit records who created a row and when.
type CreationAudit struct {
	CreatedDate time.Time  `gorm:"not null;index" json:"createdDate"`
	CreatedBy   *uuid.UUID `gorm:"type:uuid" json:"createdBy,omitempty"`
}

// StampCreated sets the creation timestamp unless the caller already did.
func (a *CreationAudit) StampCreated(at time.Time) {
	if a.CreatedDate.IsZero() {
		a.CreatedDate = at
	}
}

// AuditFields adds last-modification tracking on top of CreationAudit.
type AuditFields struct {
	CreationAudit
	ModifiedDate *time.Time `json:"modifiedDate,omitempty"`
	ModifiedBy   *uuid.UUID `gorm:"type:uuid" json:"modifiedBy,omitempty"`
}

func (a *AuditFields) StampModified(at time.Time) {
	a.ModifiedDate = &at
}
