package domain

import (
	"time"
)

type Tenant struct {
	Model
	Name               string     `gorm:"type:varchar(200);not null" json:"name"`
	Code               string     `gorm:"type:varchar(50);not null;uniqueIndex:uq_tenants_code" json:"code"`
	SubscriptionPlanID string     `gorm:"type:varchar(100);not null" json:"subscriptionPlanId"`
	Status             Status     `gorm:"type:varchar(20);not null;index:idx_tenants_status" json:"status"`
	ContactEmail       string     `gorm:"type:varchar(255)" json:"contactEmail"`
	ContactPhone       string     `gorm:"type:varchar(20)" json:"contactPhone"`
	Mobile             string     `gorm:"type:varchar(20)" json:"mobile"`
	Address            string     `gorm:"type:varchar(500)" json:"address"`
	City               string     `gorm:"type:varchar(100)" json:"city"`
	State              string     `gorm:"type:varchar(100)" json:"state"`
	Country            string     `gorm:"type:varchar(100)" json:"country"`
	PostalCode         string     `gorm:"type:varchar(20)" json:"postalCode"`
	IsActive           bool       `gorm:"not null" json:"isActive"`
	SubscriptionStart  *time.Time `json:"subscriptionStart,omitempty"`
	SubscriptionEnd    *time.Time `json:"subscriptionEnd,omitempty"`
	MaxUsers           int        `gorm:"not null;default:0" json:"maxUsers"`
	MaxStorageGB       int        `gorm:"not null;default:0" json:"maxStorageGb"`
	AuditFields
}

func (Tenant) TableName() string {
	return "tenants"
}

// Deactivate soft-deletes the tenant.
func (t *Tenant) Deactivate() {
	t.IsActive = false
	t.Status = StatusInactive
}

type TenantFilter struct {
	PageRequest
	SearchTerm string
	Status     Status
}
