package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MinCreditScore = 300
	MaxCreditScore = 850

	DefaultPreferredLanguage = "en"
)

type Customer struct {
	Model
	TenantID               uuid.UUID       `gorm:"type:uuid;not null;index:idx_customers_tenant_id;uniqueIndex:uq_customers_tenant_code,priority:1" json:"tenantId"`
	CustomerCode           string          `gorm:"type:varchar(50);not null;uniqueIndex:uq_customers_tenant_code,priority:2" json:"customerCode"`
	CustomerType           CustomerType    `gorm:"type:varchar(20);not null" json:"customerType"`
	FirstName              string          `gorm:"type:varchar(100)" json:"firstName"`
	LastName               string          `gorm:"type:varchar(100)" json:"lastName"`
	CompanyName            string          `gorm:"type:varchar(200)" json:"companyName"`
	Email                  string          `gorm:"type:varchar(255);index:idx_customers_email" json:"email"`
	Phone                  string          `gorm:"type:varchar(20)" json:"phone"`
	Mobile                 string          `gorm:"type:varchar(20)" json:"mobile"`
	DateOfBirth            *time.Time      `json:"dateOfBirth,omitempty"`
	Gender                 string          `gorm:"type:varchar(20)" json:"gender"`
	Address                string          `gorm:"type:varchar(500)" json:"address"`
	City                   string          `gorm:"type:varchar(100)" json:"city"`
	State                  string          `gorm:"type:varchar(100)" json:"state"`
	Country                string          `gorm:"type:varchar(100)" json:"country"`
	PostalCode             string          `gorm:"type:varchar(20)" json:"postalCode"`
	TaxID                  string          `gorm:"type:varchar(50)" json:"taxId"`
	Segment                string          `gorm:"type:varchar(50)" json:"segment"`
	Status                 Status          `gorm:"type:varchar(20);not null;index:idx_customers_status" json:"status"`
	AssignedUserID         *uuid.UUID      `gorm:"type:uuid" json:"assignedUserId,omitempty"`
	Source                 string          `gorm:"type:varchar(50)" json:"source"`
	Tags                   string          `gorm:"type:varchar(500)" json:"tags"`
	PreferredLanguage      string          `gorm:"type:varchar(10);not null" json:"preferredLanguage"`
	PreferredContactMethod string          `gorm:"type:varchar(20)" json:"preferredContactMethod"`
	CreditLimit            decimal.Decimal `gorm:"type:numeric(18,2);not null" json:"creditLimit"`
	CreditScore            *int            `json:"creditScore,omitempty"`
	IsActive               bool            `gorm:"not null" json:"isActive"`
	AuditFields
	Tenant *Tenant `gorm:"foreignKey:TenantID" json:"-"`
}

func (Customer) TableName() string {
	return "customers"
}

// FullName is the display name: the personal name for individuals and the
// company name for corporate customers.
func (c *Customer) FullName() string {
	if c.CustomerType == CustomerTypeIndividual {
		return strings.TrimSpace(c.FirstName + " " + c.LastName)
	}
	return c.CompanyName
}

func (c *Customer) Deactivate() {
	c.IsActive = false
	c.Status = StatusInactive
}

type CustomerFilter struct {
	PageRequest
	TenantID     uuid.UUID
	SearchTerm   string
	Status       Status
	Segment      string
	CustomerType CustomerType
}
