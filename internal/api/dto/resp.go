package dto

import (
	"time"

	"github.com/google/uuid"
)

// AuditInfo is embedded in every entity response.
type AuditInfo struct {
	CreatedDate  time.Time  `json:"createdDate" example:"2025-07-17T21:20:48Z"`
	CreatedBy    *uuid.UUID `json:"createdBy,omitempty" swaggertype:"string"`
	ModifiedDate *time.Time `json:"modifiedDate,omitempty" example:"2025-07-18T08:00:00Z"`
	ModifiedBy   *uuid.UUID `json:"modifiedBy,omitempty" swaggertype:"string"`
}

type TenantResponse struct {
	ID                 uuid.UUID  `json:"id" swaggertype:"string" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name               string     `json:"name" example:"Acme Corporation"`
	Code               string     `json:"code" example:"ACME"`
	SubscriptionPlanID string     `json:"subscriptionPlanId" example:"enterprise"`
	Status             string     `json:"status" example:"Active"`
	ContactEmail       string     `json:"contactEmail" example:"admin@acme.com"`
	ContactPhone       string     `json:"contactPhone"`
	Mobile             string     `json:"mobile"`
	Address            string     `json:"address"`
	City               string     `json:"city"`
	State              string     `json:"state"`
	Country            string     `json:"country"`
	PostalCode         string     `json:"postalCode"`
	IsActive           bool       `json:"isActive" example:"true"`
	SubscriptionStart  *time.Time `json:"subscriptionStart,omitempty"`
	SubscriptionEnd    *time.Time `json:"subscriptionEnd,omitempty"`
	MaxUsers           int        `json:"maxUsers" example:"50"`
	MaxStorageGB       int        `json:"maxStorageGb" example:"100"`
	AuditInfo
}

type CustomerResponse struct {
	ID                     uuid.UUID  `json:"id" swaggertype:"string" example:"550e8400-e29b-41d4-a716-446655440000"`
	TenantID               uuid.UUID  `json:"tenantId" swaggertype:"string"`
	CustomerCode           string     `json:"customerCode" example:"CUST-0001"`
	CustomerType           string     `json:"customerType" example:"Individual"`
	FullName               string     `json:"fullName" example:"Jane Doe"`
	FirstName              string     `json:"firstName" example:"Jane"`
	LastName               string     `json:"lastName" example:"Doe"`
	CompanyName            string     `json:"companyName"`
	Email                  string     `json:"email" example:"jane.doe@example.com"`
	Phone                  string     `json:"phone"`
	Mobile                 string     `json:"mobile"`
	DateOfBirth            *time.Time `json:"dateOfBirth,omitempty"`
	Gender                 string     `json:"gender"`
	Address                string     `json:"address"`
	City                   string     `json:"city"`
	State                  string     `json:"state"`
	Country                string     `json:"country"`
	PostalCode             string     `json:"postalCode"`
	TaxID                  string     `json:"taxId"`
	Segment                string     `json:"segment" example:"enterprise"`
	Status                 string     `json:"status" example:"Active"`
	AssignedUserID         *uuid.UUID `json:"assignedUserId,omitempty" swaggertype:"string"`
	Source                 string     `json:"source"`
	Tags                   string     `json:"tags"`
	PreferredLanguage      string     `json:"preferredLanguage" example:"en"`
	PreferredContactMethod string     `json:"preferredContactMethod"`
	CreditLimit            string     `json:"creditLimit" example:"5000.00"`
	CreditScore            *int       `json:"creditScore,omitempty" example:"720"`
	IsActive               bool       `json:"isActive" example:"true"`
	AuditInfo
}

type UserResponse struct {
	ID                  uuid.UUID   `json:"id" swaggertype:"string" example:"550e8400-e29b-41d4-a716-446655440000"`
	TenantID            uuid.UUID   `json:"tenantId" swaggertype:"string"`
	UserName            string      `json:"userName" example:"jdoe"`
	Email               string      `json:"email" example:"jane.doe@acme.com"`
	FirstName           string      `json:"firstName" example:"Jane"`
	LastName            string      `json:"lastName" example:"Doe"`
	PhoneNumber         string      `json:"phoneNumber"`
	ProfileImageURL     string      `json:"profileImageUrl"`
	IsActive            bool        `json:"isActive" example:"true"`
	IsEmailVerified     bool        `json:"isEmailVerified"`
	LastLoginDate       *time.Time  `json:"lastLoginDate,omitempty"`
	FailedLoginAttempts int         `json:"failedLoginAttempts"`
	RoleIDs             []uuid.UUID `json:"roleIds,omitempty" swaggertype:"array,string"`
	AuditInfo
}

type UserRoleResponse struct {
	ID          uuid.UUID  `json:"id" swaggertype:"string" example:"550e8400-e29b-41d4-a716-446655440000"`
	UserID      uuid.UUID  `json:"userId" swaggertype:"string"`
	RoleID      uuid.UUID  `json:"roleId" swaggertype:"string"`
	CreatedDate time.Time  `json:"createdDate" example:"2025-07-17T21:20:48Z"`
	CreatedBy   *uuid.UUID `json:"createdBy,omitempty" swaggertype:"string"`
}

// ChangeEvent is pushed to change-feed subscribers after a write commits.
type ChangeEvent struct {
	TenantID  string    `json:"tenantId" example:"550e8400-e29b-41d4-a716-446655440000"`
	Entity    string    `json:"entity" example:"customer"`
	Action    string    `json:"action" example:"updated"`
	EntityID  string    `json:"entityId" example:"7c9e6679-7425-40de-944b-e07fc1f90ae7"`
	ActorID   string    `json:"actorId,omitempty"`
	Timestamp time.Time `json:"timestamp" example:"2025-07-17T21:20:48Z"`
}
