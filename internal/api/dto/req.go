package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kingrain94/saas-platform-api/pkg/optional"
)

type CreateTenantRequest struct {
	Name               string `json:"name" binding:"required,max=200" example:"Acme Corporation"`
	Code               string `json:"code" binding:"required,max=50,code" example:"ACME"`
	SubscriptionPlanID string `json:"subscriptionPlanId" binding:"required,max=100" example:"enterprise"`
	Status             string `json:"status" binding:"omitempty,oneof=Active Inactive Blocked" example:"Active"`
	ContactEmail       string `json:"contactEmail" binding:"omitempty,email,max=255" example:"admin@acme.com"`
	ContactPhone       string `json:"contactPhone" binding:"omitempty,phone" example:"+14155550100"`
	Mobile             string `json:"mobile" binding:"omitempty,phone" example:"+14155550101"`
	Address            string `json:"address" binding:"max=500" example:"1 Market St"`
	City               string `json:"city" binding:"max=100" example:"San Francisco"`
	State              string `json:"state" binding:"max=100" example:"CA"`
	Country            string `json:"country" binding:"max=100" example:"US"`
	PostalCode         string `json:"postalCode" binding:"max=20" example:"94105"`
	SubscriptionStart  string `json:"subscriptionStart" example:"2025-01-01"`
	SubscriptionEnd    string `json:"subscriptionEnd" example:"2025-12-31"`
	MaxUsers           int    `json:"maxUsers" binding:"min=0" example:"50"`
	MaxStorageGB       int    `json:"maxStorageGb" binding:"min=0" example:"100"`
}

// UpdateTenantRequest is a partial update. Absent fields are left unchanged
// and null clears a nullable field.
type UpdateTenantRequest struct {
	Name               optional.Field[string] `json:"name" binding:"omitempty,max=200" swaggertype:"string"`
	Code               optional.Field[string] `json:"code" binding:"omitempty,max=50,code" swaggertype:"string"`
	SubscriptionPlanID optional.Field[string] `json:"subscriptionPlanId" binding:"omitempty,max=100" swaggertype:"string"`
	Status             optional.Field[string] `json:"status" binding:"omitempty,oneof=Active Inactive Blocked" swaggertype:"string"`
	ContactEmail       optional.Field[string] `json:"contactEmail" binding:"omitempty,email,max=255" swaggertype:"string"`
	ContactPhone       optional.Field[string] `json:"contactPhone" binding:"omitempty,phone" swaggertype:"string"`
	Mobile             optional.Field[string] `json:"mobile" binding:"omitempty,phone" swaggertype:"string"`
	Address            optional.Field[string] `json:"address" binding:"omitempty,max=500" swaggertype:"string"`
	City               optional.Field[string] `json:"city" binding:"omitempty,max=100" swaggertype:"string"`
	State              optional.Field[string] `json:"state" binding:"omitempty,max=100" swaggertype:"string"`
	Country            optional.Field[string] `json:"country" binding:"omitempty,max=100" swaggertype:"string"`
	PostalCode         optional.Field[string] `json:"postalCode" binding:"omitempty,max=20" swaggertype:"string"`
	SubscriptionStart  optional.Field[string] `json:"subscriptionStart" swaggertype:"string"`
	SubscriptionEnd    optional.Field[string] `json:"subscriptionEnd" swaggertype:"string"`
	MaxUsers           optional.Field[int]    `json:"maxUsers" binding:"omitempty,min=0" swaggertype:"integer"`
	MaxStorageGB       optional.Field[int]    `json:"maxStorageGb" binding:"omitempty,min=0" swaggertype:"integer"`
	IsActive           optional.Field[bool]   `json:"isActive" swaggertype:"boolean"`
}

type CreateCustomerRequest struct {
	CustomerCode           string          `json:"customerCode" binding:"required,max=50,code" example:"CUST-0001"`
	CustomerType           string          `json:"customerType" binding:"required,oneof=Individual Corporate" example:"Individual"`
	FirstName              string          `json:"firstName" binding:"required_if=CustomerType Individual,max=100" example:"Jane"`
	LastName               string          `json:"lastName" binding:"required_if=CustomerType Individual,max=100" example:"Doe"`
	CompanyName            string          `json:"companyName" binding:"required_if=CustomerType Corporate,max=200" example:""`
	Email                  string          `json:"email" binding:"omitempty,email,max=255" example:"jane.doe@example.com"`
	Phone                  string          `json:"phone" binding:"omitempty,phone" example:"+14155550100"`
	Mobile                 string          `json:"mobile" binding:"omitempty,phone" example:"+14155550101"`
	DateOfBirth            string          `json:"dateOfBirth" example:"1990-05-01"`
	Gender                 string          `json:"gender" binding:"max=20" example:"female"`
	Address                string          `json:"address" binding:"max=500"`
	City                   string          `json:"city" binding:"max=100"`
	State                  string          `json:"state" binding:"max=100"`
	Country                string          `json:"country" binding:"max=100"`
	PostalCode             string          `json:"postalCode" binding:"max=20"`
	TaxID                  string          `json:"taxId" binding:"max=50"`
	Segment                string          `json:"segment" binding:"max=50" example:"enterprise"`
	Status                 string          `json:"status" binding:"omitempty,oneof=Active Inactive Blocked" example:"Active"`
	AssignedUserID         *uuid.UUID      `json:"assignedUserId" swaggertype:"string" example:"550e8400-e29b-41d4-a716-446655440000"`
	Source                 string          `json:"source" binding:"max=50" example:"web"`
	Tags                   string          `json:"tags" binding:"max=500" example:"vip,newsletter"`
	PreferredLanguage      string          `json:"preferredLanguage" binding:"omitempty,max=10" example:"en"`
	PreferredContactMethod string          `json:"preferredContactMethod" binding:"max=20" example:"email"`
	CreditLimit            decimal.Decimal `json:"creditLimit" swaggertype:"string" example:"5000.00"`
	CreditScore            *int            `json:"creditScore" binding:"omitempty,min=300,max=850" example:"720"`
}

type UpdateCustomerRequest struct {
	CustomerCode           optional.Field[string]          `json:"customerCode" binding:"omitempty,max=50,code" swaggertype:"string"`
	CustomerType           optional.Field[string]          `json:"customerType" binding:"omitempty,oneof=Individual Corporate" swaggertype:"string"`
	FirstName              optional.Field[string]          `json:"firstName" binding:"omitempty,max=100" swaggertype:"string"`
	LastName               optional.Field[string]          `json:"lastName" binding:"omitempty,max=100" swaggertype:"string"`
	CompanyName            optional.Field[string]          `json:"companyName" binding:"omitempty,max=200" swaggertype:"string"`
	Email                  optional.Field[string]          `json:"email" binding:"omitempty,email,max=255" swaggertype:"string"`
	Phone                  optional.Field[string]          `json:"phone" binding:"omitempty,phone" swaggertype:"string"`
	Mobile                 optional.Field[string]          `json:"mobile" binding:"omitempty,phone" swaggertype:"string"`
	DateOfBirth            optional.Field[string]          `json:"dateOfBirth" swaggertype:"string"`
	Gender                 optional.Field[string]          `json:"gender" binding:"omitempty,max=20" swaggertype:"string"`
	Address                optional.Field[string]          `json:"address" binding:"omitempty,max=500" swaggertype:"string"`
	City                   optional.Field[string]          `json:"city" binding:"omitempty,max=100" swaggertype:"string"`
	State                  optional.Field[string]          `json:"state" binding:"omitempty,max=100" swaggertype:"string"`
	Country                optional.Field[string]          `json:"country" binding:"omitempty,max=100" swaggertype:"string"`
	PostalCode             optional.Field[string]          `json:"postalCode" binding:"omitempty,max=20" swaggertype:"string"`
	TaxID                  optional.Field[string]          `json:"taxId" binding:"omitempty,max=50" swaggertype:"string"`
	Segment                optional.Field[string]          `json:"segment" binding:"omitempty,max=50" swaggertype:"string"`
	Status                 optional.Field[string]          `json:"status" binding:"omitempty,oneof=Active Inactive Blocked" swaggertype:"string"`
	AssignedUserID         optional.Field[uuid.UUID]       `json:"assignedUserId" swaggertype:"string"`
	Source                 optional.Field[string]          `json:"source" binding:"omitempty,max=50" swaggertype:"string"`
	Tags                   optional.Field[string]          `json:"tags" binding:"omitempty,max=500" swaggertype:"string"`
	PreferredLanguage      optional.Field[string]          `json:"preferredLanguage" binding:"omitempty,max=10" swaggertype:"string"`
	PreferredContactMethod optional.Field[string]          `json:"preferredContactMethod" binding:"omitempty,max=20" swaggertype:"string"`
	CreditLimit            optional.Field[decimal.Decimal] `json:"creditLimit" swaggertype:"string"`
	CreditScore            optional.Field[int]             `json:"creditScore" swaggertype:"integer"`
	IsActive               optional.Field[bool]            `json:"isActive" swaggertype:"boolean"`
}

type CreateUserRequest struct {
	UserName        string      `json:"userName" binding:"required,max=100" example:"jdoe"`
	Email           string      `json:"email" binding:"required,email,max=255" example:"jane.doe@acme.com"`
	Password        string      `json:"password" binding:"required,min=8,max=72" example:"s3cure-passw0rd"`
	FirstName       string      `json:"firstName" binding:"max=100" example:"Jane"`
	LastName        string      `json:"lastName" binding:"max=100" example:"Doe"`
	PhoneNumber     string      `json:"phoneNumber" binding:"omitempty,phone" example:"+14155550100"`
	ProfileImageURL string      `json:"profileImageUrl" binding:"omitempty,url,max=500"`
	RoleIDs         []uuid.UUID `json:"roleIds" binding:"max=20" swaggertype:"array,string"`
}

type UpdateUserRequest struct {
	UserName        optional.Field[string] `json:"userName" binding:"omitempty,max=100" swaggertype:"string"`
	Email           optional.Field[string] `json:"email" binding:"omitempty,email,max=255" swaggertype:"string"`
	Password        optional.Field[string] `json:"password" binding:"omitempty,min=8,max=72" swaggertype:"string"`
	FirstName       optional.Field[string] `json:"firstName" binding:"omitempty,max=100" swaggertype:"string"`
	LastName        optional.Field[string] `json:"lastName" binding:"omitempty,max=100" swaggertype:"string"`
	PhoneNumber     optional.Field[string] `json:"phoneNumber" binding:"omitempty,phone" swaggertype:"string"`
	ProfileImageURL optional.Field[string] `json:"profileImageUrl" binding:"omitempty,url,max=500" swaggertype:"string"`
	IsActive        optional.Field[bool]   `json:"isActive" swaggertype:"boolean"`
	IsEmailVerified optional.Field[bool]   `json:"isEmailVerified" swaggertype:"boolean"`
}

type CreateUserRoleRequest struct {
	UserID uuid.UUID `json:"userId" binding:"required" swaggertype:"string" example:"550e8400-e29b-41d4-a716-446655440000"`
	RoleID uuid.UUID `json:"roleId" binding:"required" swaggertype:"string" example:"7c9e6679-7425-40de-944b-e07fc1f90ae7"`
}
