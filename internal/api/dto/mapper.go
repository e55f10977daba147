package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/kingrain94/saas-platform-api/internal/domain"
)

// ToTenant converts a CreateTenantRequest DTO to a Tenant domain model
func (r *CreateTenantRequest) ToTenant() (*domain.Tenant, error) {
	var errs patchErrors

	tenant := &domain.Tenant{
		Name:               r.Name,
		Code:               r.Code,
		SubscriptionPlanID: r.SubscriptionPlanID,
		Status:             domain.StatusActive,
		ContactEmail:       r.ContactEmail,
		ContactPhone:       r.ContactPhone,
		Mobile:             r.Mobile,
		Address:            r.Address,
		City:               r.City,
		State:              r.State,
		Country:            r.Country,
		PostalCode:         r.PostalCode,
		IsActive:           true,
		MaxUsers:           r.MaxUsers,
		MaxStorageGB:       r.MaxStorageGB,
	}
	if r.Status != "" {
		tenant.Status = domain.Status(r.Status)
		if !tenant.Status.IsValid() {
			errs.add("status must be one of: Active, Inactive, Blocked")
		}
	}
	tenant.SubscriptionStart = errs.parseDate("subscriptionStart", r.SubscriptionStart, false)
	tenant.SubscriptionEnd = errs.parseDate("subscriptionEnd", r.SubscriptionEnd, true)
	errs.checkSubscriptionWindow(tenant)

	if err := errs.err(); err != nil {
		return nil, err
	}
	return tenant, nil
}

// ToCustomer converts a CreateCustomerRequest DTO to a Customer owned by tenantID
func (r *CreateCustomerRequest) ToCustomer(tenantID uuid.UUID) (*domain.Customer, error) {
	var errs patchErrors

	customer := &domain.Customer{
		TenantID:               tenantID,
		CustomerCode:           r.CustomerCode,
		CustomerType:           domain.CustomerType(r.CustomerType),
		FirstName:              r.FirstName,
		LastName:               r.LastName,
		CompanyName:            r.CompanyName,
		Email:                  r.Email,
		Phone:                  r.Phone,
		Mobile:                 r.Mobile,
		Gender:                 r.Gender,
		Address:                r.Address,
		City:                   r.City,
		State:                  r.State,
		Country:                r.Country,
		PostalCode:             r.PostalCode,
		TaxID:                  r.TaxID,
		Segment:                r.Segment,
		Status:                 domain.StatusActive,
		AssignedUserID:         r.AssignedUserID,
		Source:                 r.Source,
		Tags:                   r.Tags,
		PreferredLanguage:      r.PreferredLanguage,
		PreferredContactMethod: r.PreferredContactMethod,
		CreditLimit:            r.CreditLimit,
		CreditScore:            r.CreditScore,
		IsActive:               true,
	}
	if r.Status != "" {
		customer.Status = domain.Status(r.Status)
		if !customer.Status.IsValid() {
			errs.add("status must be one of: Active, Inactive, Blocked")
		}
	}
	if customer.PreferredLanguage == "" {
		customer.PreferredLanguage = domain.DefaultPreferredLanguage
	}
	customer.DateOfBirth = errs.parseDate("dateOfBirth", r.DateOfBirth, false)
	errs.checkCustomer(customer)

	if err := errs.err(); err != nil {
		return nil, err
	}
	return customer, nil
}

// ToUser converts a CreateUserRequest DTO to a User. The password is hashed
// by the caller.
func (r *CreateUserRequest) ToUser(tenantID uuid.UUID) *domain.User {
	return &domain.User{
		TenantID:        tenantID,
		UserName:        r.UserName,
		Email:           r.Email,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		PhoneNumber:     r.PhoneNumber,
		ProfileImageURL: r.ProfileImageURL,
		IsActive:        true,
	}
}

func (r *CreateUserRoleRequest) ToUserRole() *domain.UserRole {
	return &domain.UserRole{
		UserID: r.UserID,
		RoleID: r.RoleID,
	}
}

func fromAudit(a domain.AuditFields) AuditInfo {
	return AuditInfo{
		CreatedDate:  a.CreatedDate,
		CreatedBy:    a.CreatedBy,
		ModifiedDate: a.ModifiedDate,
		ModifiedBy:   a.ModifiedBy,
	}
}

// FromTenant converts a Tenant domain model to a TenantResponse DTO
func FromTenant(t *domain.Tenant) *TenantResponse {
	return &TenantResponse{
		ID:                 t.ID,
		Name:               t.Name,
		Code:               t.Code,
		SubscriptionPlanID: t.SubscriptionPlanID,
		Status:             string(t.Status),
		ContactEmail:       t.ContactEmail,
		ContactPhone:       t.ContactPhone,
		Mobile:             t.Mobile,
		Address:            t.Address,
		City:               t.City,
		State:              t.State,
		Country:            t.Country,
		PostalCode:         t.PostalCode,
		IsActive:           t.IsActive,
		SubscriptionStart:  t.SubscriptionStart,
		SubscriptionEnd:    t.SubscriptionEnd,
		MaxUsers:           t.MaxUsers,
		MaxStorageGB:       t.MaxStorageGB,
		AuditInfo:          fromAudit(t.AuditFields),
	}
}

func FromTenants(tenants []domain.Tenant) []TenantResponse {
	responses := make([]TenantResponse, len(tenants))
	for i := range tenants {
		responses[i] = *FromTenant(&tenants[i])
	}
	return responses
}

// FromCustomer converts a Customer domain model to a CustomerResponse DTO
func FromCustomer(c *domain.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:                     c.ID,
		TenantID:               c.TenantID,
		CustomerCode:           c.CustomerCode,
		CustomerType:           string(c.CustomerType),
		FullName:               c.FullName(),
		FirstName:              c.FirstName,
		LastName:               c.LastName,
		CompanyName:            c.CompanyName,
		Email:                  c.Email,
		Phone:                  c.Phone,
		Mobile:                 c.Mobile,
		DateOfBirth:            c.DateOfBirth,
		Gender:                 c.Gender,
		Address:                c.Address,
		City:                   c.City,
		State:                  c.State,
		Country:                c.Country,
		PostalCode:             c.PostalCode,
		TaxID:                  c.TaxID,
		Segment:                c.Segment,
		Status:                 string(c.Status),
		AssignedUserID:         c.AssignedUserID,
		Source:                 c.Source,
		Tags:                   c.Tags,
		PreferredLanguage:      c.PreferredLanguage,
		PreferredContactMethod: c.PreferredContactMethod,
		CreditLimit:            c.CreditLimit.StringFixed(2),
		CreditScore:            c.CreditScore,
		IsActive:               c.IsActive,
		AuditInfo:              fromAudit(c.AuditFields),
	}
}

func FromCustomers(customers []domain.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = *FromCustomer(&customers[i])
	}
	return responses
}

// FromUser converts a User domain model to a UserResponse DTO. Credentials and
// tokens never leave the service.
func FromUser(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:                  u.ID,
		TenantID:            u.TenantID,
		UserName:            u.UserName,
		Email:               u.Email,
		FirstName:           u.FirstName,
		LastName:            u.LastName,
		PhoneNumber:         u.PhoneNumber,
		ProfileImageURL:     u.ProfileImageURL,
		IsActive:            u.IsActive,
		IsEmailVerified:     u.IsEmailVerified,
		LastLoginDate:       u.LastLoginDate,
		FailedLoginAttempts: u.FailedLoginAttempts,
		AuditInfo:           fromAudit(u.AuditFields),
	}
}

func FromUsers(users []domain.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = *FromUser(&users[i])
	}
	return responses
}

func FromUserRole(r *domain.UserRole) *UserRoleResponse {
	return &UserRoleResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		RoleID:      r.RoleID,
		CreatedDate: r.CreatedDate,
		CreatedBy:   r.CreatedBy,
	}
}

func FromUserRoles(roles []domain.UserRole) []UserRoleResponse {
	responses := make([]UserRoleResponse, len(roles))
	for i := range roles {
		responses[i] = *FromUserRole(&roles[i])
	}
	return responses
}

// NewChangeEvent describes a committed write for the change feed.
func NewChangeEvent(tenantID uuid.UUID, entity, action string, entityID uuid.UUID, actorID *uuid.UUID) *ChangeEvent {
	event := &ChangeEvent{
		TenantID:  tenantID.String(),
		Entity:    entity,
		Action:    action,
		EntityID:  entityID.String(),
		Timestamp: time.Now().UTC(),
	}
	if actorID != nil {
		event.ActorID = actorID.String()
	}
	return event
}
