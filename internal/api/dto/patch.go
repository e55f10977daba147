package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kingrain94/saas-platform-api/internal/domain"
	"github.com/kingrain94/saas-platform-api/pkg/optional"
	"github.com/kingrain94/saas-platform-api/pkg/utils"
)

// patchErrors collects field messages while a request is applied.
type patchErrors []string

func (p *patchErrors) add(format string, args ...any) {
	*p = append(*p, fmt.Sprintf(format, args...))
}

func (p patchErrors) err() error {
	if len(p) == 0 {
		return nil
	}
	return NewValidationError(p...)
}

// parseDate accepts RFC3339 or YYYY-MM-DD. Empty input means no date.
func (p *patchErrors) parseDate(name, value string, endOfDay bool) *time.Time {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	t, err := utils.ParseDate(value, endOfDay)
	if err != nil {
		p.add("%s: %v", name, err)
		return nil
	}
	return &t
}

func (p *patchErrors) checkSubscriptionWindow(t *domain.Tenant) {
	if t.SubscriptionStart != nil && t.SubscriptionEnd != nil && t.SubscriptionEnd.Before(*t.SubscriptionStart) {
		p.add("subscriptionEnd must not be before subscriptionStart")
	}
}

// checkCustomer enforces the cross-field rules on a customer's final state.
func (p *patchErrors) checkCustomer(c *domain.Customer) {
	switch c.CustomerType {
	case domain.CustomerTypeIndividual:
		if strings.TrimSpace(c.FirstName) == "" || strings.TrimSpace(c.LastName) == "" {
			p.add("firstName and lastName are required for individual customers")
		}
	case domain.CustomerTypeCorporate:
		if strings.TrimSpace(c.CompanyName) == "" {
			p.add("companyName is required for corporate customers")
		}
	default:
		p.add("customerType must be one of: Individual, Corporate")
	}
	if c.CreditLimit.IsNegative() {
		p.add("creditLimit must not be negative")
	}
	if c.CreditScore != nil && (*c.CreditScore < domain.MinCreditScore || *c.CreditScore > domain.MaxCreditScore) {
		p.add("creditScore must be between %d and %d", domain.MinCreditScore, domain.MaxCreditScore)
	}
	if c.DateOfBirth != nil && c.DateOfBirth.After(time.Now()) {
		p.add("dateOfBirth must not be in the future")
	}
}

// requireText applies a non-nullable text field. Null and blank are rejected.
func requireText(p *patchErrors, name string, f optional.Field[string], dst *string) {
	if !f.IsSet() {
		return
	}
	if f.IsNull() || strings.TrimSpace(f.Value()) == "" {
		p.add("%s cannot be empty", name)
		return
	}
	*dst = f.Value()
}

// setRequired applies a non-nullable field. Null is rejected.
func setRequired[T any](p *patchErrors, name string, f optional.Field[T], dst *T) {
	if !f.IsSet() {
		return
	}
	if f.IsNull() {
		p.add("%s cannot be null", name)
		return
	}
	*dst = f.Value()
}

// setText applies an optional text column. Null clears it.
func setText(f optional.Field[string], dst *string) {
	if f.IsSet() {
		*dst = f.Value()
	}
}

// setNullable applies a nullable column. Null stores NULL.
func setNullable[T any](f optional.Field[T], dst **T) {
	if f.IsSet() {
		*dst = f.Ptr()
	}
}

func setDate(p *patchErrors, name string, f optional.Field[string], endOfDay bool, dst **time.Time) {
	if !f.IsSet() {
		return
	}
	*dst = p.parseDate(name, f.Value(), endOfDay)
}

func setStatus(p *patchErrors, f optional.Field[string], dst *domain.Status) {
	if !f.IsSet() {
		return
	}
	if f.IsNull() {
		p.add("status cannot be null")
		return
	}
	status, err := domain.ParseStatus(f.Value())
	if err != nil {
		p.add("status must be one of: Active, Inactive, Blocked")
		return
	}
	*dst = status
}

// ApplyTo patches t in place. On error t may be partially modified and must
// be discarded.
func (r *UpdateTenantRequest) ApplyTo(t *domain.Tenant) error {
	var errs patchErrors

	requireText(&errs, "name", r.Name, &t.Name)
	requireText(&errs, "code", r.Code, &t.Code)
	requireText(&errs, "subscriptionPlanId", r.SubscriptionPlanID, &t.SubscriptionPlanID)
	setStatus(&errs, r.Status, &t.Status)
	setText(r.ContactEmail, &t.ContactEmail)
	setText(r.ContactPhone, &t.ContactPhone)
	setText(r.Mobile, &t.Mobile)
	setText(r.Address, &t.Address)
	setText(r.City, &t.City)
	setText(r.State, &t.State)
	setText(r.Country, &t.Country)
	setText(r.PostalCode, &t.PostalCode)
	setDate(&errs, "subscriptionStart", r.SubscriptionStart, false, &t.SubscriptionStart)
	setDate(&errs, "subscriptionEnd", r.SubscriptionEnd, true, &t.SubscriptionEnd)
	setRequired(&errs, "maxUsers", r.MaxUsers, &t.MaxUsers)
	setRequired(&errs, "maxStorageGb", r.MaxStorageGB, &t.MaxStorageGB)
	setRequired(&errs, "isActive", r.IsActive, &t.IsActive)

	if t.MaxUsers < 0 || t.MaxStorageGB < 0 {
		errs.add("maxUsers and maxStorageGb must not be negative")
	}
	errs.checkSubscriptionWindow(t)
	return errs.err()
}

// ApplyTo patches c in place and re-checks the cross-field rules on the
// result. On error c must be discarded.
func (r *UpdateCustomerRequest) ApplyTo(c *domain.Customer) error {
	var errs patchErrors

	requireText(&errs, "customerCode", r.CustomerCode, &c.CustomerCode)
	if r.CustomerType.IsSet() {
		var customerType string
		setRequired(&errs, "customerType", r.CustomerType, &customerType)
		if customerType != "" {
			c.CustomerType = domain.CustomerType(customerType)
		}
	}
	setText(r.FirstName, &c.FirstName)
	setText(r.LastName, &c.LastName)
	setText(r.CompanyName, &c.CompanyName)
	setText(r.Email, &c.Email)
	setText(r.Phone, &c.Phone)
	setText(r.Mobile, &c.Mobile)
	setDate(&errs, "dateOfBirth", r.DateOfBirth, false, &c.DateOfBirth)
	setText(r.Gender, &c.Gender)
	setText(r.Address, &c.Address)
	setText(r.City, &c.City)
	setText(r.State, &c.State)
	setText(r.Country, &c.Country)
	setText(r.PostalCode, &c.PostalCode)
	setText(r.TaxID, &c.TaxID)
	setText(r.Segment, &c.Segment)
	setStatus(&errs, r.Status, &c.Status)
	setNullable(r.AssignedUserID, &c.AssignedUserID)
	setText(r.Source, &c.Source)
	setText(r.Tags, &c.Tags)
	requireText(&errs, "preferredLanguage", r.PreferredLanguage, &c.PreferredLanguage)
	setText(r.PreferredContactMethod, &c.PreferredContactMethod)
	setRequired[decimal.Decimal](&errs, "creditLimit", r.CreditLimit, &c.CreditLimit)
	setNullable(r.CreditScore, &c.CreditScore)
	setRequired(&errs, "isActive", r.IsActive, &c.IsActive)

	errs.checkCustomer(c)
	return errs.err()
}

// ApplyTo patches u in place. The password is not touched here; the caller
// hashes PasswordValue when it is set.
func (r *UpdateUserRequest) ApplyTo(u *domain.User) error {
	var errs patchErrors

	requireText(&errs, "userName", r.UserName, &u.UserName)
	requireText(&errs, "email", r.Email, &u.Email)
	if r.Password.IsSet() && (r.Password.IsNull() || r.Password.Value() == "") {
		errs.add("password cannot be empty")
	}
	setText(r.FirstName, &u.FirstName)
	setText(r.LastName, &u.LastName)
	setText(r.PhoneNumber, &u.PhoneNumber)
	setText(r.ProfileImageURL, &u.ProfileImageURL)
	setRequired(&errs, "isActive", r.IsActive, &u.IsActive)
	setRequired(&errs, "isEmailVerified", r.IsEmailVerified, &u.IsEmailVerified)

	return errs.err()
}

// PasswordValue returns the new password, or "" when the request leaves the
// password unchanged.
func (r *UpdateUserRequest) PasswordValue() string {
	if !r.Password.HasValue() {
		return ""
	}
	return r.Password.Value()
}
