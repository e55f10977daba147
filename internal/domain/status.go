package domain

import (
	"database/sql/driver"
	"fmt"
	"slices"
)

// Status is the lifecycle state shared by tenants and customers.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
	StatusBlocked  Status = "Blocked"
)

var ValidStatuses = []Status{StatusActive, StatusInactive, StatusBlocked}

func (s Status) IsValid() bool {
	return slices.Contains(ValidStatuses, s)
}

// ParseStatus converts user input into a Status, rejecting unknown values.
func ParseStatus(value string) (Status, error) {
	status := Status(value)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid status %q", value)
	}
	return status, nil
}

func (s Status) Value() (driver.Value, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("invalid status %q", string(s))
	}
	return string(s), nil
}

func (s *Status) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("cannot scan %T into Status", src)
	}
	parsed, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// CustomerType distinguishes people from organisations.
type CustomerType string

const (
	CustomerTypeIndividual CustomerType = "Individual"
	CustomerTypeCorporate  CustomerType = "Corporate"
)

func (t CustomerType) IsValid() bool {
	return t == CustomerTypeIndividual || t == CustomerTypeCorporate
}

func (t CustomerType) Value() (driver.Value, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("invalid customer type %q", string(t))
	}
	return string(t), nil
}

func (t *CustomerType) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("cannot scan %T into CustomerType", src)
	}
	ct := CustomerType(raw)
	if !ct.IsValid() {
		return fmt.Errorf("invalid customer type %q", raw)
	}
	*t = ct
	return nil
}
