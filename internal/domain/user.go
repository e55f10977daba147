package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Model
	TenantID               uuid.UUID  `gorm:"type:uuid;not null;index:idx_users_tenant_id;uniqueIndex:uq_users_tenant_email,priority:1" json:"tenantId"`
	UserName               string     `gorm:"type:varchar(100);not null" json:"userName"`
	Email                  string     `gorm:"type:varchar(255);not null;uniqueIndex:uq_users_tenant_email,priority:2" json:"email"`
	PasswordHash           string     `gorm:"type:varchar(255)" json:"-"`
	PasswordSalt           string     `gorm:"type:varchar(255)" json:"-"`
	FirstName              string     `gorm:"type:varchar(100)" json:"firstName"`
	LastName               string     `gorm:"type:varchar(100)" json:"lastName"`
	PhoneNumber            string     `gorm:"type:varchar(20)" json:"phoneNumber"`
	ProfileImageURL        string     `gorm:"type:varchar(500)" json:"profileImageUrl"`
	IsActive               bool       `gorm:"not null" json:"isActive"`
	IsEmailVerified        bool       `gorm:"not null" json:"isEmailVerified"`
	EmailVerificationToken string     `gorm:"type:varchar(255)" json:"-"`
	LastLoginDate          *time.Time `json:"lastLoginDate,omitempty"`
	FailedLoginAttempts    int        `gorm:"not null" json:"failedLoginAttempts"`
	LogoutEndDate          *time.Time `json:"logoutEndDate,omitempty"`
	RefreshToken           string     `gorm:"type:varchar(500)" json:"-"`
	RefreshTokenExpiry     *time.Time `json:"-"`
	AuditFields
	Tenant *Tenant `gorm:"foreignKey:TenantID" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// Deactivate soft-deletes the user. Users carry no status column, so only the
// active flag changes.
func (u *User) Deactivate() {
	u.IsActive = false
}

type UserFilter struct {
	PageRequest
	TenantID   uuid.UUID
	SearchTerm string
	IsActive   *bool
}
