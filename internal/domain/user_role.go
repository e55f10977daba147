package domain

import "github.com/google/uuid"

// UserRole links a user to a role. Assignments are added and removed, never
// edited, so only creation audit is kept.
type UserRole struct {
	Model
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_user_roles_user_role,priority:1" json:"userId"`
	RoleID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_user_roles_user_role,priority:2" json:"roleId"`
	CreationAudit
	User *User `gorm:"foreignKey:UserID" json:"-"`
}

func (UserRole) TableName() string {
	return "user_roles"
}

type UserRoleFilter struct {
	PageRequest
	UserID uuid.UUID
}
