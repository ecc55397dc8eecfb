package domain

import "time"

// UserRole defines what a user may do to records they can see.
type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleLead      UserRole = "lead"
	RoleDeveloper UserRole = "developer"
)

// IsValid reports whether the role is one of the known roles.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleLead, RoleDeveloper:
		return true
	}
	return false
}

// User represents a user of the application in the domain.
type User struct {
	UserID   string   `json:"userID"` // Primary Key (UUID)
	Username string   `json:"username"`
	Name     string   `json:"name"`
	Role     UserRole `json:"role"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}

// ActingUser identifies who is performing an operation. It is passed
// explicitly into every core call; the core never reads ambient session state.
type ActingUser struct {
	UserID string
	Role   UserRole
}
