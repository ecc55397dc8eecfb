package models

import "time"

// User represents a row of the users table.
type User struct {
	UserID   string `db:"user_id"`
	Username string `db:"username"`
	Name     string `db:"name"`
	Role     string `db:"role"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
