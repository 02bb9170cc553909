package domain

import "time"

// User represents a platform user. Project coordinators are users.
type User struct {
	UserID       string `json:"userID"` // Primary key (UUID)
	Name         string `json:"name"`
	Email        string `json:"email"`        // Unique
	PasswordHash string `json:"-"`            // bcrypt; never serialized
	AuthProvider string `json:"authProvider"` // "local" or "google"
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Soft delete
}
