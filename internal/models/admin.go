package models

import "time"

// AdminRole represents the available roles for administrators.
type AdminRole string

const (
	RoleUser       AdminRole = "user"
	RoleSuperAdmin AdminRole = "superadmin"
)

// DefaultAdminRole is assigned when registration omits a role.
const DefaultAdminRole = RoleUser

// Admin represents an administrator account stored in the admins table.
// The password hash is never serialized.
type Admin struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         AdminRole `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// AdminIdentity is the slice of an admin attached to authenticated requests.
type AdminIdentity struct {
	ID   string    `json:"id"`
	Name string    `json:"name"`
	Role AdminRole `json:"role"`
}
