package staff

import "time"

// Role is the access level assigned to a staff account.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleVendor   Role = "VENDOR"
	RoleManager  Role = "MANAGER"
	RoleAdmin    Role = "ADMIN"
)

// ValidRoles lists every assignable role.
var ValidRoles = []Role{RoleCustomer, RoleVendor, RoleManager, RoleAdmin}

// Valid reports whether the role is a known value.
func (r Role) Valid() bool {
	for _, v := range ValidRoles {
		if r == v {
			return true
		}
	}
	return false
}

// Staff represents a dashboard account.
type Staff struct {
	ID           string // UUID
	Email        string
	PasswordHash string
	DisplayName  string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}
