package domain

// AdminRole is the closed set of back-office roles.
type AdminRole string

const (
	RoleSuperAdmin AdminRole = "superadmin"
	RoleOperations AdminRole = "operations"
	RoleSupport    AdminRole = "support"
)

// AdminRoles lists every recognized role, highest privilege first.
var AdminRoles = []AdminRole{RoleSuperAdmin, RoleOperations, RoleSupport}

func (r AdminRole) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleOperations, RoleSupport:
		return true
	}
	return false
}

// Admin is a back-office operator account. Email matching is case-insensitive
// at login. The password is stored as-is: the portal simulates authentication
// and holds no real credentials.
type Admin struct {
	Envelope
	Email    string    `json:"email"`
	Password string    `json:"password"`
	Role     AdminRole `json:"role"`
	Name     string    `json:"name"`
}
