package access

import "strings"

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSupervisor Role = "supervisor"
	RoleQCField    Role = "qc_field"
	RoleManajer    Role = "manajer"
)

var roles = []Role{RoleAdmin, RoleSupervisor, RoleQCField, RoleManajer}

// Roles returns the closed role set in display order.
func Roles() []Role {
	out := make([]Role, len(roles))
	copy(out, roles)
	return out
}

func (r Role) Valid() bool {
	for _, known := range roles {
		if r == known {
			return true
		}
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// ParseRole accepts the exact lower-case tags, surrounding whitespace ignored.
func ParseRole(v string) (Role, bool) {
	r := Role(strings.TrimSpace(v))
	if !r.Valid() {
		return "", false
	}
	return r, true
}
