package entity

import "slices"

// Role is the single role a user account holds.
type Role string

const (
	RoleCustomer Role = "customer"
	// RoleManager runs the back office but cannot change user roles.
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

var knownRoles = []Role{RoleCustomer, RoleManager, RoleAdmin}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return slices.Contains(knownRoles, r)
}

// Roles is the role set carried in access token claims.
type Roles []Role

func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

func (rs Roles) ContainsAny(roles ...Role) bool {
	return slices.ContainsFunc(roles, rs.Contains)
}

func (rs Roles) ToStrings() []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = string(r)
	}

	return out
}

// RolesFromStrings drops unknown names, so a token minted with a role that
// no longer exists grants nothing for it.
func RolesFromStrings(ss []string) Roles {
	out := make(Roles, 0, len(ss))
	for _, s := range ss {
		if r := Role(s); r.IsValid() {
			out = append(out, r)
		}
	}

	return out
}
