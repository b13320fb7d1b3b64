package models

// Role identifies which user collection a principal belongs to.
type Role string

const (
	RoleStudent   Role = "student"
	RoleRecruiter Role = "recruiter"
	RoleMentor    Role = "mentor"
)

// ParseRole returns the Role for a wire value, or false for anything else.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleStudent, RoleRecruiter, RoleMentor:
		return Role(s), true
	}
	return "", false
}

// Collection returns the MongoDB collection backing the role.
func (r Role) Collection() string {
	switch r {
	case RoleStudent:
		return "students"
	case RoleRecruiter:
		return "recruiters"
	case RoleMentor:
		return "mentors"
	}
	return ""
}

// Counterpart returns the role a connection pairs this role with.
// Mentors have no connection counterpart; messaging for them is an
// extension point.
func (r Role) Counterpart() (Role, bool) {
	switch r {
	case RoleStudent:
		return RoleRecruiter, true
	case RoleRecruiter:
		return RoleStudent, true
	}
	return "", false
}
