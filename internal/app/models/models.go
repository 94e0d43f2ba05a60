package models

// Role is the access role of a user
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleMentor  Role = "MENTOR"
	RoleAdmin   Role = "ADMIN"
)

// IsValid reports whether r is one of the known roles
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleMentor, RoleAdmin:
		return true
	}
	return false
}

// Principal is the authenticated caller of a request
type Principal struct {
	UserID int64
	Role   Role
}
