package role

// Role is the authorization capability attached to a user account.
type Role string

const (
	User  Role = "user"
	Admin Role = "admin"
)

func (r Role) Valid() bool {
	return r == User || r == Admin
}

func (r Role) IsAdmin() bool {
	return r == Admin
}
