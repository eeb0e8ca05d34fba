package models

// Role is the closed set of account roles the backend issues.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Identity is the authenticated user as reported by the auth endpoints.
type Identity struct {
	ID    string `json:"_id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// IsAdmin reports whether the identity carries administrator rights.
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}

// Credentials is the body of the login and register calls.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by a successful login or register call.
type AuthResponse struct {
	Token string    `json:"token"`
	User  *Identity `json:"user"`
}
