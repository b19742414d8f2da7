package domain

// Role is a closed two-variant tag. UI and mutation gating dispatch on it
// through Principal.IsAdmin, never on raw strings at call sites.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "user"
)

// Principal is the currently authenticated actor. It exists only between a
// successful sign-in (or session restore) and sign-out; everything outside
// the session manager treats it as read-only.
type Principal struct {
	ID          string `json:"id"`
	DisplayName string `json:"username"`
	Email       string `json:"email"`
	Role        Role   `json:"role"`
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
