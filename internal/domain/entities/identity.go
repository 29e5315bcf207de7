package entities

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// Identity is the authenticated caller, as asserted by the identity provider.
type Identity struct {
	UserID string
	Role   string
	Email  string
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// CanAccess reports whether the caller may read or pay the given order.
func (i Identity) CanAccess(o Order) bool {
	return i.IsAdmin() || (i.UserID != "" && i.UserID == o.UserID)
}
