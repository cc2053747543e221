package domain

// Role of the caller
type Role string

const (
	RoleClient Role = "client"
	RoleAdmin  Role = "admin"
)

func (r Role) IsValid() bool {
	return r == RoleClient || r == RoleAdmin
}

// Identity is the authenticated caller of a request
type Identity struct {
	UserID int64
	Role   Role
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// CanAccess returns true if the caller owns the resource or is an admin
func (i Identity) CanAccess(ownerID int64) bool {
	return i.IsAdmin() || i.UserID == ownerID
}

// UserSummary is the public projection of a user shown to admins
type UserSummary struct {
	ID    int64
	Name  string
	Email string
	Role  Role
}
