package model

import "time"

const RoleAdmin = "admin"

type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

// IdentityKind distinguishes identities backed by a users row from the
// synthetic dev-admin identity, which never touches the database.
type IdentityKind int

const (
	IdentityUser IdentityKind = iota
	IdentityDevAdmin
)

type Identity struct {
	ID    int64
	Name  string
	Email string
	Role  string
	Kind  IdentityKind
}

func (i *Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// IdentityFromUser wraps a persisted user row as an authenticated identity.
func IdentityFromUser(u *User) *Identity {
	return &Identity{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
		Kind:  IdentityUser,
	}
}

// DevAdminIdentity is the identity produced by the dev-override bearer
// value. ID 0 is never assigned by the users table (BIGSERIAL starts at 1).
func DevAdminIdentity() *Identity {
	return &Identity{
		ID:    0,
		Name:  "Dev Admin",
		Email: "admin@local",
		Role:  RoleAdmin,
		Kind:  IdentityDevAdmin,
	}
}

type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
