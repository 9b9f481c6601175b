package domain

import (
	"strings"
	"time"
)

const (
	RoleAdministrator = "Administrator"
	RoleCustomer      = "Customer"
)

// User models a stored identity: normalized login email, bcrypt hash, and
// the set of role names assigned at registration or by an operator.
type User struct {
	ID           int64     `json:"id" bson:"_id,omitempty"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Roles        []string  `json:"roles" bson:"roles"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// HasRole reports whether the user carries the given role name.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// NormalizeEmail canonicalizes a login name for lookup and storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
