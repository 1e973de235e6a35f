package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Account roles.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleWorker  = "worker"
)

// User is a farm staff account. Password always holds the bcrypt hash,
// never the plaintext, and is excluded from JSON.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username  string             `bson:"username" json:"username"`
	Password  string             `bson:"password" json:"-"`
	Email     string             `bson:"email" json:"email"`
	Role      string             `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// PublicProfile is the account view returned to clients.
type PublicProfile struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Public strips credential material from the account.
func (u *User) Public() PublicProfile {
	return PublicProfile{Username: u.Username, Email: u.Email, Role: u.Role}
}

// Validate applies the store's field constraints before a write is accepted.
// Username/email uniqueness is enforced separately by the store's indexes.
func (u *User) Validate() error {
	var verr ValidationError

	u.Username = strings.TrimSpace(u.Username)
	if u.Username == "" {
		verr.Add("username", "username is required")
	}
	if u.Password == "" {
		verr.Add("password", "password is required")
	}
	if u.Email == "" {
		verr.Add("email", "email is required")
	}

	if u.Role == "" {
		u.Role = RoleManager
	}
	switch u.Role {
	case RoleAdmin, RoleManager, RoleWorker:
	default:
		verr.Add("role", "role must be admin, manager or worker")
	}

	return verr.OrNil()
}
