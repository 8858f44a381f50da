package entity

import "time"

type UserRole string

const (
	RoleConsumer UserRole = "CONSUMER"
	RoleCreator  UserRole = "CREATOR"
	RoleAdmin    UserRole = "ADMIN"
)

func ValidRole(role string) bool {
	switch UserRole(role) {
	case RoleConsumer, RoleCreator, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
