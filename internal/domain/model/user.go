package model

import "time"

// Role describes the access level of an account.
type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleRestaurant Role = "restaurant"
)

// User represents a registered customer or staff account.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Avatar       string
	Phone        string
	Address      string
	CreatedAt    time.Time
}

// IsStaff reports whether the user may manage the catalog.
func (u *User) IsStaff() bool {
	return u.Role == RoleAdmin || u.Role == RoleRestaurant
}
