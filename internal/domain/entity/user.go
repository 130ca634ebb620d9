// Package entity contains the core business objects of the project.
package entity

import "time"

// User is a staff account. Username is unique among all users.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Email        string    `json:"email"`
	Name         *string   `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
}

// RoleAdmin is granted to every staff account.
const RoleAdmin = "admin"
