package model

import "time"

type Role string

const (
	RoleStudent     Role = "student"
	RoleCounsellor  Role = "counsellor"
	RoleCollegeHead Role = "college_head"
	RoleAdmin       Role = "admin"
)

// Roles lists every known role
var Roles = []Role{RoleStudent, RoleCounsellor, RoleCollegeHead, RoleAdmin}

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// IsStaff is true for roles that look after students
func (r Role) IsStaff() bool {
	return r == RoleCounsellor || r == RoleCollegeHead || r == RoleAdmin
}

// User is an account of any role
type User struct {
	ID           string     `json:"id" bson:"_id"`
	Email        string     `json:"email" bson:"email"`
	Name         string     `json:"name" bson:"name"`
	Role         Role       `json:"role" bson:"role"`
	College      string     `json:"college" bson:"college"`
	CounsellorID string     `json:"counsellorId,omitempty" bson:"counsellorId,omitempty"` // students only
	Active       bool       `json:"active" bson:"active"`
	PasswordHash string     `json:"-" bson:"passwordHash"`
	CreatedAt    time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt" bson:"updatedAt"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty" bson:"lastLoginAt,omitempty"`
}

// UserFilter narrows user listings. Empty fields match everything.
type UserFilter struct {
	Role    Role
	College string
}

// CreateUserRequest is the admin request body for creating an account
type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
	College  string `json:"college"`
}

// UpdateProfileRequest is the body for PUT /v1/me
type UpdateProfileRequest struct {
	Name    string `json:"name"`
	College string `json:"college"`
}
