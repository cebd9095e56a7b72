package model

import "github.com/golang-jwt/jwt/v5"

// UserClaims are JWT claims for every authenticated role
type UserClaims struct {
	UserID  string `json:"userId"`
	Role    Role   `json:"role"`
	College string `json:"college"`
	jwt.RegisteredClaims
}

// LoginRequest is the request body for login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the request body for student self-registration
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	College  string `json:"college"`
}

// LoginResponse is returned after successful login or registration
type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// DemoAccount is an entry of the fallback credential table
type DemoAccount struct {
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	Role     Role   `mapstructure:"role"`
	College  string `mapstructure:"college"`
}
