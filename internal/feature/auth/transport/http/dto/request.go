// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// Passwords longer than 72 bytes are rejected because bcrypt ignores the excess.

// SignupReq represents the request body for the /signup endpoint.
// Role is optional and defaults to viewer.
type SignupReq struct {
	Email       string `json:"email" binding:"required,email,max=255"`
	Password    string `json:"password" binding:"required,min=8,max=72"`
	CompanyName string `json:"company_name" binding:"omitempty,max=255"`
	Role        string `json:"role" binding:"omitempty,oneof=admin analyst viewer"`
}

// LoginReq represents the request body for the /login endpoint.
type LoginReq struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,max=72"`
}
