package auth

import "github.com/fkhayef/giftbox/internal/group"

// LoginRequest represents the group credentials
type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginResponse carries the issued token; the same token is set as a cookie
type LoginResponse struct {
	Token   string `json:"token"`
	Success bool   `json:"success"`
}

// RegisterResponse is the body of a successful registration
type RegisterResponse struct {
	Success bool                 `json:"success"`
	Group   *group.GroupResponse `json:"group"`
}

// VerifyResponse reports the signed-in group
type VerifyResponse struct {
	Success   bool   `json:"success"`
	GroupName string `json:"groupName"`
}
