package dto

import (
	"github.com/peiwenliu/sharecircle/internal/domain/entity"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Result  interface{} `json:"result,omitempty"`
}

// OK wraps a payload in the success envelope. Acknowledgement-only
// operations pass nil.
func OK(result interface{}) Response {
	return Response{Success: true, Message: "", Result: result}
}

// Fail wraps a caller-safe message in the failure envelope.
func Fail(message string) Response {
	return Response{Success: false, Message: message}
}

// ListResult is the payload shape of every paginated listing.
type ListResult struct {
	Items interface{} `json:"items"`
	Total int64       `json:"total"`
}

// LoginResult is returned by register and login.
type LoginResult struct {
	Token string          `json:"token"`
	Email string          `json:"email"`
	Role  entity.UserRole `json:"role"`
}

// ProfileResult is the authenticated user's own profile view.
type ProfileResult struct {
	ID       string          `json:"id"`
	Username string          `json:"username"`
	Email    string          `json:"email"`
	Role     entity.UserRole `json:"role"`
	Avatar   string          `json:"avatar"`
}

// ToProfileResult converts a user entity to the profile payload.
func ToProfileResult(user *entity.User) ProfileResult {
	return ProfileResult{
		ID:       user.ID.Hex(),
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
		Avatar:   user.Avatar,
	}
}

// FavoriteResult reports the favored state after a toggle.
type FavoriteResult struct {
	IsFavorite bool `json:"isFavorite"`
}

// TokenResult carries a freshly issued session token.
type TokenResult struct {
	Token string `json:"token"`
}
