package dto

import (
	"time"

	"github.com/boutikapp/caisse-backend/internal/core/domain"
)

// CreateUserRequest defines the payload for provisioning an operator account.
// ShopID may be omitted for admins; staff must be bound to a shop.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=admin staff"`
	ShopID   string `json:"shopID" binding:"omitempty"`
}

// UserResponse is the API representation of an operator account.
type UserResponse struct {
	UserID    string    `json:"userID"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	ShopID    string    `json:"shopID"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain.User to a UserResponse DTO
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:    user.UserID,
		Username:  user.Username,
		Name:      user.Name,
		Role:      string(user.Role),
		ShopID:    user.ShopID,
		CreatedAt: user.CreatedAt,
	}
}

// ToListUserResponse converts a slice of domain users to DTOs.
func ToListUserResponse(users []domain.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = ToUserResponse(&users[i])
	}
	return responses
}
