package response

import (
	"time"

	"campusbook/internal/usecase/commands"
	"campusbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type AuthResponse struct {
	UserID      uuid.UUID `json:"userId"`
	Role        string    `json:"role"`
	AccessToken string    `json:"accessToken"`
}

func FromAuthResult(r *commands.AuthResult) *AuthResponse {
	return &AuthResponse{
		UserID:      r.UserID,
		Role:        r.Role.String(),
		AccessToken: r.AccessToken,
	}
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromUserAccountView(v *queries.UserAccountView) *UserResponse {
	return &UserResponse{
		ID:        v.ID,
		Name:      v.Name,
		Email:     v.Email,
		Role:      v.Role,
		CreatedAt: v.CreatedAt,
	}
}
