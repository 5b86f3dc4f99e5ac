package mapper

import (
	"time"

	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/core/domain"
)

func ToUserItem(user domain.User) dto.UserItem {
	return dto.UserItem{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
		UpdatedAt: user.UpdatedAt.Format(time.RFC3339),
	}
}

func ToTokenResponse(token domain.AuthToken) dto.TokenResponse {
	return dto.TokenResponse{
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt.Format(time.RFC3339),
	}
}
