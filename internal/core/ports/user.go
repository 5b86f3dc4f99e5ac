package ports

import (
	"context"
	"time"

	"taskboard/internal/core/domain"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user domain.User) (domain.User, error)
	GetUserByID(ctx context.Context, userID uint64) (domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
}

type TokenIssuer interface {
	Issue(userID uint64) (string, time.Time, error)
}

type UserService interface {
	SignUp(ctx context.Context, input domain.SignUpInput) (domain.User, error)
	Login(ctx context.Context, credentials domain.Credentials) (domain.AuthToken, error)
	GetUser(ctx context.Context, userID uint64) (domain.User, error)
}
