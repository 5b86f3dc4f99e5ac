package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

type UserService struct {
	userRepository ports.UserRepository
	tokenIssuer    ports.TokenIssuer
	now            func() time.Time
	hashCost       int
}

func NewUserService(userRepository ports.UserRepository, tokenIssuer ports.TokenIssuer) *UserService {
	return &UserService{
		userRepository: userRepository,
		tokenIssuer:    tokenIssuer,
		now:            utcNow,
		hashCost:       bcrypt.DefaultCost,
	}
}

func (s *UserService) SignUp(ctx context.Context, input domain.SignUpInput) (domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.hashCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	now := s.now()
	return s.userRepository.CreateUser(ctx, domain.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        normalizeEmail(input.Email),
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

func (s *UserService) Login(ctx context.Context, credentials domain.Credentials) (domain.AuthToken, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, normalizeEmail(credentials.Email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.AuthToken{}, domain.ErrInvalidCredentials
		}
		return domain.AuthToken{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)); err != nil {
		return domain.AuthToken{}, domain.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokenIssuer.Issue(user.ID)
	if err != nil {
		return domain.AuthToken{}, fmt.Errorf("issue token: %w", err)
	}
	return domain.AuthToken{Token: token, ExpiresAt: expiresAt}, nil
}

func (s *UserService) GetUser(ctx context.Context, userID uint64) (domain.User, error) {
	return s.userRepository.GetUserByID(ctx, userID)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

var _ ports.UserService = (*UserService)(nil)
