package domain

import "time"

type User struct {
	ID           uint64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Credentials struct {
	Email    string
	Password string
}

type SignUpInput struct {
	Credentials
	Name string
}

type AuthToken struct {
	Token     string
	ExpiresAt time.Time
}
