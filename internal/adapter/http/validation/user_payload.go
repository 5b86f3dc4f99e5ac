package validation

import (
	"fmt"
	"strings"

	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/core/domain"
)

// maxPasswordBytes is the bcrypt input limit.
const maxPasswordBytes = 72

func BuildSignUpInput(body []byte) (domain.SignUpInput, error) {
	var req dto.SignUpRequest
	if _, err := Decode(SchemaSignUp, body, &req); err != nil {
		return domain.SignUpInput{}, err
	}
	if len(req.Password) > maxPasswordBytes {
		return domain.SignUpInput{}, &PayloadError{Violations: []Violation{{
			Field:   "password",
			Message: fmt.Sprintf("must not exceed %d bytes", maxPasswordBytes),
		}}}
	}
	return domain.SignUpInput{
		Credentials: domain.Credentials{Email: req.Email, Password: req.Password},
		Name:        strings.TrimSpace(req.Name),
	}, nil
}

func BuildCredentials(body []byte) (domain.Credentials, error) {
	var req dto.LoginRequest
	if _, err := Decode(SchemaLogin, body, &req); err != nil {
		return domain.Credentials{}, err
	}
	return domain.Credentials{Email: req.Email, Password: req.Password}, nil
}
