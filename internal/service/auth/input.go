package auth

import (
	"net/mail"
	"strings"

	"github.com/heartmarshall/tripplanner-backend/internal/domain"
)

// RegisterInput holds parameters for account registration.
type RegisterInput struct {
	Email    string
	Username string
	Password string
}

// Validate checks all fields and collects all errors.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if _, err := mail.ParseAddress(i.Email); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid"})
	}

	if strings.TrimSpace(i.Username) == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	} else if len(i.Username) > 100 {
		errs = append(errs, domain.FieldError{Field: "username", Message: "too long (max 100)"})
	}

	if len(i.Password) < 8 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too short (min 8)"})
	} else if len(i.Password) > 72 {
		// bcrypt input limit
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long (max 72)"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate checks all fields and collects all errors.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
