package user

import (
	"regexp"
	"strings"
	"time"

	"github.com/portal/portal/internal/platform/apperr"
)

// User is a portal account. The password hash never leaves the API.
type User struct {
	ID           int64     `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FirstName    string    `db:"first_name" json:"first_name"`
	LastName     string    `db:"last_name" json:"last_name"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const (
	maxUsernameLen = 64
	maxEmailLen    = 254
	maxNameLen     = 100
	minPasswordLen = 8
)

// CreateUserInput is the registration payload.
type CreateUserInput struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (in *CreateUserInput) Validate() error {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)

	if in.Username == "" {
		return apperr.Validationf("username is required")
	}
	if len(in.Username) > maxUsernameLen {
		return apperr.Validationf("username must be at most %d characters", maxUsernameLen)
	}
	if in.Email == "" {
		return apperr.Validationf("email is required")
	}
	if len(in.Email) > maxEmailLen || !emailPattern.MatchString(in.Email) {
		return apperr.Validationf("email %q is malformed", in.Email)
	}
	if len(in.Password) < minPasswordLen {
		return apperr.Validationf("password must be at least %d characters", minPasswordLen)
	}
	if in.FirstName == "" {
		return apperr.Validationf("first_name is required")
	}
	if in.LastName == "" {
		return apperr.Validationf("last_name is required")
	}
	if len(in.FirstName) > maxNameLen || len(in.LastName) > maxNameLen {
		return apperr.Validationf("names must be at most %d characters", maxNameLen)
	}
	return nil
}

// UpdateUserInput is a partial patch over the account's profile
// fields. Nil fields keep their stored value; username and password
// are fixed after registration.
type UpdateUserInput struct {
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

func (in *UpdateUserInput) Validate() error {
	if in.Email != nil {
		*in.Email = strings.TrimSpace(*in.Email)
		if len(*in.Email) > maxEmailLen || !emailPattern.MatchString(*in.Email) {
			return apperr.Validationf("email %q is malformed", *in.Email)
		}
	}
	if in.FirstName != nil {
		*in.FirstName = strings.TrimSpace(*in.FirstName)
		if *in.FirstName == "" || len(*in.FirstName) > maxNameLen {
			return apperr.Validationf("first_name must be 1-%d characters", maxNameLen)
		}
	}
	if in.LastName != nil {
		*in.LastName = strings.TrimSpace(*in.LastName)
		if *in.LastName == "" || len(*in.LastName) > maxNameLen {
			return apperr.Validationf("last_name must be 1-%d characters", maxNameLen)
		}
	}
	return nil
}
