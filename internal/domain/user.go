package domain

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Roles a user can hold.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Password length bounds; 72 bytes is bcrypt's input limit.
const (
	MinPasswordLength = 12
	MaxPasswordLength = 72
)

// Common validation errors
var (
	ErrEmptyUserID      = fmt.Errorf("%w: user ID cannot be empty", ErrValidation)
	ErrEmptyEmail       = fmt.Errorf("%w: email cannot be empty", ErrValidation)
	ErrInvalidEmail     = fmt.Errorf("%w: invalid email format", ErrValidation)
	ErrEmptyName        = fmt.Errorf("%w: first and last name cannot be empty", ErrValidation)
	ErrInvalidRole      = fmt.Errorf("%w: invalid role", ErrValidation)
	ErrPasswordTooShort = fmt.Errorf("%w: password must be at least %d characters long", ErrValidation, MinPasswordLength)
	ErrPasswordTooLong  = fmt.Errorf("%w: password must be at most %d characters long", ErrValidation, MaxPasswordLength)
	ErrEmptyPassword    = fmt.Errorf("%w: password cannot be empty", ErrValidation)
)

var validate = validator.New()

// User is an account that owns projects.
type User struct {
	ID             uuid.UUID `json:"id"         yaml:"id"`
	FirstName      string    `json:"first_name" yaml:"first_name"`
	LastName       string    `json:"last_name"  yaml:"last_name"`
	Role           string    `json:"role"       yaml:"role"`
	Email          string    `json:"email"      yaml:"email"`
	Password       string    `json:"-"          yaml:"-"` // Plaintext password, used temporarily during registration/updates
	HashedPassword string    `json:"-"          yaml:"-"`
	CreatedAt      time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" yaml:"updated_at"`
}

// NewUser creates a new User with a fresh ID and creation/update timestamps.
// Returns an error if validation fails.
//
// The password is kept in plaintext; the user store hashes it before storage.
func NewUser(firstName, lastName, role, email, password string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:        uuid.New(),
		FirstName: firstName,
		LastName:  lastName,
		Role:      role,
		Email:     email,
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.FirstName == "" || u.LastName == "" {
		return ErrEmptyName
	}

	if u.Role != RoleUser && u.Role != RoleAdmin {
		return ErrInvalidRole
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if err := validate.Var(u.Email, "email"); err != nil {
		return ErrInvalidEmail
	}

	// Existing users loaded from storage carry only the hash.
	if u.Password == "" {
		if u.HashedPassword == "" {
			return ErrEmptyPassword
		}
		return nil
	}

	if len(u.Password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if len(u.Password) > MaxPasswordLength {
		return ErrPasswordTooLong
	}

	return nil
}
