package auth

import (
	"context"
	"errors"
	"net/mail"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// User is a dashboard login. Password holds the bcrypt hash.
type User struct {
	ID       uuid.UUID
	Name     string
	Email    string
	Password string
}

var (
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password; callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Repository interface {
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	CreateUser(ctx context.Context, u *User) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Authenticate verifies an email/password pair against the stored
// bcrypt hash.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidCredentials
	}

	if len(password) < 6 {
		return nil, ErrInvalidCredentials
	}

	u, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}

		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}

// Register hashes the password and stores a new user. Used by the
// seeder; the dashboard itself has no sign-up flow.
func (s *Service) Register(ctx context.Context, name, email, password string) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &User{Name: name, Email: email, Password: string(hash)}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}
