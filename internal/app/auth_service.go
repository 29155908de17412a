package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"gopherfeed/internal/model"
	"gopherfeed/internal/pkg/jwtutil"
	"gopherfeed/internal/repository"
)

var (
	ErrMissingFields      = errors.New("All fields are required")
	ErrMissingCredentials = errors.New("Email and password are required")
	ErrUsernameTooShort   = errors.New("Username must be at least 3 characters")
	ErrPasswordTooShort   = errors.New("Password must be at least 6 characters")
	ErrPasswordTooLong    = errors.New("Password must be 72 characters or less")
	ErrUserExists         = errors.New("User already exists")
	// ErrInvalidCredentials is deliberately the same for an unknown email
	// and a wrong password so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("Invalid credentials")
)

type AuthService struct {
	userRepo *repository.UserRepository
	secret   string
	tokenTTL time.Duration
}

type SignupInput struct {
	Username string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthResult struct {
	Token string
	User  *model.User
}

func NewAuthService(userRepo *repository.UserRepository, secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

func (s *AuthService) Signup(input SignupInput) (*AuthResult, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	password := input.Password

	if username == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}
	if len([]rune(username)) < 3 {
		return nil, ErrUsernameTooShort
	}
	if len(password) < 6 {
		return nil, ErrPasswordTooShort
	}
	// bcrypt only reads the first 72 bytes; reject instead of silently
	// truncating (GenerateFromPassword errors past this anyway).
	if len(password) > 72 {
		return nil, ErrPasswordTooLong
	}

	existingByName, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if existingByName != nil {
		return nil, ErrUserExists
	}

	existingByEmail, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existingByEmail != nil {
		return nil, ErrUserExists
	}

	// Adaptive work factor; the cost here is the point.
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password failed: %w", err)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(user); err != nil {
		// A racing signup can slip past the lookups above; the store's
		// uniqueness constraint settles it.
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	token, err := jwtutil.GenerateToken(s.secret, s.tokenTTL, user.ID, user.Username)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

func (s *AuthService) Login(input LoginInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	password := input.Password
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := jwtutil.GenerateToken(s.secret, s.tokenTTL, user.ID, user.Username)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

func (s *AuthService) GetUserByID(id string) (*model.User, error) {
	if id == "" {
		return nil, nil
	}
	return s.userRepo.GetByID(id)
}
