package app

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"gopherfeed/internal/pkg/jwtutil"
	"gopherfeed/internal/repository"
)

const testSecret = "test-secret"

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	repo := repository.NewUserRepository(newTestDB(t))
	return NewAuthService(repo, testSecret, 7*24*time.Hour)
}

func TestAuthService_Signup(t *testing.T) {
	svc := newAuthService(t)

	result, err := svc.Signup(SignupInput{
		Username: "  alice  ",
		Email:    "A@X.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	require.NotNil(t, result.User)

	assert.NotEmpty(t, result.User.ID)
	assert.Equal(t, "alice", result.User.Username)
	assert.Equal(t, "a@x.com", result.User.Email)
	assert.NotEqual(t, "secret1", result.User.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(result.User.PasswordHash), []byte("secret1")))

	// The returned token must verify immediately and name the created
	// user as its subject.
	claims, err := jwtutil.ParseToken(testSecret, result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, claims.Subject)
	assert.Equal(t, result.User.ID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestAuthService_SignupValidation(t *testing.T) {
	svc := newAuthService(t)

	tests := []struct {
		name    string
		input   SignupInput
		wantErr error
	}{
		{"missing username", SignupInput{Email: "a@x.com", Password: "secret1"}, ErrMissingFields},
		{"missing email", SignupInput{Username: "alice", Password: "secret1"}, ErrMissingFields},
		{"missing password", SignupInput{Username: "alice", Email: "a@x.com"}, ErrMissingFields},
		{"whitespace username", SignupInput{Username: "   ", Email: "a@x.com", Password: "secret1"}, ErrMissingFields},
		{"short username", SignupInput{Username: "al", Email: "a@x.com", Password: "secret1"}, ErrUsernameTooShort},
		// Two characters even though the byte count clears the minimum.
		{"short multibyte username", SignupInput{Username: "日本", Email: "a@x.com", Password: "secret1"}, ErrUsernameTooShort},
		{"short password", SignupInput{Username: "alice", Email: "a@x.com", Password: "12345"}, ErrPasswordTooShort},
		{"overlong password", SignupInput{Username: "alice", Email: "a@x.com", Password: strings.Repeat("p", 73)}, ErrPasswordTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Signup(tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_SignupValidationBoundaries(t *testing.T) {
	svc := newAuthService(t)

	// Three multibyte characters satisfy the minimum.
	result, err := svc.Signup(SignupInput{Username: "日本語", Email: "jp@x.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "日本語", result.User.Username)

	// 72 bytes is the longest password bcrypt accepts.
	_, err = svc.Signup(SignupInput{Username: "carol", Email: "c@x.com", Password: strings.Repeat("p", 72)})
	assert.NoError(t, err)
}

func TestAuthService_SignupConflicts(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Signup(SignupInput{Username: "alice", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	// Same username, different email.
	_, err = svc.Signup(SignupInput{Username: "alice", Email: "other@x.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrUserExists)

	// Same email, different username; emails collide case-insensitively.
	_, err = svc.Signup(SignupInput{Username: "alice2", Email: "A@X.COM", Password: "secret1"})
	assert.ErrorIs(t, err, ErrUserExists)

	// Usernames are case-sensitive, so this one is a different user.
	_, err = svc.Signup(SignupInput{Username: "Alice", Email: "alice2@x.com", Password: "secret1"})
	assert.NoError(t, err)
}

func TestAuthService_LoginInvalidCredentialsIndistinguishable(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Signup(SignupInput{Username: "alice", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	_, wrongPassErr := svc.Login(LoginInput{Email: "a@x.com", Password: "wrong-pass"})
	_, noUserErr := svc.Login(LoginInput{Email: "nobody@x.com", Password: "secret1"})

	assert.ErrorIs(t, wrongPassErr, ErrInvalidCredentials)
	assert.ErrorIs(t, noUserErr, ErrInvalidCredentials)
	assert.Equal(t, wrongPassErr, noUserErr)
}

func TestAuthService_Login(t *testing.T) {
	svc := newAuthService(t)

	signedUp, err := svc.Signup(SignupInput{Username: "alice", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	result, err := svc.Login(LoginInput{Email: "A@x.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, signedUp.User.ID, result.User.ID)

	claims, err := jwtutil.ParseToken(testSecret, result.Token)
	require.NoError(t, err)
	assert.Equal(t, signedUp.User.ID, claims.Subject)

	_, err = svc.Login(LoginInput{Email: "", Password: "secret1"})
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestAuthService_GetUserByID(t *testing.T) {
	svc := newAuthService(t)

	signedUp, err := svc.Signup(SignupInput{Username: "alice", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	user, err := svc.GetUserByID(signedUp.User.ID)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "alice", user.Username)

	missing, err := svc.GetUserByID("no-such-id")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
