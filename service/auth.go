package service

import (
	"errors"
	"time"

	dmn "github.com/amazeing-labs/amazeing-api/domain"
	"github.com/amazeing-labs/amazeing-api/service/i"
	"github.com/google/uuid"
)

const tokenLifetime = 24 * time.Hour

// ErrInvalidCredentials hides whether the username or the password was
// wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Auth implements i.Authenticator over a user repository and a tokenizer.
type Auth struct {
	userRepo  i.UserRepo
	tokenizer i.Tokenizer
}

// NewAuth creates the authentication service.
func NewAuth(userRepo i.UserRepo, tokenizer i.Tokenizer) (*Auth, error) {
	if userRepo == nil || tokenizer == nil {
		return nil, errors.New("auth service requires a user repo and a tokenizer")
	}
	return &Auth{
		userRepo:  userRepo,
		tokenizer: tokenizer,
	}, nil
}

// Register creates a new user from a username and plain password.
func (a *Auth) Register(username, password string) error {
	user, err := dmn.NewUser(dmn.UserConfig{
		ID:            uuid.New(),
		Username:      username,
		PlainPassword: password,
	})
	if err != nil {
		return err
	}

	return a.userRepo.Save(user)
}

// SignIn verifies credentials and returns the user and a signed token.
func (a *Auth) SignIn(username, password string) (*dmn.User, string, error) {
	user, err := a.userRepo.ByUsername(username)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !user.VerifyPassword(password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := a.tokenizer.Generate(map[string]interface{}{
		"userID":   user.ID.String(),
		"username": user.Username,
	}, tokenLifetime)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}
