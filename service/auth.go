package service

import (
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-solver/domain"
	"github.com/beka-birhanu/vinom-solver/service/i"
	"github.com/google/uuid"
)

const (
	accessTokenTTL = 24 * time.Hour
)

// Auth registers users and issues access tokens.
type Auth struct {
	userRepo  i.UserRepo
	tokenizer i.Tokenizer
}

// NewAuthService creates an Auth service.
func NewAuthService(userRepo i.UserRepo, tokenizer i.Tokenizer) (*Auth, error) {
	if userRepo == nil {
		return nil, fmt.Errorf("%w: user repo", ErrMissingDependency)
	}
	if tokenizer == nil {
		return nil, fmt.Errorf("%w: tokenizer", ErrMissingDependency)
	}
	return &Auth{userRepo: userRepo, tokenizer: tokenizer}, nil
}

// Register validates and stores a new user.
func (a *Auth) Register(username, password string) error {
	if _, err := a.userRepo.ByUsername(username); err == nil {
		return dmn.ErrUsernameConflict
	} else if !errors.Is(err, dmn.ErrUserNotFound) {
		return err
	}

	userConfig := dmn.UserConfig{
		ID:            uuid.New(),
		Username:      username,
		PlainPassword: password,
	}

	user, err := dmn.NewUser(userConfig)
	if err != nil {
		return err
	}

	return a.userRepo.Save(user)
}

// SignIn checks the credentials and returns the user with an access token.
func (a *Auth) SignIn(username, password string) (*dmn.User, string, error) {
	user, err := a.userRepo.ByUsername(username)
	if errors.Is(err, dmn.ErrUserNotFound) {
		return nil, "", dmn.ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}

	if !user.VerifyPassword(password) {
		return nil, "", dmn.ErrInvalidCredentials
	}

	token, err := a.tokenizer.Generate(map[string]interface{}{
		"userID":   user.ID.String(),
		"username": user.Username,
	}, accessTokenTTL)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}
