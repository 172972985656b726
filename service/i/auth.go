package i

import (
	dmn "github.com/beka-birhanu/vinom-solver/domain"
)

// Authenticator registers users and signs them in.
type Authenticator interface {
	// Register creates a user with the given username and plain password.
	Register(username, password string) error

	// SignIn verifies the credentials and returns the user with a fresh access token.
	SignIn(username, password string) (*dmn.User, string, error)
}
