// Package identity handles registration, login and request authorization.
package identity

import (
	"errors"
	"net/http"

	dmn "github.com/beka-birhanu/vinom-solver/domain"
	"github.com/beka-birhanu/vinom-solver/service/i"
	"github.com/gin-gonic/gin"
)

// IdentityServer handles HTTP requests related to authentication.
type IdentityServer struct {
	authService i.Authenticator
}

// NewIdentityServer creates a new IdentityServer.
func NewIdentityServer(a i.Authenticator) *IdentityServer {
	return &IdentityServer{
		authService: a,
	}
}

// RegisterPublic registers public routes.
func (c *IdentityServer) RegisterPublic(route *gin.RouterGroup) {
	auth := route.Group("/auth")
	{
		auth.POST("/register", c.registerUser)
		auth.POST("/login", c.login)
	}
}

// RegisterProtected registers privileged routes.
func (c *IdentityServer) RegisterProtected(route *gin.RouterGroup) {
}

// registerUser handles user registration.
func (c *IdentityServer) registerUser(ctx *gin.Context) {
	var request AuthRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := c.authService.Register(request.Username, request.Password)
	switch {
	case err == nil:
	case errors.Is(err, dmn.ErrUsernameConflict):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case isValidationError(err):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while registering user"})
		return
	}

	response := gin.H{"message": "User registered successfully"}
	ctx.JSON(http.StatusCreated, response)
}

// login handles user login.
func (c *IdentityServer) login(ctx *gin.Context) {
	var request AuthRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := c.authService.SignIn(request.Username, request.Password)
	if errors.Is(err, dmn.ErrInvalidCredentials) {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while signing in"})
		return
	}

	response := &AuthResponse{
		ID:         user.ID.String(),
		Username:   user.Username,
		SolveCount: user.SolveCount,
		Token:      token,
	}
	ctx.JSON(http.StatusOK, response)
}

// isValidationError reports whether err rejects the submitted credentials themselves.
func isValidationError(err error) bool {
	for _, target := range []error{
		dmn.ErrUsernameTooShort,
		dmn.ErrUsernameTooLong,
		dmn.ErrInvalidUsername,
		dmn.ErrWeakPassword,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
