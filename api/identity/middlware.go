package identity

import (
	"errors"
	"net/http"
	"strings"

	"github.com/beka-birhanu/vinom-solver/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// ContextUserClaims is the key used to store user claims in the Gin context.
	ContextUserClaims = "userClaims"
)

var (
	ErrNoClaims = errors.New("no user claims in request context")
)

// Authoriz rejects requests without a valid bearer token and stores the
// token's claims in the context under ContextUserClaims.
func Authoriz(ts i.Tokenizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Retrieve the access token from the Authorization header.
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		// Split the "Bearer" prefix from the token.
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		claims, err := ts.Decode(parts[1])
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		// Attach user claims to the request context for further use.
		c.Set(ContextUserClaims, claims)
		c.Next()
	}
}

// UserID returns the ID of the authenticated user.
func UserID(c *gin.Context) (uuid.UUID, error) {
	value, ok := c.Get(ContextUserClaims)
	if !ok {
		return uuid.Nil, ErrNoClaims
	}
	claims, ok := value.(map[string]interface{})
	if !ok {
		return uuid.Nil, ErrNoClaims
	}
	raw, ok := claims["userID"].(string)
	if !ok {
		return uuid.Nil, ErrNoClaims
	}
	return uuid.Parse(raw)
}
