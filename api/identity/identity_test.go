package identity

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	dmn "github.com/beka-birhanu/vinom-solver/domain"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuth struct {
	user        *dmn.User
	registerErr error
	signInErr   error
}

func (a *stubAuth) Register(string, string) error { return a.registerErr }

func (a *stubAuth) SignIn(string, string) (*dmn.User, string, error) {
	if a.signInErr != nil {
		return nil, "", a.signInErr
	}
	return a.user, "signed-token", nil
}

type stubTokenizer struct {
	claims map[string]interface{}
}

func (t *stubTokenizer) Generate(map[string]interface{}, time.Duration) (string, error) {
	return "", nil
}

func (t *stubTokenizer) Decode(token string) (map[string]interface{}, error) {
	if token != "valid" {
		return nil, errors.New("bad token")
	}
	return t.claims, nil
}

func init() {
	gin.SetMode(gin.TestMode)
}

func post(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func newIdentityRouter(a *stubAuth) *gin.Engine {
	r := gin.New()
	NewIdentityServer(a).RegisterPublic(r.Group("/v1"))
	return r
}

func TestRegister(t *testing.T) {
	creds := AuthRequest{Username: "alice_w", Password: "a-long-Unusual-passphrase"}

	t.Run("created", func(t *testing.T) {
		w := post(t, newIdentityRouter(&stubAuth{}), "/v1/auth/register", creds)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("conflict", func(t *testing.T) {
		w := post(t, newIdentityRouter(&stubAuth{registerErr: dmn.ErrUsernameConflict}), "/v1/auth/register", creds)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("weak password", func(t *testing.T) {
		w := post(t, newIdentityRouter(&stubAuth{registerErr: dmn.ErrWeakPassword}), "/v1/auth/register", creds)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		w := post(t, newIdentityRouter(&stubAuth{}), "/v1/auth/register", map[string]string{"username": "alice_w"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid username", func(t *testing.T) {
		w := post(t, newIdentityRouter(&stubAuth{registerErr: dmn.ErrInvalidUsername}), "/v1/auth/register", creds)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("store outage", func(t *testing.T) {
		w := post(t, newIdentityRouter(&stubAuth{registerErr: errors.New("mongo down")}), "/v1/auth/register", creds)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "mongo")
	})
}

func TestLogin(t *testing.T) {
	user := &dmn.User{ID: uuid.New(), Username: "alice_w", SolveCount: 3}
	creds := AuthRequest{Username: "alice_w", Password: "a-long-Unusual-passphrase"}

	t.Run("ok", func(t *testing.T) {
		w := post(t, newIdentityRouter(&stubAuth{user: user}), "/v1/auth/login", creds)
		require.Equal(t, http.StatusOK, w.Code)

		var resp AuthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, AuthResponse{ID: user.ID.String(), Username: "alice_w", SolveCount: 3, Token: "signed-token"}, resp)
	})

	t.Run("bad credentials", func(t *testing.T) {
		w := post(t, newIdentityRouter(&stubAuth{signInErr: dmn.ErrInvalidCredentials}), "/v1/auth/login", creds)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("store outage", func(t *testing.T) {
		w := post(t, newIdentityRouter(&stubAuth{signInErr: errors.New("mongo down")}), "/v1/auth/login", creds)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestAuthoriz(t *testing.T) {
	id := uuid.New()
	ts := &stubTokenizer{claims: map[string]interface{}{"userID": id.String()}}

	r := gin.New()
	r.Use(Authoriz(ts))
	r.GET("/me", func(c *gin.Context) {
		userID, err := UserID(c)
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, userID.String())
	})

	tests := []struct {
		name   string
		header string
		code   int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"no bearer prefix", "valid", http.StatusUnauthorized},
		{"wrong scheme", "Basic valid", http.StatusUnauthorized},
		{"rejected token", "Bearer nope", http.StatusUnauthorized},
		{"valid token", "Bearer valid", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.code, w.Code)
			if tt.code == http.StatusOK {
				assert.Equal(t, id.String(), w.Body.String())
			}
		})
	}
}

func TestUserIDWithoutClaims(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, err := UserID(c)
	assert.ErrorIs(t, err, ErrNoClaims)

	c.Set(ContextUserClaims, map[string]interface{}{"userID": 42})
	_, err = UserID(c)
	assert.ErrorIs(t, err, ErrNoClaims)
}
