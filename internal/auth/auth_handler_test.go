package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrapp/internal/auth"
	autherrors "go-hrapp/internal/auth/errors"
	"go-hrapp/internal/domain"
	"go-hrapp/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(body, &env))
	return env
}

type fakeAuthService struct {
	loginFn func(ctx context.Context, email, password string) (auth.LoginResponse, error)
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (auth.LoginResponse, error) {
	return f.loginFn(ctx, email, password)
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success sets cookie for web clients", func(t *testing.T) {
		svc := &fakeAuthService{
			loginFn: func(ctx context.Context, email, password string) (auth.LoginResponse, error) {
				assert.Equal(t, "a@example.com", email)
				assert.Equal(t, "secret", password)
				return auth.LoginResponse{Token: "tok", Type: "Bearer", User: auth.AuthResponse{Email: email, Role: "EMPLOYEE"}}, nil
			},
		}
		h := auth.NewHandler(svc, false, 3600)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"a@example.com","password":"secret"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Request.Header.Set("X-Client-Type", "web")

		h.Login(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		var got auth.LoginResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "tok", got.Token)
		assert.Contains(t, w.Header().Get("Set-Cookie"), auth.AccessTokenCookie+"=tok")
	})

	t.Run("negative validation error", func(t *testing.T) {
		h := auth.NewHandler(&fakeAuthService{}, false, 3600)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"nope"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Login(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})

	t.Run("negative invalid credentials", func(t *testing.T) {
		svc := &fakeAuthService{
			loginFn: func(ctx context.Context, email, password string) (auth.LoginResponse, error) {
				return auth.LoginResponse{}, autherrors.ErrInvalidCredentials
			},
		}
		h := auth.NewHandler(svc, false, 3600)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"a@example.com","password":"bad"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Login(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
		assert.Empty(t, w.Header().Get("Set-Cookie"))
	})
}

func TestAuthHandler_Me(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		p := domain.Principal{ID: uuid.New(), Email: "m@example.com", Role: domain.RoleManager}
		h := auth.NewHandler(&fakeAuthService{}, false, 3600)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		c.Request = req.WithContext(contextutil.WithPrincipal(req.Context(), p))

		h.Me(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		var got auth.AuthResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, p.ID.String(), got.ID)
		assert.Equal(t, "MANAGER", got.Role)
	})

	t.Run("negative no principal", func(t *testing.T) {
		h := auth.NewHandler(&fakeAuthService{}, false, 3600)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/auth/me", nil)

		h.Me(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	h := auth.NewHandler(&fakeAuthService{}, true, 3600)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/logout", nil)

	h.Logout(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=0")
}
