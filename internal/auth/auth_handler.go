package auth

import (
	"net/http"

	"go-hrapp/internal/shared/apperror"
	"go-hrapp/internal/shared/contextutil"
	"go-hrapp/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const AccessTokenCookie = "access_token"

type Handler struct {
	service      Service
	secureCookie bool
	cookieMaxAge int
	logger       *zap.Logger
}

func NewHandler(service Service, secureCookie bool, cookieMaxAge int, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: service, secureCookie: secureCookie, cookieMaxAge: cookieMaxAge, logger: l}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperror.MapValidationError(err)
		response.Error(c, appErr.HTTPStatus, appErr.Code, appErr.Message, err.Error())
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("login failed", zap.String("code", httpErr.Code))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	if c.GetHeader("X-Client-Type") == "web" {
		http.SetCookie(c.Writer, &http.Cookie{
			Name:     AccessTokenCookie,
			Value:    resp.Token,
			Path:     "/",
			MaxAge:   h.cookieMaxAge,
			HttpOnly: true,
			Secure:   h.secureCookie,
			SameSite: http.SameSiteLaxMode,
		})
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// Logout only clears the cookie. Tokens are stateless and stay valid until
// they expire; clients are expected to discard theirs.
func (h *Handler) Logout(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     AccessTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	response.Success(c, http.StatusOK, gin.H{"logged_out": true}, nil)
}

func (h *Handler) Me(c *gin.Context) {
	p, ok := contextutil.GetPrincipal(c.Request.Context())
	if !ok {
		response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Unauthorized", nil)
		return
	}

	response.Success(c, http.StatusOK, AuthResponse{
		ID:    p.ID.String(),
		Email: p.Email,
		Role:  string(p.Role),
	}, nil)
}
