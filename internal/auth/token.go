package auth

import (
	"time"

	autherrors "go-hrapp/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the signed payload. Only identity travels in the token; the role
// is looked up on every request.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Identity is what a verified token proves.
type Identity struct {
	PrincipalID uuid.UUID
	Email       string
}

//go:generate mockgen -source=token.go -destination=mock/token_mock.go -package=mock
type TokenVerifier interface {
	Verify(token string) (Identity, error)
}

// TokenManager issues and verifies stateless HS256 session tokens. There is
// no revocation list: a token is valid until it expires.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type TokenOption func(*TokenManager)

// WithClock overrides time.Now for both issuing and verifying.
func WithClock(now func() time.Time) TokenOption {
	return func(m *TokenManager) {
		m.now = now
	}
}

func NewTokenManager(secret string, ttl time.Duration, opts ...TokenOption) *TokenManager {
	m := &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *TokenManager) Issue(principalID uuid.UUID, email string) (string, error) {
	now := m.now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principalID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", autherrors.ErrTokenGenerationFailed
	}
	return signed, nil
}

// Verify checks signature, algorithm and expiry with zero leeway. A token is
// valid up to and including its expiry instant. Every failure is reported as ErrInvalidToken.
func (m *TokenManager) Verify(tokenString string) (Identity, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(
		tokenString,
		&claims,
		func(*jwt.Token) (any, error) {
			return m.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		// jwt treats now == exp as expired; expiry is checked below instead
		jwt.WithoutClaimsValidation(),
	)
	if err != nil || !token.Valid {
		return Identity{}, autherrors.ErrInvalidToken
	}
	if claims.ExpiresAt == nil || m.now().After(claims.ExpiresAt.Time) {
		return Identity{}, autherrors.ErrInvalidToken
	}

	principalID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Identity{}, autherrors.ErrInvalidToken
	}

	return Identity{PrincipalID: principalID, Email: claims.Email}, nil
}
