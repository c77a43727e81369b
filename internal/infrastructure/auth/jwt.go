package auth

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vktkrum1/sistema-de-propostas/internal/domain/entities"
)

var (
	ErrInvalidToken = errors.New("token inválido ou expirado")
)

// Claims is the JWT payload issued at login. Role travels in the token so
// the middleware can gate management routes without a user lookup per
// request.
type Claims struct {
	Usuario string `json:"usuario"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

// JWTManager signs and verifies HS256 bearer tokens.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTManagerFromEnv reads JWT_SECRET (required in production, defaulted
// for local runs) and JWT_TTL_HOURS (default 8).
func NewJWTManagerFromEnv() *JWTManager {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "local-dev-secret"
	}
	hours := 8
	if v := os.Getenv("JWT_TTL_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			hours = n
		}
	}
	return NewJWTManager(secret, time.Duration(hours)*time.Hour)
}

func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	return &JWTManager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token for the authenticated user.
func (m *JWTManager) Issue(u entities.User) (string, error) {
	now := m.now()
	claims := Claims{
		Usuario: u.Usuario,
		Role:    string(u.Tipo),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify parses a bearer token and returns its claims.
func (m *JWTManager) Verify(token string) (Claims, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return m.now() }))
	if err != nil || !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}
