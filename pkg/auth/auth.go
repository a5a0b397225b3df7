package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// DefaultTTL is how long issued tokens stay valid. There is no refresh or
// revocation; expiry is the only server-side termination path.
const DefaultTTL = 7 * 24 * time.Hour

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrMissingBearer = errors.New("missing bearer token")
)

// Claims binds a token to a user id (subject) and email.
type Claims struct {
	Email string `json:"email"`
	jwt.StandardClaims
}

// Manager signs and verifies session tokens with a single shared HMAC
// secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// GenerateJWT issues a signed token for the given user.
func (m *Manager) GenerateJWT(userID, email string) (string, error) {
	claims := Claims{
		Email: email,
		StandardClaims: jwt.StandardClaims{
			Subject:   userID,
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(m.ttl).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ValidateJWT verifies signature and expiry and returns the claims.
func (m *Manager) ValidateJWT(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, error) {
	if !strings.HasPrefix(header, "Bearer ") {
		return "", ErrMissingBearer
	}
	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" {
		return "", ErrMissingBearer
	}
	return token, nil
}
