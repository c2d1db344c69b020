package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TTL is how long an issued token stays valid. There is no revocation:
// a token expires naturally and nothing else invalidates it.
const TTL = 2 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

// Claims is the identity a valid token asserts.
type Claims struct {
	UserID uint
	Email  string
	Role   string
}

// Service mints and validates HS256 bearer tokens. The key, issuer and
// audience are loaded once at startup and shared by reference.
type Service struct {
	secret   []byte
	issuer   string
	audience string
}

func New(secret, issuer, audience string) *Service {
	return &Service{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
	}
}

// Issue signs a compact token carrying the user id, email and role along
// with issuer, audience and a 2 hour expiry.
func (s *Service) Issue(userID uint, email, role string) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"sub":   float64(userID),
		"email": email,
		"role":  role,
		"iss":   s.issuer,
		"aud":   s.audience,
		"iat":   now.Unix(),
		"exp":   now.Add(TTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Parse validates the signature, issuer, audience and expiry, and extracts
// the identity claims. Any failure yields ErrInvalidToken; the caller
// treats the request as unauthenticated.
func (s *Service) Parse(tokenString string) (*Claims, error) {
	parsed, err := jwt.Parse(
		tokenString,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return s.secret, nil
		},
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	mc, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, ok := mc["sub"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}
	email, _ := mc["email"].(string)
	role, ok := mc["role"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	return &Claims{
		UserID: uint(sub),
		Email:  email,
		Role:   role,
	}, nil
}
