package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/saase/requesthub/internal/shared/biztime"
)

const (
	defaultAccessExpMinutes = 60
	defaultIssuer           = "requesthub"
)

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies HS256 bearer tokens for the back office.
type JWTService struct {
	secret           []byte
	issuer           string
	accessExpMinutes int
}

func NewJWTService(secret, issuer string, accessExpMinutes int) *JWTService {
	if issuer == "" {
		issuer = defaultIssuer
	}
	if accessExpMinutes <= 0 {
		accessExpMinutes = defaultAccessExpMinutes
	}
	return &JWTService{
		secret:           []byte(secret),
		issuer:           issuer,
		accessExpMinutes: accessExpMinutes,
	}
}

// Generate signs a token for subject with the given role.
func (s *JWTService) Generate(subject, role string) (string, error) {
	if subject == "" || role == "" {
		return "", fmt.Errorf("subject and role are required")
	}

	now := biztime.NowUTC()
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    s.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.AccessTTL())),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(s.issuer))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

func (s *JWTService) AccessTTL() time.Duration {
	return time.Duration(s.accessExpMinutes) * time.Minute
}
