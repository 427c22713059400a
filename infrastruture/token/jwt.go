package token

import (
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-mazestats/service/i"
	"github.com/dgrijalva/jwt-go"
)

// Claim names set by the service.
const (
	ClaimSubject = "sub"
	ClaimIssuer  = "iss"
	ClaimExpiry  = "exp"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrInvalidIssuer = errors.New("token issued by another service")
)

// JwtService handles JWT operations for API access tokens.
// Implements i.Tokenizer.
type JwtService struct {
	secretKey string
	issuer    string
}

var _ i.Tokenizer = &JwtService{}

// NewJwtService creates a new JWT Service with the provided configuration.
func NewJwtService(secretKey, issuer string) *JwtService {
	return &JwtService{
		secretKey: secretKey,
		issuer:    issuer,
	}
}

// Generate creates a JWT for the given claims, stamped with the service issuer.
func (s *JwtService) Generate(claims map[string]interface{}, expTime time.Duration) (string, error) {
	jwtClaims := jwt.MapClaims{}
	for key, val := range claims {
		jwtClaims[key] = val
	}
	jwtClaims[ClaimExpiry] = time.Now().UTC().Add(expTime).Unix()
	jwtClaims[ClaimIssuer] = s.issuer

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtClaims)
	return token.SignedString([]byte(s.secretKey))
}

// GenerateAccess creates an access token for subject.
func (s *JwtService) GenerateAccess(subject string, expTime time.Duration) (string, error) {
	if subject == "" {
		return "", errors.New("token subject is required")
	}
	return s.Generate(map[string]interface{}{ClaimSubject: subject}, expTime)
}

// Decode parses and validates a JWT, returning the claims if valid.
func (s *JwtService) Decode(tokenString string) (map[string]interface{}, error) {
	token, err := jwt.Parse(tokenString, s.getSigningKey)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if !claims.VerifyIssuer(s.issuer, true) {
		return nil, ErrInvalidIssuer
	}

	return claims, nil
}

// getSigningKey returns the signing key for token validation.
func (s *JwtService) getSigningKey(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.New("unexpected signing method")
	}
	return []byte(s.secretKey), nil
}
