// Package auth validates bearer tokens for the local development server. In Lambda the
// API Gateway Cognito authorizer has already verified the token and only its claims are read.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrMissingToken     = errors.New("missing authentication token")
	ErrInvalidClaims    = errors.New("invalid token claims")
)

// Claims mirrors the subset of a Cognito ID token the service relies on.
type Claims struct {
	UserID   string `json:"sub"`
	Email    string `json:"email,omitempty"`
	Username string `json:"cognito:username,omitempty"`
	TokenUse string `json:"token_use,omitempty"`
	jwt.RegisteredClaims
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	SigningMethod string // RS256 or HS256
	PublicKey     string // PEM, for RS256
	SecretKey     string // for HS256
	Issuer        string
	Audience      string
}

// JWTValidator handles JWT validation
type JWTValidator struct {
	key           interface{}
	signingMethod jwt.SigningMethod
	parser        *jwt.Parser
}

// NewJWTValidator creates a new JWT validator
func NewJWTValidator(config JWTConfig) (*JWTValidator, error) {
	v := &JWTValidator{}

	switch config.SigningMethod {
	case "RS256":
		if config.PublicKey == "" {
			return nil, errors.New("public key required for RS256")
		}
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(config.PublicKey))
		if err != nil {
			return nil, fmt.Errorf("failed to parse public key: %w", err)
		}
		v.key = key
		v.signingMethod = jwt.SigningMethodRS256
	case "HS256", "":
		if config.SecretKey == "" {
			return nil, errors.New("secret key required for HS256")
		}
		v.key = []byte(config.SecretKey)
		v.signingMethod = jwt.SigningMethodHS256
	default:
		return nil, fmt.Errorf("unsupported signing method: %s", config.SigningMethod)
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{v.signingMethod.Alg()})}
	if config.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(config.Issuer))
	}
	if config.Audience != "" {
		opts = append(opts, jwt.WithAudience(config.Audience))
	}
	v.parser = jwt.NewParser(opts...)

	return v, nil
}

// ValidateToken validates a bearer token and returns its claims.
func (v *JWTValidator) ValidateToken(tokenString string) (*Claims, error) {
	tokenString = strings.TrimSpace(strings.TrimPrefix(tokenString, "Bearer "))
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	claims := &Claims{}
	token, err := v.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return v.key, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		case errors.Is(err, jwt.ErrTokenInvalidIssuer), errors.Is(err, jwt.ErrTokenInvalidAudience):
			return nil, fmt.Errorf("%w: %v", ErrInvalidClaims, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == "" {
		return nil, fmt.Errorf("%w: missing user ID", ErrInvalidClaims)
	}

	return claims, nil
}

// GenerateDevToken signs an HS256 token for local testing against the development server.
func GenerateDevToken(secret, issuer, userID, email string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("secret key required for HS256")
	}
	now := time.Now()
	claims := &Claims{
		UserID:   userID,
		Email:    email,
		TokenUse: "id",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
