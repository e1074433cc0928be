package services

import (
	"fmt"
	"time"

	"speedxpress/internal/apperr"

	"github.com/dgrijalva/jwt-go"
	"go.uber.org/zap"
)

// AuthService issues and validates the signed tokens that identify a user
// by email.
type AuthService struct {
	jwtSecret  []byte
	tokenDurat time.Duration // Duration for which JWT is valid
	logger     *zap.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(jwtSecret string, logger *zap.Logger) *AuthService {
	return &AuthService{
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour,
		logger:     logger,
	}
}

// IssueToken returns an HS256 token carrying the email claim.
func (s *AuthService) IssueToken(email string) (string, error) {
	if email == "" {
		return "", apperr.New(apperr.KindInvalidArgument, "email is required")
	}

	now := jwt.TimeFunc()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"exp":   now.Add(s.tokenDurat).Unix(),
		"iat":   now.Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a token, returning its email claim.
func (s *AuthService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		s.logger.Debug("token validation failed", zap.Error(err))
		return "", apperr.Wrap(apperr.KindUnauthorized, "invalid or expired token", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", apperr.New(apperr.KindUnauthorized, "invalid or expired token")
	}
	email, _ := claims["email"].(string)
	if email == "" {
		return "", apperr.New(apperr.KindUnauthorized, "token has no email claim")
	}
	return email, nil
}
