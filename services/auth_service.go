package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dosada05/league-simulator/models"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

type TokenResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AuthService guards the simulation endpoints with a single admin
// password and HS256 tokens.
type AuthService interface {
	Login(ctx context.Context, password string) (*TokenResult, error)
	ParseToken(tokenString string) (jwt.MapClaims, error)
}

type authService struct {
	passwordHash []byte
	jwtSecret    []byte
	now          func() time.Time
}

func NewAuthService(passwordHash, jwtSecret string) AuthService {
	return &authService{
		passwordHash: []byte(passwordHash),
		jwtSecret:    []byte(jwtSecret),
		now:          time.Now,
	}
}

func (s *authService) Login(ctx context.Context, password string) (*TokenResult, error) {
	if password == "" {
		return nil, ErrAuthInvalidCredentials
	}
	err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrAuthInvalidCredentials
		}
		return nil, fmt.Errorf("failed to compare password hash: %w", err)
	}

	now := s.now()
	expiresAt := now.Add(tokenTTL)
	claims := jwt.MapClaims{
		"sub":  string(models.RoleAdmin),
		"role": string(models.RoleAdmin),
		"exp":  expiresAt.Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &TokenResult{Token: tokenString, ExpiresAt: expiresAt}, nil
}

func (s *authService) ParseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrAuthInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrAuthInvalidToken
	}
	return claims, nil
}
