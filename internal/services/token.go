package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Sehar1999/applicant-tracking-system/internal/models"
)

// TokenClaims is the JWT payload carried by every authenticated request.
type TokenClaims struct {
	UserID uint   `json:"id"`
	Email  string `json:"email"`
	RoleID uint   `json:"roleId"`
	jwt.RegisteredClaims
}

type TokenService interface {
	Sign(user *models.User) (string, error)
	Verify(token string) (*TokenClaims, error)
}

type tokenService struct {
	secret    []byte
	expiresIn time.Duration
}

func NewTokenService(secret string, expiresIn time.Duration) TokenService {
	return &tokenService{
		secret:    []byte(secret),
		expiresIn: expiresIn,
	}
}

// Sign implements TokenService.
func (t *tokenService) Sign(user *models.User) (string, error) {
	claims := &TokenClaims{
		UserID: user.ID,
		Email:  user.Email,
		RoleID: user.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(t.expiresIn)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify implements TokenService.
func (t *tokenService) Verify(tokenStr string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
