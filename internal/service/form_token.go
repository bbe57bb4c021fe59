package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const FormTokenTTL = 24 * time.Hour

var ErrInvalidFormToken = errors.New("invalid form token")

// formTokenClaims содержимое CSRF токена формы
type formTokenClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// FormTokenService выпускает и проверяет подписанные CSRF токены для формы
type FormTokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewFormTokenService создает новый экземпляр FormTokenService
func NewFormTokenService(secret string) *FormTokenService {
	return &FormTokenService{
		secret: []byte(secret),
		ttl:    FormTokenTTL,
		now:    time.Now,
	}
}

// Issue создает токен для новой сессии формы
func (s *FormTokenService) Issue() (string, error) {
	now := s.now()
	claims := formTokenClaims{
		SessionID: uuid.NewString(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign form token: %w", err)
	}
	return signed, nil
}

// Verify проверяет подпись и срок действия токена и возвращает идентификатор сессии
func (s *FormTokenService) Verify(tokenString string) (string, error) {
	var claims formTokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidFormToken, err)
	}

	if !token.Valid || claims.SessionID == "" {
		return "", ErrInvalidFormToken
	}

	return claims.SessionID, nil
}
