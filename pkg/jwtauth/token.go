package jwtauth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken возвращается для просроченного, подделанного или некорректного токена
	ErrInvalidToken = errors.New("jwtauth: invalid token")

	// ErrEmptySubject возвращается при попытке выпустить токен без идентификатора пользователя
	ErrEmptySubject = errors.New("jwtauth: subject is required")
)

// Claims полезная нагрузка токена оператора
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenService выпускает и проверяет HS256 токены
type TokenService struct {
	secret    []byte
	issuer    string
	expiresIn time.Duration
	now       func() time.Time
}

// NewTokenService создает сервис токенов. Нулевой TTL заменяется одним часом.
func NewTokenService(secret, issuer string, expiresIn time.Duration) *TokenService {
	if expiresIn <= 0 {
		expiresIn = time.Hour
	}
	return &TokenService{
		secret:    []byte(secret),
		issuer:    issuer,
		expiresIn: expiresIn,
		now:       time.Now,
	}
}

// Generate выпускает токен для пользователя. subject - строковый ID пользователя.
func (t *TokenService) Generate(subject, username string) (string, time.Time, error) {
	if subject == "" {
		return "", time.Time{}, ErrEmptySubject
	}

	now := t.now().UTC()
	expiresAt := now.Add(t.expiresIn)
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    t.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("jwtauth: sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Validate проверяет подпись, срок действия и издателя токена
func (t *TokenService) Validate(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(t.now),
	}
	if t.issuer != "" {
		opts = append(opts, jwt.WithIssuer(t.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
