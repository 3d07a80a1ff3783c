package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrEmptyPassword возвращается при попытке захешировать пустой пароль
	ErrEmptyPassword = errors.New("password: empty password")

	// ErrMismatch возвращается, когда пароль не совпадает с хешем
	ErrMismatch = errors.New("password: mismatch")
)

// BcryptHasher хеширует пароли операторов через bcrypt
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher создает hasher, нулевая стоимость заменяется bcrypt.DefaultCost
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Compare возвращает ErrMismatch, если пароль не подходит
func (h *BcryptHasher) Compare(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return err
}
