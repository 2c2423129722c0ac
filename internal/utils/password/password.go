package password

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost стоимость хеширования по умолчанию
const DefaultCost = bcrypt.DefaultCost

// DefaultMinLength минимальная длина пароля оператора
const DefaultMinLength = 8

// Ошибки проверки паролей
var (
	ErrEmpty    = errors.New("password cannot be empty")
	ErrTooShort = errors.New("password is too short")
	ErrMismatch = errors.New("password does not match")
)

// Hasher интерфейс для хеширования паролей
type Hasher interface {
	Hash(password string) (string, error)
	Check(hash, password string) error
}

// BCryptHasher хеширует пароли через bcrypt и проверяет минимальную длину
type BCryptHasher struct {
	cost      int
	minLength int
}

// NewBCryptHasher создает новый hasher.
// Недопустимая стоимость заменяется на DefaultCost, minLength <= 0 на DefaultMinLength.
func NewBCryptHasher(cost, minLength int) *BCryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	if minLength <= 0 {
		minLength = DefaultMinLength
	}
	return &BCryptHasher{cost: cost, minLength: minLength}
}

// Hash хеширует пароль
func (h *BCryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmpty
	}
	if utf8.RuneCountInString(password) < h.minLength {
		return "", fmt.Errorf("%w: need at least %d characters", ErrTooShort, h.minLength)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashed), nil
}

// Check проверяет соответствие пароля хешу
func (h *BCryptHasher) Check(hash, password string) error {
	if hash == "" || password == "" {
		return ErrEmpty
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return fmt.Errorf("failed to check password: %w", err)
	}

	return nil
}
