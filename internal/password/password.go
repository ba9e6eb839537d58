package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost — cost factor bcrypt по умолчанию
const DefaultCost = 10

// Hasher считает и проверяет bcrypt-хэши паролей
type Hasher struct {
	cost int
}

// NewHasher создаёт хэшер; cost вне допустимого диапазона bcrypt заменяется на DefaultCost
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}
}

// Cost возвращает используемый cost factor
func (h *Hasher) Cost() int {
	return h.cost
}

// Hash возвращает солёный хэш пароля
func (h *Hasher) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify сверяет пароль с хэшем
func (h *Hasher) Verify(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
