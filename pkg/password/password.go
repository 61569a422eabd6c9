package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher hashea y verifica passwords con bcrypt.
// Cost 0 usa bcrypt.DefaultCost; en tests conviene bcrypt.MinCost.
type Hasher struct {
	Cost int
}

// Hash devuelve el hash bcrypt del password.
func (h Hasher) Hash(plain string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Matches indica si plain corresponde al hash. Un hash mal formado cuenta como no coincidente.
func (h Hasher) Matches(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
