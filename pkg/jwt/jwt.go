package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMissingSecret sin secret no se firma ni se verifica nada.
var ErrMissingSecret = errors.New("jwt: secret vacío")

// Identity portador del token. Viaja aplanada en los claims (user_id, username, role)
// para que el middleware RBAC decida sin consultar el store.
type Identity struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"` // "ADMIN" | "USER"
}

// Claims claims registrados más la identidad.
type Claims struct {
	jwt.RegisteredClaims
	Identity
}

// Generate firma (HS256) la identidad con emisor y vigencia ttl. ttl negativo produce un token ya vencido.
func Generate(secret, issuer string, ttl time.Duration, id Identity) (string, error) {
	if secret == "" {
		return "", ErrMissingSecret
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Identity: id,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// Parse verifica firma HS256 y expiración y devuelve los claims.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (interface{}, error) { return []byte(secret), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("jwt: %w", err)
	}
	return claims, nil
}
