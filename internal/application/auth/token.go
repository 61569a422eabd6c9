package auth

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Dulceria-api/internal/domain/entity"
	"github.com/jhoicas/Dulceria-api/pkg/jwt"
)

// TokenIssuer genera el token de sesión para un usuario autenticado.
type TokenIssuer interface {
	Issue(user entity.PublicUser) (string, error)
}

// JWTConfig configuración para generación de tokens firmados.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// JWTIssuer emite JWT HS256 verificables por el middleware HTTP.
type JWTIssuer struct {
	cfg JWTConfig
}

// NewJWTIssuer construye el emisor firmado.
func NewJWTIssuer(cfg JWTConfig) *JWTIssuer {
	return &JWTIssuer{cfg: cfg}
}

// Issue firma un token con la identidad del usuario.
func (i *JWTIssuer) Issue(user entity.PublicUser) (string, error) {
	ttl := time.Duration(i.cfg.ExpMinutes) * time.Minute
	return jwt.Generate(i.cfg.Secret, i.cfg.Issuer, ttl, IdentityOf(user))
}

// IdentityOf lo que viaja en el token de un usuario.
func IdentityOf(user entity.PublicUser) jwt.Identity {
	return jwt.Identity{UserID: user.ID, Username: user.Username, Role: user.Role}
}

// UserOf reconstruye el usuario público a partir de un token verificado.
func UserOf(id jwt.Identity) entity.PublicUser {
	return entity.PublicUser{ID: id.UserID, Username: id.Username, Role: id.Role}
}

// OpaqueIssuer emite un identificador aleatorio que nadie verifica después.
// Solo para el modo demo sin secret; no sirve como credencial real.
type OpaqueIssuer struct{}

// Issue devuelve un UUID v4.
func (OpaqueIssuer) Issue(entity.PublicUser) (string, error) {
	return uuid.NewString(), nil
}

// NewTokenIssuer elige JWT si hay secret y token opaco si no.
func NewTokenIssuer(cfg JWTConfig) TokenIssuer {
	if cfg.Secret == "" {
		return OpaqueIssuer{}
	}
	return NewJWTIssuer(cfg)
}
