package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Dulceria-api/internal/application/dto"
	"github.com/jhoicas/Dulceria-api/internal/domain"
	"github.com/jhoicas/Dulceria-api/internal/domain/entity"
	"github.com/jhoicas/Dulceria-api/internal/domain/inventory"
	"github.com/jhoicas/Dulceria-api/internal/domain/repository"
	"github.com/jhoicas/Dulceria-api/internal/infrastructure/metrics"
	"github.com/jhoicas/Dulceria-api/pkg/password"
)

// adminMarker subcadena que otorga rol ADMIN al registrarse.
// Atajo de demostración: cualquiera puede elegir un username con "admin".
const adminMarker = "admin"

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	tokens   TokenIssuer
	hasher   password.Hasher
	log      zerolog.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, tokens TokenIssuer, hasher password.Hasher, log zerolog.Logger) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, tokens: tokens, hasher: hasher, log: log}
}

// RoleForUsername ADMIN si el username contiene "admin" sin distinguir mayúsculas; USER si no.
func RoleForUsername(username string) string {
	if inventory.ContainsFold(username, adminMarker) {
		return entity.RoleAdmin
	}
	return entity.RoleUser
}

// Login verifica username/password y devuelve usuario sin password + token.
// Usuario inexistente y password incorrecto producen el mismo ErrInvalidCredentials.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (out *dto.AuthResponse, err error) {
	defer func() { metrics.AuthAttemptsTotal.WithLabelValues("login", metrics.Result(err)).Inc() }()

	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	user, err := uc.userRepo.FindByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !uc.hasher.Matches(user.PasswordHash, in.Password) {
		uc.log.Warn().Str("username", in.Username).Msg("login rechazado")
		return nil, domain.ErrInvalidCredentials
	}
	return uc.respond(user)
}

// Register crea la cuenta con el rol derivado del username y devuelve lo mismo que Login.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (out *dto.AuthResponse, err error) {
	defer func() { metrics.AuthAttemptsTotal.WithLabelValues("register", metrics.Result(err)).Inc() }()

	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		PasswordHash: hash,
		Role:         RoleForUsername(in.Username),
		CreatedAt:    time.Now().UTC(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) {
			uc.log.Warn().Str("username", in.Username).Msg("registro con username existente")
		}
		return nil, err
	}
	uc.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("usuario registrado")
	return uc.respond(user)
}

func (uc *AuthUseCase) respond(user *entity.User) (*dto.AuthResponse, error) {
	public := user.Public()
	token, err := uc.tokens.Issue(public)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{User: public, Token: token}, nil
}
