package localstore

import (
	"context"

	"github.com/jhoicas/Dulceria-api/internal/domain"
	"github.com/jhoicas/Dulceria-api/internal/domain/entity"
	"github.com/jhoicas/Dulceria-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación de UserRepository sobre la entrada sr_users.
type UserRepo struct {
	store *Store
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(store *Store) *UserRepo {
	return &UserRepo{store: store}
}

// FindByUsername búsqueda exacta (sensible a mayúsculas); nil, nil si no existe.
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}
	users, err := load[entity.User](ctx, r.store.medium, KeyUsers)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

// Create agrega el usuario. La verificación de duplicado ocurre en la misma escritura atómica.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	if err := r.store.wait(ctx); err != nil {
		return err
	}
	return mutate(ctx, r.store.medium, KeyUsers, func(users []*entity.User) ([]*entity.User, error) {
		for _, u := range users {
			if u.Username == user.Username {
				return nil, domain.ErrDuplicateUsername
			}
		}
		u := *user
		return append(users, &u), nil
	})
}
