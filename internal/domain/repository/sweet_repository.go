package repository

import (
	"context"

	"github.com/jhoicas/Dulceria-api/internal/domain/entity"
)

// SweetRepository define el puerto de persistencia para Sweet (DIP).
type SweetRepository interface {
	GetAll(ctx context.Context) ([]*entity.Sweet, error)
	// GetByID devuelve nil, nil si no existe: la ausencia es un resultado válido en lecturas.
	GetByID(ctx context.Context, id string) (*entity.Sweet, error)
	Create(ctx context.Context, sweet *entity.Sweet) error
	// Update fusiona el patch sobre el registro; ErrNotFound si no existe.
	Update(ctx context.Context, id string, patch entity.SweetPatch) (*entity.Sweet, error)
	// Delete no falla si el registro no existe.
	Delete(ctx context.Context, id string) error
	// Mutate lee, valida y escribe un registro de forma atómica. Si fn devuelve error
	// no se escribe nada. ErrNotFound si no existe.
	Mutate(ctx context.Context, id string, fn func(s *entity.Sweet) error) (*entity.Sweet, error)
}
