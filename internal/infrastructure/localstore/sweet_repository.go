package localstore

import (
	"context"

	"github.com/jhoicas/Dulceria-api/internal/domain"
	"github.com/jhoicas/Dulceria-api/internal/domain/entity"
	"github.com/jhoicas/Dulceria-api/internal/domain/repository"
)

var _ repository.SweetRepository = (*SweetRepo)(nil)

// SweetRepo implementación de SweetRepository sobre la entrada sr_sweets.
type SweetRepo struct {
	store *Store
}

// NewSweetRepository construye el adaptador de persistencia para dulces.
func NewSweetRepository(store *Store) *SweetRepo {
	return &SweetRepo{store: store}
}

// GetAll devuelve el catálogo completo en el orden guardado.
func (r *SweetRepo) GetAll(ctx context.Context) ([]*entity.Sweet, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}
	return load[entity.Sweet](ctx, r.store.medium, KeySweets)
}

// GetByID obtiene un dulce por ID; nil, nil si no existe. No aplica latencia.
func (r *SweetRepo) GetByID(ctx context.Context, id string) (*entity.Sweet, error) {
	sweets, err := load[entity.Sweet](ctx, r.store.medium, KeySweets)
	if err != nil {
		return nil, err
	}
	if i := indexOfSweet(sweets, id); i >= 0 {
		return sweets[i], nil
	}
	return nil, nil
}

// Create agrega el dulce al final. El ID lo asigna el llamador; no se verifica unicidad.
func (r *SweetRepo) Create(ctx context.Context, sweet *entity.Sweet) error {
	if err := r.store.wait(ctx); err != nil {
		return err
	}
	return mutate(ctx, r.store.medium, KeySweets, func(sweets []*entity.Sweet) ([]*entity.Sweet, error) {
		s := *sweet
		return append(sweets, &s), nil
	})
}

// Update fusiona el patch sobre el dulce y devuelve el registro resultante.
func (r *SweetRepo) Update(ctx context.Context, id string, patch entity.SweetPatch) (*entity.Sweet, error) {
	return r.Mutate(ctx, id, func(s *entity.Sweet) error {
		s.Apply(patch)
		return nil
	})
}

// Delete elimina el dulce si existe; si no, no hace nada.
func (r *SweetRepo) Delete(ctx context.Context, id string) error {
	if err := r.store.wait(ctx); err != nil {
		return err
	}
	return mutate(ctx, r.store.medium, KeySweets, func(sweets []*entity.Sweet) ([]*entity.Sweet, error) {
		kept := sweets[:0]
		for _, s := range sweets {
			if s.ID != id {
				kept = append(kept, s)
			}
		}
		return kept, nil
	})
}

// Mutate aplica fn a una copia del dulce y la persiste solo si fn no devuelve error.
func (r *SweetRepo) Mutate(ctx context.Context, id string, fn func(s *entity.Sweet) error) (*entity.Sweet, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}
	var out *entity.Sweet
	err := mutate(ctx, r.store.medium, KeySweets, func(sweets []*entity.Sweet) ([]*entity.Sweet, error) {
		i := indexOfSweet(sweets, id)
		if i < 0 {
			return nil, domain.ErrNotFound
		}
		s := *sweets[i]
		if err := fn(&s); err != nil {
			return nil, err
		}
		sweets[i] = &s
		out = &s
		return sweets, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func indexOfSweet(sweets []*entity.Sweet, id string) int {
	for i, s := range sweets {
		if s.ID == id {
			return i
		}
	}
	return -1
}
