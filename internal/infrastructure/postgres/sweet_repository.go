package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Dulceria-api/internal/domain"
	"github.com/jhoicas/Dulceria-api/internal/domain/entity"
	"github.com/jhoicas/Dulceria-api/internal/domain/repository"
)

var _ repository.SweetRepository = (*SweetRepo)(nil)

const sweetColumns = `id, name, category, price, quantity, description, image`

// SweetRepo implementación de SweetRepository sobre PostgreSQL.
// Mutate bloquea la fila (SELECT FOR UPDATE) para que compras concurrentes no sobrevendan.
type SweetRepo struct {
	pool *pgxpool.Pool
}

// NewSweetRepository construye el adaptador de persistencia para dulces.
func NewSweetRepository(pool *pgxpool.Pool) *SweetRepo {
	return &SweetRepo{pool: pool}
}

// GetAll lista el catálogo en orden de creación.
func (r *SweetRepo) GetAll(ctx context.Context) ([]*entity.Sweet, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+sweetColumns+` FROM sweets ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list sweets: %w", err)
	}
	defer rows.Close()
	list := []*entity.Sweet{}
	for rows.Next() {
		s, err := scanSweet(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sweet: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// GetByID obtiene un dulce por ID; nil, nil si no existe.
func (r *SweetRepo) GetByID(ctx context.Context, id string) (*entity.Sweet, error) {
	s, err := scanSweet(r.pool.QueryRow(ctx, `SELECT `+sweetColumns+` FROM sweets WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sweet: %w", err)
	}
	return s, nil
}

// Create persiste un nuevo dulce.
func (r *SweetRepo) Create(ctx context.Context, s *entity.Sweet) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO sweets (id, name, category, price, quantity, description, image)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID, s.Name, s.Category, s.Price, s.Quantity, s.Description, s.Image,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert sweet: %w", err)
	}
	return nil
}

// Update fusiona el patch dentro de una transacción con bloqueo de fila.
func (r *SweetRepo) Update(ctx context.Context, id string, patch entity.SweetPatch) (*entity.Sweet, error) {
	return r.Mutate(ctx, id, func(s *entity.Sweet) error {
		s.Apply(patch)
		return nil
	})
}

// Delete elimina un dulce; no falla si no existe.
func (r *SweetRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM sweets WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete sweet: %w", err)
	}
	return nil
}

// Mutate: SELECT FOR UPDATE, fn sobre la copia, UPDATE y Commit; Rollback si fn falla.
func (r *SweetRepo) Mutate(ctx context.Context, id string, fn func(s *entity.Sweet) error) (*entity.Sweet, error) {
	var out *entity.Sweet
	err := inTx(ctx, r.pool, func(tx pgx.Tx) error {
		s, err := scanSweet(tx.QueryRow(ctx,
			`SELECT `+sweetColumns+` FROM sweets WHERE id = $1 FOR UPDATE`, id))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("get sweet for update: %w", err)
		}
		if err := fn(s); err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `
			UPDATE sweets SET name = $2, category = $3, price = $4, quantity = $5, description = $6, image = $7
			WHERE id = $1`,
			s.ID, s.Name, s.Category, s.Price, s.Quantity, s.Description, s.Image,
		)
		if err != nil {
			return fmt.Errorf("update sweet: %w", err)
		}
		out = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func scanSweet(row pgx.Row) (*entity.Sweet, error) {
	var s entity.Sweet
	if err := row.Scan(&s.ID, &s.Name, &s.Category, &s.Price, &s.Quantity, &s.Description, &s.Image); err != nil {
		return nil, err
	}
	return &s, nil
}
