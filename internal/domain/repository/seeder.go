package repository

import "context"

// Seeder carga los datos iniciales una única vez por versión de semilla.
type Seeder interface {
	Initialize(ctx context.Context) error
}
