// Package kv implementa el medio durable de entradas con nombre sobre el que se
// guardan las colecciones de la tienda (el equivalente al localStorage del navegador).
package kv

import "context"

// UpdateFunc recibe el valor actual (ok=false si la entrada no existe) y devuelve el nuevo.
// Si devuelve error no se escribe nada y Update propaga ese mismo error.
type UpdateFunc func(current string, ok bool) (string, error)

// Medium almacén de entradas string con nombre.
type Medium interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	// Update es un read-modify-write atómico de una entrada.
	Update(ctx context.Context, key string, fn UpdateFunc) error
	Close() error
}
