package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrDuplicateUsername  = errors.New("el nombre de usuario ya existe")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrStoreCorrupt       = errors.New("datos almacenados corruptos")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)
