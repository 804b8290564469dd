package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrUserNotFound    = errors.New("usuario no encontrado")
	ErrUnauthenticated = errors.New("no autenticado")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrDuplicate       = errors.New("recurso duplicado")
	ErrConflict        = errors.New("conflicto con el estado actual")

	// Invariantes del catálogo.
	ErrCategoryWithItems    = errors.New("no se puede eliminar una categoría con artículos asociados")
	ErrCategoryWithChildren = errors.New("no se puede eliminar una categoría con subcategorías")
	ErrCategoryCycle        = errors.New("la categoría no puede ser ancestro de sí misma")

	// Invariantes de configuración y membresías.
	ErrSettingsExist      = errors.New("ya existen ajustes para esta organización")
	ErrMembershipNotFound = errors.New("el usuario no pertenece a la organización")
)
