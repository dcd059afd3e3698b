package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrUserNotFound    = errors.New("usuario no encontrado")
	ErrUnauthenticated = errors.New("no autenticado")
	ErrForbidden       = errors.New("acceso denegado")
	ErrNoOrganization  = errors.New("el usuario no tiene organización asignada")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrLimitExceeded   = errors.New("límite del plan alcanzado")
	ErrConflict        = errors.New("conflicto con el estado actual")
	ErrDuplicate       = errors.New("recurso duplicado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
)

// ErrCrossTenant envuelve ErrNotFound a propósito: de cara al usuario final un
// recurso de otra organización no existe (no se filtra su existencia), pero los
// llamadores internos pueden distinguir el caso con errors.Is(err, ErrCrossTenant).
var ErrCrossTenant = fmt.Errorf("recurso de otra organización: %w", ErrNotFound)
