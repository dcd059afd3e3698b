package entity

import "time"

// Role es un rol personalizado creado en runtime por una organización. Extiende
// el catálogo estático (no lo reemplaza para los roles integrados): un usuario
// cuyo Role no es integrado resuelve sus permisos contra las filas
// RolePermission persistidas de este rol.
type Role struct {
	ID             string
	OrganizationID string
	Name           string
	Description    string
	Permissions    []RolePermission
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// RolePermission es una fila de permiso persistida de un rol personalizado.
type RolePermission struct {
	Module         string
	Action         string
	OwnRecordsOnly bool
}
