package repository

import (
	"context"

	"github.com/tu-usuario/care-pro/internal/domain/entity"
)

// RoleRepository define el puerto de persistencia para roles personalizados (DIP).
type RoleRepository interface {
	// Create persiste el rol y sus filas de permisos; debe ser atómico
	// (la implementación corre dentro de una transacción vía TxRunner).
	Create(ctx context.Context, role *entity.Role) error
	GetByID(ctx context.Context, organizationID, id string) (*entity.Role, error)
	GetByName(ctx context.Context, organizationID, name string) (*entity.Role, error)
	ListByOrganization(ctx context.Context, organizationID string) ([]*entity.Role, error)
}
