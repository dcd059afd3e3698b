package repository

import (
	"context"

	"github.com/tu-usuario/care-pro/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// La implementación vive en infrastructure.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	ListByOrganization(ctx context.Context, organizationID string, limit, offset int) ([]*entity.User, error)
	// ListByRoles devuelve los usuarios activos y aprobados de la organización
	// cuyo rol está en roles (fan-out de notificaciones a dirección).
	ListByRoles(ctx context.Context, organizationID string, roles []string) ([]*entity.User, error)
	CountByOrganization(ctx context.Context, organizationID string) (int, error)
}
