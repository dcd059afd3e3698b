package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/care-pro/internal/application/dto"
	"github.com/tu-usuario/care-pro/internal/application/tenant"
	"github.com/tu-usuario/care-pro/internal/domain"
	"github.com/tu-usuario/care-pro/internal/domain/access"
	"github.com/tu-usuario/care-pro/internal/domain/entity"
	"github.com/tu-usuario/care-pro/internal/domain/repository"
)

// RoleTxRunner ejecuta el callback con un repositorio de roles atado a una
// transacción (rol + filas de permisos se insertan atómicamente).
type RoleTxRunner interface {
	Run(ctx context.Context, fn func(roles repository.RoleRepository) error) error
}

// RoleUseCase administración de roles personalizados. Extienden el catálogo
// estático para cuentas de la organización; los roles integrados nunca se
// redefinen.
type RoleUseCase struct {
	guard *tenant.Guard
	roles repository.RoleRepository
	tx    RoleTxRunner
}

// NewRoleUseCase construye el caso de uso de roles.
func NewRoleUseCase(guard *tenant.Guard, roles repository.RoleRepository, tx RoleTxRunner) *RoleUseCase {
	return &RoleUseCase{guard: guard, roles: roles, tx: tx}
}

// Create crea un rol personalizado con sus concesiones. Solo admin. La
// colisión de nombre (con un rol integrado o con otro personalizado de la
// organización) es ErrConflict; módulos y acciones se validan contra los
// conjuntos cerrados.
func (uc *RoleUseCase) Create(ctx context.Context, actor *entity.User, in dto.CreateRoleRequest) (*entity.Role, error) {
	if !adminOverride(actor) {
		return nil, domain.ErrForbidden
	}
	if entity.IsBuiltinRole(in.Name) {
		return nil, fmt.Errorf("el nombre colisiona con un rol integrado: %w", domain.ErrConflict)
	}
	perms := make([]entity.RolePermission, 0, len(in.Grants))
	for _, g := range in.Grants {
		if !access.ValidModule(g.Module) {
			return nil, fmt.Errorf("campo 'module' inválido (%s): %w", g.Module, domain.ErrInvalidInput)
		}
		if !access.ValidAction(g.Action) {
			return nil, fmt.Errorf("campo 'action' inválido (%s): %w", g.Action, domain.ErrInvalidInput)
		}
		perms = append(perms, entity.RolePermission{
			Module:         g.Module,
			Action:         g.Action,
			OwnRecordsOnly: g.OwnRecordsOnly,
		})
	}

	var role *entity.Role
	err := uc.guard.WithOrganizationAccess(ctx, actor, func(orgID string) error {
		existing, err := uc.roles.GetByName(ctx, orgID, in.Name)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("ya existe un rol '%s' en la organización: %w", in.Name, domain.ErrConflict)
		}
		now := time.Now()
		role = &entity.Role{
			ID:             uuid.New().String(),
			OrganizationID: orgID,
			Name:           in.Name,
			Description:    in.Description,
			Permissions:    perms,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		return uc.tx.Run(ctx, func(roles repository.RoleRepository) error {
			return roles.Create(ctx, role)
		})
	})
	if err != nil {
		return nil, err
	}
	return role, nil
}

// GetByID devuelve un rol personalizado de la organización del actor.
func (uc *RoleUseCase) GetByID(ctx context.Context, actor *entity.User, id string) (*entity.Role, error) {
	orgID, err := uc.guard.ResolveOrganization(actor)
	if err != nil {
		return nil, err
	}
	if err := uc.guard.VerifyAccess(ctx, id, tenant.ResourceRole, orgID); err != nil {
		return nil, err
	}
	role, err := uc.roles.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrNotFound
	}
	return role, nil
}

// List lista los roles personalizados de la organización del actor.
func (uc *RoleUseCase) List(ctx context.Context, actor *entity.User) ([]*entity.Role, error) {
	if !adminOverride(actor) {
		return nil, domain.ErrForbidden
	}
	orgID, err := uc.guard.ResolveOrganization(actor)
	if err != nil {
		return nil, err
	}
	return uc.roles.ListByOrganization(ctx, orgID)
}
