package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/care-pro/internal/application/tenant"
	"github.com/tu-usuario/care-pro/internal/domain"
	"github.com/tu-usuario/care-pro/internal/domain/access"
	"github.com/tu-usuario/care-pro/internal/domain/entity"
	"github.com/tu-usuario/care-pro/internal/domain/repository"
)

// UserUseCase administración de cuentas: aprobación, rechazo, suspensión y
// reactivación. Las cuentas nacen pendientes (ver auth.Register) y solo aquí
// adquieren rol.
type UserUseCase struct {
	engine *access.Engine
	guard  *tenant.Guard
	users  repository.UserRepository
	roles  repository.RoleRepository
	now    func() time.Time
}

// NewUserUseCase construye el caso de uso con los puertos de persistencia.
func NewUserUseCase(engine *access.Engine, guard *tenant.Guard, users repository.UserRepository, roles repository.RoleRepository) *UserUseCase {
	return &UserUseCase{engine: engine, guard: guard, users: users, roles: roles, now: time.Now}
}

func adminOverride(u *entity.User) bool {
	return u != nil && (u.IsAdmin || u.Role == entity.RoleAdmin)
}

// loadSameOrg carga un usuario objetivo y verifica que pertenece a la
// organización del actor; ausencia y otra organización responden igual.
func (uc *UserUseCase) loadSameOrg(ctx context.Context, orgID, targetID string) (*entity.User, error) {
	if err := uc.guard.VerifyAccess(ctx, targetID, tenant.ResourceUser, orgID); err != nil {
		return nil, err
	}
	target, err := uc.users.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, domain.ErrNotFound
	}
	return target, nil
}

// Approve aprueba una cuenta pendiente y le fija rol. El rol debe ser
// integrado (nunca ADMIN ni el centinela) o un rol personalizado existente de
// la organización.
func (uc *UserUseCase) Approve(ctx context.Context, actor *entity.User, targetID string, role string) (*entity.User, error) {
	if !adminOverride(actor) && !uc.engine.HasPermission(ctx, actor, access.ModuleUsers, access.ActionUpdate, "") {
		return nil, domain.ErrForbidden
	}
	var target *entity.User
	err := uc.guard.WithOrganizationAccess(ctx, actor, func(orgID string) error {
		var err error
		target, err = uc.loadSameOrg(ctx, orgID, targetID)
		if err != nil {
			return err
		}
		if target.Status != entity.UserStatusPendingApproval {
			return fmt.Errorf("la cuenta no está pendiente de aprobación: %w", domain.ErrConflict)
		}
		if err := uc.validateRole(ctx, orgID, actor, role); err != nil {
			return err
		}
		now := uc.now()
		target.Role = role
		target.Status = entity.UserStatusApproved
		target.ApprovedByID = &actor.ID
		target.ApprovedAt = &now
		target.UpdatedAt = now
		return uc.users.Update(ctx, target)
	})
	if err != nil {
		return nil, err
	}
	return target, nil
}

// Reject rechaza una cuenta pendiente con motivo.
func (uc *UserUseCase) Reject(ctx context.Context, actor *entity.User, targetID, reason string) (*entity.User, error) {
	if !adminOverride(actor) && !uc.engine.HasPermission(ctx, actor, access.ModuleUsers, access.ActionUpdate, "") {
		return nil, domain.ErrForbidden
	}
	if reason == "" {
		return nil, fmt.Errorf("campo 'reason' requerido: %w", domain.ErrInvalidInput)
	}
	var target *entity.User
	err := uc.guard.WithOrganizationAccess(ctx, actor, func(orgID string) error {
		var err error
		target, err = uc.loadSameOrg(ctx, orgID, targetID)
		if err != nil {
			return err
		}
		if target.Status != entity.UserStatusPendingApproval {
			return fmt.Errorf("la cuenta no está pendiente de aprobación: %w", domain.ErrConflict)
		}
		now := uc.now()
		target.Status = entity.UserStatusRejected
		target.RejectedReason = reason
		target.ApprovedByID = &actor.ID
		target.ApprovedAt = &now
		target.UpdatedAt = now
		return uc.users.Update(ctx, target)
	})
	if err != nil {
		return nil, err
	}
	return target, nil
}

// Suspend suspende una cuenta aprobada. Solo admin, y nunca sobre sí mismo.
func (uc *UserUseCase) Suspend(ctx context.Context, actor *entity.User, targetID string) (*entity.User, error) {
	return uc.setSuspended(ctx, actor, targetID, true)
}

// Reactivate reactiva una cuenta suspendida. Solo admin, y nunca sobre sí mismo.
func (uc *UserUseCase) Reactivate(ctx context.Context, actor *entity.User, targetID string) (*entity.User, error) {
	return uc.setSuspended(ctx, actor, targetID, false)
}

func (uc *UserUseCase) setSuspended(ctx context.Context, actor *entity.User, targetID string, suspend bool) (*entity.User, error) {
	if !adminOverride(actor) {
		return nil, domain.ErrForbidden
	}
	if actor.ID == targetID {
		return nil, domain.ErrForbidden
	}
	var target *entity.User
	err := uc.guard.WithOrganizationAccess(ctx, actor, func(orgID string) error {
		var err error
		target, err = uc.loadSameOrg(ctx, orgID, targetID)
		if err != nil {
			return err
		}
		now := uc.now()
		if suspend {
			if target.Status != entity.UserStatusApproved {
				return fmt.Errorf("solo se suspenden cuentas aprobadas: %w", domain.ErrConflict)
			}
			target.Status = entity.UserStatusSuspended
		} else {
			if target.Status != entity.UserStatusSuspended {
				return fmt.Errorf("la cuenta no está suspendida: %w", domain.ErrConflict)
			}
			target.Status = entity.UserStatusApproved
		}
		target.UpdatedAt = now
		return uc.users.Update(ctx, target)
	})
	if err != nil {
		return nil, err
	}
	return target, nil
}

// List lista los usuarios de la organización del actor con paginación.
func (uc *UserUseCase) List(ctx context.Context, actor *entity.User, limit, offset int) ([]*entity.User, error) {
	if !uc.engine.HasPermission(ctx, actor, access.ModuleUsers, access.ActionRead, "") {
		return nil, domain.ErrForbidden
	}
	orgID, err := uc.guard.ResolveOrganization(actor)
	if err != nil {
		return nil, err
	}
	return uc.users.ListByOrganization(ctx, orgID, limit, offset)
}

// validateRole acepta roles integrados asignables o un rol personalizado
// existente de la organización. Conjunto cerrado: lo desconocido no valida.
func (uc *UserUseCase) validateRole(ctx context.Context, orgID string, actor *entity.User, role string) error {
	switch {
	case role == entity.RolePending:
		return fmt.Errorf("campo 'role' no puede ser el centinela: %w", domain.ErrInvalidInput)
	case role == entity.RoleAdmin:
		// Solo un admin puede promover a admin.
		if !adminOverride(actor) {
			return domain.ErrForbidden
		}
		return nil
	case entity.IsBuiltinRole(role):
		return nil
	}
	custom, err := uc.roles.GetByID(ctx, orgID, role)
	if err != nil {
		return err
	}
	if custom == nil {
		return fmt.Errorf("campo 'role' desconocido: %w", domain.ErrInvalidInput)
	}
	return nil
}
