package beneficiary

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/care-pro/internal/application/dto"
	"github.com/tu-usuario/care-pro/internal/application/notification"
	"github.com/tu-usuario/care-pro/internal/application/tenant"
	"github.com/tu-usuario/care-pro/internal/domain"
	"github.com/tu-usuario/care-pro/internal/domain/access"
	"github.com/tu-usuario/care-pro/internal/domain/entity"
	"github.com/tu-usuario/care-pro/internal/domain/repository"
	"github.com/tu-usuario/care-pro/pkg/logger"
	"github.com/tu-usuario/care-pro/pkg/textutil"
)

// UseCase implementa el ciclo de vida del expediente: acogida, orientación,
// asignación, edición y baja. Toda operación pasa primero por el motor de
// permisos, luego por el guard de organización y solo entonces ejecuta la
// transición; las notificaciones se despachan después de confirmar la
// escritura principal y su fallo nunca la revierte.
type UseCase struct {
	engine     *access.Engine
	guard      *tenant.Guard
	repo       repository.BeneficiaryRepository
	users      repository.UserRepository
	dispatcher *notification.Dispatcher
	log        *logger.Logger
	now        func() time.Time
}

// NewUseCase construye el caso de uso del ciclo de vida.
func NewUseCase(
	engine *access.Engine,
	guard *tenant.Guard,
	repo repository.BeneficiaryRepository,
	users repository.UserRepository,
	dispatcher *notification.Dispatcher,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		engine:     engine,
		guard:      guard,
		repo:       repo,
		users:      users,
		dispatcher: dispatcher,
		log:        log,
		now:        time.Now,
	}
}

func isAdmin(u *entity.User) bool {
	return u != nil && (u.IsAdmin || u.Role == entity.RoleAdmin)
}

// Create ejecuta la acogida. El estado inicial se decide de forma
// determinista por el rol de quien registra, nunca por la edad ni otra
// heurística: acogida (RECEPTIONNISTE) => PENDING_ORIENTATION con fan-out a
// dirección; cualquier otro rol habilitado => PENDING_INTAKE sin
// notificaciones. BeneficiaryType se deriva aquí, una única vez, si no viene
// declarado (edad < 18 => MINEURE).
func (uc *UseCase) Create(ctx context.Context, u *entity.User, in dto.CreateBeneficiaryRequest) (*entity.Beneficiary, error) {
	if !uc.engine.HasPermission(ctx, u, access.ModuleBeneficiaries, access.ActionCreate, "") {
		return nil, domain.ErrForbidden
	}

	dob, err := time.Parse("2006-01-02", in.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("campo 'date_of_birth' inválido (formato YYYY-MM-DD): %w", domain.ErrInvalidInput)
	}
	now := uc.now()
	if dob.After(now) {
		return nil, fmt.Errorf("campo 'date_of_birth' en el futuro: %w", domain.ErrInvalidInput)
	}
	btype := in.BeneficiaryType
	if btype == "" {
		btype = entity.ClassifyBeneficiary(dob, now)
	} else if !entity.ValidBeneficiaryType(btype) {
		return nil, fmt.Errorf("campo 'beneficiary_type' inválido: %w", domain.ErrInvalidInput)
	}

	var b *entity.Beneficiary
	err = uc.guard.WithOrganizationAccess(ctx, u, func(orgID string) error {
		if err := uc.guard.CheckLimits(ctx, orgID, tenant.LimitBeneficiaries); err != nil {
			return err
		}

		status := entity.BeneficiaryPendingIntake
		if u.Role == entity.RoleReceptionniste && !isAdmin(u) {
			status = entity.BeneficiaryPendingOrientation
		}

		b = &entity.Beneficiary{
			ID:              uuid.New().String(),
			OrganizationID:  orgID,
			FirstName:       in.FirstName,
			LastName:        in.LastName,
			DateOfBirth:     dob,
			Gender:          in.Gender,
			Phone:           in.Phone,
			Address:         in.Address,
			BeneficiaryType: btype,
			Status:          status,
			CreatedByID:     u.ID,
			IsActive:        true,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		return uc.repo.Create(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	// La escritura principal ya está confirmada: el fan-out a dirección es
	// best-effort y no puede deshacerla.
	if b.Status == entity.BeneficiaryPendingOrientation {
		leads, err := uc.users.ListByRoles(ctx, b.OrganizationID, []string{entity.RoleDirecteur, entity.RoleCoordinatrice})
		if err != nil {
			uc.log.Error().Err(err).Str("beneficiary_id", b.ID).Msg("carga de dirección para fan-out falló; se ignora")
			return b, nil
		}
		uc.dispatcher.Dispatch(ctx, u, leads, notification.Message{
			Type:          entity.NotificationArrival,
			Title:         "Nouvelle arrivée",
			Body:          fmt.Sprintf("%s %s espera orientación", b.FirstName, b.LastName),
			BeneficiaryID: &b.ID,
			Metadata:      map[string]string{"beneficiary_type": b.BeneficiaryType},
		})
	}
	return b, nil
}

// Orient rutea el caso a una trabajadora social con motivo registrado. Estado
// resultante: ORIENTED. Los metadatos de ruteo se sobrescriben completos en
// cada llamada (last write wins); llamadas concurrentes no se serializan.
func (uc *UseCase) Orient(ctx context.Context, u *entity.User, beneficiaryID string, in dto.OrientBeneficiaryRequest) (*entity.Beneficiary, error) {
	return uc.route(ctx, u, beneficiaryID, in, access.ActionOrient)
}

// Assign es la asignación directa por dirección, sin pasar por el flujo de
// orientación: misma validación de destinataria, estado IN_FOLLOWUP.
func (uc *UseCase) Assign(ctx context.Context, u *entity.User, beneficiaryID string, in dto.OrientBeneficiaryRequest) (*entity.Beneficiary, error) {
	return uc.route(ctx, u, beneficiaryID, in, access.ActionAssign)
}

// route implementa las dos variantes de ruteo. action distingue la concesión
// requerida (orient/assign son dos entradas de UI al mismo efecto) y el estado
// resultante.
func (uc *UseCase) route(ctx context.Context, u *entity.User, beneficiaryID string, in dto.OrientBeneficiaryRequest, action string) (*entity.Beneficiary, error) {
	if !isAdmin(u) && !entity.IsLeadRole(u.Role) {
		return nil, domain.ErrForbidden
	}
	if !uc.engine.HasPermission(ctx, u, access.ModuleBeneficiaries, action, "") {
		return nil, domain.ErrForbidden
	}
	if beneficiaryID == "" || in.AssigneeID == "" {
		return nil, fmt.Errorf("campo 'assignee_id' requerido: %w", domain.ErrInvalidInput)
	}

	var b *entity.Beneficiary
	err := uc.guard.WithOrganizationAccess(ctx, u, func(orgID string) error {
		if err := uc.guard.VerifyAccess(ctx, beneficiaryID, tenant.ResourceBeneficiary, orgID); err != nil {
			return err
		}
		var err error
		b, err = uc.repo.GetByID(ctx, orgID, beneficiaryID)
		if err != nil {
			return err
		}
		if b == nil {
			return domain.ErrNotFound
		}
		if b.Status == entity.BeneficiaryInactive || !b.IsActive {
			return fmt.Errorf("expediente inactivo: %w", domain.ErrConflict)
		}

		assignee, err := uc.users.GetByID(ctx, in.AssigneeID)
		if err != nil {
			return err
		}
		// La destinataria debe existir, pertenecer a la misma organización,
		// tener rol de trabajadora social, estar activa y aprobada. Todo lo
		// demás es error de cliente, no reintentable.
		if assignee == nil || assignee.OrganizationID != orgID || !assignee.CanActAsCaseworker() {
			return fmt.Errorf("campo 'assignee_id' no es una trabajadora social válida de la organización: %w", domain.ErrInvalidInput)
		}

		now := uc.now()
		orienter := u.ID
		b.OrientedByID = &orienter
		b.OrientedAt = &now
		b.OrientationReason = in.Reason
		b.AssignedToID = &assignee.ID
		b.AssignedAt = &now
		if action == access.ActionAssign {
			b.Status = entity.BeneficiaryInFollowup
		} else {
			b.Status = entity.BeneficiaryOriented
		}
		b.UpdatedAt = now
		if err := uc.repo.Update(ctx, b); err != nil {
			return err
		}

		ntype := entity.NotificationOrientation
		title := "Cas orienté"
		if action == access.ActionAssign {
			ntype = entity.NotificationAssignment
			title = "Cas affecté"
		}
		uc.dispatcher.Dispatch(ctx, u, []*entity.User{assignee}, notification.Message{
			Type:          ntype,
			Title:         title,
			Body:          fmt.Sprintf("%s %s queda a su cargo", b.FirstName, b.LastName),
			BeneficiaryID: &b.ID,
			Metadata:      map[string]string{"reason": in.Reason},
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Update edita campos genéricos. La puerta de propiedad es más gruesa que el
// OwnRecordsOnly del motor: solo el creador del expediente o un admin pueden
// editar. Nunca re-deriva beneficiary_type ni toca status.
func (uc *UseCase) Update(ctx context.Context, u *entity.User, beneficiaryID string, in dto.UpdateBeneficiaryRequest) (*entity.Beneficiary, error) {
	var b *entity.Beneficiary
	err := uc.guard.WithOrganizationAccess(ctx, u, func(orgID string) error {
		if err := uc.guard.VerifyAccess(ctx, beneficiaryID, tenant.ResourceBeneficiary, orgID); err != nil {
			return err
		}
		var err error
		b, err = uc.repo.GetByID(ctx, orgID, beneficiaryID)
		if err != nil {
			return err
		}
		if b == nil {
			return domain.ErrNotFound
		}
		if !uc.engine.HasPermission(ctx, u, access.ModuleBeneficiaries, access.ActionUpdate, b.CreatedByID) {
			return domain.ErrForbidden
		}
		if b.CreatedByID != u.ID && !isAdmin(u) {
			return domain.ErrForbidden
		}
		if in.FirstName != nil {
			b.FirstName = *in.FirstName
		}
		if in.LastName != nil {
			b.LastName = *in.LastName
		}
		if in.Gender != nil {
			b.Gender = *in.Gender
		}
		if in.Phone != nil {
			b.Phone = *in.Phone
		}
		if in.Address != nil {
			b.Address = *in.Address
		}
		b.UpdatedAt = uc.now()
		return uc.repo.Update(ctx, b)
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Delete es la baja lógica, solo admin: is_active=false, status intacto.
// Las lecturas posteriores filtran is_active=true por defecto.
func (uc *UseCase) Delete(ctx context.Context, u *entity.User, beneficiaryID string) error {
	if !isAdmin(u) {
		return domain.ErrForbidden
	}
	return uc.guard.WithOrganizationAccess(ctx, u, func(orgID string) error {
		if err := uc.guard.VerifyAccess(ctx, beneficiaryID, tenant.ResourceBeneficiary, orgID); err != nil {
			return err
		}
		return uc.repo.SoftDelete(ctx, orgID, beneficiaryID)
	})
}

// HardDelete elimina físicamente el expediente. Irreversible, solo admin;
// convive con la baja lógica para cumplimiento de protección de datos.
func (uc *UseCase) HardDelete(ctx context.Context, u *entity.User, beneficiaryID string) error {
	if !isAdmin(u) {
		return domain.ErrForbidden
	}
	return uc.guard.WithOrganizationAccess(ctx, u, func(orgID string) error {
		if err := uc.guard.VerifyAccess(ctx, beneficiaryID, tenant.ResourceBeneficiary, orgID); err != nil {
			return err
		}
		return uc.repo.HardDelete(ctx, orgID, beneficiaryID)
	})
}

// GetByID devuelve el expediente re-verificando la clave de organización
// aunque la consulta ya filtre por ella (defensa en profundidad).
func (uc *UseCase) GetByID(ctx context.Context, u *entity.User, beneficiaryID string) (*entity.Beneficiary, error) {
	if !uc.engine.HasPermission(ctx, u, access.ModuleBeneficiaries, access.ActionRead, "") {
		return nil, domain.ErrForbidden
	}
	orgID, err := uc.guard.ResolveOrganization(u)
	if err != nil {
		return nil, err
	}
	if err := uc.guard.VerifyAccess(ctx, beneficiaryID, tenant.ResourceBeneficiary, orgID); err != nil {
		return nil, err
	}
	b, err := uc.repo.GetByID(ctx, orgID, beneficiaryID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	return b, nil
}

// List devuelve los expedientes activos de la organización. La búsqueda por
// nombre es insensible a acentos: se normaliza aquí y se compara contra la
// columna search_name.
func (uc *UseCase) List(ctx context.Context, u *entity.User, in dto.ListBeneficiariesRequest) ([]*entity.Beneficiary, error) {
	if !uc.engine.HasPermission(ctx, u, access.ModuleBeneficiaries, access.ActionRead, "") {
		return nil, domain.ErrForbidden
	}
	orgID, err := uc.guard.ResolveOrganization(u)
	if err != nil {
		return nil, err
	}
	if in.Status != "" && !entity.ValidBeneficiaryStatus(in.Status) {
		return nil, fmt.Errorf("campo 'status' inválido: %w", domain.ErrInvalidInput)
	}
	in.DefaultPage()
	return uc.repo.ListByOrganization(ctx, orgID, repository.BeneficiaryFilter{
		Status: in.Status,
		Search: textutil.Fold(in.Search),
		Limit:  in.Limit,
		Offset: in.Offset,
	})
}
