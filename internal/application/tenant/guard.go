package tenant

import (
	"context"

	"github.com/tu-usuario/care-pro/internal/domain"
	"github.com/tu-usuario/care-pro/internal/domain/entity"
	"github.com/tu-usuario/care-pro/internal/domain/repository"
)

// Tipos de recurso verificables por el guard (mapa de entidades tenant-scoped).
const (
	ResourceUser         = "user"
	ResourceBeneficiary  = "beneficiary"
	ResourceNotification = "notification"
	ResourceRole         = "role"
	ResourceDocument     = "document"
	ResourceIntervention = "intervention"
)

// Tipos de recurso con límite de plan.
const (
	LimitUsers         = "users"
	LimitBeneficiaries = "beneficiaries"
)

// KeyLoader carga únicamente la clave de organización de un recurso, nunca el
// payload completo. Lo implementa infrastructure/postgres con una consulta por
// tabla. Devuelve domain.ErrNotFound si el recurso no existe.
type KeyLoader interface {
	OrganizationKey(ctx context.Context, resourceType, resourceID string) (string, error)
}

// Guard resuelve la organización de un principal y garantiza que toda lectura
// o escritura queda confinada a ella. Es defensa en profundidad: los listados
// ya filtran por organization_id a nivel de consulta y aun así los detalles
// re-verifican la clave aquí.
type Guard struct {
	orgs          repository.OrganizationRepository
	users         repository.UserRepository
	beneficiaries repository.BeneficiaryRepository
	keys          KeyLoader
}

// NewGuard construye el guard con los puertos de persistencia.
func NewGuard(
	orgs repository.OrganizationRepository,
	users repository.UserRepository,
	beneficiaries repository.BeneficiaryRepository,
	keys KeyLoader,
) *Guard {
	return &Guard{orgs: orgs, users: users, beneficiaries: beneficiaries, keys: keys}
}

// ResolveOrganization devuelve la organización del principal. No existe un
// tenant por defecto: un principal ausente falla con ErrUnauthenticated y uno
// sin organización persistida con ErrNoOrganization.
func (g *Guard) ResolveOrganization(u *entity.User) (string, error) {
	if u == nil {
		return "", domain.ErrUnauthenticated
	}
	if u.OrganizationID == "" {
		return "", domain.ErrNoOrganization
	}
	return u.OrganizationID, nil
}

// WithOrganizationAccess resuelve la organización, comprueba que está activa y
// solo entonces invoca op(orgID). Es el envoltorio estándar de toda acción
// mutadora: corre antes de cualquier llamada de persistencia, de modo que una
// organización ausente o suspendida aborta sin efectos secundarios. La
// operación invocada es responsable de etiquetar cada escritura con orgID.
func (g *Guard) WithOrganizationAccess(ctx context.Context, u *entity.User, op func(orgID string) error) error {
	orgID, err := g.ResolveOrganization(u)
	if err != nil {
		return err
	}
	org, err := g.orgs.GetByID(ctx, orgID)
	if err != nil {
		return err
	}
	if org == nil {
		return domain.ErrNoOrganization
	}
	if !org.IsActive() {
		return domain.ErrForbidden
	}
	return op(orgID)
}

// VerifyAccess carga solo la clave de organización del recurso y la compara
// por igualdad exacta con la suministrada. Un recurso inexistente y uno de
// otra organización fallan igual de cara al usuario final (ErrCrossTenant
// envuelve ErrNotFound); el tooling interno puede distinguirlos con errors.Is.
func (g *Guard) VerifyAccess(ctx context.Context, resourceID, resourceType, organizationID string) error {
	if resourceID == "" || organizationID == "" {
		return domain.ErrInvalidInput
	}
	key, err := g.keys.OrganizationKey(ctx, resourceType, resourceID)
	if err != nil {
		return err
	}
	if key != organizationID {
		return domain.ErrCrossTenant
	}
	return nil
}

// CheckLimits comprueba el límite de plan para la creación de un recurso.
// Debe llamarse ANTES de crear, nunca después. La lectura-comparación no va
// bajo lock: el límite es consultivo ante creación concurrente (la unicidad
// dura la garantizan las constraints de la DB).
func (g *Guard) CheckLimits(ctx context.Context, organizationID, kind string) error {
	org, err := g.orgs.GetByID(ctx, organizationID)
	if err != nil {
		return err
	}
	if org == nil {
		return domain.ErrNotFound
	}
	if !org.IsActive() {
		return domain.ErrForbidden
	}
	var count, limit int
	switch kind {
	case LimitUsers:
		limit = org.MaxUsers
		count, err = g.users.CountByOrganization(ctx, organizationID)
	case LimitBeneficiaries:
		limit = org.MaxBeneficiaries
		count, err = g.beneficiaries.CountByOrganization(ctx, organizationID)
	default:
		return domain.ErrInvalidInput
	}
	if err != nil {
		return err
	}
	if limit > 0 && count >= limit {
		return domain.ErrLimitExceeded
	}
	return nil
}
