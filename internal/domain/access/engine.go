package access

import (
	"context"

	"github.com/tu-usuario/care-pro/internal/domain/entity"
)

// GrantSource resuelve las concesiones de un rol personalizado (persistidas en
// la DB). Lo implementa el repositorio de roles; la interfaz evita que el motor
// dependa de infraestructura.
type GrantSource interface {
	GrantsForRole(ctx context.Context, organizationID, roleID string) ([]Grant, error)
}

// Engine evalúa si un principal puede ejecutar una acción sobre un módulo.
// Es el único punto de decisión de autorización del sistema; los middlewares
// HTTP y las pistas de UI son filtros previos, nunca la puerta final.
type Engine struct {
	catalog *Catalog
	custom  GrantSource
}

// NewEngine construye el motor con la tabla canónica y la fuente de roles
// personalizados (puede ser nil si la instalación no los usa).
func NewEngine(catalog *Catalog, custom GrantSource) *Engine {
	return &Engine{catalog: catalog, custom: custom}
}

// HasPermission decide si el usuario puede ejecutar (module, action).
// ownerID es opcional: identifica al creador del registro concreto cuando la
// operación es a nivel de registro, para aplicar OwnRecordsOnly.
//
// Orden de evaluación (cerrado en caso de duda):
//  1. cuenta no aprobada y sin override admin -> denegar
//  2. rol centinela EN_ATTENTE sin override admin -> denegar
//  3. override admin o rol ADMIN -> permitir (super-concesión)
//  4. concesión exacta (module, action) en el catálogo o en el rol
//     personalizado; sin coincidencia -> denegar
//  5. OwnRecordsOnly con ownerID distinto del usuario -> denegar
func (e *Engine) HasPermission(ctx context.Context, u *entity.User, module, action, ownerID string) bool {
	if u == nil {
		return false
	}
	if u.Status != entity.UserStatusApproved && !u.IsAdmin {
		return false
	}
	if u.Role == entity.RolePending && !u.IsAdmin {
		return false
	}
	if u.IsAdmin || u.Role == entity.RoleAdmin {
		return true
	}
	if !ValidModule(module) || !ValidAction(action) {
		return false
	}
	for _, g := range e.grantsFor(ctx, u) {
		if g.Module != module || g.Action != action {
			continue
		}
		if g.OwnRecordsOnly && ownerID != "" && ownerID != u.ID {
			return false
		}
		return true
	}
	return false
}

// CanAccessModule decide visibilidad gruesa de módulo (navegación): el rol
// tiene al menos una concesión sobre el módulo, sin importar la acción.
func (e *Engine) CanAccessModule(ctx context.Context, u *entity.User, module string) bool {
	if u == nil {
		return false
	}
	if u.Status != entity.UserStatusApproved && !u.IsAdmin {
		return false
	}
	if u.Role == entity.RolePending && !u.IsAdmin {
		return false
	}
	if u.IsAdmin || u.Role == entity.RoleAdmin {
		return true
	}
	if !ValidModule(module) {
		return false
	}
	for _, g := range e.grantsFor(ctx, u) {
		if g.Module == module {
			return true
		}
	}
	return false
}

// grantsFor resuelve la lista de concesiones del rol del usuario: catálogo
// estático para roles integrados, filas persistidas para personalizados.
// Cualquier fallo de resolución produce lista vacía (denegar).
func (e *Engine) grantsFor(ctx context.Context, u *entity.User) []Grant {
	if entity.IsBuiltinRole(u.Role) {
		g, ok := e.catalog.Grants(u.Role)
		if !ok {
			return nil
		}
		return g
	}
	if e.custom == nil {
		return nil
	}
	g, err := e.custom.GrantsForRole(ctx, u.OrganizationID, u.Role)
	if err != nil {
		return nil
	}
	return g
}
