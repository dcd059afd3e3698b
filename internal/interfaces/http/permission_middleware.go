package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/care-pro/internal/application/dto"
	"github.com/tu-usuario/care-pro/internal/domain/entity"
)

// permissionChecker es el contrato mínimo que necesita el middleware.
// Lo implementa *access.Engine; el uso de interfaz evita acoplar la capa HTTP
// al motor concreto.
type permissionChecker interface {
	HasPermission(ctx context.Context, u *entity.User, module, action, ownerID string) bool
	CanAccessModule(ctx context.Context, u *entity.User, module string) bool
}

// RequirePermission devuelve un middleware Fiber que exige la concesión
// (module, action). Debe usarse DESPUÉS de PrincipalMiddleware. Es un filtro
// de ruta: los casos de uso re-evalúan la tabla canónica en el punto de
// efecto (y aplican OwnRecordsOnly con el registro cargado).
//
// La respuesta 403 nunca revela el motivo de la denegación.
func RequirePermission(module, action string, checker permissionChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u := GetPrincipal(c)
		if u == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "principal no cargado"})
		}
		if !checker.HasPermission(c.Context(), u, module, action, "") {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
		}
		return c.Next()
	}
}

// RequireModuleAccess exige visibilidad gruesa del módulo (cualquier acción).
// Se usa en rutas de navegación/consulta que agregan varios permisos.
func RequireModuleAccess(module string, checker permissionChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u := GetPrincipal(c)
		if u == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "principal no cargado"})
		}
		if !checker.CanAccessModule(c.Context(), u, module) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
		}
		return c.Next()
	}
}
