package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/care-pro/internal/application/auth"
	appbeneficiary "github.com/tu-usuario/care-pro/internal/application/beneficiary"
	appnotification "github.com/tu-usuario/care-pro/internal/application/notification"
	"github.com/tu-usuario/care-pro/internal/application/usecase"
	"github.com/tu-usuario/care-pro/internal/domain/access"
	"github.com/tu-usuario/care-pro/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.UseCase
	UserUC         *usecase.UserUseCase
	OrganizationUC *usecase.OrganizationUseCase
	RoleUC         *usecase.RoleUseCase
	BeneficiaryUC  *appbeneficiary.UseCase
	NotificationUC *appnotification.UseCase
	Engine         *access.Engine
	Users          repository.UserRepository
	JWTSecret      string
}

// Router registra las rutas de la API.
//
// Las rutas protegidas encadenan AuthMiddleware (token) + PrincipalMiddleware
// (carga el usuario fresco) y, donde aplica, RequirePermission como filtro de
// ruta; los casos de uso repiten la comprobación en el punto de efecto.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Alta de organizaciones (público: onboarding de la plataforma)
	orgHandler := NewOrganizationHandler(deps.OrganizationUC)
	api.Post("/organizations", orgHandler.Create)

	// Rutas protegidas (Bearer + principal cargado)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), PrincipalMiddleware(deps.Users))

	// Organizations (protegido)
	orgs := protected.Group("/organizations")
	orgs.Get("/:id", orgHandler.GetByID)
	orgs.Get("/:id/usage", orgHandler.Usage)

	// Users (protegido; los casos de uso exigen admin donde toca)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/me", userHandler.Me)
	users.Get("/", RequirePermission(access.ModuleUsers, access.ActionRead, deps.Engine), userHandler.List)
	users.Post("/:id/approve", userHandler.Approve)
	users.Post("/:id/reject", userHandler.Reject)
	users.Post("/:id/suspend", userHandler.Suspend)
	users.Post("/:id/reactivate", userHandler.Reactivate)

	// Roles personalizados (protegido, solo admin vía caso de uso)
	roles := protected.Group("/roles")
	roleHandler := NewRoleHandler(deps.RoleUC)
	roles.Post("/", roleHandler.Create)
	roles.Get("/", roleHandler.List)
	roles.Get("/:id", roleHandler.GetByID)

	// Beneficiaries (protegido). Update no lleva filtro de permiso exacto en
	// la ruta: las concesiones OwnRecordsOnly necesitan el registro cargado,
	// así que la comprobación fina vive en el caso de uso.
	bens := protected.Group("/beneficiaries")
	benHandler := NewBeneficiaryHandler(deps.BeneficiaryUC)
	bens.Post("/", RequirePermission(access.ModuleBeneficiaries, access.ActionCreate, deps.Engine), benHandler.Create)
	bens.Get("/", RequirePermission(access.ModuleBeneficiaries, access.ActionRead, deps.Engine), benHandler.List)
	bens.Get("/:id", RequirePermission(access.ModuleBeneficiaries, access.ActionRead, deps.Engine), benHandler.GetByID)
	bens.Put("/:id", RequireModuleAccess(access.ModuleBeneficiaries, deps.Engine), benHandler.Update)
	bens.Delete("/:id", RequirePermission(access.ModuleBeneficiaries, access.ActionDelete, deps.Engine), benHandler.Delete)
	bens.Post("/:id/orient", RequirePermission(access.ModuleBeneficiaries, access.ActionOrient, deps.Engine), benHandler.Orient)
	bens.Post("/:id/assign", RequirePermission(access.ModuleBeneficiaries, access.ActionAssign, deps.Engine), benHandler.Assign)

	// Notifications (protegido; siempre restringido al receptor)
	notifs := protected.Group("/notifications")
	notifHandler := NewNotificationHandler(deps.NotificationUC)
	notifs.Get("/", notifHandler.List)
	notifs.Post("/:id/read", notifHandler.MarkRead)
}
