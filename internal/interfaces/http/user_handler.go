package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/care-pro/internal/application/dto"
	"github.com/tu-usuario/care-pro/internal/application/usecase"
	"github.com/tu-usuario/care-pro/pkg/validate"
)

// UserHandler administración de cuentas: aprobar, rechazar, suspender,
// reactivar y listar usuarios de la organización.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Approve godoc
// @Summary      Aprobar cuenta pendiente y asignarle rol
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del usuario"
// @Param        body  body  dto.ApproveUserRequest  true  "Rol a asignar"
// @Success      200   {object}  dto.UserResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users/{id}/approve [post]
func (h *UserHandler) Approve(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.ApproveUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	u, err := h.uc.Approve(c.Context(), GetPrincipal(c), id, in.Role)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toUserResponse(u))
}

// Reject godoc
// @Summary      Rechazar cuenta pendiente
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del usuario"
// @Param        body  body  dto.RejectUserRequest  true  "Motivo del rechazo"
// @Success      200   {object}  dto.UserResponse
// @Router       /api/users/{id}/reject [post]
func (h *UserHandler) Reject(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.RejectUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	u, err := h.uc.Reject(c.Context(), GetPrincipal(c), id, in.Reason)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toUserResponse(u))
}

// Suspend suspende una cuenta aprobada (solo admin).
func (h *UserHandler) Suspend(c *fiber.Ctx) error {
	u, err := h.uc.Suspend(c.Context(), GetPrincipal(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toUserResponse(u))
}

// Reactivate reactiva una cuenta suspendida (solo admin).
func (h *UserHandler) Reactivate(c *fiber.Ctx) error {
	u, err := h.uc.Reactivate(c.Context(), GetPrincipal(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toUserResponse(u))
}

// List godoc
// @Summary      Listar usuarios de la organización
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.UserResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.DefaultPage()
	users, err := h.uc.List(c.Context(), GetPrincipal(c), page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return c.JSON(out)
}

// Me devuelve el principal autenticado.
func (h *UserHandler) Me(c *fiber.Ctx) error {
	u := GetPrincipal(c)
	if u == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "principal no cargado"})
	}
	return c.JSON(toUserResponse(u))
}
