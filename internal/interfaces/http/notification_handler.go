package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/care-pro/internal/application/dto"
	appnotification "github.com/tu-usuario/care-pro/internal/application/notification"
)

// NotificationHandler buzón del receptor: listado y marcado de lectura.
type NotificationHandler struct {
	uc *appnotification.UseCase
}

func NewNotificationHandler(uc *appnotification.UseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// List godoc
// @Summary      Listar notificaciones propias (más recientes primero)
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Param        unread_only  query  bool  false  "Solo no leídas"
// @Param        limit        query  int   false  "Límite"  default(20)
// @Param        offset       query  int   false  "Offset"  default(0)
// @Success      200  {array}  dto.NotificationResponse
// @Router       /api/notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	var in dto.ListNotificationsRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	in.DefaultPage()
	list, err := h.uc.List(c.Context(), GetPrincipal(c), in.UnreadOnly, in.Limit, in.Offset)
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, toNotificationResponse(n))
	}
	return c.JSON(out)
}

// MarkRead marca una notificación propia como leída. Es idempotente.
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	n, err := h.uc.MarkRead(c.Context(), GetPrincipal(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toNotificationResponse(n))
}
