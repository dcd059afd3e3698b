package http

import (
	"github.com/gofiber/fiber/v2"
	appbeneficiary "github.com/tu-usuario/care-pro/internal/application/beneficiary"
	"github.com/tu-usuario/care-pro/internal/application/dto"
	"github.com/tu-usuario/care-pro/pkg/validate"
)

// BeneficiaryHandler maneja las peticiones HTTP del ciclo de vida del
// expediente (protegido: AuthMiddleware + PrincipalMiddleware).
type BeneficiaryHandler struct {
	uc *appbeneficiary.UseCase
}

// NewBeneficiaryHandler construye el handler.
func NewBeneficiaryHandler(uc *appbeneficiary.UseCase) *BeneficiaryHandler {
	return &BeneficiaryHandler{uc: uc}
}

// Create godoc
// @Summary      Acogida: crear expediente de beneficiaria
// @Tags         beneficiaries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBeneficiaryRequest  true  "Datos de acogida"
// @Success      201   {object}  dto.BeneficiaryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/beneficiaries [post]
func (h *BeneficiaryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBeneficiaryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	b, err := h.uc.Create(c.Context(), GetPrincipal(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toBeneficiaryResponse(b))
}

// Orient godoc
// @Summary      Orientar caso a una trabajadora social
// @Tags         beneficiaries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del expediente"
// @Param        body  body  dto.OrientBeneficiaryRequest  true  "Destinataria y motivo"
// @Success      200   {object}  dto.BeneficiaryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/beneficiaries/{id}/orient [post]
func (h *BeneficiaryHandler) Orient(c *fiber.Ctx) error {
	return h.routeCase(c, false)
}

// Assign godoc
// @Summary      Asignación directa por dirección
// @Tags         beneficiaries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del expediente"
// @Param        body  body  dto.OrientBeneficiaryRequest  true  "Destinataria y motivo"
// @Success      200   {object}  dto.BeneficiaryResponse
// @Router       /api/beneficiaries/{id}/assign [post]
func (h *BeneficiaryHandler) Assign(c *fiber.Ctx) error {
	return h.routeCase(c, true)
}

func (h *BeneficiaryHandler) routeCase(c *fiber.Ctx, direct bool) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.OrientBeneficiaryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	if direct {
		out, err := h.uc.Assign(c.Context(), GetPrincipal(c), id, in)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(toBeneficiaryResponse(out))
	}
	out, err := h.uc.Orient(c.Context(), GetPrincipal(c), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toBeneficiaryResponse(out))
}

// GetByID devuelve un expediente.
func (h *BeneficiaryHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	b, err := h.uc.GetByID(c.Context(), GetPrincipal(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toBeneficiaryResponse(b))
}

// List godoc
// @Summary      Listar expedientes activos de la organización
// @Tags         beneficiaries
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Filtro de estado"
// @Param        search  query  string  false  "Búsqueda por nombre (insensible a acentos)"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.BeneficiaryListResponse
// @Router       /api/beneficiaries [get]
func (h *BeneficiaryHandler) List(c *fiber.Ctx) error {
	var in dto.ListBeneficiariesRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	in.DefaultPage()
	list, err := h.uc.List(c.Context(), GetPrincipal(c), in)
	if err != nil {
		return writeError(c, err)
	}
	items := make([]dto.BeneficiaryResponse, 0, len(list))
	for _, b := range list {
		items = append(items, toBeneficiaryResponse(b))
	}
	return c.JSON(dto.BeneficiaryListResponse{Items: items, Limit: in.Limit, Offset: in.Offset})
}

// Update edición genérica de campos (creador o admin).
func (h *BeneficiaryHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateBeneficiaryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	b, err := h.uc.Update(c.Context(), GetPrincipal(c), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toBeneficiaryResponse(b))
}

// Delete baja lógica (solo admin).
func (h *BeneficiaryHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(c.Context(), GetPrincipal(c), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
