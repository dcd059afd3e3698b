package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/care-pro/internal/application/dto"
	"github.com/tu-usuario/care-pro/internal/application/usecase"
	"github.com/tu-usuario/care-pro/pkg/validate"
)

// OrganizationHandler alta de asociaciones y consulta de límites/uso.
type OrganizationHandler struct {
	uc *usecase.OrganizationUseCase
}

func NewOrganizationHandler(uc *usecase.OrganizationUseCase) *OrganizationHandler {
	return &OrganizationHandler{uc: uc}
}

// Create godoc
// @Summary      Dar de alta una organización con sus límites de plan
// @Tags         organizations
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrganizationRequest  true  "Organización"
// @Success      201   {object}  dto.OrganizationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/organizations [post]
func (h *OrganizationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrganizationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	org, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toOrganizationResponse(org))
}

// GetByID devuelve la organización (la propia, o cualquiera si admin).
func (h *OrganizationHandler) GetByID(c *fiber.Ctx) error {
	org, err := h.uc.GetByID(c.Context(), GetPrincipal(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toOrganizationResponse(org))
}

// Usage godoc
// @Summary      Uso actual frente a los límites del plan
// @Tags         organizations
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la organización"
// @Success      200  {object}  usecase.Usage
// @Router       /api/organizations/{id}/usage [get]
func (h *OrganizationHandler) Usage(c *fiber.Ctx) error {
	usage, err := h.uc.Usage(c.Context(), GetPrincipal(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(usage)
}
