package dto

import "time"

// GrantInput una concesión {módulo, acción} de un rol personalizado.
type GrantInput struct {
	Module         string `json:"module" validate:"required"`
	Action         string `json:"action" validate:"required"`
	OwnRecordsOnly bool   `json:"own_records_only"`
}

// CreateRoleRequest alta de un rol personalizado de la organización.
type CreateRoleRequest struct {
	Name        string       `json:"name" validate:"required,max=100"`
	Description string       `json:"description" validate:"omitempty,max=500"`
	Grants      []GrantInput `json:"grants" validate:"required,min=1,dive"`
}

// RoleResponse salida de un rol personalizado.
type RoleResponse struct {
	ID             string       `json:"id"`
	OrganizationID string       `json:"organization_id"`
	Name           string       `json:"name"`
	Description    string       `json:"description,omitempty"`
	Grants         []GrantInput `json:"grants"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}
