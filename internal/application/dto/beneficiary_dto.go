package dto

import "time"

// CreateBeneficiaryRequest entrada de acogida (intake). BeneficiaryType es
// opcional: si falta se deriva de la fecha de nacimiento en la creación.
type CreateBeneficiaryRequest struct {
	FirstName       string `json:"first_name" validate:"required,max=100"`
	LastName        string `json:"last_name" validate:"required,max=100"`
	DateOfBirth     string `json:"date_of_birth" validate:"required"` // YYYY-MM-DD
	Gender          string `json:"gender" validate:"required,oneof=Female Male"`
	Phone           string `json:"phone" validate:"omitempty,max=30"`
	Address         string `json:"address" validate:"omitempty,max=300"`
	BeneficiaryType string `json:"beneficiary_type" validate:"omitempty,oneof=MINEURE FEMME"`
}

// OrientBeneficiaryRequest entrada de orientación/asignación de un caso.
type OrientBeneficiaryRequest struct {
	AssigneeID string `json:"assignee_id" validate:"required,uuid"`
	Reason     string `json:"reason" validate:"omitempty,max=500"`
}

// UpdateBeneficiaryRequest edición genérica de campos. No permite tocar
// beneficiary_type ni status: la clasificación se deriva una sola vez y el
// estado solo lo mueven las transiciones.
type UpdateBeneficiaryRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,max=100"`
	Gender    *string `json:"gender" validate:"omitempty,oneof=Female Male"`
	Phone     *string `json:"phone" validate:"omitempty,max=30"`
	Address   *string `json:"address" validate:"omitempty,max=300"`
}

// ListBeneficiariesRequest filtros de listado.
type ListBeneficiariesRequest struct {
	PageRequest
	Status string `query:"status" validate:"omitempty"`
	Search string `query:"search" validate:"omitempty,max=100"`
}

// BeneficiaryResponse salida de un expediente.
type BeneficiaryResponse struct {
	ID                string     `json:"id"`
	OrganizationID    string     `json:"organization_id"`
	FirstName         string     `json:"first_name"`
	LastName          string     `json:"last_name"`
	DateOfBirth       time.Time  `json:"date_of_birth"`
	Gender            string     `json:"gender"`
	Phone             string     `json:"phone,omitempty"`
	Address           string     `json:"address,omitempty"`
	BeneficiaryType   string     `json:"beneficiary_type"`
	Status            string     `json:"status"`
	CreatedByID       string     `json:"created_by_id"`
	OrientedByID      *string    `json:"oriented_by_id,omitempty"`
	OrientedAt        *time.Time `json:"oriented_at,omitempty"`
	OrientationReason string     `json:"orientation_reason,omitempty"`
	AssignedToID      *string    `json:"assigned_to_id,omitempty"`
	AssignedAt        *time.Time `json:"assigned_at,omitempty"`
	IsActive          bool       `json:"is_active"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// BeneficiaryListResponse salida de listado.
type BeneficiaryListResponse struct {
	Items  []BeneficiaryResponse `json:"items"`
	Limit  int                   `json:"limit"`
	Offset int                   `json:"offset"`
}
