package dto

import "time"

// CreateOrganizationRequest alta de una asociación con sus límites de plan.
type CreateOrganizationRequest struct {
	Name             string `json:"name" validate:"required,max=200"`
	MaxUsers         int    `json:"max_users" validate:"omitempty,min=0"`
	MaxBeneficiaries int    `json:"max_beneficiaries" validate:"omitempty,min=0"`
	MaxStorageGB     string `json:"max_storage_gb" validate:"omitempty"` // decimal, ej. "2.5"
}

// OrganizationResponse salida de una organización.
type OrganizationResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Status           string    `json:"status"`
	MaxUsers         int       `json:"max_users"`
	MaxBeneficiaries int       `json:"max_beneficiaries"`
	MaxStorageGB     string    `json:"max_storage_gb"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
