package repository

import (
	"context"

	"github.com/tu-usuario/care-pro/internal/domain/entity"
)

// BeneficiaryFilter filtros de listado. Search se compara contra la forma
// normalizada del nombre (ver pkg/textutil). IncludeInactive solo lo usa el
// tooling de administración: por defecto todo listado filtra is_active=true.
type BeneficiaryFilter struct {
	Status          string
	Search          string
	IncludeInactive bool
	Limit           int
	Offset          int
}

// BeneficiaryRepository define el puerto de persistencia para Beneficiary (DIP).
type BeneficiaryRepository interface {
	Create(ctx context.Context, b *entity.Beneficiary) error
	// GetByID devuelve nil sin error si no existe o está inactivo
	// (el soft delete es invisible para las lecturas normales).
	GetByID(ctx context.Context, organizationID, id string) (*entity.Beneficiary, error)
	Update(ctx context.Context, b *entity.Beneficiary) error
	ListByOrganization(ctx context.Context, organizationID string, f BeneficiaryFilter) ([]*entity.Beneficiary, error)
	CountByOrganization(ctx context.Context, organizationID string) (int, error)
	// SoftDelete marca is_active=false sin tocar status.
	SoftDelete(ctx context.Context, organizationID, id string) error
	// HardDelete elimina físicamente el expediente (solo tooling admin).
	HardDelete(ctx context.Context, organizationID, id string) error
}
