package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/care-pro/internal/application/dto"
	"github.com/tu-usuario/care-pro/internal/domain"
	"github.com/tu-usuario/care-pro/internal/domain/entity"
	"github.com/tu-usuario/care-pro/internal/domain/repository"
)

// Límites de plan por defecto para asociaciones nuevas.
const (
	defaultMaxUsers         = 25
	defaultMaxBeneficiaries = 500
)

var defaultMaxStorageGB = decimal.NewFromFloat(5.0)

// OrganizationUseCase alta y consulta de asociaciones (tooling de plataforma;
// el alta corre antes de que exista el primer usuario de la organización).
type OrganizationUseCase struct {
	orgs          repository.OrganizationRepository
	users         repository.UserRepository
	beneficiaries repository.BeneficiaryRepository
}

// NewOrganizationUseCase construye el caso de uso de organizaciones.
func NewOrganizationUseCase(orgs repository.OrganizationRepository, users repository.UserRepository, beneficiaries repository.BeneficiaryRepository) *OrganizationUseCase {
	return &OrganizationUseCase{orgs: orgs, users: users, beneficiaries: beneficiaries}
}

// Create da de alta una organización activa con sus límites de plan.
func (uc *OrganizationUseCase) Create(ctx context.Context, in dto.CreateOrganizationRequest) (*entity.Organization, error) {
	maxStorage := defaultMaxStorageGB
	if in.MaxStorageGB != "" {
		d, err := decimal.NewFromString(in.MaxStorageGB)
		if err != nil || d.IsNegative() {
			return nil, fmt.Errorf("campo 'max_storage_gb' inválido: %w", domain.ErrInvalidInput)
		}
		maxStorage = d
	}
	maxUsers := in.MaxUsers
	if maxUsers <= 0 {
		maxUsers = defaultMaxUsers
	}
	maxBeneficiaries := in.MaxBeneficiaries
	if maxBeneficiaries <= 0 {
		maxBeneficiaries = defaultMaxBeneficiaries
	}
	now := time.Now()
	org := &entity.Organization{
		ID:               uuid.New().String(),
		Name:             in.Name,
		Status:           entity.OrgStatusActive,
		MaxUsers:         maxUsers,
		MaxBeneficiaries: maxBeneficiaries,
		MaxStorageGB:     maxStorage,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.orgs.Create(ctx, org); err != nil {
		return nil, err
	}
	return org, nil
}

// GetByID devuelve una organización. Un principal solo puede ver la suya
// salvo override admin.
func (uc *OrganizationUseCase) GetByID(ctx context.Context, actor *entity.User, id string) (*entity.Organization, error) {
	if actor == nil {
		return nil, domain.ErrUnauthenticated
	}
	if actor.OrganizationID != id && !adminOverride(actor) {
		return nil, domain.ErrNotFound
	}
	org, err := uc.orgs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domain.ErrNotFound
	}
	return org, nil
}

// Usage contadores vivos de uso frente a los límites del plan.
type Usage struct {
	Users         int `json:"users"`
	Beneficiaries int `json:"beneficiaries"`
}

// Usage devuelve el consumo actual de la organización.
func (uc *OrganizationUseCase) Usage(ctx context.Context, actor *entity.User, id string) (*Usage, error) {
	if _, err := uc.GetByID(ctx, actor, id); err != nil {
		return nil, err
	}
	users, err := uc.users.CountByOrganization(ctx, id)
	if err != nil {
		return nil, err
	}
	beneficiaries, err := uc.beneficiaries.CountByOrganization(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Usage{Users: users, Beneficiaries: beneficiaries}, nil
}
