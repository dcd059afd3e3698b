package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/care-pro/internal/domain/entity"
	"github.com/tu-usuario/care-pro/internal/domain/repository"
	"github.com/tu-usuario/care-pro/pkg/textutil"
)

var _ repository.BeneficiaryRepository = (*BeneficiaryRepo)(nil)

const beneficiaryColumns = `id, organization_id, first_name, last_name, date_of_birth, gender,
	phone, address, beneficiary_type, status, created_by_id, oriented_by_id, oriented_at,
	orientation_reason, assigned_to_id, assigned_at, is_active, created_at, updated_at`

// BeneficiaryRepo implementación del puerto BeneficiaryRepository sobre PostgreSQL.
// Mantiene la columna search_name (forma normalizada del nombre, ver
// pkg/textutil) en cada insert/update para búsqueda insensible a acentos.
type BeneficiaryRepo struct {
	db Querier
}

// NewBeneficiaryRepository construye el adaptador de persistencia para expedientes.
func NewBeneficiaryRepository(db Querier) *BeneficiaryRepo {
	return &BeneficiaryRepo{db: db}
}

// Create persiste un nuevo expediente.
func (r *BeneficiaryRepo) Create(ctx context.Context, b *entity.Beneficiary) error {
	query := `
		INSERT INTO beneficiaries (` + beneficiaryColumns + `, search_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err := r.db.Exec(ctx, query,
		b.ID, b.OrganizationID, b.FirstName, b.LastName, b.DateOfBirth, b.Gender,
		b.Phone, b.Address, b.BeneficiaryType, b.Status, b.CreatedByID, b.OrientedByID,
		b.OrientedAt, b.OrientationReason, b.AssignedToID, b.AssignedAt, b.IsActive,
		b.CreatedAt, b.UpdatedAt,
		textutil.Fold(b.FirstName+" "+b.LastName),
	)
	if err != nil {
		return fmt.Errorf("insert beneficiary: %w", err)
	}
	return nil
}

// GetByID obtiene un expediente activo de la organización; nil sin error si no
// existe o está dado de baja (el soft delete es invisible aquí).
func (r *BeneficiaryRepo) GetByID(ctx context.Context, organizationID, id string) (*entity.Beneficiary, error) {
	query := `
		SELECT ` + beneficiaryColumns + ` FROM beneficiaries
		WHERE id = $1 AND organization_id = $2 AND is_active = true`
	b, err := scanBeneficiary(r.db.QueryRow(ctx, query, id, organizationID))
	if err != nil {
		return nil, fmt.Errorf("get beneficiary by id: %w", err)
	}
	return b, nil
}

// Update sobrescribe los campos mutables; organization_id, created_by_id y
// created_at son inmutables.
func (r *BeneficiaryRepo) Update(ctx context.Context, b *entity.Beneficiary) error {
	query := `
		UPDATE beneficiaries SET first_name = $2, last_name = $3, gender = $4, phone = $5,
			address = $6, status = $7, oriented_by_id = $8, oriented_at = $9,
			orientation_reason = $10, assigned_to_id = $11, assigned_at = $12,
			updated_at = $13, search_name = $14
		WHERE id = $1 AND organization_id = $15`
	_, err := r.db.Exec(ctx, query,
		b.ID, b.FirstName, b.LastName, b.Gender, b.Phone,
		b.Address, b.Status, b.OrientedByID, b.OrientedAt,
		b.OrientationReason, b.AssignedToID, b.AssignedAt,
		b.UpdatedAt, textutil.Fold(b.FirstName+" "+b.LastName),
		b.OrganizationID,
	)
	if err != nil {
		return fmt.Errorf("update beneficiary: %w", err)
	}
	return nil
}

// ListByOrganization lista expedientes con filtros; por defecto solo activos.
func (r *BeneficiaryRepo) ListByOrganization(ctx context.Context, organizationID string, f repository.BeneficiaryFilter) ([]*entity.Beneficiary, error) {
	query := `SELECT ` + beneficiaryColumns + ` FROM beneficiaries WHERE organization_id = $1`
	args := []any{organizationID}
	if !f.IncludeInactive {
		query += ` AND is_active = true`
	}
	if f.Status != "" {
		args = append(args, f.Status)
		query += fmt.Sprintf(` AND status = $%d`, len(args))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		query += fmt.Sprintf(` AND search_name LIKE $%d`, len(args))
	}
	args = append(args, f.Limit, f.Offset)
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list beneficiaries: %w", err)
	}
	defer rows.Close()
	var list []*entity.Beneficiary
	for rows.Next() {
		var b entity.Beneficiary
		if err := rows.Scan(
			&b.ID, &b.OrganizationID, &b.FirstName, &b.LastName, &b.DateOfBirth, &b.Gender,
			&b.Phone, &b.Address, &b.BeneficiaryType, &b.Status, &b.CreatedByID, &b.OrientedByID,
			&b.OrientedAt, &b.OrientationReason, &b.AssignedToID, &b.AssignedAt, &b.IsActive,
			&b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan beneficiary: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// CountByOrganization cuenta los expedientes activos (consumo del plan).
func (r *BeneficiaryRepo) CountByOrganization(ctx context.Context, organizationID string) (int, error) {
	var n int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM beneficiaries WHERE organization_id = $1 AND is_active = true`,
		organizationID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count beneficiaries: %w", err)
	}
	return n, nil
}

// SoftDelete marca is_active=false sin tocar status.
func (r *BeneficiaryRepo) SoftDelete(ctx context.Context, organizationID, id string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE beneficiaries SET is_active = false, updated_at = now() WHERE id = $1 AND organization_id = $2`,
		id, organizationID)
	if err != nil {
		return fmt.Errorf("soft delete beneficiary: %w", err)
	}
	return nil
}

// HardDelete elimina físicamente el expediente (solo tooling admin).
func (r *BeneficiaryRepo) HardDelete(ctx context.Context, organizationID, id string) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM beneficiaries WHERE id = $1 AND organization_id = $2`,
		id, organizationID)
	if err != nil {
		return fmt.Errorf("hard delete beneficiary: %w", err)
	}
	return nil
}

func scanBeneficiary(row pgx.Row) (*entity.Beneficiary, error) {
	var b entity.Beneficiary
	err := row.Scan(
		&b.ID, &b.OrganizationID, &b.FirstName, &b.LastName, &b.DateOfBirth, &b.Gender,
		&b.Phone, &b.Address, &b.BeneficiaryType, &b.Status, &b.CreatedByID, &b.OrientedByID,
		&b.OrientedAt, &b.OrientationReason, &b.AssignedToID, &b.AssignedAt, &b.IsActive,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}
