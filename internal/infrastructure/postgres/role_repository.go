package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/care-pro/internal/domain"
	"github.com/tu-usuario/care-pro/internal/domain/access"
	"github.com/tu-usuario/care-pro/internal/domain/entity"
	"github.com/tu-usuario/care-pro/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)
var _ access.GrantSource = (*RoleRepo)(nil)

// RoleRepo implementación del puerto RoleRepository sobre PostgreSQL. También
// implementa access.GrantSource: el motor de permisos resuelve aquí las
// concesiones de roles personalizados.
type RoleRepo struct {
	db Querier
}

// NewRoleRepository construye el adaptador de persistencia para roles personalizados.
func NewRoleRepository(db Querier) *RoleRepo {
	return &RoleRepo{db: db}
}

// Create persiste el rol y sus filas de permisos. Pensado para correr dentro
// de una transacción (ver TxRunner): las filas nunca quedan a medias.
func (r *RoleRepo) Create(ctx context.Context, role *entity.Role) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO roles (id, organization_id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		role.ID, role.OrganizationID, role.Name, role.Description, role.CreatedAt, role.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert role: %w", err)
	}
	for _, p := range role.Permissions {
		_, err := r.db.Exec(ctx, `
			INSERT INTO role_permissions (role_id, module, action, own_records_only)
			VALUES ($1, $2, $3, $4)`,
			role.ID, p.Module, p.Action, p.OwnRecordsOnly,
		)
		if err != nil {
			return fmt.Errorf("insert role permission: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un rol con sus permisos; nil sin error si no existe.
func (r *RoleRepo) GetByID(ctx context.Context, organizationID, id string) (*entity.Role, error) {
	return r.getOne(ctx,
		`SELECT id, organization_id, name, description, created_at, updated_at
		 FROM roles WHERE id = $1 AND organization_id = $2`, id, organizationID)
}

// GetByName obtiene un rol por nombre dentro de la organización.
func (r *RoleRepo) GetByName(ctx context.Context, organizationID, name string) (*entity.Role, error) {
	return r.getOne(ctx,
		`SELECT id, organization_id, name, description, created_at, updated_at
		 FROM roles WHERE name = $1 AND organization_id = $2`, name, organizationID)
}

func (r *RoleRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Role, error) {
	var role entity.Role
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&role.ID, &role.OrganizationID, &role.Name, &role.Description,
		&role.CreatedAt, &role.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	perms, err := r.loadPermissions(ctx, role.ID)
	if err != nil {
		return nil, err
	}
	role.Permissions = perms
	return &role, nil
}

// ListByOrganization lista los roles personalizados de la organización.
func (r *RoleRepo) ListByOrganization(ctx context.Context, organizationID string) ([]*entity.Role, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, organization_id, name, description, created_at, updated_at
		 FROM roles WHERE organization_id = $1 ORDER BY name`, organizationID)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Role
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(
			&role.ID, &role.OrganizationID, &role.Name, &role.Description,
			&role.CreatedAt, &role.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, &role)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, role := range list {
		perms, err := r.loadPermissions(ctx, role.ID)
		if err != nil {
			return nil, err
		}
		role.Permissions = perms
	}
	return list, nil
}

// GrantsForRole implementa access.GrantSource para el motor de permisos:
// resuelve las concesiones persistidas de un rol personalizado, acotadas a la
// organización del principal (un rol de otra organización no concede nada).
func (r *RoleRepo) GrantsForRole(ctx context.Context, organizationID, roleID string) ([]access.Grant, error) {
	rows, err := r.db.Query(ctx, `
		SELECT p.module, p.action, p.own_records_only
		FROM role_permissions p
		JOIN roles ro ON ro.id = p.role_id
		WHERE p.role_id = $1 AND ro.organization_id = $2`,
		roleID, organizationID)
	if err != nil {
		return nil, fmt.Errorf("grants for role: %w", err)
	}
	defer rows.Close()
	var grants []access.Grant
	for rows.Next() {
		var g access.Grant
		if err := rows.Scan(&g.Module, &g.Action, &g.OwnRecordsOnly); err != nil {
			return nil, fmt.Errorf("scan grant: %w", err)
		}
		grants = append(grants, g)
	}
	return grants, rows.Err()
}

func (r *RoleRepo) loadPermissions(ctx context.Context, roleID string) ([]entity.RolePermission, error) {
	rows, err := r.db.Query(ctx,
		`SELECT module, action, own_records_only FROM role_permissions WHERE role_id = $1`, roleID)
	if err != nil {
		return nil, fmt.Errorf("load role permissions: %w", err)
	}
	defer rows.Close()
	var perms []entity.RolePermission
	for rows.Next() {
		var p entity.RolePermission
		if err := rows.Scan(&p.Module, &p.Action, &p.OwnRecordsOnly); err != nil {
			return nil, fmt.Errorf("scan role permission: %w", err)
		}
		perms = append(perms, p)
	}
	return perms, rows.Err()
}
