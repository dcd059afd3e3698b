package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/care-pro/internal/application/tenant"
	"github.com/tu-usuario/care-pro/internal/domain"
)

var _ tenant.KeyLoader = (*TenantKeyLoader)(nil)

// entityTables mapa cerrado tipo de recurso -> tabla. El guard solo puede
// verificar recursos registrados aquí; un tipo desconocido es error de
// programación, no de datos.
var entityTables = map[string]string{
	tenant.ResourceUser:         "users",
	tenant.ResourceBeneficiary:  "beneficiaries",
	tenant.ResourceNotification: "notifications",
	tenant.ResourceRole:         "roles",
	tenant.ResourceDocument:     "documents",
	tenant.ResourceIntervention: "interventions",
}

// TenantKeyLoader implementa tenant.KeyLoader: carga únicamente la columna
// organization_id del recurso, nunca el payload completo.
type TenantKeyLoader struct {
	db Querier
}

// NewTenantKeyLoader construye el cargador de claves de organización.
func NewTenantKeyLoader(db Querier) *TenantKeyLoader {
	return &TenantKeyLoader{db: db}
}

// OrganizationKey devuelve la clave de organización del recurso o
// domain.ErrNotFound si la fila no existe.
func (l *TenantKeyLoader) OrganizationKey(ctx context.Context, resourceType, resourceID string) (string, error) {
	table, ok := entityTables[resourceType]
	if !ok {
		return "", fmt.Errorf("tipo de recurso no registrado '%s': %w", resourceType, domain.ErrInvalidInput)
	}
	// table sale del mapa cerrado de arriba, nunca de entrada de usuario.
	query := fmt.Sprintf(`SELECT organization_id FROM %s WHERE id = $1`, table)
	var key string
	err := l.db.QueryRow(ctx, query, resourceID).Scan(&key)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("load organization key: %w", err)
	}
	return key, nil
}
