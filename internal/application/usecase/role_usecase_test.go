package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/care-pro/internal/application/dto"
	"github.com/tu-usuario/care-pro/internal/domain"
	"github.com/tu-usuario/care-pro/internal/domain/access"
	"github.com/tu-usuario/care-pro/internal/domain/entity"
)

func roleRequest(name string) dto.CreateRoleRequest {
	return dto.CreateRoleRequest{
		Name:        name,
		Description: "rol de prueba",
		Grants: []dto.GrantInput{
			{Module: access.ModuleActivities, Action: access.ActionCreate},
			{Module: access.ModuleActivities, Action: access.ActionRead},
		},
	}
}

func TestRoleCreate_SoloAdmin(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.roleUC.Create(context.Background(), fx.directeur, roleRequest("voluntaria-senior"))
	assert.ErrorIs(t, err, domain.ErrForbidden)

	r, err := fx.roleUC.Create(context.Background(), fx.admin, roleRequest("voluntaria-senior"))
	require.NoError(t, err)
	assert.Equal(t, orgA, r.OrganizationID)
	assert.Len(t, r.Permissions, 2)
}

func TestRoleCreate_Colisiones(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	_, err := fx.roleUC.Create(ctx, fx.admin, roleRequest(entity.RoleDirecteur))
	assert.ErrorIs(t, err, domain.ErrConflict, "los roles integrados no se redefinen")

	_, err = fx.roleUC.Create(ctx, fx.admin, roleRequest("voluntaria-senior"))
	require.NoError(t, err)
	_, err = fx.roleUC.Create(ctx, fx.admin, roleRequest("voluntaria-senior"))
	assert.ErrorIs(t, err, domain.ErrConflict, "nombre duplicado en la organización")
}

func TestRoleCreate_ConcesionesInvalidas(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	in := roleRequest("rol-x")
	in.Grants = []dto.GrantInput{{Module: "facturacion", Action: access.ActionRead}}
	_, err := fx.roleUC.Create(ctx, fx.admin, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in.Grants = []dto.GrantInput{{Module: access.ModuleActivities, Action: "exportar"}}
	_, err = fx.roleUC.Create(ctx, fx.admin, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Un usuario aprobado con el rol personalizado obtiene exactamente las
// concesiones persistidas, evaluadas por el mismo motor que los integrados.
func TestRoleCreate_IntegraConElMotor(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	r, err := fx.roleUC.Create(ctx, fx.admin, roleRequest("voluntaria-senior"))
	require.NoError(t, err)

	u, err := fx.userUC.Approve(ctx, fx.admin, fx.pendiente.ID, r.ID)
	require.NoError(t, err)

	engine := access.NewEngine(access.NewCatalog(), fx.roles)
	assert.True(t, engine.HasPermission(ctx, u, access.ModuleActivities, access.ActionCreate, ""))
	assert.False(t, engine.HasPermission(ctx, u, access.ModuleActivities, access.ActionDelete, ""))
	assert.False(t, engine.HasPermission(ctx, u, access.ModuleBeneficiaries, access.ActionRead, ""))
}

func TestRoleGetByID_OtraOrganizacion_FallaComoNotFound(t *testing.T) {
	fx := newFixture(t)
	fx.roles.roles["rol-b"] = &entity.Role{ID: "rol-b", OrganizationID: orgB, Name: "ajeno"}

	_, err := fx.roleUC.GetByID(context.Background(), fx.admin, "rol-b")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRoleList_SoloAdmin(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	_, err := fx.roleUC.List(ctx, fx.benevole)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = fx.roleUC.Create(ctx, fx.admin, roleRequest("voluntaria-senior"))
	require.NoError(t, err)

	roles, err := fx.roleUC.List(ctx, fx.admin)
	require.NoError(t, err)
	assert.Len(t, roles, 1)
}
