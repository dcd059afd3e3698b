package beneficiary_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbeneficiary "github.com/tu-usuario/care-pro/internal/application/beneficiary"
	"github.com/tu-usuario/care-pro/internal/application/dto"
	appnotification "github.com/tu-usuario/care-pro/internal/application/notification"
	"github.com/tu-usuario/care-pro/internal/application/tenant"
	"github.com/tu-usuario/care-pro/internal/domain"
	"github.com/tu-usuario/care-pro/internal/domain/access"
	"github.com/tu-usuario/care-pro/internal/domain/entity"
	"github.com/tu-usuario/care-pro/internal/domain/repository"
	"github.com/tu-usuario/care-pro/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

const (
	orgA = "00000000-0000-0000-0000-0000000000aa"
	orgB = "00000000-0000-0000-0000-0000000000bb"
)

type fakeOrgRepo struct {
	orgs map[string]*entity.Organization
}

func (f *fakeOrgRepo) Create(context.Context, *entity.Organization) error { return nil }
func (f *fakeOrgRepo) GetByID(_ context.Context, id string) (*entity.Organization, error) {
	return f.orgs[id], nil
}
func (f *fakeOrgRepo) Update(context.Context, *entity.Organization) error { return nil }
func (f *fakeOrgRepo) List(context.Context, int, int) ([]*entity.Organization, error) {
	return nil, nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	f.users[u.ID] = u
	return nil
}
func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return f.users[id], nil
}
func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	f.users[u.ID] = u
	return nil
}
func (f *fakeUserRepo) ListByOrganization(context.Context, string, int, int) ([]*entity.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) ListByRoles(_ context.Context, orgID string, roles []string) ([]*entity.User, error) {
	wanted := map[string]bool{}
	for _, r := range roles {
		wanted[r] = true
	}
	var out []*entity.User
	for _, u := range f.users {
		if u.OrganizationID == orgID && wanted[u.Role] && u.IsActive && u.Status == entity.UserStatusApproved {
			out = append(out, u)
		}
	}
	return out, nil
}
func (f *fakeUserRepo) CountByOrganization(_ context.Context, orgID string) (int, error) {
	n := 0
	for _, u := range f.users {
		if u.OrganizationID == orgID {
			n++
		}
	}
	return n, nil
}

type fakeBeneficiaryRepo struct {
	records    map[string]*entity.Beneficiary
	lastFilter repository.BeneficiaryFilter
	createErr  error
}

func (f *fakeBeneficiaryRepo) Create(_ context.Context, b *entity.Beneficiary) error {
	if f.createErr != nil {
		return f.createErr
	}
	cp := *b
	f.records[b.ID] = &cp
	return nil
}
func (f *fakeBeneficiaryRepo) GetByID(_ context.Context, orgID, id string) (*entity.Beneficiary, error) {
	b := f.records[id]
	if b == nil || b.OrganizationID != orgID || !b.IsActive {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}
func (f *fakeBeneficiaryRepo) Update(_ context.Context, b *entity.Beneficiary) error {
	cp := *b
	f.records[b.ID] = &cp
	return nil
}
func (f *fakeBeneficiaryRepo) ListByOrganization(_ context.Context, orgID string, flt repository.BeneficiaryFilter) ([]*entity.Beneficiary, error) {
	f.lastFilter = flt
	var out []*entity.Beneficiary
	for _, b := range f.records {
		if b.OrganizationID == orgID && (b.IsActive || flt.IncludeInactive) {
			out = append(out, b)
		}
	}
	return out, nil
}
func (f *fakeBeneficiaryRepo) CountByOrganization(_ context.Context, orgID string) (int, error) {
	n := 0
	for _, b := range f.records {
		if b.OrganizationID == orgID {
			n++
		}
	}
	return n, nil
}
func (f *fakeBeneficiaryRepo) SoftDelete(_ context.Context, orgID, id string) error {
	b := f.records[id]
	if b == nil || b.OrganizationID != orgID {
		return domain.ErrNotFound
	}
	b.IsActive = false
	return nil
}
func (f *fakeBeneficiaryRepo) HardDelete(_ context.Context, orgID, id string) error {
	b := f.records[id]
	if b == nil || b.OrganizationID != orgID {
		return domain.ErrNotFound
	}
	delete(f.records, id)
	return nil
}

type fakeNotificationRepo struct {
	created   []*entity.Notification
	createErr error
}

func (f *fakeNotificationRepo) Create(_ context.Context, n *entity.Notification) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, n)
	return nil
}
func (f *fakeNotificationRepo) GetByID(context.Context, string) (*entity.Notification, error) {
	return nil, nil
}
func (f *fakeNotificationRepo) Update(context.Context, *entity.Notification) error { return nil }
func (f *fakeNotificationRepo) ListByReceiver(context.Context, string, string, bool, int, int) ([]*entity.Notification, error) {
	return nil, nil
}

// fakeKeyLoader resuelve claves de organización desde el repo de expedientes.
type fakeKeyLoader struct {
	bens *fakeBeneficiaryRepo
}

func (f *fakeKeyLoader) OrganizationKey(_ context.Context, _, resourceID string) (string, error) {
	b := f.bens.records[resourceID]
	if b == nil {
		return "", domain.ErrNotFound
	}
	return b.OrganizationID, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	uc    *appbeneficiary.UseCase
	bens  *fakeBeneficiaryRepo
	users *fakeUserRepo
	notif *fakeNotificationRepo

	directeur      *entity.User
	coordinatrice  *entity.User
	receptionniste *entity.User
	assistante     *entity.User
	assistante2    *entity.User
	psychologue    *entity.User
	admin          *entity.User
	foraneo        *entity.User // aprobado pero de otra organización
}

func member(id, org, role string) *entity.User {
	return &entity.User{
		ID:             id,
		OrganizationID: org,
		Role:           role,
		Status:         entity.UserStatusApproved,
		IsActive:       true,
	}
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	fx := &fixture{
		bens:  &fakeBeneficiaryRepo{records: map[string]*entity.Beneficiary{}},
		users: &fakeUserRepo{users: map[string]*entity.User{}},
		notif: &fakeNotificationRepo{},
	}
	fx.directeur = member("dir-1", orgA, entity.RoleDirecteur)
	fx.coordinatrice = member("coord-1", orgA, entity.RoleCoordinatrice)
	fx.receptionniste = member("recep-1", orgA, entity.RoleReceptionniste)
	fx.assistante = member("assist-1", orgA, entity.RoleAssistante)
	fx.assistante2 = member("assist-2", orgA, entity.RoleAssistante)
	fx.psychologue = member("psy-1", orgA, entity.RolePsychologue)
	fx.admin = member("admin-1", orgA, entity.RoleAdmin)
	fx.foraneo = member("assist-b", orgB, entity.RoleAssistante)
	for _, u := range []*entity.User{
		fx.directeur, fx.coordinatrice, fx.receptionniste, fx.assistante,
		fx.assistante2, fx.psychologue, fx.admin, fx.foraneo,
	} {
		fx.users.users[u.ID] = u
	}

	orgs := &fakeOrgRepo{orgs: map[string]*entity.Organization{
		orgA: {ID: orgA, Name: "Asociación A", Status: entity.OrgStatusActive, MaxUsers: 50, MaxBeneficiaries: 50},
		orgB: {ID: orgB, Name: "Asociación B", Status: entity.OrgStatusActive, MaxUsers: 50, MaxBeneficiaries: 50},
	}}
	guard := tenant.NewGuard(orgs, fx.users, fx.bens, &fakeKeyLoader{bens: fx.bens})
	engine := access.NewEngine(access.NewCatalog(), nil)
	dispatcher := appnotification.NewDispatcher(fx.notif, logger.Nop())
	fx.uc = appbeneficiary.NewUseCase(engine, guard, fx.bens, fx.users, dispatcher, logger.Nop())
	return fx
}

// dob devuelve una fecha de nacimiento hace years años, en formato de entrada.
func dob(years int) string {
	return time.Now().AddDate(-years, 0, -1).Format("2006-01-02")
}

func intakeRequest(years int) dto.CreateBeneficiaryRequest {
	return dto.CreateBeneficiaryRequest{
		FirstName:   "Amal",
		LastName:    "Haddad",
		DateOfBirth: dob(years),
		Gender:      "Female",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Acogida (Create)
// ──────────────────────────────────────────────────────────────────────────────

// Llegada registrada en acogida: menor de edad => MINEURE, estado
// PENDING_ORIENTATION y una notificación no leída por cada miembro de
// dirección.
func TestCreate_AcogidaDeMenor_NotificaDireccion(t *testing.T) {
	fx := newFixture(t)

	b, err := fx.uc.Create(context.Background(), fx.receptionniste, intakeRequest(10))
	require.NoError(t, err)

	assert.Equal(t, entity.BeneficiaryTypeMineure, b.BeneficiaryType, "menor de 18 debe clasificarse MINEURE")
	assert.Equal(t, entity.BeneficiaryPendingOrientation, b.Status)
	assert.Equal(t, orgA, b.OrganizationID)
	assert.Equal(t, fx.receptionniste.ID, b.CreatedByID)
	assert.True(t, b.IsActive)

	require.Len(t, fx.notif.created, 2, "una notificación por cada miembro de dirección")
	receivers := map[string]bool{}
	for _, n := range fx.notif.created {
		receivers[n.ReceiverID] = true
		assert.Equal(t, entity.NotificationArrival, n.Type)
		assert.Equal(t, entity.NotificationUnread, n.Status)
		assert.Equal(t, fx.receptionniste.ID, n.SenderID)
		require.NotNil(t, n.BeneficiaryID)
		assert.Equal(t, b.ID, *n.BeneficiaryID)
	}
	assert.True(t, receivers[fx.directeur.ID])
	assert.True(t, receivers[fx.coordinatrice.ID])
}

// Una adulta registrada por la trabajadora social: FEMME, PENDING_INTAKE y
// ninguna notificación.
func TestCreate_RegistroDirecto_SinNotificaciones(t *testing.T) {
	fx := newFixture(t)

	b, err := fx.uc.Create(context.Background(), fx.assistante, intakeRequest(30))
	require.NoError(t, err)

	assert.Equal(t, entity.BeneficiaryTypeFemme, b.BeneficiaryType)
	assert.Equal(t, entity.BeneficiaryPendingIntake, b.Status)
	assert.Empty(t, fx.notif.created, "el registro directo no genera fan-out")
}

func TestCreate_TipoDeclarado_SeRespeta(t *testing.T) {
	fx := newFixture(t)
	in := intakeRequest(30)
	in.BeneficiaryType = entity.BeneficiaryTypeMineure // declarado explícito, no se re-deriva

	b, err := fx.uc.Create(context.Background(), fx.assistante, in)
	require.NoError(t, err)
	assert.Equal(t, entity.BeneficiaryTypeMineure, b.BeneficiaryType)
}

func TestCreate_EntradaInvalida(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	in := intakeRequest(10)
	in.DateOfBirth = "01/04/2010"
	_, err := fx.uc.Create(ctx, fx.assistante, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "formato de fecha inválido")

	in = intakeRequest(10)
	in.DateOfBirth = time.Now().AddDate(1, 0, 0).Format("2006-01-02")
	_, err = fx.uc.Create(ctx, fx.assistante, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "fecha de nacimiento futura")

	in = intakeRequest(10)
	in.BeneficiaryType = "OTRO"
	_, err = fx.uc.Create(ctx, fx.assistante, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo fuera del conjunto cerrado")

	assert.Empty(t, fx.bens.records, "ninguna entrada inválida debe persistir")
}

func TestCreate_SinConcesion_Forbidden(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.uc.Create(context.Background(), fx.psychologue, intakeRequest(10))
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, fx.bens.records)
}

func TestCreate_LimiteDePlan_Rechaza(t *testing.T) {
	fx := newFixture(t)
	// Llenar la organización hasta el límite.
	for i := 0; i < 50; i++ {
		fx.bens.records[string(rune('a'+i))+"-seed"] = &entity.Beneficiary{
			ID: string(rune('a'+i)) + "-seed", OrganizationID: orgA, IsActive: true,
		}
	}

	_, err := fx.uc.Create(context.Background(), fx.assistante, intakeRequest(30))
	assert.ErrorIs(t, err, domain.ErrLimitExceeded)
	assert.Len(t, fx.bens.records, 50, "no debe crearse el expediente 51")
}

// El fallo del despacho de notificaciones nunca revierte la acogida.
func TestCreate_FalloDeNotificacion_NoRevierte(t *testing.T) {
	fx := newFixture(t)
	fx.notif.createErr = errors.New("tabla notifications bloqueada")

	b, err := fx.uc.Create(context.Background(), fx.receptionniste, intakeRequest(10))
	require.NoError(t, err, "la acogida ya está confirmada; el fan-out es best-effort")
	assert.NotNil(t, fx.bens.records[b.ID])
	assert.Empty(t, fx.notif.created)
}

// ──────────────────────────────────────────────────────────────────────────────
// Orientación y asignación
// ──────────────────────────────────────────────────────────────────────────────

func seedCase(fx *fixture, org string, status string) *entity.Beneficiary {
	b := &entity.Beneficiary{
		ID:              "ben-" + org + "-" + status,
		OrganizationID:  org,
		FirstName:       "Amal",
		LastName:        "Haddad",
		DateOfBirth:     time.Now().AddDate(-10, 0, 0),
		BeneficiaryType: entity.BeneficiaryTypeMineure,
		Status:          status,
		CreatedByID:     "recep-1",
		IsActive:        true,
	}
	fx.bens.records[b.ID] = b
	return b
}

func TestOrient_PorCoordinatrice(t *testing.T) {
	fx := newFixture(t)
	b := seedCase(fx, orgA, entity.BeneficiaryPendingOrientation)

	out, err := fx.uc.Orient(context.Background(), fx.coordinatrice, b.ID, dto.OrientBeneficiaryRequest{
		AssigneeID: fx.assistante.ID,
		Reason:     "caso urgente",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.BeneficiaryOriented, out.Status)
	require.NotNil(t, out.OrientedByID)
	assert.Equal(t, fx.coordinatrice.ID, *out.OrientedByID)
	assert.NotNil(t, out.OrientedAt)
	assert.Equal(t, "caso urgente", out.OrientationReason)
	require.NotNil(t, out.AssignedToID)
	assert.Equal(t, fx.assistante.ID, *out.AssignedToID)

	require.Len(t, fx.notif.created, 1, "exactamente una notificación a la destinataria")
	n := fx.notif.created[0]
	assert.Equal(t, entity.NotificationOrientation, n.Type)
	assert.Equal(t, fx.assistante.ID, n.ReceiverID)
	assert.Equal(t, entity.NotificationUnread, n.Status)
}

func TestAssign_PorDirecteur_EstadoEnSeguimiento(t *testing.T) {
	fx := newFixture(t)
	b := seedCase(fx, orgA, entity.BeneficiaryPendingIntake)

	out, err := fx.uc.Assign(context.Background(), fx.directeur, b.ID, dto.OrientBeneficiaryRequest{
		AssigneeID: fx.assistante.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.BeneficiaryInFollowup, out.Status)
	require.Len(t, fx.notif.created, 1)
	assert.Equal(t, entity.NotificationAssignment, fx.notif.created[0].Type)
}

// Re-orientar sobrescribe el ruteo completo (last write wins).
func TestOrient_Repetida_SobrescribeRuteo(t *testing.T) {
	fx := newFixture(t)
	b := seedCase(fx, orgA, entity.BeneficiaryPendingOrientation)
	ctx := context.Background()

	_, err := fx.uc.Orient(ctx, fx.coordinatrice, b.ID, dto.OrientBeneficiaryRequest{AssigneeID: fx.assistante.ID, Reason: "primera"})
	require.NoError(t, err)

	out, err := fx.uc.Orient(ctx, fx.directeur, b.ID, dto.OrientBeneficiaryRequest{AssigneeID: fx.assistante2.ID, Reason: "reasignación"})
	require.NoError(t, err)

	assert.Equal(t, fx.directeur.ID, *out.OrientedByID)
	assert.Equal(t, fx.assistante2.ID, *out.AssignedToID)
	assert.Equal(t, "reasignación", out.OrientationReason)
	assert.Len(t, fx.notif.created, 2, "cada ruteo notifica a su destinataria")
}

func TestOrient_RolSinMando_Forbidden(t *testing.T) {
	fx := newFixture(t)
	b := seedCase(fx, orgA, entity.BeneficiaryPendingOrientation)

	_, err := fx.uc.Orient(context.Background(), fx.assistante, b.ID, dto.OrientBeneficiaryRequest{AssigneeID: fx.assistante2.ID})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, entity.BeneficiaryPendingOrientation, fx.bens.records[b.ID].Status, "el estado no debe cambiar")
}

func TestOrient_DestinatariaInvalida(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	t.Run("de otra organización", func(t *testing.T) {
		b := seedCase(fx, orgA, entity.BeneficiaryPendingOrientation)
		_, err := fx.uc.Orient(ctx, fx.coordinatrice, b.ID, dto.OrientBeneficiaryRequest{AssigneeID: fx.foraneo.ID})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Equal(t, entity.BeneficiaryPendingOrientation, fx.bens.records[b.ID].Status)
	})

	t.Run("sin rol de trabajadora social", func(t *testing.T) {
		b := seedCase(fx, orgA, entity.BeneficiaryPendingIntake)
		_, err := fx.uc.Orient(ctx, fx.coordinatrice, b.ID, dto.OrientBeneficiaryRequest{AssigneeID: fx.psychologue.ID})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("suspendida", func(t *testing.T) {
		suspendida := member("assist-susp", orgA, entity.RoleAssistante)
		suspendida.Status = entity.UserStatusSuspended
		fx.users.users[suspendida.ID] = suspendida

		b := seedCase(fx, orgA, entity.BeneficiaryPendingIntake)
		_, err := fx.uc.Orient(ctx, fx.coordinatrice, b.ID, dto.OrientBeneficiaryRequest{AssigneeID: suspendida.ID})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("inexistente", func(t *testing.T) {
		b := seedCase(fx, orgA, entity.BeneficiaryPendingIntake)
		_, err := fx.uc.Orient(ctx, fx.coordinatrice, b.ID, dto.OrientBeneficiaryRequest{AssigneeID: "no-existe"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

// Orientar un expediente de otra organización falla como inexistente y no
// deja rastro en el registro ajeno.
func TestOrient_CruceDeOrganizacion_FallaComoNotFound(t *testing.T) {
	fx := newFixture(t)
	ajeno := seedCase(fx, orgB, entity.BeneficiaryPendingOrientation)

	_, err := fx.uc.Orient(context.Background(), fx.coordinatrice, ajeno.ID, dto.OrientBeneficiaryRequest{AssigneeID: fx.assistante.ID})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	got := fx.bens.records[ajeno.ID]
	assert.Equal(t, entity.BeneficiaryPendingOrientation, got.Status, "el expediente ajeno debe quedar intacto")
	assert.Nil(t, got.AssignedToID)
	assert.Empty(t, fx.notif.created)
}

func TestOrient_ExpedienteInactivo_Conflicto(t *testing.T) {
	fx := newFixture(t)
	b := seedCase(fx, orgA, entity.BeneficiaryOriented)
	b.IsActive = false

	_, err := fx.uc.Orient(context.Background(), fx.coordinatrice, b.ID, dto.OrientBeneficiaryRequest{AssigneeID: fx.assistante.ID})
	assert.ErrorIs(t, err, domain.ErrNotFound, "el soft delete es invisible: se lee como inexistente")
}

// Un expediente con estado terminal INACTIVE pero aún legible rechaza el
// ruteo con error de conflicto, no con inexistente.
func TestOrient_EstadoTerminal_Conflicto(t *testing.T) {
	fx := newFixture(t)
	b := seedCase(fx, orgA, entity.BeneficiaryInactive)

	_, err := fx.uc.Orient(context.Background(), fx.coordinatrice, b.ID, dto.OrientBeneficiaryRequest{AssigneeID: fx.assistante.ID})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// ──────────────────────────────────────────────────────────────────────────────
// Edición y baja
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_SoloCreadorOAdmin(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	b := seedCase(fx, orgA, entity.BeneficiaryPendingIntake)
	b.CreatedByID = fx.assistante.ID

	nuevo := "Rania"
	out, err := fx.uc.Update(ctx, fx.assistante, b.ID, dto.UpdateBeneficiaryRequest{FirstName: &nuevo})
	require.NoError(t, err)
	assert.Equal(t, "Rania", out.FirstName)
	assert.Equal(t, entity.BeneficiaryTypeMineure, out.BeneficiaryType, "la clasificación nunca se re-deriva")
	assert.Equal(t, entity.BeneficiaryPendingIntake, out.Status, "la edición no mueve el estado")

	_, err = fx.uc.Update(ctx, fx.assistante2, b.ID, dto.UpdateBeneficiaryRequest{FirstName: &nuevo})
	assert.ErrorIs(t, err, domain.ErrForbidden, "otra trabajadora social no edita expedientes ajenos")

	otro := "Salma"
	out, err = fx.uc.Update(ctx, fx.admin, b.ID, dto.UpdateBeneficiaryRequest{FirstName: &otro})
	require.NoError(t, err, "admin edita cualquier expediente")
	assert.Equal(t, "Salma", out.FirstName)
}

func TestDelete_BajaLogicaSoloAdmin(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	b := seedCase(fx, orgA, entity.BeneficiaryInFollowup)

	err := fx.uc.Delete(ctx, fx.directeur, b.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden, "la baja es solo admin, ni siquiera dirección")

	require.NoError(t, fx.uc.Delete(ctx, fx.admin, b.ID))
	got := fx.bens.records[b.ID]
	assert.False(t, got.IsActive)
	assert.Equal(t, entity.BeneficiaryInFollowup, got.Status, "la baja lógica no toca el estado")

	// Tras la baja, las lecturas normales no lo ven.
	_, err = fx.uc.GetByID(ctx, fx.admin, b.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Lectura y listado
// ──────────────────────────────────────────────────────────────────────────────

func TestList_BusquedaNormalizada(t *testing.T) {
	fx := newFixture(t)
	seedCase(fx, orgA, entity.BeneficiaryPendingIntake)

	_, err := fx.uc.List(context.Background(), fx.assistante, dto.ListBeneficiariesRequest{Search: "Aïcha  BENALI"})
	require.NoError(t, err)
	assert.Equal(t, "aicha benali", fx.bens.lastFilter.Search,
		"la búsqueda debe normalizarse (acentos fuera, minúsculas, espacios colapsados)")
}

func TestList_EstadoInvalido(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.uc.List(context.Background(), fx.assistante, dto.ListBeneficiariesRequest{Status: "ARCHIVADO"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetByID_SinConcesionDeLectura(t *testing.T) {
	fx := newFixture(t)
	b := seedCase(fx, orgA, entity.BeneficiaryPendingIntake)

	comptable := member("compt-1", orgA, entity.RoleComptable)
	fx.users.users[comptable.ID] = comptable

	_, err := fx.uc.GetByID(context.Background(), comptable, b.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
