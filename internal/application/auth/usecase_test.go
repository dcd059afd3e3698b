package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/care-pro/internal/application/auth"
	"github.com/tu-usuario/care-pro/internal/application/dto"
	"github.com/tu-usuario/care-pro/internal/application/tenant"
	"github.com/tu-usuario/care-pro/internal/domain"
	"github.com/tu-usuario/care-pro/internal/domain/entity"
	"github.com/tu-usuario/care-pro/internal/domain/repository"
	pkgjwt "github.com/tu-usuario/care-pro/pkg/jwt"
)

const orgID = "00000000-0000-0000-0000-0000000000aa"

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
func (f *fakeUserRepo) ListByRoles(context.Context, string, []string) ([]*entity.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) CountByOrganization(_ context.Context, org string) (int, error) {
	n := 0
	for _, u := range f.users {
		if u.OrganizationID == org {
			n++
		}
	}
	return n, nil
}

type fakeBeneficiaryCounter struct {
	repository.BeneficiaryRepository
}

func (f *fakeBeneficiaryCounter) CountByOrganization(context.Context, string) (int, error) {
	return 0, nil
}

type noKeys struct{}

func (noKeys) OrganizationKey(context.Context, string, string) (string, error) {
	return "", domain.ErrNotFound
}

func newAuthUC(maxUsers int) (*auth.UseCase, *fakeUserRepo) {
	users := &fakeUserRepo{users: map[string]*entity.User{}}
	orgs := &fakeOrgRepo{orgs: map[string]*entity.Organization{
		orgID: {ID: orgID, Name: "Asociación", Status: entity.OrgStatusActive, MaxUsers: maxUsers, MaxBeneficiaries: 50},
	}}
	guard := tenant.NewGuard(orgs, users, &fakeBeneficiaryCounter{}, noKeys{})
	uc := auth.NewUseCase(users, orgs, guard, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "care-pro-test",
	})
	return uc, users
}

func registerRequest(email string) dto.RegisterRequest {
	return dto.RegisterRequest{
		OrganizationID: orgID,
		Email:          email,
		Password:       "contraseña-larga",
		FirstName:      "Nadia",
		LastName:       "Mansouri",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

// Toda cuenta nace pendiente, con el rol centinela y sin el password en claro.
func TestRegister_NacePendiente(t *testing.T) {
	uc, _ := newAuthUC(50)

	u, err := uc.Register(context.Background(), registerRequest("nadia@asociacion.org"))
	require.NoError(t, err)

	assert.Equal(t, entity.RolePending, u.Role)
	assert.Equal(t, entity.UserStatusPendingApproval, u.Status)
	assert.True(t, u.IsActive)
	assert.NotEqual(t, "contraseña-larga", u.PasswordHash, "el hash nunca es el password en claro")
	assert.NotEmpty(t, u.PasswordHash)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _ := newAuthUC(50)
	ctx := context.Background()

	_, err := uc.Register(ctx, registerRequest("nadia@asociacion.org"))
	require.NoError(t, err)

	_, err = uc.Register(ctx, registerRequest("nadia@asociacion.org"))
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_OrganizacionInexistente(t *testing.T) {
	uc, _ := newAuthUC(50)
	in := registerRequest("nadia@asociacion.org")
	in.OrganizationID = "00000000-0000-0000-0000-0000000000ff"

	_, err := uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegister_LimiteDeUsuarios(t *testing.T) {
	uc, users := newAuthUC(1)
	users.users["existente"] = &entity.User{ID: "existente", OrganizationID: orgID}

	_, err := uc.Register(context.Background(), registerRequest("nueva@asociacion.org"))
	assert.ErrorIs(t, err, domain.ErrLimitExceeded)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin(t *testing.T) {
	uc, users := newAuthUC(50)
	ctx := context.Background()
	registered, err := uc.Register(ctx, registerRequest("nadia@asociacion.org"))
	require.NoError(t, err)

	t.Run("credenciales correctas, cuenta pendiente: entra", func(t *testing.T) {
		token, u, err := uc.Login(ctx, dto.LoginRequest{Email: "nadia@asociacion.org", Password: "contraseña-larga"})
		require.NoError(t, err, "una cuenta pendiente puede iniciar sesión (la UI muestra la espera)")
		require.NotEmpty(t, token)
		assert.Equal(t, registered.ID, u.ID)

		userID, org, role, err := pkgjwt.Parse("test-secret", token)
		require.NoError(t, err)
		assert.Equal(t, registered.ID, userID)
		assert.Equal(t, orgID, org)
		assert.Equal(t, entity.RolePending, role)
	})

	t.Run("password incorrecto", func(t *testing.T) {
		_, _, err := uc.Login(ctx, dto.LoginRequest{Email: "nadia@asociacion.org", Password: "otra"})
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})

	t.Run("email inexistente", func(t *testing.T) {
		_, _, err := uc.Login(ctx, dto.LoginRequest{Email: "nadie@asociacion.org", Password: "x"})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("cuenta suspendida no entra", func(t *testing.T) {
		users.users[registered.ID].Status = entity.UserStatusSuspended
		_, _, err := uc.Login(ctx, dto.LoginRequest{Email: "nadia@asociacion.org", Password: "contraseña-larga"})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("cuenta rechazada no entra", func(t *testing.T) {
		users.users[registered.ID].Status = entity.UserStatusRejected
		_, _, err := uc.Login(ctx, dto.LoginRequest{Email: "nadia@asociacion.org", Password: "contraseña-larga"})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("cuenta desactivada no entra", func(t *testing.T) {
		users.users[registered.ID].Status = entity.UserStatusApproved
		users.users[registered.ID].IsActive = false
		_, _, err := uc.Login(ctx, dto.LoginRequest{Email: "nadia@asociacion.org", Password: "contraseña-larga"})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}
