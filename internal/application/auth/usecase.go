package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/care-pro/internal/application/dto"
	"github.com/tu-usuario/care-pro/internal/application/tenant"
	"github.com/tu-usuario/care-pro/internal/domain"
	"github.com/tu-usuario/care-pro/internal/domain/entity"
	"github.com/tu-usuario/care-pro/internal/domain/repository"
	"github.com/tu-usuario/care-pro/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticación: registro y login.
type UseCase struct {
	users  repository.UserRepository
	orgs   repository.OrganizationRepository
	guard  *tenant.Guard
	jwtCfg JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(users repository.UserRepository, orgs repository.OrganizationRepository, guard *tenant.Guard, jwtCfg JWTConfig) *UseCase {
	return &UseCase{users: users, orgs: orgs, guard: guard, jwtCfg: jwtCfg}
}

// Register crea un usuario en estado pending_approval con rol centinela
// EN_ATTENTE: sin permisos hasta que un admin lo apruebe y le fije rol.
// Comprueba el límite de usuarios del plan ANTES de crear.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) (*entity.User, error) {
	org, err := uc.orgs.GetByID(ctx, in.OrganizationID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.guard.CheckLimits(ctx, in.OrganizationID, tenant.LimitUsers); err != nil {
		return nil, err
	}
	existing, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:             uuid.New().String(),
		OrganizationID: in.OrganizationID,
		Email:          in.Email,
		PasswordHash:   string(hash),
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Role:           entity.RolePending,
		Status:         entity.UserStatusPendingApproval,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
// Una cuenta pendiente de aprobación puede iniciar sesión (la UI muestra el
// estado de espera); una suspendida, rechazada o desactivada no.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (string, *entity.User, error) {
	user, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return "", nil, domain.ErrUnauthenticated
	}
	if !user.IsActive || user.Status == entity.UserStatusSuspended || user.Status == entity.UserStatusRejected {
		return "", nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.OrganizationID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
