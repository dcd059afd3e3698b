package entity

import "time"

// Roles integrados del sistema. Los valores son los códigos históricos de la
// asociación (francés); el conjunto es cerrado: un rol desconocido no valida.
const (
	RolePending        = "EN_ATTENTE" // centinela: registrado pero sin rol asignado
	RoleAdmin          = "ADMIN"
	RoleDirecteur      = "DIRECTEUR"
	RoleCoordinatrice  = "COORDINATRICE"
	RoleAssistante     = "ASSISTANTE_SOCIALE" // trabajadora social responsable de casos
	RoleReceptionniste = "RECEPTIONNISTE"     // acogida / primer contacto
	RolePsychologue    = "PSYCHOLOGUE"
	RoleEducatrice     = "EDUCATRICE"
	RoleAnimatrice     = "ANIMATRICE"
	RoleFormatrice     = "FORMATRICE"
	RoleComptable      = "COMPTABLE"
	RoleRessources     = "GESTIONNAIRE_RESSOURCES"
	RoleCuisiniere     = "CUISINIERE"
	RoleChauffeur      = "CHAUFFEUR"
	RoleBenevole       = "BENEVOLE"
)

// Estados de cuenta de User.
const (
	UserStatusPendingApproval = "pending_approval"
	UserStatusApproved        = "approved"
	UserStatusRejected        = "rejected"
	UserStatusSuspended       = "suspended"
)

// builtinRoles índice de roles integrados (los personalizados viven en la tabla roles).
var builtinRoles = map[string]bool{
	RolePending: true, RoleAdmin: true, RoleDirecteur: true, RoleCoordinatrice: true,
	RoleAssistante: true, RoleReceptionniste: true, RolePsychologue: true,
	RoleEducatrice: true, RoleAnimatrice: true, RoleFormatrice: true,
	RoleComptable: true, RoleRessources: true, RoleCuisiniere: true,
	RoleChauffeur: true, RoleBenevole: true,
}

// IsBuiltinRole informa si el código corresponde a un rol integrado.
func IsBuiltinRole(role string) bool {
	return builtinRoles[role]
}

// IsLeadRole informa si el rol puede orientar/asignar casos (dirección).
func IsLeadRole(role string) bool {
	return role == RoleDirecteur || role == RoleCoordinatrice
}

// User representa un principal del sistema (pertenece a una Organization).
type User struct {
	ID             string
	OrganizationID string
	Email          string
	PasswordHash   string // bcrypt hash, nunca plano en dominio después de persistir
	FirstName      string
	LastName       string
	Role           string // ver constantes Role*; puede ser el ID de un rol personalizado
	IsAdmin        bool   // override: ignora catálogo y estado de rol
	Status         string // pending_approval, approved, rejected, suspended
	IsActive       bool
	ApprovedByID   *string
	ApprovedAt     *time.Time
	RejectedReason string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CanActAsCaseworker informa si el usuario puede recibir casos: rol de
// trabajadora social, activo y con cuenta aprobada.
func (u *User) CanActAsCaseworker() bool {
	return u != nil && u.Role == RoleAssistante && u.IsActive && u.Status == UserStatusApproved
}
