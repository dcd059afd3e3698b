package dto

import "time"

// RegisterRequest entrada para el registro de un usuario. El usuario nace con
// rol centinela EN_ATTENTE y estado pending_approval; un admin le asigna rol
// al aprobarlo.
type RegisterRequest struct {
	OrganizationID string `json:"organization_id" validate:"required,uuid"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	FirstName      string `json:"first_name" validate:"required,max=100"`
	LastName       string `json:"last_name" validate:"required,max=100"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ApproveUserRequest entrada para aprobar una cuenta pendiente: fija el rol.
type ApproveUserRequest struct {
	Role string `json:"role" validate:"required"`
}

// RejectUserRequest entrada para rechazar una cuenta pendiente.
type RejectUserRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID             string     `json:"id"`
	OrganizationID string     `json:"organization_id"`
	Email          string     `json:"email"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Role           string     `json:"role"`
	IsAdmin        bool       `json:"is_admin"`
	Status         string     `json:"status"`
	IsActive       bool       `json:"is_active"`
	ApprovedByID   *string    `json:"approved_by_id,omitempty"`
	ApprovedAt     *time.Time `json:"approved_at,omitempty"`
	RejectedReason string     `json:"rejected_reason,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
