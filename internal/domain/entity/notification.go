package entity

import "time"

// Tipos de notificación interna.
const (
	NotificationArrival        = "ARRIVEE_BENEFICIAIRE" // nueva llegada en acogida
	NotificationOrientation    = "ORIENTATION"          // caso orientado a una trabajadora social
	NotificationAssignment     = "AFFECTATION"          // asignación directa
	NotificationFormCompletion = "FORMULAIRE_COMPLETE"
)

// Estados de lectura.
const (
	NotificationUnread = "unread"
	NotificationRead   = "read"
)

// Notification registro interno creado como efecto secundario de una transición
// del ciclo de vida. Un registro por receptor; el estado de lectura es
// independiente por receptor. Solo el receptor puede marcarla como leída.
type Notification struct {
	ID             string
	OrganizationID string
	Type           string
	Title          string
	Message        string
	SenderID       string
	ReceiverID     string
	BeneficiaryID  *string
	Status         string // unread, read
	Metadata       map[string]string
	CreatedAt      time.Time
	ReadAt         *time.Time
}
