package dto

import "time"

// ListNotificationsRequest filtros del buzón del receptor.
type ListNotificationsRequest struct {
	PageRequest
	UnreadOnly bool `query:"unread_only"`
}

// NotificationResponse salida de una notificación.
type NotificationResponse struct {
	ID            string            `json:"id"`
	Type          string            `json:"type"`
	Title         string            `json:"title"`
	Message       string            `json:"message"`
	SenderID      string            `json:"sender_id"`
	ReceiverID    string            `json:"receiver_id"`
	BeneficiaryID *string           `json:"beneficiary_id,omitempty"`
	Status        string            `json:"status"`
	Metadata      map[string]string `json:"metadata,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	ReadAt        *time.Time        `json:"read_at,omitempty"`
}
