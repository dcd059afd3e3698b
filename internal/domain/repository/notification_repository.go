package repository

import (
	"context"

	"github.com/tu-usuario/care-pro/internal/domain/entity"
)

// NotificationRepository define el puerto de persistencia para Notification (DIP).
type NotificationRepository interface {
	Create(ctx context.Context, n *entity.Notification) error
	GetByID(ctx context.Context, id string) (*entity.Notification, error)
	Update(ctx context.Context, n *entity.Notification) error
	ListByReceiver(ctx context.Context, organizationID, receiverID string, unreadOnly bool, limit, offset int) ([]*entity.Notification, error)
}
