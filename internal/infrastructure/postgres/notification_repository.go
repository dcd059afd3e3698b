package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/care-pro/internal/domain/entity"
	"github.com/tu-usuario/care-pro/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

const notificationColumns = `id, organization_id, type, title, message, sender_id, receiver_id,
	beneficiary_id, status, metadata, created_at, read_at`

// NotificationRepo implementación del puerto NotificationRepository sobre PostgreSQL.
// Metadata se persiste como jsonb.
type NotificationRepo struct {
	db Querier
}

// NewNotificationRepository construye el adaptador de persistencia para notificaciones.
func NewNotificationRepository(db Querier) *NotificationRepo {
	return &NotificationRepo{db: db}
}

// Create persiste una notificación.
func (r *NotificationRepo) Create(ctx context.Context, n *entity.Notification) error {
	query := `
		INSERT INTO notifications (` + notificationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(ctx, query,
		n.ID, n.OrganizationID, n.Type, n.Title, n.Message, n.SenderID, n.ReceiverID,
		n.BeneficiaryID, n.Status, n.Metadata, n.CreatedAt, n.ReadAt,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// GetByID obtiene una notificación por ID; nil sin error si no existe.
func (r *NotificationRepo) GetByID(ctx context.Context, id string) (*entity.Notification, error) {
	var n entity.Notification
	err := r.db.QueryRow(ctx, `SELECT `+notificationColumns+` FROM notifications WHERE id = $1`, id).Scan(
		&n.ID, &n.OrganizationID, &n.Type, &n.Title, &n.Message, &n.SenderID, &n.ReceiverID,
		&n.BeneficiaryID, &n.Status, &n.Metadata, &n.CreatedAt, &n.ReadAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get notification by id: %w", err)
	}
	return &n, nil
}

// Update actualiza el estado de lectura.
func (r *NotificationRepo) Update(ctx context.Context, n *entity.Notification) error {
	_, err := r.db.Exec(ctx,
		`UPDATE notifications SET status = $2, read_at = $3 WHERE id = $1`,
		n.ID, n.Status, n.ReadAt)
	if err != nil {
		return fmt.Errorf("update notification: %w", err)
	}
	return nil
}

// ListByReceiver lista el buzón de un receptor, más recientes primero.
func (r *NotificationRepo) ListByReceiver(ctx context.Context, organizationID, receiverID string, unreadOnly bool, limit, offset int) ([]*entity.Notification, error) {
	query := `
		SELECT ` + notificationColumns + ` FROM notifications
		WHERE organization_id = $1 AND receiver_id = $2`
	if unreadOnly {
		query += ` AND status = 'unread'`
	}
	query += ` ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.db.Query(ctx, query, organizationID, receiverID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()
	var list []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		if err := rows.Scan(
			&n.ID, &n.OrganizationID, &n.Type, &n.Title, &n.Message, &n.SenderID, &n.ReceiverID,
			&n.BeneficiaryID, &n.Status, &n.Metadata, &n.CreatedAt, &n.ReadAt,
		); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}
