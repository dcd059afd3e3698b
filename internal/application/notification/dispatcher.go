package notification

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/care-pro/internal/domain"
	"github.com/tu-usuario/care-pro/internal/domain/entity"
	"github.com/tu-usuario/care-pro/internal/domain/repository"
	"github.com/tu-usuario/care-pro/pkg/logger"
)

// Message contenido común de un despacho fan-out.
type Message struct {
	Type          string
	Title         string
	Body          string
	BeneficiaryID *string
	Metadata      map[string]string
}

// Dispatcher crea notificaciones internas como efecto secundario de las
// transiciones del ciclo de vida. Es best-effort por contrato: el cambio de
// estado del expediente es la fuente de verdad y ya está confirmado cuando se
// despacha; un fallo aquí se registra y se traga, nunca revierte la transición.
type Dispatcher struct {
	repo repository.NotificationRepository
	log  *logger.Logger
}

// NewDispatcher construye el despachador.
func NewDispatcher(repo repository.NotificationRepository, log *logger.Logger) *Dispatcher {
	return &Dispatcher{repo: repo, log: log}
}

// Dispatch crea un registro por receptor con el mismo contenido y estado de
// lectura independiente. Devuelve los registros que sí se crearon.
func (d *Dispatcher) Dispatch(ctx context.Context, sender *entity.User, receivers []*entity.User, msg Message) []*entity.Notification {
	var created []*entity.Notification
	now := time.Now()
	for _, r := range receivers {
		if r == nil || r.ID == sender.ID {
			continue
		}
		n := &entity.Notification{
			ID:             uuid.New().String(),
			OrganizationID: sender.OrganizationID,
			Type:           msg.Type,
			Title:          msg.Title,
			Message:        msg.Body,
			SenderID:       sender.ID,
			ReceiverID:     r.ID,
			BeneficiaryID:  msg.BeneficiaryID,
			Status:         entity.NotificationUnread,
			Metadata:       msg.Metadata,
			CreatedAt:      now,
		}
		if err := d.repo.Create(ctx, n); err != nil {
			d.log.Error().Err(err).
				Str("receiver_id", r.ID).
				Str("type", msg.Type).
				Msg("despacho de notificación falló; se ignora")
			continue
		}
		created = append(created, n)
	}
	return created
}

// UseCase operaciones de buzón del receptor.
type UseCase struct {
	repo repository.NotificationRepository
}

// NewUseCase construye el caso de uso de notificaciones.
func NewUseCase(repo repository.NotificationRepository) *UseCase {
	return &UseCase{repo: repo}
}

// List devuelve las notificaciones recibidas por el principal, más recientes
// primero. Solo ve las suyas: el filtro por receptor es parte de la consulta.
func (uc *UseCase) List(ctx context.Context, u *entity.User, unreadOnly bool, limit, offset int) ([]*entity.Notification, error) {
	if u == nil {
		return nil, domain.ErrUnauthenticated
	}
	return uc.repo.ListByReceiver(ctx, u.OrganizationID, u.ID, unreadOnly, limit, offset)
}

// MarkRead marca como leída una notificación propia. Es idempotente: repetir
// la llamada sobre una ya leída no es error. Un principal distinto del
// receptor recibe ErrForbidden (se carga el registro y se compara receiver_id).
func (uc *UseCase) MarkRead(ctx context.Context, u *entity.User, id string) (*entity.Notification, error) {
	if u == nil {
		return nil, domain.ErrUnauthenticated
	}
	n, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, domain.ErrNotFound
	}
	if n.ReceiverID != u.ID {
		return nil, domain.ErrForbidden
	}
	if n.Status == entity.NotificationRead {
		return n, nil
	}
	now := time.Now()
	n.Status = entity.NotificationRead
	n.ReadAt = &now
	if err := uc.repo.Update(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}
