package auditing

import (
	"time"

	"github.com/tallerapp/finanzas-api/infrastructure/repository"
	"github.com/tallerapp/finanzas-api/internal/domain"
	"github.com/tallerapp/finanzas-api/pkg/log"
)

// Notifier recibe eventos de auditoría sin bloquear al emisor. Una falla
// al persistir el evento jamás se propaga al flujo de negocio.
type Notifier interface {
	Notify(event *domain.AuditEvent)
	Close()
}

type notifier struct {
	auditRepo repository.AuditRepository
	events    chan *domain.AuditEvent
	done      chan struct{}
}

func NewNotifier(auditRepo repository.AuditRepository) Notifier {
	n := &notifier{
		auditRepo: auditRepo,
		events:    make(chan *domain.AuditEvent, 256),
		done:      make(chan struct{}),
	}

	go n.run()

	return n
}

func (n *notifier) Notify(event *domain.AuditEvent) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}

	select {
	case n.events <- event:
	default:
		// Buffer lleno: se descarta el evento antes de frenar una venta
		log.L.WithField("audit_type", event.Type).Warn("Buffer de auditoría lleno; evento descartado")
	}
}

func (n *notifier) run() {
	for event := range n.events {
		if err := n.auditRepo.Insert(event); err != nil {
			log.L.WithError(err).WithField("audit_type", event.Type).
				Error("Error al persistir el evento de auditoría")
		}
	}
	close(n.done)
}

// Close drena los eventos pendientes antes de retornar.
func (n *notifier) Close() {
	close(n.events)
	<-n.done
}
