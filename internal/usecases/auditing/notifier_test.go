package auditing_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	repomocks "github.com/tallerapp/finanzas-api/infrastructure/repository/mocks"
	"github.com/tallerapp/finanzas-api/internal/domain"
	"github.com/tallerapp/finanzas-api/internal/usecases/auditing"
	"github.com/tallerapp/finanzas-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func init() {
	log.SetupTestLogger()
}

func TestNotify_PersisteElEvento(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repomocks.NewMockAuditRepository(ctrl)
	mockRepo.EXPECT().Insert(gomock.Any()).DoAndReturn(func(event *domain.AuditEvent) error {
		assert.Equal(t, domain.AuditCommissionPayout, event.Type)
		assert.False(t, event.OccurredAt.IsZero())
		return nil
	})

	notifier := auditing.NewNotifier(mockRepo)
	notifier.Notify(&domain.AuditEvent{
		Type:     domain.AuditCommissionPayout,
		ActorID:  1,
		EntityID: "42",
	})

	// Close drena la cola antes de retornar
	notifier.Close()
}

// Una falla del repositorio jamás llega al emisor
func TestNotify_FallaDelRepositorioNoSePropaga(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repomocks.NewMockAuditRepository(ctrl)
	mockRepo.EXPECT().Insert(gomock.Any()).Return(errors.New("tabla inexistente")).Times(3)

	notifier := auditing.NewNotifier(mockRepo)
	for i := 0; i < 3; i++ {
		notifier.Notify(&domain.AuditEvent{Type: domain.AuditDebitApplied})
	}
	notifier.Close()
}
