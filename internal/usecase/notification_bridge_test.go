package usecase

import (
	"context"
	"errors"
	"testing"

	"orcafacil/internal/domain/entities"
	"orcafacil/internal/events"

	"go.uber.org/mock/gomock"
)

func emitStatusChange(bus *events.Bus, quoteID, prev, next string) {
	events.Emit(context.Background(), bus, events.QuoteStatusChangedEvent, events.QuoteStatusChanged{
		QuoteID:        quoteID,
		PreviousStatus: prev,
		NewStatus:      next,
	})
}

func TestRegisterNotificationBridge(t *testing.T) {
	t.Run("transition into aceito triggers generation", func(t *testing.T) {
		ctrl, quotes, keywords, notifs := newGeneratorMocks(t)
		defer ctrl.Finish()
		gen := NewNotificationGeneratorUseCase(quotes, keywords, notifs)

		bus := events.NewBus()
		RegisterNotificationBridge(bus, gen)

		quotes.EXPECT().GetByID(gomock.Any(), "orc-1").Return(entities.Quote{
			ID:     "orc-1",
			Status: entities.QuoteStatusAceito,
		}, nil)
		keywords.EXPECT().FindActive(gomock.Any()).Return(nil, nil)

		emitStatusChange(bus, "orc-1", "pendente", "aceito")
	})

	t.Run("transition out of aceito retracts read and unread", func(t *testing.T) {
		ctrl, quotes, keywords, notifs := newGeneratorMocks(t)
		defer ctrl.Finish()
		gen := NewNotificationGeneratorUseCase(quotes, keywords, notifs)

		bus := events.NewBus()
		RegisterNotificationBridge(bus, gen)

		notifs.EXPECT().DeleteByQuoteID(gomock.Any(), "orc-1").Return(2, nil)

		emitStatusChange(bus, "orc-1", "aceito", "cancelado")
	})

	t.Run("transition between non aceito states is a no-op", func(t *testing.T) {
		ctrl, quotes, keywords, notifs := newGeneratorMocks(t)
		defer ctrl.Finish()
		gen := NewNotificationGeneratorUseCase(quotes, keywords, notifs)

		bus := events.NewBus()
		RegisterNotificationBridge(bus, gen)

		emitStatusChange(bus, "orc-1", "pendente", "rejeitado")
	})

	t.Run("aceito to aceito is a no-op", func(t *testing.T) {
		ctrl, quotes, keywords, notifs := newGeneratorMocks(t)
		defer ctrl.Finish()
		gen := NewNotificationGeneratorUseCase(quotes, keywords, notifs)

		bus := events.NewBus()
		RegisterNotificationBridge(bus, gen)

		emitStatusChange(bus, "orc-1", "aceito", "aceito")
	})

	t.Run("generation failure is contained", func(t *testing.T) {
		ctrl, quotes, keywords, notifs := newGeneratorMocks(t)
		defer ctrl.Finish()
		gen := NewNotificationGeneratorUseCase(quotes, keywords, notifs)

		bus := events.NewBus()
		RegisterNotificationBridge(bus, gen)

		quotes.EXPECT().GetByID(gomock.Any(), "orc-1").Return(entities.Quote{}, errors.New("db"))

		emitStatusChange(bus, "orc-1", "pendente", "aceito")
	})

	t.Run("unsubscribe detaches the bridge", func(t *testing.T) {
		ctrl, quotes, keywords, notifs := newGeneratorMocks(t)
		defer ctrl.Finish()
		gen := NewNotificationGeneratorUseCase(quotes, keywords, notifs)

		bus := events.NewBus()
		off := RegisterNotificationBridge(bus, gen)
		off()

		emitStatusChange(bus, "orc-1", "pendente", "aceito")
	})
}

func TestQuoteUseCase_UpdateStatusDrivesBridge(t *testing.T) {
	t.Run("accepting a quote generates its notifications before returning", func(t *testing.T) {
		ctrl, quotes, keywords, notifs := newGeneratorMocks(t)
		defer ctrl.Finish()

		bus := events.NewBus()
		gen := NewNotificationGeneratorUseCase(quotes, keywords, notifs)
		RegisterNotificationBridge(bus, gen)
		uc := NewQuoteUseCase(quotes, bus)

		pending := entities.Quote{ID: "orc-1", ClienteID: "cli-1", Status: entities.QuoteStatusPendente}
		accepted := pending
		accepted.Status = entities.QuoteStatusAceito

		quotes.EXPECT().GetByID(gomock.Any(), "orc-1").Return(pending, nil)
		quotes.EXPECT().UpdateStatus(gomock.Any(), "orc-1", entities.QuoteStatusAceito).Return(accepted, nil)

		// Re-read by the bridge handler on the event path.
		quotes.EXPECT().GetByID(gomock.Any(), "orc-1").Return(accepted, nil)
		keywords.EXPECT().FindActive(gomock.Any()).Return(nil, nil)

		q, err := uc.UpdateStatus(context.Background(), "orc-1", entities.QuoteStatusAceito)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Status != entities.QuoteStatusAceito {
			t.Fatalf("expected aceito, got %s", q.Status)
		}
	})
}
