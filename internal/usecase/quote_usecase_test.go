package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"orcafacil/internal/domain/entities"
	"orcafacil/internal/events"
	mock_interfaces "orcafacil/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestQuoteUseCase_Create(t *testing.T) {
	t.Run("missing cliente", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, events.NewBus())
		_, err := uc.Create(context.Background(), entities.Quote{ClienteID: "   "})
		if !errors.Is(err, ErrInvalidQuoteCliente) {
			t.Fatalf("expected ErrInvalidQuoteCliente, got %v", err)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, events.NewBus())
		_, err := uc.Create(context.Background(), entities.Quote{ClienteID: "cli-1", Status: "faturado"})
		if !errors.Is(err, ErrInvalidQuoteStatus) {
			t.Fatalf("expected ErrInvalidQuoteStatus, got %v", err)
		}
	})

	t.Run("defaults to pendente and stamps fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, events.NewBus())

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.ID == "" || q.Status != entities.QuoteStatusPendente {
					t.Fatalf("unexpected quote: %+v", q)
				}
				if q.DataEmissao.IsZero() || q.CreatedAt.IsZero() || q.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return q, nil
			},
		)

		q, err := uc.Create(context.Background(), entities.Quote{ClienteID: "cli-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("keeps provided emissao date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, events.NewBus())

		emissao := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if !q.DataEmissao.Equal(emissao) {
					t.Fatalf("expected emissao %v, got %v", emissao, q.DataEmissao)
				}
				return q, nil
			},
		)

		if _, err := uc.Create(context.Background(), entities.Quote{ClienteID: "cli-1", DataEmissao: emissao}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, events.NewBus())
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, events.NewBus())

		repo.EXPECT().GetByID(gomock.Any(), "orc-404").Return(entities.Quote{}, nil)

		_, err := uc.GetByID(context.Background(), "orc-404")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})
}

func TestQuoteUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, events.NewBus())
		_, err := uc.UpdateStatus(context.Background(), "orc-1", "faturado")
		if !errors.Is(err, ErrInvalidQuoteStatus) {
			t.Fatalf("expected ErrInvalidQuoteStatus, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, events.NewBus())

		repo.EXPECT().GetByID(gomock.Any(), "orc-404").Return(entities.Quote{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "orc-404", entities.QuoteStatusAceito)
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("publishes the transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		bus := events.NewBus()
		uc := NewQuoteUseCase(repo, bus)

		var got events.QuoteStatusChanged
		events.On(bus, events.QuoteStatusChangedEvent, func(_ context.Context, ev events.QuoteStatusChanged) error {
			got = ev
			return nil
		})

		repo.EXPECT().GetByID(gomock.Any(), "orc-1").Return(entities.Quote{ID: "orc-1", Status: entities.QuoteStatusPendente}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "orc-1", entities.QuoteStatusAceito).Return(entities.Quote{ID: "orc-1", Status: entities.QuoteStatusAceito}, nil)

		if _, err := uc.UpdateStatus(context.Background(), "orc-1", entities.QuoteStatusAceito); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got.QuoteID != "orc-1" || got.PreviousStatus != "pendente" || got.NewStatus != "aceito" {
			t.Fatalf("unexpected event: %+v", got)
		}
	})

	t.Run("repo update error skips publish", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		bus := events.NewBus()
		uc := NewQuoteUseCase(repo, bus)

		published := false
		events.On(bus, events.QuoteStatusChangedEvent, func(_ context.Context, _ events.QuoteStatusChanged) error {
			published = true
			return nil
		})

		repo.EXPECT().GetByID(gomock.Any(), "orc-1").Return(entities.Quote{ID: "orc-1", Status: entities.QuoteStatusPendente}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "orc-1", entities.QuoteStatusAceito).Return(entities.Quote{}, errors.New("db"))

		_, err := uc.UpdateStatus(context.Background(), "orc-1", entities.QuoteStatusAceito)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
		if published {
			t.Fatalf("expected no event on failed update")
		}
	})
}
