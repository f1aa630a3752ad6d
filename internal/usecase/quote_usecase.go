package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"orcafacil/internal/domain/entities"
	"orcafacil/internal/events"
	"orcafacil/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuoteStatus  = errors.New("invalid quote status")
	ErrInvalidQuoteCliente = errors.New("invalid quote cliente")
)

// IQuoteUseCase exposes the quote lifecycle operations the notification core
// collaborates with. UpdateStatus is the publisher half of the decoupling:
// it persists the transition and emits quote.status.changed on the bus instead
// of calling the notification subsystem directly.

type IQuoteUseCase interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error)
}

type QuoteUseCase struct {
	repo interfaces.IQuoteRepository
	bus  *events.Bus
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, bus *events.Bus) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, bus: bus}
}

func (u *QuoteUseCase) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	if strings.TrimSpace(q.ClienteID) == "" {
		return entities.Quote{}, ErrInvalidQuoteCliente
	}
	if q.Status == "" {
		q.Status = entities.QuoteStatusPendente
	}
	if !isKnownQuoteStatus(q.Status) {
		return entities.Quote{}, ErrInvalidQuoteStatus
	}

	now := time.Now().UTC()
	q.ID = uuid.NewString()
	if q.DataEmissao.IsZero() {
		q.DataEmissao = now
	}
	q.CreatedAt = now
	q.UpdatedAt = now
	return u.repo.Create(ctx, q)
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

// UpdateStatus persists the transition and then publishes it. Emit blocks
// until every subscriber settled, so by the time the handler returns, the
// event-driven side effects (generation/retraction) already ran.
func (u *QuoteUseCase) UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	if !isKnownQuoteStatus(status) {
		return entities.Quote{}, ErrInvalidQuoteStatus
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if current.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	events.Emit(ctx, u.bus, events.QuoteStatusChangedEvent, events.QuoteStatusChanged{
		QuoteID:        updated.ID,
		PreviousStatus: string(current.Status),
		NewStatus:      string(updated.Status),
	})
	return updated, nil
}

func isKnownQuoteStatus(s entities.QuoteStatus) bool {
	switch s {
	case entities.QuoteStatusPendente, entities.QuoteStatusAceito, entities.QuoteStatusRejeitado, entities.QuoteStatusCancelado:
		return true
	}
	return false
}
