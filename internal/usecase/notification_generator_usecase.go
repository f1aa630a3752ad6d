package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"orcafacil/internal/domain/entities"
	"orcafacil/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound  = errors.New("quote not found")
	ErrInvalidQuoteID = errors.New("invalid quote id")
)

// ProcessAllResult summarizes one reconciliation sweep over accepted quotes.
type ProcessAllResult struct {
	Processed int
	Created   int
}

// INotificationGeneratorUseCase derives expiry notifications from keyword
// matches over accepted quotes.
//
// Behavior contract:
//   - GenerateForQuote is idempotent: a (quote, item, keyword) triple that
//     already produced a notification is skipped on re-runs.
//   - A quote that is not "aceito" yields an empty result and no writes.
//   - The staged batch is persisted all-or-nothing; on failure nothing was
//     created and the error propagates.

type INotificationGeneratorUseCase interface {
	GenerateForQuote(ctx context.Context, quoteID string) ([]entities.Notification, error)
	ProcessAllAccepted(ctx context.Context) (ProcessAllResult, error)
	RetractForQuote(ctx context.Context, quoteID string) (int, error)
}

type NotificationGeneratorUseCase struct {
	quotes        interfaces.IQuoteRepository
	keywords      interfaces.IKeywordRepository
	notifications interfaces.INotificationRepository
}

var _ INotificationGeneratorUseCase = (*NotificationGeneratorUseCase)(nil)

func NewNotificationGeneratorUseCase(
	quotes interfaces.IQuoteRepository,
	keywords interfaces.IKeywordRepository,
	notifications interfaces.INotificationRepository,
) *NotificationGeneratorUseCase {
	return &NotificationGeneratorUseCase{quotes: quotes, keywords: keywords, notifications: notifications}
}

func (u *NotificationGeneratorUseCase) GenerateForQuote(ctx context.Context, quoteID string) ([]entities.Notification, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, ErrInvalidQuoteID
	}

	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if q.ID == "" {
		return nil, ErrQuoteNotFound
	}

	// Policy gate, not an error: only accepted quotes generate notifications.
	if !q.IsAceito() {
		return []entities.Notification{}, nil
	}

	return u.processQuote(ctx, q)
}

// processQuote runs the matching procedure over one accepted quote.
//
// Matching is case-insensitive substring containment: "manutencao" matches
// "manutencaoPreventiva". Loose recall is intentional; do not tighten to
// word-boundary matching.
func (u *NotificationGeneratorUseCase) processQuote(ctx context.Context, q entities.Quote) ([]entities.Notification, error) {
	keywords, err := u.keywords.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	if len(keywords) == 0 {
		return []entities.Notification{}, nil
	}

	now := time.Now().UTC()
	anchor := q.ExpiryAnchor(now)

	staged := make([]entities.Notification, 0)
	seen := make(map[string]struct{})

	for _, item := range q.Itens {
		desc := strings.TrimSpace(item.Descricao)
		if desc == "" {
			continue
		}
		descLower := strings.ToLower(desc)

		for _, kw := range keywords {
			palavra := strings.TrimSpace(kw.Palavra)
			if palavra == "" {
				continue
			}
			if !strings.Contains(descLower, strings.ToLower(palavra)) {
				continue
			}

			// (quote, item, keyword) is the idempotence key: skip triples that
			// already have a notification, persisted or staged in this run.
			tripleKey := item.Descricao + "\x00" + kw.Palavra
			if _, ok := seen[tripleKey]; ok {
				continue
			}
			exists, err := u.notifications.ExistsByTriple(ctx, q.ID, item.Descricao, kw.Palavra)
			if err != nil {
				return nil, err
			}
			if exists {
				continue
			}
			seen[tripleKey] = struct{}{}

			staged = append(staged, entities.Notification{
				ID:                   uuid.NewString(),
				OrcamentoID:          q.ID,
				OrcamentoNumero:      q.Numero,
				OrcamentoDataEmissao: q.DataEmissao,
				ClienteID:            q.ClienteID,
				ClienteNome:          q.ClienteNome,
				ItemDescricao:        item.Descricao,
				PalavraChave:         kw.Palavra,
				DataVencimento:       anchor.AddDate(0, 0, kw.DiasExpiracao),
				Lida:                 false,
				CreatedAt:            now,
			})
		}
	}

	if len(staged) == 0 {
		return []entities.Notification{}, nil
	}

	created, err := u.notifications.CreateBatch(ctx, staged)
	if err != nil {
		return nil, err
	}
	log.Printf("[notificacoes][generator] created count=%d orcamento_id=%s", len(created), q.ID)
	return created, nil
}

// ProcessAllAccepted reprocesses every accepted quote sequentially. Used for
// backfill and reconciliation after failed event-driven generations, not on
// the steady-state path.
func (u *NotificationGeneratorUseCase) ProcessAllAccepted(ctx context.Context) (ProcessAllResult, error) {
	quotes, err := u.quotes.ListByStatus(ctx, entities.QuoteStatusAceito)
	if err != nil {
		return ProcessAllResult{}, err
	}

	res := ProcessAllResult{}
	for _, q := range quotes {
		created, err := u.processQuote(ctx, q)
		if err != nil {
			return ProcessAllResult{}, err
		}
		res.Processed++
		res.Created += len(created)
	}
	return res, nil
}

// RetractForQuote removes every notification of a quote, read or not. Invoked
// when the quote leaves the accepted state.
func (u *NotificationGeneratorUseCase) RetractForQuote(ctx context.Context, quoteID string) (int, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return 0, ErrInvalidQuoteID
	}
	return u.notifications.DeleteByQuoteID(ctx, quoteID)
}
