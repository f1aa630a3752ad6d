package interfaces

import (
	"context"

	"orcafacil/internal/domain/entities"
)

// NotificationScope selects one of the filtered views over notifications.
type NotificationScope string

const (
	ScopeAll      NotificationScope = "all"
	ScopeUnread   NotificationScope = "unread"
	ScopeOverdue  NotificationScope = "overdue"
	ScopeActive   NotificationScope = "active"
	ScopeUpcoming NotificationScope = "upcoming"
)

// NotificationFilter is the single query primitive behind the five listing
// views. WindowDays only applies to ScopeActive and ScopeUpcoming:
//
//	all      — no predicate
//	unread   — lida = false
//	overdue  — data_vencimento < today 00:00 UTC
//	active   — lida = false AND data_vencimento <= today + WindowDays
//	upcoming — today <= data_vencimento <= today + WindowDays
type NotificationFilter struct {
	Scope      NotificationScope
	WindowDays int
}

// INotificationRepository abstracts DynamoDB persistence for Notification.
//
// Contract points the generator and read paths rely on:
//   - CreateBatch is all-or-nothing; on failure no record was written.
//   - Paginate orders by data_vencimento ascending and resumes after the
//     record referenced by the opaque cursor. A cursor whose record no longer
//     exists restarts from the beginning of the ordered set.
//   - Count runs independently of the page under the same filter and is only
//     approximate under concurrent writes.

type INotificationRepository interface {
	Create(ctx context.Context, n entities.Notification) (entities.Notification, error)
	CreateBatch(ctx context.Context, ns []entities.Notification) ([]entities.Notification, error)
	GetByID(ctx context.Context, id string) (entities.Notification, error)
	ExistsByTriple(ctx context.Context, orcamentoID, itemDescricao, palavraChave string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	DeleteByQuoteID(ctx context.Context, quoteID string) (int, error)
	MarkRead(ctx context.Context, id string) (entities.Notification, error)
	MarkAllRead(ctx context.Context) (int, error)
	Count(ctx context.Context, f NotificationFilter) (int64, error)
	Find(ctx context.Context, f NotificationFilter) ([]entities.Notification, error)
	Paginate(ctx context.Context, f NotificationFilter, pageSize int, cursor string) (entities.PaginatedNotifications, error)
}
