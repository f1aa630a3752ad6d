package usecase

import (
	"context"
	"errors"
	"strings"

	"orcafacil/internal/domain/entities"
	"orcafacil/internal/usecase/interfaces"

	"golang.org/x/sync/errgroup"
)

var (
	ErrNotificationNotFound  = errors.New("notification not found")
	ErrInvalidNotificationID = errors.New("invalid notification id")
)

// Listing defaults. Malformed pagination input (page size or window < 1) is
// clamped to these instead of failing the read path.
const (
	DefaultPageSize           = 10
	DefaultActiveWindowDays   = 60
	DefaultUpcomingWindowDays = 30

	summaryUpcomingWindowDays = 30
	summaryActiveWindowDays   = 10
)

// INotificationUseCase is the read/admin side of the notification subsystem.
//
// The List* methods are the cursor-paginated client-facing views; the Find*
// equivalents are non-paginated and reserved for small administrative reads.

type INotificationUseCase interface {
	ListAll(ctx context.Context, pageSize int, cursor string) (entities.PaginatedNotifications, error)
	ListUnread(ctx context.Context, pageSize int, cursor string) (entities.PaginatedNotifications, error)
	ListOverdue(ctx context.Context, pageSize int, cursor string) (entities.PaginatedNotifications, error)
	ListActive(ctx context.Context, windowDays, pageSize int, cursor string) (entities.PaginatedNotifications, error)
	ListUpcoming(ctx context.Context, windowDays, pageSize int, cursor string) (entities.PaginatedNotifications, error)

	FindAll(ctx context.Context) ([]entities.Notification, error)
	FindUnread(ctx context.Context) ([]entities.Notification, error)
	FindOverdue(ctx context.Context) ([]entities.Notification, error)
	FindActive(ctx context.Context, windowDays int) ([]entities.Notification, error)
	FindUpcoming(ctx context.Context, windowDays int) ([]entities.Notification, error)

	MarkRead(ctx context.Context, id string) (entities.Notification, error)
	MarkAllRead(ctx context.Context) (int, error)
	Delete(ctx context.Context, id string) error
	Summary(ctx context.Context) (entities.NotificationSummary, error)
}

type NotificationUseCase struct {
	repo interfaces.INotificationRepository
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(repo interfaces.INotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

func (u *NotificationUseCase) ListAll(ctx context.Context, pageSize int, cursor string) (entities.PaginatedNotifications, error) {
	return u.paginate(ctx, interfaces.NotificationFilter{Scope: interfaces.ScopeAll}, pageSize, cursor)
}

func (u *NotificationUseCase) ListUnread(ctx context.Context, pageSize int, cursor string) (entities.PaginatedNotifications, error) {
	return u.paginate(ctx, interfaces.NotificationFilter{Scope: interfaces.ScopeUnread}, pageSize, cursor)
}

func (u *NotificationUseCase) ListOverdue(ctx context.Context, pageSize int, cursor string) (entities.PaginatedNotifications, error) {
	return u.paginate(ctx, interfaces.NotificationFilter{Scope: interfaces.ScopeOverdue}, pageSize, cursor)
}

func (u *NotificationUseCase) ListActive(ctx context.Context, windowDays, pageSize int, cursor string) (entities.PaginatedNotifications, error) {
	f := interfaces.NotificationFilter{
		Scope:      interfaces.ScopeActive,
		WindowDays: clampWindow(windowDays, DefaultActiveWindowDays),
	}
	return u.paginate(ctx, f, pageSize, cursor)
}

func (u *NotificationUseCase) ListUpcoming(ctx context.Context, windowDays, pageSize int, cursor string) (entities.PaginatedNotifications, error) {
	f := interfaces.NotificationFilter{
		Scope:      interfaces.ScopeUpcoming,
		WindowDays: clampWindow(windowDays, DefaultUpcomingWindowDays),
	}
	return u.paginate(ctx, f, pageSize, cursor)
}

func (u *NotificationUseCase) paginate(ctx context.Context, f interfaces.NotificationFilter, pageSize int, cursor string) (entities.PaginatedNotifications, error) {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return u.repo.Paginate(ctx, f, pageSize, strings.TrimSpace(cursor))
}

func (u *NotificationUseCase) FindAll(ctx context.Context) ([]entities.Notification, error) {
	return u.repo.Find(ctx, interfaces.NotificationFilter{Scope: interfaces.ScopeAll})
}

func (u *NotificationUseCase) FindUnread(ctx context.Context) ([]entities.Notification, error) {
	return u.repo.Find(ctx, interfaces.NotificationFilter{Scope: interfaces.ScopeUnread})
}

func (u *NotificationUseCase) FindOverdue(ctx context.Context) ([]entities.Notification, error) {
	return u.repo.Find(ctx, interfaces.NotificationFilter{Scope: interfaces.ScopeOverdue})
}

func (u *NotificationUseCase) FindActive(ctx context.Context, windowDays int) ([]entities.Notification, error) {
	return u.repo.Find(ctx, interfaces.NotificationFilter{
		Scope:      interfaces.ScopeActive,
		WindowDays: clampWindow(windowDays, DefaultActiveWindowDays),
	})
}

func (u *NotificationUseCase) FindUpcoming(ctx context.Context, windowDays int) ([]entities.Notification, error) {
	return u.repo.Find(ctx, interfaces.NotificationFilter{
		Scope:      interfaces.ScopeUpcoming,
		WindowDays: clampWindow(windowDays, DefaultUpcomingWindowDays),
	})
}

func (u *NotificationUseCase) MarkRead(ctx context.Context, id string) (entities.Notification, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Notification{}, ErrInvalidNotificationID
	}

	n, err := u.repo.MarkRead(ctx, id)
	if err != nil {
		return entities.Notification{}, err
	}
	if n.ID == "" {
		return entities.Notification{}, ErrNotificationNotFound
	}
	return n, nil
}

func (u *NotificationUseCase) MarkAllRead(ctx context.Context) (int, error) {
	return u.repo.MarkAllRead(ctx)
}

func (u *NotificationUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidNotificationID
	}

	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotificationNotFound
	}
	return nil
}

// Summary fans out the five headline counts concurrently. The numbers are
// independent reads; no cross-counter consistency is implied.
func (u *NotificationUseCase) Summary(ctx context.Context) (entities.NotificationSummary, error) {
	var s entities.NotificationSummary

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		s.Total, err = u.repo.Count(ctx, interfaces.NotificationFilter{Scope: interfaces.ScopeAll})
		return err
	})
	g.Go(func() (err error) {
		s.NaoLidas, err = u.repo.Count(ctx, interfaces.NotificationFilter{Scope: interfaces.ScopeUnread})
		return err
	})
	g.Go(func() (err error) {
		s.Vencidas, err = u.repo.Count(ctx, interfaces.NotificationFilter{Scope: interfaces.ScopeOverdue})
		return err
	})
	g.Go(func() (err error) {
		s.Proximas, err = u.repo.Count(ctx, interfaces.NotificationFilter{Scope: interfaces.ScopeUpcoming, WindowDays: summaryUpcomingWindowDays})
		return err
	})
	g.Go(func() (err error) {
		s.Ativas, err = u.repo.Count(ctx, interfaces.NotificationFilter{Scope: interfaces.ScopeActive, WindowDays: summaryActiveWindowDays})
		return err
	})

	if err := g.Wait(); err != nil {
		return entities.NotificationSummary{}, err
	}
	return s, nil
}

func clampWindow(days, def int) int {
	if days < 1 {
		return def
	}
	return days
}
