package handlers

import (
	"context"
	"errors"
	"net/http"

	request "orcafacil/internal/adapter/http/dto/request"
	response "orcafacil/internal/adapter/http/dto/response"
	"orcafacil/internal/domain/entities"
	"orcafacil/internal/usecase"
	"orcafacil/pkg"

	"github.com/gin-gonic/gin"
)

// NotificationHandler exposes the notification read/admin endpoints plus the
// two generation entry points (per-quote and full reconciliation).
//
// Notifications are never created directly over HTTP: creation happens only
// through the generator, either here or via the quote status event bridge.

type NotificationHandler struct {
	usecase   usecase.INotificationUseCase
	generator usecase.INotificationGeneratorUseCase
}

func NewNotificationHandler(uc usecase.INotificationUseCase, gen usecase.INotificationGeneratorUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc, generator: gen}
}

// ListAll godoc
// @Summary List notifications
// @Produce json
// @Param page_size query int false "page size (default 10)"
// @Param cursor query string false "opaque continuation cursor"
// @Success 200 {object} response.PaginatedNotificationsResponse
// @Router /notifications [get]
func (h *NotificationHandler) ListAll(c *gin.Context) {
	h.list(c, func(ctx context.Context, q request.ListNotificationsQuery) (entities.PaginatedNotifications, error) {
		return h.usecase.ListAll(ctx, q.PageSize, q.Cursor)
	})
}

// ListUnread godoc
// @Summary List unread notifications
// @Produce json
// @Param page_size query int false "page size (default 10)"
// @Param cursor query string false "opaque continuation cursor"
// @Success 200 {object} response.PaginatedNotificationsResponse
// @Router /notifications/unread [get]
func (h *NotificationHandler) ListUnread(c *gin.Context) {
	h.list(c, func(ctx context.Context, q request.ListNotificationsQuery) (entities.PaginatedNotifications, error) {
		return h.usecase.ListUnread(ctx, q.PageSize, q.Cursor)
	})
}

// ListOverdue godoc
// @Summary List overdue notifications
// @Produce json
// @Param page_size query int false "page size (default 10)"
// @Param cursor query string false "opaque continuation cursor"
// @Success 200 {object} response.PaginatedNotificationsResponse
// @Router /notifications/overdue [get]
func (h *NotificationHandler) ListOverdue(c *gin.Context) {
	h.list(c, func(ctx context.Context, q request.ListNotificationsQuery) (entities.PaginatedNotifications, error) {
		return h.usecase.ListOverdue(ctx, q.PageSize, q.Cursor)
	})
}

// ListActive godoc
// @Summary List unread notifications due within a look-ahead window
// @Produce json
// @Param days query int false "window in days (default 60)"
// @Param page_size query int false "page size (default 10)"
// @Param cursor query string false "opaque continuation cursor"
// @Success 200 {object} response.PaginatedNotificationsResponse
// @Router /notifications/active [get]
func (h *NotificationHandler) ListActive(c *gin.Context) {
	h.list(c, func(ctx context.Context, q request.ListNotificationsQuery) (entities.PaginatedNotifications, error) {
		return h.usecase.ListActive(ctx, q.Days, q.PageSize, q.Cursor)
	})
}

// ListUpcoming godoc
// @Summary List notifications due between today and a look-ahead window
// @Produce json
// @Param days query int false "window in days (default 30)"
// @Param page_size query int false "page size (default 10)"
// @Param cursor query string false "opaque continuation cursor"
// @Success 200 {object} response.PaginatedNotificationsResponse
// @Router /notifications/upcoming [get]
func (h *NotificationHandler) ListUpcoming(c *gin.Context) {
	h.list(c, func(ctx context.Context, q request.ListNotificationsQuery) (entities.PaginatedNotifications, error) {
		return h.usecase.ListUpcoming(ctx, q.Days, q.PageSize, q.Cursor)
	})
}

func (h *NotificationHandler) list(
	c *gin.Context,
	query func(ctx context.Context, q request.ListNotificationsQuery) (entities.PaginatedNotifications, error),
) {
	var q request.ListNotificationsQuery
	// Unparseable values fall back to zero and get clamped by the usecase;
	// malformed pagination input must not fail the read path.
	_ = c.ShouldBindQuery(&q)

	page, err := query(c.Request.Context(), q)
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPaginatedNotifications(page))
}

// MarkRead godoc
// @Summary Mark one notification as read
// @Produce json
// @Param id path string true "notification id"
// @Success 200 {object} response.NotificationResponse
// @Router /notifications/{id}/read [patch]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	n, err := h.usecase.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromNotification(n))
}

// MarkAllRead godoc
// @Summary Mark every notification as read
// @Produce json
// @Success 200 {object} response.MarkAllReadResponse
// @Router /notifications/read-all [patch]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	marked, err := h.usecase.MarkAllRead(c.Request.Context())
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.MarkAllReadResponse{Marcadas: marked})
}

// Delete godoc
// @Summary Delete one notification
// @Param id path string true "notification id"
// @Success 204
// @Router /notifications/{id} [delete]
func (h *NotificationHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// GenerateForQuote godoc
// @Summary Generate notifications for one accepted quote
// @Produce json
// @Param id path string true "quote id"
// @Success 201 {array} response.NotificationResponse
// @Router /notifications/generate/{id} [post]
func (h *NotificationHandler) GenerateForQuote(c *gin.Context) {
	created, err := h.generator.GenerateForQuote(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromNotifications(created))
}

// ProcessAllAccepted godoc
// @Summary Reprocess every accepted quote (reconciliation)
// @Produce json
// @Success 200 {object} response.ProcessAllResponse
// @Router /notifications/process-all [post]
func (h *NotificationHandler) ProcessAllAccepted(c *gin.Context) {
	res, err := h.generator.ProcessAllAccepted(c.Request.Context())
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProcessAllResult(res))
}

// Summary godoc
// @Summary Headline notification counters
// @Produce json
// @Success 200 {object} response.SummaryResponse
// @Router /notifications/summary [get]
func (h *NotificationHandler) Summary(c *gin.Context) {
	s, err := h.usecase.Summary(c.Request.Context())
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSummary(s))
}

func mapNotificationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidNotificationID), errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotificationNotFound):
		return pkg.NewDomainErrorSimple("NOTIFICATION_NOT_FOUND", "Notification not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
