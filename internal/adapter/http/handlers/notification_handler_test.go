package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"orcafacil/internal/adapter/http/handlers/mocks"
	"orcafacil/internal/domain/entities"
	"orcafacil/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newNotificationHandler(t *testing.T) (*gomock.Controller, *mocks.MockINotificationUseCase, *mocks.MockINotificationGeneratorUseCase, *NotificationHandler) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockINotificationUseCase(ctrl)
	gen := mocks.NewMockINotificationGeneratorUseCase(ctrl)
	return ctrl, uc, gen, NewNotificationHandler(uc, gen)
}

func TestNotificationHandler_ListAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success with pagination params", func(t *testing.T) {
		ctrl, uc, _, h := newNotificationHandler(t)
		defer ctrl.Finish()

		r := gin.New()
		r.GET("/v1/notifications", h.ListAll)

		uc.EXPECT().ListAll(gomock.Any(), 5, "abc").Return(entities.PaginatedNotifications{
			Items: []entities.Notification{{
				ID:             "n-1",
				OrcamentoID:    "orc-1",
				PalavraChave:   "extintor",
				DataVencimento: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
			}},
			Total:   11,
			HasMore: true,
			Cursor:  "next",
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/notifications?page_size=5&cursor=abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body struct {
			Items []struct {
				ID string `json:"id"`
			} `json:"items"`
			Total   int64  `json:"total"`
			HasMore bool   `json:"hasMore"`
			Cursor  string `json:"cursor"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(body.Items) != 1 || body.Items[0].ID != "n-1" || body.Total != 11 || !body.HasMore || body.Cursor != "next" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("malformed page size falls back instead of failing", func(t *testing.T) {
		ctrl, uc, _, h := newNotificationHandler(t)
		defer ctrl.Finish()

		r := gin.New()
		r.GET("/v1/notifications", h.ListAll)

		uc.EXPECT().ListAll(gomock.Any(), 0, "").Return(entities.PaginatedNotifications{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/notifications?page_size=abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("usecase error maps to 500", func(t *testing.T) {
		ctrl, uc, _, h := newNotificationHandler(t)
		defer ctrl.Finish()

		r := gin.New()
		r.GET("/v1/notifications", h.ListAll)

		uc.EXPECT().ListAll(gomock.Any(), 0, "").Return(entities.PaginatedNotifications{}, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/notifications", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestNotificationHandler_WindowedLists(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("active forwards the days param", func(t *testing.T) {
		ctrl, uc, _, h := newNotificationHandler(t)
		defer ctrl.Finish()

		r := gin.New()
		r.GET("/v1/notifications/active", h.ListActive)

		uc.EXPECT().ListActive(gomock.Any(), 15, 0, "").Return(entities.PaginatedNotifications{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/notifications/active?days=15", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("upcoming forwards the days param", func(t *testing.T) {
		ctrl, uc, _, h := newNotificationHandler(t)
		defer ctrl.Finish()

		r := gin.New()
		r.GET("/v1/notifications/upcoming", h.ListUpcoming)

		uc.EXPECT().ListUpcoming(gomock.Any(), 7, 3, "").Return(entities.PaginatedNotifications{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/notifications/upcoming?days=7&page_size=3", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unread and overdue delegate", func(t *testing.T) {
		ctrl, uc, _, h := newNotificationHandler(t)
		defer ctrl.Finish()

		r := gin.New()
		r.GET("/v1/notifications/unread", h.ListUnread)
		r.GET("/v1/notifications/overdue", h.ListOverdue)

		uc.EXPECT().ListUnread(gomock.Any(), 0, "").Return(entities.PaginatedNotifications{}, nil)
		uc.EXPECT().ListOverdue(gomock.Any(), 0, "").Return(entities.PaginatedNotifications{}, nil)

		for _, path := range []string{"/v1/notifications/unread", "/v1/notifications/overdue"} {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Fatalf("%s: expected 200, got %d", path, w.Code)
			}
		}
	})
}

func TestNotificationHandler_MarkRead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl, uc, _, h := newNotificationHandler(t)
		defer ctrl.Finish()

		r := gin.New()
		r.PATCH("/v1/notifications/:id/read", h.MarkRead)

		uc.EXPECT().MarkRead(gomock.Any(), "n-404").Return(entities.Notification{}, usecase.ErrNotificationNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/notifications/n-404/read", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl, uc, _, h := newNotificationHandler(t)
		defer ctrl.Finish()

		r := gin.New()
		r.PATCH("/v1/notifications/:id/read", h.MarkRead)

		uc.EXPECT().MarkRead(gomock.Any(), "n-1").Return(entities.Notification{ID: "n-1", Lida: true}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/notifications/n-1/read", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body struct {
			Lida bool `json:"lida"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if !body.Lida {
			t.Fatalf("expected lida=true in response")
		}
	})
}

func TestNotificationHandler_MarkAllRead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl, uc, _, h := newNotificationHandler(t)
	defer ctrl.Finish()

	r := gin.New()
	r.PATCH("/v1/notifications/read-all", h.MarkAllRead)

	uc.EXPECT().MarkAllRead(gomock.Any()).Return(4, nil)

	req := httptest.NewRequest(http.MethodPatch, "/v1/notifications/read-all", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Marcadas int `json:"marcadas"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body.Marcadas != 4 {
		t.Fatalf("expected 4 marked, got %d", body.Marcadas)
	}
}

func TestNotificationHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl, uc, _, h := newNotificationHandler(t)
		defer ctrl.Finish()

		r := gin.New()
		r.DELETE("/v1/notifications/:id", h.Delete)

		uc.EXPECT().Delete(gomock.Any(), "n-404").Return(usecase.ErrNotificationNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/notifications/n-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success is 204", func(t *testing.T) {
		ctrl, uc, _, h := newNotificationHandler(t)
		defer ctrl.Finish()

		r := gin.New()
		r.DELETE("/v1/notifications/:id", h.Delete)

		uc.EXPECT().Delete(gomock.Any(), "n-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/notifications/n-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestNotificationHandler_GenerateForQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("quote not found", func(t *testing.T) {
		ctrl, _, gen, h := newNotificationHandler(t)
		defer ctrl.Finish()

		r := gin.New()
		r.POST("/v1/notifications/generate/:id", h.GenerateForQuote)

		gen.EXPECT().GenerateForQuote(gomock.Any(), "orc-404").Return(nil, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/notifications/generate/orc-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl, _, gen, h := newNotificationHandler(t)
		defer ctrl.Finish()

		r := gin.New()
		r.POST("/v1/notifications/generate/:id", h.GenerateForQuote)

		gen.EXPECT().GenerateForQuote(gomock.Any(), "orc-1").Return([]entities.Notification{
			{ID: "n-1", OrcamentoID: "orc-1", PalavraChave: "extintor"},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/notifications/generate/orc-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestNotificationHandler_ProcessAllAccepted(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl, _, gen, h := newNotificationHandler(t)
	defer ctrl.Finish()

	r := gin.New()
	r.POST("/v1/notifications/process-all", h.ProcessAllAccepted)

	gen.EXPECT().ProcessAllAccepted(gomock.Any()).Return(usecase.ProcessAllResult{Processed: 3, Created: 2}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/notifications/process-all", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Processados int `json:"processados"`
		Criadas     int `json:"criadas"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body.Processados != 3 || body.Criadas != 2 {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestNotificationHandler_Summary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl, uc, _, h := newNotificationHandler(t)
	defer ctrl.Finish()

	r := gin.New()
	r.GET("/v1/notifications/summary", h.Summary)

	uc.EXPECT().Summary(gomock.Any()).Return(entities.NotificationSummary{
		Total: 10, NaoLidas: 4, Vencidas: 2, Proximas: 3, Ativas: 1,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/notifications/summary", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Total    int64 `json:"total"`
		NaoLidas int64 `json:"naoLidas"`
		Vencidas int64 `json:"vencidas"`
		Proximas int64 `json:"proximas"`
		Ativas   int64 `json:"ativas"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body.Total != 10 || body.NaoLidas != 4 || body.Vencidas != 2 || body.Proximas != 3 || body.Ativas != 1 {
		t.Fatalf("unexpected body: %+v", body)
	}
}
