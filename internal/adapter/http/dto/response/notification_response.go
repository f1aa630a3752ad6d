package response

import (
	"time"

	"orcafacil/internal/domain/entities"
	"orcafacil/internal/usecase"
)

// NotificationResponse is the wire shape of a notification. Field names are
// part of the persisted-record contract and round-trip tested by clients; do
// not rename them.
type NotificationResponse struct {
	ID                   string    `json:"id"`
	OrcamentoID          string    `json:"orcamentoId"`
	OrcamentoNumero      string    `json:"orcamentoNumero"`
	OrcamentoDataEmissao time.Time `json:"orcamentoDataEmissao"`
	ClienteID            string    `json:"clienteId"`
	ClienteNome          string    `json:"clienteNome"`
	ItemDescricao        string    `json:"itemDescricao"`
	PalavraChave         string    `json:"palavraChave"`
	DataVencimento       time.Time `json:"dataVencimento"`
	Lida                 bool      `json:"lida"`
	CreatedAt            time.Time `json:"createdAt"`
}

func FromNotification(n entities.Notification) NotificationResponse {
	return NotificationResponse{
		ID:                   n.ID,
		OrcamentoID:          n.OrcamentoID,
		OrcamentoNumero:      n.OrcamentoNumero,
		OrcamentoDataEmissao: n.OrcamentoDataEmissao,
		ClienteID:            n.ClienteID,
		ClienteNome:          n.ClienteNome,
		ItemDescricao:        n.ItemDescricao,
		PalavraChave:         n.PalavraChave,
		DataVencimento:       n.DataVencimento,
		Lida:                 n.Lida,
		CreatedAt:            n.CreatedAt,
	}
}

func FromNotifications(ns []entities.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(ns))
	for _, n := range ns {
		out = append(out, FromNotification(n))
	}
	return out
}

// PaginatedNotificationsResponse is one listing page. Cursor is present iff
// HasMore; Total is best-effort and independent of Items.
type PaginatedNotificationsResponse struct {
	Items   []NotificationResponse `json:"items"`
	Total   int64                  `json:"total"`
	HasMore bool                   `json:"hasMore"`
	Cursor  string                 `json:"cursor,omitempty"`
}

func FromPaginatedNotifications(p entities.PaginatedNotifications) PaginatedNotificationsResponse {
	return PaginatedNotificationsResponse{
		Items:   FromNotifications(p.Items),
		Total:   p.Total,
		HasMore: p.HasMore,
		Cursor:  p.Cursor,
	}
}

type SummaryResponse struct {
	Total    int64 `json:"total"`
	NaoLidas int64 `json:"naoLidas"`
	Vencidas int64 `json:"vencidas"`
	Proximas int64 `json:"proximas"`
	Ativas   int64 `json:"ativas"`
}

func FromSummary(s entities.NotificationSummary) SummaryResponse {
	return SummaryResponse{
		Total:    s.Total,
		NaoLidas: s.NaoLidas,
		Vencidas: s.Vencidas,
		Proximas: s.Proximas,
		Ativas:   s.Ativas,
	}
}

type ProcessAllResponse struct {
	Processados int `json:"processados"`
	Criadas     int `json:"criadas"`
}

func FromProcessAllResult(r usecase.ProcessAllResult) ProcessAllResponse {
	return ProcessAllResponse{Processados: r.Processed, Criadas: r.Created}
}

type MarkAllReadResponse struct {
	Marcadas int `json:"marcadas"`
}
