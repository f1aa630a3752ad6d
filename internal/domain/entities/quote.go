package entities

import "time"

// QuoteStatus represents the lifecycle of a quote (orçamento).
//
// Domain notes:
//   - Status is stored as an opaque string; the notification core only cares
//     about the binary predicate "is aceito".
//   - Transitions are driven by client actions on the quote endpoints.

type QuoteStatus string

const (
	QuoteStatusPendente  QuoteStatus = "pendente"
	QuoteStatusAceito    QuoteStatus = "aceito"
	QuoteStatusRejeitado QuoteStatus = "rejeitado"
	QuoteStatusCancelado QuoteStatus = "cancelado"
)

// QuoteItem is one free-text line item of a quote. Only the description is
// consumed by the keyword-matching engine.
type QuoteItem struct {
	Descricao string `json:"descricao"`
}

// Quote is the quote (orçamento) persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (status-index): status
//
// DataAceite is nil until the quote is accepted; the generator falls back to
// DataEmissao (and then to "now") when anchoring expiry dates.
type Quote struct {
	ID          string      `json:"id"`
	Numero      string      `json:"numero"`
	ClienteID   string      `json:"clienteId"`
	ClienteNome string      `json:"clienteNome"`
	Status      QuoteStatus `json:"status"`
	DataEmissao time.Time   `json:"dataEmissao"`
	DataAceite  *time.Time  `json:"dataAceite,omitempty"`
	Itens       []QuoteItem `json:"itens"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// IsAceito reports whether the quote is in the accepted state.
func (q Quote) IsAceito() bool {
	return q.Status == QuoteStatusAceito
}

// ExpiryAnchor returns the date expiry windows are counted from:
// DataAceite when present, else DataEmissao, else the supplied fallback.
func (q Quote) ExpiryAnchor(fallback time.Time) time.Time {
	if q.DataAceite != nil && !q.DataAceite.IsZero() {
		return *q.DataAceite
	}
	if !q.DataEmissao.IsZero() {
		return q.DataEmissao
	}
	return fallback
}
