package entities

import "time"

// Notification is a derived record meaning "this quote item needs attention by
// this date", generated from keyword matches over accepted quotes.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (orcamento_id-index): orcamento_id
//   - GSI2 (vencimento-index): constant partition, sort key data_vencimento
//
// Quote fields (numero, emissão, cliente) are denormalized at generation time
// and never re-synced. The (OrcamentoID, ItemDescricao, PalavraChave) triple is
// the idempotence key: the generator checks it before every insert.
type Notification struct {
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

// PaginatedNotifications is one page of a cursor-driven listing.
//
// Total is a best-effort cardinality of the whole filtered set, computed by an
// independent count query; it is not transactionally consistent with Items.
// Cursor is non-empty iff HasMore.
type PaginatedNotifications struct {
	Items   []Notification `json:"items"`
	Total   int64          `json:"total"`
	HasMore bool           `json:"hasMore"`
	Cursor  string         `json:"cursor,omitempty"`
}

// NotificationSummary aggregates the five headline counters shown on the
// dashboard. The numbers come from independent reads and may be mutually
// inconsistent under concurrent writes.
type NotificationSummary struct {
	Total    int64 `json:"total"`
	NaoLidas int64 `json:"naoLidas"`
	Vencidas int64 `json:"vencidas"`
	Proximas int64 `json:"proximas"`
	Ativas   int64 `json:"ativas"`
}
