package request

import (
	"strings"
	"time"

	"orcafacil/internal/domain/entities"
)

type QuoteItemRequest struct {
	Descricao string `json:"descricao" binding:"required"`
}

// CreateQuoteRequest is the payload accepted by POST /quotes.
type CreateQuoteRequest struct {
	Numero      string             `json:"numero"`
	ClienteID   string             `json:"clienteId" binding:"required"`
	ClienteNome string             `json:"clienteNome"`
	DataEmissao *time.Time         `json:"dataEmissao"`
	Itens       []QuoteItemRequest `json:"itens"`
}

func (r CreateQuoteRequest) ToQuote() entities.Quote {
	itens := make([]entities.QuoteItem, 0, len(r.Itens))
	for _, item := range r.Itens {
		itens = append(itens, entities.QuoteItem{Descricao: item.Descricao})
	}

	q := entities.Quote{
		Numero:      strings.TrimSpace(r.Numero),
		ClienteID:   strings.TrimSpace(r.ClienteID),
		ClienteNome: strings.TrimSpace(r.ClienteNome),
		Itens:       itens,
	}
	if r.DataEmissao != nil {
		q.DataEmissao = *r.DataEmissao
	}
	return q
}

// UpdateQuoteStatusRequest drives PATCH /quotes/:id/status, which publishes
// the status-change event the notification bridge reacts to.
type UpdateQuoteStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
