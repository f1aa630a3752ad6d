package response

import (
	"time"

	"orcafacil/internal/domain/entities"
)

type QuoteItemResponse struct {
	Descricao string `json:"descricao"`
}

type QuoteResponse struct {
	ID          string              `json:"id"`
	Numero      string              `json:"numero"`
	ClienteID   string              `json:"clienteId"`
	ClienteNome string              `json:"clienteNome"`
	Status      string              `json:"status"`
	DataEmissao time.Time           `json:"dataEmissao"`
	DataAceite  *time.Time          `json:"dataAceite,omitempty"`
	Itens       []QuoteItemResponse `json:"itens"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	itens := make([]QuoteItemResponse, 0, len(q.Itens))
	for _, item := range q.Itens {
		itens = append(itens, QuoteItemResponse{Descricao: item.Descricao})
	}
	return QuoteResponse{
		ID:          q.ID,
		Numero:      q.Numero,
		ClienteID:   q.ClienteID,
		ClienteNome: q.ClienteNome,
		Status:      string(q.Status),
		DataEmissao: q.DataEmissao,
		DataAceite:  q.DataAceite,
		Itens:       itens,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}
