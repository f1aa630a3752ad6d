package response

import (
	"time"

	"orcafacil/internal/domain/entities"
)

type KeywordResponse struct {
	ID            string    `json:"id"`
	Palavra       string    `json:"palavra"`
	DiasExpiracao int       `json:"diasExpiracao"`
	Ativa         bool      `json:"ativa"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromKeyword(k entities.Keyword) KeywordResponse {
	return KeywordResponse{
		ID:            k.ID,
		Palavra:       k.Palavra,
		DiasExpiracao: k.DiasExpiracao,
		Ativa:         k.Ativa,
		CreatedAt:     k.CreatedAt,
	}
}

func FromKeywords(ks []entities.Keyword) []KeywordResponse {
	out := make([]KeywordResponse, 0, len(ks))
	for _, k := range ks {
		out = append(out, FromKeyword(k))
	}
	return out
}
