package entities

import "time"

// Expiry window bounds accepted for a keyword (1 day .. ~10 years).
const (
	KeywordMinDiasExpiracao = 1
	KeywordMaxDiasExpiracao = 3650
)

// Keyword (palavra-chave) maps a free-text term to an expiry window in days.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Matching against quote items is case-insensitive substring containment;
// only keywords with Ativa=true participate.
type Keyword struct {
	ID            string    `json:"id"`
	Palavra       string    `json:"palavra"`
	DiasExpiracao int       `json:"diasExpiracao"`
	Ativa         bool      `json:"ativa"`
	CreatedAt     time.Time `json:"createdAt"`
}
