package interfaces

import (
	"context"

	"orcafacil/internal/domain/entities"
)

// IKeywordRepository abstracts DynamoDB persistence for Keyword.
//
// FindActive is the only read the notification generator performs; the rest is
// the admin surface that maintains the dictionary.

type IKeywordRepository interface {
	Create(ctx context.Context, k entities.Keyword) (entities.Keyword, error)
	List(ctx context.Context) ([]entities.Keyword, error)
	FindActive(ctx context.Context) ([]entities.Keyword, error)
	SetAtiva(ctx context.Context, id string, ativa bool) (entities.Keyword, error)
}
