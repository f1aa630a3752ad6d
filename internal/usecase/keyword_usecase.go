package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"orcafacil/internal/domain/entities"
	"orcafacil/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrKeywordNotFound      = errors.New("keyword not found")
	ErrInvalidKeywordID     = errors.New("invalid keyword id")
	ErrInvalidPalavra       = errors.New("invalid palavra")
	ErrInvalidDiasExpiracao = errors.New("invalid dias expiracao")
)

// IKeywordUseCase maintains the keyword dictionary consumed by the generator.

type IKeywordUseCase interface {
	Create(ctx context.Context, palavra string, diasExpiracao int) (entities.Keyword, error)
	List(ctx context.Context) ([]entities.Keyword, error)
	SetAtiva(ctx context.Context, id string, ativa bool) (entities.Keyword, error)
}

type KeywordUseCase struct {
	repo interfaces.IKeywordRepository
}

var _ IKeywordUseCase = (*KeywordUseCase)(nil)

func NewKeywordUseCase(repo interfaces.IKeywordRepository) *KeywordUseCase {
	return &KeywordUseCase{repo: repo}
}

func (u *KeywordUseCase) Create(ctx context.Context, palavra string, diasExpiracao int) (entities.Keyword, error) {
	palavra = strings.TrimSpace(palavra)
	if palavra == "" {
		return entities.Keyword{}, ErrInvalidPalavra
	}
	if diasExpiracao < entities.KeywordMinDiasExpiracao || diasExpiracao > entities.KeywordMaxDiasExpiracao {
		return entities.Keyword{}, ErrInvalidDiasExpiracao
	}

	k := entities.Keyword{
		ID:            uuid.NewString(),
		Palavra:       palavra,
		DiasExpiracao: diasExpiracao,
		Ativa:         true,
		CreatedAt:     time.Now().UTC(),
	}
	return u.repo.Create(ctx, k)
}

func (u *KeywordUseCase) List(ctx context.Context) ([]entities.Keyword, error) {
	return u.repo.List(ctx)
}

func (u *KeywordUseCase) SetAtiva(ctx context.Context, id string, ativa bool) (entities.Keyword, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Keyword{}, ErrInvalidKeywordID
	}

	k, err := u.repo.SetAtiva(ctx, id, ativa)
	if err != nil {
		return entities.Keyword{}, err
	}
	if k.ID == "" {
		return entities.Keyword{}, ErrKeywordNotFound
	}
	return k, nil
}
