package usecase

import (
	"context"
	"errors"
	"testing"

	"orcafacil/internal/domain/entities"
	mock_interfaces "orcafacil/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestKeywordUseCase_Create(t *testing.T) {
	t.Run("empty palavra", func(t *testing.T) {
		uc := NewKeywordUseCase(nil)
		_, err := uc.Create(context.Background(), "   ", 365)
		if !errors.Is(err, ErrInvalidPalavra) {
			t.Fatalf("expected ErrInvalidPalavra, got %v", err)
		}
	})

	t.Run("dias expiracao below minimum", func(t *testing.T) {
		uc := NewKeywordUseCase(nil)
		_, err := uc.Create(context.Background(), "extintor", 0)
		if !errors.Is(err, ErrInvalidDiasExpiracao) {
			t.Fatalf("expected ErrInvalidDiasExpiracao, got %v", err)
		}
	})

	t.Run("dias expiracao above maximum", func(t *testing.T) {
		uc := NewKeywordUseCase(nil)
		_, err := uc.Create(context.Background(), "extintor", entities.KeywordMaxDiasExpiracao+1)
		if !errors.Is(err, ErrInvalidDiasExpiracao) {
			t.Fatalf("expected ErrInvalidDiasExpiracao, got %v", err)
		}
	})

	t.Run("success trims and activates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIKeywordRepository(ctrl)
		uc := NewKeywordUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Keyword{})).DoAndReturn(
			func(_ context.Context, k entities.Keyword) (entities.Keyword, error) {
				if k.ID == "" || k.Palavra != "extintor" || k.DiasExpiracao != 365 || !k.Ativa {
					t.Fatalf("unexpected keyword: %+v", k)
				}
				if k.CreatedAt.IsZero() {
					t.Fatalf("expected created at timestamp")
				}
				return k, nil
			},
		)

		k, err := uc.Create(context.Background(), " extintor ", 365)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if k.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestKeywordUseCase_SetAtiva(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewKeywordUseCase(nil)
		_, err := uc.SetAtiva(context.Background(), "  ", false)
		if !errors.Is(err, ErrInvalidKeywordID) {
			t.Fatalf("expected ErrInvalidKeywordID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIKeywordRepository(ctrl)
		uc := NewKeywordUseCase(repo)

		repo.EXPECT().SetAtiva(gomock.Any(), "kw-404", false).Return(entities.Keyword{}, nil)

		_, err := uc.SetAtiva(context.Background(), "kw-404", false)
		if !errors.Is(err, ErrKeywordNotFound) {
			t.Fatalf("expected ErrKeywordNotFound, got %v", err)
		}
	})

	t.Run("deactivate success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIKeywordRepository(ctrl)
		uc := NewKeywordUseCase(repo)

		repo.EXPECT().SetAtiva(gomock.Any(), "kw-1", false).Return(entities.Keyword{ID: "kw-1", Ativa: false}, nil)

		k, err := uc.SetAtiva(context.Background(), " kw-1 ", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if k.Ativa {
			t.Fatalf("expected keyword deactivated")
		}
	})
}

func TestKeywordUseCase_List(t *testing.T) {
	t.Run("propagates repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIKeywordRepository(ctrl)
		uc := NewKeywordUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.List(context.Background())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
