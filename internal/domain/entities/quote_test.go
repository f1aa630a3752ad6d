package entities

import (
	"testing"
	"time"
)

func TestQuote_ExpiryAnchor(t *testing.T) {
	fallback := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	emissao := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	aceite := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("prefers data aceite", func(t *testing.T) {
		q := Quote{DataEmissao: emissao, DataAceite: &aceite}
		if got := q.ExpiryAnchor(fallback); !got.Equal(aceite) {
			t.Fatalf("expected %v, got %v", aceite, got)
		}
	})

	t.Run("falls back to data emissao", func(t *testing.T) {
		q := Quote{DataEmissao: emissao}
		if got := q.ExpiryAnchor(fallback); !got.Equal(emissao) {
			t.Fatalf("expected %v, got %v", emissao, got)
		}
	})

	t.Run("falls back to provided time when both are missing", func(t *testing.T) {
		q := Quote{}
		if got := q.ExpiryAnchor(fallback); !got.Equal(fallback) {
			t.Fatalf("expected %v, got %v", fallback, got)
		}
	})

	t.Run("zero aceite pointer is ignored", func(t *testing.T) {
		zero := time.Time{}
		q := Quote{DataEmissao: emissao, DataAceite: &zero}
		if got := q.ExpiryAnchor(fallback); !got.Equal(emissao) {
			t.Fatalf("expected %v, got %v", emissao, got)
		}
	})
}

func TestQuote_IsAceito(t *testing.T) {
	if (Quote{Status: QuoteStatusPendente}).IsAceito() {
		t.Fatalf("pendente must not count as aceito")
	}
	if !(Quote{Status: QuoteStatusAceito}).IsAceito() {
		t.Fatalf("expected aceito")
	}
}
