package response

import (
	"testing"
	"time"

	"orcafacil/internal/domain/entities"
	"orcafacil/internal/usecase"
)

func TestFromNotification(t *testing.T) {
	emissao := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	vencimento := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	n := entities.Notification{
		ID:                   "n-1",
		OrcamentoID:          "orc-1",
		OrcamentoNumero:      "2025-0001",
		OrcamentoDataEmissao: emissao,
		ClienteID:            "cli-1",
		ClienteNome:          "Condominio Aurora",
		ItemDescricao:        "Extintor ABC 6kg",
		PalavraChave:         "extintor",
		DataVencimento:       vencimento,
		Lida:                 true,
	}

	res := FromNotification(n)
	if res.ID != "n-1" || res.OrcamentoID != "orc-1" || res.OrcamentoNumero != "2025-0001" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.ClienteID != "cli-1" || res.ClienteNome != "Condominio Aurora" {
		t.Fatalf("unexpected cliente fields: %+v", res)
	}
	if res.ItemDescricao != "Extintor ABC 6kg" || res.PalavraChave != "extintor" || !res.Lida {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if !res.OrcamentoDataEmissao.Equal(emissao) || !res.DataVencimento.Equal(vencimento) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromPaginatedNotifications(t *testing.T) {
	p := entities.PaginatedNotifications{
		Items:   []entities.Notification{{ID: "n-1"}, {ID: "n-2"}},
		Total:   7,
		HasMore: true,
		Cursor:  "abc",
	}

	res := FromPaginatedNotifications(p)
	if len(res.Items) != 2 || res.Items[0].ID != "n-1" || res.Items[1].ID != "n-2" {
		t.Fatalf("unexpected items: %+v", res.Items)
	}
	if res.Total != 7 || !res.HasMore || res.Cursor != "abc" {
		t.Fatalf("unexpected page fields: %+v", res)
	}

	empty := FromPaginatedNotifications(entities.PaginatedNotifications{})
	if empty.Items == nil {
		t.Fatalf("expected empty slice, not nil, so the json field stays an array")
	}
}

func TestFromProcessAllResult(t *testing.T) {
	res := FromProcessAllResult(usecase.ProcessAllResult{Processed: 5, Created: 3})
	if res.Processados != 5 || res.Criadas != 3 {
		t.Fatalf("unexpected mapping: %+v", res)
	}
}
