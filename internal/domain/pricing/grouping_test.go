package pricing

import (
	"reflect"
	"testing"

	"gestao_facil/internal/domain/entities"
)

func names(lines []entities.BudgetLine) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Name
	}
	return out
}

func TestGroup(t *testing.T) {
	lines := []entities.BudgetLine{
		{Name: "Tinta acrílica", GroupLabel: "Materiais", TotalCost: 100, TotalPrice: 120},
		{Name: "Frete São Paulo", TotalCost: 50, TotalPrice: 60},
		{Name: "Pintura", GroupLabel: "Serviços", TotalCost: 400, TotalPrice: 500},
		{Name: "Argamassa", GroupLabel: "Materiais", TotalCost: 80, TotalPrice: 96},
		{Name: "Alvenaria", GroupLabel: "Serviços", TotalCost: 300, TotalPrice: 360},
	}

	groups := Group(lines)
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}

	if groups[0].Label != "Materiais" || groups[1].Label != "Serviços" {
		t.Fatalf("expected labels in alphabetical order, got %q %q", groups[0].Label, groups[1].Label)
	}
	if groups[2].Label != "" {
		t.Fatalf("expected ungrouped bucket last, got label %q", groups[2].Label)
	}

	if got := names(groups[0].Lines); !reflect.DeepEqual(got, []string{"Argamassa", "Tinta acrílica"}) {
		t.Fatalf("unexpected Materiais order: %v", got)
	}
	if got := names(groups[1].Lines); !reflect.DeepEqual(got, []string{"Alvenaria", "Pintura"}) {
		t.Fatalf("unexpected Serviços order: %v", got)
	}

	if groups[0].Summary.TotalCost != 180 || groups[0].Summary.TotalPrice != 216 {
		t.Fatalf("unexpected Materiais subtotal: %+v", groups[0].Summary)
	}
}

func TestGroup_Idempotent(t *testing.T) {
	lines := []entities.BudgetLine{
		{Name: "Cimento", GroupLabel: "B"},
		{Name: "Areia", GroupLabel: "A"},
		{Name: "Brita"},
		{Name: "Cal", GroupLabel: "A"},
	}

	first := Group(lines)
	second := Group(lines)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("grouping is not stable:\n%+v\n%+v", first, second)
	}
}

func TestGroup_UngroupedAlwaysLast(t *testing.T) {
	// "Aaa" would sort before the named label; the ungrouped bucket must
	// still come last.
	lines := []entities.BudgetLine{
		{Name: "Aaa"},
		{Name: "Zzz", GroupLabel: "Zona"},
	}
	groups := Group(lines)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Label != "Zona" || groups[1].Label != "" {
		t.Fatalf("expected ungrouped last, got %q then %q", groups[0].Label, groups[1].Label)
	}
}

func TestGroup_DiacriticsSorting(t *testing.T) {
	lines := []entities.BudgetLine{
		{Name: "Ímã"},
		{Name: "Janela"},
		{Name: "Isolante"},
	}
	groups := Group(lines)
	if len(groups) != 1 {
		t.Fatalf("expected single bucket, got %d", len(groups))
	}
	// pt-BR collation treats Í as I, not as a codepoint after Z.
	if got := names(groups[0].Lines); !reflect.DeepEqual(got, []string{"Ímã", "Isolante", "Janela"}) {
		t.Fatalf("unexpected diacritic ordering: %v", got)
	}
}

func TestGroup_EmptyInput(t *testing.T) {
	if groups := Group(nil); len(groups) != 0 {
		t.Fatalf("expected no groups, got %+v", groups)
	}
}
