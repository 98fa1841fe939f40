package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"gestao_facil/internal/domain/entities"
	mock_interfaces "gestao_facil/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func sampleLines() []entities.BudgetLine {
	return []entities.BudgetLine{
		{
			SourceType: entities.CatalogTypeProduct, SourceItemID: "prod-1",
			Name: "Janela", Quantity: 2, UnitCost: 2500, MarginPercent: 15,
			GroupLabel: "Materiais",
		},
		{
			SourceType: entities.CatalogTypeLabor, SourceItemID: "lab-1",
			Name: "Instalação", Quantity: 1, UnitCost: 10000, MarginPercent: 10,
		},
	}
}

func TestBudgetUseCase_Create(t *testing.T) {
	t.Run("empty name fails without touching the repo", func(t *testing.T) {
		uc := NewBudgetUseCase(nil)
		_, err := uc.Create(context.Background(), BudgetInput{Name: "  ", Lines: sampleLines()})
		if !errors.Is(err, ErrInvalidBudgetName) {
			t.Fatalf("expected ErrInvalidBudgetName, got %v", err)
		}
	})

	t.Run("empty lines fails without touching the repo", func(t *testing.T) {
		uc := NewBudgetUseCase(nil)
		_, err := uc.Create(context.Background(), BudgetInput{Name: "Reforma"})
		if !errors.Is(err, ErrEmptyBudgetLines) {
			t.Fatalf("expected ErrEmptyBudgetLines, got %v", err)
		}
	})

	t.Run("non-positive line quantity", func(t *testing.T) {
		uc := NewBudgetUseCase(nil)
		lines := sampleLines()
		lines[0].Quantity = 0
		_, err := uc.Create(context.Background(), BudgetInput{Name: "Reforma", Lines: lines})
		if !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("derives totals and starts as draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Budget{})).DoAndReturn(
			func(_ context.Context, b entities.Budget) (entities.Budget, error) {
				if b.ID == "" || b.Status != entities.BudgetStatusDraft {
					t.Fatalf("unexpected budget: %+v", b)
				}
				if math.Abs(b.TotalCost-15000) > 1e-9 || math.Abs(b.TotalValue-16750) > 1e-9 {
					t.Fatalf("unexpected totals: %+v", b)
				}
				if math.Abs(b.TotalProfit-1750) > 1e-9 {
					t.Fatalf("unexpected profit: %v", b.TotalProfit)
				}
				if math.Abs(b.MarginPercent-11.666666666666666) > 1e-6 {
					t.Fatalf("unexpected margin percent: %v", b.MarginPercent)
				}
				for _, l := range b.Lines {
					if l.ID == "" || l.BudgetID != b.ID {
						t.Fatalf("line not normalized: %+v", l)
					}
				}
				return b, nil
			},
		)

		b, err := uc.Create(context.Background(), BudgetInput{Name: " Reforma ", ClientName: "Acme", Lines: sampleLines()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.Name != "Reforma" || b.ClientName != "Acme" {
			t.Fatalf("unexpected fields: %+v", b)
		}
	})
}

func TestBudgetUseCase_UpdateLines(t *testing.T) {
	stored := entities.Budget{ID: "bud-1", Name: "Reforma", Status: entities.BudgetStatusSent}

	t.Run("empty replacement rejected", func(t *testing.T) {
		uc := NewBudgetUseCase(nil)
		_, err := uc.UpdateLines(context.Background(), "bud-1", nil)
		if !errors.Is(err, ErrEmptyBudgetLines) {
			t.Fatalf("expected ErrEmptyBudgetLines, got %v", err)
		}
	})

	t.Run("budget not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Budget{}, nil)

		_, err := uc.UpdateLines(context.Background(), "missing", sampleLines())
		if !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})

	t.Run("replaces lines and recomputes totals atomically", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "bud-1").Return(stored, nil)
		repo.EXPECT().ReplaceLines(gomock.Any(), "bud-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, budgetID string, lines []entities.BudgetLine) ([]entities.BudgetLine, error) {
				for _, l := range lines {
					if l.BudgetID != "bud-1" || l.ID == "" {
						t.Fatalf("line not normalized: %+v", l)
					}
					if math.Abs(l.Profit-(l.TotalPrice-l.TotalCost)) > 1e-9 {
						t.Fatalf("profit invariant broken: %+v", l)
					}
				}
				return lines, nil
			},
		)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Budget) (entities.Budget, error) {
				if math.Abs(b.TotalValue-16750) > 1e-9 || math.Abs(b.TotalCost-15000) > 1e-9 {
					t.Fatalf("totals not recomputed: %+v", b)
				}
				return b, nil
			},
		)

		b, err := uc.UpdateLines(context.Background(), "bud-1", sampleLines())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(b.Lines) != 2 {
			t.Fatalf("expected replaced lines on result, got %d", len(b.Lines))
		}
	})

	t.Run("line margin edit reprices from stored unit cost", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo)

		edited := []entities.BudgetLine{{
			ID: "line-1", Name: "Janela", Quantity: 2, UnitCost: 2500, MarginPercent: 20,
			// stale computed fields supplied by the caller must be ignored
			UnitPrice: 1, TotalPrice: 1, TotalCost: 1, Profit: 1,
		}}

		repo.EXPECT().GetByID(gomock.Any(), "bud-1").Return(stored, nil)
		repo.EXPECT().ReplaceLines(gomock.Any(), "bud-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, lines []entities.BudgetLine) ([]entities.BudgetLine, error) {
				l := lines[0]
				if l.UnitCost != 2500 {
					t.Fatalf("unit cost must be untouched, got %v", l.UnitCost)
				}
				if math.Abs(l.UnitPrice-3000) > 1e-9 || math.Abs(l.TotalPrice-6000) > 1e-9 || math.Abs(l.Profit-1000) > 1e-9 {
					t.Fatalf("margin edit not repriced: %+v", l)
				}
				return lines, nil
			},
		)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Budget) (entities.Budget, error) { return b, nil },
		)

		if _, err := uc.UpdateLines(context.Background(), "bud-1", edited); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestBudgetUseCase_UpdateFields(t *testing.T) {
	stored := entities.Budget{
		ID: "bud-1", Name: "Reforma", Status: entities.BudgetStatusDraft,
		TotalValue: 16750, TotalCost: 15000, TotalProfit: 1750, MarginPercent: 11.67,
	}

	t.Run("invalid status", func(t *testing.T) {
		uc := NewBudgetUseCase(nil)
		bad := entities.BudgetStatus("arquivado")
		_, err := uc.UpdateFields(context.Background(), "bud-1", BudgetUpdate{Status: &bad})
		if !errors.Is(err, ErrInvalidBudgetStatus) {
			t.Fatalf("expected ErrInvalidBudgetStatus, got %v", err)
		}
	})

	t.Run("any status transition is allowed", func(t *testing.T) {
		transitions := []entities.BudgetStatus{
			entities.BudgetStatusSent,
			entities.BudgetStatusApproved,
			entities.BudgetStatusRejected,
			entities.BudgetStatusDraft,
		}
		for _, next := range transitions {
			ctrl := gomock.NewController(t)
			repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
			uc := NewBudgetUseCase(repo)

			from := stored
			from.Status = entities.BudgetStatusRejected
			repo.EXPECT().GetByID(gomock.Any(), "bud-1").Return(from, nil)
			repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, b entities.Budget) (entities.Budget, error) {
					if b.Status != next {
						t.Fatalf("expected status %s, got %s", next, b.Status)
					}
					// totals must ride along unchanged
					if b.TotalValue != 16750 || b.TotalCost != 15000 {
						t.Fatalf("totals must not change on field update: %+v", b)
					}
					return b, nil
				},
			)

			status := next
			if _, err := uc.UpdateFields(context.Background(), "bud-1", BudgetUpdate{Status: &status}); err != nil {
				t.Fatalf("transition to %s: unexpected error: %v", next, err)
			}
			ctrl.Finish()
		}
	})

	t.Run("notes and client update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "bud-1").Return(stored, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Budget) (entities.Budget, error) {
				if b.Notes != "pagamento em 2x" || b.ClientName != "Acme" {
					t.Fatalf("unexpected fields: %+v", b)
				}
				return b, nil
			},
		)

		_, err := uc.UpdateFields(context.Background(), "bud-1", BudgetUpdate{
			Notes: strPtr("pagamento em 2x"), ClientName: strPtr(" Acme "),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestBudgetUseCase_Clone(t *testing.T) {
	src := entities.Budget{
		ID: "bud-1", Name: "Reforma", ClientID: "cli-1", ClientName: "Acme",
		ProjectID: "proj-1", Status: entities.BudgetStatusApproved, Notes: "obs",
		Lines: []entities.BudgetLine{
			{ID: "line-1", BudgetID: "bud-1", Name: "Janela", Quantity: 2, UnitCost: 2500, MarginPercent: 15,
				UnitPrice: 2875, TotalCost: 5000, TotalPrice: 5750, Profit: 750},
		},
		TotalValue: 5750, TotalCost: 5000, TotalProfit: 750, MarginPercent: 15,
	}

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Budget{}, nil)

		if _, err := uc.Clone(context.Background(), "missing"); !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})

	t.Run("clone gets fresh identities, draft status, identical totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "bud-1").Return(src, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Budget) (entities.Budget, error) { return b, nil },
		)

		clone, err := uc.Clone(context.Background(), "bud-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if clone.ID == "" || clone.ID == src.ID {
			t.Fatalf("expected new budget id, got %q", clone.ID)
		}
		if clone.Name != "Reforma (Copy)" {
			t.Fatalf("expected suffixed name, got %q", clone.Name)
		}
		if clone.Status != entities.BudgetStatusDraft {
			t.Fatalf("expected draft status, got %s", clone.Status)
		}
		if clone.ClientID != "cli-1" || clone.ClientName != "Acme" || clone.ProjectID != "proj-1" {
			t.Fatalf("client/project refs must be preserved: %+v", clone)
		}
		if clone.TotalValue != src.TotalValue || clone.TotalCost != src.TotalCost ||
			clone.TotalProfit != src.TotalProfit || clone.MarginPercent != src.MarginPercent {
			t.Fatalf("totals must match the source: %+v", clone)
		}
		if len(clone.Lines) != 1 {
			t.Fatalf("expected 1 cloned line, got %d", len(clone.Lines))
		}
		cl := clone.Lines[0]
		sl := src.Lines[0]
		if cl.ID == sl.ID || cl.ID == "" {
			t.Fatalf("cloned line must have a fresh id, got %q", cl.ID)
		}
		if cl.BudgetID != clone.ID {
			t.Fatalf("cloned line must point at the clone, got %q", cl.BudgetID)
		}
		if cl.Quantity != sl.Quantity || cl.UnitCost != sl.UnitCost || cl.UnitPrice != sl.UnitPrice ||
			cl.TotalPrice != sl.TotalPrice || cl.Profit != sl.Profit || cl.MarginPercent != sl.MarginPercent {
			t.Fatalf("cloned line numeric fields must be identical: %+v vs %+v", cl, sl)
		}
	})
}

func TestBudgetUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), "missing").Return(false, nil)

		if err := uc.Delete(context.Background(), "missing"); !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), "bud-1").Return(true, nil)

		if err := uc.Delete(context.Background(), "bud-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestBudgetUseCase_Snapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
	uc := NewBudgetUseCase(repo)

	stored := entities.Budget{
		ID: "bud-1", Name: "Reforma", Status: entities.BudgetStatusSent,
		Lines: []entities.BudgetLine{
			{ID: "l1", Name: "Janela", GroupLabel: "Materiais", TotalCost: 5000, TotalPrice: 5750},
			{ID: "l2", Name: "Frete", TotalCost: 100, TotalPrice: 110},
		},
	}
	repo.EXPECT().GetByID(gomock.Any(), "bud-1").Return(stored, nil)

	snap, err := uc.Snapshot(context.Background(), "bud-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Budget.ID != "bud-1" {
		t.Fatalf("unexpected budget: %+v", snap.Budget)
	}
	if len(snap.Groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(snap.Groups))
	}
	if snap.Groups[0].Label != "Materiais" || snap.Groups[1].Label != "" {
		t.Fatalf("unexpected group order: %+v", snap.Groups)
	}
	if math.Abs(snap.Summary.TotalPrice-5860) > 1e-9 || math.Abs(snap.Summary.TotalCost-5100) > 1e-9 {
		t.Fatalf("unexpected summary: %+v", snap.Summary)
	}
}
