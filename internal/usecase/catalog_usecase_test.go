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

func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func TestCatalogUseCase_Add(t *testing.T) {
	t.Run("invalid type", func(t *testing.T) {
		uc := NewCatalogUseCase(nil)
		_, err := uc.Add(context.Background(), "vehicle", CatalogInput{Name: "x"})
		if !errors.Is(err, ErrInvalidCatalogType) {
			t.Fatalf("expected ErrInvalidCatalogType, got %v", err)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		uc := NewCatalogUseCase(nil)
		_, err := uc.Add(context.Background(), entities.CatalogTypeProduct, CatalogInput{Name: "   "})
		if !errors.Is(err, ErrInvalidCatalogName) {
			t.Fatalf("expected ErrInvalidCatalogName, got %v", err)
		}
	})

	t.Run("derives final price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.CatalogEntry{})).DoAndReturn(
			func(_ context.Context, e entities.CatalogEntry) (entities.CatalogEntry, error) {
				if e.ID == "" || e.Type != entities.CatalogTypeProduct || e.Name != "Tinta" {
					t.Fatalf("unexpected entry: %+v", e)
				}
				if math.Abs(e.FinalPrice-2875) > 1e-9 {
					t.Fatalf("expected final price 2875, got %v", e.FinalPrice)
				}
				if e.CreatedAt.IsZero() || e.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return e, nil
			},
		)

		e, err := uc.Add(context.Background(), entities.CatalogTypeProduct, CatalogInput{
			Name: " Tinta ", Cost: 2500, MarginPercent: 15,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestCatalogUseCase_Update(t *testing.T) {
	existing := entities.CatalogEntry{
		ID: "cat-1", Type: entities.CatalogTypeLabor, Name: "Pintor",
		Cost: 100, MarginPercent: 20, FinalPrice: 120,
	}

	t.Run("empty id", func(t *testing.T) {
		uc := NewCatalogUseCase(nil)
		_, err := uc.Update(context.Background(), "  ", CatalogUpdate{})
		if !errors.Is(err, ErrInvalidCatalogID) {
			t.Fatalf("expected ErrInvalidCatalogID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.CatalogEntry{}, nil)

		_, err := uc.Update(context.Background(), "missing", CatalogUpdate{Cost: floatPtr(1)})
		if !errors.Is(err, ErrCatalogEntryNotFound) {
			t.Fatalf("expected ErrCatalogEntryNotFound, got %v", err)
		}
	})

	t.Run("cost alone recomputes with current margin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "cat-1").Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.CatalogEntry{})).DoAndReturn(
			func(_ context.Context, e entities.CatalogEntry) (entities.CatalogEntry, error) {
				if e.Cost != 200 || e.MarginPercent != 20 {
					t.Fatalf("unexpected merge: %+v", e)
				}
				if math.Abs(e.FinalPrice-240) > 1e-9 {
					t.Fatalf("expected final price 240, got %v", e.FinalPrice)
				}
				return e, nil
			},
		)

		if _, err := uc.Update(context.Background(), "cat-1", CatalogUpdate{Cost: floatPtr(200)}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("margin alone recomputes with current cost", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "cat-1").Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.CatalogEntry) (entities.CatalogEntry, error) {
				if math.Abs(e.FinalPrice-150) > 1e-9 {
					t.Fatalf("expected final price 150, got %v", e.FinalPrice)
				}
				return e, nil
			},
		)

		if _, err := uc.Update(context.Background(), "cat-1", CatalogUpdate{MarginPercent: floatPtr(50)}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("name-only update keeps final price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "cat-1").Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.CatalogEntry) (entities.CatalogEntry, error) {
				if e.Name != "Pintor sênior" || e.FinalPrice != 120 {
					t.Fatalf("unexpected entry: %+v", e)
				}
				return e, nil
			},
		)

		if _, err := uc.Update(context.Background(), "cat-1", CatalogUpdate{Name: strPtr("Pintor sênior")}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCatalogUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), "missing").Return(false, nil)

		if err := uc.Delete(context.Background(), "missing"); !errors.Is(err, ErrCatalogEntryNotFound) {
			t.Fatalf("expected ErrCatalogEntryNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), "cat-1").Return(true, nil)

		if err := uc.Delete(context.Background(), "cat-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCatalogUseCase_List(t *testing.T) {
	t.Run("invalid type", func(t *testing.T) {
		uc := NewCatalogUseCase(nil)
		if _, err := uc.List(context.Background(), ""); !errors.Is(err, ErrInvalidCatalogType) {
			t.Fatalf("expected ErrInvalidCatalogType, got %v", err)
		}
	})

	t.Run("delegates to repo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		want := []entities.CatalogEntry{{ID: "a"}, {ID: "b"}}
		repo.EXPECT().ListByType(gomock.Any(), entities.CatalogTypeTransport).Return(want, nil)

		got, err := uc.List(context.Background(), entities.CatalogTypeTransport)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(got))
		}
	})
}
