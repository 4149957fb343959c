package usecase

import (
	"context"
	"errors"
	"testing"

	recipesentity "kitchensync_backend/internal/feature/recipes/domain/entity"
	"kitchensync_backend/internal/feature/shoppinglist/domain/entity"
)

// mockShoppingRepository is an in-memory mock of the ShoppingRepository interface.
type mockShoppingRepository struct {
	items map[string]entity.ShoppingItem

	PutErr error
}

func newMockShoppingRepository() *mockShoppingRepository {
	return &mockShoppingRepository{items: make(map[string]entity.ShoppingItem)}
}

func (m *mockShoppingRepository) List(ctx context.Context, userID uint) ([]entity.ShoppingItem, error) {
	out := make([]entity.ShoppingItem, 0, len(m.items))
	for _, it := range m.items {
		out = append(out, it)
	}
	return out, nil
}

func (m *mockShoppingRepository) Put(ctx context.Context, userID uint, item entity.ShoppingItem) error {
	if m.PutErr != nil {
		return m.PutErr
	}
	m.items[item.ID] = item
	return nil
}

func (m *mockShoppingRepository) Get(ctx context.Context, userID uint, id string) (*entity.ShoppingItem, error) {
	it, ok := m.items[id]
	if !ok {
		return nil, ErrItemNotFound
	}
	return &it, nil
}

func (m *mockShoppingRepository) Delete(ctx context.Context, userID uint, id string) error {
	if _, ok := m.items[id]; !ok {
		return ErrItemNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *mockShoppingRepository) Clear(ctx context.Context, userID uint, checkedOnly bool) error {
	for id, it := range m.items {
		if checkedOnly && !it.Checked {
			continue
		}
		delete(m.items, id)
	}
	return nil
}

// mockMissingLister is a mock implementation of the MissingLister interface.
type mockMissingLister struct {
	MissingFunc func(ctx context.Context, userID, recipeID uint) ([]recipesentity.RecipeIngredient, error)
}

func (m *mockMissingLister) Missing(ctx context.Context, userID, recipeID uint) ([]recipesentity.RecipeIngredient, error) {
	if m.MissingFunc != nil {
		return m.MissingFunc(ctx, userID, recipeID)
	}
	return nil, nil
}

func TestShoppingUsecase_Add(t *testing.T) {
	ctx := context.Background()
	repo := newMockShoppingRepository()
	uc := NewShoppingUsecase(repo, &mockMissingLister{})

	item, err := uc.Add(ctx, 1, "Milk", "Dairy", "1", "liter")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.ID == "" {
		t.Error("expected a generated UUID")
	}
	if item.Checked {
		t.Error("new items must start unchecked")
	}
	if len(repo.items) != 1 {
		t.Errorf("expected 1 stored item, got %d", len(repo.items))
	}
}

func TestShoppingUsecase_Toggle(t *testing.T) {
	ctx := context.Background()
	repo := newMockShoppingRepository()
	uc := NewShoppingUsecase(repo, &mockMissingLister{})

	item, err := uc.Add(ctx, 1, "Milk", "Dairy", "1", "liter")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	toggled, err := uc.Toggle(ctx, 1, item.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !toggled.Checked {
		t.Error("expected item to be checked after first toggle")
	}

	toggled, err = uc.Toggle(ctx, 1, item.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toggled.Checked {
		t.Error("expected item to be unchecked after second toggle")
	}

	if _, err := uc.Toggle(ctx, 1, "no-such-id"); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got: %v", err)
	}
}

func TestShoppingUsecase_Update(t *testing.T) {
	ctx := context.Background()
	repo := newMockShoppingRepository()
	uc := NewShoppingUsecase(repo, &mockMissingLister{})

	item, err := uc.Add(ctx, 1, "Milk", "Dairy", "1", "liter")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.Toggle(ctx, 1, item.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := uc.Update(ctx, 1, item.ID, "Oat Milk", "Dairy", "2", "liters")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "Oat Milk" || updated.Quantity != "2" {
		t.Errorf("unexpected item after update: %+v", updated)
	}
	if !updated.Checked {
		t.Error("update must preserve the checked state")
	}
}

func TestShoppingUsecase_Clear(t *testing.T) {
	ctx := context.Background()
	repo := newMockShoppingRepository()
	uc := NewShoppingUsecase(repo, &mockMissingLister{})

	milk, _ := uc.Add(ctx, 1, "Milk", "Dairy", "1", "liter")
	if _, err := uc.Add(ctx, 1, "Bread", "Grains", "1", "loaf"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.Toggle(ctx, 1, milk.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("checked only", func(t *testing.T) {
		if err := uc.Clear(ctx, 1, true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		items, _ := uc.List(ctx, 1)
		if len(items) != 1 || items[0].Name != "Bread" {
			t.Errorf("expected only Bread to remain, got %v", items)
		}
	})

	t.Run("everything", func(t *testing.T) {
		if err := uc.Clear(ctx, 1, false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		items, _ := uc.List(ctx, 1)
		if len(items) != 0 {
			t.Errorf("expected empty list, got %v", items)
		}
	})
}

func TestShoppingUsecase_AddMissingFromRecipe(t *testing.T) {
	ctx := context.Background()

	lister := &mockMissingLister{
		MissingFunc: func(ctx context.Context, userID, recipeID uint) ([]recipesentity.RecipeIngredient, error) {
			return []recipesentity.RecipeIngredient{
				{Name: "Carrot", Quantity: "2", Unit: "pieces"},
				{Name: "Soy Sauce", Quantity: "3", Unit: "tbsp"},
			}, nil
		},
	}

	t.Run("adds all missing ingredients", func(t *testing.T) {
		repo := newMockShoppingRepository()
		uc := NewShoppingUsecase(repo, lister)

		added, err := uc.AddMissingFromRecipe(ctx, 1, 5)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(added) != 2 {
			t.Fatalf("expected 2 added items, got %d", len(added))
		}
		for _, it := range added {
			if it.ID == "" {
				t.Error("expected a generated UUID")
			}
			if it.Category != "Other" {
				t.Errorf("expected category 'Other', got %q", it.Category)
			}
		}
	})

	t.Run("skips ingredients already on the list", func(t *testing.T) {
		repo := newMockShoppingRepository()
		uc := NewShoppingUsecase(repo, lister)

		if _, err := uc.Add(ctx, 1, "Carrot", "Produce", "1", "piece"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		added, err := uc.AddMissingFromRecipe(ctx, 1, 5)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(added) != 1 || added[0].Name != "Soy Sauce" {
			t.Errorf("expected only Soy Sauce to be added, got %v", added)
		}
	})

	t.Run("lister failure propagates", func(t *testing.T) {
		failing := &mockMissingLister{
			MissingFunc: func(ctx context.Context, userID, recipeID uint) ([]recipesentity.RecipeIngredient, error) {
				return nil, errors.New("recipe not found")
			},
		}
		uc := NewShoppingUsecase(newMockShoppingRepository(), failing)

		if _, err := uc.AddMissingFromRecipe(ctx, 1, 999); err == nil {
			t.Error("expected error but got nil")
		}
	})
}
