package wizard

import (
	"testing"

	"FoodBook-Backend/entities"

	"github.com/google/uuid"
)

func row(ingredientID uuid.UUID, quantity string) entities.IngredientRecipe {
	return entities.IngredientRecipe{
		ID:           uuid.New(),
		IngredientID: ingredientID,
		Quantity:     quantity,
	}
}

func TestReconcilePartitionsRows(t *testing.T) {
	kept := uuid.New()
	removed := uuid.New()
	added := uuid.New()

	existing := []entities.IngredientRecipe{
		row(kept, "200g"),
		row(removed, "1 cup"),
	}

	result := Reconcile([]uuid.UUID{kept, added}, existing)

	if len(result.Keep) != 1 || result.Keep[0].IngredientID != kept {
		t.Errorf("expected one kept row for %s, got %v", kept, result.Keep)
	}
	if len(result.Delete) != 1 || result.Delete[0].IngredientID != removed {
		t.Errorf("expected one deleted row for %s, got %v", removed, result.Delete)
	}
	if len(result.Create) != 1 || result.Create[0] != added {
		t.Errorf("expected one created id %s, got %v", added, result.Create)
	}
}

func TestReconcileKeepsRowIdentity(t *testing.T) {
	kept := uuid.New()
	existing := []entities.IngredientRecipe{row(kept, "2 tbsp")}

	result := Reconcile([]uuid.UUID{kept}, existing)

	if len(result.Keep) != 1 {
		t.Fatalf("expected one kept row, got %d", len(result.Keep))
	}
	if result.Keep[0].ID != existing[0].ID {
		t.Error("kept row must preserve the original row id")
	}
	if len(result.Create) != 0 || len(result.Delete) != 0 {
		t.Errorf("no creates or deletes expected, got %v / %v", result.Create, result.Delete)
	}
}

func TestReconcileEmptySelectionDeletesEverything(t *testing.T) {
	existing := []entities.IngredientRecipe{
		row(uuid.New(), "1"),
		row(uuid.New(), "2"),
	}

	result := Reconcile(nil, existing)

	if len(result.Delete) != 2 {
		t.Errorf("expected both rows deleted, got %d", len(result.Delete))
	}
	if len(result.Keep) != 0 || len(result.Create) != 0 {
		t.Errorf("nothing should be kept or created, got %v / %v", result.Keep, result.Create)
	}
}

func TestReconcileCreateOrderIsDeterministic(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	first := Reconcile(ids, nil)
	second := Reconcile([]uuid.UUID{ids[2], ids[0], ids[1]}, nil)

	if len(first.Create) != 3 || len(second.Create) != 3 {
		t.Fatalf("expected three creates in both runs")
	}
	for i := range first.Create {
		if first.Create[i] != second.Create[i] {
			t.Fatalf("create order differs between runs: %v vs %v", first.Create, second.Create)
		}
	}
}
