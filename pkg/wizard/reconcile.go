package wizard

import (
	"sort"

	"FoodBook-Backend/entities"

	"github.com/google/uuid"
)

// ReconcileResult partitions a recipe's ingredient rows against a newly
// selected ingredient set.
type ReconcileResult struct {
	// Keep holds existing rows whose ingredient is still selected. Their
	// quantities may still be rewritten afterwards.
	Keep []entities.IngredientRecipe
	// Create lists ingredient IDs that were selected but have no row yet.
	Create []uuid.UUID
	// Delete holds existing rows whose ingredient was deselected.
	Delete []entities.IngredientRecipe
}

// Reconcile computes which ingredient rows survive an edit, which must be
// created and which must be removed. It touches no storage, the caller
// applies the result inside a transaction. Create is sorted so the outcome
// is deterministic regardless of map iteration order upstream.
func Reconcile(newIDs []uuid.UUID, existing []entities.IngredientRecipe) ReconcileResult {
	selected := make(map[uuid.UUID]bool, len(newIDs))
	for _, id := range newIDs {
		selected[id] = true
	}

	present := make(map[uuid.UUID]bool, len(existing))
	var result ReconcileResult
	for _, row := range existing {
		present[row.IngredientID] = true
		if selected[row.IngredientID] {
			result.Keep = append(result.Keep, row)
		} else {
			result.Delete = append(result.Delete, row)
		}
	}

	for id := range selected {
		if !present[id] {
			result.Create = append(result.Create, id)
		}
	}
	sort.Slice(result.Create, func(i, j int) bool {
		return result.Create[i].String() < result.Create[j].String()
	})

	return result
}
