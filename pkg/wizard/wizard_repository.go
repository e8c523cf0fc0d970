package wizard

import (
	"context"

	"FoodBook-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	WizardRepository interface {
		GetRecipe(ctx context.Context, id uuid.UUID) (*entities.Recipe, error)
		GetIngredientRows(ctx context.Context, recipeID uuid.UUID) ([]entities.IngredientRecipe, error)
		CountIngredients(ctx context.Context, ids []uuid.UUID) (int64, error)
		CreateRecipeGraph(ctx context.Context, recipe *entities.Recipe, rows []entities.IngredientRecipe) error
		UpdateRecipeGraph(ctx context.Context, recipe *entities.Recipe, result ReconcileResult, quantities map[uuid.UUID]string) error
	}

	wizardRepository struct {
		db *gorm.DB
	}
)

func NewWizardRepository(db *gorm.DB) WizardRepository {
	return &wizardRepository{db: db}
}

func (r *wizardRepository) GetRecipe(ctx context.Context, id uuid.UUID) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *wizardRepository) GetIngredientRows(ctx context.Context, recipeID uuid.UUID) ([]entities.IngredientRecipe, error) {
	var rows []entities.IngredientRecipe
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *wizardRepository) CountIngredients(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Ingredient{}).
		Where("id IN ?", ids).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CreateRecipeGraph writes the recipe and all its ingredient rows in one
// transaction. Either the whole recipe appears or nothing does.
func (r *wizardRepository) CreateRecipeGraph(ctx context.Context, recipe *entities.Recipe, rows []entities.IngredientRecipe) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}
		for i := range rows {
			rows[i].RecipeID = recipe.ID
			if err := tx.Create(&rows[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// UpdateRecipeGraph applies a reconciled edit: kept rows get their quantity
// rewritten, deselected rows are removed and new selections inserted, all
// atomically with the recipe fields themselves.
func (r *wizardRepository) UpdateRecipeGraph(ctx context.Context, recipe *entities.Recipe, result ReconcileResult, quantities map[uuid.UUID]string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(recipe).Error; err != nil {
			return err
		}

		for _, row := range result.Delete {
			if err := tx.Where("id = ?", row.ID).Delete(&entities.IngredientRecipe{}).Error; err != nil {
				return err
			}
		}

		for _, row := range result.Keep {
			if err := tx.Model(&entities.IngredientRecipe{}).
				Where("id = ?", row.ID).
				Update("quantity", quantities[row.IngredientID]).Error; err != nil {
				return err
			}
		}

		for _, ingredientID := range result.Create {
			row := entities.IngredientRecipe{
				ID:           uuid.New(),
				IngredientID: ingredientID,
				RecipeID:     recipe.ID,
				Quantity:     quantities[ingredientID],
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
