package ingredient

import (
	"context"

	"FoodBook-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	IngredientRepository interface {
		Create(ctx context.Context, ingredient *entities.Ingredient) error
		GetByID(ctx context.Context, id uuid.UUID) (*entities.Ingredient, error)
		GetByName(ctx context.Context, name string) (*entities.Ingredient, error)
		Update(ctx context.Context, ingredient *entities.Ingredient) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context, nameFilter string, createBy *uuid.UUID, page, limit int) ([]*entities.Ingredient, int64, error)
		CountRecipesUsing(ctx context.Context, id uuid.UUID) (int64, error)
	}

	ingredientRepository struct {
		db *gorm.DB
	}
)

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) Create(ctx context.Context, ingredient *entities.Ingredient) error {
	return r.db.WithContext(ctx).Create(ingredient).Error
}

func (r *ingredientRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Ingredient, error) {
	var ingredient entities.Ingredient
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *ingredientRepository) GetByName(ctx context.Context, name string) (*entities.Ingredient, error) {
	var ingredient entities.Ingredient
	if err := r.db.WithContext(ctx).Where("lower(name) = lower(?)", name).First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *ingredientRepository) Update(ctx context.Context, ingredient *entities.Ingredient) error {
	return r.db.WithContext(ctx).Save(ingredient).Error
}

func (r *ingredientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Ingredient{}).Error
}

func (r *ingredientRepository) List(ctx context.Context, nameFilter string, createBy *uuid.UUID, page, limit int) ([]*entities.Ingredient, int64, error) {
	var ingredients []*entities.Ingredient
	var count int64
	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.Ingredient{})
	if nameFilter != "" {
		query = query.Where("lower(name) LIKE lower(?)", "%"+nameFilter+"%")
	}
	if createBy != nil {
		query = query.Where("create_by_id = ?", createBy)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Order("name asc").
		Offset(offset).
		Limit(limit).
		Find(&ingredients).Error; err != nil {
		return nil, 0, err
	}

	return ingredients, count, nil
}

func (r *ingredientRepository) CountRecipesUsing(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.IngredientRecipe{}).
		Where("ingredient_id = ?", id).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
