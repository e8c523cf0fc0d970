package recipe

import (
	"context"
	"errors"
	"time"

	"FoodBook-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		GetByID(ctx context.Context, id uuid.UUID) (*entities.Recipe, error)
		List(ctx context.Context, nameFilter string, createBy *uuid.UUID, page, limit int) ([]*entities.Recipe, int64, error)
		Delete(ctx context.Context, id uuid.UUID) error
		Update(ctx context.Context, recipe *entities.Recipe) error
		GetIngredientRows(ctx context.Context, recipeID uuid.UUID) ([]entities.IngredientRecipe, error)

		Like(ctx context.Context, recipeID, userID uuid.UUID) error
		Unlike(ctx context.Context, recipeID, userID uuid.UUID) error
		IsLiked(ctx context.Context, recipeID, userID uuid.UUID) (bool, error)
		CountLikes(ctx context.Context, recipeID uuid.UUID) (int64, error)

		AddComment(ctx context.Context, comment *entities.CommentRecipe) error
		GetComments(ctx context.Context, recipeID uuid.UUID) ([]entities.CommentRecipe, error)
		GetCommentByID(ctx context.Context, id uuid.UUID) (*entities.CommentRecipe, error)
		DeleteComment(ctx context.Context, id uuid.UUID) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) List(ctx context.Context, nameFilter string, createBy *uuid.UUID, page, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64
	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.Recipe{})
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
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func (r *recipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Ingredient rows, comments, likes and schedule placements follow the
	// recipe. Explicit deletes keep sqlite test databases consistent with
	// the postgres cascade rules.
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.IngredientRecipe{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.CommentRecipe{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.RecipeLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.RecipeSchedule{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Recipe{}).Error
	})
}

func (r *recipeRepository) Update(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Save(recipe).Error
}

func (r *recipeRepository) GetIngredientRows(ctx context.Context, recipeID uuid.UUID) ([]entities.IngredientRecipe, error) {
	var rows []entities.IngredientRecipe
	if err := r.db.WithContext(ctx).
		Preload("Ingredient").
		Where("recipe_id = ?", recipeID).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *recipeRepository) Like(ctx context.Context, recipeID, userID uuid.UUID) error {
	// Likes form a set, liking twice is a no-op.
	var existing entities.RecipeLike
	err := r.db.WithContext(ctx).
		Where("recipe_id = ? AND user_id = ?", recipeID, userID).
		First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	like := entities.RecipeLike{
		ID:       uuid.New(),
		RecipeID: recipeID,
		UserID:   userID,
	}
	return r.db.WithContext(ctx).Create(&like).Error
}

func (r *recipeRepository) Unlike(ctx context.Context, recipeID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("recipe_id = ? AND user_id = ?", recipeID, userID).
		Delete(&entities.RecipeLike{}).Error
}

func (r *recipeRepository) IsLiked(ctx context.Context, recipeID, userID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeLike{}).
		Where("recipe_id = ? AND user_id = ?", recipeID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *recipeRepository) CountLikes(ctx context.Context, recipeID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeLike{}).
		Where("recipe_id = ?", recipeID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *recipeRepository) AddComment(ctx context.Context, comment *entities.CommentRecipe) error {
	if comment.DateAdded.IsZero() {
		comment.DateAdded = time.Now()
	}
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *recipeRepository) GetComments(ctx context.Context, recipeID uuid.UUID) ([]entities.CommentRecipe, error) {
	var comments []entities.CommentRecipe
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("recipe_id = ?", recipeID).
		Order("date_added desc").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *recipeRepository) GetCommentByID(ctx context.Context, id uuid.UUID) (*entities.CommentRecipe, error) {
	var comment entities.CommentRecipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *recipeRepository) DeleteComment(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.CommentRecipe{}).Error
}
