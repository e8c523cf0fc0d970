package user

import (
	"context"

	"FoodBook-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	UserRepository interface {
		Create(ctx context.Context, user *entities.User) error
		GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
		GetByUsername(ctx context.Context, username string) (*entities.User, error)
		GetByEmail(ctx context.Context, email string) (*entities.User, error)
		Update(ctx context.Context, user *entities.User) error
		Delete(ctx context.Context, id uuid.UUID) error
		CountOwnedContent(ctx context.Context, userID uuid.UUID) (recipes, schedules, comments int64, err error)
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Comments, likes, tokens and schedule memberships go with the user,
	// recipes/ingredients/schedules stay with creator nulled. The FK rules
	// handle that on postgres; the explicit deletes keep sqlite test
	// databases consistent as well.
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&entities.UserUniqueToken{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&entities.CommentRecipe{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&entities.RecipeLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&entities.ScheduleLike{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&entities.Recipe{}).Where("create_by_id = ?", id).
			Update("create_by_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&entities.Ingredient{}).Where("create_by_id = ?", id).
			Update("create_by_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&entities.Schedule{}).Where("create_by_id = ?", id).
			Update("create_by_id", nil).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.User{}).Error
	})
}

func (r *userRepository) CountOwnedContent(ctx context.Context, userID uuid.UUID) (int64, int64, int64, error) {
	var recipes, schedules, comments int64

	if err := r.db.WithContext(ctx).Model(&entities.Recipe{}).
		Where("create_by_id = ?", userID).Count(&recipes).Error; err != nil {
		return 0, 0, 0, err
	}
	if err := r.db.WithContext(ctx).Model(&entities.Schedule{}).
		Where("create_by_id = ?", userID).Count(&schedules).Error; err != nil {
		return 0, 0, 0, err
	}
	if err := r.db.WithContext(ctx).Model(&entities.CommentRecipe{}).
		Where("user_id = ?", userID).Count(&comments).Error; err != nil {
		return 0, 0, 0, err
	}

	return recipes, schedules, comments, nil
}
