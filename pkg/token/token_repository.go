package token

import (
	"context"
	"errors"

	"FoodBook-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	TokenRepository interface {
		GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.UserUniqueToken, error)
		Create(ctx context.Context, token *entities.UserUniqueToken) error
		Exists(ctx context.Context, token uuid.UUID) (bool, error)
		// Redeem fetches and deletes the token in one transaction. The
		// delete reports rows affected, so of two concurrent redeemers
		// exactly one gets the user id and the other ErrRecordNotFound.
		Redeem(ctx context.Context, token uuid.UUID) (uuid.UUID, error)
	}

	tokenRepository struct {
		db *gorm.DB
	}
)

func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.UserUniqueToken, error) {
	var token entities.UserUniqueToken
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *tokenRepository) Create(ctx context.Context, token *entities.UserUniqueToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

func (r *tokenRepository) Exists(ctx context.Context, token uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.UserUniqueToken{}).
		Where("token = ?", token).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *tokenRepository) Redeem(ctx context.Context, token uuid.UUID) (uuid.UUID, error) {
	var userID uuid.UUID

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var record entities.UserUniqueToken
		if err := tx.Where("token = ?", token).First(&record).Error; err != nil {
			return err
		}

		res := tx.Where("token = ?", token).Delete(&entities.UserUniqueToken{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Someone else redeemed it between the read and the delete.
			return gorm.ErrRecordNotFound
		}

		userID = record.UserID
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return userID, nil
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
