package schedule

import (
	"context"
	"errors"

	"FoodBook-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ScheduleRepository interface {
		Create(ctx context.Context, schedule *entities.Schedule) error
		GetByID(ctx context.Context, id uuid.UUID) (*entities.Schedule, error)
		Update(ctx context.Context, schedule *entities.Schedule) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context, nameFilter string, createBy *uuid.UUID, page, limit int) ([]*entities.Schedule, int64, error)

		GetSlots(ctx context.Context, scheduleID uuid.UUID) ([]entities.RecipeSchedule, error)
		GetSlot(ctx context.Context, scheduleID uuid.UUID, dayOfWeek, mealSlot int) (*entities.RecipeSchedule, error)
		CreateSlot(ctx context.Context, slot *entities.RecipeSchedule) error
		DeleteSlot(ctx context.Context, id uuid.UUID) error

		Like(ctx context.Context, scheduleID, userID uuid.UUID) error
		Unlike(ctx context.Context, scheduleID, userID uuid.UUID) error
		IsLiked(ctx context.Context, scheduleID, userID uuid.UUID) (bool, error)
		CountLikes(ctx context.Context, scheduleID uuid.UUID) (int64, error)
	}

	scheduleRepository struct {
		db *gorm.DB
	}
)

func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) Create(ctx context.Context, schedule *entities.Schedule) error {
	return r.db.WithContext(ctx).Create(schedule).Error
}

func (r *scheduleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Schedule, error) {
	var schedule entities.Schedule
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&schedule).Error; err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepository) Update(ctx context.Context, schedule *entities.Schedule) error {
	return r.db.WithContext(ctx).Save(schedule).Error
}

func (r *scheduleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("schedule_id = ?", id).Delete(&entities.RecipeSchedule{}).Error; err != nil {
			return err
		}
		if err := tx.Where("schedule_id = ?", id).Delete(&entities.ScheduleLike{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Schedule{}).Error
	})
}

func (r *scheduleRepository) List(ctx context.Context, nameFilter string, createBy *uuid.UUID, page, limit int) ([]*entities.Schedule, int64, error) {
	var schedules []*entities.Schedule
	var count int64
	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.Schedule{})
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
		Find(&schedules).Error; err != nil {
		return nil, 0, err
	}

	return schedules, count, nil
}

func (r *scheduleRepository) GetSlots(ctx context.Context, scheduleID uuid.UUID) ([]entities.RecipeSchedule, error) {
	var slots []entities.RecipeSchedule
	if err := r.db.WithContext(ctx).
		Preload("Recipe").
		Where("schedule_id = ?", scheduleID).
		Order("day_of_week asc, meal_slot asc").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *scheduleRepository) GetSlot(ctx context.Context, scheduleID uuid.UUID, dayOfWeek, mealSlot int) (*entities.RecipeSchedule, error) {
	var slot entities.RecipeSchedule
	if err := r.db.WithContext(ctx).
		Where("schedule_id = ? AND day_of_week = ? AND meal_slot = ?", scheduleID, dayOfWeek, mealSlot).
		First(&slot).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *scheduleRepository) CreateSlot(ctx context.Context, slot *entities.RecipeSchedule) error {
	return r.db.WithContext(ctx).Create(slot).Error
}

func (r *scheduleRepository) DeleteSlot(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.RecipeSchedule{}).Error
}

func (r *scheduleRepository) Like(ctx context.Context, scheduleID, userID uuid.UUID) error {
	var existing entities.ScheduleLike
	err := r.db.WithContext(ctx).
		Where("schedule_id = ? AND user_id = ?", scheduleID, userID).
		First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	like := entities.ScheduleLike{
		ID:         uuid.New(),
		ScheduleID: scheduleID,
		UserID:     userID,
	}
	return r.db.WithContext(ctx).Create(&like).Error
}

func (r *scheduleRepository) Unlike(ctx context.Context, scheduleID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("schedule_id = ? AND user_id = ?", scheduleID, userID).
		Delete(&entities.ScheduleLike{}).Error
}

func (r *scheduleRepository) IsLiked(ctx context.Context, scheduleID, userID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.ScheduleLike{}).
		Where("schedule_id = ? AND user_id = ?", scheduleID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *scheduleRepository) CountLikes(ctx context.Context, scheduleID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.ScheduleLike{}).
		Where("schedule_id = ?", scheduleID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
