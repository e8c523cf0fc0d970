package entities

import (
	"github.com/google/uuid"
)

type Schedule struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Name        string     `gorm:"size:128;not null" json:"name"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	CreateByID  *uuid.UUID `gorm:"type:uuid" json:"create_by_id,omitempty"`

	CreateBy *User            `gorm:"foreignKey:CreateByID;constraint:OnDelete:SET NULL"`
	Slots    []RecipeSchedule `gorm:"foreignKey:ScheduleID"`
	Timestamp
}

// RecipeSchedule places one recipe into a weekly plan slot. DayOfWeek is
// 1..7, MealSlot 1..5; one recipe at most per slot per schedule.
type RecipeSchedule struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ScheduleID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_schedule_slot" json:"schedule_id"`
	RecipeID   uuid.UUID `gorm:"type:uuid;not null" json:"recipe_id"`
	DayOfWeek  int       `gorm:"not null;uniqueIndex:idx_schedule_slot" json:"day_of_week"`
	MealSlot   int       `gorm:"not null;uniqueIndex:idx_schedule_slot" json:"meal_slot"`

	Schedule *Schedule `gorm:"foreignKey:ScheduleID;constraint:OnDelete:CASCADE"`
	Recipe   *Recipe   `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

type ScheduleLike struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ScheduleID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_schedule_like" json:"schedule_id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_schedule_like" json:"user_id"`

	Schedule *Schedule `gorm:"foreignKey:ScheduleID;constraint:OnDelete:CASCADE"`
	User     *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
