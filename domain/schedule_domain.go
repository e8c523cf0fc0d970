package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddSchedule       = "schedule added successfully"
	MessageSuccessUpdateSchedule    = "schedule updated successfully"
	MessageSuccessDeleteSchedule    = "schedule deleted successfully"
	MessageSuccessGetSchedules      = "schedules retrieved successfully"
	MessageSuccessGetScheduleDetail = "success get schedule detail"
	MessageSuccessSetSlot           = "recipe placed in schedule"
	MessageSuccessClearSlot         = "schedule slot cleared"
	MessageSuccessLikeSchedule      = "schedule liked"
	MessageSuccessUnlikeSchedule    = "schedule unliked"

	MessageFailedAddSchedule       = "failed to add schedule"
	MessageFailedUpdateSchedule    = "failed to update schedule"
	MessageFailedDeleteSchedule    = "failed to delete schedule"
	MessageFailedGetSchedules      = "failed to retrieve schedules"
	MessageFailedGetScheduleDetail = "failed to get schedule detail"
	MessageFailedSetSlot           = "failed to place recipe in schedule"
	MessageFailedClearSlot         = "failed to clear schedule slot"
	MessageFailedLikeSchedule      = "failed to like schedule"
	MessageFailedUnlikeSchedule    = "failed to unlike schedule"

	ErrScheduleNotFound = errors.New("schedule not found")
	ErrNotScheduleOwner = errors.New("only the creator can modify this schedule")
	ErrSlotOccupied     = errors.New("this day and meal slot already holds a recipe")
	ErrSlotEmpty        = errors.New("this day and meal slot is empty")
)

type (
	AddScheduleRequest struct {
		Name        string `json:"name" validate:"required,max=128"`
		Description string `json:"description"`
	}

	UpdateScheduleRequest struct {
		Name        string `json:"name" validate:"omitempty,max=128"`
		Description string `json:"description"`
	}

	SetSlotRequest struct {
		RecipeID  string `json:"recipe_id" validate:"required,uuid"`
		DayOfWeek int    `json:"day_of_week" validate:"required,min=1,max=7"`
		MealSlot  int    `json:"meal_slot" validate:"required,min=1,max=5"`
	}

	ClearSlotRequest struct {
		DayOfWeek int `json:"day_of_week" validate:"required,min=1,max=7"`
		MealSlot  int `json:"meal_slot" validate:"required,min=1,max=5"`
	}

	ScheduleResponse struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Description string    `json:"description,omitempty"`
		CreateByID  string    `json:"create_by_id,omitempty"`
		LikeCount   int64     `json:"like_count"`
		CreatedAt   time.Time `json:"created_at"`
	}

	ScheduleListResponse struct {
		Schedules   []ScheduleResponse `json:"schedules"`
		Pagination  Pagination         `json:"pagination"`
		SearchCount *int64             `json:"search_count,omitempty"`
	}

	ScheduleSlotResponse struct {
		DayOfWeek  int    `json:"day_of_week"`
		MealSlot   int    `json:"meal_slot"`
		RecipeID   string `json:"recipe_id"`
		RecipeName string `json:"recipe_name"`
	}

	ScheduleDetailResponse struct {
		ScheduleResponse
		Slots     []ScheduleSlotResponse `json:"slots"`
		LikedByMe bool                   `json:"liked_by_me"`
	}
)
