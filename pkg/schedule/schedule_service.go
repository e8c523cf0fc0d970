package schedule

import (
	"context"
	"errors"

	"FoodBook-Backend/domain"
	"FoodBook-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ScheduleService interface {
		AddSchedule(ctx context.Context, userID string, req domain.AddScheduleRequest) (domain.ScheduleResponse, error)
		UpdateSchedule(ctx context.Context, scheduleID, userID string, req domain.UpdateScheduleRequest) error
		DeleteSchedule(ctx context.Context, scheduleID, userID string) error
		GetSchedules(ctx context.Context, nameFilter string, page, limit int) (domain.ScheduleListResponse, error)
		GetMySchedules(ctx context.Context, userID string, nameFilter string, page, limit int) (domain.ScheduleListResponse, error)
		GetScheduleDetail(ctx context.Context, scheduleID string, viewerID string) (domain.ScheduleDetailResponse, error)
		SetSlot(ctx context.Context, scheduleID, userID string, req domain.SetSlotRequest) error
		ClearSlot(ctx context.Context, scheduleID, userID string, req domain.ClearSlotRequest) error
		LikeSchedule(ctx context.Context, scheduleID, userID string) error
		UnlikeSchedule(ctx context.Context, scheduleID, userID string) error
	}

	scheduleService struct {
		scheduleRepository ScheduleRepository
	}
)

func NewScheduleService(scheduleRepository ScheduleRepository) ScheduleService {
	return &scheduleService{scheduleRepository: scheduleRepository}
}

func (s *scheduleService) toResponse(ctx context.Context, schedule *entities.Schedule) domain.ScheduleResponse {
	likeCount, _ := s.scheduleRepository.CountLikes(ctx, schedule.ID)

	createBy := ""
	if schedule.CreateByID != nil {
		createBy = schedule.CreateByID.String()
	}

	return domain.ScheduleResponse{
		ID:          schedule.ID.String(),
		Name:        schedule.Name,
		Description: schedule.Description,
		CreateByID:  createBy,
		LikeCount:   likeCount,
		CreatedAt:   schedule.CreatedAt,
	}
}

func (s *scheduleService) AddSchedule(ctx context.Context, userID string, req domain.AddScheduleRequest) (domain.ScheduleResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ScheduleResponse{}, domain.ErrParseUUID
	}

	schedule := entities.Schedule{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		CreateByID:  &userUUID,
	}
	if err := s.scheduleRepository.Create(ctx, &schedule); err != nil {
		return domain.ScheduleResponse{}, err
	}
	return s.toResponse(ctx, &schedule), nil
}

// ownedSchedule loads a schedule and verifies the caller created it.
func (s *scheduleService) ownedSchedule(ctx context.Context, scheduleID, userID string) (*entities.Schedule, error) {
	scheduleUUID, err := uuid.Parse(scheduleID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	schedule, err := s.scheduleRepository.GetByID(ctx, scheduleUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrScheduleNotFound
		}
		return nil, err
	}
	if schedule.CreateByID == nil || *schedule.CreateByID != userUUID {
		return nil, domain.ErrNotScheduleOwner
	}
	return schedule, nil
}

func (s *scheduleService) UpdateSchedule(ctx context.Context, scheduleID, userID string, req domain.UpdateScheduleRequest) error {
	schedule, err := s.ownedSchedule(ctx, scheduleID, userID)
	if err != nil {
		return err
	}

	if req.Name != "" {
		schedule.Name = req.Name
	}
	schedule.Description = req.Description

	return s.scheduleRepository.Update(ctx, schedule)
}

func (s *scheduleService) DeleteSchedule(ctx context.Context, scheduleID, userID string) error {
	schedule, err := s.ownedSchedule(ctx, scheduleID, userID)
	if err != nil {
		return err
	}
	return s.scheduleRepository.Delete(ctx, schedule.ID)
}

func (s *scheduleService) list(ctx context.Context, nameFilter string, createBy *uuid.UUID, page, limit int) (domain.ScheduleListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	schedules, count, err := s.scheduleRepository.List(ctx, nameFilter, createBy, page, limit)
	if err != nil {
		return domain.ScheduleListResponse{}, err
	}

	responses := make([]domain.ScheduleResponse, 0, len(schedules))
	for _, schedule := range schedules {
		responses = append(responses, s.toResponse(ctx, schedule))
	}

	result := domain.ScheduleListResponse{
		Schedules:  responses,
		Pagination: domain.NewPagination(page, limit, count),
	}
	if nameFilter != "" {
		result.SearchCount = &count
	}
	return result, nil
}

func (s *scheduleService) GetSchedules(ctx context.Context, nameFilter string, page, limit int) (domain.ScheduleListResponse, error) {
	return s.list(ctx, nameFilter, nil, page, limit)
}

func (s *scheduleService) GetMySchedules(ctx context.Context, userID string, nameFilter string, page, limit int) (domain.ScheduleListResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ScheduleListResponse{}, domain.ErrParseUUID
	}
	return s.list(ctx, nameFilter, &userUUID, page, limit)
}

func (s *scheduleService) GetScheduleDetail(ctx context.Context, scheduleID string, viewerID string) (domain.ScheduleDetailResponse, error) {
	scheduleUUID, err := uuid.Parse(scheduleID)
	if err != nil {
		return domain.ScheduleDetailResponse{}, domain.ErrParseUUID
	}

	schedule, err := s.scheduleRepository.GetByID(ctx, scheduleUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ScheduleDetailResponse{}, domain.ErrScheduleNotFound
		}
		return domain.ScheduleDetailResponse{}, err
	}

	slotRows, err := s.scheduleRepository.GetSlots(ctx, scheduleUUID)
	if err != nil {
		return domain.ScheduleDetailResponse{}, err
	}
	slots := make([]domain.ScheduleSlotResponse, 0, len(slotRows))
	for _, row := range slotRows {
		recipeName := ""
		if row.Recipe != nil {
			recipeName = row.Recipe.Name
		}
		slots = append(slots, domain.ScheduleSlotResponse{
			DayOfWeek:  row.DayOfWeek,
			MealSlot:   row.MealSlot,
			RecipeID:   row.RecipeID.String(),
			RecipeName: recipeName,
		})
	}

	likedByMe := false
	if viewerID != "" {
		if viewerUUID, err := uuid.Parse(viewerID); err == nil {
			likedByMe, _ = s.scheduleRepository.IsLiked(ctx, scheduleUUID, viewerUUID)
		}
	}

	return domain.ScheduleDetailResponse{
		ScheduleResponse: s.toResponse(ctx, schedule),
		Slots:            slots,
		LikedByMe:        likedByMe,
	}, nil
}

func (s *scheduleService) SetSlot(ctx context.Context, scheduleID, userID string, req domain.SetSlotRequest) error {
	schedule, err := s.ownedSchedule(ctx, scheduleID, userID)
	if err != nil {
		return err
	}

	recipeUUID, err := uuid.Parse(req.RecipeID)
	if err != nil {
		return domain.ErrParseUUID
	}

	// One recipe per slot. Checked up front so the user gets an
	// explanation instead of a unique constraint violation.
	if _, err := s.scheduleRepository.GetSlot(ctx, schedule.ID, req.DayOfWeek, req.MealSlot); err == nil {
		return domain.ErrSlotOccupied
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	slot := entities.RecipeSchedule{
		ID:         uuid.New(),
		ScheduleID: schedule.ID,
		RecipeID:   recipeUUID,
		DayOfWeek:  req.DayOfWeek,
		MealSlot:   req.MealSlot,
	}
	return s.scheduleRepository.CreateSlot(ctx, &slot)
}

func (s *scheduleService) ClearSlot(ctx context.Context, scheduleID, userID string, req domain.ClearSlotRequest) error {
	schedule, err := s.ownedSchedule(ctx, scheduleID, userID)
	if err != nil {
		return err
	}

	slot, err := s.scheduleRepository.GetSlot(ctx, schedule.ID, req.DayOfWeek, req.MealSlot)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrSlotEmpty
		}
		return err
	}
	return s.scheduleRepository.DeleteSlot(ctx, slot.ID)
}

func (s *scheduleService) LikeSchedule(ctx context.Context, scheduleID, userID string) error {
	scheduleUUID, err := uuid.Parse(scheduleID)
	if err != nil {
		return domain.ErrParseUUID
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	if _, err := s.scheduleRepository.GetByID(ctx, scheduleUUID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrScheduleNotFound
		}
		return err
	}

	return s.scheduleRepository.Like(ctx, scheduleUUID, userUUID)
}

func (s *scheduleService) UnlikeSchedule(ctx context.Context, scheduleID, userID string) error {
	scheduleUUID, err := uuid.Parse(scheduleID)
	if err != nil {
		return domain.ErrParseUUID
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}
	return s.scheduleRepository.Unlike(ctx, scheduleUUID, userUUID)
}
