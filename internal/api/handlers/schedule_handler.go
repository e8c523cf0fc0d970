package handlers

import (
	"FoodBook-Backend/domain"
	"FoodBook-Backend/internal/api/presenters"
	"FoodBook-Backend/pkg/schedule"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ScheduleHandler interface {
		AddSchedule(c *fiber.Ctx) error
		UpdateSchedule(c *fiber.Ctx) error
		DeleteSchedule(c *fiber.Ctx) error
		GetSchedules(c *fiber.Ctx) error
		GetMySchedules(c *fiber.Ctx) error
		GetScheduleDetail(c *fiber.Ctx) error
		SetSlot(c *fiber.Ctx) error
		ClearSlot(c *fiber.Ctx) error
		LikeSchedule(c *fiber.Ctx) error
		UnlikeSchedule(c *fiber.Ctx) error
	}

	scheduleHandler struct {
		scheduleService schedule.ScheduleService
		validator       *validator.Validate
	}
)

func NewScheduleHandler(scheduleService schedule.ScheduleService, validator *validator.Validate) ScheduleHandler {
	return &scheduleHandler{
		scheduleService: scheduleService,
		validator:       validator,
	}
}

func (h *scheduleHandler) AddSchedule(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddScheduleRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddSchedule, err)
	}

	res, err := h.scheduleService.AddSchedule(c.Context(), userID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddSchedule, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddSchedule)
}

func (h *scheduleHandler) UpdateSchedule(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	scheduleID := c.Params("id")
	req := new(domain.UpdateScheduleRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateSchedule, err)
	}

	if err := h.scheduleService.UpdateSchedule(c.Context(), scheduleID, userID, *req); err != nil {
		if err == domain.ErrNotScheduleOwner {
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedUpdateSchedule, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateSchedule, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateSchedule)
}

func (h *scheduleHandler) DeleteSchedule(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	scheduleID := c.Params("id")

	if err := h.scheduleService.DeleteSchedule(c.Context(), scheduleID, userID); err != nil {
		if err == domain.ErrNotScheduleOwner {
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedDeleteSchedule, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteSchedule, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteSchedule)
}

func (h *scheduleHandler) GetSchedules(c *fiber.Ctx) error {
	page, limit := pagination(c)
	nameFilter := c.Query("name", "")

	res, err := h.scheduleService.GetSchedules(c.Context(), nameFilter, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSchedules, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSchedules)
}

func (h *scheduleHandler) GetMySchedules(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	page, limit := pagination(c)
	nameFilter := c.Query("name", "")

	res, err := h.scheduleService.GetMySchedules(c.Context(), userID, nameFilter, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSchedules, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSchedules)
}

func (h *scheduleHandler) GetScheduleDetail(c *fiber.Ctx) error {
	scheduleID := c.Params("id")

	viewerID := ""
	if locals := c.Locals("user_id"); locals != nil {
		viewerID = locals.(string)
	}

	res, err := h.scheduleService.GetScheduleDetail(c.Context(), scheduleID, viewerID)
	if err != nil {
		if err == domain.ErrScheduleNotFound {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetScheduleDetail, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetScheduleDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetScheduleDetail)
}

func (h *scheduleHandler) SetSlot(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	scheduleID := c.Params("id")
	req := new(domain.SetSlotRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetSlot, err)
	}

	if err := h.scheduleService.SetSlot(c.Context(), scheduleID, userID, *req); err != nil {
		if err == domain.ErrNotScheduleOwner {
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedSetSlot, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetSlot, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSetSlot)
}

func (h *scheduleHandler) ClearSlot(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	scheduleID := c.Params("id")
	req := new(domain.ClearSlotRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedClearSlot, err)
	}

	if err := h.scheduleService.ClearSlot(c.Context(), scheduleID, userID, *req); err != nil {
		if err == domain.ErrNotScheduleOwner {
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedClearSlot, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedClearSlot, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessClearSlot)
}

func (h *scheduleHandler) LikeSchedule(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	scheduleID := c.Params("id")

	if err := h.scheduleService.LikeSchedule(c.Context(), scheduleID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLikeSchedule, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessLikeSchedule)
}

func (h *scheduleHandler) UnlikeSchedule(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	scheduleID := c.Params("id")

	if err := h.scheduleService.UnlikeSchedule(c.Context(), scheduleID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUnlikeSchedule, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUnlikeSchedule)
}
