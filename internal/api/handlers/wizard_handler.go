package handlers

import (
	"FoodBook-Backend/domain"
	"FoodBook-Backend/internal/api/presenters"
	"FoodBook-Backend/pkg/wizard"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	WizardHandler interface {
		StartCreate(c *fiber.Ctx) error
		StartEdit(c *fiber.Ctx) error
		GetDraft(c *fiber.Ctx) error
		Cancel(c *fiber.Ctx) error
		SubmitIngredients(c *fiber.Ctx) error
		SubmitDetails(c *fiber.Ctx) error
		SubmitPreparing(c *fiber.Ctx) error
		SubmitQuantities(c *fiber.Ctx) error
		Complete(c *fiber.Ctx) error
	}

	wizardHandler struct {
		wizardService wizard.WizardService
		validator     *validator.Validate
	}
)

func NewWizardHandler(wizardService wizard.WizardService, validator *validator.Validate) WizardHandler {
	return &wizardHandler{
		wizardService: wizardService,
		validator:     validator,
	}
}

func (h *wizardHandler) StartCreate(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	draft, err := h.wizardService.StartCreate(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedWizardStep, err)
	}

	return presenters.SuccessResponse(c, domain.WizardStateResponse{Draft: draft}, fiber.StatusOK, domain.MessageSuccessGetWizard)
}

func (h *wizardHandler) StartEdit(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")

	draft, err := h.wizardService.StartEdit(c.Context(), userID, recipeID)
	if err != nil {
		if err == domain.ErrNotRecipeOwner {
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedWizardStep, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedWizardStep, err)
	}

	return presenters.SuccessResponse(c, domain.WizardStateResponse{Draft: draft}, fiber.StatusOK, domain.MessageSuccessGetWizard)
}

func (h *wizardHandler) GetDraft(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	draft, err := h.wizardService.GetDraft(c.Context(), userID)
	if err != nil {
		if err == domain.ErrDraftNotFound {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetWizard, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetWizard, err)
	}

	return presenters.SuccessResponse(c, domain.WizardStateResponse{Draft: draft}, fiber.StatusOK, domain.MessageSuccessGetWizard)
}

func (h *wizardHandler) Cancel(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.wizardService.Cancel(c.Context(), userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedWizardStep, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessWizardStep)
}

func (h *wizardHandler) SubmitIngredients(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.WizardIngredientsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedWizardStep, err)
	}

	draft, err := h.wizardService.SubmitIngredients(c.Context(), userID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedWizardStep, err)
	}

	return presenters.SuccessResponse(c, domain.WizardStateResponse{Draft: draft}, fiber.StatusOK, domain.MessageSuccessWizardStep)
}

func (h *wizardHandler) SubmitDetails(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.WizardDetailsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedWizardStep, err)
	}

	draft, err := h.wizardService.SubmitDetails(c.Context(), userID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedWizardStep, err)
	}

	return presenters.SuccessResponse(c, domain.WizardStateResponse{Draft: draft}, fiber.StatusOK, domain.MessageSuccessWizardStep)
}

func (h *wizardHandler) SubmitPreparing(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.WizardPreparingRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedWizardStep, err)
	}

	draft, err := h.wizardService.SubmitPreparing(c.Context(), userID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedWizardStep, err)
	}

	return presenters.SuccessResponse(c, domain.WizardStateResponse{Draft: draft}, fiber.StatusOK, domain.MessageSuccessWizardStep)
}

func (h *wizardHandler) SubmitQuantities(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.WizardQuantitiesRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedWizardStep, err)
	}

	draft, err := h.wizardService.SubmitQuantities(c.Context(), userID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedWizardStep, err)
	}

	return presenters.SuccessResponse(c, domain.WizardStateResponse{Draft: draft}, fiber.StatusOK, domain.MessageSuccessWizardStep)
}

func (h *wizardHandler) Complete(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.wizardService.Complete(c.Context(), userID)
	if err != nil {
		if err == domain.ErrNotRecipeOwner {
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedWizardComplete, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedWizardComplete, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessWizardComplete)
}
