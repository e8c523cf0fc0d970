package domain

import (
	"errors"
)

var (
	MessageSuccessWizardStep     = "step saved"
	MessageSuccessWizardComplete = "recipe saved successfully"
	MessageSuccessGetWizard      = "success get wizard state"

	MessageFailedWizardStep     = "failed to save step"
	MessageFailedWizardComplete = "failed to save recipe"
	MessageFailedGetWizard      = "failed to get wizard state"

	ErrDraftNotFound      = errors.New("no recipe draft in progress")
	ErrWizardStepOrder    = errors.New("previous wizard steps are not completed yet")
	ErrQuantitiesMismatch = errors.New("quantities must cover exactly the selected ingredients")
)

type (
	WizardIngredientsRequest struct {
		IngredientIDs []string `json:"ingredient_ids" validate:"omitempty,dive,uuid"`
	}

	WizardDetailsRequest struct {
		Name            string `json:"name" validate:"required,max=128"`
		Description     string `json:"description"`
		PreparationTime int    `json:"preparation_time_minutes" validate:"required,min=1"`
		Calories        *int   `json:"calories" validate:"omitempty,min=0"`
	}

	WizardPreparingRequest struct {
		Preparing string `json:"preparing" validate:"required"`
	}

	WizardQuantitiesRequest struct {
		Quantities map[string]string `json:"quantities" validate:"required"`
	}

	// RecipeDraft is the accumulated wizard state, kept in the draft store
	// until the final confirmation commits it. Nothing is persisted to the
	// database before Complete.
	RecipeDraft struct {
		Mode            string            `json:"mode"` // "create" or "edit"
		RecipeID        string            `json:"recipe_id,omitempty"`
		IngredientIDs   []string          `json:"ingredient_ids"`
		Name            string            `json:"name"`
		Description     string            `json:"description"`
		PreparationTime int               `json:"preparation_time_minutes"`
		Calories        *int              `json:"calories,omitempty"`
		Preparing       string            `json:"preparing"`
		Quantities      map[string]string `json:"quantities"`
		StepReached     int               `json:"step_reached"`
	}

	WizardStateResponse struct {
		Draft *RecipeDraft `json:"draft"`
	}

	WizardCompleteResponse struct {
		RecipeID string `json:"recipe_id"`
	}
)

const (
	WizardModeCreate = "create"
	WizardModeEdit   = "edit"
)
