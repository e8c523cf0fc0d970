package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddIngredient    = "ingredient added successfully"
	MessageSuccessUpdateIngredient = "ingredient updated successfully"
	MessageSuccessDeleteIngredient = "ingredient deleted successfully"
	MessageSuccessGetIngredients   = "ingredients retrieved successfully"

	MessageFailedAddIngredient    = "failed to add ingredient"
	MessageFailedUpdateIngredient = "failed to update ingredient"
	MessageFailedDeleteIngredient = "failed to delete ingredient"
	MessageFailedGetIngredients   = "failed to retrieve ingredients"

	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrIngredientTaken    = errors.New("ingredient already saved")
	ErrIngredientInUse    = errors.New("ingredient is used by existing recipes and cannot be deleted")
	ErrNotIngredientOwner = errors.New("only the creator can modify this ingredient")
)

type (
	AddIngredientRequest struct {
		Name string `json:"name" validate:"required,max=128"`
	}

	UpdateIngredientRequest struct {
		Name string `json:"name" validate:"required,max=128"`
	}

	IngredientResponse struct {
		ID         string    `json:"id"`
		Name       string    `json:"name"`
		CreateByID string    `json:"create_by_id,omitempty"`
		CreatedAt  time.Time `json:"created_at"`
	}

	// SearchCount is present only when a name filter was applied, an
	// unfiltered listing carries no search count at all.
	IngredientListResponse struct {
		Ingredients []IngredientResponse `json:"ingredients"`
		Pagination  Pagination           `json:"pagination"`
		SearchCount *int64               `json:"search_count,omitempty"`
	}
)
