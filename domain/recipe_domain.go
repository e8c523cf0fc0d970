package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessLikeRecipe      = "recipe liked"
	MessageSuccessUnlikeRecipe    = "recipe unliked"
	MessageSuccessAddComment      = "comment added"
	MessageSuccessDeleteComment   = "comment deleted"
	MessageSuccessUploadImage     = "recipe image uploaded successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedLikeRecipe      = "failed to like recipe"
	MessageFailedUnlikeRecipe    = "failed to unlike recipe"
	MessageFailedAddComment      = "failed to add comment"
	MessageFailedDeleteComment   = "failed to delete comment"
	MessageFailedUploadImage     = "failed to upload recipe image"

	ErrRecipeNotFound  = errors.New("recipe not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotRecipeOwner  = errors.New("only the creator can modify this recipe")
	ErrNotCommentOwner = errors.New("only the author can delete this comment")
)

type (
	RecipeResponse struct {
		ID              string    `json:"id"`
		Name            string    `json:"name"`
		Description     string    `json:"description,omitempty"`
		PreparationTime int       `json:"preparation_time_minutes"`
		Calories        *int      `json:"calories,omitempty"`
		ImageURL        string    `json:"image_url,omitempty"`
		CreateByID      string    `json:"create_by_id,omitempty"`
		LikeCount       int64     `json:"like_count"`
		CreatedAt       time.Time `json:"created_at"`
	}

	RecipeListResponse struct {
		Recipes     []RecipeResponse `json:"recipes"`
		Pagination  Pagination       `json:"pagination"`
		SearchCount *int64           `json:"search_count,omitempty"`
	}

	RecipeIngredientResponse struct {
		IngredientID string `json:"ingredient_id"`
		Name         string `json:"name"`
		Quantity     string `json:"quantity"`
	}

	RecipeCommentResponse struct {
		ID        string    `json:"id"`
		UserID    string    `json:"user_id"`
		Username  string    `json:"username"`
		Comment   string    `json:"comment"`
		DateAdded time.Time `json:"date_added"`
	}

	RecipeDetailResponse struct {
		RecipeResponse
		Preparing   string                     `json:"preparing"`
		Ingredients []RecipeIngredientResponse `json:"ingredients"`
		Comments    []RecipeCommentResponse    `json:"comments"`
		LikedByMe   bool                       `json:"liked_by_me"`
	}

	AddCommentRequest struct {
		Comment string `json:"comment" validate:"required"`
	}

	UploadRecipeImageRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}
)
