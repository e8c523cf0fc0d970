package recipe

import (
	"context"
	"errors"
	"mime/multipart"

	"FoodBook-Backend/domain"
	"FoodBook-Backend/entities"
	"FoodBook-Backend/internal/utils/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		GetRecipes(ctx context.Context, nameFilter string, page, limit int) (domain.RecipeListResponse, error)
		GetMyRecipes(ctx context.Context, userID string, nameFilter string, page, limit int) (domain.RecipeListResponse, error)
		GetRecipeDetail(ctx context.Context, recipeID string, viewerID string) (domain.RecipeDetailResponse, error)
		DeleteRecipe(ctx context.Context, recipeID, userID string) error
		LikeRecipe(ctx context.Context, recipeID, userID string) error
		UnlikeRecipe(ctx context.Context, recipeID, userID string) error
		AddComment(ctx context.Context, recipeID, userID string, req domain.AddCommentRequest) (domain.RecipeCommentResponse, error)
		DeleteComment(ctx context.Context, commentID, userID string) error
		UploadRecipeImage(ctx context.Context, recipeID, userID string, file *multipart.FileHeader) (string, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		awsS3            storage.AwsS3
	}
)

func NewRecipeService(recipeRepository RecipeRepository, awsS3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		awsS3:            awsS3,
	}
}

func (s *recipeService) toResponse(ctx context.Context, recipe *entities.Recipe) domain.RecipeResponse {
	likeCount, _ := s.recipeRepository.CountLikes(ctx, recipe.ID)

	createBy := ""
	if recipe.CreateByID != nil {
		createBy = recipe.CreateByID.String()
	}

	return domain.RecipeResponse{
		ID:              recipe.ID.String(),
		Name:            recipe.Name,
		Description:     recipe.Description,
		PreparationTime: recipe.PreparationTime,
		Calories:        recipe.Calories,
		ImageURL:        recipe.ImageURL,
		CreateByID:      createBy,
		LikeCount:       likeCount,
		CreatedAt:       recipe.CreatedAt,
	}
}

func (s *recipeService) list(ctx context.Context, nameFilter string, createBy *uuid.UUID, page, limit int) (domain.RecipeListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	recipes, count, err := s.recipeRepository.List(ctx, nameFilter, createBy, page, limit)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}

	responses := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		responses = append(responses, s.toResponse(ctx, recipe))
	}

	result := domain.RecipeListResponse{
		Recipes:    responses,
		Pagination: domain.NewPagination(page, limit, count),
	}
	// The match count is only part of the contract when the caller searched.
	if nameFilter != "" {
		result.SearchCount = &count
	}
	return result, nil
}

func (s *recipeService) GetRecipes(ctx context.Context, nameFilter string, page, limit int) (domain.RecipeListResponse, error) {
	return s.list(ctx, nameFilter, nil, page, limit)
}

func (s *recipeService) GetMyRecipes(ctx context.Context, userID string, nameFilter string, page, limit int) (domain.RecipeListResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeListResponse{}, domain.ErrParseUUID
	}
	return s.list(ctx, nameFilter, &userUUID, page, limit)
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID string, viewerID string) (domain.RecipeDetailResponse, error) {
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.RecipeDetailResponse{}, domain.ErrParseUUID
	}

	recipe, err := s.recipeRepository.GetByID(ctx, recipeUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetailResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetailResponse{}, err
	}

	rows, err := s.recipeRepository.GetIngredientRows(ctx, recipeUUID)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}
	ingredients := make([]domain.RecipeIngredientResponse, 0, len(rows))
	for _, row := range rows {
		name := ""
		if row.Ingredient != nil {
			name = row.Ingredient.Name
		}
		ingredients = append(ingredients, domain.RecipeIngredientResponse{
			IngredientID: row.IngredientID.String(),
			Name:         name,
			Quantity:     row.Quantity,
		})
	}

	commentRows, err := s.recipeRepository.GetComments(ctx, recipeUUID)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}
	comments := make([]domain.RecipeCommentResponse, 0, len(commentRows))
	for _, row := range commentRows {
		username := ""
		if row.User != nil {
			username = row.User.Username
		}
		comments = append(comments, domain.RecipeCommentResponse{
			ID:        row.ID.String(),
			UserID:    row.UserID.String(),
			Username:  username,
			Comment:   row.Comment,
			DateAdded: row.DateAdded,
		})
	}

	likedByMe := false
	if viewerID != "" {
		if viewerUUID, err := uuid.Parse(viewerID); err == nil {
			likedByMe, _ = s.recipeRepository.IsLiked(ctx, recipeUUID, viewerUUID)
		}
	}

	return domain.RecipeDetailResponse{
		RecipeResponse: s.toResponse(ctx, recipe),
		Preparing:      recipe.Preparing,
		Ingredients:    ingredients,
		Comments:       comments,
		LikedByMe:      likedByMe,
	}, nil
}

// ownedRecipe loads a recipe and verifies the caller created it.
func (s *recipeService) ownedRecipe(ctx context.Context, recipeID, userID string) (*entities.Recipe, error) {
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	recipe, err := s.recipeRepository.GetByID(ctx, recipeUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	if recipe.CreateByID == nil || *recipe.CreateByID != userUUID {
		return nil, domain.ErrNotRecipeOwner
	}
	return recipe, nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID, userID string) error {
	recipe, err := s.ownedRecipe(ctx, recipeID, userID)
	if err != nil {
		return err
	}

	if err := s.recipeRepository.Delete(ctx, recipe.ID); err != nil {
		return err
	}

	if recipe.ImageURL != "" && s.awsS3 != nil {
		objectKey := s.awsS3.GetObjectKeyFromLink(recipe.ImageURL)
		_ = s.awsS3.DeleteFile(objectKey)
	}
	return nil
}

func (s *recipeService) LikeRecipe(ctx context.Context, recipeID, userID string) error {
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.ErrParseUUID
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	if _, err := s.recipeRepository.GetByID(ctx, recipeUUID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	return s.recipeRepository.Like(ctx, recipeUUID, userUUID)
}

func (s *recipeService) UnlikeRecipe(ctx context.Context, recipeID, userID string) error {
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.ErrParseUUID
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}
	return s.recipeRepository.Unlike(ctx, recipeUUID, userUUID)
}

func (s *recipeService) AddComment(ctx context.Context, recipeID, userID string, req domain.AddCommentRequest) (domain.RecipeCommentResponse, error) {
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.RecipeCommentResponse{}, domain.ErrParseUUID
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeCommentResponse{}, domain.ErrParseUUID
	}

	if _, err := s.recipeRepository.GetByID(ctx, recipeUUID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeCommentResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeCommentResponse{}, err
	}

	comment := entities.CommentRecipe{
		ID:       uuid.New(),
		RecipeID: recipeUUID,
		UserID:   userUUID,
		Comment:  req.Comment,
	}
	if err := s.recipeRepository.AddComment(ctx, &comment); err != nil {
		return domain.RecipeCommentResponse{}, err
	}

	return domain.RecipeCommentResponse{
		ID:        comment.ID.String(),
		UserID:    comment.UserID.String(),
		Comment:   comment.Comment,
		DateAdded: comment.DateAdded,
	}, nil
}

func (s *recipeService) DeleteComment(ctx context.Context, commentID, userID string) error {
	commentUUID, err := uuid.Parse(commentID)
	if err != nil {
		return domain.ErrParseUUID
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	comment, err := s.recipeRepository.GetCommentByID(ctx, commentUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCommentNotFound
		}
		return err
	}
	if comment.UserID != userUUID {
		return domain.ErrNotCommentOwner
	}

	return s.recipeRepository.DeleteComment(ctx, commentUUID)
}

func (s *recipeService) UploadRecipeImage(ctx context.Context, recipeID, userID string, file *multipart.FileHeader) (string, error) {
	recipe, err := s.ownedRecipe(ctx, recipeID, userID)
	if err != nil {
		return "", err
	}

	objectKey, err := s.awsS3.UploadFile(file, "recipe", storage.AllowImage...)
	if err != nil {
		return "", err
	}

	oldImage := recipe.ImageURL
	recipe.ImageURL = s.awsS3.GetPublicLinkKey(objectKey)
	if err := s.recipeRepository.Update(ctx, recipe); err != nil {
		return "", err
	}

	if oldImage != "" {
		_ = s.awsS3.DeleteFile(s.awsS3.GetObjectKeyFromLink(oldImage))
	}
	return recipe.ImageURL, nil
}
