package ingredient

import (
	"context"
	"errors"

	"FoodBook-Backend/domain"
	"FoodBook-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	IngredientService interface {
		AddIngredient(ctx context.Context, req domain.AddIngredientRequest, userID string) (domain.IngredientResponse, error)
		UpdateIngredient(ctx context.Context, id string, req domain.UpdateIngredientRequest, userID string) error
		DeleteIngredient(ctx context.Context, id string, userID string) error
		GetIngredients(ctx context.Context, nameFilter string, mine bool, userID string, page, limit int) (domain.IngredientListResponse, error)
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
	}
)

func NewIngredientService(ingredientRepository IngredientRepository) IngredientService {
	return &ingredientService{ingredientRepository: ingredientRepository}
}

func (s *ingredientService) AddIngredient(ctx context.Context, req domain.AddIngredientRequest, userID string) (domain.IngredientResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.IngredientResponse{}, domain.ErrParseUUID
	}

	if _, err := s.ingredientRepository.GetByName(ctx, req.Name); err == nil {
		return domain.IngredientResponse{}, domain.ErrIngredientTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.IngredientResponse{}, err
	}

	ingredient := &entities.Ingredient{
		ID:         uuid.New(),
		Name:       req.Name,
		CreateByID: &userUUID,
	}
	if err := s.ingredientRepository.Create(ctx, ingredient); err != nil {
		return domain.IngredientResponse{}, err
	}

	return domain.IngredientResponse{
		ID:         ingredient.ID.String(),
		Name:       ingredient.Name,
		CreateByID: userID,
		CreatedAt:  ingredient.CreatedAt,
	}, nil
}

func (s *ingredientService) UpdateIngredient(ctx context.Context, id string, req domain.UpdateIngredientRequest, userID string) error {
	ingredientUUID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrParseUUID
	}

	ingredient, err := s.ingredientRepository.GetByID(ctx, ingredientUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrIngredientNotFound
		}
		return err
	}

	if ingredient.CreateByID == nil || ingredient.CreateByID.String() != userID {
		return domain.ErrNotIngredientOwner
	}

	if req.Name != ingredient.Name {
		if existing, err := s.ingredientRepository.GetByName(ctx, req.Name); err == nil && existing.ID != ingredient.ID {
			return domain.ErrIngredientTaken
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}

	ingredient.Name = req.Name
	return s.ingredientRepository.Update(ctx, ingredient)
}

func (s *ingredientService) DeleteIngredient(ctx context.Context, id string, userID string) error {
	ingredientUUID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrParseUUID
	}

	ingredient, err := s.ingredientRepository.GetByID(ctx, ingredientUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrIngredientNotFound
		}
		return err
	}

	if ingredient.CreateByID == nil || ingredient.CreateByID.String() != userID {
		return domain.ErrNotIngredientOwner
	}

	// Checked up front so the user gets an explanation instead of a
	// foreign key violation.
	used, err := s.ingredientRepository.CountRecipesUsing(ctx, ingredientUUID)
	if err != nil {
		return err
	}
	if used > 0 {
		return domain.ErrIngredientInUse
	}

	return s.ingredientRepository.Delete(ctx, ingredientUUID)
}

func (s *ingredientService) GetIngredients(ctx context.Context, nameFilter string, mine bool, userID string, page, limit int) (domain.IngredientListResponse, error) {
	var createBy *uuid.UUID
	if mine {
		userUUID, err := uuid.Parse(userID)
		if err != nil {
			return domain.IngredientListResponse{}, domain.ErrParseUUID
		}
		createBy = &userUUID
	}

	ingredients, count, err := s.ingredientRepository.List(ctx, nameFilter, createBy, page, limit)
	if err != nil {
		return domain.IngredientListResponse{}, err
	}

	response := domain.IngredientListResponse{
		Ingredients: make([]domain.IngredientResponse, 0, len(ingredients)),
		Pagination:  domain.NewPagination(page, limit, count),
	}
	for _, ingredient := range ingredients {
		item := domain.IngredientResponse{
			ID:        ingredient.ID.String(),
			Name:      ingredient.Name,
			CreatedAt: ingredient.CreatedAt,
		}
		if ingredient.CreateByID != nil {
			item.CreateByID = ingredient.CreateByID.String()
		}
		response.Ingredients = append(response.Ingredients, item)
	}

	// The search count appears only when a filter was actually applied.
	if nameFilter != "" {
		response.SearchCount = &count
	}

	return response, nil
}
