package wizard

import (
	"context"
	"errors"

	"FoodBook-Backend/domain"
	"FoodBook-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	stepIngredients = 1
	stepDetails     = 2
	stepPreparing   = 3
	stepQuantities  = 4
)

type (
	WizardService interface {
		StartCreate(ctx context.Context, userID string) (*domain.RecipeDraft, error)
		StartEdit(ctx context.Context, userID, recipeID string) (*domain.RecipeDraft, error)
		GetDraft(ctx context.Context, userID string) (*domain.RecipeDraft, error)
		Cancel(ctx context.Context, userID string) error
		SubmitIngredients(ctx context.Context, userID string, req domain.WizardIngredientsRequest) (*domain.RecipeDraft, error)
		SubmitDetails(ctx context.Context, userID string, req domain.WizardDetailsRequest) (*domain.RecipeDraft, error)
		SubmitPreparing(ctx context.Context, userID string, req domain.WizardPreparingRequest) (*domain.RecipeDraft, error)
		SubmitQuantities(ctx context.Context, userID string, req domain.WizardQuantitiesRequest) (*domain.RecipeDraft, error)
		Complete(ctx context.Context, userID string) (domain.WizardCompleteResponse, error)
	}

	wizardService struct {
		wizardRepository WizardRepository
		draftStore       DraftStore
	}
)

func NewWizardService(wizardRepository WizardRepository, draftStore DraftStore) WizardService {
	return &wizardService{
		wizardRepository: wizardRepository,
		draftStore:       draftStore,
	}
}

// StartCreate opens a fresh draft. An existing draft for the same user is
// replaced, one wizard per user at a time.
func (s *wizardService) StartCreate(ctx context.Context, userID string) (*domain.RecipeDraft, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, domain.ErrParseUUID
	}

	draft := &domain.RecipeDraft{
		Mode:       domain.WizardModeCreate,
		Quantities: map[string]string{},
	}
	if err := s.draftStore.Save(ctx, userID, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// StartEdit seeds the draft from the stored recipe so every step opens
// pre-filled. Only the creator may edit.
func (s *wizardService) StartEdit(ctx context.Context, userID, recipeID string) (*domain.RecipeDraft, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	recipe, err := s.wizardRepository.GetRecipe(ctx, recipeUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	if recipe.CreateByID == nil || *recipe.CreateByID != userUUID {
		return nil, domain.ErrNotRecipeOwner
	}

	rows, err := s.wizardRepository.GetIngredientRows(ctx, recipeUUID)
	if err != nil {
		return nil, err
	}

	ingredientIDs := make([]string, 0, len(rows))
	quantities := make(map[string]string, len(rows))
	for _, row := range rows {
		ingredientIDs = append(ingredientIDs, row.IngredientID.String())
		quantities[row.IngredientID.String()] = row.Quantity
	}

	draft := &domain.RecipeDraft{
		Mode:            domain.WizardModeEdit,
		RecipeID:        recipe.ID.String(),
		IngredientIDs:   ingredientIDs,
		Name:            recipe.Name,
		Description:     recipe.Description,
		PreparationTime: recipe.PreparationTime,
		Calories:        recipe.Calories,
		Preparing:       recipe.Preparing,
		Quantities:      quantities,
		StepReached:     stepQuantities,
	}
	if err := s.draftStore.Save(ctx, userID, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (s *wizardService) GetDraft(ctx context.Context, userID string) (*domain.RecipeDraft, error) {
	return s.draftStore.Get(ctx, userID)
}

func (s *wizardService) Cancel(ctx context.Context, userID string) error {
	return s.draftStore.Delete(ctx, userID)
}

// draftAtStep loads the draft and checks all steps before the requested one
// were already submitted. Steps may be revisited, never skipped.
func (s *wizardService) draftAtStep(ctx context.Context, userID string, step int) (*domain.RecipeDraft, error) {
	draft, err := s.draftStore.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if draft.StepReached < step-1 {
		return nil, domain.ErrWizardStepOrder
	}
	return draft, nil
}

func (s *wizardService) SubmitIngredients(ctx context.Context, userID string, req domain.WizardIngredientsRequest) (*domain.RecipeDraft, error) {
	draft, err := s.draftAtStep(ctx, userID, stepIngredients)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(req.IngredientIDs))
	seen := make(map[string]bool, len(req.IngredientIDs))
	for _, raw := range req.IngredientIDs {
		if seen[raw] {
			continue
		}
		seen[raw] = true
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		ids = append(ids, id)
	}

	count, err := s.wizardRepository.CountIngredients(ctx, ids)
	if err != nil {
		return nil, err
	}
	if count != int64(len(ids)) {
		return nil, domain.ErrIngredientNotFound
	}

	draft.IngredientIDs = make([]string, 0, len(ids))
	for _, id := range ids {
		draft.IngredientIDs = append(draft.IngredientIDs, id.String())
	}

	// Quantities for ingredients that were just deselected are stale.
	for key := range draft.Quantities {
		if !seen[key] {
			delete(draft.Quantities, key)
		}
	}

	if draft.StepReached < stepIngredients {
		draft.StepReached = stepIngredients
	}
	if err := s.draftStore.Save(ctx, userID, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (s *wizardService) SubmitDetails(ctx context.Context, userID string, req domain.WizardDetailsRequest) (*domain.RecipeDraft, error) {
	draft, err := s.draftAtStep(ctx, userID, stepDetails)
	if err != nil {
		return nil, err
	}

	draft.Name = req.Name
	draft.Description = req.Description
	draft.PreparationTime = req.PreparationTime
	draft.Calories = req.Calories

	if draft.StepReached < stepDetails {
		draft.StepReached = stepDetails
	}
	if err := s.draftStore.Save(ctx, userID, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (s *wizardService) SubmitPreparing(ctx context.Context, userID string, req domain.WizardPreparingRequest) (*domain.RecipeDraft, error) {
	draft, err := s.draftAtStep(ctx, userID, stepPreparing)
	if err != nil {
		return nil, err
	}

	draft.Preparing = req.Preparing

	if draft.StepReached < stepPreparing {
		draft.StepReached = stepPreparing
	}
	if err := s.draftStore.Save(ctx, userID, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (s *wizardService) SubmitQuantities(ctx context.Context, userID string, req domain.WizardQuantitiesRequest) (*domain.RecipeDraft, error) {
	draft, err := s.draftAtStep(ctx, userID, stepQuantities)
	if err != nil {
		return nil, err
	}

	if err := checkQuantityCoverage(draft.IngredientIDs, req.Quantities); err != nil {
		return nil, err
	}

	draft.Quantities = req.Quantities

	if draft.StepReached < stepQuantities {
		draft.StepReached = stepQuantities
	}
	if err := s.draftStore.Save(ctx, userID, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// checkQuantityCoverage demands the quantity keys match the selected
// ingredients exactly, no extras and no gaps.
func checkQuantityCoverage(ingredientIDs []string, quantities map[string]string) error {
	if len(quantities) != len(ingredientIDs) {
		return domain.ErrQuantitiesMismatch
	}
	for _, id := range ingredientIDs {
		if _, ok := quantities[id]; !ok {
			return domain.ErrQuantitiesMismatch
		}
	}
	return nil
}

// Complete commits the draft to the database and drops it from the store.
// Create writes a fresh recipe graph, edit reconciles the stored ingredient
// rows against the draft's selection.
func (s *wizardService) Complete(ctx context.Context, userID string) (domain.WizardCompleteResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.WizardCompleteResponse{}, domain.ErrParseUUID
	}

	draft, err := s.draftStore.Get(ctx, userID)
	if err != nil {
		return domain.WizardCompleteResponse{}, err
	}
	if draft.StepReached < stepQuantities {
		return domain.WizardCompleteResponse{}, domain.ErrWizardStepOrder
	}
	if err := checkQuantityCoverage(draft.IngredientIDs, draft.Quantities); err != nil {
		return domain.WizardCompleteResponse{}, err
	}

	ingredientIDs := make([]uuid.UUID, 0, len(draft.IngredientIDs))
	quantities := make(map[uuid.UUID]string, len(draft.Quantities))
	for _, raw := range draft.IngredientIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return domain.WizardCompleteResponse{}, domain.ErrParseUUID
		}
		ingredientIDs = append(ingredientIDs, id)
		quantities[id] = draft.Quantities[raw]
	}

	var recipeID uuid.UUID
	switch draft.Mode {
	case domain.WizardModeEdit:
		recipeID, err = s.completeEdit(ctx, userUUID, draft, ingredientIDs, quantities)
	default:
		recipeID, err = s.completeCreate(ctx, userUUID, draft, ingredientIDs, quantities)
	}
	if err != nil {
		return domain.WizardCompleteResponse{}, err
	}

	if err := s.draftStore.Delete(ctx, userID); err != nil {
		return domain.WizardCompleteResponse{}, err
	}
	return domain.WizardCompleteResponse{RecipeID: recipeID.String()}, nil
}

func (s *wizardService) completeCreate(ctx context.Context, userID uuid.UUID, draft *domain.RecipeDraft, ingredientIDs []uuid.UUID, quantities map[uuid.UUID]string) (uuid.UUID, error) {
	recipe := entities.Recipe{
		ID:              uuid.New(),
		Name:            draft.Name,
		Description:     draft.Description,
		Preparing:       draft.Preparing,
		PreparationTime: draft.PreparationTime,
		Calories:        draft.Calories,
		CreateByID:      &userID,
	}

	rows := make([]entities.IngredientRecipe, 0, len(ingredientIDs))
	for _, ingredientID := range ingredientIDs {
		rows = append(rows, entities.IngredientRecipe{
			ID:           uuid.New(),
			IngredientID: ingredientID,
			Quantity:     quantities[ingredientID],
		})
	}

	if err := s.wizardRepository.CreateRecipeGraph(ctx, &recipe, rows); err != nil {
		return uuid.Nil, err
	}
	return recipe.ID, nil
}

func (s *wizardService) completeEdit(ctx context.Context, userID uuid.UUID, draft *domain.RecipeDraft, ingredientIDs []uuid.UUID, quantities map[uuid.UUID]string) (uuid.UUID, error) {
	recipeUUID, err := uuid.Parse(draft.RecipeID)
	if err != nil {
		return uuid.Nil, domain.ErrParseUUID
	}

	recipe, err := s.wizardRepository.GetRecipe(ctx, recipeUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, domain.ErrRecipeNotFound
		}
		return uuid.Nil, err
	}
	// Ownership is re-checked at commit time, the recipe may have changed
	// hands or been deleted while the draft sat in the store.
	if recipe.CreateByID == nil || *recipe.CreateByID != userID {
		return uuid.Nil, domain.ErrNotRecipeOwner
	}

	recipe.Name = draft.Name
	recipe.Description = draft.Description
	recipe.Preparing = draft.Preparing
	recipe.PreparationTime = draft.PreparationTime
	recipe.Calories = draft.Calories

	existing, err := s.wizardRepository.GetIngredientRows(ctx, recipeUUID)
	if err != nil {
		return uuid.Nil, err
	}

	result := Reconcile(ingredientIDs, existing)
	if err := s.wizardRepository.UpdateRecipeGraph(ctx, recipe, result, quantities); err != nil {
		return uuid.Nil, err
	}
	return recipe.ID, nil
}
