package wizard

import (
	"context"
	"testing"

	"FoodBook-Backend/domain"
	"FoodBook-Backend/entities"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	err = db.AutoMigrate(
		&entities.User{},
		&entities.Ingredient{},
		&entities.Recipe{},
		&entities.IngredientRecipe{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func seedIngredient(t *testing.T, db *gorm.DB, name string) uuid.UUID {
	t.Helper()

	ing := entities.Ingredient{ID: uuid.New(), Name: name}
	if err := db.Create(&ing).Error; err != nil {
		t.Fatalf("failed to seed ingredient %s: %v", name, err)
	}
	return ing.ID
}

func newTestService(t *testing.T) (WizardService, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	return NewWizardService(NewWizardRepository(db), NewMemoryDraftStore()), db
}

func TestStepsMustBeSubmittedInOrder(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()
	userID := uuid.New().String()

	if _, err := service.StartCreate(ctx, userID); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	_, err := service.SubmitDetails(ctx, userID, domain.WizardDetailsRequest{
		Name:            "Pancakes",
		PreparationTime: 20,
	})
	if err != domain.ErrWizardStepOrder {
		t.Errorf("details before ingredients should fail with ErrWizardStepOrder, got %v", err)
	}

	_, err = service.Complete(ctx, userID)
	if err != domain.ErrWizardStepOrder {
		t.Errorf("complete straight after start should fail with ErrWizardStepOrder, got %v", err)
	}
}

func TestCreateFlowPersistsNothingUntilComplete(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()
	userID := uuid.New().String()

	flour := seedIngredient(t, db, "flour")
	milk := seedIngredient(t, db, "milk")

	if _, err := service.StartCreate(ctx, userID); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	_, err := service.SubmitIngredients(ctx, userID, domain.WizardIngredientsRequest{
		IngredientIDs: []string{flour.String(), milk.String()},
	})
	if err != nil {
		t.Fatalf("ingredients step failed: %v", err)
	}
	_, err = service.SubmitDetails(ctx, userID, domain.WizardDetailsRequest{
		Name:            "Pancakes",
		Description:     "Thin ones",
		PreparationTime: 20,
	})
	if err != nil {
		t.Fatalf("details step failed: %v", err)
	}
	_, err = service.SubmitPreparing(ctx, userID, domain.WizardPreparingRequest{
		Preparing: "Mix and fry.",
	})
	if err != nil {
		t.Fatalf("preparing step failed: %v", err)
	}

	var recipes int64
	db.Model(&entities.Recipe{}).Count(&recipes)
	if recipes != 0 {
		t.Fatalf("no recipe should exist before complete, found %d", recipes)
	}

	_, err = service.SubmitQuantities(ctx, userID, domain.WizardQuantitiesRequest{
		Quantities: map[string]string{
			flour.String(): "200g",
			milk.String():  "300ml",
		},
	})
	if err != nil {
		t.Fatalf("quantities step failed: %v", err)
	}

	res, err := service.Complete(ctx, userID)
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}

	var recipe entities.Recipe
	if err := db.Where("id = ?", res.RecipeID).First(&recipe).Error; err != nil {
		t.Fatalf("recipe not persisted: %v", err)
	}
	if recipe.Name != "Pancakes" || recipe.Preparing != "Mix and fry." {
		t.Errorf("unexpected recipe contents: %+v", recipe)
	}
	if recipe.CreateByID == nil || recipe.CreateByID.String() != userID {
		t.Error("recipe should be owned by the wizard user")
	}

	var rows int64
	db.Model(&entities.IngredientRecipe{}).Where("recipe_id = ?", recipe.ID).Count(&rows)
	if rows != 2 {
		t.Errorf("expected 2 ingredient rows, got %d", rows)
	}

	if _, err := service.GetDraft(ctx, userID); err != domain.ErrDraftNotFound {
		t.Errorf("draft should be gone after complete, got %v", err)
	}
}

func TestQuantitiesMustCoverSelectionExactly(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()
	userID := uuid.New().String()

	flour := seedIngredient(t, db, "flour")

	if _, err := service.StartCreate(ctx, userID); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if _, err := service.SubmitIngredients(ctx, userID, domain.WizardIngredientsRequest{
		IngredientIDs: []string{flour.String()},
	}); err != nil {
		t.Fatalf("ingredients step failed: %v", err)
	}
	if _, err := service.SubmitDetails(ctx, userID, domain.WizardDetailsRequest{
		Name: "Bread", PreparationTime: 90,
	}); err != nil {
		t.Fatalf("details step failed: %v", err)
	}
	if _, err := service.SubmitPreparing(ctx, userID, domain.WizardPreparingRequest{
		Preparing: "Bake.",
	}); err != nil {
		t.Fatalf("preparing step failed: %v", err)
	}

	cases := []map[string]string{
		{},
		{uuid.New().String(): "100g"},
		{flour.String(): "500g", uuid.New().String(): "1 cup"},
	}
	for _, quantities := range cases {
		_, err := service.SubmitQuantities(ctx, userID, domain.WizardQuantitiesRequest{Quantities: quantities})
		if err != domain.ErrQuantitiesMismatch {
			t.Errorf("quantities %v should fail with ErrQuantitiesMismatch, got %v", quantities, err)
		}
	}
}

func TestStartEditRequiresOwnership(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()

	owner := uuid.New()
	recipe := entities.Recipe{
		ID:              uuid.New(),
		Name:            "Soup",
		Preparing:       "Boil.",
		PreparationTime: 30,
		CreateByID:      &owner,
	}
	if err := db.Create(&recipe).Error; err != nil {
		t.Fatalf("failed to seed recipe: %v", err)
	}

	if _, err := service.StartEdit(ctx, uuid.New().String(), recipe.ID.String()); err != domain.ErrNotRecipeOwner {
		t.Errorf("expected ErrNotRecipeOwner for a stranger, got %v", err)
	}

	draft, err := service.StartEdit(ctx, owner.String(), recipe.ID.String())
	if err != nil {
		t.Fatalf("owner edit failed: %v", err)
	}
	if draft.Name != "Soup" || draft.Mode != domain.WizardModeEdit {
		t.Errorf("draft not seeded from recipe: %+v", draft)
	}
	if draft.StepReached != 4 {
		t.Errorf("edit draft should open with all steps reached, got %d", draft.StepReached)
	}
}

func TestEditCompleteReconcilesIngredientRows(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()

	owner := uuid.New()
	kept := seedIngredient(t, db, "flour")
	removed := seedIngredient(t, db, "butter")
	added := seedIngredient(t, db, "milk")

	recipe := entities.Recipe{
		ID:              uuid.New(),
		Name:            "Dough",
		Preparing:       "Knead.",
		PreparationTime: 15,
		CreateByID:      &owner,
	}
	if err := db.Create(&recipe).Error; err != nil {
		t.Fatalf("failed to seed recipe: %v", err)
	}
	keptRow := entities.IngredientRecipe{
		ID: uuid.New(), IngredientID: kept, RecipeID: recipe.ID, Quantity: "100g",
	}
	removedRow := entities.IngredientRecipe{
		ID: uuid.New(), IngredientID: removed, RecipeID: recipe.ID, Quantity: "50g",
	}
	if err := db.Create(&keptRow).Error; err != nil {
		t.Fatalf("failed to seed row: %v", err)
	}
	if err := db.Create(&removedRow).Error; err != nil {
		t.Fatalf("failed to seed row: %v", err)
	}

	userID := owner.String()
	if _, err := service.StartEdit(ctx, userID, recipe.ID.String()); err != nil {
		t.Fatalf("start edit failed: %v", err)
	}
	if _, err := service.SubmitIngredients(ctx, userID, domain.WizardIngredientsRequest{
		IngredientIDs: []string{kept.String(), added.String()},
	}); err != nil {
		t.Fatalf("ingredients step failed: %v", err)
	}
	if _, err := service.SubmitQuantities(ctx, userID, domain.WizardQuantitiesRequest{
		Quantities: map[string]string{
			kept.String():  "250g",
			added.String(): "1 cup",
		},
	}); err != nil {
		t.Fatalf("quantities step failed: %v", err)
	}

	if _, err := service.Complete(ctx, userID); err != nil {
		t.Fatalf("complete failed: %v", err)
	}

	var rows []entities.IngredientRecipe
	if err := db.Where("recipe_id = ?", recipe.ID).Find(&rows).Error; err != nil {
		t.Fatalf("failed to load rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows after edit, got %d", len(rows))
	}

	byIngredient := map[uuid.UUID]entities.IngredientRecipe{}
	for _, r := range rows {
		byIngredient[r.IngredientID] = r
	}

	if _, ok := byIngredient[removed]; ok {
		t.Error("deselected ingredient row should be gone")
	}
	if got, ok := byIngredient[kept]; !ok {
		t.Error("kept ingredient row is missing")
	} else {
		if got.ID != keptRow.ID {
			t.Error("kept ingredient should preserve its row id")
		}
		if got.Quantity != "250g" {
			t.Errorf("kept row quantity = %q, want 250g", got.Quantity)
		}
	}
	if got, ok := byIngredient[added]; !ok {
		t.Error("new ingredient row is missing")
	} else if got.Quantity != "1 cup" {
		t.Errorf("new row quantity = %q, want 1 cup", got.Quantity)
	}
}

func TestSubmitIngredientsRejectsUnknownIngredient(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()
	userID := uuid.New().String()

	if _, err := service.StartCreate(ctx, userID); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	_, err := service.SubmitIngredients(ctx, userID, domain.WizardIngredientsRequest{
		IngredientIDs: []string{uuid.New().String()},
	})
	if err != domain.ErrIngredientNotFound {
		t.Errorf("expected ErrIngredientNotFound, got %v", err)
	}
}
