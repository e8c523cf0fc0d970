package recipe

import (
	"context"
	"testing"
	"time"

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
		&entities.CommentRecipe{},
		&entities.RecipeLike{},
		&entities.RecipeSchedule{},
		&entities.Schedule{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) uuid.UUID {
	t.Helper()

	user := entities.User{
		ID:       uuid.New(),
		Username: username,
		Email:    username + "@example.com",
		Password: "x",
		IsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return user.ID
}

func seedRecipe(t *testing.T, db *gorm.DB, name string, owner uuid.UUID) uuid.UUID {
	t.Helper()

	recipe := entities.Recipe{
		ID:              uuid.New(),
		Name:            name,
		Preparing:       "Cook.",
		PreparationTime: 10,
		CreateByID:      &owner,
	}
	if err := db.Create(&recipe).Error; err != nil {
		t.Fatalf("seed recipe %s: %v", name, err)
	}
	return recipe.ID
}

func newTestService(t *testing.T) (RecipeService, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	return NewRecipeService(NewRecipeRepository(db), nil), db
}

func TestLikeIsIdempotent(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()

	owner := seedUser(t, db, "ada")
	fan := seedUser(t, db, "grace")
	recipeID := seedRecipe(t, db, "Soup", owner)

	if err := service.LikeRecipe(ctx, recipeID.String(), fan.String()); err != nil {
		t.Fatalf("like failed: %v", err)
	}
	if err := service.LikeRecipe(ctx, recipeID.String(), fan.String()); err != nil {
		t.Fatalf("second like failed: %v", err)
	}

	detail, err := service.GetRecipeDetail(ctx, recipeID.String(), fan.String())
	if err != nil {
		t.Fatalf("detail failed: %v", err)
	}
	if detail.LikeCount != 1 {
		t.Errorf("like count = %d, want 1", detail.LikeCount)
	}
	if !detail.LikedByMe {
		t.Error("liked_by_me should be true for the liker")
	}

	if err := service.UnlikeRecipe(ctx, recipeID.String(), fan.String()); err != nil {
		t.Fatalf("unlike failed: %v", err)
	}
	if err := service.UnlikeRecipe(ctx, recipeID.String(), fan.String()); err != nil {
		t.Fatalf("second unlike failed: %v", err)
	}

	detail, err = service.GetRecipeDetail(ctx, recipeID.String(), fan.String())
	if err != nil {
		t.Fatalf("detail failed: %v", err)
	}
	if detail.LikeCount != 0 {
		t.Errorf("like count after unlike = %d, want 0", detail.LikeCount)
	}
	if detail.LikedByMe {
		t.Error("liked_by_me should be false after unlike")
	}
}

func TestCommentsNewestFirst(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()

	owner := seedUser(t, db, "ada")
	commenter := seedUser(t, db, "grace")
	recipeID := seedRecipe(t, db, "Stew", owner)

	older := entities.CommentRecipe{
		ID: uuid.New(), RecipeID: recipeID, UserID: commenter,
		Comment: "first", DateAdded: time.Now().Add(-time.Hour),
	}
	newer := entities.CommentRecipe{
		ID: uuid.New(), RecipeID: recipeID, UserID: commenter,
		Comment: "second", DateAdded: time.Now(),
	}
	if err := db.Create(&older).Error; err != nil {
		t.Fatalf("seed comment: %v", err)
	}
	if err := db.Create(&newer).Error; err != nil {
		t.Fatalf("seed comment: %v", err)
	}

	detail, err := service.GetRecipeDetail(ctx, recipeID.String(), "")
	if err != nil {
		t.Fatalf("detail failed: %v", err)
	}
	if len(detail.Comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(detail.Comments))
	}
	if detail.Comments[0].Comment != "second" || detail.Comments[1].Comment != "first" {
		t.Errorf("comments not newest first: %+v", detail.Comments)
	}
	if detail.Comments[0].Username != "grace" {
		t.Errorf("comment username = %q, want grace", detail.Comments[0].Username)
	}
}

func TestOnlyAuthorDeletesComment(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()

	owner := seedUser(t, db, "ada")
	author := seedUser(t, db, "grace")
	stranger := seedUser(t, db, "linus")
	recipeID := seedRecipe(t, db, "Pie", owner)

	res, err := service.AddComment(ctx, recipeID.String(), author.String(), domain.AddCommentRequest{Comment: "tasty"})
	if err != nil {
		t.Fatalf("add comment failed: %v", err)
	}

	if err := service.DeleteComment(ctx, res.ID, stranger.String()); err != domain.ErrNotCommentOwner {
		t.Errorf("stranger delete should fail with ErrNotCommentOwner, got %v", err)
	}
	// The recipe owner is not the comment author either.
	if err := service.DeleteComment(ctx, res.ID, owner.String()); err != domain.ErrNotCommentOwner {
		t.Errorf("recipe owner delete should fail with ErrNotCommentOwner, got %v", err)
	}
	if err := service.DeleteComment(ctx, res.ID, author.String()); err != nil {
		t.Errorf("author delete failed: %v", err)
	}
}

func TestOnlyOwnerDeletesRecipe(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()

	owner := seedUser(t, db, "ada")
	stranger := seedUser(t, db, "grace")
	recipeID := seedRecipe(t, db, "Cake", owner)

	if err := service.DeleteRecipe(ctx, recipeID.String(), stranger.String()); err != domain.ErrNotRecipeOwner {
		t.Errorf("stranger delete should fail with ErrNotRecipeOwner, got %v", err)
	}

	if err := service.DeleteRecipe(ctx, recipeID.String(), owner.String()); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}

	if _, err := service.GetRecipeDetail(ctx, recipeID.String(), ""); err != domain.ErrRecipeNotFound {
		t.Errorf("deleted recipe should be gone, got %v", err)
	}
}

func TestDeleteRecipeRemovesDependents(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()

	owner := seedUser(t, db, "ada")
	recipeID := seedRecipe(t, db, "Salad", owner)

	ing := entities.Ingredient{ID: uuid.New(), Name: "Lettuce"}
	if err := db.Create(&ing).Error; err != nil {
		t.Fatalf("seed ingredient: %v", err)
	}
	row := entities.IngredientRecipe{ID: uuid.New(), IngredientID: ing.ID, RecipeID: recipeID, Quantity: "1 head"}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("seed row: %v", err)
	}
	if _, err := service.AddComment(ctx, recipeID.String(), owner.String(), domain.AddCommentRequest{Comment: "note"}); err != nil {
		t.Fatalf("seed comment: %v", err)
	}
	if err := service.LikeRecipe(ctx, recipeID.String(), owner.String()); err != nil {
		t.Fatalf("seed like: %v", err)
	}

	if err := service.DeleteRecipe(ctx, recipeID.String(), owner.String()); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	var rows, comments, likes int64
	db.Model(&entities.IngredientRecipe{}).Where("recipe_id = ?", recipeID).Count(&rows)
	db.Model(&entities.CommentRecipe{}).Where("recipe_id = ?", recipeID).Count(&comments)
	db.Model(&entities.RecipeLike{}).Where("recipe_id = ?", recipeID).Count(&likes)
	if rows != 0 || comments != 0 || likes != 0 {
		t.Errorf("dependents survived delete: rows=%d comments=%d likes=%d", rows, comments, likes)
	}

	var ingredients int64
	db.Model(&entities.Ingredient{}).Where("id = ?", ing.ID).Count(&ingredients)
	if ingredients != 1 {
		t.Error("shared ingredient must survive the recipe")
	}
}

func TestSearchCountOnlyWhenFiltered(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()

	owner := seedUser(t, db, "ada")
	seedRecipe(t, db, "Tomato soup", owner)
	seedRecipe(t, db, "Tomato salad", owner)
	seedRecipe(t, db, "Bread", owner)

	unfiltered, err := service.GetRecipes(ctx, "", 1, 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if unfiltered.SearchCount != nil {
		t.Error("unfiltered listing must not carry a search count")
	}

	filtered, err := service.GetRecipes(ctx, "tomato", 1, 10)
	if err != nil {
		t.Fatalf("filtered list failed: %v", err)
	}
	if filtered.SearchCount == nil || *filtered.SearchCount != 2 {
		t.Errorf("search count = %v, want 2", filtered.SearchCount)
	}

	mine, err := service.GetMyRecipes(ctx, owner.String(), "", 1, 10)
	if err != nil {
		t.Fatalf("my recipes failed: %v", err)
	}
	if len(mine.Recipes) != 3 {
		t.Errorf("expected 3 own recipes, got %d", len(mine.Recipes))
	}
}
