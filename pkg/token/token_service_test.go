package token

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
	if err := db.AutoMigrate(&entities.User{}, &entities.UserUniqueToken{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestIssueReturnsSameTokenTwice(t *testing.T) {
	db := setupTestDB(t)
	service := NewTokenService(NewTokenRepository(db))
	ctx := context.Background()
	userID := uuid.New()

	first, err := service.Issue(ctx, userID)
	if err != nil {
		t.Fatalf("first issue failed: %v", err)
	}
	second, err := service.Issue(ctx, userID)
	if err != nil {
		t.Fatalf("second issue failed: %v", err)
	}
	if first != second {
		t.Errorf("expected the same token on re-issue, got %s then %s", first, second)
	}
}

func TestValidateRejectsMalformedTokens(t *testing.T) {
	db := setupTestDB(t)
	service := NewTokenService(NewTokenRepository(db))
	ctx := context.Background()

	raw, err := service.Issue(ctx, uuid.New())
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	cases := []struct {
		name string
		raw  string
		want bool
	}{
		{"issued token", raw, true},
		{"empty", "", false},
		{"garbage", "not-a-token", false},
		{"unknown uuid", uuid.New().String(), false},
		{"uppercase form of issued token", "A" + raw[1:], false},
		{"braced form", "{" + raw + "}", false},
		{"non v4 uuid", "00000000-0000-1000-8000-000000000000", false},
	}

	for _, tc := range cases {
		if got := service.Validate(ctx, tc.raw); got != tc.want {
			t.Errorf("%s: Validate(%q) = %v, want %v", tc.name, tc.raw, got, tc.want)
		}
	}
}

func TestRedeemConsumesToken(t *testing.T) {
	db := setupTestDB(t)
	service := NewTokenService(NewTokenRepository(db))
	ctx := context.Background()
	userID := uuid.New()

	raw, err := service.Issue(ctx, userID)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	got, err := service.Redeem(ctx, raw)
	if err != nil {
		t.Fatalf("redeem failed: %v", err)
	}
	if got != userID {
		t.Errorf("redeem returned user %s, want %s", got, userID)
	}

	if _, err := service.Redeem(ctx, raw); err != domain.ErrLinkInvalid {
		t.Errorf("second redeem should fail with ErrLinkInvalid, got %v", err)
	}
	if service.Validate(ctx, raw) {
		t.Error("redeemed token should no longer validate")
	}
}

func TestRedeemUnknownToken(t *testing.T) {
	db := setupTestDB(t)
	service := NewTokenService(NewTokenRepository(db))

	if _, err := service.Redeem(context.Background(), uuid.New().String()); err != domain.ErrLinkInvalid {
		t.Errorf("expected ErrLinkInvalid, got %v", err)
	}
}
