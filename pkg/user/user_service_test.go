package user

import (
	"context"
	"mime/multipart"
	"strings"
	"testing"
	"time"

	"FoodBook-Backend/domain"
	"FoodBook-Backend/entities"
	"FoodBook-Backend/internal/utils/mailing"
	"FoodBook-Backend/pkg/jwt"
	"FoodBook-Backend/pkg/token"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type recordedMail struct {
	To      string
	Subject string
	Body    string
}

type recordingMailer struct {
	sent []recordedMail
}

func (m *recordingMailer) Send(toEmail, subject, body string) error {
	m.sent = append(m.sent, recordedMail{To: toEmail, Subject: subject, Body: body})
	return nil
}

type stubS3 struct{}

func (stubS3) UploadFile(_ *multipart.FileHeader, folder string, _ ...string) (string, error) {
	return folder + "/stub.png", nil
}
func (stubS3) DeleteFile(string) error            { return nil }
func (stubS3) GetPublicLinkKey(key string) string { return "https://cdn.test/" + key }
func (stubS3) GetObjectKeyFromLink(string) string { return "" }

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	err = db.AutoMigrate(
		&entities.User{},
		&entities.UserUniqueToken{},
		&entities.Ingredient{},
		&entities.Recipe{},
		&entities.IngredientRecipe{},
		&entities.CommentRecipe{},
		&entities.RecipeLike{},
		&entities.Schedule{},
		&entities.RecipeSchedule{},
		&entities.ScheduleLike{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func newTestService(t *testing.T) (UserService, token.TokenService, *recordingMailer, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	mailer := &recordingMailer{}
	tokenService := token.NewTokenService(token.NewTokenRepository(db))
	service := NewUserService(
		NewUserRepository(db),
		tokenService,
		jwt.NewJWTService(),
		mailer,
		stubS3{},
	)
	return service, tokenService, mailer, db
}

func registerRequest(username string) domain.RegisterUserRequest {
	return domain.RegisterUserRequest{
		Username:       username,
		Email:          username + "@example.com",
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Password:       "Str0ng!pass",
		PasswordRepeat: "Str0ng!pass",
	}
}

func TestRegisterCreatesInactiveUserAndSendsActivation(t *testing.T) {
	service, tokenService, mailer, db := newTestService(t)
	ctx := context.Background()

	res, err := service.Register(ctx, registerRequest("ada"))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	var user entities.User
	if err := db.Where("id = ?", res.ID).First(&user).Error; err != nil {
		t.Fatalf("user not created: %v", err)
	}
	if user.IsActive {
		t.Error("new user must start inactive")
	}
	if user.Password == "Str0ng!pass" {
		t.Error("password must be stored hashed")
	}

	if len(mailer.sent) != 1 {
		t.Fatalf("expected one activation mail, got %d", len(mailer.sent))
	}
	if mailer.sent[0].Subject != mailing.SubjectActivation {
		t.Errorf("unexpected subject %q", mailer.sent[0].Subject)
	}

	raw, err := tokenService.Issue(ctx, user.ID)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if !strings.Contains(mailer.sent[0].Body, raw) {
		t.Error("activation mail should carry the issued token")
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	service, _, _, _ := newTestService(t)
	ctx := context.Background()

	if _, err := service.Register(ctx, registerRequest("ada")); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := service.Register(ctx, registerRequest("ada")); err != domain.ErrUsernameTaken {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}

	req := registerRequest("grace")
	req.Email = "ada@example.com"
	if _, err := service.Register(ctx, req); err != domain.ErrEmailTaken {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestActivationFlow(t *testing.T) {
	service, tokenService, _, db := newTestService(t)
	ctx := context.Background()

	res, err := service.Register(ctx, registerRequest("ada"))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	userID := uuid.MustParse(res.ID)

	login := domain.LoginRequest{Username: "ada", Password: "Str0ng!pass"}
	if _, err := service.Login(ctx, login); err != domain.ErrAccountInactive {
		t.Errorf("login before activation should fail with ErrAccountInactive, got %v", err)
	}

	raw, err := tokenService.Issue(ctx, userID)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if err := service.Activate(ctx, raw); err != nil {
		t.Fatalf("activate failed: %v", err)
	}

	var user entities.User
	if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if !user.IsActive {
		t.Error("user should be active after redeeming the link")
	}

	if err := service.Activate(ctx, raw); err != domain.ErrLinkInvalid {
		t.Errorf("activation link must be single use, got %v", err)
	}

	loginRes, err := service.Login(ctx, login)
	if err != nil {
		t.Fatalf("login after activation failed: %v", err)
	}
	if loginRes.Token == "" {
		t.Error("login should return a token")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	service, tokenService, _, _ := newTestService(t)
	ctx := context.Background()

	res, err := service.Register(ctx, registerRequest("ada"))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	raw, _ := tokenService.Issue(ctx, uuid.MustParse(res.ID))
	if err := service.Activate(ctx, raw); err != nil {
		t.Fatalf("activate failed: %v", err)
	}

	_, err = service.Login(ctx, domain.LoginRequest{Username: "nobody", Password: "Str0ng!pass"})
	if err != domain.ErrCredentialsInvalid {
		t.Errorf("unknown user should give ErrCredentialsInvalid, got %v", err)
	}

	_, err = service.Login(ctx, domain.LoginRequest{Username: "ada", Password: "wrong"})
	if err != domain.ErrCredentialsInvalid {
		t.Errorf("wrong password should give ErrCredentialsInvalid, got %v", err)
	}
}

func TestResetPasswordBranchesOnActivation(t *testing.T) {
	service, tokenService, mailer, _ := newTestService(t)
	ctx := context.Background()

	res, err := service.Register(ctx, registerRequest("ada"))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	mailer.sent = nil

	// Inactive account: the activation link is sent again.
	if err := service.ResetPassword(ctx, domain.ResetPasswordRequest{Email: "ada@example.com"}); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if len(mailer.sent) != 1 || mailer.sent[0].Subject != mailing.SubjectActivation {
		t.Fatalf("inactive reset should resend activation mail, got %+v", mailer.sent)
	}

	raw, _ := tokenService.Issue(ctx, uuid.MustParse(res.ID))
	if err := service.Activate(ctx, raw); err != nil {
		t.Fatalf("activate failed: %v", err)
	}
	mailer.sent = nil

	if err := service.ResetPassword(ctx, domain.ResetPasswordRequest{Email: "ada@example.com"}); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if len(mailer.sent) != 1 || mailer.sent[0].Subject != mailing.SubjectPasswordSet {
		t.Fatalf("active reset should send password set mail, got %+v", mailer.sent)
	}

	if err := service.ResetPassword(ctx, domain.ResetPasswordRequest{Email: "nobody@example.com"}); err != domain.ErrEmailNotFound {
		t.Errorf("expected ErrEmailNotFound, got %v", err)
	}
}

func TestSetPasswordConsumesTokenAndEndsSessions(t *testing.T) {
	service, tokenService, _, _ := newTestService(t)
	ctx := context.Background()

	res, err := service.Register(ctx, registerRequest("ada"))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	userID := uuid.MustParse(res.ID)
	raw, _ := tokenService.Issue(ctx, userID)
	if err := service.Activate(ctx, raw); err != nil {
		t.Fatalf("activate failed: %v", err)
	}

	issuedBefore := time.Now().Add(-time.Minute)

	raw, err = tokenService.Issue(ctx, userID)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	setReq := domain.SetPasswordRequest{
		PasswordNew:    "N3w!passw0rd",
		PasswordRepeat: "N3w!passw0rd",
	}
	if err := service.SetPassword(ctx, raw, setReq); err != nil {
		t.Fatalf("set password failed: %v", err)
	}

	if err := service.SetPassword(ctx, raw, setReq); err != domain.ErrLinkInvalid {
		t.Errorf("password set link must be single use, got %v", err)
	}

	if _, err := service.Login(ctx, domain.LoginRequest{Username: "ada", Password: "Str0ng!pass"}); err != domain.ErrCredentialsInvalid {
		t.Errorf("old password should no longer work, got %v", err)
	}
	if _, err := service.Login(ctx, domain.LoginRequest{Username: "ada", Password: "N3w!passw0rd"}); err != nil {
		t.Errorf("new password should work, got %v", err)
	}

	if err := service.VerifySession(ctx, res.ID, issuedBefore); err != domain.ErrTokenInvalid {
		t.Errorf("sessions issued before the change should be rejected, got %v", err)
	}
	if err := service.VerifySession(ctx, res.ID, time.Now().Add(time.Minute)); err != nil {
		t.Errorf("fresh sessions should pass, got %v", err)
	}
}

func TestUpdatePasswordRequiresCurrentPassword(t *testing.T) {
	service, tokenService, _, _ := newTestService(t)
	ctx := context.Background()

	res, err := service.Register(ctx, registerRequest("ada"))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	raw, _ := tokenService.Issue(ctx, uuid.MustParse(res.ID))
	if err := service.Activate(ctx, raw); err != nil {
		t.Fatalf("activate failed: %v", err)
	}

	err = service.UpdatePassword(ctx, res.ID, domain.UpdatePasswordRequest{
		Password:       "wrong",
		PasswordNew:    "N3w!passw0rd",
		PasswordRepeat: "N3w!passw0rd",
	})
	if err != domain.ErrWrongPassword {
		t.Errorf("expected ErrWrongPassword, got %v", err)
	}

	err = service.UpdatePassword(ctx, res.ID, domain.UpdatePasswordRequest{
		Password:       "Str0ng!pass",
		PasswordNew:    "N3w!passw0rd",
		PasswordRepeat: "N3w!passw0rd",
	})
	if err != nil {
		t.Fatalf("update password failed: %v", err)
	}

	if _, err := service.Login(ctx, domain.LoginRequest{Username: "ada", Password: "N3w!passw0rd"}); err != nil {
		t.Errorf("login with new password failed: %v", err)
	}
}

func TestDeleteUserKeepsSharedContent(t *testing.T) {
	service, tokenService, _, db := newTestService(t)
	ctx := context.Background()

	res, err := service.Register(ctx, registerRequest("ada"))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	userID := uuid.MustParse(res.ID)
	raw, _ := tokenService.Issue(ctx, userID)
	if err := service.Activate(ctx, raw); err != nil {
		t.Fatalf("activate failed: %v", err)
	}

	recipe := entities.Recipe{
		ID: uuid.New(), Name: "Soup", Preparing: "Boil.", PreparationTime: 10, CreateByID: &userID,
	}
	if err := db.Create(&recipe).Error; err != nil {
		t.Fatalf("seed recipe: %v", err)
	}

	if err := service.DeleteUser(ctx, res.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	var users int64
	db.Model(&entities.User{}).Where("id = ?", userID).Count(&users)
	if users != 0 {
		t.Error("user row should be gone")
	}

	var kept entities.Recipe
	if err := db.Where("id = ?", recipe.ID).First(&kept).Error; err != nil {
		t.Fatalf("recipe should survive its creator: %v", err)
	}
	if kept.CreateByID != nil {
		t.Error("surviving recipe should have its creator cleared")
	}
}
