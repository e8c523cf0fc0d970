package user

import (
	"context"
	"errors"
	"time"

	"FoodBook-Backend/domain"
	"FoodBook-Backend/entities"
	"FoodBook-Backend/internal/utils"
	"FoodBook-Backend/internal/utils/mailing"
	"FoodBook-Backend/internal/utils/storage"
	"FoodBook-Backend/pkg/jwt"
	"FoodBook-Backend/pkg/token"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterUserRequest) (domain.RegisterUserResponse, error)
		Activate(ctx context.Context, rawToken string) error
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		GetPanel(ctx context.Context, userID string) (domain.UserPanelResponse, error)
		UpdateUser(ctx context.Context, userID string, req domain.UpdateUserRequest) error
		UploadAvatar(ctx context.Context, userID string, req domain.UploadAvatarRequest) (string, error)
		UpdatePassword(ctx context.Context, userID string, req domain.UpdatePasswordRequest) error
		ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error
		SetPassword(ctx context.Context, rawToken string, req domain.SetPasswordRequest) error
		DeleteUser(ctx context.Context, userID string) error
		// VerifySession rejects JWTs issued before the user's last password
		// change, used by the auth middleware.
		VerifySession(ctx context.Context, userID string, issuedAt time.Time) error
	}

	userService struct {
		userRepository UserRepository
		tokenService   token.TokenService
		jwtService     jwt.JWTService
		mailer         mailing.Mailer
		s3             storage.AwsS3
	}
)

func NewUserService(
	userRepository UserRepository,
	tokenService token.TokenService,
	jwtService jwt.JWTService,
	mailer mailing.Mailer,
	s3 storage.AwsS3,
) UserService {
	return &userService{
		userRepository: userRepository,
		tokenService:   tokenService,
		jwtService:     jwtService,
		mailer:         mailer,
		s3:             s3,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterUserRequest) (domain.RegisterUserResponse, error) {
	if _, err := s.userRepository.GetByUsername(ctx, req.Username); err == nil {
		return domain.RegisterUserResponse{}, domain.ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RegisterUserResponse{}, err
	}

	if _, err := s.userRepository.GetByEmail(ctx, req.Email); err == nil {
		return domain.RegisterUserResponse{}, domain.ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RegisterUserResponse{}, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return domain.RegisterUserResponse{}, err
	}

	user := &entities.User{
		ID:        uuid.New(),
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  hash,
		IsActive:  false,
	}
	if err := s.userRepository.Create(ctx, user); err != nil {
		return domain.RegisterUserResponse{}, err
	}

	newToken, err := s.tokenService.Issue(ctx, user.ID)
	if err != nil {
		return domain.RegisterUserResponse{}, err
	}

	appURL := utils.GetConfig("APP_URL")
	if err := s.mailer.Send(
		user.Email,
		mailing.SubjectActivation,
		mailing.ActivationBody(appURL, user.FullName(), newToken),
	); err != nil {
		return domain.RegisterUserResponse{}, err
	}

	return domain.RegisterUserResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
	}, nil
}

func (s *userService) Activate(ctx context.Context, rawToken string) error {
	userID, err := s.tokenService.Redeem(ctx, rawToken)
	if err != nil {
		return domain.ErrLinkInvalid
	}

	user, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		return domain.ErrLinkInvalid
	}

	user.IsActive = true
	return s.userRepository.Update(ctx, user)
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrCredentialsInvalid
		}
		return domain.LoginResponse{}, err
	}

	if !utils.VerifyPassword(user.Password, req.Password) {
		return domain.LoginResponse{}, domain.ErrCredentialsInvalid
	}

	if !user.IsActive {
		return domain.LoginResponse{}, domain.ErrAccountInactive
	}

	return domain.LoginResponse{
		Token:    s.jwtService.GenerateTokenUser(user.ID.String()),
		Username: user.Username,
	}, nil
}

func (s *userService) GetPanel(ctx context.Context, userID string) (domain.UserPanelResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.UserPanelResponse{}, domain.ErrParseUUID
	}

	user, err := s.userRepository.GetByID(ctx, userUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserPanelResponse{}, domain.ErrUserNotFound
		}
		return domain.UserPanelResponse{}, err
	}

	recipes, schedules, comments, err := s.userRepository.CountOwnedContent(ctx, userUUID)
	if err != nil {
		return domain.UserPanelResponse{}, err
	}

	return domain.UserPanelResponse{
		ID:            user.ID.String(),
		Username:      user.Username,
		Email:         user.Email,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		AvatarURL:     user.AvatarURL,
		MemberSince:   user.CreatedAt,
		RecipeCount:   recipes,
		ScheduleCount: schedules,
		CommentCount:  comments,
	}, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req domain.UpdateUserRequest) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	user, err := s.userRepository.GetByID(ctx, userUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if req.Username != "" && req.Username != user.Username {
		if _, err := s.userRepository.GetByUsername(ctx, req.Username); err == nil {
			return domain.ErrUsernameTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		user.Username = req.Username
	}

	if req.Email != "" && req.Email != user.Email {
		if _, err := s.userRepository.GetByEmail(ctx, req.Email); err == nil {
			return domain.ErrEmailTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		user.Email = req.Email
	}

	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}

	return s.userRepository.Update(ctx, user)
}

func (s *userService) UploadAvatar(ctx context.Context, userID string, req domain.UploadAvatarRequest) (string, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return "", domain.ErrParseUUID
	}

	user, err := s.userRepository.GetByID(ctx, userUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrUserNotFound
		}
		return "", err
	}

	objectKey, err := s.s3.UploadFile(req.Avatar, "avatars", storage.AllowImage...)
	if err != nil {
		return "", err
	}

	if user.AvatarURL != "" {
		if existingKey := s.s3.GetObjectKeyFromLink(user.AvatarURL); existingKey != "" {
			_ = s.s3.DeleteFile(existingKey)
		}
	}

	user.AvatarURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.userRepository.Update(ctx, user); err != nil {
		return "", err
	}
	return user.AvatarURL, nil
}

func (s *userService) UpdatePassword(ctx context.Context, userID string, req domain.UpdatePasswordRequest) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	user, err := s.userRepository.GetByID(ctx, userUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if !utils.VerifyPassword(user.Password, req.Password) {
		return domain.ErrWrongPassword
	}

	hash, err := utils.HashPassword(req.PasswordNew)
	if err != nil {
		return err
	}

	// Stamping the change ends every outstanding session, the user has to
	// log in again with the new password.
	changedAt := time.Now().Truncate(time.Second)
	user.Password = hash
	user.PasswordChangedAt = &changedAt

	return s.userRepository.Update(ctx, user)
}

func (s *userService) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	user, err := s.userRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrEmailNotFound
		}
		return err
	}

	newToken, err := s.tokenService.Issue(ctx, user.ID)
	if err != nil {
		return err
	}

	appURL := utils.GetConfig("APP_URL")

	// Resetting the password of an account that never activated makes no
	// sense, send the activation link again instead.
	if !user.IsActive {
		return s.mailer.Send(
			user.Email,
			mailing.SubjectActivation,
			mailing.ActivationBody(appURL, user.FullName(), newToken),
		)
	}

	return s.mailer.Send(
		user.Email,
		mailing.SubjectPasswordSet,
		mailing.PasswordSetBody(appURL, user.FullName(), newToken),
	)
}

func (s *userService) SetPassword(ctx context.Context, rawToken string, req domain.SetPasswordRequest) error {
	userID, err := s.tokenService.Redeem(ctx, rawToken)
	if err != nil {
		return domain.ErrLinkInvalid
	}

	user, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		return domain.ErrLinkInvalid
	}

	hash, err := utils.HashPassword(req.PasswordNew)
	if err != nil {
		return err
	}

	changedAt := time.Now().Truncate(time.Second)
	user.Password = hash
	user.PasswordChangedAt = &changedAt

	// No automatic login, the user authenticates with the new password.
	return s.userRepository.Update(ctx, user)
}

func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	user, err := s.userRepository.GetByID(ctx, userUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if user.AvatarURL != "" {
		if objectKey := s.s3.GetObjectKeyFromLink(user.AvatarURL); objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.userRepository.Delete(ctx, userUUID)
}

func (s *userService) VerifySession(ctx context.Context, userID string, issuedAt time.Time) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	user, err := s.userRepository.GetByID(ctx, userUUID)
	if err != nil {
		return domain.ErrUserNotFound
	}

	if user.PasswordChangedAt != nil && issuedAt.Before(*user.PasswordChangedAt) {
		return domain.ErrTokenInvalid
	}
	return nil
}
