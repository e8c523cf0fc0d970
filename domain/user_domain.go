package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessRegister       = "registration accepted, check your mailbox for the activation link"
	MessageSuccessActivate       = "account activated, you can log in now"
	MessageSuccessLogin          = "login success"
	MessageSuccessGetPanel       = "success get user panel"
	MessageSuccessUpdateUser     = "profile updated successfully"
	MessageSuccessUpdatePassword = "password updated, please log in again"
	MessageSuccessResetPassword  = "check your mailbox for the link"
	MessageSuccessSetPassword    = "new password saved, you can log in now"
	MessageSuccessDeleteUser     = "account deleted"
	MessageSuccessUploadAvatar   = "avatar uploaded successfully"

	MessageFailedRegister       = "failed to register"
	MessageFailedActivate       = "failed to activate account"
	MessageFailedLogin          = "failed to login"
	MessageFailedGetPanel       = "failed to get user panel"
	MessageFailedUpdateUser     = "failed to update profile"
	MessageFailedUpdatePassword = "failed to update password"
	MessageFailedResetPassword  = "failed to request password reset"
	MessageFailedSetPassword    = "failed to set new password"
	MessageFailedDeleteUser     = "failed to delete account"
	MessageFailedUploadAvatar   = "failed to upload avatar"

	// One generic message for every token failure, the flow never reveals
	// which check rejected the link.
	ErrLinkInvalid = errors.New("link is invalid or malformed")

	ErrUsernameTaken      = errors.New("username already registered")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailNotFound      = errors.New("no user with this email address")
	ErrWrongPassword      = errors.New("wrong password")
	ErrAccountInactive    = errors.New("account is not activated yet")
	ErrCredentialsInvalid = errors.New("invalid username or password")
)

type (
	RegisterUserRequest struct {
		Username       string `json:"username" validate:"required,max=64"`
		Email          string `json:"email" validate:"required,email,max=128"`
		FirstName      string `json:"first_name" validate:"required,max=64"`
		LastName       string `json:"last_name" validate:"required,max=64"`
		Password       string `json:"password" validate:"required,strongpassword"`
		PasswordRepeat string `json:"password_repeat" validate:"required,eqfield=Password"`
	}

	RegisterUserResponse struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
	}

	LoginRequest struct {
		Username string `json:"username" validate:"required,max=64"`
		Password string `json:"password" validate:"required,max=128"`
	}

	LoginResponse struct {
		Token    string `json:"token"`
		Username string `json:"username"`
		Next     string `json:"next,omitempty"`
	}

	UpdateUserRequest struct {
		Username  string `json:"username" validate:"omitempty,max=64"`
		Email     string `json:"email" validate:"omitempty,email,max=128"`
		FirstName string `json:"first_name" validate:"omitempty,max=64"`
		LastName  string `json:"last_name" validate:"omitempty,max=64"`
	}

	UploadAvatarRequest struct {
		Avatar *multipart.FileHeader `json:"avatar" form:"avatar" validate:"required"`
	}

	UpdatePasswordRequest struct {
		Password       string `json:"password" validate:"required,max=128"`
		PasswordNew    string `json:"password_new" validate:"required,strongpassword"`
		PasswordRepeat string `json:"password_repeat" validate:"required,eqfield=PasswordNew"`
	}

	ResetPasswordRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	SetPasswordRequest struct {
		PasswordNew    string `json:"password_new" validate:"required,strongpassword"`
		PasswordRepeat string `json:"password_repeat" validate:"required,eqfield=PasswordNew"`
	}

	UserPanelResponse struct {
		ID            string    `json:"id"`
		Username      string    `json:"username"`
		Email         string    `json:"email"`
		FirstName     string    `json:"first_name"`
		LastName      string    `json:"last_name"`
		AvatarURL     string    `json:"avatar_url,omitempty"`
		MemberSince   time.Time `json:"member_since"`
		RecipeCount   int64     `json:"recipe_count"`
		ScheduleCount int64     `json:"schedule_count"`
		CommentCount  int64     `json:"comment_count"`
	}
)
