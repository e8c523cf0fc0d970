package token

import (
	"context"

	"FoodBook-Backend/domain"
	"FoodBook-Backend/entities"

	"github.com/google/uuid"
)

type (
	// TokenService hands out the single-use links mailed for account
	// activation and password set. A user holds at most one live token,
	// re-requesting returns the existing one.
	TokenService interface {
		Issue(ctx context.Context, userID uuid.UUID) (string, error)
		Validate(ctx context.Context, raw string) bool
		Redeem(ctx context.Context, raw string) (uuid.UUID, error)
	}

	tokenService struct {
		tokenRepository TokenRepository
	}
)

func NewTokenService(tokenRepository TokenRepository) TokenService {
	return &tokenService{tokenRepository: tokenRepository}
}

func (s *tokenService) Issue(ctx context.Context, userID uuid.UUID) (string, error) {
	existing, err := s.tokenRepository.GetByUserID(ctx, userID)
	if err == nil {
		return existing.Token.String(), nil
	}
	if !IsNotFound(err) {
		return "", err
	}

	record := &entities.UserUniqueToken{
		Token:  uuid.New(),
		UserID: userID,
	}
	if err := s.tokenRepository.Create(ctx, record); err != nil {
		return "", err
	}
	return record.Token.String(), nil
}

// wellFormed accepts only a canonical version-4 UUID, anything else is
// treated exactly like an unknown token.
func wellFormed(raw string) (uuid.UUID, bool) {
	parsed, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	if parsed.Version() != 4 || parsed.String() != raw {
		return uuid.Nil, false
	}
	return parsed, true
}

func (s *tokenService) Validate(ctx context.Context, raw string) bool {
	parsed, ok := wellFormed(raw)
	if !ok {
		return false
	}
	exists, err := s.tokenRepository.Exists(ctx, parsed)
	if err != nil {
		return false
	}
	return exists
}

func (s *tokenService) Redeem(ctx context.Context, raw string) (uuid.UUID, error) {
	parsed, ok := wellFormed(raw)
	if !ok {
		return uuid.Nil, domain.ErrLinkInvalid
	}

	userID, err := s.tokenRepository.Redeem(ctx, parsed)
	if err != nil {
		// Deliberately collapse every failure into the one generic message.
		return uuid.Nil, domain.ErrLinkInvalid
	}
	return userID, nil
}
