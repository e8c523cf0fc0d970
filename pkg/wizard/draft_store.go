package wizard

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"FoodBook-Backend/domain"

	"github.com/redis/go-redis/v9"
)

// DraftTTL bounds how long an abandoned wizard draft survives.
const DraftTTL = 24 * time.Hour

type DraftStore interface {
	Get(ctx context.Context, userID string) (*domain.RecipeDraft, error)
	Save(ctx context.Context, userID string, draft *domain.RecipeDraft) error
	Delete(ctx context.Context, userID string) error
}

type redisDraftStore struct {
	client *redis.Client
}

func NewRedisDraftStore(client *redis.Client) DraftStore {
	return &redisDraftStore{client: client}
}

func draftKey(userID string) string {
	return "recipe_draft:" + userID
}

func (s *redisDraftStore) Get(ctx context.Context, userID string) (*domain.RecipeDraft, error) {
	raw, err := s.client.Get(ctx, draftKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrDraftNotFound
		}
		return nil, err
	}

	var draft domain.RecipeDraft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (s *redisDraftStore) Save(ctx context.Context, userID string, draft *domain.RecipeDraft) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, draftKey(userID), raw, DraftTTL).Err()
}

func (s *redisDraftStore) Delete(ctx context.Context, userID string) error {
	return s.client.Del(ctx, draftKey(userID)).Err()
}

// memoryDraftStore keeps drafts in a map. Used when no redis address is
// configured and in tests.
type memoryDraftStore struct {
	mu     sync.RWMutex
	drafts map[string]domain.RecipeDraft
}

func NewMemoryDraftStore() DraftStore {
	return &memoryDraftStore{drafts: make(map[string]domain.RecipeDraft)}
}

func (s *memoryDraftStore) Get(_ context.Context, userID string) (*domain.RecipeDraft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	draft, ok := s.drafts[userID]
	if !ok {
		return nil, domain.ErrDraftNotFound
	}
	copied := draft
	return &copied, nil
}

func (s *memoryDraftStore) Save(_ context.Context, userID string, draft *domain.RecipeDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.drafts[userID] = *draft
	return nil
}

func (s *memoryDraftStore) Delete(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.drafts, userID)
	return nil
}
