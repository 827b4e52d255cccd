package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrDraftNotFound is returned when no pantry draft exists for the user.
var ErrDraftNotFound = errors.New("pantry draft not found")

const pantryTTL = 24 * time.Hour

// PantryDraft is the server-side ingredient editing state for one user:
// the identified list, the raw user-entered text fields and the photo the
// identification ran against.
type PantryDraft struct {
	UserID       uuid.UUID `json:"user_id"`
	Identified   []string  `json:"identified"`
	AddedText    string    `json:"added_text"`
	ExcludedText string    `json:"excluded_text"`
	Instructions string    `json:"instructions"`
	PhotoURL     string    `json:"photo_url"`
	Generation   int64     `json:"generation"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ApplyIdentification replaces the identified list wholesale when gen still
// matches the draft's generation. A stale generation means a newer
// identification started after this one; its result is discarded.
func (d *PantryDraft) ApplyIdentification(gen int64, ingredients []string) bool {
	if gen != d.Generation {
		return false
	}
	d.Identified = ingredients
	return true
}

// RemoveIdentified drops one ingredient from the identified list by exact
// string match.
func (d *PantryDraft) RemoveIdentified(name string) {
	out := d.Identified[:0]
	for _, ing := range d.Identified {
		if ing != name {
			out = append(out, ing)
		}
	}
	d.Identified = out
}

// PantryService stores pantry drafts in Redis, one per user
type PantryService struct {
	redis *redis.Client
}

// NewPantryService creates a new PantryService instance
func NewPantryService(redisClient *redis.Client) *PantryService {
	return &PantryService{redis: redisClient}
}

func pantryKey(userID uuid.UUID) string {
	return fmt.Sprintf("pantry:draft:%s", userID)
}

// Get retrieves the user's pantry draft
func (s *PantryService) Get(ctx context.Context, userID uuid.UUID) (*PantryDraft, error) {
	data, err := s.redis.Get(ctx, pantryKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pantry draft: %w", err)
	}

	var draft PantryDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pantry draft: %w", err)
	}

	return &draft, nil
}

// GetOrCreate retrieves the user's pantry draft, creating an empty one if
// none exists.
func (s *PantryService) GetOrCreate(ctx context.Context, userID uuid.UUID) (*PantryDraft, error) {
	draft, err := s.Get(ctx, userID)
	if err == nil {
		return draft, nil
	}
	if !errors.Is(err, ErrDraftNotFound) {
		return nil, err
	}

	draft = &PantryDraft{
		UserID:     userID,
		Identified: []string{},
		CreatedAt:  time.Now(),
	}
	if err := s.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Save writes the draft back with a refreshed TTL
func (s *PantryService) Save(ctx context.Context, draft *PantryDraft) error {
	draft.UpdatedAt = time.Now()

	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal pantry draft: %w", err)
	}

	if err := s.redis.Set(ctx, pantryKey(draft.UserID), data, pantryTTL).Err(); err != nil {
		return fmt.Errorf("failed to save pantry draft: %w", err)
	}

	return nil
}

// Delete removes the user's pantry draft
func (s *PantryService) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := s.redis.Del(ctx, pantryKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete pantry draft: %w", err)
	}
	return nil
}

// BeginIdentification bumps the draft's generation and returns the new
// value. The caller passes it back to ApplyIdentification so a response
// that raced with a newer request is not applied.
func (s *PantryService) BeginIdentification(ctx context.Context, userID uuid.UUID, photoURL string) (int64, error) {
	draft, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return 0, err
	}

	draft.Generation++
	if photoURL != "" {
		draft.PhotoURL = photoURL
	}
	if err := s.Save(ctx, draft); err != nil {
		return 0, err
	}

	return draft.Generation, nil
}

// CompleteIdentification applies an identification result to the draft if
// the generation still matches. It reports whether the result was applied.
func (s *PantryService) CompleteIdentification(ctx context.Context, userID uuid.UUID, gen int64, ingredients []string) (bool, error) {
	draft, err := s.Get(ctx, userID)
	if err != nil {
		return false, err
	}

	if !draft.ApplyIdentification(gen, ingredients) {
		return false, nil
	}

	if err := s.Save(ctx, draft); err != nil {
		return false, err
	}
	return true, nil
}
