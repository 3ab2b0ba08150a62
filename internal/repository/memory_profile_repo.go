package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/anaskhan28/calorie-guy/internal/models"
)

// ErrProfileNotFound is returned by every profile store when no profile
// exists for the given user id.
var ErrProfileNotFound = errors.New("profile not found")

// MemoryProfileRepository keeps profiles in process memory. It is the default
// store; profiles do not survive a restart.
type MemoryProfileRepository struct {
	mu       sync.RWMutex
	profiles map[string]models.UserProfile
}

func NewMemoryProfileRepository() *MemoryProfileRepository {
	return &MemoryProfileRepository{
		profiles: make(map[string]models.UserProfile),
	}
}

func (r *MemoryProfileRepository) Get(_ context.Context, userID string) (*models.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.profiles[userID]
	if !ok {
		return nil, ErrProfileNotFound
	}
	return &profile, nil
}

func (r *MemoryProfileRepository) Save(_ context.Context, profile *models.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.profiles[profile.UserID] = *profile
	return nil
}

// ForEach calls fn with a copy of every stored profile. The lock is not held
// while fn runs, so fn may call Save.
func (r *MemoryProfileRepository) ForEach(_ context.Context, fn func(profile *models.UserProfile) error) error {
	r.mu.RLock()
	snapshot := make([]models.UserProfile, 0, len(r.profiles))
	for _, profile := range r.profiles {
		snapshot = append(snapshot, profile)
	}
	r.mu.RUnlock()

	for i := range snapshot {
		if err := fn(&snapshot[i]); err != nil {
			return err
		}
	}
	return nil
}
