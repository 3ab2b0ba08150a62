package services

import (
	"context"

	"github.com/anaskhan28/calorie-guy/internal/models"
)

// ProfileStore is the profile backing store contract. Both the in-memory and
// the Postgres repositories satisfy it; a missing profile is reported as
// repository.ErrProfileNotFound.
type ProfileStore interface {
	Get(ctx context.Context, userID string) (*models.UserProfile, error)
	Save(ctx context.Context, profile *models.UserProfile) error
	ForEach(ctx context.Context, fn func(profile *models.UserProfile) error) error
}
