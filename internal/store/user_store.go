package store

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/models"
	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/query"
	"gorm.io/gorm"
)

var userFields = query.NewFields(
	[]string{"full_name", "email", "password_hash", "google_id", "role", "status", "created_at", "updated_at"},
	[]string{"user_id"},
)

var userRelations = map[string]string{
	"payments":      "Payments",
	"kits":          "Kits",
	"likes":         "Likes",
	"wishlists":     "Wishlists",
	"comments":      "Comments",
	"notifications": "Notifications",
}

type UserStore struct {
	core[models.User]
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{newCore[models.User](db, userFields, "user_id", userRelations)}
}

func (s *UserStore) ByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getBy(ctx, "user_id = ?", id)
}

func (s *UserStore) ByIDOrFail(ctx context.Context, id uint) (*models.User, error) {
	return s.getByOrFail(ctx, "user_id = ?", id)
}

func (s *UserStore) ByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getBy(ctx, "email = ?", email)
}

func (s *UserStore) ByEmailOrFail(ctx context.Context, email string) (*models.User, error) {
	return s.getByOrFail(ctx, "email = ?", email)
}

func (s *UserStore) ByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	return s.getBy(ctx, "google_id = ?", googleID)
}

func (s *UserStore) Update(ctx context.Context, id uint, changes map[string]any) error {
	return s.updateBy(ctx, changes, "user_id = ?", id)
}

// Upsert keys on email: update when the address is taken, insert otherwise.
func (s *UserStore) Upsert(ctx context.Context, email string, create models.User, changes map[string]any) (*models.User, error) {
	existing, err := s.ByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		if err := s.Create(ctx, &create); err != nil {
			return nil, err
		}
		return &create, nil
	}
	if err := s.Update(ctx, existing.ID, changes); err != nil {
		return nil, err
	}
	return s.ByIDOrFail(ctx, existing.ID)
}

func (s *UserStore) Delete(ctx context.Context, id uint) error {
	return s.deleteBy(ctx, "user_id = ?", id)
}
