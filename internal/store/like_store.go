package store

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/models"
	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/query"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var likeFields = query.NewFields(
	[]string{"id", "ui_id", "created_at"},
	[]string{"user_id"},
)

var likeRelations = map[string]string{
	"user": "User",
	"kit":  "UIKit",
}

type LikeStore struct {
	core[models.Like]
}

func NewLikeStore(db *gorm.DB) *LikeStore {
	return &LikeStore{newCore[models.Like](db, likeFields, "id", likeRelations)}
}

func (s *LikeStore) ByID(ctx context.Context, id uuid.UUID) (*models.Like, error) {
	return s.getBy(ctx, "id = ?", id)
}

// ByPair looks up the unique (user, kit) row.
func (s *LikeStore) ByPair(ctx context.Context, userID uint, kitID uuid.UUID) (*models.Like, error) {
	return s.getBy(ctx, "user_id = ? AND ui_id = ?", userID, kitID)
}

func (s *LikeStore) ByPairOrFail(ctx context.Context, userID uint, kitID uuid.UUID) (*models.Like, error) {
	return s.getByOrFail(ctx, "user_id = ? AND ui_id = ?", userID, kitID)
}

// UpsertPair ensures the pair row exists; like rows have no mutable fields,
// so an existing row is returned as-is.
func (s *LikeStore) UpsertPair(ctx context.Context, userID uint, kitID uuid.UUID) (*models.Like, error) {
	existing, err := s.ByPair(ctx, userID, kitID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	row := models.Like{UserID: userID, UIKitID: kitID}
	if err := s.Create(ctx, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *LikeStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteBy(ctx, "id = ?", id)
}

func (s *LikeStore) DeletePair(ctx context.Context, userID uint, kitID uuid.UUID) error {
	return s.deleteBy(ctx, "user_id = ? AND ui_id = ?", userID, kitID)
}
