package store

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/models"
	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/query"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var wishlistFields = query.NewFields(
	[]string{"id", "ui_id", "created_at"},
	[]string{"user_id"},
)

var wishlistRelations = map[string]string{
	"user": "User",
	"kit":  "UIKit",
}

type WishlistStore struct {
	core[models.Wishlist]
}

func NewWishlistStore(db *gorm.DB) *WishlistStore {
	return &WishlistStore{newCore[models.Wishlist](db, wishlistFields, "id", wishlistRelations)}
}

func (s *WishlistStore) ByID(ctx context.Context, id uuid.UUID) (*models.Wishlist, error) {
	return s.getBy(ctx, "id = ?", id)
}

func (s *WishlistStore) ByPair(ctx context.Context, userID uint, kitID uuid.UUID) (*models.Wishlist, error) {
	return s.getBy(ctx, "user_id = ? AND ui_id = ?", userID, kitID)
}

func (s *WishlistStore) ByPairOrFail(ctx context.Context, userID uint, kitID uuid.UUID) (*models.Wishlist, error) {
	return s.getByOrFail(ctx, "user_id = ? AND ui_id = ?", userID, kitID)
}

// UpsertPair ensures the pair row exists; wishlist rows have no mutable
// fields, so an existing row is returned as-is.
func (s *WishlistStore) UpsertPair(ctx context.Context, userID uint, kitID uuid.UUID) (*models.Wishlist, error) {
	existing, err := s.ByPair(ctx, userID, kitID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	row := models.Wishlist{UserID: userID, UIKitID: kitID}
	if err := s.Create(ctx, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *WishlistStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteBy(ctx, "id = ?", id)
}

func (s *WishlistStore) DeletePair(ctx context.Context, userID uint, kitID uuid.UUID) error {
	return s.deleteBy(ctx, "user_id = ? AND ui_id = ?", userID, kitID)
}
