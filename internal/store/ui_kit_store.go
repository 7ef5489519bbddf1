package store

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/models"
	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/query"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// The jsonb metadata columns (tags, specifications, highlights, showcase)
// are schema-less blobs: writable and equality-comparable, nothing more.
var uiKitFields = query.NewFields(
	[]string{"id", "title", "price", "author", "category", "image_src", "google_file_id",
		"color", "overview", "file_type", "tags", "specifications", "highlights", "showcase",
		"created_at", "updated_at"},
	[]string{"downloads", "likes", "rating", "creator_id"},
)

var uiKitRelations = map[string]string{
	"creator":   "Creator",
	"payments":  "Payments",
	"likes":     "LikeRows",
	"wishlists": "Wishlists",
	"comments":  "Comments",
}

type UIKitStore struct {
	core[models.UIKit]
}

func NewUIKitStore(db *gorm.DB) *UIKitStore {
	return &UIKitStore{newCore[models.UIKit](db, uiKitFields, "id", uiKitRelations)}
}

func (s *UIKitStore) ByID(ctx context.Context, id uuid.UUID) (*models.UIKit, error) {
	return s.getBy(ctx, "id = ?", id)
}

func (s *UIKitStore) ByIDOrFail(ctx context.Context, id uuid.UUID) (*models.UIKit, error) {
	return s.getByOrFail(ctx, "id = ?", id)
}

func (s *UIKitStore) Update(ctx context.Context, id uuid.UUID, changes map[string]any) error {
	return s.updateBy(ctx, changes, "id = ?", id)
}

func (s *UIKitStore) Upsert(ctx context.Context, id uuid.UUID, create models.UIKit, changes map[string]any) (*models.UIKit, error) {
	existing, err := s.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		if err := s.Create(ctx, &create); err != nil {
			return nil, err
		}
		return &create, nil
	}
	if err := s.Update(ctx, id, changes); err != nil {
		return nil, err
	}
	return s.ByIDOrFail(ctx, id)
}

func (s *UIKitStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteBy(ctx, "id = ?", id)
}

// AdjustLikes shifts the denormalized like counter; delta may be negative.
func (s *UIKitStore) AdjustLikes(ctx context.Context, id uuid.UUID, delta int) error {
	result := s.model(ctx).Where("id = ?", id).
		Update("likes", gorm.Expr("likes + ?", delta))
	if result.Error != nil {
		return mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementDownloads bumps the download counter by one.
func (s *UIKitStore) IncrementDownloads(ctx context.Context, id uuid.UUID) error {
	result := s.model(ctx).Where("id = ?", id).
		Update("downloads", gorm.Expr("downloads + 1"))
	if result.Error != nil {
		return mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
