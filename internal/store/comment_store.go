package store

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/models"
	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/query"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var commentFields = query.NewFields(
	[]string{"id", "content", "ui_id", "created_at", "updated_at"},
	[]string{"user_id"},
)

var commentRelations = map[string]string{
	"user": "User",
	"kit":  "UIKit",
}

type CommentStore struct {
	core[models.Comment]
}

func NewCommentStore(db *gorm.DB) *CommentStore {
	return &CommentStore{newCore[models.Comment](db, commentFields, "id", commentRelations)}
}

func (s *CommentStore) ByID(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	return s.getBy(ctx, "id = ?", id)
}

func (s *CommentStore) ByIDOrFail(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	return s.getByOrFail(ctx, "id = ?", id)
}

func (s *CommentStore) Update(ctx context.Context, id uuid.UUID, changes map[string]any) error {
	return s.updateBy(ctx, changes, "id = ?", id)
}

func (s *CommentStore) Upsert(ctx context.Context, id uuid.UUID, create models.Comment, changes map[string]any) (*models.Comment, error) {
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

func (s *CommentStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteBy(ctx, "id = ?", id)
}
