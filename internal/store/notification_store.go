package store

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/models"
	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/query"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var notificationFields = query.NewFields(
	[]string{"id", "type", "message", "is_read", "ui_id", "created_at"},
	[]string{"user_id"},
)

var notificationRelations = map[string]string{
	"user": "User",
	"kit":  "UIKit",
}

type NotificationStore struct {
	core[models.Notification]
}

func NewNotificationStore(db *gorm.DB) *NotificationStore {
	return &NotificationStore{newCore[models.Notification](db, notificationFields, "id", notificationRelations)}
}

func (s *NotificationStore) ByID(ctx context.Context, id uuid.UUID) (*models.Notification, error) {
	return s.getBy(ctx, "id = ?", id)
}

func (s *NotificationStore) ByIDOrFail(ctx context.Context, id uuid.UUID) (*models.Notification, error) {
	return s.getByOrFail(ctx, "id = ?", id)
}

func (s *NotificationStore) MarkRead(ctx context.Context, id uuid.UUID) error {
	return s.updateBy(ctx, map[string]any{"is_read": true}, "id = ?", id)
}

// MarkAllRead flips every unread notification of a recipient; returns the
// number flipped.
func (s *NotificationStore) MarkAllRead(ctx context.Context, userID uint) (int64, error) {
	return s.UpdateMany(ctx,
		query.And(query.Eq("user_id", userID), query.Eq("is_read", false)),
		map[string]any{"is_read": true})
}

func (s *NotificationStore) Upsert(ctx context.Context, id uuid.UUID, create models.Notification, changes map[string]any) (*models.Notification, error) {
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
	if err := s.updateBy(ctx, changes, "id = ?", id); err != nil {
		return nil, err
	}
	return s.getByOrFail(ctx, "id = ?", id)
}

func (s *NotificationStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteBy(ctx, "id = ?", id)
}
