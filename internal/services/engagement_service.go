package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/database"
	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/models"
	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/store"
	"github.com/google/uuid"
)

var ErrKitNotFound = errors.New("kit not found")

// EngagementService owns the like/wishlist toggle semantics: one row per
// (user, kit) pair, the denormalized like counter kept in step inside the
// same transaction, and a notification to the kit's creator on each add.
type EngagementService struct {
	stores *store.Stores
}

func NewEngagementService(stores *store.Stores) *EngagementService {
	return &EngagementService{stores: stores}
}

// ToggleLike likes an unliked kit and unlikes a liked one. Returns whether
// the kit is liked after the call.
func (s *EngagementService) ToggleLike(ctx context.Context, userID uint, kitID uuid.UUID) (bool, error) {
	liked := false
	err := s.stores.Transaction(ctx, database.TxOptions{}, func(tx *store.Stores) error {
		kit, err := tx.Kits.ByID(ctx, kitID)
		if err != nil {
			return err
		}
		if kit == nil {
			return ErrKitNotFound
		}

		existing, err := tx.Likes.ByPair(ctx, userID, kitID)
		if err != nil {
			return err
		}
		if existing != nil {
			if err := tx.Likes.Delete(ctx, existing.ID); err != nil {
				return err
			}
			return tx.Kits.AdjustLikes(ctx, kitID, -1)
		}

		like := models.Like{UserID: userID, UIKitID: kitID}
		if err := tx.Likes.Create(ctx, &like); err != nil {
			// A concurrent like of the same pair; treat it as already liked.
			if errors.Is(err, store.ErrDuplicate) {
				liked = true
				return nil
			}
			return err
		}
		if err := tx.Kits.AdjustLikes(ctx, kitID, 1); err != nil {
			return err
		}
		liked = true
		return notifyCreator(ctx, tx, kit, userID, models.NotifyLike, "Someone liked your kit %q")
	})
	return liked, err
}

// ToggleWishlist adds or removes the kit from the user's wishlist. Returns
// whether the kit is wishlisted after the call.
func (s *EngagementService) ToggleWishlist(ctx context.Context, userID uint, kitID uuid.UUID) (bool, error) {
	wishlisted := false
	err := s.stores.Transaction(ctx, database.TxOptions{}, func(tx *store.Stores) error {
		kit, err := tx.Kits.ByID(ctx, kitID)
		if err != nil {
			return err
		}
		if kit == nil {
			return ErrKitNotFound
		}

		existing, err := tx.Wishlists.ByPair(ctx, userID, kitID)
		if err != nil {
			return err
		}
		if existing != nil {
			return tx.Wishlists.Delete(ctx, existing.ID)
		}

		entry := models.Wishlist{UserID: userID, UIKitID: kitID}
		if err := tx.Wishlists.Create(ctx, &entry); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				wishlisted = true
				return nil
			}
			return err
		}
		wishlisted = true
		return notifyCreator(ctx, tx, kit, userID, models.NotifyWishlist, "Someone wishlisted your kit %q")
	})
	return wishlisted, err
}

// notifyCreator writes a notification to the kit's creator. Kits without a
// creator (deleted or system-seeded) and self-engagement stay silent.
func notifyCreator(ctx context.Context, tx *store.Stores, kit *models.UIKit, actorID uint, typ models.NotificationType, format string) error {
	if kit.CreatorID == nil || *kit.CreatorID == actorID {
		return nil
	}
	kitID := kit.ID
	n := models.Notification{
		Type:    typ,
		Message: fmt.Sprintf(format, kit.Title),
		UserID:  *kit.CreatorID,
		UIKitID: &kitID,
	}
	return tx.Notifications.Create(ctx, &n)
}
