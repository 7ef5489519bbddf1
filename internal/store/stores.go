package store

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/database"
	"gorm.io/gorm"
)

// Stores bundles every entity store over one gorm handle.
type Stores struct {
	db *gorm.DB

	Users         *UserStore
	Otps          *OtpStore
	Kits          *UIKitStore
	Payments      *PaymentStore
	Likes         *LikeStore
	Wishlists     *WishlistStore
	Comments      *CommentStore
	Notifications *NotificationStore
	RefreshTokens *RefreshTokenStore
}

func New(db *gorm.DB) *Stores {
	return &Stores{
		db:            db,
		Users:         NewUserStore(db),
		Otps:          NewOtpStore(db),
		Kits:          NewUIKitStore(db),
		Payments:      NewPaymentStore(db),
		Likes:         NewLikeStore(db),
		Wishlists:     NewWishlistStore(db),
		Comments:      NewCommentStore(db),
		Notifications: NewNotificationStore(db),
		RefreshTokens: NewRefreshTokenStore(db),
	}
}

// Transaction runs fn against a copy of the bundle bound to one transaction.
func (s *Stores) Transaction(ctx context.Context, opts database.TxOptions, fn func(tx *Stores) error) error {
	return database.WithinTransaction(ctx, s.db, opts, func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}
