package store

import (
	"context"
	"time"

	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/models"
	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/query"
	"gorm.io/gorm"
)

var refreshTokenFields = query.NewFields(
	[]string{"id", "token_hash", "expires_at", "revoked", "created_at"},
	[]string{"user_id"},
)

type RefreshTokenStore struct {
	core[models.RefreshToken]
}

func NewRefreshTokenStore(db *gorm.DB) *RefreshTokenStore {
	return &RefreshTokenStore{newCore[models.RefreshToken](db, refreshTokenFields, "id", nil)}
}

func (s *RefreshTokenStore) ByHash(ctx context.Context, hash string) (*models.RefreshToken, error) {
	return s.getBy(ctx, "token_hash = ? AND revoked = false", hash)
}

func (s *RefreshTokenStore) Revoke(ctx context.Context, hash string) error {
	return s.updateBy(ctx, map[string]any{"revoked": true}, "token_hash = ?", hash)
}

func (s *RefreshTokenStore) RevokeAllForUser(ctx context.Context, userID uint) (int64, error) {
	return s.UpdateMany(ctx, query.Eq("user_id", userID), map[string]any{"revoked": true})
}

func (s *RefreshTokenStore) DeleteExpired(ctx context.Context) (int64, error) {
	return s.DeleteMany(ctx, query.Lt("expires_at", time.Now()))
}
