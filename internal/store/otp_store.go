package store

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/models"
	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/query"
	"gorm.io/gorm"
)

var otpFields = query.NewFields(
	[]string{"email", "otp", "created_at", "updated_at"},
	[]string{"id"},
)

type OtpStore struct {
	core[models.AuthOtp]
}

func NewOtpStore(db *gorm.DB) *OtpStore {
	return &OtpStore{newCore[models.AuthOtp](db, otpFields, "id", nil)}
}

func (s *OtpStore) ByEmail(ctx context.Context, email string) (*models.AuthOtp, error) {
	return s.getBy(ctx, "email = ?", email)
}

func (s *OtpStore) ByEmailOrFail(ctx context.Context, email string) (*models.AuthOtp, error) {
	return s.getByOrFail(ctx, "email = ?", email)
}

// Upsert replaces the outstanding code for an address; re-issuing bumps
// updated_at, which is what the expiry check reads.
func (s *OtpStore) Upsert(ctx context.Context, email, code string) (*models.AuthOtp, error) {
	existing, err := s.ByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		row := models.AuthOtp{Email: email, Otp: code}
		if err := s.Create(ctx, &row); err != nil {
			return nil, err
		}
		return &row, nil
	}
	if err := s.updateBy(ctx, map[string]any{"otp": code}, "email = ?", email); err != nil {
		return nil, err
	}
	return s.ByEmailOrFail(ctx, email)
}

func (s *OtpStore) DeleteByEmail(ctx context.Context, email string) error {
	return s.deleteBy(ctx, "email = ?", email)
}
