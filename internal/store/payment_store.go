package store

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/models"
	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/query"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var paymentFields = query.NewFields(
	[]string{"id", "status", "stripe_payment_intent_id", "ui_id", "created_at", "updated_at"},
	[]string{"amount", "user_id"},
)

var paymentRelations = map[string]string{
	"user": "User",
	"kit":  "UIKit",
}

type PaymentStore struct {
	core[models.Payment]
}

func NewPaymentStore(db *gorm.DB) *PaymentStore {
	return &PaymentStore{newCore[models.Payment](db, paymentFields, "id", paymentRelations)}
}

func (s *PaymentStore) ByID(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	return s.getBy(ctx, "id = ?", id)
}

func (s *PaymentStore) ByIDOrFail(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	return s.getByOrFail(ctx, "id = ?", id)
}

func (s *PaymentStore) ByStripeIntent(ctx context.Context, intentID string) (*models.Payment, error) {
	return s.getBy(ctx, "stripe_payment_intent_id = ?", intentID)
}

func (s *PaymentStore) Update(ctx context.Context, id uuid.UUID, changes map[string]any) error {
	return s.updateBy(ctx, changes, "id = ?", id)
}

func (s *PaymentStore) Upsert(ctx context.Context, id uuid.UUID, create models.Payment, changes map[string]any) (*models.Payment, error) {
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

func (s *PaymentStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteBy(ctx, "id = ?", id)
}
