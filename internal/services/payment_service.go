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

var (
	ErrPaymentNotFound   = errors.New("payment not found")
	ErrInvalidTransition = errors.New("invalid payment status transition")
	ErrDuplicateIntent   = errors.New("stripe payment intent already recorded")
	ErrInvalidAmount     = errors.New("amount must be positive")
)

// PaymentService records purchases. The store enforces no transition rules;
// this layer only allows PENDING→COMPLETED/FAILED and COMPLETED→REFUNDED.
type PaymentService struct {
	stores *store.Stores
}

func NewPaymentService(stores *store.Stores) *PaymentService {
	return &PaymentService{stores: stores}
}

func (s *PaymentService) Record(ctx context.Context, userID uint, kitID uuid.UUID, amount float64, stripeIntentID *string) (*models.Payment, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	kit, err := s.stores.Kits.ByID(ctx, kitID)
	if err != nil {
		return nil, err
	}
	if kit == nil {
		return nil, ErrKitNotFound
	}

	payment := models.Payment{
		Amount:                amount,
		Status:                models.PaymentPending,
		StripePaymentIntentID: stripeIntentID,
		UserID:                userID,
		UIKitID:               kitID,
	}
	if err := s.stores.Payments.Create(ctx, &payment); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrDuplicateIntent
		}
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}
	return &payment, nil
}

// SetStatus moves a payment through its lifecycle. Completion bumps the
// kit's download counter and notifies the buyer in the same transaction.
func (s *PaymentService) SetStatus(ctx context.Context, paymentID uuid.UUID, target models.PaymentStatus) (*models.Payment, error) {
	if !target.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, target)
	}

	var updated *models.Payment
	err := s.stores.Transaction(ctx, database.TxOptions{}, func(tx *store.Stores) error {
		payment, err := tx.Payments.ByID(ctx, paymentID)
		if err != nil {
			return err
		}
		if payment == nil {
			return ErrPaymentNotFound
		}
		if !canTransition(payment.Status, target) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, payment.Status, target)
		}

		if err := tx.Payments.Update(ctx, paymentID, map[string]any{"status": target}); err != nil {
			return err
		}

		if target == models.PaymentCompleted {
			if err := tx.Kits.IncrementDownloads(ctx, payment.UIKitID); err != nil {
				return err
			}
			kitID := payment.UIKitID
			n := models.Notification{
				Type:    models.NotifyPayment,
				Message: "Your purchase is complete",
				UserID:  payment.UserID,
				UIKitID: &kitID,
			}
			if err := tx.Notifications.Create(ctx, &n); err != nil {
				return err
			}
		}

		updated, err = tx.Payments.ByIDOrFail(ctx, paymentID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// canTransition is the payment lifecycle rule.
func canTransition(from, to models.PaymentStatus) bool {
	switch from {
	case models.PaymentPending:
		return to == models.PaymentCompleted || to == models.PaymentFailed
	case models.PaymentCompleted:
		return to == models.PaymentRefunded
	default:
		return false
	}
}
