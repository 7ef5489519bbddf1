package services

import (
	"testing"

	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/models"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to models.PaymentStatus
		want     bool
	}{
		{models.PaymentPending, models.PaymentCompleted, true},
		{models.PaymentPending, models.PaymentFailed, true},
		{models.PaymentCompleted, models.PaymentRefunded, true},
		{models.PaymentPending, models.PaymentRefunded, false},
		{models.PaymentCompleted, models.PaymentPending, false},
		{models.PaymentFailed, models.PaymentCompleted, false},
		{models.PaymentRefunded, models.PaymentCompleted, false},
		{models.PaymentCompleted, models.PaymentCompleted, false},
	}

	for _, tt := range tests {
		if got := canTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("canTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}
