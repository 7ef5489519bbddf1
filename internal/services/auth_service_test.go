package services

import (
	"errors"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/models"
)

func TestCheckOtp(t *testing.T) {
	issued := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	record := &models.AuthOtp{Email: "a@b.dev", Otp: "482913", UpdatedAt: issued}
	ttl := 10 * time.Minute

	tests := []struct {
		name    string
		code    string
		now     time.Time
		wantErr error
	}{
		{"fresh match", "482913", issued.Add(5 * time.Minute), nil},
		{"boundary still valid", "482913", issued.Add(ttl), nil},
		{"just expired", "482913", issued.Add(ttl + time.Second), ErrOtpExpired},
		{"wrong code", "000000", issued.Add(time.Minute), ErrOtpMismatch},
		{"expired beats mismatch", "000000", issued.Add(time.Hour), ErrOtpExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkOtp(record, tt.code, tt.now, ttl)
			if !errors.Is(err, tt.wantErr) && !(err == nil && tt.wantErr == nil) {
				t.Errorf("checkOtp() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRandomDigits(t *testing.T) {
	code, err := randomDigits(6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(code) != 6 {
		t.Fatalf("len = %d, want 6", len(code))
	}
	for _, c := range code {
		if c < '0' || c > '9' {
			t.Errorf("non-digit %q in code %q", c, code)
		}
	}
}

func TestHashTokenStable(t *testing.T) {
	a := hashToken("token-one")
	b := hashToken("token-one")
	c := hashToken("token-two")
	if a != b {
		t.Error("same input must hash identically")
	}
	if a == c {
		t.Error("different inputs must not collide")
	}
	if len(a) != 64 {
		t.Errorf("hex sha256 should be 64 chars, got %d", len(a))
	}
}
