package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/config"
	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/dto"
	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/models"
	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/store"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired refresh token")
	ErrUserNotFound       = errors.New("user not found")
	ErrOtpMismatch        = errors.New("verification code does not match")
	ErrOtpExpired         = errors.New("verification code has expired")
	ErrAccountSuspended   = errors.New("account is suspended")
)

type AuthService struct {
	stores *store.Stores
	cfg    *config.Config
	mail   *EmailService
	now    func() time.Time
}

func NewAuthService(stores *store.Stores, cfg *config.Config, mail *EmailService) *AuthService {
	return &AuthService{stores: stores, cfg: cfg, mail: mail, now: time.Now}
}

func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if len(req.Password) < 8 {
		return nil, errors.New("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	hashStr := string(hash)
	user := models.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: &hashStr,
		Role:         models.RoleCustomer,
		Status:       models.StatusActive,
	}

	if err := s.stores.Users.Create(ctx, &user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.generateTokenPair(ctx, &user)
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.stores.Users.ByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if user.Status == models.StatusSuspended {
		return nil, ErrAccountSuspended
	}
	return s.generateTokenPair(ctx, user)
}

// GoogleSignIn finds the account by google_id, links an existing email
// account, or creates a password-less one.
func (s *AuthService) GoogleSignIn(ctx context.Context, googleID, email, fullName string) (*dto.AuthResponse, error) {
	user, err := s.stores.Users.ByGoogleID(ctx, googleID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		user, err = s.stores.Users.ByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if user != nil {
			if err := s.stores.Users.Update(ctx, user.ID, map[string]any{"google_id": googleID}); err != nil {
				return nil, err
			}
			user.GoogleID = &googleID
		}
	}
	if user == nil {
		created := models.User{
			FullName: fullName,
			Email:    email,
			GoogleID: &googleID,
			Role:     models.RoleCustomer,
			Status:   models.StatusActive,
		}
		if err := s.stores.Users.Create(ctx, &created); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				return nil, ErrEmailTaken
			}
			return nil, fmt.Errorf("failed to create google user: %w", err)
		}
		user = &created
	}
	if user.Status == models.StatusSuspended {
		return nil, ErrAccountSuspended
	}
	return s.generateTokenPair(ctx, user)
}

// RequestOtp issues (or reissues) the verification code for an address.
// The account does not have to exist yet: the code also serves signup.
func (s *AuthService) RequestOtp(ctx context.Context, email string) error {
	code, err := randomDigits(s.cfg.OTPLength)
	if err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}
	if _, err := s.stores.Otps.Upsert(ctx, email, code); err != nil {
		return fmt.Errorf("failed to store code: %w", err)
	}
	if err := s.mail.SendOtp(email, code, s.cfg.OTPExpiry); err != nil {
		slog.Error("otp email delivery failed", "error", err)
		return fmt.Errorf("failed to send code: %w", err)
	}
	return nil
}

// VerifyOtp consumes the outstanding code. A match deletes the row (codes
// are single-use) and activates the matching account when one exists; the
// response carries a token pair only in that case.
func (s *AuthService) VerifyOtp(ctx context.Context, email, code string) (*dto.AuthResponse, error) {
	record, err := s.stores.Otps.ByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrOtpMismatch
	}
	if err := checkOtp(record, code, s.now(), s.cfg.OTPExpiry); err != nil {
		if errors.Is(err, ErrOtpExpired) {
			// Expired codes are dead weight either way.
			_ = s.stores.Otps.DeleteByEmail(ctx, email)
		}
		return nil, err
	}

	if err := s.stores.Otps.DeleteByEmail(ctx, email); err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	user, err := s.stores.Users.ByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if user.Status == models.StatusInactive {
		if err := s.stores.Users.Update(ctx, user.ID, map[string]any{"status": models.StatusActive}); err != nil {
			return nil, err
		}
		user.Status = models.StatusActive
	}
	return s.generateTokenPair(ctx, user)
}

// checkOtp is the pure verification rule: the stored code must match and
// must have been (re)issued within ttl, measured from updated_at.
func checkOtp(record *models.AuthOtp, code string, now time.Time, ttl time.Duration) error {
	if now.Sub(record.UpdatedAt) > ttl {
		return ErrOtpExpired
	}
	if record.Otp != code {
		return ErrOtpMismatch
	}
	return nil
}

func (s *AuthService) Refresh(ctx context.Context, rawToken string) (*dto.AuthResponse, error) {
	stored, err := s.stores.RefreshTokens.ByHash(ctx, hashToken(rawToken))
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, ErrInvalidToken
	}
	if s.now().After(stored.ExpiresAt) {
		_ = s.stores.RefreshTokens.Revoke(ctx, stored.TokenHash)
		return nil, ErrInvalidToken
	}

	// Rotation: the presented token is spent.
	if err := s.stores.RefreshTokens.Revoke(ctx, stored.TokenHash); err != nil {
		return nil, err
	}

	user, err := s.stores.Users.ByIDOrFail(ctx, stored.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.generateTokenPair(ctx, user)
}

func (s *AuthService) Logout(ctx context.Context, rawToken string) error {
	err := s.stores.RefreshTokens.Revoke(ctx, hashToken(rawToken))
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	return err
}

// DeleteAccount removes the user row; likes, wishlists, comments, payments
// and notifications cascade, authored kits stay behind with a null creator.
func (s *AuthService) DeleteAccount(ctx context.Context, userID uint, password string) error {
	user, err := s.stores.Users.ByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if user.PasswordHash != nil {
		if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
			return ErrInvalidCredentials
		}
	}
	return s.stores.Users.Delete(ctx, userID)
}

func (s *AuthService) generateTokenPair(ctx context.Context, user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.generateRefreshToken(ctx, user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: dto.UserResponse{
			ID:       user.ID,
			FullName: user.FullName,
			Email:    user.Email,
			Role:     string(user.Role),
			Status:   string(user.Status),
		},
	}, nil
}

func (s *AuthService) generateAccessToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   fmt.Sprintf("%d", user.ID),
		"email": user.Email,
		"role":  string(user.Role),
		"iat":   s.now().Unix(),
		"exp":   s.now().Add(s.cfg.JWTAccessExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *AuthService) generateRefreshToken(ctx context.Context, user *models.User) (string, error) {
	rawBytes := make([]byte, 32)
	if _, err := rand.Read(rawBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	rawToken := base64.URLEncoding.EncodeToString(rawBytes)

	record := models.RefreshToken{
		UserID:    user.ID,
		TokenHash: hashToken(rawToken),
		ExpiresAt: s.now().Add(s.cfg.JWTRefreshExpiry),
	}
	if err := s.stores.RefreshTokens.Create(ctx, &record); err != nil {
		return "", fmt.Errorf("failed to store refresh token: %w", err)
	}
	return rawToken, nil
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", h)
}

func randomDigits(length int) (string, error) {
	const digits = "0123456789"
	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			return "", err
		}
		b[i] = digits[n.Int64()]
	}
	return string(b), nil
}
