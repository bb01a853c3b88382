package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/horeca-prospection/backend/config"
	"github.com/horeca-prospection/backend/ent"
	"github.com/horeca-prospection/backend/ent/refreshtoken"
	"github.com/horeca-prospection/backend/ent/user"
	"github.com/horeca-prospection/backend/pkg/auth"
	"github.com/horeca-prospection/backend/pkg/models"
)

// Auth flow errors mapped to HTTP statuses by the handlers
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountInactive    = errors.New("this account has been deactivated")
	ErrInvalidRefresh     = errors.New("invalid or expired refresh token")
)

// AuthService handles registration, login and token rotation
type AuthService struct {
	db  *ent.Client
	cfg *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(db *ent.Client, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

// Register creates a company and its first admin user, then logs them in
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	exists, err := s.db.User.Query().Where(user.EmailEQ(req.Email)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	comp, err := tx.Company.Create().
		SetName(req.CompanyName).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	u, err := tx.User.Create().
		SetEmail(req.Email).
		SetPasswordHash(hashed).
		SetRole(user.RoleAdmin).
		SetFirstName(req.FirstName).
		SetLastName(req.LastName).
		SetCompanyID(comp.ID).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit registration: %w", err)
	}

	return s.issueTokens(ctx, u, comp.ID)
}

// Login verifies credentials and issues a token pair
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	u, err := s.db.User.Query().
		Where(user.EmailEQ(req.Email)).
		WithCompany().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, ErrAccountInactive
	}

	if err := s.db.User.UpdateOneID(u.ID).SetLastLoginAt(time.Now()).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to record login: %w", err)
	}

	var companyID uuid.UUID
	if u.Edges.Company != nil {
		companyID = u.Edges.Company.ID
	}

	return s.issueTokens(ctx, u, companyID)
}

// Refresh rotates a refresh token: the presented token is revoked and
// a new pair is issued.
func (s *AuthService) Refresh(ctx context.Context, req models.RefreshRequest) (*models.AuthResponse, error) {
	hash := auth.HashToken(req.RefreshToken)

	rt, err := s.db.RefreshToken.Query().
		Where(refreshtoken.TokenHashEQ(hash)).
		WithUser(func(q *ent.UserQuery) {
			q.WithCompany()
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrInvalidRefresh
		}
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}

	if rt.RevokedAt != nil || time.Now().After(rt.ExpiresAt) {
		return nil, ErrInvalidRefresh
	}

	u := rt.Edges.User
	if u == nil {
		return nil, ErrInvalidRefresh
	}
	if !u.IsActive {
		return nil, ErrAccountInactive
	}

	err = s.db.RefreshToken.UpdateOneID(rt.ID).
		SetRevokedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	var companyID uuid.UUID
	if u.Edges.Company != nil {
		companyID = u.Edges.Company.ID
	}

	return s.issueTokens(ctx, u, companyID)
}

// Logout revokes the presented refresh token. Unknown tokens are a
// no-op so logout is idempotent.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	hash := auth.HashToken(refreshToken)

	_, err := s.db.RefreshToken.Update().
		Where(refreshtoken.TokenHashEQ(hash), refreshtoken.RevokedAtIsNil()).
		SetRevokedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return nil
}

// Me returns the authenticated user's profile
func (s *AuthService) Me(ctx context.Context, id uuid.UUID) (*models.UserInfo, error) {
	u, err := s.db.User.Query().
		Where(user.IDEQ(id)).
		WithCompany().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	info := ToUserInfo(u)
	return &info, nil
}

// UpdateProfile applies a partial profile update for the
// authenticated user
func (s *AuthService) UpdateProfile(ctx context.Context, id uuid.UUID, req models.UpdateProfileRequest) (*models.UserInfo, error) {
	update := s.db.User.UpdateOneID(id)
	touched := false

	if req.FirstName != nil {
		update = update.SetFirstName(*req.FirstName)
		touched = true
	}
	if req.LastName != nil {
		update = update.SetLastName(*req.LastName)
		touched = true
	}
	if req.Phone != nil {
		update = update.SetPhone(*req.Phone)
		touched = true
	}
	if req.AvatarURL != nil {
		update = update.SetAvatarURL(*req.AvatarURL)
		touched = true
	}
	if req.Locale != nil {
		update = update.SetLocale(*req.Locale)
		touched = true
	}

	if !touched {
		return s.Me(ctx, id)
	}

	u, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	info := ToUserInfo(u)
	return &info, nil
}

// PurgeExpiredTokens deletes refresh tokens past their expiry.
// Run from the nightly maintenance job.
func (s *AuthService) PurgeExpiredTokens(ctx context.Context) (int, error) {
	n, err := s.db.RefreshToken.Delete().
		Where(refreshtoken.ExpiresAtLT(time.Now())).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge refresh tokens: %w", err)
	}
	return n, nil
}

func (s *AuthService) issueTokens(ctx context.Context, u *ent.User, companyID uuid.UUID) (*models.AuthResponse, error) {
	access, err := auth.GenerateAccessToken(u.ID, u.Email, string(u.Role), companyID, s.cfg.JWTSecret, s.cfg.JWTExpirationMinutes)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refresh, err := auth.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}

	expiresAt := time.Now().AddDate(0, 0, s.cfg.JWTRefreshExpiryDays)
	_, err = s.db.RefreshToken.Create().
		SetTokenHash(auth.HashToken(refresh)).
		SetExpiresAt(expiresAt).
		SetUserID(u.ID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	info := ToUserInfo(u)
	if info.CompanyID == (uuid.UUID{}) {
		info.CompanyID = companyID
	}

	return &models.AuthResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         &info,
	}, nil
}
