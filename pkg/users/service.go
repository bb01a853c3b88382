package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/horeca-prospection/backend/ent"
	"github.com/horeca-prospection/backend/ent/company"
	"github.com/horeca-prospection/backend/ent/user"
	"github.com/horeca-prospection/backend/pkg/auth"
	"github.com/horeca-prospection/backend/pkg/models"
)

// Service errors mapped to HTTP statuses by the handlers
var (
	ErrNotFound      = errors.New("user not found")
	ErrEmailTaken    = errors.New("a user with this email already exists")
	ErrSelfDelete    = errors.New("you cannot delete your own account")
	ErrWrongPassword = errors.New("current password is incorrect")
)

// Service handles user management business logic
type Service struct {
	db *ent.Client
}

// NewService creates a new user service
func NewService(db *ent.Client) *Service {
	return &Service{db: db}
}

// List returns the company's users with filters and pagination
func (s *Service) List(ctx context.Context, companyID uuid.UUID, req models.UserListRequest) (*models.UserListResponse, error) {
	req.Page, req.Limit = models.PageDefaults(req.Page, req.Limit)

	query := s.db.User.Query()

	if companyID != (uuid.UUID{}) {
		query = query.Where(user.HasCompanyWith(company.IDEQ(companyID)))
	}
	if req.Role != "" {
		query = query.Where(user.RoleEQ(user.Role(req.Role)))
	}
	if req.IsActive != nil {
		query = query.Where(user.IsActiveEQ(*req.IsActive))
	}

	total, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	offset := (req.Page - 1) * req.Limit

	rows, err := query.
		Limit(req.Limit).
		Offset(offset).
		Order(ent.Asc(user.FieldEmail)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}

	infos := make([]models.UserInfo, len(rows))
	for i, u := range rows {
		infos[i] = ToUserInfo(u)
	}

	return &models.UserListResponse{
		Users:      infos,
		Pagination: models.NewPagination(total, req.Page, req.Limit),
	}, nil
}

// GetByID retrieves a single user by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.UserInfo, error) {
	u, err := s.db.User.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	info := ToUserInfo(u)
	return &info, nil
}

// Create creates a team member inside the admin's company
func (s *Service) Create(ctx context.Context, companyID uuid.UUID, req models.CreateUserRequest) (*models.UserInfo, error) {
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

	create := s.db.User.Create().
		SetEmail(req.Email).
		SetPasswordHash(hashed).
		SetRole(user.Role(req.Role)).
		SetFirstName(req.FirstName).
		SetLastName(req.LastName)

	if companyID != (uuid.UUID{}) {
		create = create.SetCompanyID(companyID)
	}
	if req.Phone != "" {
		create = create.SetPhone(req.Phone)
	}

	u, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	info := ToUserInfo(u)
	return &info, nil
}

// Update applies a partial update to a user
func (s *Service) Update(ctx context.Context, id uuid.UUID, req models.UpdateUserRequest) (*models.UserInfo, error) {
	update := s.db.User.UpdateOneID(id)
	touched := false

	if req.Role != nil {
		update = update.SetRole(user.Role(*req.Role))
		touched = true
	}
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
	if req.IsActive != nil {
		update = update.SetIsActive(*req.IsActive)
		touched = true
	}

	if !touched {
		return s.GetByID(ctx, id)
	}

	u, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	info := ToUserInfo(u)
	return &info, nil
}

// Delete removes a user. Deleting your own account is blocked.
func (s *Service) Delete(ctx context.Context, callerID, id uuid.UUID) error {
	if callerID == id {
		return ErrSelfDelete
	}

	err := s.db.User.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}

// ChangePassword verifies the current password and stores a new hash
func (s *Service) ChangePassword(ctx context.Context, id uuid.UUID, req models.ChangePasswordRequest) error {
	u, err := s.db.User.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if !auth.CheckPassword(u.PasswordHash, req.CurrentPassword) {
		return ErrWrongPassword
	}

	hashed, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	err = s.db.User.UpdateOneID(id).SetPasswordHash(hashed).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

// ToUserInfo converts an Ent user to a response model
func ToUserInfo(u *ent.User) models.UserInfo {
	info := models.UserInfo{
		ID:        u.ID,
		Email:     u.Email,
		Role:      string(u.Role),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		AvatarURL: u.AvatarURL,
		Locale:    u.Locale,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
	if u.LastLoginAt != nil {
		info.LastLoginAt = u.LastLoginAt.Format(time.RFC3339)
	}
	if u.Edges.Company != nil {
		info.CompanyID = u.Edges.Company.ID
	}
	return info
}
