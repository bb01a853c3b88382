package models

import "github.com/google/uuid"

// UserInfo represents user information in responses
type UserInfo struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	FirstName   string    `json:"firstName,omitempty"`
	LastName    string    `json:"lastName,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	AvatarURL   string    `json:"avatarUrl,omitempty"`
	Locale      string    `json:"locale"`
	IsActive    bool      `json:"isActive"`
	CompanyID   uuid.UUID `json:"companyId,omitempty"`
	LastLoginAt string    `json:"lastLoginAt,omitempty"`
	CreatedAt   string    `json:"createdAt"`
}

// CreateUserRequest represents an admin creating a team member
type CreateUserRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Role      string `json:"role" validate:"required,oneof=admin manager rep"`
	FirstName string `json:"firstName" validate:"required,min=2"`
	LastName  string `json:"lastName" validate:"required,min=2"`
	Phone     string `json:"phone" validate:"omitempty"`
}

// UpdateUserRequest represents a partial user update.
// Pointer fields distinguish "absent" from "set to zero value".
type UpdateUserRequest struct {
	Role      *string `json:"role" validate:"omitempty,oneof=admin manager rep"`
	FirstName *string `json:"firstName" validate:"omitempty,min=2"`
	LastName  *string `json:"lastName" validate:"omitempty,min=2"`
	Phone     *string `json:"phone"`
	AvatarURL *string `json:"avatarUrl" validate:"omitempty,url"`
	Locale    *string `json:"locale" validate:"omitempty,oneof=fr en"`
	IsActive  *bool   `json:"isActive"`
}

// UpdateProfileRequest lets a user edit their own profile. Role and
// activity changes stay on the admin user endpoints.
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,min=2"`
	LastName  *string `json:"lastName" validate:"omitempty,min=2"`
	Phone     *string `json:"phone"`
	AvatarURL *string `json:"avatarUrl" validate:"omitempty,url"`
	Locale    *string `json:"locale" validate:"omitempty,oneof=fr en"`
}

// UserListRequest represents user listing filters
type UserListRequest struct {
	Role     string `query:"role" validate:"omitempty,oneof=admin manager rep"`
	IsActive *bool  `query:"isActive"`
	Page     int    `query:"page"`
	Limit    int    `query:"limit"`
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Users      []UserInfo     `json:"users"`
	Pagination PaginationInfo `json:"pagination"`
}
