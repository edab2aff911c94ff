package staff

import (
	"context"
	"strings"
	"time"

	"github.com/shoplane/admin-backend/internal/auth"
	"github.com/shoplane/admin-backend/internal/pkg/apperror"
	"github.com/shoplane/admin-backend/internal/pkg/request"
)

const minPasswordLength = 8

// CreateParams carries the fields for a new staff account.
type CreateParams struct {
	Email       string
	Password    string
	DisplayName string
	Role        Role
}

// UpdateParams carries optional updates; nil fields are left untouched.
type UpdateParams struct {
	Email       *string
	Password    *string
	DisplayName *string
	Role        *Role
	IsActive    *bool
}

// Service defines business logic around staff accounts and authentication.
type Service interface {
	Login(ctx context.Context, email, password string) (*Staff, error)
	GetByID(ctx context.Context, id string) (*Staff, error)
	List(ctx context.Context, params request.ListParams, role string) ([]*Staff, int, error)
	Create(ctx context.Context, p CreateParams) (*Staff, error)
	Update(ctx context.Context, id string, p UpdateParams) (*Staff, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	hasher auth.PasswordHasher
}

// NewService creates a staff service over the given principal store.
func NewService(repo Repository, hasher auth.PasswordHasher) Service {
	return &service{
		repo:   repo,
		hasher: hasher,
	}
}

// Login verifies credentials against the principal store. Unknown emails,
// wrong passwords and deactivated accounts all yield the same 401 so the
// endpoint does not reveal which part failed.
func (s *service) Login(ctx context.Context, email, password string) (*Staff, error) {
	member, err := s.repo.FindByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		return nil, apperror.Unauthorized("invalid email or password")
	}

	if err := s.hasher.Compare(member.PasswordHash, password); err != nil {
		return nil, apperror.Unauthorized("invalid email or password")
	}

	if !member.IsActive {
		return nil, apperror.Unauthorized("invalid email or password")
	}

	if err := s.repo.UpdateLastLogin(ctx, member.ID, time.Now().UTC()); err != nil {
		return nil, err
	}

	return member, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Staff, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, params request.ListParams, role string) ([]*Staff, int, error) {
	return s.repo.List(ctx, params, role)
}

func (s *service) Create(ctx context.Context, p CreateParams) (*Staff, error) {
	var violations []apperror.FieldViolation

	email := strings.TrimSpace(strings.ToLower(p.Email))
	if email == "" {
		violations = append(violations, apperror.FieldViolation{Field: "email", Message: "is required"})
	}
	if len(p.Password) < minPasswordLength {
		violations = append(violations, apperror.FieldViolation{Field: "password", Message: "must be at least 8 characters"})
	}
	if strings.TrimSpace(p.DisplayName) == "" {
		violations = append(violations, apperror.FieldViolation{Field: "display_name", Message: "is required"})
	}
	if !p.Role.Valid() {
		violations = append(violations, apperror.FieldViolation{Field: "role", Message: "must be one of: CUSTOMER, VENDOR, MANAGER, ADMIN"})
	}
	if len(violations) > 0 {
		return nil, apperror.NewValidation(violations)
	}

	hash, err := s.hasher.Hash(p.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	member := &Staff{
		Email:        email,
		PasswordHash: hash,
		DisplayName:  strings.TrimSpace(p.DisplayName),
		Role:         p.Role,
		IsActive:     true,
	}

	if err := s.repo.Create(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *service) Update(ctx context.Context, id string, p UpdateParams) (*Staff, error) {
	member, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var violations []apperror.FieldViolation

	if p.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*p.Email))
		if email == "" {
			violations = append(violations, apperror.FieldViolation{Field: "email", Message: "cannot be empty"})
		} else {
			member.Email = email
		}
	}
	if p.DisplayName != nil {
		if strings.TrimSpace(*p.DisplayName) == "" {
			violations = append(violations, apperror.FieldViolation{Field: "display_name", Message: "cannot be empty"})
		} else {
			member.DisplayName = strings.TrimSpace(*p.DisplayName)
		}
	}
	if p.Role != nil {
		if !p.Role.Valid() {
			violations = append(violations, apperror.FieldViolation{Field: "role", Message: "must be one of: CUSTOMER, VENDOR, MANAGER, ADMIN"})
		} else {
			member.Role = *p.Role
		}
	}
	if p.Password != nil {
		if len(*p.Password) < minPasswordLength {
			violations = append(violations, apperror.FieldViolation{Field: "password", Message: "must be at least 8 characters"})
		} else {
			hash, err := s.hasher.Hash(*p.Password)
			if err != nil {
				return nil, apperror.Internal(err)
			}
			member.PasswordHash = hash
		}
	}
	if p.IsActive != nil {
		member.IsActive = *p.IsActive
	}

	if len(violations) > 0 {
		return nil, apperror.NewValidation(violations)
	}

	if err := s.repo.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
