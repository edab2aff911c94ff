package category

import (
	"context"
	"strings"

	"github.com/shoplane/admin-backend/internal/pkg/apperror"
	"github.com/shoplane/admin-backend/internal/pkg/request"
	"github.com/shoplane/admin-backend/internal/pkg/slug"
)

// CreateParams carries the fields for a new category.
type CreateParams struct {
	Name        string
	Description string
}

// UpdateParams carries optional updates; nil fields are left untouched.
type UpdateParams struct {
	Name        *string
	Description *string
}

// Service defines business logic related to categories.
type Service interface {
	Create(ctx context.Context, p CreateParams) (*Category, error)
	GetByID(ctx context.Context, id string) (*Category, error)
	List(ctx context.Context, params request.ListParams) ([]*Category, int, error)
	Update(ctx context.Context, id string, p UpdateParams) (*Category, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

// NewService creates a category service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, p CreateParams) (*Category, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, apperror.NewValidation([]apperror.FieldViolation{
			{Field: "name", Message: "is required"},
		})
	}

	cat := &Category{
		Name:        name,
		Slug:        slug.Make(name),
		Description: strings.TrimSpace(p.Description),
	}

	if err := s.repo.Create(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, params request.ListParams) ([]*Category, int, error) {
	return s.repo.List(ctx, params)
}

func (s *service) Update(ctx context.Context, id string, p UpdateParams) (*Category, error) {
	cat, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return nil, apperror.NewValidation([]apperror.FieldViolation{
				{Field: "name", Message: "cannot be empty"},
			})
		}
		cat.Name = name
		// The slug tracks the name deterministically.
		cat.Slug = slug.Make(name)
	}
	if p.Description != nil {
		cat.Description = strings.TrimSpace(*p.Description)
	}

	if err := s.repo.Update(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
