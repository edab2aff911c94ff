package product

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/shoplane/admin-backend/internal/category"
	"github.com/shoplane/admin-backend/internal/pkg/apperror"
	"github.com/shoplane/admin-backend/internal/pkg/request"
	"github.com/shoplane/admin-backend/internal/pkg/slug"
	"github.com/shoplane/admin-backend/internal/pkg/storage"
)

const (
	maxImageSizeBytes = 5 << 20 // 5 MiB
	thumbMaxWidth     = 300
	thumbMaxHeight    = 300
)

// CreateParams carries the fields for a new product.
type CreateParams struct {
	CategoryID  string
	Name        string
	Description string
	Price       float64
	Stock       int
	Status      Status
}

// UpdateParams carries optional updates; nil fields are left untouched.
type UpdateParams struct {
	CategoryID  *string
	Name        *string
	Description *string
	Price       *float64
	Stock       *int
	Status      *Status
}

// Service defines business logic related to products.
type Service interface {
	Create(ctx context.Context, p CreateParams) (*Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context, params request.ListParams, filter Filter) ([]*Product, int, error)
	Update(ctx context.Context, id string, p UpdateParams) (*Product, error)
	Delete(ctx context.Context, id string) error
	UploadImage(ctx context.Context, id string, header *multipart.FileHeader) (*Product, error)
	LowStock(ctx context.Context, threshold, limit int) ([]*Product, error)
}

type service struct {
	repo       Repository
	catService category.Service
	store      storage.Store
	imgProc    *storage.ImageProcessor
}

// NewService creates a product service. The storage backend holds uploaded
// product images.
func NewService(repo Repository, catService category.Service, store storage.Store) Service {
	return &service{
		repo:       repo,
		catService: catService,
		store:      store,
		imgProc:    storage.NewImageProcessor(),
	}
}

func (s *service) Create(ctx context.Context, p CreateParams) (*Product, error) {
	if violations := validateCreate(p); len(violations) > 0 {
		return nil, apperror.NewValidation(violations)
	}

	// Category must exist before a product may reference it. A lookup
	// failure that is not a miss keeps its own status.
	if _, err := s.catService.GetByID(ctx, p.CategoryID); err != nil {
		if !isNotFound(err) {
			return nil, err
		}
		return nil, apperror.NewValidation([]apperror.FieldViolation{
			{Field: "category_id", Message: "references an unknown category"},
		})
	}

	status := p.Status
	if status == "" {
		status = StatusDraft
	}

	name := strings.TrimSpace(p.Name)
	prod := &Product{
		CategoryID:  p.CategoryID,
		Name:        name,
		Slug:        slug.Make(name),
		Description: strings.TrimSpace(p.Description),
		Price:       p.Price,
		Stock:       p.Stock,
		Status:      status,
	}

	if err := s.repo.Create(ctx, prod); err != nil {
		return nil, err
	}
	return prod, nil
}

func isNotFound(err error) bool {
	var appErr *apperror.AppError
	return errors.As(err, &appErr) && appErr.Code == http.StatusNotFound
}

func validateCreate(p CreateParams) []apperror.FieldViolation {
	var violations []apperror.FieldViolation
	if strings.TrimSpace(p.Name) == "" {
		violations = append(violations, apperror.FieldViolation{Field: "name", Message: "is required"})
	}
	if p.CategoryID == "" {
		violations = append(violations, apperror.FieldViolation{Field: "category_id", Message: "is required"})
	}
	if p.Price <= 0 {
		violations = append(violations, apperror.FieldViolation{Field: "price", Message: "must be greater than 0"})
	}
	if p.Stock < 0 {
		violations = append(violations, apperror.FieldViolation{Field: "stock", Message: "must be at least 0"})
	}
	if p.Status != "" && !p.Status.Valid() {
		violations = append(violations, apperror.FieldViolation{Field: "status", Message: "must be one of: draft, active, archived"})
	}
	return violations
}

func (s *service) GetByID(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, params request.ListParams, filter Filter) ([]*Product, int, error) {
	return s.repo.List(ctx, params, filter)
}

func (s *service) Update(ctx context.Context, id string, p UpdateParams) (*Product, error) {
	prod, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var violations []apperror.FieldViolation

	if p.CategoryID != nil {
		switch _, err := s.catService.GetByID(ctx, *p.CategoryID); {
		case err == nil:
			prod.CategoryID = *p.CategoryID
		case isNotFound(err):
			violations = append(violations, apperror.FieldViolation{Field: "category_id", Message: "references an unknown category"})
		default:
			return nil, err
		}
	}
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			violations = append(violations, apperror.FieldViolation{Field: "name", Message: "cannot be empty"})
		} else {
			prod.Name = name
			prod.Slug = slug.Make(name)
		}
	}
	if p.Description != nil {
		prod.Description = strings.TrimSpace(*p.Description)
	}
	if p.Price != nil {
		if *p.Price <= 0 {
			violations = append(violations, apperror.FieldViolation{Field: "price", Message: "must be greater than 0"})
		} else {
			prod.Price = *p.Price
		}
	}
	if p.Stock != nil {
		if *p.Stock < 0 {
			violations = append(violations, apperror.FieldViolation{Field: "stock", Message: "must be at least 0"})
		} else {
			prod.Stock = *p.Stock
		}
	}
	if p.Status != nil {
		if !p.Status.Valid() {
			violations = append(violations, apperror.FieldViolation{Field: "status", Message: "must be one of: draft, active, archived"})
		} else {
			prod.Status = *p.Status
		}
	}

	if len(violations) > 0 {
		return nil, apperror.NewValidation(violations)
	}

	if err := s.repo.Update(ctx, prod); err != nil {
		return nil, err
	}
	return prod, nil
}

func (s *service) LowStock(ctx context.Context, threshold, limit int) ([]*Product, error) {
	return s.repo.ListLowStock(ctx, threshold, limit)
}

func (s *service) Delete(ctx context.Context, id string) error {
	prod, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	// Best-effort cleanup of stored images.
	if prod.ImagePath != nil {
		_ = s.store.Remove(ctx, *prod.ImagePath)
	}
	if prod.ThumbnailPath != nil {
		_ = s.store.Remove(ctx, *prod.ThumbnailPath)
	}
	return nil
}

// UploadImage stores the uploaded image and a generated thumbnail, then
// records both paths on the product. A previous image is removed after the
// new one is in place.
func (s *service) UploadImage(ctx context.Context, id string, header *multipart.FileHeader) (*Product, error) {
	prod, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if header.Size > maxImageSizeBytes {
		return nil, apperror.NewValidation([]apperror.FieldViolation{
			{Field: "image", Message: "must be at most 5 MiB"},
		})
	}

	src, err := header.Open()
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("open uploaded file: %w", err))
	}
	defer src.Close()

	// Buffer once so the content can be decoded and saved separately.
	content, err := io.ReadAll(src)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("read uploaded file: %w", err))
	}

	thumb, err := s.imgProc.Thumbnail(bytes.NewReader(content), thumbMaxWidth, thumbMaxHeight)
	if err != nil {
		return nil, apperror.NewValidation([]apperror.FieldViolation{
			{Field: "image", Message: "must be a valid image file"},
		})
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext == "" {
		ext = ".jpg"
	}

	imageID := uuid.NewString()
	imagePath := fmt.Sprintf("products/%s/%s%s", prod.ID, imageID, ext)
	thumbPath := fmt.Sprintf("products/%s/%s_thumb.jpg", prod.ID, imageID)

	if err := s.store.Save(ctx, imagePath, bytes.NewReader(content)); err != nil {
		return nil, apperror.Internal(err)
	}
	if err := s.store.Save(ctx, thumbPath, thumb); err != nil {
		_ = s.store.Remove(ctx, imagePath)
		return nil, apperror.Internal(err)
	}

	oldImage, oldThumb := prod.ImagePath, prod.ThumbnailPath
	prod.ImagePath = &imagePath
	prod.ThumbnailPath = &thumbPath

	if err := s.repo.Update(ctx, prod); err != nil {
		_ = s.store.Remove(ctx, imagePath)
		_ = s.store.Remove(ctx, thumbPath)
		return nil, err
	}

	if oldImage != nil {
		_ = s.store.Remove(ctx, *oldImage)
	}
	if oldThumb != nil {
		_ = s.store.Remove(ctx, *oldThumb)
	}

	return prod, nil
}
