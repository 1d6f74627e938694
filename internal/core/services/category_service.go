package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackio/fintrack_backend/internal/core/ports/repositories"
	portssvc "github.com/fintrackio/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackio/fintrack_backend/internal/dto"
	"github.com/fintrackio/fintrack_backend/internal/middleware"
)

type categoryService struct {
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	category := domain.Category{
		CategoryID:   uuid.NewString(),
		Name:         req.Name,
		CategoryType: req.CategoryType,
		AuditFields:  domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		logger.Error("Failed to save category", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save category: %w", err)
	}

	logger.Info("Category created", slog.String("category_id", category.CategoryID))
	return &category, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find category %s: %w", categoryID, err)
	}
	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context, categoryType *domain.CategoryType) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if categoryType == nil {
		return categories, nil
	}
	filtered := categories[:0]
	for _, c := range categories {
		if c.CategoryType == *categoryType {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find category %s: %w", categoryID, err)
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	category.LastUpdatedAt = time.Now().UTC()

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		logger.Error("Failed to update category", slog.String("error", err.Error()), slog.String("category_id", categoryID))
		return nil, fmt.Errorf("failed to update category %s: %w", categoryID, err)
	}
	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.categoryRepo.FindCategoryByID(ctx, categoryID); err != nil {
		return fmt.Errorf("failed to find category %s: %w", categoryID, err)
	}
	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		logger.Error("Failed to delete category", slog.String("error", err.Error()), slog.String("category_id", categoryID))
		return fmt.Errorf("failed to delete category %s: %w", categoryID, err)
	}

	logger.Info("Category deleted", slog.String("category_id", categoryID))
	return nil
}
