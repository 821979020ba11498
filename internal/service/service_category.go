package service

import (
	"context"
	"fmt"

	"github.com/fintrack/fintrack/internal/logger"
	"github.com/fintrack/fintrack/internal/store"
	"github.com/fintrack/fintrack/models"
)

type categoryService struct {
	categoryRepository store.CategoryRepository
	logger             *logger.Logger
}

// NewCategoryService constructs a CategoryService over the given
// repository.
func NewCategoryService(categoryRepository store.CategoryRepository, logger *logger.Logger) CategoryService {
	return &categoryService{categoryRepository: categoryRepository, logger: logger}
}

func (c *categoryService) CreateCategory(ctx context.Context, callerID int64, name string) (models.Category, error) {
	log := logger.FromContext(ctx)

	if name == "" {
		return models.Category{}, ErrInvalidDataProvided
	}

	created, err := c.categoryRepository.CreateCategory(ctx, models.Category{
		Name:   name,
		UserID: &callerID,
	})
	if err != nil {
		log.Err(err).Str("name", name).Msg("category creation failed")
		return models.Category{}, fmt.Errorf("category creation failed: %w", err)
	}

	return created, nil
}

func (c *categoryService) GetCategory(ctx context.Context, callerID, id int64) (models.Category, error) {
	log := logger.FromContext(ctx)

	category, err := c.categoryRepository.GetCategory(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("category lookup failed")
		return models.Category{}, fmt.Errorf("category lookup failed: %w", err)
	}
	if !category.VisibleTo(callerID) {
		return models.Category{}, ErrNotAllowed
	}

	return category, nil
}

// ListCategories returns the caller's categories together with the system
// ones.
func (c *categoryService) ListCategories(ctx context.Context, callerID int64, search string, limit int) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	categories, err := c.categoryRepository.ListCategories(ctx, callerID, search, limit)
	if err != nil {
		log.Err(err).Int64("user_id", callerID).Msg("listing categories failed")
		return nil, fmt.Errorf("listing categories failed: %w", err)
	}

	return categories, nil
}

// UpdateCategory patches an owned category. System categories belong to no
// one and cannot be updated by anyone.
func (c *categoryService) UpdateCategory(ctx context.Context, callerID, id int64, update models.CategoryUpdate) (models.Category, error) {
	log := logger.FromContext(ctx)

	category, err := c.GetCategory(ctx, callerID, id)
	if err != nil {
		return models.Category{}, err
	}
	if !category.OwnedBy(callerID) {
		return models.Category{}, ErrNotAllowed
	}

	if update.Name == nil {
		return category, nil
	}
	if *update.Name == "" {
		return models.Category{}, ErrInvalidDataProvided
	}

	updated, err := c.categoryRepository.UpdateCategory(ctx, id, update)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("category update failed")
		return models.Category{}, fmt.Errorf("category update failed: %w", err)
	}

	return updated, nil
}

// DeleteCategory removes an owned category, provided no live transaction
// of any user still references it.
func (c *categoryService) DeleteCategory(ctx context.Context, callerID, id int64) error {
	log := logger.FromContext(ctx)

	category, err := c.GetCategory(ctx, callerID, id)
	if err != nil {
		return err
	}
	if !category.OwnedBy(callerID) {
		return ErrNotAllowed
	}

	count, err := c.categoryRepository.CountTransactionsByCategory(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("counting referencing transactions failed")
		return fmt.Errorf("counting referencing transactions failed: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: %d transactions", ErrCategoryInUse, count)
	}

	if err = c.categoryRepository.DeleteCategory(ctx, id); err != nil {
		log.Err(err).Int64("id", id).Msg("category deletion failed")
		return fmt.Errorf("category deletion failed: %w", err)
	}

	return nil
}
