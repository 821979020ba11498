package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fintrack/fintrack/internal/logger"
	"github.com/fintrack/fintrack/models"
)

type categoryRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCategoryRepository returns a PostgreSQL-backed CategoryRepository.
func NewCategoryRepository(db *DB, log *logger.Logger) CategoryRepository {
	return &categoryRepository{db: db, logger: log}
}

func (r *categoryRepository) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	log := logger.FromContext(ctx)

	var created models.Category
	err := r.db.QueryRowContext(ctx, insertCategoryQuery,
		category.Name, category.UserID,
	).Scan(&created.ID, &created.Name, &created.UserID, &created.CreatedAt)
	if err != nil {
		log.Err(err).Str("func", "CreateCategory").Msg("failed to insert category")
		return models.Category{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

func (r *categoryRepository) GetCategory(ctx context.Context, id int64) (models.Category, error) {
	log := logger.FromContext(ctx)

	var category models.Category
	err := r.db.QueryRowContext(ctx, selectCategoryQuery, id).Scan(
		&category.ID, &category.Name, &category.UserID, &category.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Category{}, ErrCategoryNotFound
		}
		log.Err(err).Str("func", "GetCategory").Msg("failed to query category")
		return models.Category{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return category, nil
}

func (r *categoryRepository) ListCategories(ctx context.Context, userID int64, search string, limit int) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCategoriesQuery(userID, search, limit)
	if err != nil {
		log.Err(err).Str("func", "ListCategories").Msg("failed to build list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "ListCategories").Msg("failed to query categories")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var category models.Category
		err = rows.Scan(&category.ID, &category.Name, &category.UserID, &category.CreatedAt)
		if err != nil {
			log.Err(err).Str("func", "ListCategories").Msg("failed to scan category row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		categories = append(categories, category)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return categories, nil
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, id int64, update models.CategoryUpdate) (models.Category, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateCategoryQuery(id, update)
	if err != nil {
		log.Err(err).Str("func", "UpdateCategory").Msg("failed to build update query")
		return models.Category{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var category models.Category
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&category.ID, &category.Name, &category.UserID, &category.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Category{}, ErrCategoryNotFound
		}
		log.Err(err).Str("func", "UpdateCategory").Msg("failed to update category")
		return models.Category{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return category, nil
}

func (r *categoryRepository) DeleteCategory(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteCategoryQuery, id)
	if err != nil {
		log.Err(err).Str("func", "DeleteCategory").Msg("failed to delete category")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

func (r *categoryRepository) CountTransactionsByCategory(ctx context.Context, categoryID int64) (int64, error) {
	log := logger.FromContext(ctx)

	var count int64
	err := r.db.QueryRowContext(ctx, countTransactionsByCategoryQuery, categoryID).Scan(&count)
	if err != nil {
		log.Err(err).Str("func", "CountTransactionsByCategory").Msg("failed to count transactions")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}
