package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fintrackio/fintrack_backend/internal/apperrors"
	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackio/fintrack_backend/internal/core/ports/repositories"
	"github.com/fintrackio/fintrack_backend/internal/models"
	"github.com/fintrackio/fintrack_backend/internal/utils/mapping"
)

type PgxCategoryRepository struct {
	BaseRepository
}

// newPgxCategoryRepository creates a new repository for category data.
func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

const categoryColumns = `category_id, name, category_type, created_at, last_updated_at`

func scanCategory(row pgx.Row) (*models.Category, error) {
	var m models.Category
	if err := row.Scan(&m.CategoryID, &m.Name, &m.CategoryType, &m.CreatedAt, &m.LastUpdatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)

	query := `
		INSERT INTO categories (category_id, name, category_type, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query, m.CategoryID, m.Name, m.CategoryType, m.CreatedAt, m.LastUpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: category %q already exists", apperrors.ErrDuplicate, m.Name)
		}
		return apperrors.NewAppError(500, "failed to save category "+m.CategoryID, err)
	}
	return nil
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE category_id = $1;`

	m, err := scanCategory(r.Pool.QueryRow(ctx, query, categoryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find category by ID "+categoryID, err)
	}

	category := mapping.ToDomainCategory(*m)
	return &category, nil
}

func (r *PgxCategoryRepository) FindCategoriesByIDs(ctx context.Context, categoryIDs []string) (map[string]domain.Category, error) {
	if len(categoryIDs) == 0 {
		return map[string]domain.Category{}, nil
	}

	query := `SELECT ` + categoryColumns + ` FROM categories WHERE category_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, categoryIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query categories by IDs", err)
	}
	defer rows.Close()

	categories := make(map[string]domain.Category, len(categoryIDs))
	for rows.Next() {
		m, err := scanCategory(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan category row", err)
		}
		categories[m.CategoryID] = mapping.ToDomainCategory(*m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating category rows", err)
	}
	return categories, nil
}

func (r *PgxCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query categories", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		m, err := scanCategory(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan category row", err)
		}
		categories = append(categories, mapping.ToDomainCategory(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating category rows", err)
	}
	return categories, nil
}

func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)

	query := `UPDATE categories SET name = $2, last_updated_at = $3 WHERE category_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, m.CategoryID, m.Name, m.LastUpdatedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update category "+m.CategoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM categories WHERE category_id = $1;`, categoryID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // Foreign key violation
			return fmt.Errorf("%w: category %s is referenced by ledger entries", apperrors.ErrValidation, categoryID)
		}
		return apperrors.NewAppError(500, "failed to delete category "+categoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
