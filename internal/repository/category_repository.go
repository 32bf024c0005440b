package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/fashion-trend-analysis/internal/model"
)

// CategoryRepo provides CRUD, association lookups and seasonal popularity
// for categories.
type CategoryRepo struct{ db *sql.DB }

func NewCategoryRepo(db *sql.DB) *CategoryRepo { return &CategoryRepo{db: db} }

func scanCategory(s rowScanner) (model.Category, error) {
	var c model.Category
	err := s.Scan(&c.ID, &c.Name)
	return c, err
}

func (r *CategoryRepo) List(ctx context.Context) ([]model.Category, error) {
	return queryList(ctx, r.db, "category.list",
		`SELECT category_id, category_name FROM category`, scanCategory)
}

func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	c, err := scanCategory(r.db.QueryRowContext(ctx,
		`SELECT category_id, category_name FROM category WHERE category_id = ?`, id))
	if err != nil {
		return nil, wrap("category.get", err)
	}
	return &c, nil
}

func (r *CategoryRepo) Create(ctx context.Context, c model.Category) (int64, error) {
	return insert(ctx, r.db, "category.create",
		`INSERT INTO category (category_name) VALUES (?)`, c.Name)
}

func (r *CategoryRepo) Update(ctx context.Context, id int64, c model.Category) (bool, error) {
	return execAffected(ctx, r.db, "category.update",
		`UPDATE category SET category_name = ? WHERE category_id = ?`, c.Name, id)
}

func (r *CategoryRepo) Delete(ctx context.Context, id int64) (bool, error) {
	return execAffected(ctx, r.db, "category.delete",
		`DELETE FROM category WHERE category_id = ?`, id)
}

// ListByTrend returns the categories linked to a trend through trend_category.
func (r *CategoryRepo) ListByTrend(ctx context.Context, trendID int64) ([]model.Category, error) {
	return queryList(ctx, r.db, "category.list_by_trend", `
		SELECT c.category_id, c.category_name
		FROM category c
		JOIN trend_category tc ON tc.category_id = c.category_id
		WHERE tc.trend_id = ?`, scanCategory, trendID)
}

// ListByProduct returns the category referenced by product.category_id.
// The result has at most one element.
func (r *CategoryRepo) ListByProduct(ctx context.Context, productID int64) ([]model.Category, error) {
	return queryList(ctx, r.db, "category.list_by_product", `
		SELECT c.category_id, c.category_name
		FROM category c
		JOIN product p ON p.category_id = c.category_id
		WHERE p.product_id = ?`, scanCategory, productID)
}

// SetPopularity upserts the score for (categoryID, season).
func (r *CategoryRepo) SetPopularity(ctx context.Context, categoryID int64, season string, score int) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO category_popularity (category_id, season, popularity_score)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE popularity_score = ?`,
		categoryID, season, score, score)
	return wrap("category.set_popularity", err)
}

func (r *CategoryRepo) GetPopularity(ctx context.Context, categoryID int64, season string) (int, error) {
	var score int
	err := r.db.QueryRowContext(ctx, `
		SELECT popularity_score FROM category_popularity
		WHERE category_id = ? AND season = ?`, categoryID, season).Scan(&score)
	if err != nil {
		return 0, wrap("category.get_popularity", err)
	}
	return score, nil
}

// ListPopularities returns every seasonal score recorded for a category.
func (r *CategoryRepo) ListPopularities(ctx context.Context, categoryID int64) ([]model.CategoryPopularity, error) {
	return queryList(ctx, r.db, "category.list_popularities", `
		SELECT category_id, season, popularity_score FROM category_popularity
		WHERE category_id = ?`,
		func(s rowScanner) (model.CategoryPopularity, error) {
			var p model.CategoryPopularity
			err := s.Scan(&p.CategoryID, &p.Season, &p.Score)
			return p, err
		}, categoryID)
}
