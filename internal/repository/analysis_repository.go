package repository

import (
	"context"
	"database/sql"
)

// AnalysisRepo runs the popularity aggregate queries. Every query LEFT
// JOINs the entity table with its fact table, so entities without facts
// appear with a nil average.
type AnalysisRepo struct{ db *sql.DB }

func NewAnalysisRepo(db *sql.DB) *AnalysisRepo { return &AnalysisRepo{db: db} }

// CategoryAverageBySeason averages category_popularity rows of one season.
// The season predicate lives in the join so every category is listed.
func (r *AnalysisRepo) CategoryAverageBySeason(ctx context.Context, season string) (map[string]*float64, error) {
	return r.averages(ctx, "analysis.category_by_season", `
		SELECT c.category_name, AVG(cp.popularity_score)
		FROM category c
		LEFT JOIN category_popularity cp ON cp.category_id = c.category_id AND cp.season = ?
		GROUP BY c.category_name`, season)
}

// DesignerAverage averages the popularity_score stored on designer rows,
// grouped by name so designers sharing a name collapse into one entry.
func (r *AnalysisRepo) DesignerAverage(ctx context.Context) (map[string]*float64, error) {
	return r.averages(ctx, "analysis.designer", `
		SELECT d.designer_name, AVG(d.popularity_score)
		FROM designer d
		GROUP BY d.designer_name`)
}

func (r *AnalysisRepo) ProductAverage(ctx context.Context) (map[string]*float64, error) {
	return r.averages(ctx, "analysis.product", `
		SELECT p.product_name, AVG(pp.popularity_score)
		FROM product p
		LEFT JOIN product_popularity pp ON pp.product_id = p.product_id
		GROUP BY p.product_name`)
}

func (r *AnalysisRepo) TrendAverage(ctx context.Context) (map[string]*float64, error) {
	return r.averages(ctx, "analysis.trend", `
		SELECT t.trend_name, AVG(tp.popularity_score)
		FROM trend t
		LEFT JOIN trend_popularity tp ON tp.trend_id = t.trend_id
		GROUP BY t.trend_name`)
}

// ProductAverageByCategory averages product popularity per product category.
func (r *AnalysisRepo) ProductAverageByCategory(ctx context.Context) (map[string]*float64, error) {
	return r.averages(ctx, "analysis.product_by_category", `
		SELECT c.category_name, AVG(pp.popularity_score)
		FROM category c
		LEFT JOIN product p ON p.category_id = c.category_id
		LEFT JOIN product_popularity pp ON pp.product_id = p.product_id
		GROUP BY c.category_name`)
}

// TrendAverageByCategory averages trend history over the trend_category
// links, so a trend counts toward every category it is associated with.
func (r *AnalysisRepo) TrendAverageByCategory(ctx context.Context) (map[string]*float64, error) {
	return r.averages(ctx, "analysis.trend_by_category", `
		SELECT c.category_name, AVG(tp.popularity_score)
		FROM category c
		LEFT JOIN trend_category tc ON tc.category_id = c.category_id
		LEFT JOIN trend_popularity tp ON tp.trend_id = tc.trend_id
		GROUP BY c.category_name`)
}

// TrendAverageBySeason averages trend history for trends of one season.
func (r *AnalysisRepo) TrendAverageBySeason(ctx context.Context, season string) (map[string]*float64, error) {
	return r.averages(ctx, "analysis.trend_by_season", `
		SELECT t.trend_name, AVG(tp.popularity_score)
		FROM trend t
		LEFT JOIN trend_popularity tp ON tp.trend_id = t.trend_id
		WHERE t.season = ?
		GROUP BY t.trend_name`, season)
}

func (r *AnalysisRepo) averages(ctx context.Context, op, q string, args ...any) (map[string]*float64, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, wrap(op, err)
	}
	defer rows.Close()

	out := make(map[string]*float64)
	for rows.Next() {
		var (
			name string
			avg  sql.NullFloat64
		)
		if err := rows.Scan(&name, &avg); err != nil {
			return nil, wrap(op, err)
		}
		if avg.Valid {
			v := avg.Float64
			out[name] = &v
		} else {
			out[name] = nil
		}
	}
	if err := rows.Err(); err != nil {
		return nil, wrap(op, err)
	}
	return out, nil
}
