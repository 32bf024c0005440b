package repository

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/iliyamo/fashion-trend-analysis/internal/model"
)

// TrendRepo owns the trend table, trend_category links and the trend
// popularity history.
type TrendRepo struct{ db *sql.DB }

func NewTrendRepo(db *sql.DB) *TrendRepo { return &TrendRepo{db: db} }

const trendColumns = `trend_id, trend_name, trend_desc, category_id, designer_id, location, season, popularity_score`

func scanTrend(s rowScanner) (model.Trend, error) {
	var (
		t          model.Trend
		desc       sql.NullString
		categoryID sql.NullInt64
		designerID sql.NullInt64
		location   sql.NullString
		season     sql.NullString
	)
	if err := s.Scan(&t.ID, &t.Name, &desc, &categoryID, &designerID, &location, &season, &t.PopularityScore); err != nil {
		return t, err
	}
	t.Description = desc.String
	t.CategoryID = idPtr(categoryID)
	t.DesignerID = idPtr(designerID)
	t.Location = location.String
	t.Season = season.String
	return t, nil
}

func (r *TrendRepo) List(ctx context.Context) ([]model.Trend, error) {
	return queryList(ctx, r.db, "trend.list", `SELECT `+trendColumns+` FROM trend`, scanTrend)
}

func (r *TrendRepo) GetByID(ctx context.Context, id int64) (*model.Trend, error) {
	t, err := scanTrend(r.db.QueryRowContext(ctx,
		`SELECT `+trendColumns+` FROM trend WHERE trend_id = ?`, id))
	if err != nil {
		return nil, wrap("trend.get", err)
	}
	return &t, nil
}

// Create inserts the trend and, when it arrives with a score, records that
// score as the first history entry in the same transaction.
func (r *TrendRepo) Create(ctx context.Context, t model.Trend) (int64, error) {
	const op = "trend.create"
	var id int64
	_, err := inTx(ctx, r.db, op, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO trend (trend_name, trend_desc, category_id, designer_id, location, season, popularity_score)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			t.Name, t.Description, nullableID(t.CategoryID), nullableID(t.DesignerID),
			t.Location, t.Season, t.PopularityScore)
		if err != nil {
			return wrap(op, err)
		}
		if id, err = res.LastInsertId(); err != nil {
			return wrap(op, err)
		}
		if t.PopularityScore == 0 {
			return nil
		}
		return appendHistory(ctx, tx, op, id, t.PopularityScore)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update replaces every column of the trend. A changed score is appended to
// the history so the cached value never drifts from it.
func (r *TrendRepo) Update(ctx context.Context, id int64, t model.Trend) (bool, error) {
	const op = "trend.update"
	return inTx(ctx, r.db, op, func(tx *sql.Tx) error {
		var prev int
		err := tx.QueryRowContext(ctx,
			`SELECT popularity_score FROM trend WHERE trend_id = ? FOR UPDATE`, id).Scan(&prev)
		if errors.Is(err, sql.ErrNoRows) {
			return errRowMissing
		}
		if err != nil {
			return wrap(op, err)
		}
		if _, err := tx.ExecContext(ctx, `
			UPDATE trend
			SET trend_name = ?, trend_desc = ?, category_id = ?, designer_id = ?,
			    location = ?, season = ?, popularity_score = ?
			WHERE trend_id = ?`,
			t.Name, t.Description, nullableID(t.CategoryID), nullableID(t.DesignerID),
			t.Location, t.Season, t.PopularityScore, id); err != nil {
			return wrap(op, err)
		}
		if prev == t.PopularityScore {
			return nil
		}
		return appendHistory(ctx, tx, op, id, t.PopularityScore)
	})
}

func (r *TrendRepo) Delete(ctx context.Context, id int64) (bool, error) {
	return execAffected(ctx, r.db, "trend.delete", `DELETE FROM trend WHERE trend_id = ?`, id)
}

func (r *TrendRepo) ListByCategory(ctx context.Context, categoryID int64) ([]model.Trend, error) {
	return queryList(ctx, r.db, "trend.list_by_category",
		`SELECT `+trendColumns+` FROM trend WHERE category_id = ?`, scanTrend, categoryID)
}

func (r *TrendRepo) ListByDesigner(ctx context.Context, designerID int64) ([]model.Trend, error) {
	return queryList(ctx, r.db, "trend.list_by_designer",
		`SELECT `+trendColumns+` FROM trend WHERE designer_id = ?`, scanTrend, designerID)
}

func (r *TrendRepo) ListByLocation(ctx context.Context, location string) ([]model.Trend, error) {
	return queryList(ctx, r.db, "trend.list_by_location",
		`SELECT `+trendColumns+` FROM trend WHERE location = ?`, scanTrend, location)
}

func (r *TrendRepo) ListBySeason(ctx context.Context, season string) ([]model.Trend, error) {
	return queryList(ctx, r.db, "trend.list_by_season",
		`SELECT `+trendColumns+` FROM trend WHERE season = ?`, scanTrend, season)
}

// AssociateCategory links a category to a trend; false when the link
// already existed.
func (r *TrendRepo) AssociateCategory(ctx context.Context, trendID, categoryID int64) (bool, error) {
	return execAffected(ctx, r.db, "trend.associate_category",
		`INSERT IGNORE INTO trend_category (trend_id, category_id) VALUES (?, ?)`,
		trendID, categoryID)
}

func (r *TrendRepo) DissociateCategory(ctx context.Context, trendID, categoryID int64) (bool, error) {
	return execAffected(ctx, r.db, "trend.dissociate_category",
		`DELETE FROM trend_category WHERE trend_id = ? AND category_id = ?`,
		trendID, categoryID)
}

// SetPopularity stores score as the trend's current value and appends it to
// the history, in one transaction. It returns false and writes nothing when
// the trend does not exist.
func (r *TrendRepo) SetPopularity(ctx context.Context, trendID int64, score int) (bool, error) {
	const op = "trend.set_popularity"
	return inTx(ctx, r.db, op, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE trend SET popularity_score = ? WHERE trend_id = ?`, score, trendID)
		if err != nil {
			return wrap(op, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return wrap(op, err)
		}
		if n == 0 {
			return errRowMissing
		}
		return appendHistory(ctx, tx, op, trendID, score)
	})
}

func appendHistory(ctx context.Context, tx *sql.Tx, op string, trendID int64, score int) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO trend_popularity (trend_id, popularity_score) VALUES (?, ?)`, trendID, score)
	return wrap(op, err)
}

// GetPopularity returns the trend's current popularity value.
func (r *TrendRepo) GetPopularity(ctx context.Context, trendID int64) (int, error) {
	var score int
	err := r.db.QueryRowContext(ctx,
		`SELECT popularity_score FROM trend WHERE trend_id = ?`, trendID).Scan(&score)
	if err != nil {
		return 0, wrap("trend.get_popularity", err)
	}
	return score, nil
}

// PopularityHistory lists every recorded value, oldest first.
func (r *TrendRepo) PopularityHistory(ctx context.Context, trendID int64) ([]model.TrendPopularity, error) {
	return queryList(ctx, r.db, "trend.popularity_history", `
		SELECT trend_popularity_id, trend_id, popularity_score, recorded_at
		FROM trend_popularity
		WHERE trend_id = ?
		ORDER BY recorded_at, trend_popularity_id`,
		func(s rowScanner) (model.TrendPopularity, error) {
			var p model.TrendPopularity
			err := s.Scan(&p.ID, &p.TrendID, &p.Score, &p.RecordedAt)
			return p, err
		}, trendID)
}
