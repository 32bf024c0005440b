package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/fashion-trend-analysis/internal/model"
)

type DesignerRepo struct{ db *sql.DB }

func NewDesignerRepo(db *sql.DB) *DesignerRepo { return &DesignerRepo{db: db} }

const designerColumns = `designer_id, designer_name, designer_location, trend_count, popularity_score`

func scanDesigner(s rowScanner) (model.Designer, error) {
	var d model.Designer
	err := s.Scan(&d.ID, &d.Name, &d.Location, &d.TrendCount, &d.PopularityScore)
	return d, err
}

func (r *DesignerRepo) List(ctx context.Context) ([]model.Designer, error) {
	return queryList(ctx, r.db, "designer.list",
		`SELECT `+designerColumns+` FROM designer`, scanDesigner)
}

func (r *DesignerRepo) GetByID(ctx context.Context, id int64) (*model.Designer, error) {
	d, err := scanDesigner(r.db.QueryRowContext(ctx,
		`SELECT `+designerColumns+` FROM designer WHERE designer_id = ?`, id))
	if err != nil {
		return nil, wrap("designer.get", err)
	}
	return &d, nil
}

func (r *DesignerRepo) Create(ctx context.Context, d model.Designer) (int64, error) {
	return insert(ctx, r.db, "designer.create", `
		INSERT INTO designer (designer_name, designer_location, trend_count, popularity_score)
		VALUES (?, ?, ?, ?)`,
		d.Name, d.Location, d.TrendCount, d.PopularityScore)
}

// Update replaces every column of the designer row.
func (r *DesignerRepo) Update(ctx context.Context, id int64, d model.Designer) (bool, error) {
	return execAffected(ctx, r.db, "designer.update", `
		UPDATE designer
		SET designer_name = ?, designer_location = ?, trend_count = ?, popularity_score = ?
		WHERE designer_id = ?`,
		d.Name, d.Location, d.TrendCount, d.PopularityScore, id)
}

func (r *DesignerRepo) Delete(ctx context.Context, id int64) (bool, error) {
	return execAffected(ctx, r.db, "designer.delete",
		`DELETE FROM designer WHERE designer_id = ?`, id)
}

func (r *DesignerRepo) ListByLocation(ctx context.Context, location string) ([]model.Designer, error) {
	return queryList(ctx, r.db, "designer.list_by_location",
		`SELECT `+designerColumns+` FROM designer WHERE designer_location = ?`,
		scanDesigner, location)
}

func (r *DesignerRepo) TrendCount(ctx context.Context, id int64) (int, error) {
	return r.scalar(ctx, "designer.trend_count",
		`SELECT trend_count FROM designer WHERE designer_id = ?`, id)
}

func (r *DesignerRepo) PopularityScore(ctx context.Context, id int64) (int, error) {
	return r.scalar(ctx, "designer.popularity_score",
		`SELECT popularity_score FROM designer WHERE designer_id = ?`, id)
}

func (r *DesignerRepo) scalar(ctx context.Context, op, q string, id int64) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&n); err != nil {
		return 0, wrap(op, err)
	}
	return n, nil
}

// ListProducts returns the products associated with a designer.
func (r *DesignerRepo) ListProducts(ctx context.Context, designerID int64) ([]model.Product, error) {
	return queryList(ctx, r.db, "designer.list_products", `
		SELECT p.product_id, p.product_name, p.category_id, p.designer_id, p.product_description
		FROM product p
		JOIN product_designer_association pda ON pda.product_id = p.product_id
		WHERE pda.designer_id = ?`, scanProduct, designerID)
}
