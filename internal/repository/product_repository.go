package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/fashion-trend-analysis/internal/model"
)

// ProductRepo owns the product table, its designer associations and the
// per-trend popularity facts.
type ProductRepo struct{ db *sql.DB }

func NewProductRepo(db *sql.DB) *ProductRepo { return &ProductRepo{db: db} }

const productColumns = `product_id, product_name, category_id, designer_id, product_description`

func scanProduct(s rowScanner) (model.Product, error) {
	var (
		p          model.Product
		categoryID sql.NullInt64
		designerID sql.NullInt64
		desc       sql.NullString
	)
	if err := s.Scan(&p.ID, &p.Name, &categoryID, &designerID, &desc); err != nil {
		return p, err
	}
	p.CategoryID = idPtr(categoryID)
	p.DesignerID = idPtr(designerID)
	p.Description = desc.String
	return p, nil
}

func (r *ProductRepo) List(ctx context.Context) ([]model.Product, error) {
	return queryList(ctx, r.db, "product.list",
		`SELECT `+productColumns+` FROM product`, scanProduct)
}

func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	p, err := scanProduct(r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM product WHERE product_id = ?`, id))
	if err != nil {
		return nil, wrap("product.get", err)
	}
	return &p, nil
}

func (r *ProductRepo) Create(ctx context.Context, p model.Product) (int64, error) {
	return insert(ctx, r.db, "product.create", `
		INSERT INTO product (product_name, category_id, designer_id, product_description)
		VALUES (?, ?, ?, ?)`,
		p.Name, nullableID(p.CategoryID), nullableID(p.DesignerID), p.Description)
}

func (r *ProductRepo) Update(ctx context.Context, id int64, p model.Product) (bool, error) {
	return execAffected(ctx, r.db, "product.update", `
		UPDATE product
		SET product_name = ?, category_id = ?, designer_id = ?, product_description = ?
		WHERE product_id = ?`,
		p.Name, nullableID(p.CategoryID), nullableID(p.DesignerID), p.Description, id)
}

func (r *ProductRepo) Delete(ctx context.Context, id int64) (bool, error) {
	return execAffected(ctx, r.db, "product.delete",
		`DELETE FROM product WHERE product_id = ?`, id)
}

func (r *ProductRepo) ListByDesigner(ctx context.Context, designerID int64) ([]model.Product, error) {
	return queryList(ctx, r.db, "product.list_by_designer",
		`SELECT `+productColumns+` FROM product WHERE designer_id = ?`, scanProduct, designerID)
}

func (r *ProductRepo) ListByCategory(ctx context.Context, categoryID int64) ([]model.Product, error) {
	return queryList(ctx, r.db, "product.list_by_category",
		`SELECT `+productColumns+` FROM product WHERE category_id = ?`, scanProduct, categoryID)
}

// AssociateDesigner links a designer to a product. The pair is the primary
// key of the join table, so repeating the call is a no-op that reports
// false.
func (r *ProductRepo) AssociateDesigner(ctx context.Context, productID, designerID int64) (bool, error) {
	return execAffected(ctx, r.db, "product.associate_designer", `
		INSERT IGNORE INTO product_designer_association (product_id, designer_id)
		VALUES (?, ?)`, productID, designerID)
}

// DissociateDesigner reports true iff a link was removed.
func (r *ProductRepo) DissociateDesigner(ctx context.Context, productID, designerID int64) (bool, error) {
	return execAffected(ctx, r.db, "product.dissociate_designer", `
		DELETE FROM product_designer_association
		WHERE product_id = ? AND designer_id = ?`, productID, designerID)
}

func (r *ProductRepo) ListDesigners(ctx context.Context, productID int64) ([]model.Designer, error) {
	return queryList(ctx, r.db, "product.list_designers", `
		SELECT d.designer_id, d.designer_name, d.designer_location, d.trend_count, d.popularity_score
		FROM designer d
		JOIN product_designer_association pda ON pda.designer_id = d.designer_id
		WHERE pda.product_id = ?`, scanDesigner, productID)
}

// SetPopularity upserts the score of a product for a trend.
func (r *ProductRepo) SetPopularity(ctx context.Context, productID, trendID int64, score int) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO product_popularity (product_id, trend_id, popularity_score)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE popularity_score = ?`,
		productID, trendID, score, score)
	return wrap("product.set_popularity", err)
}

func (r *ProductRepo) GetPopularity(ctx context.Context, productID, trendID int64) (int, error) {
	var score int
	err := r.db.QueryRowContext(ctx, `
		SELECT popularity_score FROM product_popularity
		WHERE product_id = ? AND trend_id = ?`, productID, trendID).Scan(&score)
	if err != nil {
		return 0, wrap("product.get_popularity", err)
	}
	return score, nil
}

func (r *ProductRepo) ListPopularities(ctx context.Context, productID int64) ([]model.ProductPopularity, error) {
	return queryList(ctx, r.db, "product.list_popularities", `
		SELECT product_id, trend_id, popularity_score FROM product_popularity
		WHERE product_id = ?`,
		func(s rowScanner) (model.ProductPopularity, error) {
			var p model.ProductPopularity
			err := s.Scan(&p.ProductID, &p.TrendID, &p.Score)
			return p, err
		}, productID)
}

// CountByCategory returns category name -> number of products. Categories
// without products are present with 0.
func (r *ProductRepo) CountByCategory(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.category_name, COUNT(p.product_id)
		FROM category c
		LEFT JOIN product p ON p.category_id = c.category_id
		GROUP BY c.category_name`)
	if err != nil {
		return nil, wrap("product.count_by_category", err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var (
			name string
			n    int
		)
		if err := rows.Scan(&name, &n); err != nil {
			return nil, wrap("product.count_by_category", err)
		}
		out[name] = n
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("product.count_by_category", err)
	}
	return out, nil
}
