package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/fashion-trend-analysis/internal/model"
)

var productCols = []string{"product_id", "product_name", "category_id", "designer_id", "product_description"}

func TestProductRepo_Create_NullableKeys(t *testing.T) {
	db, mock := newMock(t)
	repo := NewProductRepo(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO product (product_name, category_id, designer_id, product_description)`)).
		WithArgs("Trench", int64(2), nil, "Belted").
		WillReturnResult(sqlmock.NewResult(10, 1))

	id, err := repo.Create(context.Background(), model.Product{Name: "Trench", CategoryID: ptr(int64(2)), Description: "Belted"})
	require.NoError(t, err)
	assert.Equal(t, int64(10), id)
}

func TestProductRepo_GetByID(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM product WHERE product_id = ?`)).
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows(productCols).AddRow(10, "Trench", 2, nil, nil))

	got, err := NewProductRepo(db).GetByID(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, &model.Product{ID: 10, Name: "Trench", CategoryID: ptr(int64(2))}, got)
}

func TestProductRepo_Create_ForeignKey(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO product`)).
		WillReturnError(&mysql.MySQLError{Number: 1452})

	_, err := NewProductRepo(db).Create(context.Background(), model.Product{Name: "x", CategoryID: ptr(int64(99))})
	var dae *DataAccessError
	require.ErrorAs(t, err, &dae)
	assert.True(t, dae.IsConstraint())
}

func TestProductRepo_DesignerAssociation(t *testing.T) {
	db, mock := newMock(t)
	repo := NewProductRepo(db)
	ctx := context.Background()

	assoc := regexp.QuoteMeta(`INSERT IGNORE INTO product_designer_association (product_id, designer_id) VALUES (?, ?)`)
	mock.ExpectExec(assoc).WithArgs(int64(10), int64(5)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(assoc).WithArgs(int64(10), int64(5)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`JOIN product_designer_association pda ON pda.designer_id = d.designer_id WHERE pda.product_id = ?`)).
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"designer_id", "designer_name", "designer_location", "trend_count", "popularity_score"}).
			AddRow(5, "Ada", "Milan", 2, 70))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM product_designer_association WHERE product_id = ? AND designer_id = ?`)).
		WithArgs(int64(10), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE pda.product_id = ?`)).
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"designer_id", "designer_name", "designer_location", "trend_count", "popularity_score"}))

	created, err := repo.AssociateDesigner(ctx, 10, 5)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.AssociateDesigner(ctx, 10, 5)
	require.NoError(t, err)
	assert.False(t, created)

	designers, err := repo.ListDesigners(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []model.Designer{{ID: 5, Name: "Ada", Location: "Milan", TrendCount: 2, PopularityScore: 70}}, designers)

	removed, err := repo.DissociateDesigner(ctx, 10, 5)
	require.NoError(t, err)
	assert.True(t, removed)

	designers, err = repo.ListDesigners(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, designers)
}

func TestProductRepo_Popularity(t *testing.T) {
	db, mock := newMock(t)
	repo := NewProductRepo(db)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta(`ON DUPLICATE KEY UPDATE popularity_score = ?`)).
		WithArgs(int64(10), int64(3), 60, 60).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT popularity_score FROM product_popularity WHERE product_id = ? AND trend_id = ?`)).
		WithArgs(int64(10), int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"popularity_score"}).AddRow(60))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT product_id, trend_id, popularity_score FROM product_popularity WHERE product_id = ?`)).
		WithArgs(int64(11)).
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "trend_id", "popularity_score"}))

	require.NoError(t, repo.SetPopularity(ctx, 10, 3, 60))
	score, err := repo.GetPopularity(ctx, 10, 3)
	require.NoError(t, err)
	assert.Equal(t, 60, score)

	all, err := repo.ListPopularities(ctx, 11)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestProductRepo_CountByCategory(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT c.category_name, COUNT(p.product_id) FROM category c LEFT JOIN product p`)).
		WillReturnRows(sqlmock.NewRows([]string{"category_name", "count"}).
			AddRow("Outerwear", 3).
			AddRow("Denim", 0))

	got, err := NewProductRepo(db).CountByCategory(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Outerwear": 3, "Denim": 0}, got)
}

func TestProductRepo_Filters(t *testing.T) {
	db, mock := newMock(t)
	repo := NewProductRepo(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM product WHERE designer_id = ?`)).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(productCols).AddRow(1, "Parka", nil, 5, "Warm"))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM product WHERE category_id = ?`)).
		WithArgs(int64(8)).
		WillReturnRows(sqlmock.NewRows(productCols))

	byDesigner, err := repo.ListByDesigner(ctx, 5)
	require.NoError(t, err)
	require.Len(t, byDesigner, 1)
	assert.Nil(t, byDesigner[0].CategoryID)
	assert.Equal(t, int64(5), *byDesigner[0].DesignerID)

	byCategory, err := repo.ListByCategory(ctx, 8)
	require.NoError(t, err)
	assert.Empty(t, byCategory)
}
