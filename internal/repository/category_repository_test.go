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

func TestCategoryRepo_CreateAndGet(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCategoryRepo(db)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO category (category_name) VALUES (?)`)).
		WithArgs("Outerwear").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT category_id, category_name FROM category WHERE category_id = ?`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"category_id", "category_name"}).AddRow(1, "Outerwear"))

	id, err := repo.Create(ctx, model.Category{Name: "Outerwear"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, &model.Category{ID: 1, Name: "Outerwear"}, got)
}

func TestCategoryRepo_GetByID_NotFound(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM category WHERE category_id = ?`)).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"category_id", "category_name"}))

	got, err := NewCategoryRepo(db).GetByID(context.Background(), 42)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoryRepo_List_Empty(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT category_id, category_name FROM category`)).
		WillReturnRows(sqlmock.NewRows([]string{"category_id", "category_name"}))

	got, err := NewCategoryRepo(db).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCategoryRepo_UpdateDelete(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCategoryRepo(db)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE category SET category_name = ? WHERE category_id = ?`)).
		WithArgs("Knitwear", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE category SET category_name = ? WHERE category_id = ?`)).
		WithArgs("Knitwear", int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM category WHERE category_id = ?`)).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM category WHERE category_id = ?`)).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.Update(ctx, 1, model.Category{Name: "Knitwear"})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Update(ctx, 9, model.Category{Name: "Knitwear"})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.Delete(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Delete(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCategoryRepo_Create_Constraint(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO category`)).
		WithArgs("Outerwear").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'Outerwear'"})

	_, err := NewCategoryRepo(db).Create(context.Background(), model.Category{Name: "Outerwear"})
	var dae *DataAccessError
	require.ErrorAs(t, err, &dae)
	assert.Equal(t, CodeDuplicateKey, dae.Code)
}

func TestCategoryRepo_Popularity(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCategoryRepo(db)
	ctx := context.Background()

	upsert := regexp.QuoteMeta(`INSERT INTO category_popularity (category_id, season, popularity_score) VALUES (?, ?, ?) ON DUPLICATE KEY UPDATE popularity_score = ?`)
	mock.ExpectExec(upsert).WithArgs(int64(1), "Spring", 80, 80).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(upsert).WithArgs(int64(1), "Spring", 95, 95).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT popularity_score FROM category_popularity WHERE category_id = ? AND season = ?`)).
		WithArgs(int64(1), "Spring").
		WillReturnRows(sqlmock.NewRows([]string{"popularity_score"}).AddRow(95))

	require.NoError(t, repo.SetPopularity(ctx, 1, "Spring", 80))
	require.NoError(t, repo.SetPopularity(ctx, 1, "Spring", 95))
	score, err := repo.GetPopularity(ctx, 1, "Spring")
	require.NoError(t, err)
	assert.Equal(t, 95, score)
}

func TestCategoryRepo_GetPopularity_NotFound(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM category_popularity`)).
		WithArgs(int64(1), "Winter").
		WillReturnRows(sqlmock.NewRows([]string{"popularity_score"}))

	_, err := NewCategoryRepo(db).GetPopularity(context.Background(), 1, "Winter")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoryRepo_ListPopularities(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT category_id, season, popularity_score FROM category_popularity WHERE category_id = ?`)).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"category_id", "season", "popularity_score"}).
			AddRow(3, "Winter", 40).
			AddRow(3, "Spring", 70))

	got, err := NewCategoryRepo(db).ListPopularities(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, []model.CategoryPopularity{
		{CategoryID: 3, Season: "Winter", Score: 40},
		{CategoryID: 3, Season: "Spring", Score: 70},
	}, got)
}

func TestCategoryRepo_ListByTrendAndProduct(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCategoryRepo(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`JOIN trend_category tc ON tc.category_id = c.category_id WHERE tc.trend_id = ?`)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"category_id", "category_name"}).AddRow(1, "Outerwear").AddRow(2, "Denim"))
	mock.ExpectQuery(regexp.QuoteMeta(`JOIN product p ON p.category_id = c.category_id WHERE p.product_id = ?`)).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"category_id", "category_name"}).AddRow(2, "Denim"))

	byTrend, err := repo.ListByTrend(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, byTrend, 2)

	byProduct, err := repo.ListByProduct(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, []model.Category{{ID: 2, Name: "Denim"}}, byProduct)
}
