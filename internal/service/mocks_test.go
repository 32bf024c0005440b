package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/iliyamo/fashion-trend-analysis/internal/model"
	"github.com/iliyamo/fashion-trend-analysis/internal/queue"
)

type mockCategoryRepo struct{ mock.Mock }

func (m *mockCategoryRepo) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Category), args.Error(1)
}
func (m *mockCategoryRepo) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*model.Category)
	return c, args.Error(1)
}
func (m *mockCategoryRepo) Create(ctx context.Context, c model.Category) (int64, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockCategoryRepo) Update(ctx context.Context, id int64, c model.Category) (bool, error) {
	args := m.Called(ctx, id, c)
	return args.Bool(0), args.Error(1)
}
func (m *mockCategoryRepo) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *mockCategoryRepo) ListByTrend(ctx context.Context, trendID int64) ([]model.Category, error) {
	args := m.Called(ctx, trendID)
	return args.Get(0).([]model.Category), args.Error(1)
}
func (m *mockCategoryRepo) ListByProduct(ctx context.Context, productID int64) ([]model.Category, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).([]model.Category), args.Error(1)
}
func (m *mockCategoryRepo) SetPopularity(ctx context.Context, id int64, season string, score int) error {
	return m.Called(ctx, id, season, score).Error(0)
}
func (m *mockCategoryRepo) GetPopularity(ctx context.Context, id int64, season string) (int, error) {
	args := m.Called(ctx, id, season)
	return args.Int(0), args.Error(1)
}
func (m *mockCategoryRepo) ListPopularities(ctx context.Context, id int64) ([]model.CategoryPopularity, error) {
	args := m.Called(ctx, id)
	rows, _ := args.Get(0).([]model.CategoryPopularity)
	return rows, args.Error(1)
}

type mockProductRepo struct{ mock.Mock }

func (m *mockProductRepo) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Product), args.Error(1)
}
func (m *mockProductRepo) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*model.Product)
	return p, args.Error(1)
}
func (m *mockProductRepo) Create(ctx context.Context, p model.Product) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockProductRepo) Update(ctx context.Context, id int64, p model.Product) (bool, error) {
	args := m.Called(ctx, id, p)
	return args.Bool(0), args.Error(1)
}
func (m *mockProductRepo) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *mockProductRepo) ListByDesigner(ctx context.Context, id int64) ([]model.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]model.Product), args.Error(1)
}
func (m *mockProductRepo) ListByCategory(ctx context.Context, id int64) ([]model.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]model.Product), args.Error(1)
}
func (m *mockProductRepo) AssociateDesigner(ctx context.Context, productID, designerID int64) (bool, error) {
	args := m.Called(ctx, productID, designerID)
	return args.Bool(0), args.Error(1)
}
func (m *mockProductRepo) DissociateDesigner(ctx context.Context, productID, designerID int64) (bool, error) {
	args := m.Called(ctx, productID, designerID)
	return args.Bool(0), args.Error(1)
}
func (m *mockProductRepo) ListDesigners(ctx context.Context, id int64) ([]model.Designer, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]model.Designer), args.Error(1)
}
func (m *mockProductRepo) SetPopularity(ctx context.Context, productID, trendID int64, score int) error {
	return m.Called(ctx, productID, trendID, score).Error(0)
}
func (m *mockProductRepo) GetPopularity(ctx context.Context, productID, trendID int64) (int, error) {
	args := m.Called(ctx, productID, trendID)
	return args.Int(0), args.Error(1)
}
func (m *mockProductRepo) ListPopularities(ctx context.Context, id int64) ([]model.ProductPopularity, error) {
	args := m.Called(ctx, id)
	rows, _ := args.Get(0).([]model.ProductPopularity)
	return rows, args.Error(1)
}
func (m *mockProductRepo) CountByCategory(ctx context.Context) (map[string]int, error) {
	args := m.Called(ctx)
	counts, _ := args.Get(0).(map[string]int)
	return counts, args.Error(1)
}

type mockTrendRepo struct{ mock.Mock }

func (m *mockTrendRepo) List(ctx context.Context) ([]model.Trend, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Trend), args.Error(1)
}
func (m *mockTrendRepo) GetByID(ctx context.Context, id int64) (*model.Trend, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*model.Trend)
	return t, args.Error(1)
}
func (m *mockTrendRepo) Create(ctx context.Context, t model.Trend) (int64, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockTrendRepo) Update(ctx context.Context, id int64, t model.Trend) (bool, error) {
	args := m.Called(ctx, id, t)
	return args.Bool(0), args.Error(1)
}
func (m *mockTrendRepo) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *mockTrendRepo) ListByCategory(ctx context.Context, id int64) ([]model.Trend, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]model.Trend), args.Error(1)
}
func (m *mockTrendRepo) ListByDesigner(ctx context.Context, id int64) ([]model.Trend, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]model.Trend), args.Error(1)
}
func (m *mockTrendRepo) ListByLocation(ctx context.Context, location string) ([]model.Trend, error) {
	args := m.Called(ctx, location)
	return args.Get(0).([]model.Trend), args.Error(1)
}
func (m *mockTrendRepo) ListBySeason(ctx context.Context, season string) ([]model.Trend, error) {
	args := m.Called(ctx, season)
	return args.Get(0).([]model.Trend), args.Error(1)
}
func (m *mockTrendRepo) AssociateCategory(ctx context.Context, trendID, categoryID int64) (bool, error) {
	args := m.Called(ctx, trendID, categoryID)
	return args.Bool(0), args.Error(1)
}
func (m *mockTrendRepo) DissociateCategory(ctx context.Context, trendID, categoryID int64) (bool, error) {
	args := m.Called(ctx, trendID, categoryID)
	return args.Bool(0), args.Error(1)
}
func (m *mockTrendRepo) SetPopularity(ctx context.Context, id int64, score int) (bool, error) {
	args := m.Called(ctx, id, score)
	return args.Bool(0), args.Error(1)
}
func (m *mockTrendRepo) GetPopularity(ctx context.Context, id int64) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}
func (m *mockTrendRepo) PopularityHistory(ctx context.Context, id int64) ([]model.TrendPopularity, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]model.TrendPopularity), args.Error(1)
}

type mockAnalysisRepo struct{ mock.Mock }

func (m *mockAnalysisRepo) averages(args mock.Arguments) (map[string]*float64, error) {
	v, _ := args.Get(0).(map[string]*float64)
	return v, args.Error(1)
}
func (m *mockAnalysisRepo) CategoryAverageBySeason(ctx context.Context, season string) (map[string]*float64, error) {
	return m.averages(m.Called(ctx, season))
}
func (m *mockAnalysisRepo) DesignerAverage(ctx context.Context) (map[string]*float64, error) {
	return m.averages(m.Called(ctx))
}
func (m *mockAnalysisRepo) ProductAverage(ctx context.Context) (map[string]*float64, error) {
	return m.averages(m.Called(ctx))
}
func (m *mockAnalysisRepo) TrendAverage(ctx context.Context) (map[string]*float64, error) {
	return m.averages(m.Called(ctx))
}
func (m *mockAnalysisRepo) ProductAverageByCategory(ctx context.Context) (map[string]*float64, error) {
	return m.averages(m.Called(ctx))
}
func (m *mockAnalysisRepo) TrendAverageByCategory(ctx context.Context) (map[string]*float64, error) {
	return m.averages(m.Called(ctx))
}
func (m *mockAnalysisRepo) TrendAverageBySeason(ctx context.Context, season string) (map[string]*float64, error) {
	return m.averages(m.Called(ctx, season))
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.User), args.Error(1)
}
func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}
func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}
func (m *mockUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}
func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}
func (m *mockUserRepo) Create(ctx context.Context, u model.User) (int64, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockUserRepo) Update(ctx context.Context, id int64, u model.User) (bool, error) {
	args := m.Called(ctx, id, u)
	return args.Bool(0), args.Error(1)
}
func (m *mockUserRepo) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockTokenRepo struct{ mock.Mock }

func (m *mockTokenRepo) StoreRefresh(ctx context.Context, userID int64, hash string, exp time.Time) error {
	return m.Called(ctx, userID, hash, exp).Error(0)
}
func (m *mockTokenRepo) ValidateRefresh(ctx context.Context, hash string) (int64, error) {
	args := m.Called(ctx, hash)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockTokenRepo) RevokeByHash(ctx context.Context, hash string) error {
	return m.Called(ctx, hash).Error(0)
}
func (m *mockTokenRepo) RevokeAllForUser(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) PublishPopularity(ctx context.Context, ev queue.PopularityRecorded) error {
	return m.Called(ctx, ev).Error(0)
}
