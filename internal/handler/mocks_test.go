package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/iliyamo/fashion-trend-analysis/internal/model"
	"github.com/iliyamo/fashion-trend-analysis/internal/service"
	"github.com/iliyamo/fashion-trend-analysis/internal/utils"
)

type mockCategorySvc struct{ mock.Mock }

func (m *mockCategorySvc) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Category)
	return items, args.Error(1)
}
func (m *mockCategorySvc) Get(ctx context.Context, id int64) (*model.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*model.Category)
	return c, args.Error(1)
}
func (m *mockCategorySvc) Create(ctx context.Context, c model.Category) (int64, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockCategorySvc) Update(ctx context.Context, id int64, c model.Category) (bool, error) {
	args := m.Called(ctx, id, c)
	return args.Bool(0), args.Error(1)
}
func (m *mockCategorySvc) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *mockCategorySvc) ListByTrend(ctx context.Context, trendID int64) ([]model.Category, error) {
	args := m.Called(ctx, trendID)
	items, _ := args.Get(0).([]model.Category)
	return items, args.Error(1)
}
func (m *mockCategorySvc) ListByProduct(ctx context.Context, productID int64) ([]model.Category, error) {
	args := m.Called(ctx, productID)
	items, _ := args.Get(0).([]model.Category)
	return items, args.Error(1)
}
func (m *mockCategorySvc) SetPopularity(ctx context.Context, id int64, season string, score int) error {
	return m.Called(ctx, id, season, score).Error(0)
}
func (m *mockCategorySvc) GetPopularity(ctx context.Context, id int64, season string) (int, error) {
	args := m.Called(ctx, id, season)
	return args.Int(0), args.Error(1)
}
func (m *mockCategorySvc) AllPopularities(ctx context.Context, id int64) ([]int, error) {
	args := m.Called(ctx, id)
	scores, _ := args.Get(0).([]int)
	return scores, args.Error(1)
}
func (m *mockCategorySvc) Overview(ctx context.Context, id int64) ([]model.CategoryPopularity, error) {
	args := m.Called(ctx, id)
	rows, _ := args.Get(0).([]model.CategoryPopularity)
	return rows, args.Error(1)
}

type mockDesignerSvc struct{ mock.Mock }

func (m *mockDesignerSvc) List(ctx context.Context) ([]model.Designer, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Designer)
	return items, args.Error(1)
}
func (m *mockDesignerSvc) Get(ctx context.Context, id int64) (*model.Designer, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*model.Designer)
	return d, args.Error(1)
}
func (m *mockDesignerSvc) Create(ctx context.Context, d model.Designer) (int64, error) {
	args := m.Called(ctx, d)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockDesignerSvc) Update(ctx context.Context, id int64, d model.Designer) (bool, error) {
	args := m.Called(ctx, id, d)
	return args.Bool(0), args.Error(1)
}
func (m *mockDesignerSvc) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *mockDesignerSvc) ListByLocation(ctx context.Context, location string) ([]model.Designer, error) {
	args := m.Called(ctx, location)
	items, _ := args.Get(0).([]model.Designer)
	return items, args.Error(1)
}
func (m *mockDesignerSvc) TrendCount(ctx context.Context, id int64) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}
func (m *mockDesignerSvc) PopularityScore(ctx context.Context, id int64) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}
func (m *mockDesignerSvc) ListProducts(ctx context.Context, id int64) ([]model.Product, error) {
	args := m.Called(ctx, id)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

type mockProductSvc struct{ mock.Mock }

func (m *mockProductSvc) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}
func (m *mockProductSvc) Get(ctx context.Context, id int64) (*model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*model.Product)
	return p, args.Error(1)
}
func (m *mockProductSvc) Create(ctx context.Context, p model.Product) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockProductSvc) Update(ctx context.Context, id int64, p model.Product) (bool, error) {
	args := m.Called(ctx, id, p)
	return args.Bool(0), args.Error(1)
}
func (m *mockProductSvc) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *mockProductSvc) ListByDesigner(ctx context.Context, id int64) ([]model.Product, error) {
	args := m.Called(ctx, id)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}
func (m *mockProductSvc) ListByCategory(ctx context.Context, id int64) ([]model.Product, error) {
	args := m.Called(ctx, id)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}
func (m *mockProductSvc) CountByCategory(ctx context.Context) (map[string]int, error) {
	args := m.Called(ctx)
	counts, _ := args.Get(0).(map[string]int)
	return counts, args.Error(1)
}
func (m *mockProductSvc) AssociateDesigner(ctx context.Context, productID, designerID int64) (bool, error) {
	args := m.Called(ctx, productID, designerID)
	return args.Bool(0), args.Error(1)
}
func (m *mockProductSvc) DissociateDesigner(ctx context.Context, productID, designerID int64) (bool, error) {
	args := m.Called(ctx, productID, designerID)
	return args.Bool(0), args.Error(1)
}
func (m *mockProductSvc) ListDesigners(ctx context.Context, productID int64) ([]model.Designer, error) {
	args := m.Called(ctx, productID)
	items, _ := args.Get(0).([]model.Designer)
	return items, args.Error(1)
}
func (m *mockProductSvc) SetPopularity(ctx context.Context, productID, trendID int64, score int) error {
	return m.Called(ctx, productID, trendID, score).Error(0)
}
func (m *mockProductSvc) GetPopularity(ctx context.Context, productID, trendID int64) (int, error) {
	args := m.Called(ctx, productID, trendID)
	return args.Int(0), args.Error(1)
}
func (m *mockProductSvc) AllPopularities(ctx context.Context, productID int64) ([]int, error) {
	args := m.Called(ctx, productID)
	scores, _ := args.Get(0).([]int)
	return scores, args.Error(1)
}

type mockTrendSvc struct{ mock.Mock }

func (m *mockTrendSvc) List(ctx context.Context) ([]model.Trend, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Trend)
	return items, args.Error(1)
}
func (m *mockTrendSvc) Get(ctx context.Context, id int64) (*model.Trend, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*model.Trend)
	return t, args.Error(1)
}
func (m *mockTrendSvc) Create(ctx context.Context, t model.Trend) (int64, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockTrendSvc) Update(ctx context.Context, id int64, t model.Trend) (bool, error) {
	args := m.Called(ctx, id, t)
	return args.Bool(0), args.Error(1)
}
func (m *mockTrendSvc) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *mockTrendSvc) ListByCategory(ctx context.Context, id int64) ([]model.Trend, error) {
	args := m.Called(ctx, id)
	items, _ := args.Get(0).([]model.Trend)
	return items, args.Error(1)
}
func (m *mockTrendSvc) ListByDesigner(ctx context.Context, id int64) ([]model.Trend, error) {
	args := m.Called(ctx, id)
	items, _ := args.Get(0).([]model.Trend)
	return items, args.Error(1)
}
func (m *mockTrendSvc) ListByLocation(ctx context.Context, location string) ([]model.Trend, error) {
	args := m.Called(ctx, location)
	items, _ := args.Get(0).([]model.Trend)
	return items, args.Error(1)
}
func (m *mockTrendSvc) ListBySeason(ctx context.Context, season string) ([]model.Trend, error) {
	args := m.Called(ctx, season)
	items, _ := args.Get(0).([]model.Trend)
	return items, args.Error(1)
}
func (m *mockTrendSvc) AssociateCategory(ctx context.Context, trendID, categoryID int64) (bool, error) {
	args := m.Called(ctx, trendID, categoryID)
	return args.Bool(0), args.Error(1)
}
func (m *mockTrendSvc) DissociateCategory(ctx context.Context, trendID, categoryID int64) (bool, error) {
	args := m.Called(ctx, trendID, categoryID)
	return args.Bool(0), args.Error(1)
}
func (m *mockTrendSvc) SetPopularity(ctx context.Context, id int64, score int) (bool, error) {
	args := m.Called(ctx, id, score)
	return args.Bool(0), args.Error(1)
}
func (m *mockTrendSvc) GetPopularity(ctx context.Context, id int64) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}
func (m *mockTrendSvc) PopularityHistory(ctx context.Context, id int64) ([]model.TrendPopularity, error) {
	args := m.Called(ctx, id)
	rows, _ := args.Get(0).([]model.TrendPopularity)
	return rows, args.Error(1)
}

type mockAnalysisSvc struct{ mock.Mock }

func (m *mockAnalysisSvc) avg(args mock.Arguments) (map[string]*float64, error) {
	out, _ := args.Get(0).(map[string]*float64)
	return out, args.Error(1)
}
func (m *mockAnalysisSvc) CategoryAverageBySeason(ctx context.Context, season string) (map[string]*float64, error) {
	return m.avg(m.Called(ctx, season))
}
func (m *mockAnalysisSvc) DesignerAverage(ctx context.Context) (map[string]*float64, error) {
	return m.avg(m.Called(ctx))
}
func (m *mockAnalysisSvc) ProductAverage(ctx context.Context) (map[string]*float64, error) {
	return m.avg(m.Called(ctx))
}
func (m *mockAnalysisSvc) TrendAverage(ctx context.Context) (map[string]*float64, error) {
	return m.avg(m.Called(ctx))
}
func (m *mockAnalysisSvc) ProductAverageByCategory(ctx context.Context) (map[string]*float64, error) {
	return m.avg(m.Called(ctx))
}
func (m *mockAnalysisSvc) TrendAverageByCategory(ctx context.Context) (map[string]*float64, error) {
	return m.avg(m.Called(ctx))
}
func (m *mockAnalysisSvc) TrendAverageBySeason(ctx context.Context, season string) (map[string]*float64, error) {
	return m.avg(m.Called(ctx, season))
}

type mockAuthSvc struct{ mock.Mock }

func (m *mockAuthSvc) Register(ctx context.Context, in service.RegisterInput) (int64, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockAuthSvc) Login(ctx context.Context, username, password string) (*service.Session, error) {
	args := m.Called(ctx, username, password)
	s, _ := args.Get(0).(*service.Session)
	return s, args.Error(1)
}
func (m *mockAuthSvc) Refresh(ctx context.Context, raw string) (*service.Session, error) {
	args := m.Called(ctx, raw)
	s, _ := args.Get(0).(*service.Session)
	return s, args.Error(1)
}
func (m *mockAuthSvc) RefreshAccess(ctx context.Context, raw string) (utils.AccessToken, error) {
	args := m.Called(ctx, raw)
	return args.Get(0).(utils.AccessToken), args.Error(1)
}
func (m *mockAuthSvc) Logout(ctx context.Context, raw string, userID int64) error {
	return m.Called(ctx, raw, userID).Error(0)
}

type mockUserSvc struct{ mock.Mock }

func (m *mockUserSvc) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.User)
	return items, args.Error(1)
}
func (m *mockUserSvc) Get(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}
func (m *mockUserSvc) Update(ctx context.Context, id int64, in service.UserUpdate) (bool, error) {
	args := m.Called(ctx, id, in)
	return args.Bool(0), args.Error(1)
}
func (m *mockUserSvc) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
