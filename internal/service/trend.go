package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/iliyamo/fashion-trend-analysis/internal/model"
	"github.com/iliyamo/fashion-trend-analysis/internal/queue"
)

// TrendRepository is implemented by *repository.TrendRepo.
type TrendRepository interface {
	List(ctx context.Context) ([]model.Trend, error)
	GetByID(ctx context.Context, id int64) (*model.Trend, error)
	Create(ctx context.Context, t model.Trend) (int64, error)
	Update(ctx context.Context, id int64, t model.Trend) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]model.Trend, error)
	ListByDesigner(ctx context.Context, designerID int64) ([]model.Trend, error)
	ListByLocation(ctx context.Context, location string) ([]model.Trend, error)
	ListBySeason(ctx context.Context, season string) ([]model.Trend, error)
	AssociateCategory(ctx context.Context, trendID, categoryID int64) (bool, error)
	DissociateCategory(ctx context.Context, trendID, categoryID int64) (bool, error)
	SetPopularity(ctx context.Context, trendID int64, score int) (bool, error)
	GetPopularity(ctx context.Context, trendID int64) (int, error)
	PopularityHistory(ctx context.Context, trendID int64) ([]model.TrendPopularity, error)
}

type TrendService struct {
	repo TrendRepository
	notifier
}

func NewTrendService(repo TrendRepository, events EventPublisher, log logrus.FieldLogger) *TrendService {
	return &TrendService{repo: repo, notifier: notifier{events: events, log: log}}
}

func (s *TrendService) List(ctx context.Context) ([]model.Trend, error) {
	return s.repo.List(ctx)
}

func (s *TrendService) Get(ctx context.Context, id int64) (*model.Trend, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *TrendService) Create(ctx context.Context, t model.Trend) (int64, error) {
	if err := validateScore(t.PopularityScore); err != nil {
		return 0, err
	}
	t.Season = model.NormalizeSeason(t.Season)
	return s.repo.Create(ctx, t)
}

func (s *TrendService) Update(ctx context.Context, id int64, t model.Trend) (bool, error) {
	if err := validateScore(t.PopularityScore); err != nil {
		return false, err
	}
	t.Season = model.NormalizeSeason(t.Season)
	return s.repo.Update(ctx, id, t)
}

func (s *TrendService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}

func (s *TrendService) ListByCategory(ctx context.Context, categoryID int64) ([]model.Trend, error) {
	return s.repo.ListByCategory(ctx, categoryID)
}

func (s *TrendService) ListByDesigner(ctx context.Context, designerID int64) ([]model.Trend, error) {
	return s.repo.ListByDesigner(ctx, designerID)
}

func (s *TrendService) ListByLocation(ctx context.Context, location string) ([]model.Trend, error) {
	return s.repo.ListByLocation(ctx, location)
}

func (s *TrendService) ListBySeason(ctx context.Context, season string) ([]model.Trend, error) {
	return s.repo.ListBySeason(ctx, model.NormalizeSeason(season))
}

func (s *TrendService) AssociateCategory(ctx context.Context, trendID, categoryID int64) (bool, error) {
	return s.repo.AssociateCategory(ctx, trendID, categoryID)
}

func (s *TrendService) DissociateCategory(ctx context.Context, trendID, categoryID int64) (bool, error) {
	return s.repo.DissociateCategory(ctx, trendID, categoryID)
}

// SetPopularity replaces the current value and appends it to the
// history.  It returns false when the trend does not exist.
func (s *TrendService) SetPopularity(ctx context.Context, id int64, score int) (bool, error) {
	if err := validateScore(score); err != nil {
		return false, err
	}
	ok, err := s.repo.SetPopularity(ctx, id, score)
	if err != nil || !ok {
		return ok, err
	}
	s.popularityRecorded(ctx, queue.KindTrend, id, "current", score)
	return true, nil
}

func (s *TrendService) GetPopularity(ctx context.Context, id int64) (int, error) {
	return s.repo.GetPopularity(ctx, id)
}

func (s *TrendService) PopularityHistory(ctx context.Context, id int64) ([]model.TrendPopularity, error) {
	return s.repo.PopularityHistory(ctx, id)
}
