package service

import (
	"context"

	"github.com/iliyamo/fashion-trend-analysis/internal/model"
)

// AnalysisRepository is implemented by *repository.AnalysisRepo.
type AnalysisRepository interface {
	CategoryAverageBySeason(ctx context.Context, season string) (map[string]*float64, error)
	DesignerAverage(ctx context.Context) (map[string]*float64, error)
	ProductAverage(ctx context.Context) (map[string]*float64, error)
	TrendAverage(ctx context.Context) (map[string]*float64, error)
	ProductAverageByCategory(ctx context.Context) (map[string]*float64, error)
	TrendAverageByCategory(ctx context.Context) (map[string]*float64, error)
	TrendAverageBySeason(ctx context.Context, season string) (map[string]*float64, error)
}

// AnalysisService exposes the name -> average popularity aggregates.  A
// nil average means the entity has no recorded scores.
type AnalysisService struct {
	repo AnalysisRepository
}

func NewAnalysisService(repo AnalysisRepository) *AnalysisService {
	return &AnalysisService{repo: repo}
}

func (s *AnalysisService) CategoryAverageBySeason(ctx context.Context, season string) (map[string]*float64, error) {
	return s.repo.CategoryAverageBySeason(ctx, model.NormalizeSeason(season))
}

func (s *AnalysisService) DesignerAverage(ctx context.Context) (map[string]*float64, error) {
	return s.repo.DesignerAverage(ctx)
}

func (s *AnalysisService) ProductAverage(ctx context.Context) (map[string]*float64, error) {
	return s.repo.ProductAverage(ctx)
}

func (s *AnalysisService) TrendAverage(ctx context.Context) (map[string]*float64, error) {
	return s.repo.TrendAverage(ctx)
}

func (s *AnalysisService) ProductAverageByCategory(ctx context.Context) (map[string]*float64, error) {
	return s.repo.ProductAverageByCategory(ctx)
}

func (s *AnalysisService) TrendAverageByCategory(ctx context.Context) (map[string]*float64, error) {
	return s.repo.TrendAverageByCategory(ctx)
}

func (s *AnalysisService) TrendAverageBySeason(ctx context.Context, season string) (map[string]*float64, error) {
	return s.repo.TrendAverageBySeason(ctx, model.NormalizeSeason(season))
}
