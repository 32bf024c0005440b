package service

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/fashion-trend-analysis/internal/model"
	"github.com/iliyamo/fashion-trend-analysis/internal/queue"
)

// CategoryRepository is implemented by *repository.CategoryRepo.
type CategoryRepository interface {
	List(ctx context.Context) ([]model.Category, error)
	GetByID(ctx context.Context, id int64) (*model.Category, error)
	Create(ctx context.Context, c model.Category) (int64, error)
	Update(ctx context.Context, id int64, c model.Category) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	ListByTrend(ctx context.Context, trendID int64) ([]model.Category, error)
	ListByProduct(ctx context.Context, productID int64) ([]model.Category, error)
	SetPopularity(ctx context.Context, categoryID int64, season string, score int) error
	GetPopularity(ctx context.Context, categoryID int64, season string) (int, error)
	ListPopularities(ctx context.Context, categoryID int64) ([]model.CategoryPopularity, error)
}

type CategoryService struct {
	repo CategoryRepository
	notifier
}

func NewCategoryService(repo CategoryRepository, events EventPublisher, log logrus.FieldLogger) *CategoryService {
	return &CategoryService{repo: repo, notifier: notifier{events: events, log: log}}
}

func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.repo.List(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id int64) (*model.Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, c model.Category) (int64, error) {
	return s.repo.Create(ctx, c)
}

func (s *CategoryService) Update(ctx context.Context, id int64, c model.Category) (bool, error) {
	return s.repo.Update(ctx, id, c)
}

func (s *CategoryService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}

func (s *CategoryService) ListByTrend(ctx context.Context, trendID int64) ([]model.Category, error) {
	return s.repo.ListByTrend(ctx, trendID)
}

func (s *CategoryService) ListByProduct(ctx context.Context, productID int64) ([]model.Category, error) {
	return s.repo.ListByProduct(ctx, productID)
}

// SetPopularity upserts the seasonal score.  Known season names are
// canonicalised first so "spring" and "Spring" share one row.
func (s *CategoryService) SetPopularity(ctx context.Context, id int64, season string, score int) error {
	if err := validateScore(score); err != nil {
		return err
	}
	season = model.NormalizeSeason(season)
	if season == "" {
		return &ValidationError{Field: "season", Msg: "required"}
	}
	if err := s.repo.SetPopularity(ctx, id, season, score); err != nil {
		return err
	}
	s.popularityRecorded(ctx, queue.KindCategory, id, season, score)
	return nil
}

func (s *CategoryService) GetPopularity(ctx context.Context, id int64, season string) (int, error) {
	return s.repo.GetPopularity(ctx, id, model.NormalizeSeason(season))
}

// AllPopularities returns every recorded score of the category, in store
// order.
func (s *CategoryService) AllPopularities(ctx context.Context, id int64) ([]int, error) {
	rows, err := s.repo.ListPopularities(ctx, id)
	if err != nil {
		return nil, err
	}
	return slice.Map(rows, func(_ int, p model.CategoryPopularity) int { return p.Score }), nil
}

// Overview returns the seasonal scores ordered Spring, Summer, Fall,
// Winter, then any other season alphabetically.
func (s *CategoryService) Overview(ctx context.Context, id int64) ([]model.CategoryPopularity, error) {
	rows, err := s.repo.ListPopularities(ctx, id)
	if err != nil {
		return nil, err
	}
	model.SortBySeason(rows)
	return rows, nil
}
