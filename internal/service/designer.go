package service

import (
	"context"

	"github.com/iliyamo/fashion-trend-analysis/internal/model"
)

// DesignerRepository is implemented by *repository.DesignerRepo.
type DesignerRepository interface {
	List(ctx context.Context) ([]model.Designer, error)
	GetByID(ctx context.Context, id int64) (*model.Designer, error)
	Create(ctx context.Context, d model.Designer) (int64, error)
	Update(ctx context.Context, id int64, d model.Designer) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	ListByLocation(ctx context.Context, location string) ([]model.Designer, error)
	TrendCount(ctx context.Context, id int64) (int, error)
	PopularityScore(ctx context.Context, id int64) (int, error)
	ListProducts(ctx context.Context, designerID int64) ([]model.Product, error)
}

// DesignerService passes every call through to the repository.
type DesignerService struct {
	repo DesignerRepository
}

func NewDesignerService(repo DesignerRepository) *DesignerService {
	return &DesignerService{repo: repo}
}

func (s *DesignerService) List(ctx context.Context) ([]model.Designer, error) {
	return s.repo.List(ctx)
}

func (s *DesignerService) Get(ctx context.Context, id int64) (*model.Designer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *DesignerService) Create(ctx context.Context, d model.Designer) (int64, error) {
	return s.repo.Create(ctx, d)
}

func (s *DesignerService) Update(ctx context.Context, id int64, d model.Designer) (bool, error) {
	return s.repo.Update(ctx, id, d)
}

func (s *DesignerService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}

func (s *DesignerService) ListByLocation(ctx context.Context, location string) ([]model.Designer, error) {
	return s.repo.ListByLocation(ctx, location)
}

func (s *DesignerService) TrendCount(ctx context.Context, id int64) (int, error) {
	return s.repo.TrendCount(ctx, id)
}

func (s *DesignerService) PopularityScore(ctx context.Context, id int64) (int, error) {
	return s.repo.PopularityScore(ctx, id)
}

func (s *DesignerService) ListProducts(ctx context.Context, id int64) ([]model.Product, error) {
	return s.repo.ListProducts(ctx, id)
}
