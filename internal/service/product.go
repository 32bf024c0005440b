package service

import (
	"context"
	"strconv"

	"github.com/ecodeclub/ekit/slice"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/fashion-trend-analysis/internal/model"
	"github.com/iliyamo/fashion-trend-analysis/internal/queue"
)

// ProductRepository is implemented by *repository.ProductRepo.
type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	Create(ctx context.Context, p model.Product) (int64, error)
	Update(ctx context.Context, id int64, p model.Product) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	ListByDesigner(ctx context.Context, designerID int64) ([]model.Product, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]model.Product, error)
	AssociateDesigner(ctx context.Context, productID, designerID int64) (bool, error)
	DissociateDesigner(ctx context.Context, productID, designerID int64) (bool, error)
	ListDesigners(ctx context.Context, productID int64) ([]model.Designer, error)
	SetPopularity(ctx context.Context, productID, trendID int64, score int) error
	GetPopularity(ctx context.Context, productID, trendID int64) (int, error)
	ListPopularities(ctx context.Context, productID int64) ([]model.ProductPopularity, error)
	CountByCategory(ctx context.Context) (map[string]int, error)
}

type ProductService struct {
	repo ProductRepository
	notifier
}

func NewProductService(repo ProductRepository, events EventPublisher, log logrus.FieldLogger) *ProductService {
	return &ProductService{repo: repo, notifier: notifier{events: events, log: log}}
}

func (s *ProductService) List(ctx context.Context) ([]model.Product, error) {
	return s.repo.List(ctx)
}

func (s *ProductService) Get(ctx context.Context, id int64) (*model.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, p model.Product) (int64, error) {
	return s.repo.Create(ctx, p)
}

func (s *ProductService) Update(ctx context.Context, id int64, p model.Product) (bool, error) {
	return s.repo.Update(ctx, id, p)
}

func (s *ProductService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}

func (s *ProductService) ListByDesigner(ctx context.Context, designerID int64) ([]model.Product, error) {
	return s.repo.ListByDesigner(ctx, designerID)
}

func (s *ProductService) ListByCategory(ctx context.Context, categoryID int64) ([]model.Product, error) {
	return s.repo.ListByCategory(ctx, categoryID)
}

func (s *ProductService) CountByCategory(ctx context.Context) (map[string]int, error) {
	return s.repo.CountByCategory(ctx)
}

// AssociateDesigner reports whether a new link was created; an existing
// link is left alone.
func (s *ProductService) AssociateDesigner(ctx context.Context, productID, designerID int64) (bool, error) {
	return s.repo.AssociateDesigner(ctx, productID, designerID)
}

func (s *ProductService) DissociateDesigner(ctx context.Context, productID, designerID int64) (bool, error) {
	return s.repo.DissociateDesigner(ctx, productID, designerID)
}

func (s *ProductService) ListDesigners(ctx context.Context, productID int64) ([]model.Designer, error) {
	return s.repo.ListDesigners(ctx, productID)
}

func (s *ProductService) SetPopularity(ctx context.Context, productID, trendID int64, score int) error {
	if err := validateScore(score); err != nil {
		return err
	}
	if err := s.repo.SetPopularity(ctx, productID, trendID, score); err != nil {
		return err
	}
	s.popularityRecorded(ctx, queue.KindProduct, productID, strconv.FormatInt(trendID, 10), score)
	return nil
}

func (s *ProductService) GetPopularity(ctx context.Context, productID, trendID int64) (int, error) {
	return s.repo.GetPopularity(ctx, productID, trendID)
}

func (s *ProductService) AllPopularities(ctx context.Context, productID int64) ([]int, error) {
	rows, err := s.repo.ListPopularities(ctx, productID)
	if err != nil {
		return nil, err
	}
	return slice.Map(rows, func(_ int, p model.ProductPopularity) int { return p.Score }), nil
}
