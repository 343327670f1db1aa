package product

import (
	"context"

	"github.com/anhlog/wms/constant"
	"github.com/anhlog/wms/model"
	productrepo "github.com/anhlog/wms/repository/product"
	"github.com/anhlog/wms/utils/errors"
	"github.com/anhlog/wms/utils/logger"
	"go.uber.org/zap"
)

type ProductApp interface {
	CreateProduct(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error)
	GetProduct(ctx context.Context, productID uint64) (*model.Product, error)
	ListProducts(ctx context.Context, customerID uint64, page, perPage int) (*model.ProductListResponse, error)
}

type productAppImpl struct {
	productRepo productrepo.ProductRepository
}

func NewProductApp(productRepo productrepo.ProductRepository) ProductApp {
	return &productAppImpl{productRepo: productRepo}
}

func (s *productAppImpl) CreateProduct(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error) {
	existing, err := s.productRepo.GetBySKU(ctx, req.CustomerID, req.SKU)
	if err != nil {
		logger.Error("[CreateProduct] get by sku failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrProductExists)
	}

	p := &model.Product{
		CustomerID:   req.CustomerID,
		BrandID:      req.BrandID,
		SKU:          req.SKU,
		Name:         req.Name,
		ReorderPoint: req.ReorderPoint,
		UnitCost:     req.UnitCost,
	}
	id, err := s.productRepo.Insert(ctx, p)
	if err != nil {
		logger.Error("[CreateProduct] insert failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	p.ID = id
	return p, nil
}

func (s *productAppImpl) GetProduct(ctx context.Context, productID uint64) (*model.Product, error) {
	p, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		logger.Error("[GetProduct] get failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if p == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return p, nil
}

func (s *productAppImpl) ListProducts(ctx context.Context, customerID uint64, page, perPage int) (*model.ProductListResponse, error) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 20
	}

	items, total, err := s.productRepo.List(ctx, customerID, page, perPage)
	if err != nil {
		logger.Error("[ListProducts] list failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.ProductListResponse{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
	}, nil
}
