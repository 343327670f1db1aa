package customer

import (
	"context"

	"github.com/anhlog/wms/constant"
	"github.com/anhlog/wms/model"
	customerrepo "github.com/anhlog/wms/repository/customer"
	"github.com/anhlog/wms/utils/errors"
	"github.com/anhlog/wms/utils/logger"
	"go.uber.org/zap"
)

type CustomerApp interface {
	CreateCustomer(ctx context.Context, req *model.CreateCustomerRequest) (*model.Customer, error)
	GetCustomer(ctx context.Context, customerID uint64) (*model.Customer, error)
	ListCustomers(ctx context.Context) ([]model.Customer, error)
	CreateBrand(ctx context.Context, customerID uint64, req *model.CreateBrandRequest) (*model.Brand, error)
	ListBrands(ctx context.Context, customerID uint64) ([]model.Brand, error)
}

type customerAppImpl struct {
	customerRepo customerrepo.CustomerRepository
}

func NewCustomerApp(customerRepo customerrepo.CustomerRepository) CustomerApp {
	return &customerAppImpl{customerRepo: customerRepo}
}

func (s *customerAppImpl) CreateCustomer(ctx context.Context, req *model.CreateCustomerRequest) (*model.Customer, error) {
	existing, err := s.customerRepo.Get(ctx, &model.CustomerFilter{Email: req.Email})
	if err != nil {
		logger.Error("[CreateCustomer] get by email failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrCustomerExists)
	}

	c := &model.Customer{Name: req.Name, Email: req.Email}
	id, err := s.customerRepo.Insert(ctx, c)
	if err != nil {
		logger.Error("[CreateCustomer] insert failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	c.ID = id
	return c, nil
}

func (s *customerAppImpl) GetCustomer(ctx context.Context, customerID uint64) (*model.Customer, error) {
	c, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		logger.Error("[GetCustomer] get failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if c == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return c, nil
}

func (s *customerAppImpl) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		logger.Error("[ListCustomers] list failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return customers, nil
}

func (s *customerAppImpl) CreateBrand(ctx context.Context, customerID uint64, req *model.CreateBrandRequest) (*model.Brand, error) {
	owner, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		logger.Error("[CreateBrand] get customer failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if owner == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	b := &model.Brand{CustomerID: customerID, Name: req.Name}
	id, err := s.customerRepo.InsertBrand(ctx, b)
	if err != nil {
		logger.Error("[CreateBrand] insert failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	b.ID = id
	return b, nil
}

func (s *customerAppImpl) ListBrands(ctx context.Context, customerID uint64) ([]model.Brand, error) {
	brands, err := s.customerRepo.ListBrands(ctx, customerID)
	if err != nil {
		logger.Error("[ListBrands] list failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return brands, nil
}
