package service

import (
	"context"

	"github.com/RoyceAzure/lab/ecommerce/internal/domain/model"
	"github.com/RoyceAzure/lab/ecommerce/internal/infra/repository/db"
)

type ICustomerService interface {
	RegisterCustomer(ctx context.Context, customer *model.Customer) (*model.Customer, error)
	GetCustomer(ctx context.Context, customerID uint) (*model.Customer, error)
	UpdateCustomer(ctx context.Context, customer *model.Customer) (*model.Customer, error)
	DeleteCustomer(ctx context.Context, customerID uint) error
}

type CustomerService struct {
	customerRepo db.ICustomerRepository
}

func NewCustomerService(customerRepo db.ICustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

func (s *CustomerService) RegisterCustomer(ctx context.Context, customer *model.Customer) (*model.Customer, error) {
	existing, err := s.customerRepo.GetCustomerByEmail(ctx, customer.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyUsed
	}

	customer.IsActive = true
	if err := s.customerRepo.CreateCustomer(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) GetCustomer(ctx context.Context, customerID uint) (*model.Customer, error) {
	customer, err := s.customerRepo.GetCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	return customer, nil
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, customer *model.Customer) (*model.Customer, error) {
	current, err := s.customerRepo.GetCustomerByID(ctx, customer.CustomerID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrCustomerNotFound
	}

	sameEmail, err := s.customerRepo.GetCustomerByEmail(ctx, customer.Email)
	if err != nil {
		return nil, err
	}
	if sameEmail != nil && sameEmail.CustomerID != customer.CustomerID {
		return nil, ErrEmailAlreadyUsed
	}

	customer.IsActive = current.IsActive
	customer.BaseModel = current.BaseModel
	if err := s.customerRepo.UpdateCustomer(ctx, customer); err != nil {
		return nil, err
	}
	return s.GetCustomer(ctx, customer.CustomerID)
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, customerID uint) error {
	customer, err := s.customerRepo.GetCustomerByID(ctx, customerID)
	if err != nil {
		return err
	}
	if customer == nil {
		return ErrCustomerNotFound
	}
	return s.customerRepo.DeleteCustomer(ctx, customerID)
}

var _ ICustomerService = (*CustomerService)(nil)
