package service

import (
	"context"

	"github.com/RoyceAzure/lab/ecommerce/internal/domain/model"
	"github.com/RoyceAzure/lab/ecommerce/internal/infra/repository/db"
)

type IAddressService interface {
	CreateAddress(ctx context.Context, address *model.Address) (*model.Address, error)
	GetAddress(ctx context.Context, addressID uint) (*model.Address, error)
	GetAddressesByCustomer(ctx context.Context, customerID uint) ([]model.Address, error)
	UpdateAddress(ctx context.Context, address *model.Address) (*model.Address, error)
	DeleteAddress(ctx context.Context, addressID uint) error
}

type AddressService struct {
	addressRepo  db.IAddressRepository
	customerRepo db.ICustomerRepository
}

func NewAddressService(addressRepo db.IAddressRepository, customerRepo db.ICustomerRepository) *AddressService {
	return &AddressService{addressRepo: addressRepo, customerRepo: customerRepo}
}

func (s *AddressService) CreateAddress(ctx context.Context, address *model.Address) (*model.Address, error) {
	customer, err := s.customerRepo.GetCustomerByID(ctx, address.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	if !customer.IsActive {
		return nil, ErrCustomerNotActive
	}

	if err := s.addressRepo.CreateAddress(ctx, address); err != nil {
		return nil, err
	}
	return address, nil
}

func (s *AddressService) GetAddress(ctx context.Context, addressID uint) (*model.Address, error) {
	address, err := s.addressRepo.GetAddressByID(ctx, addressID)
	if err != nil {
		return nil, err
	}
	if address == nil {
		return nil, ErrAddressNotFound
	}
	return address, nil
}

func (s *AddressService) GetAddressesByCustomer(ctx context.Context, customerID uint) ([]model.Address, error) {
	customer, err := s.customerRepo.GetCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	return s.addressRepo.GetAddressesByCustomer(ctx, customerID)
}

func (s *AddressService) UpdateAddress(ctx context.Context, address *model.Address) (*model.Address, error) {
	current, err := s.addressRepo.GetAddressByID(ctx, address.AddressID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrAddressNotFound
	}

	// 地址不能換主人
	address.CustomerID = current.CustomerID
	address.BaseModel = current.BaseModel
	if err := s.addressRepo.UpdateAddress(ctx, address); err != nil {
		return nil, err
	}
	return s.GetAddress(ctx, address.AddressID)
}

func (s *AddressService) DeleteAddress(ctx context.Context, addressID uint) error {
	address, err := s.addressRepo.GetAddressByID(ctx, addressID)
	if err != nil {
		return err
	}
	if address == nil {
		return ErrAddressNotFound
	}
	return s.addressRepo.DeleteAddress(ctx, addressID)
}

var _ IAddressService = (*AddressService)(nil)
