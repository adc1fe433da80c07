package db

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/ecommerce/internal/domain/model"
	"gorm.io/gorm"
)

// ICustomerRepository Customer 相關操作介面
type ICustomerRepository interface {
	CreateCustomer(ctx context.Context, customer *model.Customer) error
	GetCustomerByID(ctx context.Context, customerID uint) (*model.Customer, error)
	GetCustomerByEmail(ctx context.Context, email string) (*model.Customer, error)
	UpdateCustomer(ctx context.Context, customer *model.Customer) error
	DeleteCustomer(ctx context.Context, customerID uint) error
}

// IAddressRepository Address 相關操作介面
type IAddressRepository interface {
	CreateAddress(ctx context.Context, address *model.Address) error
	GetAddressByID(ctx context.Context, addressID uint) (*model.Address, error)
	GetAddressesByCustomer(ctx context.Context, customerID uint) ([]model.Address, error)
	UpdateAddress(ctx context.Context, address *model.Address) error
	DeleteAddress(ctx context.Context, addressID uint) error
}

type CustomerRepo struct {
	db *DbDao
}

func NewCustomerRepo(db *DbDao) *CustomerRepo {
	return &CustomerRepo{db: db}
}

func (s *CustomerRepo) CreateCustomer(ctx context.Context, customer *model.Customer) error {
	return s.db.WithContext(ctx).Create(customer).Error
}

// Read - 根據ID查詢，不存在回傳nil, nil
func (s *CustomerRepo) GetCustomerByID(ctx context.Context, customerID uint) (*model.Customer, error) {
	var customer model.Customer
	err := s.db.WithContext(ctx).First(&customer, customerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *CustomerRepo) GetCustomerByEmail(ctx context.Context, email string) (*model.Customer, error) {
	var customer model.Customer
	err := s.db.WithContext(ctx).Where("lower(email) = lower(?)", email).First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *CustomerRepo) UpdateCustomer(ctx context.Context, customer *model.Customer) error {
	return s.db.WithContext(ctx).Save(customer).Error
}

// Delete - 軟刪除
func (s *CustomerRepo) DeleteCustomer(ctx context.Context, customerID uint) error {
	return s.db.WithContext(ctx).Delete(&model.Customer{}, customerID).Error
}

type AddressRepo struct {
	db *DbDao
}

func NewAddressRepo(db *DbDao) *AddressRepo {
	return &AddressRepo{db: db}
}

func (s *AddressRepo) CreateAddress(ctx context.Context, address *model.Address) error {
	return s.db.WithContext(ctx).Create(address).Error
}

func (s *AddressRepo) GetAddressByID(ctx context.Context, addressID uint) (*model.Address, error) {
	var address model.Address
	err := s.db.WithContext(ctx).First(&address, addressID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &address, nil
}

func (s *AddressRepo) GetAddressesByCustomer(ctx context.Context, customerID uint) ([]model.Address, error) {
	var addresses []model.Address
	err := s.db.WithContext(ctx).Where("customer_id = ?", customerID).Find(&addresses).Error
	return addresses, err
}

func (s *AddressRepo) UpdateAddress(ctx context.Context, address *model.Address) error {
	return s.db.WithContext(ctx).Save(address).Error
}

func (s *AddressRepo) DeleteAddress(ctx context.Context, addressID uint) error {
	return s.db.WithContext(ctx).Delete(&model.Address{}, addressID).Error
}

var (
	_ ICustomerRepository = (*CustomerRepo)(nil)
	_ IAddressRepository  = (*AddressRepo)(nil)
)
