package service

import (
	"context"

	"github.com/RoyceAzure/lab/ecommerce/internal/domain/model"
	"github.com/RoyceAzure/lab/ecommerce/internal/infra/repository/db"
)

type IProductService interface {
	CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	GetProduct(ctx context.Context, productID uint) (*model.Product, error)
	GetAllProducts(ctx context.Context) ([]model.Product, error)
	GetProductsByCategory(ctx context.Context, categoryID uint) ([]model.Product, error)
	UpdateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	SetAvailability(ctx context.Context, productID uint, available bool) error
	UpdateStock(ctx context.Context, productID uint, stock uint) error
	DeleteProduct(ctx context.Context, productID uint) error
}

type ProductService struct {
	productRepo  db.IProductRepository
	categoryRepo db.ICategoryRepository
}

func NewProductService(productRepo db.IProductRepository, categoryRepo db.ICategoryRepository) *ProductService {
	return &ProductService{productRepo: productRepo, categoryRepo: categoryRepo}
}

func (s *ProductService) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	existing, err := s.productRepo.GetProductByName(ctx, product.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrProductNameUsed
	}

	category, err := s.categoryRepo.GetCategoryByID(ctx, product.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	product.IsAvailable = true
	if err := s.productRepo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) GetProduct(ctx context.Context, productID uint) (*model.Product, error) {
	product, err := s.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *ProductService) GetAllProducts(ctx context.Context) ([]model.Product, error) {
	return s.productRepo.GetAllProducts(ctx)
}

func (s *ProductService) GetProductsByCategory(ctx context.Context, categoryID uint) ([]model.Product, error) {
	category, err := s.categoryRepo.GetCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return s.productRepo.GetProductsByCategory(ctx, categoryID)
}

func (s *ProductService) UpdateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	current, err := s.productRepo.GetProductByID(ctx, product.ProductID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrProductNotFound
	}

	// 名稱不能撞到其他商品
	sameName, err := s.productRepo.GetProductByName(ctx, product.Name)
	if err != nil {
		return nil, err
	}
	if sameName != nil && sameName.ProductID != product.ProductID {
		return nil, ErrProductNameUsed
	}

	product.BaseModel = current.BaseModel
	if err := s.productRepo.UpdateProduct(ctx, product); err != nil {
		return nil, err
	}
	return s.GetProduct(ctx, product.ProductID)
}

func (s *ProductService) SetAvailability(ctx context.Context, productID uint, available bool) error {
	product, err := s.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	return s.productRepo.SetAvailability(ctx, productID, available)
}

func (s *ProductService) UpdateStock(ctx context.Context, productID uint, stock uint) error {
	product, err := s.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	return s.productRepo.UpdateStock(ctx, productID, stock)
}

func (s *ProductService) DeleteProduct(ctx context.Context, productID uint) error {
	product, err := s.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	return s.productRepo.DeleteProduct(ctx, productID)
}

var _ IProductService = (*ProductService)(nil)
