package db

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/ecommerce/internal/domain/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IProductRepository Product 相關操作介面
type IProductRepository interface {
	CreateProduct(ctx context.Context, product *model.Product) error
	// GetProductByID 商品不存在回傳nil, nil
	GetProductByID(ctx context.Context, productID uint) (*model.Product, error)
	GetProductByName(ctx context.Context, name string) (*model.Product, error)
	GetAllProducts(ctx context.Context) ([]model.Product, error)
	GetProductsByCategory(ctx context.Context, categoryID uint) ([]model.Product, error)
	UpdateProduct(ctx context.Context, product *model.Product) error
	UpdateStock(ctx context.Context, productID uint, stock uint) error
	SetAvailability(ctx context.Context, productID uint, available bool) error
	DeleteProduct(ctx context.Context, productID uint) error
}

type ProductDBRepo struct {
	db *DbDao
}

func NewProductDBRepo(db *DbDao) *ProductDBRepo {
	return &ProductDBRepo{db: db}
}

func (s *ProductDBRepo) CreateProduct(ctx context.Context, product *model.Product) error {
	return s.db.WithContext(ctx).Create(product).Error
}

func (s *ProductDBRepo) GetProductByID(ctx context.Context, productID uint) (*model.Product, error) {
	var product model.Product
	err := s.db.WithContext(ctx).First(&product, productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductDBRepo) GetProductByName(ctx context.Context, name string) (*model.Product, error) {
	var product model.Product
	err := s.db.WithContext(ctx).Where("lower(name) = lower(?)", name).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductDBRepo) GetAllProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := s.db.WithContext(ctx).Find(&products).Error
	return products, err
}

func (s *ProductDBRepo) GetProductsByCategory(ctx context.Context, categoryID uint) ([]model.Product, error) {
	var products []model.Product
	err := s.db.WithContext(ctx).Where("category_id = ?", categoryID).Find(&products).Error
	return products, err
}

// Update - 更新商品
func (s *ProductDBRepo) UpdateProduct(ctx context.Context, product *model.Product) error {
	return s.db.WithContext(ctx).Save(product).Error
}

// Update - 更新庫存
func (s *ProductDBRepo) UpdateStock(ctx context.Context, productID uint, stock uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		// 先鎖定記錄
		var product model.Product
		if err := tx.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("product_id = ?", productID).
			First(&product).Error; err != nil {
			return err
		}

		return tx.WithContext(ctx).Model(&model.Product{}).
			Where("product_id = ?", productID).
			Update("stock_quantity", stock).Error
	})
}

func (s *ProductDBRepo) SetAvailability(ctx context.Context, productID uint, available bool) error {
	return s.db.WithContext(ctx).Model(&model.Product{}).
		Where("product_id = ?", productID).
		Update("is_available", available).Error
}

// Delete - 軟刪除商品
func (s *ProductDBRepo) DeleteProduct(ctx context.Context, productID uint) error {
	return s.db.WithContext(ctx).Delete(&model.Product{}, productID).Error
}

var _ IProductRepository = (*ProductDBRepo)(nil)
