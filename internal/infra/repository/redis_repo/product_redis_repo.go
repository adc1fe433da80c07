package redis_repo

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/RoyceAzure/lab/ecommerce/internal/domain/model"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

type ProductCacheError error

var (
	ErrProductCacheMiss ProductCacheError = errors.New("product not in cache")
)

// IProductRedisRepository 定義 Redis 商品快取的介面
type IProductRedisRepository interface {
	// GetProduct 取得商品快照，cache miss回傳ErrProductCacheMiss
	GetProduct(ctx context.Context, productID uint) (*model.Product, error)

	// SetProduct 寫入商品快照
	SetProduct(ctx context.Context, product *model.Product) error

	// SetStock 只更新庫存欄位
	SetStock(ctx context.Context, productID uint, stock uint) error

	// DeleteProduct 刪除商品快照
	DeleteProduct(ctx context.Context, productID uint) error
}

/*	redis 專注商品快照，cart引擎的catalog讀取路徑
	結構:
	product:{id}: {
		name, price, discount_percentage, stock, is_available,
	}*/

type ProductRedisRepo struct {
	productCache *redis.Client
}

func NewProductRedisRepo(productCache *redis.Client) *ProductRedisRepo {
	return &ProductRedisRepo{productCache: productCache}
}

func generateProductKey(productID uint) string {
	return fmt.Sprintf("product:%d", productID)
}

func (s *ProductRedisRepo) GetProduct(ctx context.Context, productID uint) (*model.Product, error) {
	redisKey := generateProductKey(productID)
	fields, err := s.productCache.HGetAll(ctx, redisKey).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, ErrProductCacheMiss
	}
	return convertFieldsToProduct(productID, fields)
}

func (s *ProductRedisRepo) SetProduct(ctx context.Context, product *model.Product) error {
	redisKey := generateProductKey(product.ProductID)
	return s.productCache.HSet(ctx, redisKey,
		"name", product.Name,
		"price", product.Price.String(),
		"discount_percentage", product.DiscountPercentage.String(),
		"stock", product.StockQuantity,
		"is_available", strconv.FormatBool(product.IsAvailable),
	).Err()
}

func (s *ProductRedisRepo) SetStock(ctx context.Context, productID uint, stock uint) error {
	redisKey := generateProductKey(productID)
	// 只在快照存在時更新，避免寫出殘缺的hash
	exists, err := s.productCache.Exists(ctx, redisKey).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return ErrProductCacheMiss
	}
	return s.productCache.HSet(ctx, redisKey, "stock", stock).Err()
}

func (s *ProductRedisRepo) DeleteProduct(ctx context.Context, productID uint) error {
	redisKey := generateProductKey(productID)
	return s.productCache.Del(ctx, redisKey).Err()
}

// convertFieldsToProduct 將 Redis 的 map[string]string 轉換為 model.Product
func convertFieldsToProduct(productID uint, fields map[string]string) (*model.Product, error) {
	price, err := decimal.NewFromString(fields["price"])
	if err != nil {
		return nil, fmt.Errorf("invalid cached price for product %d: %w", productID, err)
	}
	discountPct, err := decimal.NewFromString(fields["discount_percentage"])
	if err != nil {
		return nil, fmt.Errorf("invalid cached discount for product %d: %w", productID, err)
	}
	stock, err := strconv.ParseUint(fields["stock"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid cached stock for product %d: %w", productID, err)
	}
	isAvailable, err := strconv.ParseBool(fields["is_available"])
	if err != nil {
		return nil, fmt.Errorf("invalid cached availability for product %d: %w", productID, err)
	}

	return &model.Product{
		ProductID:          productID,
		Name:               fields["name"],
		Price:              price,
		DiscountPercentage: discountPct,
		StockQuantity:      uint(stock),
		IsAvailable:        isAvailable,
	}, nil
}

var _ IProductRedisRepository = (*ProductRedisRepo)(nil)
