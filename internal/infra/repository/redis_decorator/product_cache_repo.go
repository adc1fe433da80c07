package redis_decorator

import (
	"context"
	"errors"
	"time"

	"github.com/RoyceAzure/lab/ecommerce/internal/domain/model"
	"github.com/RoyceAzure/lab/ecommerce/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/ecommerce/internal/infra/repository/redis_repo"
	"github.com/rs/zerolog/log"
)

/*
redis 專注商品快照，所以只有跟商品讀寫有關的操作才需要連動redis
DB仍是唯一真相來源，快取失效時一律回source查
*/
type CacheAsideProductRepo struct {
	db.IProductRepository
	redis redis_repo.IProductRedisRepository
}

func NewCacheAsideProductRepo(dbRepo db.IProductRepository, redis redis_repo.IProductRedisRepository) db.IProductRepository {
	return &CacheAsideProductRepo{IProductRepository: dbRepo, redis: redis}
}

func (p *CacheAsideProductRepo) GetProductByID(ctx context.Context, productID uint) (*model.Product, error) {
	product, err := p.redis.GetProduct(ctx, productID)
	if err == nil {
		return product, nil
	}
	if !errors.Is(err, redis_repo.ErrProductCacheMiss) {
		log.Warn().Err(err).Uint("product_id", productID).Msg("product cache read failed, falling back to db")
	}

	product, err = p.IProductRepository.GetProductByID(ctx, productID)
	if err != nil || product == nil {
		return product, err
	}

	if err := p.redis.SetProduct(ctx, product); err != nil {
		log.Warn().Err(err).Uint("product_id", productID).Msg("product cache fill failed")
	}
	return product, nil
}

func (p *CacheAsideProductRepo) CreateProduct(ctx context.Context, product *model.Product) error {
	err := p.IProductRepository.CreateProduct(ctx, product)
	if err != nil {
		return err
	}
	return p.redis.SetProduct(ctx, product)
}

func (p *CacheAsideProductRepo) UpdateProduct(ctx context.Context, product *model.Product) error {
	err := p.IProductRepository.UpdateProduct(ctx, product)
	if err != nil {
		return err
	}

	err = p.redis.SetProduct(ctx, product)
	if err != nil {
		go func() {
			time.Sleep(500 * time.Millisecond)
			p.redis.SetProduct(context.Background(), product)
		}()
		return err
	}
	return nil
}

func (p *CacheAsideProductRepo) UpdateStock(ctx context.Context, productID uint, stock uint) error {
	err := p.IProductRepository.UpdateStock(ctx, productID, stock)
	if err != nil {
		return err
	}

	err = p.redis.SetStock(ctx, productID, stock)
	if errors.Is(err, redis_repo.ErrProductCacheMiss) {
		// 快照還沒進快取，下次讀取時會回填
		return nil
	}
	if err != nil {
		go func() {
			time.Sleep(500 * time.Millisecond)
			p.redis.SetStock(context.Background(), productID, stock)
		}()
		return err
	}
	return nil
}

func (p *CacheAsideProductRepo) SetAvailability(ctx context.Context, productID uint, available bool) error {
	err := p.IProductRepository.SetAvailability(ctx, productID, available)
	if err != nil {
		return err
	}
	// 部分欄位異動，直接作廢快照
	return p.redis.DeleteProduct(ctx, productID)
}

func (p *CacheAsideProductRepo) DeleteProduct(ctx context.Context, productID uint) error {
	err := p.IProductRepository.DeleteProduct(ctx, productID)
	if err != nil {
		return err
	}
	return p.redis.DeleteProduct(ctx, productID)
}
