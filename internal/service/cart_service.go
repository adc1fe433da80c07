package service

import (
	"context"
	"errors"
	"time"

	"github.com/RoyceAzure/lab/ecommerce/internal/domain/model"
	"github.com/RoyceAzure/lab/ecommerce/internal/domain/model/event"
	"github.com/RoyceAzure/lab/ecommerce/internal/infra/producer"
	"github.com/RoyceAzure/lab/ecommerce/internal/infra/repository/db"
	"github.com/rs/zerolog/log"
)

type ICartService interface {
	// GetActiveCart 純讀取，cart不存在時回傳空的snapshot，不會建row
	GetActiveCart(ctx context.Context, customerID uint) (*model.Cart, error)
	// AddItem 商品已在cart內時merge數量，單價/折扣沿用第一次加入時的快照
	AddItem(ctx context.Context, customerID, productID uint, quantity int) (*model.Cart, error)
	UpdateItemQuantity(ctx context.Context, customerID, cartItemID uint, quantity int) (*model.Cart, error)
	RemoveItem(ctx context.Context, customerID, cartItemID uint) (*model.Cart, error)
	// ClearCart 清空所有line items，cart row保留，對已清空的cart重複呼叫為no-op
	ClearCart(ctx context.Context, customerID uint) (*model.Cart, error)
}

// CartService 負責cart的完整生命週期
// 所有mutation都走 lock active cart -> 驗證 -> 寫入 -> commit 的單一transaction
// 庫存檢查是advisory，只驗證不預扣
type CartService struct {
	cartRepo      db.ICartRepository
	productRepo   db.IProductRepository
	eventProducer producer.ICartEventProducer
}

func NewCartService(cartRepo db.ICartRepository, productRepo db.IProductRepository, eventProducer producer.ICartEventProducer) *CartService {
	return &CartService{
		cartRepo:      cartRepo,
		productRepo:   productRepo,
		eventProducer: eventProducer,
	}
}

func (s *CartService) GetActiveCart(ctx context.Context, customerID uint) (*model.Cart, error) {
	cart, err := s.cartRepo.GetActiveCartWithItems(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return emptyCartSnapshot(customerID), nil
	}
	return cart, nil
}

func (s *CartService) AddItem(ctx context.Context, customerID, productID uint, quantity int) (*model.Cart, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if !product.IsAvailable {
		return nil, ErrProductUnavailable
	}

	qty := uint(quantity)
	created := false
	err = s.cartRepo.Transaction(ctx, func(tx db.ICartTx) error {
		cart, err := tx.LockActiveCart(ctx, customerID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		if cart == nil {
			// lazy create，第一次加入商品時才建cart
			if qty > product.StockQuantity {
				return &InsufficientStockError{ProductName: product.Name, Available: product.StockQuantity, Requested: qty}
			}
			created = true
			newCart := &model.Cart{
				CustomerID: customerID,
				Items:      []model.CartItem{newItemFromProduct(product, qty, now)},
				BaseModel:  model.BaseModel{CreatedAt: now, UpdatedAt: now},
			}
			err := tx.CreateCart(ctx, newCart)
			if errors.Is(err, db.ErrActiveCartConflict) {
				return ErrCartConflict
			}
			return err
		}

		if existing := cart.FindItemByProduct(productID); existing != nil {
			merged := existing.Quantity + qty
			if merged > product.StockQuantity {
				return &InsufficientStockError{ProductName: product.Name, Available: product.StockQuantity, Requested: merged}
			}
			existing.Quantity = merged
			existing.TotalPrice = LineTotal(existing.UnitPrice, existing.Discount, merged)
			existing.UpdatedAt = now
			if err := tx.UpsertItems(ctx, []model.CartItem{*existing}); err != nil {
				return err
			}
		} else {
			if qty > product.StockQuantity {
				return &InsufficientStockError{ProductName: product.Name, Available: product.StockQuantity, Requested: qty}
			}
			item := newItemFromProduct(product, qty, now)
			item.CartID = cart.CartID
			if err := tx.UpsertItems(ctx, []model.CartItem{item}); err != nil {
				return err
			}
		}
		return tx.TouchCart(ctx, cart.CartID)
	})
	if err != nil {
		return nil, err
	}

	reloaded, err := s.GetActiveCart(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if created {
		s.produceEvent(ctx, customerID, event.NewCartCreatedEvent(customerID, reloaded.CartID, reloaded.Items))
	} else {
		s.produceEvent(ctx, customerID, event.NewCartUpdatedEvent(customerID, reloaded.CartID, reloaded.Items))
	}
	return reloaded, nil
}

func (s *CartService) UpdateItemQuantity(ctx context.Context, customerID, cartItemID uint, quantity int) (*model.Cart, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	qty := uint(quantity)
	err := s.cartRepo.Transaction(ctx, func(tx db.ICartTx) error {
		cart, err := tx.LockActiveCart(ctx, customerID)
		if err != nil {
			return err
		}
		if cart == nil {
			return ErrCartNotFound
		}

		item := cart.FindItemByID(cartItemID)
		if item == nil {
			return ErrCartItemNotFound
		}

		product, err := s.productRepo.GetProductByID(ctx, item.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return ErrProductNotFound
		}
		if qty > product.StockQuantity {
			return &InsufficientStockError{ProductName: product.Name, Available: product.StockQuantity, Requested: qty}
		}

		// 用既有快照重算，不回頭拿商品現價
		item.Quantity = qty
		item.TotalPrice = LineTotal(item.UnitPrice, item.Discount, qty)
		item.UpdatedAt = time.Now().UTC()
		if err := tx.UpsertItems(ctx, []model.CartItem{*item}); err != nil {
			return err
		}
		return tx.TouchCart(ctx, cart.CartID)
	})
	if err != nil {
		return nil, err
	}

	reloaded, err := s.GetActiveCart(ctx, customerID)
	if err != nil {
		return nil, err
	}
	s.produceEvent(ctx, customerID, event.NewCartUpdatedEvent(customerID, reloaded.CartID, reloaded.Items))
	return reloaded, nil
}

func (s *CartService) RemoveItem(ctx context.Context, customerID, cartItemID uint) (*model.Cart, error) {
	err := s.cartRepo.Transaction(ctx, func(tx db.ICartTx) error {
		cart, err := tx.LockActiveCart(ctx, customerID)
		if err != nil {
			return err
		}
		if cart == nil {
			return ErrCartNotFound
		}

		item := cart.FindItemByID(cartItemID)
		if item == nil {
			return ErrCartItemNotFound
		}

		// 移除最後一個item時cart row保留，變成空的active cart
		if err := tx.DeleteItems(ctx, cart.CartID, []uint{cartItemID}); err != nil {
			return err
		}
		return tx.TouchCart(ctx, cart.CartID)
	})
	if err != nil {
		return nil, err
	}

	reloaded, err := s.GetActiveCart(ctx, customerID)
	if err != nil {
		return nil, err
	}
	s.produceEvent(ctx, customerID, event.NewCartUpdatedEvent(customerID, reloaded.CartID, reloaded.Items))
	return reloaded, nil
}

func (s *CartService) ClearCart(ctx context.Context, customerID uint) (*model.Cart, error) {
	err := s.cartRepo.Transaction(ctx, func(tx db.ICartTx) error {
		cart, err := tx.LockActiveCart(ctx, customerID)
		if err != nil {
			return err
		}
		if cart == nil {
			return ErrCartNotFound
		}
		if len(cart.Items) == 0 {
			return nil
		}

		if err := tx.DeleteItems(ctx, cart.CartID, cart.ItemIDs()); err != nil {
			return err
		}
		return tx.TouchCart(ctx, cart.CartID)
	})
	if err != nil {
		return nil, err
	}

	reloaded, err := s.GetActiveCart(ctx, customerID)
	if err != nil {
		return nil, err
	}
	s.produceEvent(ctx, customerID, event.NewCartClearedEvent(customerID, reloaded.CartID))
	return reloaded, nil
}

// produceEvent commit後的best-effort通知，失敗只記log不影響請求結果
func (s *CartService) produceEvent(ctx context.Context, customerID uint, evt event.Event) {
	if s.eventProducer == nil {
		return
	}
	if err := s.eventProducer.ProduceCartEvent(ctx, customerID, evt); err != nil {
		log.Warn().Err(err).
			Uint("customer_id", customerID).
			Str("event_type", string(evt.Type())).
			Msg("produce cart event failed")
	}
}

func newItemFromProduct(product *model.Product, quantity uint, now time.Time) model.CartItem {
	discount := PerUnitDiscount(product.Price, product.DiscountPercentage)
	return model.CartItem{
		ProductID:  product.ProductID,
		Quantity:   quantity,
		UnitPrice:  product.Price,
		Discount:   discount,
		TotalPrice: LineTotal(product.Price, discount, quantity),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func emptyCartSnapshot(customerID uint) *model.Cart {
	now := time.Now().UTC()
	return &model.Cart{
		CustomerID: customerID,
		Items:      []model.CartItem{},
		BaseModel:  model.BaseModel{CreatedAt: now, UpdatedAt: now},
	}
}

var _ ICartService = (*CartService)(nil)
