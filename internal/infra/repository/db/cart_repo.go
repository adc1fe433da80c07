package db

import (
	"context"
	"errors"
	"time"

	"github.com/RoyceAzure/lab/ecommerce/internal/domain/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrActiveCartConflict 並發lazy create撞到partial unique index
	ErrActiveCartConflict = errors.New("active cart already exists for customer")
)

// ICartTx 單一cart操作的transaction邊界
// 所有方法都在同一個db transaction內執行，commit/rollback由Transaction決定
type ICartTx interface {
	// LockActiveCart 以SELECT ... FOR UPDATE鎖定customer的active cart
	// 同一customer的cart操作會在這裡序列化，不同customer互不阻塞
	// cart不存在回傳nil, nil
	LockActiveCart(ctx context.Context, customerID uint) (*model.Cart, error)
	CreateCart(ctx context.Context, cart *model.Cart) error
	UpsertItems(ctx context.Context, items []model.CartItem) error
	DeleteItems(ctx context.Context, cartID uint, cartItemIDs []uint) error
	TouchCart(ctx context.Context, cartID uint) error
}

type ICartRepository interface {
	// GetActiveCartWithItems 讀取active cart含line items與商品資訊
	// 純讀取，不加鎖，cart不存在回傳nil, nil
	GetActiveCartWithItems(ctx context.Context, customerID uint) (*model.Cart, error)
	Transaction(ctx context.Context, fn func(tx ICartTx) error) error
}

type CartRepo struct {
	db *DbDao
}

func NewCartRepo(db *DbDao) *CartRepo {
	return &CartRepo{db: db}
}

func (r *CartRepo) GetActiveCartWithItems(ctx context.Context, customerID uint) (*model.Cart, error) {
	var cart model.Cart
	err := r.db.WithContext(ctx).
		Preload("Items", orderItemsByID).
		Preload("Items.Product").
		Where("customer_id = ? AND is_checked_out = ?", customerID, false).
		First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *CartRepo) Transaction(ctx context.Context, fn func(tx ICartTx) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&cartTx{tx: tx})
	})
}

type cartTx struct {
	tx *gorm.DB
}

func (t *cartTx) LockActiveCart(ctx context.Context, customerID uint) (*model.Cart, error) {
	var cart model.Cart
	err := t.tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Items", orderItemsByID).
		Where("customer_id = ? AND is_checked_out = ?", customerID, false).
		First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (t *cartTx) CreateCart(ctx context.Context, cart *model.Cart) error {
	err := t.tx.WithContext(ctx).Create(cart).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrActiveCartConflict
	}
	return err
}

func (t *cartTx) UpsertItems(ctx context.Context, items []model.CartItem) error {
	if len(items) == 0 {
		return nil
	}
	return t.tx.WithContext(ctx).Omit(clause.Associations).Save(&items).Error
}

// DeleteItems 硬刪除，line item生命週期綁定cart，不做軟刪除
func (t *cartTx) DeleteItems(ctx context.Context, cartID uint, cartItemIDs []uint) error {
	if len(cartItemIDs) == 0 {
		return nil
	}
	return t.tx.WithContext(ctx).
		Where("cart_id = ? AND cart_item_id IN ?", cartID, cartItemIDs).
		Delete(&model.CartItem{}).Error
}

func (t *cartTx) TouchCart(ctx context.Context, cartID uint) error {
	return t.tx.WithContext(ctx).Model(&model.Cart{}).
		Where("cart_id = ?", cartID).
		Update("updated_at", time.Now().UTC()).Error
}

// preload時固定以主鍵排序，回應的item順序才會穩定
func orderItemsByID(db *gorm.DB) *gorm.DB {
	return db.Order("cart_items.cart_item_id")
}

var _ ICartRepository = (*CartRepo)(nil)
