package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/RoyceAzure/lab/ecommerce/internal/domain/model"
	"github.com/RoyceAzure/lab/ecommerce/internal/domain/model/event"
	"github.com/RoyceAzure/lab/ecommerce/internal/infra/repository/db"
)

// in-memory cart store，模擬transaction rollback跟lazy create衝突
type fakeCartRepo struct {
	mu         sync.Mutex
	nextCartID uint
	nextItemID uint
	carts      map[uint]*model.Cart // key: customerID，只存active cart
	raceOnLock bool                 // 下一次lock假裝沒看到cart，模擬併發lazy create
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: make(map[uint]*model.Cart)}
}

func cloneCart(c *model.Cart) *model.Cart {
	if c == nil {
		return nil
	}
	cp := *c
	cp.Items = make([]model.CartItem, len(c.Items))
	copy(cp.Items, c.Items)
	return &cp
}

func (f *fakeCartRepo) GetActiveCartWithItems(ctx context.Context, customerID uint) (*model.Cart, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return cloneCart(f.carts[customerID]), nil
}

func (f *fakeCartRepo) Transaction(ctx context.Context, fn func(tx db.ICartTx) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	backup := make(map[uint]*model.Cart, len(f.carts))
	for k, v := range f.carts {
		backup[k] = cloneCart(v)
	}
	if err := fn(&fakeCartTx{repo: f}); err != nil {
		f.carts = backup
		return err
	}
	return nil
}

var _ db.ICartRepository = (*fakeCartRepo)(nil)

type fakeCartTx struct {
	repo *fakeCartRepo
}

func (t *fakeCartTx) LockActiveCart(ctx context.Context, customerID uint) (*model.Cart, error) {
	if t.repo.raceOnLock {
		t.repo.raceOnLock = false
		return nil, nil
	}
	return cloneCart(t.repo.carts[customerID]), nil
}

func (t *fakeCartTx) CreateCart(ctx context.Context, cart *model.Cart) error {
	if _, ok := t.repo.carts[cart.CustomerID]; ok {
		return db.ErrActiveCartConflict
	}
	t.repo.nextCartID++
	cart.CartID = t.repo.nextCartID
	for i := range cart.Items {
		t.repo.nextItemID++
		cart.Items[i].CartItemID = t.repo.nextItemID
		cart.Items[i].CartID = cart.CartID
	}
	t.repo.carts[cart.CustomerID] = cloneCart(cart)
	return nil
}

func (t *fakeCartTx) findByCartID(cartID uint) *model.Cart {
	for _, c := range t.repo.carts {
		if c.CartID == cartID {
			return c
		}
	}
	return nil
}

func (t *fakeCartTx) UpsertItems(ctx context.Context, items []model.CartItem) error {
	for _, item := range items {
		cart := t.findByCartID(item.CartID)
		if cart == nil {
			return errors.New("cart not found")
		}
		if item.CartItemID == 0 {
			t.repo.nextItemID++
			item.CartItemID = t.repo.nextItemID
			cart.Items = append(cart.Items, item)
			continue
		}
		replaced := false
		for i := range cart.Items {
			if cart.Items[i].CartItemID == item.CartItemID {
				cart.Items[i] = item
				replaced = true
				break
			}
		}
		if !replaced {
			cart.Items = append(cart.Items, item)
		}
	}
	return nil
}

func (t *fakeCartTx) DeleteItems(ctx context.Context, cartID uint, cartItemIDs []uint) error {
	cart := t.findByCartID(cartID)
	if cart == nil {
		return errors.New("cart not found")
	}
	toDelete := make(map[uint]bool, len(cartItemIDs))
	for _, id := range cartItemIDs {
		toDelete[id] = true
	}
	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if !toDelete[item.CartItemID] {
			kept = append(kept, item)
		}
	}
	cart.Items = kept
	return nil
}

func (t *fakeCartTx) TouchCart(ctx context.Context, cartID uint) error {
	cart := t.findByCartID(cartID)
	if cart == nil {
		return errors.New("cart not found")
	}
	cart.UpdatedAt = time.Now().UTC()
	return nil
}

var _ db.ICartTx = (*fakeCartTx)(nil)

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[uint]*model.Product
}

func newFakeProductRepo(products ...*model.Product) *fakeProductRepo {
	f := &fakeProductRepo{products: make(map[uint]*model.Product)}
	for _, p := range products {
		f.products[p.ProductID] = p
	}
	return f
}

func (f *fakeProductRepo) CreateProduct(ctx context.Context, product *model.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if product.ProductID == 0 {
		product.ProductID = uint(len(f.products) + 1)
	}
	f.products[product.ProductID] = product
	return nil
}

func (f *fakeProductRepo) GetProductByID(ctx context.Context, productID uint) (*model.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.products[productID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) GetProductByName(ctx context.Context, name string) (*model.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.products {
		if p.Name == name {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) GetAllProducts(ctx context.Context) ([]model.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	res := make([]model.Product, 0, len(f.products))
	for _, p := range f.products {
		res = append(res, *p)
	}
	return res, nil
}

func (f *fakeProductRepo) GetProductsByCategory(ctx context.Context, categoryID uint) ([]model.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	res := make([]model.Product, 0)
	for _, p := range f.products {
		if p.CategoryID == categoryID {
			res = append(res, *p)
		}
	}
	return res, nil
}

func (f *fakeProductRepo) UpdateProduct(ctx context.Context, product *model.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.products[product.ProductID]; !ok {
		return errors.New("product not found")
	}
	f.products[product.ProductID] = product
	return nil
}

func (f *fakeProductRepo) UpdateStock(ctx context.Context, productID uint, stock uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.products[productID]
	if !ok {
		return errors.New("product not found")
	}
	p.StockQuantity = stock
	return nil
}

func (f *fakeProductRepo) SetAvailability(ctx context.Context, productID uint, available bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.products[productID]
	if !ok {
		return errors.New("product not found")
	}
	p.IsAvailable = available
	return nil
}

func (f *fakeProductRepo) DeleteProduct(ctx context.Context, productID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.products, productID)
	return nil
}

var _ db.IProductRepository = (*fakeProductRepo)(nil)

type fakeCartEventProducer struct {
	mu     sync.Mutex
	events []event.Event
	err    error
}

func (f *fakeCartEventProducer) ProduceCartEvent(ctx context.Context, customerID uint, evt event.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, evt)
	return nil
}

func (f *fakeCartEventProducer) Close() error {
	return nil
}

func (f *fakeCartEventProducer) producedTypes() []event.EventType {
	f.mu.Lock()
	defer f.mu.Unlock()
	types := make([]event.EventType, 0, len(f.events))
	for _, e := range f.events {
		types = append(types, e.Type())
	}
	return types
}

type fakeCategoryRepo struct {
	mu         sync.Mutex
	categories map[uint]*model.Category
}

func newFakeCategoryRepo(categories ...*model.Category) *fakeCategoryRepo {
	f := &fakeCategoryRepo{categories: make(map[uint]*model.Category)}
	for _, c := range categories {
		f.categories[c.CategoryID] = c
	}
	return f
}

func (f *fakeCategoryRepo) CreateCategory(ctx context.Context, category *model.Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if category.CategoryID == 0 {
		category.CategoryID = uint(len(f.categories) + 1)
	}
	f.categories[category.CategoryID] = category
	return nil
}

func (f *fakeCategoryRepo) GetCategoryByID(ctx context.Context, categoryID uint) (*model.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.categories[categoryID]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCategoryRepo) GetCategoryByName(ctx context.Context, name string) (*model.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.categories {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) GetAllCategories(ctx context.Context) ([]model.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	res := make([]model.Category, 0, len(f.categories))
	for _, c := range f.categories {
		res = append(res, *c)
	}
	return res, nil
}

func (f *fakeCategoryRepo) UpdateCategory(ctx context.Context, category *model.Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.categories[category.CategoryID]; !ok {
		return errors.New("category not found")
	}
	f.categories[category.CategoryID] = category
	return nil
}

func (f *fakeCategoryRepo) DeleteCategory(ctx context.Context, categoryID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.categories, categoryID)
	return nil
}

var _ db.ICategoryRepository = (*fakeCategoryRepo)(nil)
