package order

import (
	"context"
	"time"

	"github.com/luocheng/stockpile/internal/domain/inventory"
	"github.com/luocheng/stockpile/internal/domain/item"
	"github.com/luocheng/stockpile/internal/domain/order"
)

// 测试用内存Mock:手写实现仓储接口,不依赖数据库
// 事务用直通实现替代,用例的编排逻辑不感知差异

// passthroughTx 直通事务:直接执行fn,不做任何事务语义
type passthroughTx struct{}

func (passthroughTx) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// mockItemRepo 商品仓储Mock
type mockItemRepo struct {
	items map[uint]*item.Item
}

func newMockItemRepo(items ...*item.Item) *mockItemRepo {
	m := &mockItemRepo{items: make(map[uint]*item.Item)}
	for _, it := range items {
		m.items[it.ID] = it
	}
	return m
}

func (m *mockItemRepo) Create(ctx context.Context, it *item.Item) error {
	m.items[it.ID] = it
	return nil
}

func (m *mockItemRepo) FindByID(ctx context.Context, id uint) (*item.Item, error) {
	it, ok := m.items[id]
	if !ok {
		return nil, item.ErrItemNotFound(id)
	}
	return it, nil
}

func (m *mockItemRepo) Exists(ctx context.Context, id uint) (bool, error) {
	_, ok := m.items[id]
	return ok, nil
}

func (m *mockItemRepo) Update(ctx context.Context, it *item.Item) error {
	if _, ok := m.items[it.ID]; !ok {
		return item.ErrItemNotFound(it.ID)
	}
	m.items[it.ID] = it
	return nil
}

func (m *mockItemRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := m.items[id]; !ok {
		return item.ErrItemNotFound(id)
	}
	delete(m.items, id)
	return nil
}

func (m *mockItemRepo) List(ctx context.Context, params item.ListParams) ([]*item.Item, int64, error) {
	out := make([]*item.Item, 0, len(m.items))
	for _, it := range m.items {
		out = append(out, it)
	}
	return out, int64(len(out)), nil
}

func (m *mockItemRepo) LockByID(ctx context.Context, id uint) (*item.Item, error) {
	return m.FindByID(ctx, id)
}

// mockInventoryRepo 台账仓储Mock,记录全部写入的流水
type mockInventoryRepo struct {
	entries []*inventory.Entry
	nextID  uint
}

func newMockInventoryRepo() *mockInventoryRepo {
	return &mockInventoryRepo{}
}

func (m *mockInventoryRepo) Create(ctx context.Context, entry *inventory.Entry) error {
	m.nextID++
	entry.ID = m.nextID
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockInventoryRepo) CreateBatch(ctx context.Context, entries []*inventory.Entry) error {
	for _, e := range entries {
		if err := m.Create(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (m *mockInventoryRepo) FindByID(ctx context.Context, id uint) (*inventory.Entry, error) {
	for _, e := range m.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, inventory.ErrEntryNotFound(id)
}

func (m *mockInventoryRepo) Update(ctx context.Context, entry *inventory.Entry) error {
	for i, e := range m.entries {
		if e.ID == entry.ID {
			m.entries[i] = entry
			return nil
		}
	}
	return inventory.ErrEntryNotFound(entry.ID)
}

func (m *mockInventoryRepo) Delete(ctx context.Context, id uint) error {
	for i, e := range m.entries {
		if e.ID == id {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return nil
		}
	}
	return inventory.ErrEntryNotFound(id)
}

func (m *mockInventoryRepo) List(ctx context.Context, page, size int) ([]*inventory.Entry, int64, error) {
	return m.entries, int64(len(m.entries)), nil
}

func (m *mockInventoryRepo) ListByItem(ctx context.Context, itemID uint, page, size int) ([]*inventory.Entry, int64, error) {
	var out []*inventory.Entry
	for _, e := range m.entries {
		if e.ItemID == itemID {
			out = append(out, e)
		}
	}
	return out, int64(len(out)), nil
}

func (m *mockInventoryRepo) SummaryByItem(ctx context.Context, itemID uint) (*inventory.Summary, error) {
	s := &inventory.Summary{ItemID: itemID}
	found := false
	for _, e := range m.entries {
		if e.ItemID != itemID {
			continue
		}
		found = true
		if e.Type == inventory.EntryTypeTopUp {
			s.TotalTopUp += e.Quantity
			s.TopUpCount++
		} else {
			s.TotalWithdraw += e.Quantity
			s.WithdrawCount++
		}
	}
	if !found {
		return nil, inventory.ErrNoInventoryFound
	}
	s.RemainingStock = s.TotalTopUp - s.TotalWithdraw
	return s, nil
}

// mockOrderRepo 订单仓储Mock,带内存序列计数器
type mockOrderRepo struct {
	orders map[string]*order.Order
	seq    int64
}

func newMockOrderRepo(orders ...*order.Order) *mockOrderRepo {
	m := &mockOrderRepo{orders: make(map[string]*order.Order)}
	for _, o := range orders {
		m.orders[o.OrderNo] = o
	}
	return m
}

func (m *mockOrderRepo) Create(ctx context.Context, o *order.Order) error {
	o.CreatedAt = time.Now()
	o.UpdatedAt = o.CreatedAt
	m.orders[o.OrderNo] = o
	return nil
}

func (m *mockOrderRepo) FindByOrderNo(ctx context.Context, orderNo string) (*order.Order, error) {
	o, ok := m.orders[orderNo]
	if !ok {
		return nil, order.ErrOrderNotFound(orderNo)
	}
	copied := *o
	return &copied, nil
}

func (m *mockOrderRepo) Update(ctx context.Context, o *order.Order) error {
	if _, ok := m.orders[o.OrderNo]; !ok {
		return order.ErrOrderNotFound(o.OrderNo)
	}
	m.orders[o.OrderNo] = o
	return nil
}

func (m *mockOrderRepo) Delete(ctx context.Context, orderNo string) error {
	if _, ok := m.orders[orderNo]; !ok {
		return order.ErrOrderNotFound(orderNo)
	}
	delete(m.orders, orderNo)
	return nil
}

func (m *mockOrderRepo) List(ctx context.Context, page, size int) ([]*order.Order, int64, error) {
	out := make([]*order.Order, 0, len(m.orders))
	for _, o := range m.orders {
		out = append(out, o)
	}
	return out, int64(len(out)), nil
}

func (m *mockOrderRepo) NextOrderSeq(ctx context.Context) (int64, error) {
	m.seq++
	return m.seq, nil
}
