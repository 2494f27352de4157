package item

import (
	"time"

	"github.com/luocheng/stockpile/internal/domain/inventory"
)

// Item 商品实体(聚合根)
// 设计说明:
// 1. 价格使用int64存储"分"为单位(避免浮点数精度问题)
// 2. 库存不在Item上存储,永远从台账流水推导(见inventory.RemainingStock)
// 3. Entries是查询时加载的该商品全部流水,仅用于推导剩余库存
type Item struct {
	ID        uint
	Name      string // 商品名
	Price     int64  // 价格(单位:分,1元=100分)
	Entries   []inventory.Entry
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewItem 创建新商品(工厂方法)
func NewItem(name string, price int64) *Item {
	return &Item{
		Name:  name,
		Price: price,
	}
}

// RemainingStock 派生剩余库存
// 对加载的流水做带符号求和,没有任何流水时为0
func (i *Item) RemainingStock() int {
	return inventory.RemainingStock(i.Entries)
}

// HasInventory 是否存在任何台账流水
// 没有入库历史的商品不可被下单（与"剩余库存为0"是两种不同的错误）
func (i *Item) HasInventory() bool {
	return len(i.Entries) > 0
}

// HasSufficientStock 剩余库存能否覆盖所需数量
func (i *Item) HasSufficientStock(qty int) bool {
	return inventory.HasSufficientStock(i.Entries, qty)
}

// UpdateInfo 更新商品基本信息(领域行为)
func (i *Item) UpdateInfo(name string, price int64) error {
	if price < 0 {
		return ErrInvalidPrice
	}
	i.Name = name
	i.Price = price
	return nil
}
