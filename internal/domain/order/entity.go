package order

import (
	"time"
)

// Order 订单实体(聚合根)
// 设计说明:
// 1. OrderNo是业务主键(系统生成,创建后不可变),没有数据库自增ID
// 2. Price是下单时的商品价格快照(分),商品后续改价不回溯历史订单,
//    改单时可显式覆盖
// 3. 订单只保存ItemID,不跨聚合引用商品对象;ItemName是查询时联表填充的展示字段
// 4. 订单生命周期只有 创建→(多次)更新→删除,没有独立的取消状态
type Order struct {
	OrderNo   string // 订单号(业务主键)
	ItemID    uint
	ItemName  string // 冗余的商品名（查询时联表填充,仅用于展示）
	Qty       int    // 下单数量(正整数)
	Price     int64  // 下单时价格快照(分)
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewOrder 创建新订单(工厂方法)
// 订单号由外部传入(由年月前缀+持久序列生成,见order_no.go)
func NewOrder(orderNo string, itemID uint, qty int, price int64) *Order {
	return &Order{
		OrderNo: orderNo,
		ItemID:  itemID,
		Qty:     qty,
		Price:   price,
	}
}
