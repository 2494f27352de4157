package dto

import (
	"github.com/luocheng/stockpile/internal/domain/order"
)

// CreateOrderRequest HTTP下单请求
// price不可指定:下单价格永远是商品当前价格的快照
type CreateOrderRequest struct {
	ItemID uint `json:"itemId" binding:"required" example:"1"`
	Qty    int  `json:"qty" binding:"required,min=1" example:"3"`
}

// UpdateOrderRequest HTTP改单请求
// body携带orderNo;itemId/price可省略:
// - itemId缺省 = 不换商品
// - price缺省 = 换商品时取新商品价格快照,不换商品时保留原价
type UpdateOrderRequest struct {
	OrderNo string `json:"orderNo" binding:"required,len=14" example:"20250600000042"`
	Qty     int    `json:"qty" binding:"required,min=1" example:"5"`
	ItemID  *uint  `json:"itemId" binding:"omitempty" example:"2"`
	Price   *int64 `json:"price" binding:"omitempty,min=0" example:"6100"`
}

// OrderResponse HTTP订单响应
type OrderResponse struct {
	OrderNo   string `json:"orderNo" example:"20250600000042"`
	ItemID    uint   `json:"itemId" example:"1"`
	ItemName  string `json:"itemName" example:"Widget"`
	Qty       int    `json:"qty" example:"3"`
	Price     int64  `json:"price" example:"5900"` // 下单时的价格快照(分)
	CreatedAt string `json:"createdAt" example:"2025-06-01 10:30:00"`
	UpdatedAt string `json:"updatedAt" example:"2025-06-01 10:30:00"`
}

// NewOrderResponse 领域实体 → HTTP响应
func NewOrderResponse(o *order.Order) *OrderResponse {
	return &OrderResponse{
		OrderNo:   o.OrderNo,
		ItemID:    o.ItemID,
		ItemName:  o.ItemName,
		Qty:       o.Qty,
		Price:     o.Price,
		CreatedAt: o.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt: o.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

// NewOrderResponses 批量转换
func NewOrderResponses(orders []*order.Order) []*OrderResponse {
	out := make([]*OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = NewOrderResponse(o)
	}
	return out
}
