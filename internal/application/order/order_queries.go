package order

import (
	"context"

	"github.com/luocheng/stockpile/internal/domain/order"
)

// OrderQueries 订单读用例（查单、分页列表）
// 读路径没有事务编排,合并在一个用例里
type OrderQueries struct {
	orderRepo order.Repository
}

// NewOrderQueries 创建订单读用例
func NewOrderQueries(orderRepo order.Repository) *OrderQueries {
	return &OrderQueries{orderRepo: orderRepo}
}

// GetByOrderNo 按订单号查询订单
func (q *OrderQueries) GetByOrderNo(ctx context.Context, orderNo string) (*order.Order, error) {
	return q.orderRepo.FindByOrderNo(ctx, orderNo)
}

// List 分页查询订单列表
func (q *OrderQueries) List(ctx context.Context, page, size int) ([]*order.Order, int64, error) {
	return q.orderRepo.List(ctx, page, size)
}
