package order

import (
	apperrors "github.com/luocheng/stockpile/pkg/errors"
)

// 订单领域错误定义
var (
	// ErrItemNotFound 下单时商品不存在
	ErrItemNotFound = apperrors.NotFound("Failed to create order. Item not found")

	// ErrItemInventoryNotFound 商品没有任何台账流水,不可被下单
	ErrItemInventoryNotFound = apperrors.NotFound("Failed to create order. Item inventory not found")

	// ErrInvalidQty 下单数量不合法
	ErrInvalidQty = apperrors.BadRequest("Order quantity must be positive")
)

// ErrOrderNotFound 订单不存在（带orderNo的动态文案）
func ErrOrderNotFound(orderNo string) *apperrors.AppError {
	return apperrors.NotFoundf("Order with orderNo %s not found", orderNo)
}
