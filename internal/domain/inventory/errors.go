package inventory

import (
	apperrors "github.com/luocheng/stockpile/pkg/errors"
)

// 台账领域错误定义
var (
	// ErrNoInventoryFound 商品没有任何台账流水（汇总查询）
	ErrNoInventoryFound = apperrors.NotFound("No Inventory Found")

	// ErrInvalidQuantity 数量不合法
	ErrInvalidQuantity = apperrors.BadRequest("Quantity must not be negative")

	// ErrInvalidEntryType 流水类型不合法
	ErrInvalidEntryType = apperrors.BadRequest("Inventory type must be T (Top-Up) or W (Withdrawal)")
)

// ErrEntryNotFound 流水不存在（带id的动态文案）
func ErrEntryNotFound(id uint) *apperrors.AppError {
	return apperrors.NotFoundf("Inventory with id %d not found", id)
}
