package item

import (
	apperrors "github.com/luocheng/stockpile/pkg/errors"
)

// 商品领域错误定义
var (
	// ErrInvalidPrice 无效的价格
	ErrInvalidPrice = apperrors.BadRequest("Price must not be negative")
)

// ErrItemNotFound 商品不存在（带id的动态文案）
func ErrItemNotFound(id uint) *apperrors.AppError {
	return apperrors.NotFoundf("Item with id %d not found", id)
}
