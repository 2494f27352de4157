package order

import (
	"context"

	"github.com/luocheng/stockpile/internal/domain/order"
)

// DeleteOrderUseCase 删单用例
type DeleteOrderUseCase struct {
	orderRepo order.Repository
}

// NewDeleteOrderUseCase 创建删单用例
func NewDeleteOrderUseCase(orderRepo order.Repository) *DeleteOrderUseCase {
	return &DeleteOrderUseCase{orderRepo: orderRepo}
}

// Execute 按订单号硬删除订单
// 注意:删除订单不冲正它的出库流水——库存不会自动回补。
// 这是确认过的业务口径(预留视为已消耗),不要在这里"顺手修复"
func (uc *DeleteOrderUseCase) Execute(ctx context.Context, orderNo string) error {
	return uc.orderRepo.Delete(ctx, orderNo)
}
