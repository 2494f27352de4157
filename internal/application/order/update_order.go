package order

import (
	"context"

	"github.com/luocheng/stockpile/internal/domain/inventory"
	"github.com/luocheng/stockpile/internal/domain/item"
	"github.com/luocheng/stockpile/internal/domain/order"
	apperrors "github.com/luocheng/stockpile/pkg/errors"
	"github.com/luocheng/stockpile/pkg/metrics"
)

// UpdateOrderUseCase 改单用例
// 教学要点:订单更新不修改历史流水,而是用补偿流水对账:
// 先写一条旧商品的入库流水把原预留"还回去",再写一条新数量的出库流水,
// 台账因此保持只增,任何时刻的库存都能从流水完整重放出来
type UpdateOrderUseCase struct {
	orderRepo order.Repository
	itemRepo  item.Repository
	invRepo   inventory.Repository
	invCache  inventory.Cache // 可为nil
	tx        TxManager
}

// NewUpdateOrderUseCase 创建改单用例
func NewUpdateOrderUseCase(
	orderRepo order.Repository,
	itemRepo item.Repository,
	invRepo inventory.Repository,
	invCache inventory.Cache,
	tx TxManager,
) *UpdateOrderUseCase {
	return &UpdateOrderUseCase{
		orderRepo: orderRepo,
		itemRepo:  itemRepo,
		invRepo:   invRepo,
		invCache:  invCache,
		tx:        tx,
	}
}

// UpdateOrderRequest 改单请求DTO
// ItemID/Price为nil表示"不改商品/不覆盖价格"
type UpdateOrderRequest struct {
	OrderNo string
	Qty     int
	ItemID  *uint
	Price   *int64
}

// Execute 执行改单用例
//
// 库存校验规则:
//   - 只改数量(商品不变):只需覆盖增量 newQty-oldQty
//     (原预留已经"属于"这个订单,缩量时增量为负必然通过)
//   - 换商品(无论数量是否变):需覆盖全量 newQty
//     (原预留在旧商品上,对新商品没有任何预留)
//   - 只改价格:完全跳过库存校验,不写任何流水
//
// 台账写入(有库存变化时,两条补偿流水原子写入):
//   - TopUp(旧商品, 旧数量):冲正原预留
//   - Withdrawal(新商品或原商品, 新数量):建立新预留
func (uc *UpdateOrderUseCase) Execute(ctx context.Context, req UpdateOrderRequest) (*order.Order, error) {
	if req.Qty < 1 {
		return nil, order.ErrInvalidQty
	}

	var (
		updated       *order.Order
		oldItemID     uint
		targetItemID  uint
		ledgerTouched bool
	)

	err := uc.tx.Transaction(ctx, func(txCtx context.Context) error {
		// 1. 加载订单,取改动前的商品与数量
		o, err := uc.orderRepo.FindByOrderNo(txCtx, req.OrderNo)
		if err != nil {
			return err
		}
		oldItemID = o.ItemID
		oldQty := o.Qty

		targetItemID = oldItemID
		if req.ItemID != nil {
			targetItemID = *req.ItemID
		}
		itemChanged := targetItemID != oldItemID
		qtyChanged := req.Qty != oldQty

		var target *item.Item
		if qtyChanged || itemChanged {
			// 2. 锁定目标商品行(换商品时锁新商品;旧预留只会被冲正,无需复核)
			target, err = uc.itemRepo.LockByID(txCtx, targetItemID)
			if err != nil {
				if apperrors.GetAppError(err).Code == apperrors.CodeNotFound {
					return apperrors.NotFound("Item not found")
				}
				return err
			}

			// 3. 增量/全量库存校验
			required := req.Qty
			if qtyChanged && !itemChanged {
				required = req.Qty - oldQty
			}
			if required > target.RemainingStock() {
				metrics.OrdersRejectedTotal.Inc()
				return apperrors.ErrInsufficientStock
			}

			// 4. 两条补偿流水原子写入
			pair := []*inventory.Entry{
				inventory.NewTopUp(oldItemID, oldQty),
				inventory.NewWithdrawal(targetItemID, req.Qty),
			}
			if err := uc.invRepo.CreateBatch(txCtx, pair); err != nil {
				return err
			}
			ledgerTouched = true
		} else if req.ItemID != nil {
			// 商品引用未变但payload带了itemId,仍校验存在性(与查不到同样报404)
			ok, err := uc.itemRepo.Exists(txCtx, *req.ItemID)
			if err != nil {
				return err
			}
			if !ok {
				return apperrors.NotFound("Item not found")
			}
		}

		// 5. 价格:显式覆盖 > 换商品时的新快照 > 保持原快照
		price := o.Price
		if itemChanged {
			price = target.Price
		}
		if req.Price != nil {
			price = *req.Price
		}

		o.ItemID = targetItemID
		o.Qty = req.Qty
		o.Price = price
		if target != nil {
			o.ItemName = target.Name
		}

		if err := uc.orderRepo.Update(txCtx, o); err != nil {
			return err
		}

		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	if ledgerTouched {
		metrics.LedgerEntriesTotal.WithLabelValues(string(inventory.EntryTypeTopUp)).Inc()
		metrics.LedgerEntriesTotal.WithLabelValues(string(inventory.EntryTypeWithdrawal)).Inc()

		if uc.invCache != nil {
			_ = uc.invCache.Evict(ctx, oldItemID)
			if targetItemID != oldItemID {
				_ = uc.invCache.Evict(ctx, targetItemID)
			}
		}
	}

	return updated, nil
}
