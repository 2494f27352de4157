package order

import (
	"context"
	"time"

	"github.com/luocheng/stockpile/internal/domain/inventory"
	"github.com/luocheng/stockpile/internal/domain/item"
	"github.com/luocheng/stockpile/internal/domain/order"
	apperrors "github.com/luocheng/stockpile/pkg/errors"
	"github.com/luocheng/stockpile/pkg/metrics"
)

// CreateOrderUseCase 下单用例
// 教学要点:这是整个项目最核心的用例之一
// 涉及:事务处理、悲观锁并发控制、库存校验、台账预留
type CreateOrderUseCase struct {
	orderRepo order.Repository
	itemRepo  item.Repository
	invRepo   inventory.Repository
	invCache  inventory.Cache // 可为nil
	tx        TxManager
}

// NewCreateOrderUseCase 创建下单用例
func NewCreateOrderUseCase(
	orderRepo order.Repository,
	itemRepo item.Repository,
	invRepo inventory.Repository,
	invCache inventory.Cache,
	tx TxManager,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orderRepo: orderRepo,
		itemRepo:  itemRepo,
		invRepo:   invRepo,
		invCache:  invCache,
		tx:        tx,
	}
}

// CreateOrderRequest 下单请求DTO
type CreateOrderRequest struct {
	ItemID uint
	Qty    int
}

// Execute 执行下单用例
//
// 核心问题:检查-预留竞态
// 场景:商品净剩余库存恰好够一单,两个请求并发下单
// 错误实现:各自读流水算库存→都判定充足→都写出库流水(超卖!)
//
// 正确实现:悲观锁
//  1. SELECT ... FOR UPDATE 锁定商品行
//  2. 锁内对流水求和,校验净剩余库存
//  3. 取订单序列→写订单(价格快照)→写出库流水
//  4. COMMIT释放锁;任一步失败整个事务回滚,不留半截状态
func (uc *CreateOrderUseCase) Execute(ctx context.Context, req CreateOrderRequest) (*order.Order, error) {
	if req.Qty < 1 {
		return nil, order.ErrInvalidQty
	}

	var created *order.Order
	err := uc.tx.Transaction(ctx, func(txCtx context.Context) error {
		// 1. 锁定商品行(含台账流水);并发的检查-预留序列在此串行化
		it, err := uc.itemRepo.LockByID(txCtx, req.ItemID)
		if err != nil {
			if apperrors.GetAppError(err).Code == apperrors.CodeNotFound {
				return order.ErrItemNotFound
			}
			return err
		}

		// 2. 没有任何入库历史的商品不可被下单
		if !it.HasInventory() {
			return order.ErrItemInventoryNotFound
		}

		// 3. 库存校验(锁内执行,否则并发扣减会超卖)
		if !it.HasSufficientStock(req.Qty) {
			metrics.OrdersRejectedTotal.Inc()
			return apperrors.ErrInsufficientStock
		}

		// 4. 订单号=当前年月+持久序列;序列在同一事务内取,回滚产生空洞但不重复
		seq, err := uc.orderRepo.NextOrderSeq(txCtx)
		if err != nil {
			return err
		}

		// 5. 写订单,价格取商品当前价做快照
		o := order.NewOrder(order.FormatOrderNo(seq, time.Now()), it.ID, req.Qty, it.Price)
		if err := uc.orderRepo.Create(txCtx, o); err != nil {
			return err
		}
		o.ItemName = it.Name

		// 6. 追加一条出库流水,完成库存预留
		if err := uc.invRepo.Create(txCtx, inventory.NewWithdrawal(it.ID, req.Qty)); err != nil {
			return err
		}

		created = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.OrdersCreatedTotal.Inc()
	metrics.LedgerEntriesTotal.WithLabelValues(string(inventory.EntryTypeWithdrawal)).Inc()

	// 台账变动使该商品的汇总与派生库存缓存过期
	if uc.invCache != nil {
		_ = uc.invCache.Evict(ctx, req.ItemID)
	}

	return created, nil
}
