package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luocheng/stockpile/internal/domain/inventory"
	"github.com/luocheng/stockpile/internal/domain/order"
	apperrors "github.com/luocheng/stockpile/pkg/errors"
	"github.com/luocheng/stockpile/pkg/metrics"
)

// 测试覆盖改单用例的对账规则:
// 1. 只改价格:不写任何流水,不做库存校验
// 2. 同商品改数量:只校验增量 newQty-oldQty
// 3. 换商品:对新商品全量校验 newQty
// 4. 有库存变化时写补偿流水对:TopUp(旧商品,旧数量)+Withdrawal(新商品,新数量)
// 5. 价格优先级:显式覆盖 > 换商品快照 > 保持原快照

func uintPtr(v uint) *uint    { return &v }
func int64Ptr(v int64) *int64 { return &v }

func newUpdateUseCase(items *mockItemRepo, orders ...*order.Order) (*UpdateOrderUseCase, *mockOrderRepo, *mockInventoryRepo) {
	metrics.InitMetrics()
	orderRepo := newMockOrderRepo(orders...)
	invRepo := newMockInventoryRepo()
	uc := NewUpdateOrderUseCase(orderRepo, items, invRepo, nil, passthroughTx{})
	return uc, orderRepo, invRepo
}

func TestUpdateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("只改价格不动台账", func(t *testing.T) {
		items := newMockItemRepo(testItem(1, "Widget", 5900,
			inventory.Entry{ItemID: 1, Quantity: 10, Type: inventory.EntryTypeTopUp},
		))
		existing := order.NewOrder("20250600000001", 1, 3, 5900)
		uc, orderRepo, invRepo := newUpdateUseCase(items, existing)

		o, err := uc.Execute(ctx, UpdateOrderRequest{
			OrderNo: "20250600000001",
			Qty:     3, // 数量不变
			Price:   int64Ptr(4900),
		})
		require.NoError(t, err)

		assert.Equal(t, int64(4900), o.Price)
		assert.Equal(t, 3, o.Qty)
		assert.Empty(t, invRepo.entries, "价格调整不应触碰台账")

		stored, err := orderRepo.FindByOrderNo(ctx, "20250600000001")
		require.NoError(t, err)
		assert.Equal(t, int64(4900), stored.Price)
	})

	t.Run("同商品扩量只校验增量", func(t *testing.T) {
		// 净剩余 = 10 - 3 = 7;扩到qty=10需要增量7,恰好通过
		items := newMockItemRepo(testItem(1, "Widget", 5900,
			inventory.Entry{ItemID: 1, Quantity: 10, Type: inventory.EntryTypeTopUp},
			inventory.Entry{ItemID: 1, Quantity: 3, Type: inventory.EntryTypeWithdrawal},
		))
		existing := order.NewOrder("20250600000001", 1, 3, 5900)
		uc, _, invRepo := newUpdateUseCase(items, existing)

		o, err := uc.Execute(ctx, UpdateOrderRequest{OrderNo: "20250600000001", Qty: 10})
		require.NoError(t, err)
		assert.Equal(t, 10, o.Qty)
		assert.Equal(t, int64(5900), o.Price, "未覆盖价格时保持原快照")

		// 补偿流水对:冲正旧预留+建立新预留
		require.Len(t, invRepo.entries, 2)
		assert.Equal(t, inventory.EntryTypeTopUp, invRepo.entries[0].Type)
		assert.Equal(t, uint(1), invRepo.entries[0].ItemID)
		assert.Equal(t, 3, invRepo.entries[0].Quantity)
		assert.Equal(t, inventory.EntryTypeWithdrawal, invRepo.entries[1].Type)
		assert.Equal(t, 10, invRepo.entries[1].Quantity)
	})

	t.Run("同商品扩量增量不足被拒绝", func(t *testing.T) {
		// 净剩余 = 10 - 3 = 7;扩到qty=11需要增量8 > 7
		items := newMockItemRepo(testItem(1, "Widget", 5900,
			inventory.Entry{ItemID: 1, Quantity: 10, Type: inventory.EntryTypeTopUp},
			inventory.Entry{ItemID: 1, Quantity: 3, Type: inventory.EntryTypeWithdrawal},
		))
		existing := order.NewOrder("20250600000001", 1, 3, 5900)
		uc, orderRepo, invRepo := newUpdateUseCase(items, existing)

		_, err := uc.Execute(ctx, UpdateOrderRequest{OrderNo: "20250600000001", Qty: 11})
		require.Error(t, err)
		assert.Equal(t, "Insufficient stock", apperrors.GetAppError(err).Message)

		assert.Empty(t, invRepo.entries)
		stored, err := orderRepo.FindByOrderNo(ctx, "20250600000001")
		require.NoError(t, err)
		assert.Equal(t, 3, stored.Qty, "拒绝后订单保持原状")
	})

	t.Run("同商品缩量总是通过", func(t *testing.T) {
		// 增量为负,即使净剩余为0也能缩
		items := newMockItemRepo(testItem(1, "Widget", 5900,
			inventory.Entry{ItemID: 1, Quantity: 3, Type: inventory.EntryTypeTopUp},
			inventory.Entry{ItemID: 1, Quantity: 3, Type: inventory.EntryTypeWithdrawal},
		))
		existing := order.NewOrder("20250600000001", 1, 3, 5900)
		uc, _, invRepo := newUpdateUseCase(items, existing)

		o, err := uc.Execute(ctx, UpdateOrderRequest{OrderNo: "20250600000001", Qty: 1})
		require.NoError(t, err)
		assert.Equal(t, 1, o.Qty)
		require.Len(t, invRepo.entries, 2)
	})

	t.Run("换商品全量校验并取新价格快照", func(t *testing.T) {
		items := newMockItemRepo(
			testItem(1, "Widget", 5900,
				inventory.Entry{ItemID: 1, Quantity: 10, Type: inventory.EntryTypeTopUp},
			),
			testItem(2, "Gadget", 8800,
				inventory.Entry{ItemID: 2, Quantity: 5, Type: inventory.EntryTypeTopUp},
			),
		)
		existing := order.NewOrder("20250600000001", 1, 3, 5900)
		uc, _, invRepo := newUpdateUseCase(items, existing)

		o, err := uc.Execute(ctx, UpdateOrderRequest{
			OrderNo: "20250600000001",
			Qty:     5, // 新商品净剩余恰好5
			ItemID:  uintPtr(2),
		})
		require.NoError(t, err)

		assert.Equal(t, uint(2), o.ItemID)
		assert.Equal(t, "Gadget", o.ItemName)
		assert.Equal(t, int64(8800), o.Price, "换商品时取新商品价格快照")

		// 旧商品冲正 + 新商品出库
		require.Len(t, invRepo.entries, 2)
		assert.Equal(t, inventory.EntryTypeTopUp, invRepo.entries[0].Type)
		assert.Equal(t, uint(1), invRepo.entries[0].ItemID)
		assert.Equal(t, 3, invRepo.entries[0].Quantity)
		assert.Equal(t, inventory.EntryTypeWithdrawal, invRepo.entries[1].Type)
		assert.Equal(t, uint(2), invRepo.entries[1].ItemID)
		assert.Equal(t, 5, invRepo.entries[1].Quantity)
	})

	t.Run("换商品时新商品库存不足", func(t *testing.T) {
		// 旧预留不可抵扣:新商品净剩余4 < 全量5
		items := newMockItemRepo(
			testItem(1, "Widget", 5900,
				inventory.Entry{ItemID: 1, Quantity: 10, Type: inventory.EntryTypeTopUp},
			),
			testItem(2, "Gadget", 8800,
				inventory.Entry{ItemID: 2, Quantity: 4, Type: inventory.EntryTypeTopUp},
			),
		)
		existing := order.NewOrder("20250600000001", 1, 5, 5900)
		uc, _, invRepo := newUpdateUseCase(items, existing)

		_, err := uc.Execute(ctx, UpdateOrderRequest{
			OrderNo: "20250600000001",
			Qty:     5,
			ItemID:  uintPtr(2),
		})
		require.Error(t, err)
		assert.Equal(t, "Insufficient stock", apperrors.GetAppError(err).Message)
		assert.Empty(t, invRepo.entries)
	})

	t.Run("换商品时显式价格覆盖快照", func(t *testing.T) {
		items := newMockItemRepo(
			testItem(1, "Widget", 5900,
				inventory.Entry{ItemID: 1, Quantity: 10, Type: inventory.EntryTypeTopUp},
			),
			testItem(2, "Gadget", 8800,
				inventory.Entry{ItemID: 2, Quantity: 10, Type: inventory.EntryTypeTopUp},
			),
		)
		existing := order.NewOrder("20250600000001", 1, 3, 5900)
		uc, _, _ := newUpdateUseCase(items, existing)

		o, err := uc.Execute(ctx, UpdateOrderRequest{
			OrderNo: "20250600000001",
			Qty:     2,
			ItemID:  uintPtr(2),
			Price:   int64Ptr(100),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(100), o.Price, "显式覆盖优先于新商品快照")
	})

	t.Run("payload带原商品ID视为未换商品", func(t *testing.T) {
		items := newMockItemRepo(testItem(1, "Widget", 5900,
			inventory.Entry{ItemID: 1, Quantity: 10, Type: inventory.EntryTypeTopUp},
		))
		existing := order.NewOrder("20250600000001", 1, 3, 5900)
		uc, _, invRepo := newUpdateUseCase(items, existing)

		o, err := uc.Execute(ctx, UpdateOrderRequest{
			OrderNo: "20250600000001",
			Qty:     3,
			ItemID:  uintPtr(1), // 与当前相同
		})
		require.NoError(t, err)
		assert.Equal(t, int64(5900), o.Price)
		assert.Empty(t, invRepo.entries, "商品与数量都没变,不动台账")
	})

	t.Run("目标商品不存在", func(t *testing.T) {
		items := newMockItemRepo(testItem(1, "Widget", 5900,
			inventory.Entry{ItemID: 1, Quantity: 10, Type: inventory.EntryTypeTopUp},
		))
		existing := order.NewOrder("20250600000001", 1, 3, 5900)
		uc, _, _ := newUpdateUseCase(items, existing)

		_, err := uc.Execute(ctx, UpdateOrderRequest{
			OrderNo: "20250600000001",
			Qty:     3,
			ItemID:  uintPtr(99),
		})
		require.Error(t, err)
		assert.Equal(t, "Item not found", apperrors.GetAppError(err).Message)
	})

	t.Run("订单不存在", func(t *testing.T) {
		uc, _, _ := newUpdateUseCase(newMockItemRepo())

		_, err := uc.Execute(ctx, UpdateOrderRequest{OrderNo: "20250699999999", Qty: 1})
		require.Error(t, err)
		assert.Equal(t, "Order with orderNo 20250699999999 not found", apperrors.GetAppError(err).Message)
	})
}

func TestDeleteOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("删除订单不回补库存", func(t *testing.T) {
		existing := order.NewOrder("20250600000001", 1, 3, 5900)
		orderRepo := newMockOrderRepo(existing)
		invRepo := newMockInventoryRepo()
		_ = invRepo.Create(ctx, inventory.NewWithdrawal(1, 3))

		uc := NewDeleteOrderUseCase(orderRepo)
		require.NoError(t, uc.Execute(ctx, "20250600000001"))

		assert.Empty(t, orderRepo.orders)
		assert.Len(t, invRepo.entries, 1, "出库流水保持原样,库存不自动回补")
	})

	t.Run("订单不存在", func(t *testing.T) {
		uc := NewDeleteOrderUseCase(newMockOrderRepo())

		err := uc.Execute(ctx, "20250600000001")
		require.Error(t, err)
		assert.Equal(t, apperrors.CodeNotFound, apperrors.GetAppError(err).Code)
	})
}
