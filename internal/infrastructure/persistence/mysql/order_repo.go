package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/luocheng/stockpile/internal/domain/order"
	apperrors "github.com/luocheng/stockpile/pkg/errors"
)

// orderRepository 订单仓储实现(MySQL)
// 设计说明:
// 1. 订单以业务订单号(order_no)为主键,不使用自增ID
// 2. NextOrderSeq用单行计数器模拟序列:MySQL没有原生SEQUENCE,
//    用UPDATE ... LAST_INSERT_ID(value + 1)在一条语句内完成自增并取值,
//    行锁保证并发下不重号
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储
func NewOrderRepository(db *gorm.DB) order.Repository {
	return &orderRepository{db: db}
}

// Create 创建订单
func (r *orderRepository) Create(ctx context.Context, o *order.Order) error {
	model := &OrderModel{
		OrderNo: o.OrderNo,
		ItemID:  o.ItemID,
		Qty:     o.Qty,
		Price:   o.Price,
	}

	if err := r.getDB(ctx).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "failed to create order")
	}

	o.CreatedAt = model.CreatedAt
	o.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByOrderNo 根据订单号查找订单
func (r *orderRepository) FindByOrderNo(ctx context.Context, orderNo string) (*order.Order, error) {
	var model OrderModel
	err := r.getDB(ctx).Preload("Item").
		Where("order_no = ?", orderNo).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.ErrOrderNotFound(orderNo)
		}
		return nil, apperrors.Wrap(err, "failed to query order")
	}

	return toOrderEntity(&model), nil
}

// Update 按订单号更新商品/数量/价格
func (r *orderRepository) Update(ctx context.Context, o *order.Order) error {
	result := r.getDB(ctx).Model(&OrderModel{}).Where("order_no = ?", o.OrderNo).
		Updates(map[string]interface{}{
			"item_id": o.ItemID,
			"qty":     o.Qty,
			"price":   o.Price,
		})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "failed to update order")
	}
	if result.RowsAffected == 0 {
		return order.ErrOrderNotFound(o.OrderNo)
	}
	return nil
}

// Delete 按订单号硬删除订单
func (r *orderRepository) Delete(ctx context.Context, orderNo string) error {
	result := r.getDB(ctx).Where("order_no = ?", orderNo).Delete(&OrderModel{})
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "failed to delete order")
	}
	if result.RowsAffected == 0 {
		return order.ErrOrderNotFound(orderNo)
	}
	return nil
}

// List 分页查询订单列表
func (r *orderRepository) List(ctx context.Context, page, size int) ([]*order.Order, int64, error) {
	var models []OrderModel
	var total int64

	query := r.getDB(ctx).Model(&OrderModel{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to count orders")
	}

	offset := (page - 1) * size
	err := query.Preload("Item").
		Order("order_no ASC").
		Limit(size).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to query orders")
	}

	orders := make([]*order.Order, len(models))
	for i := range models {
		orders[i] = toOrderEntity(&models[i])
	}
	return orders, total, nil
}

// NextOrderSeq 取下一个订单序列号
// UPDATE把LAST_INSERT_ID绑定到递增后的值,紧接着的SELECT在同一连接上取回,
// 事务内调用时两条语句天然走同一连接
func (r *orderRepository) NextOrderSeq(ctx context.Context) (int64, error) {
	db := r.getDB(ctx)

	result := db.Exec(
		"UPDATE order_sequences SET value = LAST_INSERT_ID(value + 1) WHERE name = ?",
		orderSeqName,
	)
	if result.Error != nil {
		return 0, apperrors.Wrap(result.Error, "failed to advance order sequence")
	}
	if result.RowsAffected == 0 {
		return 0, apperrors.New(apperrors.CodeInternal, "order sequence row missing")
	}

	var seq int64
	if err := db.Raw("SELECT LAST_INSERT_ID()").Scan(&seq).Error; err != nil {
		return 0, apperrors.Wrap(err, "failed to read order sequence")
	}
	return seq, nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toOrderEntity GORM模型 → 领域实体
func toOrderEntity(model *OrderModel) *order.Order {
	return &order.Order{
		OrderNo:   model.OrderNo,
		ItemID:    model.ItemID,
		ItemName:  model.Item.Name,
		Qty:       model.Qty,
		Price:     model.Price,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

// getDB 从context获取事务DB,如果没有则使用默认DB
func (r *orderRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}
