package order

import (
	"context"
)

// Repository 订单仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 写方法与NextOrderSeq在事务中调用时,实现会从context取事务DB,
//    保证订单、序列与台账流水在同一事务内提交
type Repository interface {
	// Create 创建订单
	Create(ctx context.Context, order *Order) error

	// FindByOrderNo 根据订单号查找订单（联表填充ItemName）
	FindByOrderNo(ctx context.Context, orderNo string) (*Order, error)

	// Update 按订单号整体更新订单的商品/数量/价格
	Update(ctx context.Context, order *Order) error

	// Delete 按订单号硬删除,零行受影响时返回NotFound
	Delete(ctx context.Context, orderNo string) error

	// List 分页查询订单列表
	List(ctx context.Context, page, size int) ([]*Order, int64, error)

	// NextOrderSeq 取下一个订单序列号（持久单调计数器）
	// 必须在下单事务内调用:事务回滚时序列空洞可以接受,重复不可接受
	NextOrderSeq(ctx context.Context) (int64, error)
}
