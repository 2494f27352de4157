package inventory

import (
	"context"
)

// Repository 台账流水仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 便于Mock测试,不依赖具体数据库实现
// 3. 写方法在事务中调用时,实现会从context取事务DB
type Repository interface {
	// Create 插入一条流水
	Create(ctx context.Context, entry *Entry) error

	// CreateBatch 批量插入流水
	// 订单更新的补偿对（旧商品入库 + 新商品出库）必须一起写入
	CreateBatch(ctx context.Context, entries []*Entry) error

	// FindByID 根据ID查找流水（联表填充ItemName）
	FindByID(ctx context.Context, id uint) (*Entry, error)

	// Update 整条替换流水的商品/数量/类型（管理员修正，不做库存diff）
	Update(ctx context.Context, entry *Entry) error

	// Delete 硬删除流水,零行受影响时返回NotFound
	Delete(ctx context.Context, id uint) error

	// List 分页查询全部流水
	List(ctx context.Context, page, size int) ([]*Entry, int64, error)

	// ListByItem 分页查询某个商品的流水
	ListByItem(ctx context.Context, itemID uint, page, size int) ([]*Entry, int64, error)

	// SummaryByItem 单条分组聚合:某商品的入库/出库总量与笔数
	// 商品没有任何流水时返回ErrNoInventoryFound
	SummaryByItem(ctx context.Context, itemID uint) (*Summary, error)
}

// ItemFinder 商品存在性校验
// 设计说明:inventory包不反向依赖item包,只声明自己需要的最小能力,
// 由item仓储隐式满足（Go的结构化接口）
type ItemFinder interface {
	Exists(ctx context.Context, itemID uint) (bool, error)
}

// Cache 台账读缓存接口（可选组件）
// 设计说明:
// 1. 读穿透:未命中返回(nil, nil),调用方回源数据库
// 2. Evict由写路径显式调用:该商品的汇总、详情与列表缓存一并失效
//   （台账变动会改变商品的派生remainingStock,所以商品侧缓存也要清）
// 3. 注入nil表示禁用缓存,不影响任何可观察行为
type Cache interface {
	GetSummary(ctx context.Context, itemID uint) (*Summary, error)
	SetSummary(ctx context.Context, summary *Summary) error
	Evict(ctx context.Context, itemID uint) error
}
