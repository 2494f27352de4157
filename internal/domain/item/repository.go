package item

import (
	"context"
)

// Repository 商品仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. FindByID/LockByID都会加载商品的全部台账流水,供库存推导使用
type Repository interface {
	// Create 创建商品
	Create(ctx context.Context, item *Item) error

	// FindByID 根据ID查找商品（含台账流水）
	FindByID(ctx context.Context, id uint) (*Item, error)

	// Exists 商品存在性检查（不加载流水）
	Exists(ctx context.Context, id uint) (bool, error)

	// Update 更新商品信息（名称/价格）
	Update(ctx context.Context, item *Item) error

	// Delete 硬删除商品,零行受影响时返回NotFound
	// 不级联台账与订单,由存储层约束决定
	Delete(ctx context.Context, id uint) error

	// List 分页查询商品列表（含台账流水,用于逐条推导remainingStock）
	List(ctx context.Context, params ListParams) ([]*Item, int64, error)

	// LockByID 悲观锁查询商品（含台账流水）
	// 使用SELECT FOR UPDATE锁定商品行,下单/改单的检查-预留序列在锁内执行,
	// 防止并发下单对同一商品超卖
	LockByID(ctx context.Context, id uint) (*Item, error)
}

// ListParams 列表查询参数
type ListParams struct {
	Page   int    // 页码(从1开始)
	Size   int    // 每页数量
	Filter string // 商品名过滤(大小写不敏感的子串匹配)
}

// Cache 商品读缓存接口（可选组件）
// 读穿透:未命中返回零值与nil错误,调用方回源数据库
type Cache interface {
	GetDetail(ctx context.Context, id uint) (*Item, error)
	SetDetail(ctx context.Context, item *Item) error
	GetList(ctx context.Context, params ListParams) ([]*Item, int64, bool, error)
	SetList(ctx context.Context, params ListParams, items []*Item, total int64) error
	EvictDetail(ctx context.Context, id uint) error
	EvictLists(ctx context.Context) error
}
