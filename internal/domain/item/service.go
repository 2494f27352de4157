package item

import (
	"context"
)

// Service 商品领域服务接口
// 设计说明:
// 1. 封装商品CRUD的业务规则校验与缓存读写
// 2. remainingStock是展示层关心的派生值,由实体方法按流水推导
type Service interface {
	// GetItemByID 根据ID获取商品详情
	GetItemByID(ctx context.Context, id uint) (*Item, error)

	// CreateItem 创建商品
	// 业务规则:价格>=0（格式校验在接口层的绑定规则完成）
	CreateItem(ctx context.Context, name string, price int64) (*Item, error)

	// UpdateItem 更新商品名称与价格
	UpdateItem(ctx context.Context, id uint, name string, price int64) (*Item, error)

	// DeleteItem 硬删除商品
	DeleteItem(ctx context.Context, id uint) error

	// ListItems 分页查询商品列表,支持名称过滤
	ListItems(ctx context.Context, params ListParams) ([]*Item, int64, error)
}

// service 领域服务实现
type service struct {
	repo  Repository
	cache Cache // 可为nil（禁用缓存）
}

// NewService 创建商品领域服务
func NewService(repo Repository, cache Cache) Service {
	return &service{repo: repo, cache: cache}
}

// GetItemByID 根据ID获取商品（读穿透缓存）
func (s *service) GetItemByID(ctx context.Context, id uint) (*Item, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetDetail(ctx, id); err == nil && cached != nil {
			return cached, nil
		}
	}

	it, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.SetDetail(ctx, it)
	}

	return it, nil
}

// CreateItem 创建商品
func (s *service) CreateItem(ctx context.Context, name string, price int64) (*Item, error) {
	if price < 0 {
		return nil, ErrInvalidPrice
	}

	it := NewItem(name, price)
	if err := s.repo.Create(ctx, it); err != nil {
		return nil, err
	}

	// 新商品会出现在列表里,列表缓存全部失效
	if s.cache != nil {
		_ = s.cache.EvictLists(ctx)
	}

	return it, nil
}

// UpdateItem 更新商品名称与价格
// 注意:改价不回溯已有订单,订单上的price是下单时的快照
func (s *service) UpdateItem(ctx context.Context, id uint, name string, price int64) (*Item, error) {
	it, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := it.UpdateInfo(name, price); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, it); err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.EvictDetail(ctx, id)
		_ = s.cache.EvictLists(ctx)
	}

	return it, nil
}

// DeleteItem 硬删除商品
func (s *service) DeleteItem(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if s.cache != nil {
		_ = s.cache.EvictDetail(ctx, id)
		_ = s.cache.EvictLists(ctx)
	}

	return nil
}

// ListItems 分页查询商品列表（读穿透缓存）
func (s *service) ListItems(ctx context.Context, params ListParams) ([]*Item, int64, error) {
	if s.cache != nil {
		if items, total, hit, err := s.cache.GetList(ctx, params); err == nil && hit {
			return items, total, nil
		}
	}

	items, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, 0, err
	}

	if s.cache != nil {
		_ = s.cache.SetList(ctx, params, items, total)
	}

	return items, total, nil
}
