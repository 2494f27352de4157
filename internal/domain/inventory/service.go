package inventory

import (
	"context"

	apperrors "github.com/luocheng/stockpile/pkg/errors"
)

// Service 台账领域服务接口
// 设计说明:
// 1. 封装直接台账接口的业务规则（商品必须存在、数量/类型校验）
// 2. 这是管理员修正通道:不做"改完库存是否为负"的检查,
//    库存约束只在下单/改单路径上执行
type Service interface {
	// GetEntryByID 查询单条流水
	GetEntryByID(ctx context.Context, id uint) (*Entry, error)

	// ListEntries 分页查询全部流水
	ListEntries(ctx context.Context, page, size int) ([]*Entry, int64, error)

	// CreateEntry 新增流水
	// 业务规则:商品必须存在;qty>=1;type合法
	CreateEntry(ctx context.Context, itemID uint, qty int, typ EntryType) (*Entry, error)

	// UpdateEntry 整条替换流水（itemID为nil时保持原商品）
	// 业务规则:流水必须存在;提供itemID时商品必须存在;qty>=0
	UpdateEntry(ctx context.Context, id uint, itemID *uint, qty int, typ EntryType) (*Entry, error)

	// DeleteEntry 硬删除流水
	DeleteEntry(ctx context.Context, id uint) error

	// SummaryByItem 某商品的台账汇总
	SummaryByItem(ctx context.Context, itemID uint) (*Summary, error)

	// ListEntriesByItem 分页查询某商品的流水
	ListEntriesByItem(ctx context.Context, itemID uint, page, size int) ([]*Entry, int64, error)
}

// service 领域服务实现
type service struct {
	repo  Repository
	items ItemFinder
	cache Cache // 可为nil（禁用缓存）
}

// NewService 创建台账领域服务
func NewService(repo Repository, items ItemFinder, cache Cache) Service {
	return &service{repo: repo, items: items, cache: cache}
}

// GetEntryByID 查询单条流水
func (s *service) GetEntryByID(ctx context.Context, id uint) (*Entry, error) {
	return s.repo.FindByID(ctx, id)
}

// ListEntries 分页查询全部流水
func (s *service) ListEntries(ctx context.Context, page, size int) ([]*Entry, int64, error) {
	return s.repo.List(ctx, page, size)
}

// CreateEntry 新增流水
func (s *service) CreateEntry(ctx context.Context, itemID uint, qty int, typ EntryType) (*Entry, error) {
	// 1. 业务规则校验
	if qty < 1 {
		return nil, ErrInvalidQuantity
	}
	if !typ.Valid() {
		return nil, ErrInvalidEntryType
	}

	// 2. 商品存在性校验
	ok, err := s.items.Exists(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.NotFound("Item not found")
	}

	// 3. 落库
	entry := &Entry{ItemID: itemID, Quantity: qty, Type: typ}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	// 4. 失效该商品的缓存（汇总/详情/列表都会受影响）
	s.evict(ctx, itemID)

	return entry, nil
}

// UpdateEntry 整条替换流水
func (s *service) UpdateEntry(ctx context.Context, id uint, itemID *uint, qty int, typ EntryType) (*Entry, error) {
	if qty < 0 {
		return nil, ErrInvalidQuantity
	}
	if !typ.Valid() {
		return nil, ErrInvalidEntryType
	}

	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldItemID := entry.ItemID
	if itemID != nil {
		ok, err := s.items.Exists(ctx, *itemID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperrors.NotFound("Item not found")
		}
		entry.ItemID = *itemID
		entry.ItemName = "" // 联表名失效,仓储会在回查时重新填充
	}

	entry.Quantity = qty
	entry.Type = typ

	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, err
	}

	// 旧商品与新商品的派生库存都变了
	s.evict(ctx, oldItemID)
	if entry.ItemID != oldItemID {
		s.evict(ctx, entry.ItemID)
	}

	return s.repo.FindByID(ctx, id)
}

// DeleteEntry 硬删除流水
func (s *service) DeleteEntry(ctx context.Context, id uint) error {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.evict(ctx, entry.ItemID)
	return nil
}

// SummaryByItem 某商品的台账汇总（读穿透缓存）
func (s *service) SummaryByItem(ctx context.Context, itemID uint) (*Summary, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetSummary(ctx, itemID); err == nil && cached != nil {
			return cached, nil
		}
		// 缓存故障不阻塞读路径,直接回源
	}

	summary, err := s.repo.SummaryByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.SetSummary(ctx, summary)
	}

	return summary, nil
}

// ListEntriesByItem 分页查询某商品的流水
func (s *service) ListEntriesByItem(ctx context.Context, itemID uint, page, size int) ([]*Entry, int64, error) {
	return s.repo.ListByItem(ctx, itemID, page, size)
}

// evict 尽力失效缓存,失败只记录不中断写路径
func (s *service) evict(ctx context.Context, itemID uint) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Evict(ctx, itemID)
}
