package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/luocheng/stockpile/internal/domain/inventory"
	"github.com/luocheng/stockpile/internal/domain/item"
	apperrors "github.com/luocheng/stockpile/pkg/errors"
)

// itemRepository 商品仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/item/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. FindByID/LockByID/List都预加载台账流水,供库存推导使用
type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository 创建商品仓储
func NewItemRepository(db *gorm.DB) item.Repository {
	return &itemRepository{db: db}
}

// Create 创建商品
func (r *itemRepository) Create(ctx context.Context, it *item.Item) error {
	model := &ItemModel{
		Name:  it.Name,
		Price: it.Price,
	}

	if err := r.getDB(ctx).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "failed to create item")
	}

	// 回填自增ID与时间戳
	it.ID = model.ID
	it.CreatedAt = model.CreatedAt
	it.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找商品(含台账流水)
func (r *itemRepository) FindByID(ctx context.Context, id uint) (*item.Item, error) {
	var model ItemModel
	err := r.getDB(ctx).Preload("Entries").First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, item.ErrItemNotFound(id)
		}
		return nil, apperrors.Wrap(err, "failed to query item")
	}

	return toItemEntity(&model), nil
}

// Exists 商品存在性检查(不加载流水)
func (r *itemRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.getDB(ctx).Model(&ItemModel{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, apperrors.Wrap(err, "failed to query item")
	}
	return count > 0, nil
}

// Update 更新商品名称与价格
func (r *itemRepository) Update(ctx context.Context, it *item.Item) error {
	result := r.getDB(ctx).Model(&ItemModel{}).Where("id = ?", it.ID).
		Updates(map[string]interface{}{
			"name":  it.Name,
			"price": it.Price,
		})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "failed to update item")
	}
	if result.RowsAffected == 0 {
		return item.ErrItemNotFound(it.ID)
	}
	return nil
}

// Delete 硬删除商品
// 不级联台账与订单:历史流水与订单继续引用已删除的商品ID
func (r *itemRepository) Delete(ctx context.Context, id uint) error {
	result := r.getDB(ctx).Delete(&ItemModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "failed to delete item")
	}
	if result.RowsAffected == 0 {
		return item.ErrItemNotFound(id)
	}
	return nil
}

// List 分页查询商品列表(含台账流水)
func (r *itemRepository) List(ctx context.Context, params item.ListParams) ([]*item.Item, int64, error) {
	var models []ItemModel
	var total int64

	query := r.getDB(ctx).Model(&ItemModel{})

	// 名称过滤(大小写不敏感的子串匹配)
	if params.Filter != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+params.Filter+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to count items")
	}

	offset := (params.Page - 1) * params.Size
	err := query.Preload("Entries").
		Order("id ASC").
		Limit(params.Size).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to query item list")
	}

	items := make([]*item.Item, len(models))
	for i := range models {
		items[i] = toItemEntity(&models[i])
	}
	return items, total, nil
}

// LockByID 悲观锁查询商品(含台账流水)
// SELECT ... FOR UPDATE锁定商品行;并发的下单/改单在此排队,
// 检查-预留序列因此串行化,防止超卖
func (r *itemRepository) LockByID(ctx context.Context, id uint) (*item.Item, error) {
	var model ItemModel
	err := r.getDB(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Entries").
		First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, item.ErrItemNotFound(id)
		}
		return nil, apperrors.Wrap(err, "failed to lock item")
	}

	return toItemEntity(&model), nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toItemEntity GORM模型 → 领域实体
func toItemEntity(model *ItemModel) *item.Item {
	entries := make([]inventory.Entry, len(model.Entries))
	for i, e := range model.Entries {
		entries[i] = inventory.Entry{
			ID:        e.ID,
			ItemID:    e.ItemID,
			Quantity:  e.Quantity,
			Type:      inventory.EntryType(e.Type),
			CreatedAt: e.CreatedAt,
			UpdatedAt: e.UpdatedAt,
		}
	}

	return &item.Item{
		ID:        model.ID,
		Name:      model.Name,
		Price:     model.Price,
		Entries:   entries,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

// getDB 从context获取事务DB,如果没有则使用默认DB
func (r *itemRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}
