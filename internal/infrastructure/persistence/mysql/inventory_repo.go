package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/luocheng/stockpile/internal/domain/inventory"
	apperrors "github.com/luocheng/stockpile/pkg/errors"
)

// inventoryRepository 库存台账仓储实现(MySQL)
// 设计说明:
// 1. 台账只追加和整体替换,没有按条修改单个字段的需求
// 2. 查询预加载Item以填充展示用的商品名称
// 3. SummaryByItem用单条分组SQL完成聚合,避免把全部流水拉到内存
type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository 创建库存台账仓储
func NewInventoryRepository(db *gorm.DB) inventory.Repository {
	return &inventoryRepository{db: db}
}

// Create 追加一条台账流水
func (r *inventoryRepository) Create(ctx context.Context, entry *inventory.Entry) error {
	model := &InventoryEntryModel{
		ItemID:   entry.ItemID,
		Quantity: entry.Quantity,
		Type:     string(entry.Type),
	}

	if err := r.getDB(ctx).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "failed to create inventory entry")
	}

	entry.ID = model.ID
	entry.CreatedAt = model.CreatedAt
	entry.UpdatedAt = model.UpdatedAt
	return nil
}

// CreateBatch 一次性追加多条流水(改单时的冲正+重扣)
func (r *inventoryRepository) CreateBatch(ctx context.Context, entries []*inventory.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	models := make([]InventoryEntryModel, len(entries))
	for i, e := range entries {
		models[i] = InventoryEntryModel{
			ItemID:   e.ItemID,
			Quantity: e.Quantity,
			Type:     string(e.Type),
		}
	}

	if err := r.getDB(ctx).Create(&models).Error; err != nil {
		return apperrors.Wrap(err, "failed to create inventory entries")
	}

	for i := range entries {
		entries[i].ID = models[i].ID
		entries[i].CreatedAt = models[i].CreatedAt
		entries[i].UpdatedAt = models[i].UpdatedAt
	}
	return nil
}

// FindByID 根据ID查找台账流水
func (r *inventoryRepository) FindByID(ctx context.Context, id uint) (*inventory.Entry, error) {
	var model InventoryEntryModel
	err := r.getDB(ctx).Preload("Item").First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, inventory.ErrEntryNotFound(id)
		}
		return nil, apperrors.Wrap(err, "failed to query inventory entry")
	}

	return toEntryEntity(&model), nil
}

// Update 整体替换一条流水(商品、数量、类型)
func (r *inventoryRepository) Update(ctx context.Context, entry *inventory.Entry) error {
	result := r.getDB(ctx).Model(&InventoryEntryModel{}).Where("id = ?", entry.ID).
		Updates(map[string]interface{}{
			"item_id":  entry.ItemID,
			"quantity": entry.Quantity,
			"type":     string(entry.Type),
		})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "failed to update inventory entry")
	}
	if result.RowsAffected == 0 {
		return inventory.ErrEntryNotFound(entry.ID)
	}
	return nil
}

// Delete 硬删除一条流水
func (r *inventoryRepository) Delete(ctx context.Context, id uint) error {
	result := r.getDB(ctx).Delete(&InventoryEntryModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "failed to delete inventory entry")
	}
	if result.RowsAffected == 0 {
		return inventory.ErrEntryNotFound(id)
	}
	return nil
}

// List 分页查询全部台账流水
func (r *inventoryRepository) List(ctx context.Context, page, size int) ([]*inventory.Entry, int64, error) {
	var models []InventoryEntryModel
	var total int64

	query := r.getDB(ctx).Model(&InventoryEntryModel{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to count inventory entries")
	}

	offset := (page - 1) * size
	err := query.Preload("Item").
		Order("id ASC").
		Limit(size).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to query inventory entries")
	}

	return toEntryEntities(models), total, nil
}

// ListByItem 分页查询某商品的流水
func (r *inventoryRepository) ListByItem(ctx context.Context, itemID uint, page, size int) ([]*inventory.Entry, int64, error) {
	var models []InventoryEntryModel
	var total int64

	query := r.getDB(ctx).Model(&InventoryEntryModel{}).Where("item_id = ?", itemID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to count inventory entries")
	}

	offset := (page - 1) * size
	err := query.Preload("Item").
		Order("id ASC").
		Limit(size).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to query inventory entries")
	}

	return toEntryEntities(models), total, nil
}

// SummaryByItem 按商品聚合台账:入库/出库的总量与笔数
// 用CASE WHEN在一条SQL里同时算四个指标,剩余库存在内存中相减
func (r *inventoryRepository) SummaryByItem(ctx context.Context, itemID uint) (*inventory.Summary, error) {
	type summaryRow struct {
		ItemID        uint
		ItemName      string
		TotalTopUp    int
		TotalWithdraw int
		TopUpCount    int
		WithdrawCount int
	}

	var row summaryRow
	result := r.getDB(ctx).Model(&InventoryEntryModel{}).
		Select(`inventory_entries.item_id AS item_id,
			items.name AS item_name,
			COALESCE(SUM(CASE WHEN inventory_entries.type = 'T' THEN inventory_entries.quantity ELSE 0 END), 0) AS total_top_up,
			COALESCE(SUM(CASE WHEN inventory_entries.type = 'W' THEN inventory_entries.quantity ELSE 0 END), 0) AS total_withdraw,
			COALESCE(SUM(CASE WHEN inventory_entries.type = 'T' THEN 1 ELSE 0 END), 0) AS top_up_count,
			COALESCE(SUM(CASE WHEN inventory_entries.type = 'W' THEN 1 ELSE 0 END), 0) AS withdraw_count`).
		Joins("JOIN items ON items.id = inventory_entries.item_id").
		Where("inventory_entries.item_id = ?", itemID).
		Group("inventory_entries.item_id, items.name").
		Scan(&row)
	if result.Error != nil {
		return nil, apperrors.Wrap(result.Error, "failed to summarize inventory")
	}
	// 分组查询没有命中任何流水时返回零行
	if result.RowsAffected == 0 {
		return nil, inventory.ErrNoInventoryFound
	}

	return &inventory.Summary{
		ItemID:         row.ItemID,
		ItemName:       row.ItemName,
		TotalTopUp:     row.TotalTopUp,
		TotalWithdraw:  row.TotalWithdraw,
		TopUpCount:     row.TopUpCount,
		WithdrawCount:  row.WithdrawCount,
		RemainingStock: row.TotalTopUp - row.TotalWithdraw,
	}, nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toEntryEntity GORM模型 → 领域实体
func toEntryEntity(model *InventoryEntryModel) *inventory.Entry {
	return &inventory.Entry{
		ID:        model.ID,
		ItemID:    model.ItemID,
		ItemName:  model.Item.Name,
		Quantity:  model.Quantity,
		Type:      inventory.EntryType(model.Type),
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func toEntryEntities(models []InventoryEntryModel) []*inventory.Entry {
	entries := make([]*inventory.Entry, len(models))
	for i := range models {
		entries[i] = toEntryEntity(&models[i])
	}
	return entries
}

// getDB 从context获取事务DB,如果没有则使用默认DB
func (r *inventoryRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}
