package dto

import (
	"github.com/luocheng/stockpile/internal/domain/item"
)

// CreateItemRequest HTTP创建商品请求
type CreateItemRequest struct {
	Name  string `json:"name" binding:"required,max=200" example:"Widget"`
	Price *int64 `json:"price" binding:"required,min=0" example:"5900"` // 价格(分)
}

// UpdateItemRequest HTTP更新商品请求
// 与创建不同:body里携带id(整体替换语义)
type UpdateItemRequest struct {
	ID    uint   `json:"id" binding:"required" example:"1"`
	Name  string `json:"name" binding:"required,max=200" example:"Widget"`
	Price *int64 `json:"price" binding:"required,min=0" example:"6100"`
}

// ListItemsQuery HTTP商品列表查询参数
type ListItemsQuery struct {
	PageQuery
	Filter string `form:"filter" binding:"omitempty,max=200" example:"wid"`
}

// ItemResponse HTTP商品响应
// remainingStock是派生值:每次返回时按台账流水现算
type ItemResponse struct {
	ID             uint   `json:"id" example:"1"`
	Name           string `json:"name" example:"Widget"`
	Price          int64  `json:"price" example:"5900"`
	RemainingStock int    `json:"remainingStock" example:"15"`
	CreatedAt      string `json:"createdAt" example:"2025-06-01 10:30:00"`
	UpdatedAt      string `json:"updatedAt" example:"2025-06-01 10:30:00"`
}

// NewItemResponse 领域实体 → HTTP响应
func NewItemResponse(it *item.Item) *ItemResponse {
	return &ItemResponse{
		ID:             it.ID,
		Name:           it.Name,
		Price:          it.Price,
		RemainingStock: it.RemainingStock(),
		CreatedAt:      it.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:      it.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

// NewItemResponses 批量转换
func NewItemResponses(items []*item.Item) []*ItemResponse {
	out := make([]*ItemResponse, len(items))
	for i, it := range items {
		out[i] = NewItemResponse(it)
	}
	return out
}
