package dto

import (
	"github.com/luocheng/stockpile/internal/domain/inventory"
)

// CreateInventoryRequest HTTP创建台账流水请求
// type接受T/W(大小写不敏感),在handler里经ParseEntryType规范化
type CreateInventoryRequest struct {
	ItemID   uint   `json:"itemId" binding:"required" example:"1"`
	Quantity int    `json:"quantity" binding:"required,min=1" example:"20"`
	Type     string `json:"type" binding:"required" example:"T"`
}

// UpdateInventoryRequest HTTP更新台账流水请求
// body携带id;itemId可省略(保持原商品)
type UpdateInventoryRequest struct {
	ID       uint   `json:"id" binding:"required" example:"1"`
	ItemID   *uint  `json:"itemId" binding:"omitempty" example:"2"`
	Quantity int    `json:"quantity" binding:"min=0" example:"5"`
	Type     string `json:"type" binding:"required" example:"W"`
}

// InventoryResponse HTTP台账流水响应
type InventoryResponse struct {
	ID        uint   `json:"id" example:"1"`
	ItemID    uint   `json:"itemId" example:"1"`
	ItemName  string `json:"itemName" example:"Widget"`
	Quantity  int    `json:"quantity" example:"20"`
	Type      string `json:"type" example:"T"`
	TypeLabel string `json:"typeLabel" example:"Top-Up"`
	CreatedAt string `json:"createdAt" example:"2025-06-01 10:30:00"`
	UpdatedAt string `json:"updatedAt" example:"2025-06-01 10:30:00"`
}

// NewInventoryResponse 领域实体 → HTTP响应
func NewInventoryResponse(e *inventory.Entry) *InventoryResponse {
	return &InventoryResponse{
		ID:        e.ID,
		ItemID:    e.ItemID,
		ItemName:  e.ItemName,
		Quantity:  e.Quantity,
		Type:      string(e.Type),
		TypeLabel: e.Type.Label(),
		CreatedAt: e.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt: e.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

// NewInventoryResponses 批量转换
func NewInventoryResponses(entries []*inventory.Entry) []*InventoryResponse {
	out := make([]*InventoryResponse, len(entries))
	for i, e := range entries {
		out[i] = NewInventoryResponse(e)
	}
	return out
}

// SummaryResponse HTTP台账汇总响应
// 字段与inventory.Summary一致,单独定义以固定接口契约
type SummaryResponse struct {
	ItemID         uint   `json:"itemId" example:"1"`
	ItemName       string `json:"itemName" example:"Widget"`
	TotalTopUp     int    `json:"totalTopUp" example:"20"`
	TotalWithdraw  int    `json:"totalWithdraw" example:"5"`
	TopUpCount     int    `json:"topUpCount" example:"1"`
	WithdrawCount  int    `json:"withdrawCount" example:"1"`
	RemainingStock int    `json:"remainingStock" example:"15"`
}

// NewSummaryResponse 领域汇总 → HTTP响应
func NewSummaryResponse(s *inventory.Summary) *SummaryResponse {
	return &SummaryResponse{
		ItemID:         s.ItemID,
		ItemName:       s.ItemName,
		TotalTopUp:     s.TotalTopUp,
		TotalWithdraw:  s.TotalWithdraw,
		TopUpCount:     s.TopUpCount,
		WithdrawCount:  s.WithdrawCount,
		RemainingStock: s.RemainingStock,
	}
}
