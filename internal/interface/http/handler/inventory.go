package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/luocheng/stockpile/internal/domain/inventory"
	"github.com/luocheng/stockpile/internal/interface/http/dto"
	apperrors "github.com/luocheng/stockpile/pkg/errors"
	"github.com/luocheng/stockpile/pkg/response"
)

// InventoryHandler 库存台账HTTP处理器
// 这是管理员修正通道:直接增删改台账流水,不做库存充足性校验
type InventoryHandler struct {
	inventoryService inventory.Service
}

// NewInventoryHandler 创建台账处理器
func NewInventoryHandler(inventoryService inventory.Service) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// ListEntries 分页查询台账流水
// @Summary      台账列表
// @Tags         库存台账
// @Produce      json
// @Param        page query int false "页码(从1开始)" default(1)
// @Param        size query int false "每页数量" default(20)
// @Success      200 {object} response.Response[response.PageData[dto.InventoryResponse]]
// @Failure      400 {object} response.Response[any] "参数错误"
// @Router       /api/v1/inventories [get]
func (h *InventoryHandler) ListEntries(c *gin.Context) {
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ErrorWithCode(c, apperrors.CodeBadRequest, "Invalid parameters: "+err.Error())
		return
	}
	query.Normalize()

	entries, total, err := h.inventoryService.ListEntries(c.Request.Context(), query.Page, query.Size)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, dto.NewInventoryResponses(entries), total, query.Page, query.Size)
}

// GetEntry 查询单条台账流水
// @Summary      台账详情
// @Tags         库存台账
// @Produce      json
// @Param        id path int true "流水ID"
// @Success      200 {object} response.Response[dto.InventoryResponse]
// @Failure      404 {object} response.Response[any] "流水不存在"
// @Router       /api/v1/inventories/{id} [get]
func (h *InventoryHandler) GetEntry(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	entry, err := h.inventoryService.GetEntryByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewInventoryResponse(entry))
}

// CreateEntry 新增台账流水
// @Summary      新增台账流水
// @Description  直接入库/出库;type为T(入库)或W(出库),不做库存充足性校验
// @Tags         库存台账
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateInventoryRequest true "流水信息"
// @Success      201 {object} response.Response[dto.InventoryResponse]
// @Failure      400 {object} response.Response[any] "参数错误"
// @Failure      404 {object} response.Response[any] "商品不存在"
// @Router       /api/v1/inventories [post]
func (h *InventoryHandler) CreateEntry(c *gin.Context) {
	var req dto.CreateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.CodeBadRequest, "Invalid parameters: "+err.Error())
		return
	}

	typ, ok := inventory.ParseEntryType(req.Type)
	if !ok {
		response.Error(c, inventory.ErrInvalidEntryType)
		return
	}

	entry, err := h.inventoryService.CreateEntry(c.Request.Context(), req.ItemID, req.Quantity, typ)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.NewInventoryResponse(entry))
}

// UpdateEntry 更新台账流水
// @Summary      更新台账流水
// @Description  按body中的id整条替换;itemId缺省时保持原商品
// @Tags         库存台账
// @Accept       json
// @Produce      json
// @Param        request body dto.UpdateInventoryRequest true "流水信息"
// @Success      200 {object} response.Response[dto.InventoryResponse]
// @Failure      400 {object} response.Response[any] "参数错误"
// @Failure      404 {object} response.Response[any] "流水或商品不存在"
// @Router       /api/v1/inventories [put]
func (h *InventoryHandler) UpdateEntry(c *gin.Context) {
	var req dto.UpdateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.CodeBadRequest, "Invalid parameters: "+err.Error())
		return
	}

	typ, ok := inventory.ParseEntryType(req.Type)
	if !ok {
		response.Error(c, inventory.ErrInvalidEntryType)
		return
	}

	entry, err := h.inventoryService.UpdateEntry(c.Request.Context(), req.ID, req.ItemID, req.Quantity, typ)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewInventoryResponse(entry))
}

// DeleteEntry 删除台账流水
// @Summary      删除台账流水
// @Tags         库存台账
// @Produce      json
// @Param        id path int true "流水ID"
// @Success      200 {object} response.Response[any]
// @Failure      404 {object} response.Response[any] "流水不存在"
// @Router       /api/v1/inventories/{id} [delete]
func (h *InventoryHandler) DeleteEntry(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.inventoryService.DeleteEntry(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, fmt.Sprintf("Inventory with id %d deleted successfully", id))
}

// ListEntriesByItem 查询某商品的台账流水
// @Summary      商品台账列表
// @Tags         库存台账
// @Produce      json
// @Param        id   path  int true  "商品ID"
// @Param        page query int false "页码(从1开始)" default(1)
// @Param        size query int false "每页数量" default(20)
// @Success      200 {object} response.Response[response.PageData[dto.InventoryResponse]]
// @Failure      400 {object} response.Response[any] "参数错误"
// @Router       /api/v1/inventories/items/{id} [get]
func (h *InventoryHandler) ListEntriesByItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ErrorWithCode(c, apperrors.CodeBadRequest, "Invalid parameters: "+err.Error())
		return
	}
	query.Normalize()

	entries, total, err := h.inventoryService.ListEntriesByItem(c.Request.Context(), id, query.Page, query.Size)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, dto.NewInventoryResponses(entries), total, query.Page, query.Size)
}

// SummaryByItem 某商品的台账汇总
// @Summary      商品台账汇总
// @Description  入库/出库总量与笔数,以及推导出的剩余库存
// @Tags         库存台账
// @Produce      json
// @Param        id path int true "商品ID"
// @Success      200 {object} response.Response[dto.SummaryResponse]
// @Failure      404 {object} response.Response[any] "商品没有任何流水"
// @Router       /api/v1/inventories/items/{id}/summary [get]
func (h *InventoryHandler) SummaryByItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	summary, err := h.inventoryService.SummaryByItem(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewSummaryResponse(summary))
}
