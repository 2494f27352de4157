package handler

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/luocheng/stockpile/internal/domain/item"
	"github.com/luocheng/stockpile/internal/interface/http/dto"
	apperrors "github.com/luocheng/stockpile/pkg/errors"
	"github.com/luocheng/stockpile/pkg/response"
)

// ItemHandler 商品HTTP处理器
type ItemHandler struct {
	itemService item.Service
}

// NewItemHandler 创建商品处理器
func NewItemHandler(itemService item.Service) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// ListItems 分页查询商品列表
// @Summary      商品列表
// @Description  分页查询商品,支持名称过滤;每行携带按台账推导的剩余库存
// @Tags         商品
// @Produce      json
// @Param        page   query int    false "页码(从1开始)" default(1)
// @Param        size   query int    false "每页数量" default(20)
// @Param        filter query string false "商品名过滤(大小写不敏感的子串)"
// @Success      200 {object} response.Response[response.PageData[dto.ItemResponse]]
// @Failure      400 {object} response.Response[any] "参数错误"
// @Router       /api/v1/items [get]
func (h *ItemHandler) ListItems(c *gin.Context) {
	var query dto.ListItemsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ErrorWithCode(c, apperrors.CodeBadRequest, "Invalid parameters: "+err.Error())
		return
	}
	query.Normalize()

	items, total, err := h.itemService.ListItems(c.Request.Context(), item.ListParams{
		Page:   query.Page,
		Size:   query.Size,
		Filter: query.Filter,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, dto.NewItemResponses(items), total, query.Page, query.Size)
}

// GetItem 查询单个商品
// @Summary      商品详情
// @Tags         商品
// @Produce      json
// @Param        id path int true "商品ID"
// @Success      200 {object} response.Response[dto.ItemResponse]
// @Failure      404 {object} response.Response[any] "商品不存在"
// @Router       /api/v1/items/{id} [get]
func (h *ItemHandler) GetItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	it, err := h.itemService.GetItemByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewItemResponse(it))
}

// CreateItem 创建商品
// @Summary      创建商品
// @Tags         商品
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateItemRequest true "商品信息"
// @Success      201 {object} response.Response[dto.ItemResponse]
// @Failure      400 {object} response.Response[any] "参数错误"
// @Router       /api/v1/items [post]
func (h *ItemHandler) CreateItem(c *gin.Context) {
	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.CodeBadRequest, "Invalid parameters: "+err.Error())
		return
	}

	it, err := h.itemService.CreateItem(c.Request.Context(), req.Name, *req.Price)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.NewItemResponse(it))
}

// UpdateItem 更新商品
// @Summary      更新商品
// @Description  按body中的id整体更新名称与价格;改价不回溯已有订单
// @Tags         商品
// @Accept       json
// @Produce      json
// @Param        request body dto.UpdateItemRequest true "商品信息"
// @Success      200 {object} response.Response[dto.ItemResponse]
// @Failure      400 {object} response.Response[any] "参数错误"
// @Failure      404 {object} response.Response[any] "商品不存在"
// @Router       /api/v1/items [put]
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.CodeBadRequest, "Invalid parameters: "+err.Error())
		return
	}

	it, err := h.itemService.UpdateItem(c.Request.Context(), req.ID, req.Name, *req.Price)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewItemResponse(it))
}

// DeleteItem 删除商品
// @Summary      删除商品
// @Tags         商品
// @Produce      json
// @Param        id path int true "商品ID"
// @Success      200 {object} response.Response[any]
// @Failure      404 {object} response.Response[any] "商品不存在"
// @Router       /api/v1/items/{id} [delete]
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.itemService.DeleteItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, fmt.Sprintf("Item with id %d deleted successfully", id))
}

// parseIDParam 解析路径中的数字ID,失败时直接写400响应
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.ErrorWithCode(c, apperrors.CodeBadRequest, "Invalid parameters: id must be a positive integer")
		return 0, false
	}
	return uint(id), true
}
