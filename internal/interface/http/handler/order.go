package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	apporder "github.com/luocheng/stockpile/internal/application/order"
	"github.com/luocheng/stockpile/internal/interface/http/dto"
	apperrors "github.com/luocheng/stockpile/pkg/errors"
	"github.com/luocheng/stockpile/pkg/response"
)

// OrderHandler 订单HTTP处理器
type OrderHandler struct {
	createOrderUseCase *apporder.CreateOrderUseCase
	updateOrderUseCase *apporder.UpdateOrderUseCase
	deleteOrderUseCase *apporder.DeleteOrderUseCase
	orderQueries       *apporder.OrderQueries
}

// NewOrderHandler 创建订单处理器
func NewOrderHandler(
	createOrderUseCase *apporder.CreateOrderUseCase,
	updateOrderUseCase *apporder.UpdateOrderUseCase,
	deleteOrderUseCase *apporder.DeleteOrderUseCase,
	orderQueries *apporder.OrderQueries,
) *OrderHandler {
	return &OrderHandler{
		createOrderUseCase: createOrderUseCase,
		updateOrderUseCase: updateOrderUseCase,
		deleteOrderUseCase: deleteOrderUseCase,
		orderQueries:       orderQueries,
	}
}

// ListOrders 分页查询订单列表
// @Summary      订单列表
// @Tags         订单
// @Produce      json
// @Param        page query int false "页码(从1开始)" default(1)
// @Param        size query int false "每页数量" default(20)
// @Success      200 {object} response.Response[response.PageData[dto.OrderResponse]]
// @Failure      400 {object} response.Response[any] "参数错误"
// @Router       /api/v1/orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ErrorWithCode(c, apperrors.CodeBadRequest, "Invalid parameters: "+err.Error())
		return
	}
	query.Normalize()

	orders, total, err := h.orderQueries.List(c.Request.Context(), query.Page, query.Size)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, dto.NewOrderResponses(orders), total, query.Page, query.Size)
}

// GetOrder 按订单号查询订单
// @Summary      订单详情
// @Tags         订单
// @Produce      json
// @Param        orderNo path string true "订单号"
// @Success      200 {object} response.Response[dto.OrderResponse]
// @Failure      404 {object} response.Response[any] "订单不存在"
// @Router       /api/v1/orders/{orderNo} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderNo := c.Param("orderNo")

	o, err := h.orderQueries.GetByOrderNo(c.Request.Context(), orderNo)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewOrderResponse(o))
}

// CreateOrder 下单
// @Summary      创建订单
// @Description  锁定商品行做库存校验,扣减以出库流水形式落账,价格取商品当前价快照
// @Tags         订单
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateOrderRequest true "下单信息"
// @Success      201 {object} response.Response[dto.OrderResponse]
// @Failure      400 {object} response.Response[any] "参数错误或库存不足"
// @Failure      404 {object} response.Response[any] "商品不存在或没有库存记录"
// @Router       /api/v1/orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.CodeBadRequest, "Invalid parameters: "+err.Error())
		return
	}

	o, err := h.createOrderUseCase.Execute(c.Request.Context(), apporder.CreateOrderRequest{
		ItemID: req.ItemID,
		Qty:    req.Qty,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.NewOrderResponse(o))
}

// UpdateOrder 改单
// @Summary      更新订单
// @Description  只改价格不动台账;改数量或换商品时做增量/全额库存校验,并写补偿流水对
// @Tags         订单
// @Accept       json
// @Produce      json
// @Param        request body dto.UpdateOrderRequest true "改单信息"
// @Success      200 {object} response.Response[dto.OrderResponse]
// @Failure      400 {object} response.Response[any] "参数错误或库存不足"
// @Failure      404 {object} response.Response[any] "订单或商品不存在"
// @Router       /api/v1/orders [put]
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	var req dto.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.CodeBadRequest, "Invalid parameters: "+err.Error())
		return
	}

	o, err := h.updateOrderUseCase.Execute(c.Request.Context(), apporder.UpdateOrderRequest{
		OrderNo: req.OrderNo,
		Qty:     req.Qty,
		ItemID:  req.ItemID,
		Price:   req.Price,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewOrderResponse(o))
}

// DeleteOrder 删单
// @Summary      删除订单
// @Description  硬删除订单;不冲正出库流水,库存不自动回补
// @Tags         订单
// @Produce      json
// @Param        orderNo path string true "订单号"
// @Success      200 {object} response.Response[any]
// @Failure      404 {object} response.Response[any] "订单不存在"
// @Router       /api/v1/orders/{orderNo} [delete]
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	orderNo := c.Param("orderNo")

	if err := h.deleteOrderUseCase.Execute(c.Request.Context(), orderNo); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, fmt.Sprintf("Order with orderNo %s deleted successfully", orderNo))
}
