package handler

import (
	"github.com/gin-gonic/gin"

	apporder "github.com/xiebiao/bookshop/internal/application/order"
	"github.com/xiebiao/bookshop/internal/domain/order"
	"github.com/xiebiao/bookshop/internal/domain/user"
	"github.com/xiebiao/bookshop/internal/interface/http/dto"
	"github.com/xiebiao/bookshop/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/response"
)

// OrderHandler 订单HTTP处理器
type OrderHandler struct {
	placeOrderUseCase *apporder.PlaceOrderUseCase
	orderService      order.Service
}

// NewOrderHandler 创建订单处理器
func NewOrderHandler(placeOrderUseCase *apporder.PlaceOrderUseCase, orderService order.Service) *OrderHandler {
	return &OrderHandler{
		placeOrderUseCase: placeOrderUseCase,
		orderService:      orderService,
	}
}

// PlaceOrder 结算下单
// @Summary      结算下单
// @Description  将当前购物车整体转为订单并清空购物车,金额按图书当前价格计算
// @Tags         订单
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.PlaceOrderRequest true "支付信息"
// @Success      200 {object} response.Response{data=dto.OrderResponse}
// @Failure      400 {object} response.Response "购物车为空"
// @Router       /api/v1/orders [post]
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	customerID := middleware.MustGetUserID(c)

	result, err := h.placeOrderUseCase.Execute(c.Request.Context(), apporder.PlaceOrderRequest{
		CustomerID: customerID,
		CCNumber:   req.CCNumber,
		CCExpiry:   req.CCExpiry,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToOrderResponse(result))
}

// GetOrder 查询单个订单
// @Summary      订单详情
// @Description  顾客只能查看自己的订单,管理员可以查看任意订单
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Success      200 {object} response.Response{data=dto.OrderResponse}
// @Failure      403 {object} response.Response "无权查看"
// @Failure      404 {object} response.Response "订单不存在"
// @Router       /api/v1/orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	o, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	// 越权防护:普通顾客只能看自己的订单
	if middleware.GetRole(c) != user.RoleAdmin && !o.IsOwnedBy(middleware.MustGetUserID(c)) {
		response.Error(c, order.ErrForbidden)
		return
	}

	response.Success(c, dto.ToOrderResponse(o))
}

// ListMyOrders 查询本人订单历史
// @Summary      我的订单
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=[]dto.OrderResponse}
// @Failure      404 {object} response.Response "没有任何订单"
// @Router       /api/v1/orders [get]
func (h *OrderHandler) ListMyOrders(c *gin.Context) {
	customerID := middleware.MustGetUserID(c)

	orders, err := h.orderService.GetCustomerOrders(c.Request.Context(), customerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToOrderResponses(orders))
}

// ListAllOrders 查询全部订单(管理员)
// @Summary      全部订单
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=[]dto.OrderResponse}
// @Failure      403 {object} response.Response "非管理员"
// @Failure      404 {object} response.Response "没有任何订单"
// @Router       /api/v1/admin/orders [get]
func (h *OrderHandler) ListAllOrders(c *gin.Context) {
	orders, err := h.orderService.GetAllOrders(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToOrderResponses(orders))
}

// ListCustomerOrders 查询指定顾客的订单(管理员)
// @Summary      指定顾客订单
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "顾客用户ID"
// @Success      200 {object} response.Response{data=[]dto.OrderResponse}
// @Failure      404 {object} response.Response "没有任何订单"
// @Router       /api/v1/admin/customers/{id}/orders [get]
func (h *OrderHandler) ListCustomerOrders(c *gin.Context) {
	customerID, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	orders, err := h.orderService.GetCustomerOrders(c.Request.Context(), customerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToOrderResponses(orders))
}
