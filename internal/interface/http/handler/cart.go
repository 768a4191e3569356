package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookshop/internal/domain/cart"
	"github.com/xiebiao/bookshop/internal/interface/http/dto"
	"github.com/xiebiao/bookshop/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/response"
)

// CartHandler 购物车HTTP处理器
// 所有接口都操作当前登录顾客自己的购物车,CustomerID取自JWT
type CartHandler struct {
	cartService cart.Service
}

// NewCartHandler 创建购物车处理器
func NewCartHandler(cartService cart.Service) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// GetCart 查询购物车
// @Summary      查询购物车
// @Description  返回当前顾客的购物车内容与合计,空车返回400
// @Tags         购物车
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=dto.CartResponse}
// @Failure      400 {object} response.Response "购物车为空"
// @Router       /api/v1/cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	customerID := middleware.MustGetUserID(c)

	lines, err := h.cartService.GetCart(c.Request.Context(), customerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToCartResponse(lines))
}

// AddItem 加入购物车
// @Summary      加入购物车
// @Description  同一本书重复加入时数量合并
// @Tags         购物车
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.AddCartItemRequest true "条目信息"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	customerID := middleware.MustGetUserID(c)

	cartID, err := h.cartService.AddItem(c.Request.Context(), customerID, req.ISBN, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"cart_id": cartID})
}

// UpdateItem 修改条目数量
// @Summary      修改购物车条目数量
// @Tags         购物车
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "购物车条目ID"
// @Param        request body dto.UpdateCartItemRequest true "新数量"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "条目不存在"
// @Router       /api/v1/cart/items/{id} [put]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	cartID, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	if err := h.cartService.UpdateItem(c.Request.Context(), middleware.MustGetUserID(c), cartID, req.Quantity); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// RemoveItem 移除条目
// @Summary      移除购物车条目
// @Tags         购物车
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "购物车条目ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "条目不存在"
// @Router       /api/v1/cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	cartID, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.cartService.RemoveItem(c.Request.Context(), middleware.MustGetUserID(c), cartID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// ClearCart 清空购物车
// @Summary      清空购物车
// @Tags         购物车
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response
// @Router       /api/v1/cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	customerID := middleware.MustGetUserID(c)

	if err := h.cartService.ClearCart(c.Request.Context(), customerID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
