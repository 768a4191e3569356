package handler

import (
	"github.com/gin-gonic/gin"

	apppuborder "github.com/xiebiao/bookshop/internal/application/puborder"
	"github.com/xiebiao/bookshop/internal/domain/puborder"
	"github.com/xiebiao/bookshop/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/response"
)

// PubOrderHandler 进货单HTTP处理器(全部管理员接口)
type PubOrderHandler struct {
	pubOrderService puborder.Service
	confirmUseCase  *apppuborder.ConfirmPubOrderUseCase
}

// NewPubOrderHandler 创建进货单处理器
func NewPubOrderHandler(pubOrderService puborder.Service, confirmUseCase *apppuborder.ConfirmPubOrderUseCase) *PubOrderHandler {
	return &PubOrderHandler{
		pubOrderService: pubOrderService,
		confirmUseCase:  confirmUseCase,
	}
}

// CreatePubOrder 创建进货单
// @Summary      创建进货单
// @Tags         进货单
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreatePubOrderRequest true "进货信息"
// @Success      200 {object} response.Response{data=dto.PubOrderResponse}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/admin/puborders [post]
func (h *PubOrderHandler) CreatePubOrder(c *gin.Context) {
	var req dto.CreatePubOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	po, err := h.pubOrderService.CreatePublisherOrder(c.Request.Context(), req.ISBN, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToPubOrderResponse(po))
}

// ListPubOrders 进货单列表
// @Summary      进货单列表
// @Description  ?status=pending时只返回待确认的进货单
// @Tags         进货单
// @Produce      json
// @Security     BearerAuth
// @Param        status query string false "pending表示只看待确认"
// @Success      200 {object} response.Response{data=[]dto.PubOrderResponse}
// @Failure      404 {object} response.Response "没有任何进货单"
// @Router       /api/v1/admin/puborders [get]
func (h *PubOrderHandler) ListPubOrders(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		orders []*puborder.PublisherOrder
		err    error
	)
	if c.Query("status") == "pending" {
		orders, err = h.pubOrderService.GetPendingPublisherOrders(ctx)
	} else {
		orders, err = h.pubOrderService.GetAllPublisherOrders(ctx)
	}

	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToPubOrderResponses(orders))
}

// GetPubOrder 查询进货单
// @Summary      进货单详情
// @Tags         进货单
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "进货单ID"
// @Success      200 {object} response.Response{data=dto.PubOrderResponse}
// @Failure      404 {object} response.Response "进货单不存在"
// @Router       /api/v1/admin/puborders/{id} [get]
func (h *PubOrderHandler) GetPubOrder(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	po, err := h.pubOrderService.GetPublisherOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToPubOrderResponse(po))
}

// ConfirmPubOrder 确认到货
// @Summary      确认进货单到货
// @Description  状态翻转为Confirmed,同一事务中库存加上进货数量;重复确认返回400
// @Tags         进货单
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "进货单ID"
// @Success      200 {object} response.Response{data=dto.PubOrderResponse}
// @Failure      400 {object} response.Response "已确认,不能重复确认"
// @Failure      404 {object} response.Response "进货单不存在"
// @Router       /api/v1/admin/puborders/{id}/confirm [post]
func (h *PubOrderHandler) ConfirmPubOrder(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	po, err := h.confirmUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToPubOrderResponse(po))
}
