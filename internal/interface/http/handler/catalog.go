package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookshop/internal/domain/author"
	"github.com/xiebiao/bookshop/internal/domain/publisher"
	"github.com/xiebiao/bookshop/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/response"
)

// AuthorHandler 作者HTTP处理器
type AuthorHandler struct {
	authorService author.Service
}

// NewAuthorHandler 创建作者处理器
func NewAuthorHandler(authorService author.Service) *AuthorHandler {
	return &AuthorHandler{authorService: authorService}
}

// CreateAuthor 创建作者
// @Summary      创建作者
// @Tags         作者
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.AuthorRequest true "作者信息"
// @Success      200 {object} response.Response{data=dto.AuthorResponse}
// @Router       /api/v1/authors [post]
func (h *AuthorHandler) CreateAuthor(c *gin.Context) {
	var req dto.AuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	a, err := h.authorService.CreateAuthor(c.Request.Context(), req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToAuthorResponse(a))
}

// GetAuthor 查询作者
// @Summary      作者详情
// @Tags         作者
// @Produce      json
// @Param        id path int true "作者ID"
// @Success      200 {object} response.Response{data=dto.AuthorResponse}
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /api/v1/authors/{id} [get]
func (h *AuthorHandler) GetAuthor(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	a, err := h.authorService.GetAuthorByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToAuthorResponse(a))
}

// ListAuthors 作者列表
// @Summary      作者列表
// @Tags         作者
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.AuthorResponse}
// @Failure      404 {object} response.Response "没有任何作者"
// @Router       /api/v1/authors [get]
func (h *AuthorHandler) ListAuthors(c *gin.Context) {
	authors, err := h.authorService.GetAllAuthors(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToAuthorResponses(authors))
}

// UpdateAuthor 更新作者
// @Summary      更新作者
// @Tags         作者
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "作者ID"
// @Param        request body dto.AuthorRequest true "作者信息"
// @Success      200 {object} response.Response{data=dto.AuthorResponse}
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /api/v1/authors/{id} [put]
func (h *AuthorHandler) UpdateAuthor(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.AuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	a, err := h.authorService.UpdateAuthor(c.Request.Context(), id, req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToAuthorResponse(a))
}

// DeleteAuthor 删除作者
// @Summary      删除作者
// @Tags         作者
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "作者ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /api/v1/authors/{id} [delete]
func (h *AuthorHandler) DeleteAuthor(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.authorService.DeleteAuthor(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// PublisherHandler 出版社HTTP处理器
type PublisherHandler struct {
	publisherService publisher.Service
}

// NewPublisherHandler 创建出版社处理器
func NewPublisherHandler(publisherService publisher.Service) *PublisherHandler {
	return &PublisherHandler{publisherService: publisherService}
}

// CreatePublisher 创建出版社
// @Summary      创建出版社
// @Tags         出版社
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreatePublisherRequest true "出版社信息"
// @Success      200 {object} response.Response{data=dto.PublisherResponse}
// @Router       /api/v1/publishers [post]
func (h *PublisherHandler) CreatePublisher(c *gin.Context) {
	var req dto.CreatePublisherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	p, err := h.publisherService.CreatePublisher(c.Request.Context(), req.Name, req.Address, req.Phone)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToPublisherResponse(p))
}

// GetPublisher 查询出版社
// @Summary      出版社详情
// @Tags         出版社
// @Produce      json
// @Param        id path int true "出版社ID"
// @Success      200 {object} response.Response{data=dto.PublisherResponse}
// @Failure      404 {object} response.Response "出版社不存在"
// @Router       /api/v1/publishers/{id} [get]
func (h *PublisherHandler) GetPublisher(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	p, err := h.publisherService.GetPublisherByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToPublisherResponse(p))
}

// ListPublishers 出版社列表
// @Summary      出版社列表
// @Tags         出版社
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.PublisherResponse}
// @Failure      404 {object} response.Response "没有任何出版社"
// @Router       /api/v1/publishers [get]
func (h *PublisherHandler) ListPublishers(c *gin.Context) {
	publishers, err := h.publisherService.GetAllPublishers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToPublisherResponses(publishers))
}

// UpdatePublisher 更新出版社(部分更新)
// @Summary      更新出版社
// @Tags         出版社
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "出版社ID"
// @Param        request body dto.UpdatePublisherRequest true "更新字段"
// @Success      200 {object} response.Response{data=dto.PublisherResponse}
// @Failure      404 {object} response.Response "出版社不存在"
// @Router       /api/v1/publishers/{id} [put]
func (h *PublisherHandler) UpdatePublisher(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdatePublisherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	p, err := h.publisherService.UpdatePublisher(c.Request.Context(), id, req.ToUpdateParams())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToPublisherResponse(p))
}

// DeletePublisher 删除出版社
// @Summary      删除出版社
// @Description  不级联删除图书,相关图书的出版社字段悬空
// @Tags         出版社
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "出版社ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "出版社不存在"
// @Router       /api/v1/publishers/{id} [delete]
func (h *PublisherHandler) DeletePublisher(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.publisherService.DeletePublisher(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// parseUintParam 解析路径中的数字ID参数
func parseUintParam(c *gin.Context, name string) (uint, error) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, apperrors.New(apperrors.ErrCodeInvalidParams, "无效的"+name+"参数")
	}
	return uint(value), nil
}
