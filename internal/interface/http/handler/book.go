package handler

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/response"
)

// BookHandler 图书HTTP处理器
// 查询接口对所有人开放,写接口要求管理员(路由层控制)
type BookHandler struct {
	bookService book.Service
}

// NewBookHandler 创建图书处理器
func NewBookHandler(bookService book.Service) *BookHandler {
	return &BookHandler{bookService: bookService}
}

// CreateBook 创建图书
// @Summary      创建图书
// @Description  管理员录入新图书
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateBookRequest true "图书信息"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      400 {object} response.Response "参数错误或ISBN已存在"
// @Failure      403 {object} response.Response "非管理员"
// @Router       /api/v1/books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	b := book.NewBook(req.ISBN, req.Title, req.Description, req.PubYear,
		req.Price, req.Category, req.StockQty, req.Threshold, req.PublisherID)

	if err := h.bookService.CreateBook(c.Request.Context(), b); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToBookResponse(b))
}

// GetBook 查询单本图书
// @Summary      图书详情
// @Tags         图书
// @Produce      json
// @Param        isbn path string true "ISBN"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{isbn} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	b, err := h.bookService.GetBookByISBN(c.Request.Context(), c.Param("isbn"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToBookResponse(b))
}

// ListBooks 图书列表(可按分类/书名过滤)
// @Summary      图书列表
// @Description  支持?category=与?title=过滤,无结果返回404
// @Tags         图书
// @Produce      json
// @Param        category query string false "分类"
// @Param        title query string false "书名关键词"
// @Success      200 {object} response.Response{data=[]dto.BookResponse}
// @Failure      404 {object} response.Response "没有符合条件的图书"
// @Router       /api/v1/books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		books []*book.Book
		err   error
	)

	switch {
	case c.Query("category") != "":
		books, err = h.bookService.GetBooksByCategory(ctx, c.Query("category"))
	case c.Query("title") != "":
		books, err = h.bookService.SearchBooksByTitle(ctx, c.Query("title"))
	default:
		books, err = h.bookService.GetAllBooks(ctx)
	}

	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToBookResponses(books))
}

// SearchBooks 组合条件查询
// @Summary      组合查询图书
// @Description  书名/分类/作者名/价格区间/年份区间任意组合
// @Tags         图书
// @Produce      json
// @Param        title query string false "书名关键词"
// @Param        category query string false "分类"
// @Param        author query string false "作者名关键词"
// @Param        min_price query int false "最低价(分)"
// @Param        max_price query int false "最高价(分)"
// @Param        min_year query int false "最早出版年份"
// @Param        max_year query int false "最晚出版年份"
// @Success      200 {object} response.Response{data=[]dto.BookResponse}
// @Failure      404 {object} response.Response "没有符合条件的图书"
// @Router       /api/v1/books/search [get]
func (h *BookHandler) SearchBooks(c *gin.Context) {
	var req dto.SearchBooksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	books, err := h.bookService.SearchBooksAdvanced(c.Request.Context(), req.ToSearchParams())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToBookResponses(books))
}

// ListLowStockBooks 低库存图书(管理员补货用)
// @Summary      低库存图书列表
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=[]dto.BookResponse}
// @Failure      404 {object} response.Response "没有低库存图书"
// @Router       /api/v1/admin/books/low-stock [get]
func (h *BookHandler) ListLowStockBooks(c *gin.Context) {
	books, err := h.bookService.GetLowStockBooks(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToBookResponses(books))
}

// UpdateBook 更新图书(部分更新)
// @Summary      更新图书
// @Description  只更新请求体中出现的字段
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        isbn path string true "ISBN"
// @Param        request body dto.UpdateBookRequest true "更新字段"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{isbn} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	b, err := h.bookService.UpdateBook(c.Request.Context(), c.Param("isbn"), req.ToUpdateParams())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToBookResponse(b))
}

// DeleteBook 删除图书
// @Summary      删除图书
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        isbn path string true "ISBN"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{isbn} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	if err := h.bookService.DeleteBook(c.Request.Context(), c.Param("isbn")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// UploadPhoto 上传封面图片
// @Summary      上传图书封面
// @Description  multipart表单,字段名photo,支持JPG/PNG/WEBP且不超过5MB
// @Tags         图书
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        isbn path string true "ISBN"
// @Param        photo formData file true "封面图片"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response "图片不合法"
// @Router       /api/v1/books/{isbn}/photo [post]
func (h *BookHandler) UploadPhoto(c *gin.Context) {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "缺少photo文件字段")
		return
	}

	// 超限的文件在读入内存前就拒绝
	if fileHeader.Size > book.MaxPhotoBytes {
		response.Error(c, book.ErrInvalidPhoto)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, apperrors.Wrap(err, "读取上传文件失败"))
		return
	}
	defer file.Close()

	photo, err := io.ReadAll(file)
	if err != nil {
		response.Error(c, apperrors.Wrap(err, "读取上传文件失败"))
		return
	}

	if err := h.bookService.UploadPhoto(c.Request.Context(), c.Param("isbn"), photo); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// GetPhoto 获取封面图片
// @Summary      获取图书封面
// @Tags         图书
// @Produce      image/jpeg
// @Param        isbn path string true "ISBN"
// @Success      200 {file} binary
// @Failure      404 {object} response.Response "图书不存在或无封面"
// @Router       /api/v1/books/{isbn}/photo [get]
func (h *BookHandler) GetPhoto(c *gin.Context) {
	b, err := h.bookService.GetBookByISBN(c.Request.Context(), c.Param("isbn"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if len(b.Photo) == 0 {
		response.Error(c, book.ErrBookNotFound)
		return
	}

	// 按真实内容嗅探Content-Type,上传时已限制为jpeg/png/webp
	c.Data(200, detectImageType(b.Photo), b.Photo)
}

// GetBookAuthors 查询图书作者
// @Summary      图书作者列表
// @Tags         图书
// @Produce      json
// @Param        isbn path string true "ISBN"
// @Success      200 {object} response.Response{data=[]dto.AuthorResponse}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{isbn}/authors [get]
func (h *BookHandler) GetBookAuthors(c *gin.Context) {
	authors, err := h.bookService.GetBookAuthors(c.Request.Context(), c.Param("isbn"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToAuthorResponses(authors))
}

// AddBookAuthors 添加图书作者关联
// @Summary      添加图书作者
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        isbn path string true "ISBN"
// @Param        request body dto.BookAuthorsRequest true "作者ID列表"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "图书或作者不存在"
// @Router       /api/v1/books/{isbn}/authors [post]
func (h *BookHandler) AddBookAuthors(c *gin.Context) {
	var req dto.BookAuthorsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	if err := h.bookService.AddBookAuthors(c.Request.Context(), c.Param("isbn"), req.AuthorIDs); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// RemoveBookAuthors 移除图书作者关联
// @Summary      移除图书作者
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        isbn path string true "ISBN"
// @Param        request body dto.BookAuthorsRequest true "作者ID列表"
// @Success      200 {object} response.Response
// @Router       /api/v1/books/{isbn}/authors [delete]
func (h *BookHandler) RemoveBookAuthors(c *gin.Context) {
	var req dto.BookAuthorsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	if err := h.bookService.RemoveBookAuthors(c.Request.Context(), c.Param("isbn"), req.AuthorIDs); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// detectImageType 嗅探图片MIME类型
func detectImageType(data []byte) string {
	if len(data) >= 4 {
		switch {
		case data[0] == 0x89 && data[1] == 'P' && data[2] == 'N' && data[3] == 'G':
			return "image/png"
		case data[0] == 'R' && data[1] == 'I' && data[2] == 'F' && data[3] == 'F':
			return "image/webp"
		}
	}
	return "image/jpeg"
}
