package book

import (
	"context"
	"net/http"
	"strings"

	"github.com/xiebiao/bookshop/internal/domain/author"
	"github.com/xiebiao/bookshop/internal/domain/publisher"
)

// 封面图片上传限制
const (
	MaxPhotoBytes = 5 * 1024 * 1024 // 5MB
)

// Service 图书领域服务
// 设计说明:
// 1. 封装图书相关的业务规则校验(必填字段、外键存在性、封面格式)
// 2. 列表/搜索类接口保留原系统"无结果即报错"的约定
// 3. 作者关联(book_authors联表)的编排也在这里,联表操作本身由author.Repository承担
type Service interface {
	// CreateBook 创建图书
	// 业务规则:ISBN/书名必填,价格>0,库存>=0,PublisherID非空时出版社必须存在
	CreateBook(ctx context.Context, b *Book) error

	// GetBookByISBN 根据ISBN获取图书
	GetBookByISBN(ctx context.Context, isbn string) (*Book, error)

	// GetAllBooks 获取全部图书
	GetAllBooks(ctx context.Context) ([]*Book, error)

	// GetBooksByCategory 按分类查询
	GetBooksByCategory(ctx context.Context, category string) ([]*Book, error)

	// SearchBooksByTitle 按书名模糊查询
	SearchBooksByTitle(ctx context.Context, title string) ([]*Book, error)

	// GetLowStockBooks 查询低库存图书(库存严格小于阈值)
	GetLowStockBooks(ctx context.Context) ([]*Book, error)

	// SearchBooksAdvanced 组合条件查询
	SearchBooksAdvanced(ctx context.Context, params SearchParams) ([]*Book, error)

	// UpdateBook 部分更新图书(nil字段保留原值,last-write-wins)
	UpdateBook(ctx context.Context, isbn string, params UpdateParams) (*Book, error)

	// DeleteBook 删除图书(不存在时报错)
	DeleteBook(ctx context.Context, isbn string) error

	// UploadPhoto 上传封面图片
	// 业务规则:非空、<=5MB、仅jpeg/png/webp(按字节嗅探,不信任Content-Type)
	UploadPhoto(ctx context.Context, isbn string, photo []byte) error

	// AddBookAuthors 为图书关联作者
	// 图书与每个作者都必须存在;不做重复关联检查
	AddBookAuthors(ctx context.Context, isbn string, authorIDs []uint) error

	// RemoveBookAuthors 解除图书的作者关联
	// 关联不存在时为静默no-op(原系统策略)
	RemoveBookAuthors(ctx context.Context, isbn string, authorIDs []uint) error

	// GetBookAuthors 查询图书的全部作者
	GetBookAuthors(ctx context.Context, isbn string) ([]*author.Author, error)
}

type service struct {
	repo          Repository
	publisherRepo publisher.Repository
	authorRepo    author.Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository, publisherRepo publisher.Repository, authorRepo author.Repository) Service {
	return &service{
		repo:          repo,
		publisherRepo: publisherRepo,
		authorRepo:    authorRepo,
	}
}

func (s *service) CreateBook(ctx context.Context, b *Book) error {
	if strings.TrimSpace(b.ISBN) == "" {
		return ErrInvalidISBN
	}
	if strings.TrimSpace(b.Title) == "" {
		return ErrInvalidTitle
	}
	if b.Price <= 0 {
		return ErrInvalidPrice
	}
	if b.StockQty < 0 || b.Threshold < 0 {
		return ErrInvalidStock
	}

	// 外键存在性检查:出版社
	if b.PublisherID != nil {
		if _, err := s.publisherRepo.FindByID(ctx, *b.PublisherID); err != nil {
			return err
		}
	}

	return s.repo.Create(ctx, b)
}

func (s *service) GetBookByISBN(ctx context.Context, isbn string) (*Book, error) {
	return s.repo.FindByISBN(ctx, isbn)
}

func (s *service) GetAllBooks(ctx context.Context) ([]*Book, error) {
	return s.nonEmpty(s.repo.FindAll(ctx))
}

func (s *service) GetBooksByCategory(ctx context.Context, category string) ([]*Book, error) {
	return s.nonEmpty(s.repo.FindByCategory(ctx, category))
}

func (s *service) SearchBooksByTitle(ctx context.Context, title string) ([]*Book, error) {
	return s.nonEmpty(s.repo.SearchByTitle(ctx, title))
}

func (s *service) GetLowStockBooks(ctx context.Context) ([]*Book, error) {
	return s.nonEmpty(s.repo.FindLowStock(ctx))
}

func (s *service) SearchBooksAdvanced(ctx context.Context, params SearchParams) ([]*Book, error) {
	return s.nonEmpty(s.repo.Search(ctx, params))
}

func (s *service) UpdateBook(ctx context.Context, isbn string, params UpdateParams) (*Book, error) {
	b, err := s.repo.FindByISBN(ctx, isbn)
	if err != nil {
		return nil, err
	}

	if params.Price != nil && *params.Price <= 0 {
		return nil, ErrInvalidPrice
	}
	if params.StockQty != nil && *params.StockQty < 0 {
		return nil, ErrInvalidStock
	}
	if params.PublisherID != nil {
		if _, err := s.publisherRepo.FindByID(ctx, *params.PublisherID); err != nil {
			return nil, err
		}
	}

	b.Apply(params)
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) DeleteBook(ctx context.Context, isbn string) error {
	return s.repo.Delete(ctx, isbn)
}

func (s *service) UploadPhoto(ctx context.Context, isbn string, photo []byte) error {
	if len(photo) == 0 || int64(len(photo)) > MaxPhotoBytes {
		return ErrInvalidPhoto
	}
	if !isAllowedImage(photo) {
		return ErrInvalidPhoto
	}

	// 图书必须存在
	if _, err := s.repo.FindByISBN(ctx, isbn); err != nil {
		return err
	}

	return s.repo.UpdatePhoto(ctx, isbn, photo)
}

func (s *service) AddBookAuthors(ctx context.Context, isbn string, authorIDs []uint) error {
	if _, err := s.repo.FindByISBN(ctx, isbn); err != nil {
		return err
	}

	for _, id := range authorIDs {
		if _, err := s.authorRepo.FindByID(ctx, id); err != nil {
			return err
		}
		if err := s.authorRepo.LinkBook(ctx, isbn, id); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) RemoveBookAuthors(ctx context.Context, isbn string, authorIDs []uint) error {
	if _, err := s.repo.FindByISBN(ctx, isbn); err != nil {
		return err
	}

	for _, id := range authorIDs {
		if err := s.authorRepo.UnlinkBook(ctx, isbn, id); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) GetBookAuthors(ctx context.Context, isbn string) ([]*author.Author, error) {
	if _, err := s.repo.FindByISBN(ctx, isbn); err != nil {
		return nil, err
	}
	return s.authorRepo.FindByBookISBN(ctx, isbn)
}

// nonEmpty 列表查询的统一空结果处理
func (s *service) nonEmpty(books []*Book, err error) ([]*Book, error) {
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, ErrNoBooksFound
	}
	return books, nil
}

// isAllowedImage 按文件头嗅探图片格式
// 仅允许jpeg/png/webp(不信任客户端Content-Type)
func isAllowedImage(data []byte) bool {
	switch http.DetectContentType(data) {
	case "image/jpeg", "image/png", "image/webp":
		return true
	default:
		return false
	}
}
