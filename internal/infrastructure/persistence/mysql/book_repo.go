package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/bookshop/internal/domain/book"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// bookRepository 图书仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 处理数据库特定的错误(如ISBN重复),转换为业务错误
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return book.ErrISBNDuplicate
		}
		return apperrors.Wrap(err, "创建图书失败")
	}

	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByISBN 根据ISBN查找图书
func (r *bookRepository) FindByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	var model BookModel
	err := getDB(ctx, r.db).Where("isbn = ?", isbn).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(&model), nil
}

// FindAll 查询全部图书
func (r *bookRepository) FindAll(ctx context.Context) ([]*book.Book, error) {
	var models []BookModel
	if err := getDB(ctx, r.db).Order("title ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询图书列表失败")
	}
	return toBookEntities(models), nil
}

// FindByCategory 按分类查询
func (r *bookRepository) FindByCategory(ctx context.Context, category string) ([]*book.Book, error) {
	var models []BookModel
	err := getDB(ctx, r.db).
		Where("category = ?", category).
		Order("title ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "按分类查询图书失败")
	}
	return toBookEntities(models), nil
}

// SearchByTitle 按书名模糊查询
func (r *bookRepository) SearchByTitle(ctx context.Context, title string) ([]*book.Book, error) {
	var models []BookModel
	err := getDB(ctx, r.db).
		Where("title LIKE ?", "%"+title+"%").
		Order("title ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "按书名查询图书失败")
	}
	return toBookEntities(models), nil
}

// FindLowStock 查询低库存图书(stock_qty < threshold,严格小于)
func (r *bookRepository) FindLowStock(ctx context.Context) ([]*book.Book, error) {
	var models []BookModel
	err := getDB(ctx, r.db).
		Where("stock_qty < threshold").
		Order("stock_qty ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询低库存图书失败")
	}
	return toBookEntities(models), nil
}

// Search 组合条件查询
// 作者名条件需要走book_authors/authors联表
func (r *bookRepository) Search(ctx context.Context, params book.SearchParams) ([]*book.Book, error) {
	query := getDB(ctx, r.db).Model(&BookModel{})

	if params.Title != "" {
		query = query.Where("books.title LIKE ?", "%"+params.Title+"%")
	}
	if params.Category != "" {
		query = query.Where("books.category = ?", params.Category)
	}
	if params.AuthorName != "" {
		// 联表过滤,DISTINCT防止一本书多位作者命中时重复
		query = query.
			Joins("JOIN book_authors ON book_authors.isbn = books.isbn").
			Joins("JOIN authors ON authors.id = book_authors.author_id").
			Where("authors.name LIKE ?", "%"+params.AuthorName+"%").
			Distinct("books.*")
	}
	if params.MinPrice != nil {
		query = query.Where("books.price >= ?", *params.MinPrice)
	}
	if params.MaxPrice != nil {
		query = query.Where("books.price <= ?", *params.MaxPrice)
	}
	if params.MinYear != nil {
		query = query.Where("books.pub_year >= ?", *params.MinYear)
	}
	if params.MaxYear != nil {
		query = query.Where("books.pub_year <= ?", *params.MaxYear)
	}

	var models []BookModel
	if err := query.Order("books.title ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "组合查询图书失败")
	}
	return toBookEntities(models), nil
}

// Update 更新图书信息(全字段保存)
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)

	// Save按主键(ISBN)更新所有字段
	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		return apperrors.Wrap(err, "更新图书失败")
	}

	b.UpdatedAt = model.UpdatedAt
	return nil
}

// UpdatePhoto 更新封面图片
func (r *bookRepository) UpdatePhoto(ctx context.Context, isbn string, photo []byte) error {
	result := getDB(ctx, r.db).Model(&BookModel{}).
		Where("isbn = ?", isbn).
		Update("photo", photo)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新封面失败")
	}
	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

// Delete 删除图书
func (r *bookRepository) Delete(ctx context.Context, isbn string) error {
	result := getDB(ctx, r.db).Where("isbn = ?", isbn).Delete(&BookModel{})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除图书失败")
	}
	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

// LockByISBN 悲观锁查询图书(SELECT FOR UPDATE)
// 必须在事务上下文中调用,否则锁随语句结束立即释放
func (r *bookRepository) LockByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	var model BookModel
	err := getDB(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("isbn = ?", isbn).
		First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "锁定图书失败")
	}

	return toBookEntity(&model), nil
}

// UpdateStock 更新库存(原子操作)
// UPDATE books SET stock_qty = stock_qty + delta
// WHERE isbn = ? AND stock_qty + delta >= 0
func (r *bookRepository) UpdateStock(ctx context.Context, isbn string, delta int) error {
	result := getDB(ctx, r.db).Model(&BookModel{}).
		Where("isbn = ?", isbn).
		Where("stock_qty + ? >= 0", delta). // 防止库存为负
		Update("stock_qty", gorm.Expr("stock_qty + ?", delta))

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新库存失败")
	}

	if result.RowsAffected == 0 {
		// 可能是图书不存在,或者库存不足,再查一次确定原因
		var model BookModel
		if err := getDB(ctx, r.db).Where("isbn = ?", isbn).First(&model).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return book.ErrBookNotFound
			}
			return apperrors.Wrap(err, "查询图书失败")
		}
		return book.ErrInvalidStock
	}

	return nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toBookModel 领域实体 → GORM模型
func toBookModel(b *book.Book) *BookModel {
	return &BookModel{
		ISBN:        b.ISBN,
		Title:       b.Title,
		Description: b.Description,
		PubYear:     b.PubYear,
		Price:       b.Price,
		Category:    b.Category,
		StockQty:    b.StockQty,
		Threshold:   b.Threshold,
		PublisherID: b.PublisherID,
		Photo:       b.Photo,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// toBookEntity GORM模型 → 领域实体
func toBookEntity(model *BookModel) *book.Book {
	return &book.Book{
		ISBN:        model.ISBN,
		Title:       model.Title,
		Description: model.Description,
		PubYear:     model.PubYear,
		Price:       model.Price,
		Category:    model.Category,
		StockQty:    model.StockQty,
		Threshold:   model.Threshold,
		PublisherID: model.PublisherID,
		Photo:       model.Photo,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func toBookEntities(models []BookModel) []*book.Book {
	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books
}
