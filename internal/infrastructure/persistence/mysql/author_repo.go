package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookshop/internal/domain/author"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// authorRepository 作者仓储实现(MySQL)
// 图书-作者联表(book_authors)的维护也在这里
type authorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository 创建作者仓储
func NewAuthorRepository(db *gorm.DB) author.Repository {
	return &authorRepository{db: db}
}

// Create 创建作者
func (r *authorRepository) Create(ctx context.Context, a *author.Author) error {
	model := &AuthorModel{Name: a.Name}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建作者失败")
	}

	a.ID = model.ID
	return nil
}

// FindByID 根据ID查找作者
func (r *authorRepository) FindByID(ctx context.Context, id uint) (*author.Author, error) {
	var model AuthorModel
	err := getDB(ctx, r.db).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, apperrors.Wrap(err, "查询作者失败")
	}

	return &author.Author{ID: model.ID, Name: model.Name}, nil
}

// FindAll 查询全部作者
func (r *authorRepository) FindAll(ctx context.Context) ([]*author.Author, error) {
	var models []AuthorModel
	if err := getDB(ctx, r.db).Order("name ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询作者列表失败")
	}

	authors := make([]*author.Author, len(models))
	for i := range models {
		authors[i] = &author.Author{ID: models[i].ID, Name: models[i].Name}
	}
	return authors, nil
}

// Update 更新作者
func (r *authorRepository) Update(ctx context.Context, a *author.Author) error {
	result := getDB(ctx, r.db).Model(&AuthorModel{}).
		Where("id = ?", a.ID).
		Update("name", a.Name)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新作者失败")
	}
	if result.RowsAffected == 0 {
		return author.ErrAuthorNotFound
	}
	return nil
}

// Delete 删除作者
func (r *authorRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&AuthorModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除作者失败")
	}
	if result.RowsAffected == 0 {
		return author.ErrAuthorNotFound
	}
	return nil
}

// LinkBook 建立图书-作者关联
// 重复关联由联表的唯一约束兜底
func (r *authorRepository) LinkBook(ctx context.Context, isbn string, authorID uint) error {
	model := &BookAuthorModel{ISBN: isbn, AuthorID: authorID}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return author.ErrAlreadyLinked
		}
		return apperrors.Wrap(err, "关联作者失败")
	}
	return nil
}

// UnlinkBook 解除图书-作者关联
// 关联不存在时静默返回nil(删除0行不算错误)
func (r *authorRepository) UnlinkBook(ctx context.Context, isbn string, authorID uint) error {
	err := getDB(ctx, r.db).
		Where("isbn = ? AND author_id = ?", isbn, authorID).
		Delete(&BookAuthorModel{}).Error

	if err != nil {
		return apperrors.Wrap(err, "解除作者关联失败")
	}
	return nil
}

// FindByBookISBN 查询某图书的全部作者
func (r *authorRepository) FindByBookISBN(ctx context.Context, isbn string) ([]*author.Author, error) {
	var models []AuthorModel
	err := getDB(ctx, r.db).Model(&AuthorModel{}).
		Joins("JOIN book_authors ON book_authors.author_id = authors.id").
		Where("book_authors.isbn = ?", isbn).
		Order("authors.name ASC").
		Find(&models).Error

	if err != nil {
		return nil, apperrors.Wrap(err, "查询图书作者失败")
	}

	authors := make([]*author.Author, len(models))
	for i := range models {
		authors[i] = &author.Author{ID: models[i].ID, Name: models[i].Name}
	}
	return authors, nil
}
