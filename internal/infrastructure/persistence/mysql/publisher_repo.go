package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookshop/internal/domain/publisher"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// publisherRepository 出版社仓储实现(MySQL)
type publisherRepository struct {
	db *gorm.DB
}

// NewPublisherRepository 创建出版社仓储
func NewPublisherRepository(db *gorm.DB) publisher.Repository {
	return &publisherRepository{db: db}
}

// Create 创建出版社
func (r *publisherRepository) Create(ctx context.Context, p *publisher.Publisher) error {
	model := &PublisherModel{
		Name:    p.Name,
		Address: p.Address,
		Phone:   p.Phone,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建出版社失败")
	}

	p.ID = model.ID
	return nil
}

// FindByID 根据ID查找出版社
func (r *publisherRepository) FindByID(ctx context.Context, id uint) (*publisher.Publisher, error) {
	var model PublisherModel
	err := getDB(ctx, r.db).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, publisher.ErrPublisherNotFound
		}
		return nil, apperrors.Wrap(err, "查询出版社失败")
	}

	return toPublisherEntity(&model), nil
}

// FindAll 查询全部出版社
func (r *publisherRepository) FindAll(ctx context.Context) ([]*publisher.Publisher, error) {
	var models []PublisherModel
	if err := getDB(ctx, r.db).Order("name ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询出版社列表失败")
	}

	publishers := make([]*publisher.Publisher, len(models))
	for i := range models {
		publishers[i] = toPublisherEntity(&models[i])
	}
	return publishers, nil
}

// Update 更新出版社
func (r *publisherRepository) Update(ctx context.Context, p *publisher.Publisher) error {
	model := &PublisherModel{
		ID:      p.ID,
		Name:    p.Name,
		Address: p.Address,
		Phone:   p.Phone,
	}

	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		return apperrors.Wrap(err, "更新出版社失败")
	}
	return nil
}

// Delete 删除出版社
// 不级联处理图书的PublisherID(外键列悬空为NULL)
func (r *publisherRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&PublisherModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除出版社失败")
	}
	if result.RowsAffected == 0 {
		return publisher.ErrPublisherNotFound
	}
	return nil
}

// toPublisherEntity GORM模型 → 领域实体
func toPublisherEntity(model *PublisherModel) *publisher.Publisher {
	return &publisher.Publisher{
		ID:      model.ID,
		Name:    model.Name,
		Address: model.Address,
		Phone:   model.Phone,
	}
}
