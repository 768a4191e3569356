package publisher

import (
	"context"
	"strings"
)

// Service 出版社领域服务
type Service interface {
	// CreatePublisher 创建出版社
	CreatePublisher(ctx context.Context, name, address, phone string) (*Publisher, error)

	// GetPublisherByID 根据ID获取出版社
	GetPublisherByID(ctx context.Context, id uint) (*Publisher, error)

	// GetAllPublishers 获取全部出版社(结果为空时报错)
	GetAllPublishers(ctx context.Context) ([]*Publisher, error)

	// UpdatePublisher 部分更新出版社(nil字段保留原值)
	UpdatePublisher(ctx context.Context, id uint, params UpdateParams) (*Publisher, error)

	// DeletePublisher 删除出版社(不存在时报错)
	DeletePublisher(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

// NewService 创建出版社领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreatePublisher(ctx context.Context, name, address, phone string) (*Publisher, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidName
	}

	p := NewPublisher(strings.TrimSpace(name), address, phone)
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) GetPublisherByID(ctx context.Context, id uint) (*Publisher, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) GetAllPublishers(ctx context.Context) ([]*Publisher, error) {
	publishers, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(publishers) == 0 {
		return nil, ErrNoPublishersFound
	}
	return publishers, nil
}

func (s *service) UpdatePublisher(ctx context.Context, id uint, params UpdateParams) (*Publisher, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Apply(params)
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) DeletePublisher(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
