package author

import (
	"context"
	"strings"
)

// Service 作者领域服务
type Service interface {
	// CreateAuthor 创建作者
	CreateAuthor(ctx context.Context, name string) (*Author, error)

	// GetAuthorByID 根据ID获取作者
	GetAuthorByID(ctx context.Context, id uint) (*Author, error)

	// GetAllAuthors 获取全部作者(结果为空时报错,保留原API约定)
	GetAllAuthors(ctx context.Context) ([]*Author, error)

	// UpdateAuthor 更新作者名
	UpdateAuthor(ctx context.Context, id uint, name string) (*Author, error)

	// DeleteAuthor 删除作者(不存在时报错)
	DeleteAuthor(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

// NewService 创建作者领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateAuthor(ctx context.Context, name string) (*Author, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidName
	}

	a := NewAuthor(strings.TrimSpace(name))
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) GetAuthorByID(ctx context.Context, id uint) (*Author, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) GetAllAuthors(ctx context.Context) ([]*Author, error) {
	authors, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(authors) == 0 {
		return nil, ErrNoAuthorsFound
	}
	return authors, nil
}

func (s *service) UpdateAuthor(ctx context.Context, id uint, name string) (*Author, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidName
	}

	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	a.Name = strings.TrimSpace(name)
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) DeleteAuthor(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
