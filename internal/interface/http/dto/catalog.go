package dto

import (
	"github.com/xiebiao/bookshop/internal/domain/author"
	"github.com/xiebiao/bookshop/internal/domain/publisher"
)

// =========================================
// 作者相关DTO
// =========================================

// AuthorRequest HTTP创建/更新作者请求
type AuthorRequest struct {
	Name string `json:"name" binding:"required,max=100" example:"威廉·肯尼迪"`
}

// AuthorResponse HTTP作者响应
type AuthorResponse struct {
	ID   uint   `json:"id" example:"1"`
	Name string `json:"name" example:"威廉·肯尼迪"`
}

// ToAuthorResponse 领域实体 → HTTP响应
func ToAuthorResponse(a *author.Author) *AuthorResponse {
	return &AuthorResponse{ID: a.ID, Name: a.Name}
}

// ToAuthorResponses 领域实体列表 → HTTP响应列表
func ToAuthorResponses(authors []*author.Author) []*AuthorResponse {
	result := make([]*AuthorResponse, len(authors))
	for i, a := range authors {
		result[i] = ToAuthorResponse(a)
	}
	return result
}

// =========================================
// 出版社相关DTO
// =========================================

// CreatePublisherRequest HTTP创建出版社请求
type CreatePublisherRequest struct {
	Name    string `json:"name" binding:"required,max=100" example:"人民邮电出版社"`
	Address string `json:"address" binding:"max=255" example:"北京市丰台区成寿寺路11号"`
	Phone   string `json:"phone" binding:"max=20" example:"010-81055256"`
}

// UpdatePublisherRequest HTTP更新出版社请求(部分更新)
type UpdatePublisherRequest struct {
	Name    *string `json:"name" binding:"omitempty,max=100"`
	Address *string `json:"address" binding:"omitempty,max=255"`
	Phone   *string `json:"phone" binding:"omitempty,max=20"`
}

// ToUpdateParams HTTP请求 → 领域层更新参数
func (r *UpdatePublisherRequest) ToUpdateParams() publisher.UpdateParams {
	return publisher.UpdateParams{
		Name:    r.Name,
		Address: r.Address,
		Phone:   r.Phone,
	}
}

// PublisherResponse HTTP出版社响应
type PublisherResponse struct {
	ID      uint   `json:"id" example:"1"`
	Name    string `json:"name" example:"人民邮电出版社"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// ToPublisherResponse 领域实体 → HTTP响应
func ToPublisherResponse(p *publisher.Publisher) *PublisherResponse {
	return &PublisherResponse{
		ID:      p.ID,
		Name:    p.Name,
		Address: p.Address,
		Phone:   p.Phone,
	}
}

// ToPublisherResponses 领域实体列表 → HTTP响应列表
func ToPublisherResponses(publishers []*publisher.Publisher) []*PublisherResponse {
	result := make([]*PublisherResponse, len(publishers))
	for i, p := range publishers {
		result[i] = ToPublisherResponse(p)
	}
	return result
}
