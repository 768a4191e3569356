package author

// Author 作者实体
// 与图书为多对多关系,关联关系存储在book_authors联表
type Author struct {
	ID   uint
	Name string
}

// NewAuthor 创建新作者
func NewAuthor(name string) *Author {
	return &Author{Name: name}
}
