package publisher

// Publisher 出版社实体
// 一个出版社对应多本图书(Book.PublisherID外键)
type Publisher struct {
	ID      uint
	Name    string
	Address string
	Phone   string
}

// NewPublisher 创建新出版社
func NewPublisher(name, address, phone string) *Publisher {
	return &Publisher{
		Name:    name,
		Address: address,
		Phone:   phone,
	}
}

// UpdateParams 出版社部分更新参数(nil字段不修改)
type UpdateParams struct {
	Name    *string
	Address *string
	Phone   *string
}

// Apply 叠加部分更新参数
func (p *Publisher) Apply(params UpdateParams) {
	if params.Name != nil {
		p.Name = *params.Name
	}
	if params.Address != nil {
		p.Address = *params.Address
	}
	if params.Phone != nil {
		p.Phone = *params.Phone
	}
}
