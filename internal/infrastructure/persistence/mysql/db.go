package mysql

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/bookshop/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 自动迁移表结构（AutoMigrate）
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.Database.DSN()

	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Println("✓ 数据库连接成功")

	// 自动迁移表结构（开发环境）
	// 注意：生产环境应使用专门的迁移工具（如golang-migrate）
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// autoMigrate 自动迁移表结构
// AutoMigrate只会创建表、添加字段,不会删除或修改现有字段
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&UserModel{},
		&PublisherModel{},
		&BookModel{},
		&AuthorModel{},
		&BookAuthorModel{},
		&CartItemModel{},
		&OrderModel{},
		&OrderItemModel{},
		&PublisherOrderModel{},
	)
}

// UserModel GORM用户模型
// 设计说明：
// 1. 这是infrastructure层的数据模型，包含GORM tag
// 2. domain/user/entity.go是领域实体，不依赖GORM
// 3. Repository负责两者之间的转换
type UserModel struct {
	ID        uint      `gorm:"primaryKey"`
	Username  string    `gorm:"uniqueIndex;size:50;not null;comment:登录名"`
	Password  string    `gorm:"size:255;not null;comment:密码（bcrypt加密）"`
	FirstName string    `gorm:"size:50;comment:名"`
	LastName  string    `gorm:"size:50;comment:姓"`
	Email     string    `gorm:"size:100;comment:邮箱"`
	Phone     string    `gorm:"size:20;comment:电话"`
	Address   string    `gorm:"size:255;comment:地址"`
	Role      string    `gorm:"size:20;not null;default:Customer;comment:角色(Customer/Admin)"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (UserModel) TableName() string {
	return "users"
}

// PublisherModel GORM出版社模型
type PublisherModel struct {
	ID      uint   `gorm:"primaryKey"`
	Name    string `gorm:"size:100;not null;comment:出版社名称"`
	Address string `gorm:"size:255;comment:地址"`
	Phone   string `gorm:"size:20;comment:电话"`
}

// TableName 指定表名
func (PublisherModel) TableName() string {
	return "publishers"
}

// BookModel GORM图书模型
// 设计说明:
// 1. ISBN是业务主键,唯一索引保证不重复
// 2. 价格使用int64存储"分"为单位(避免浮点数精度问题)
// 3. PublisherID可为NULL(出版社被删除后外键悬空,不级联)
// 4. Photo为封面图片二进制(mediumblob,上传接口限制5MB)
type BookModel struct {
	ISBN        string    `gorm:"primaryKey;size:20;comment:ISBN号"`
	Title       string    `gorm:"index;size:200;not null;comment:书名"`
	Description string    `gorm:"type:text;comment:图书描述"`
	PubYear     int       `gorm:"comment:出版年份"`
	Price       int64     `gorm:"not null;comment:价格(分)"`
	Category    string    `gorm:"index;size:50;comment:分类"`
	StockQty    int       `gorm:"default:0;comment:库存数量"`
	Threshold   int       `gorm:"default:0;comment:低库存阈值"`
	PublisherID *uint     `gorm:"index;comment:出版社ID"`
	Photo       []byte    `gorm:"type:mediumblob;comment:封面图片"`
	CreatedAt   time.Time `gorm:"comment:创建时间"`
	UpdatedAt   time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// AuthorModel GORM作者模型
type AuthorModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:100;not null;comment:作者姓名"`
}

// TableName 指定表名
func (AuthorModel) TableName() string {
	return "authors"
}

// BookAuthorModel GORM图书-作者联表模型(多对多)
// (isbn, author_id)联合唯一,防止重复关联
type BookAuthorModel struct {
	ID       uint   `gorm:"primaryKey"`
	ISBN     string `gorm:"uniqueIndex:uk_book_author;size:20;not null;comment:图书ISBN"`
	AuthorID uint   `gorm:"uniqueIndex:uk_book_author;not null;comment:作者ID"`
}

// TableName 指定表名
func (BookAuthorModel) TableName() string {
	return "book_authors"
}

// CartItemModel GORM购物车条目模型
// 注意:(customer_id, isbn)不设联合唯一约束,
// 同书合并由Service层的AddItem负责(与原系统行为一致)
type CartItemModel struct {
	ID         uint   `gorm:"primaryKey"`
	CustomerID uint   `gorm:"index;not null;comment:顾客用户ID"`
	ISBN       string `gorm:"size:20;not null;comment:图书ISBN"`
	Quantity   int    `gorm:"not null;comment:数量"`
}

// TableName 指定表名
func (CartItemModel) TableName() string {
	return "cart_items"
}

// OrderModel GORM订单模型
// 1. 与OrderItemModel是一对多关系
// 2. Total冗余存储下单时计算的总金额(分)
// 3. 订单创建后不可变更,没有UpdatedAt
type OrderModel struct {
	ID         uint             `gorm:"primaryKey"`
	CustomerID uint             `gorm:"index;not null;comment:顾客用户ID"`
	OrderDate  time.Time        `gorm:"index;not null;comment:下单时间"`
	Total      int64            `gorm:"not null;comment:订单总金额(分)"`
	CCNumber   string           `gorm:"size:30;comment:支付卡号"`
	CCExpiry   string           `gorm:"size:10;comment:卡有效期"`
	Items      []OrderItemModel `gorm:"foreignKey:OrderID"` // 一对多关联
}

// TableName 指定表名
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel GORM订单明细模型
// UnitPrice记录下单时的价格快照
type OrderItemModel struct {
	ID        uint   `gorm:"primaryKey"`
	OrderID   uint   `gorm:"index;not null;comment:订单ID"`
	ISBN      string `gorm:"index;size:20;not null;comment:图书ISBN"`
	Quantity  int    `gorm:"not null;comment:购买数量"`
	UnitPrice int64  `gorm:"not null;comment:下单时单价(分)"`
}

// TableName 指定表名
func (OrderItemModel) TableName() string {
	return "order_items"
}

// PublisherOrderModel GORM进货单模型
// Status使用tinyint存储(1待确认 2已确认)
type PublisherOrderModel struct {
	ID        uint      `gorm:"primaryKey"`
	ISBN      string    `gorm:"index;size:20;not null;comment:图书ISBN"`
	Quantity  int       `gorm:"not null;comment:进货数量"`
	Status    int       `gorm:"index;type:tinyint;default:1;comment:状态(1待确认2已确认)"`
	OrderDate time.Time `gorm:"not null;comment:下单时间"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (PublisherOrderModel) TableName() string {
	return "publisher_orders"
}
