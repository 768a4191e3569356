//go:build wireinject
// +build wireinject

// Wire依赖注入配置
//
// Wire在编译期生成依赖组装代码:
// Step 1: 编写本文件,定义Providers和Injector
// Step 2: 运行 `wire gen ./cmd/api`
// Step 3: Wire生成wire_gen.go,包含完整的依赖创建代码
//
// main.go里保留了等价的手动组装版本,两者二选一使用
package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	goredis "github.com/redis/go-redis/v9"

	apporder "github.com/xiebiao/bookshop/internal/application/order"
	apppuborder "github.com/xiebiao/bookshop/internal/application/puborder"
	appuser "github.com/xiebiao/bookshop/internal/application/user"
	"github.com/xiebiao/bookshop/internal/domain/author"
	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/cart"
	"github.com/xiebiao/bookshop/internal/domain/order"
	"github.com/xiebiao/bookshop/internal/domain/publisher"
	"github.com/xiebiao/bookshop/internal/domain/puborder"
	"github.com/xiebiao/bookshop/internal/domain/report"
	"github.com/xiebiao/bookshop/internal/domain/user"
	"github.com/xiebiao/bookshop/internal/infrastructure/config"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookshop/internal/interface/http/handler"
	"github.com/xiebiao/bookshop/internal/interface/http/middleware"
	"github.com/xiebiao/bookshop/pkg/jwt"
	"github.com/xiebiao/bookshop/pkg/mq"
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load,
	mysql.NewDB,
	redis.NewClient,
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	mysql.NewUserRepository,
	mysql.NewBookRepository,
	mysql.NewAuthorRepository,
	mysql.NewPublisherRepository,
	mysql.NewCartRepository,
	mysql.NewOrderRepository,
	mysql.NewPubOrderRepository,
	mysql.NewReportRepository,
	mysql.NewTxManager,
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	user.NewService,
	book.NewService,
	author.NewService,
	publisher.NewService,
	cart.NewService,
	order.NewService,
	puborder.NewService,
	report.NewService,
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appuser.NewRegisterUseCase,
	appuser.NewLoginUseCase,
	appuser.NewLogoutUseCase,
	apporder.NewPlaceOrderUseCase,
	apppuborder.NewConfirmPubOrderUseCase,
)

// middlewareSet 中间件依赖
var middlewareSet = wire.NewSet(
	provideJWTManager,
	provideSessionStore,
	middleware.NewAuthMiddleware,
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewUserHandler,
	handler.NewBookHandler,
	handler.NewAuthorHandler,
	handler.NewPublisherHandler,
	handler.NewCartHandler,
	handler.NewOrderHandler,
	handler.NewPubOrderHandler,
	handler.NewReportHandler,
)

// provideJWTManager 从配置创建JWT管理器
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

// provideSessionStore 从Redis客户端创建Session存储
func provideSessionStore(client *goredis.Client) *redis.SessionStore {
	return redis.NewSessionStore(client)
}

// provideMQPublisher 从配置创建消息发布者(未启用时返回nil)
func provideMQPublisher(cfg *config.Config) (*mq.Publisher, error) {
	if !cfg.MQ.Enabled {
		return nil, nil
	}
	return mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, cfg.MQ.ExchangeType)
}

// provideOrderEventPublisher *mq.Publisher → 下单用例的事件发布接口
func provideOrderEventPublisher(p *mq.Publisher) apporder.EventPublisher {
	if p == nil {
		return nil
	}
	return p
}

// providePubOrderEventPublisher *mq.Publisher → 进货确认用例的事件发布接口
func providePubOrderEventPublisher(p *mq.Publisher) apppuborder.EventPublisher {
	if p == nil {
		return nil
	}
	return p
}

// provideOrderTransactor 事务管理器 → 下单用例的事务接口
func provideOrderTransactor(tx *mysql.TxManager) apporder.Transactor {
	return tx
}

// providePubOrderTransactor 事务管理器 → 进货确认用例的事务接口
func providePubOrderTransactor(tx *mysql.TxManager) apppuborder.Transactor {
	return tx
}

// provideGinEngine 创建Gin引擎并注册全部路由
func provideGinEngine(
	cfg *config.Config,
	userHandler *handler.UserHandler,
	bookHandler *handler.BookHandler,
	authorHandler *handler.AuthorHandler,
	publisherHandler *handler.PublisherHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	pubOrderHandler *handler.PubOrderHandler,
	reportHandler *handler.ReportHandler,
	authMiddleware *middleware.AuthMiddleware,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	registerRoutes(r,
		userHandler, bookHandler, authorHandler, publisherHandler,
		cartHandler, orderHandler, pubOrderHandler, reportHandler,
		authMiddleware,
	)
	return r
}

// InitializeApp 初始化整个应用
// Wire会按依赖链自动生成构造顺序:
// *gin.Engine ← Handler ← UseCase/Service ← Repository ← *gorm.DB ← *config.Config
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		middlewareSet,
		handlerSet,
		provideMQPublisher,
		provideOrderEventPublisher,
		providePubOrderEventPublisher,
		provideOrderTransactor,
		providePubOrderTransactor,
		provideGinEngine,
	)
	return nil, nil
}
