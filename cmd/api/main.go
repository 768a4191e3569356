package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

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
	"github.com/xiebiao/bookshop/pkg/metrics"
	"github.com/xiebiao/bookshop/pkg/mq"
	"github.com/xiebiao/bookshop/pkg/response"
)

// @title           网上书店API
// @version         1.0
// @description     图书、购物车、订单、进货与销售报表的后端服务
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization

// main 主程序入口(手动依赖注入,wire.go提供编译期生成版本)
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	fmt.Printf("✓ 配置加载成功\n")
	fmt.Printf("  - 服务端口: %d\n", cfg.Server.Port)
	fmt.Printf("  - 运行模式: %s\n", cfg.Server.Mode)
	fmt.Printf("  - 数据库: %s:%d/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	fmt.Printf("  - Redis: %s\n", cfg.Redis.Addr())

	// 2. 初始化数据库与Redis
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatalf("初始化Redis失败: %v", err)
	}

	// 3. 消息队列(可选,未部署RabbitMQ时publisher为nil)
	var mqPublisher *mq.Publisher
	if cfg.MQ.Enabled {
		mqPublisher, err = mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, cfg.MQ.ExchangeType)
		if err != nil {
			log.Fatalf("初始化消息队列失败: %v", err)
		}
		defer mqPublisher.Close()
	}

	// 4. 注册Prometheus指标
	metrics.InitMetrics()

	// 5. 依赖注入(手动组装)
	// 依赖链:Repository ← Service ← UseCase ← Handler

	// 基础设施层
	userRepo := mysql.NewUserRepository(db)
	bookRepo := mysql.NewBookRepository(db)
	authorRepo := mysql.NewAuthorRepository(db)
	publisherRepo := mysql.NewPublisherRepository(db)
	cartRepo := mysql.NewCartRepository(db)
	orderRepo := mysql.NewOrderRepository(db)
	pubOrderRepo := mysql.NewPubOrderRepository(db)
	reportRepo := mysql.NewReportRepository(db)
	txManager := mysql.NewTxManager(db)
	sessionStore := redis.NewSessionStore(redisClient)
	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)

	// 领域层
	userService := user.NewService(userRepo)
	bookService := book.NewService(bookRepo, publisherRepo, authorRepo)
	authorService := author.NewService(authorRepo)
	publisherService := publisher.NewService(publisherRepo)
	cartService := cart.NewService(cartRepo, bookRepo)
	orderService := order.NewService(orderRepo)
	pubOrderService := puborder.NewService(pubOrderRepo, bookRepo)
	reportService := report.NewService(reportRepo, bookRepo)

	// 应用层
	registerUseCase := appuser.NewRegisterUseCase(userService)
	loginUseCase := appuser.NewLoginUseCase(userService, jwtManager, sessionStore)
	logoutUseCase := appuser.NewLogoutUseCase(sessionStore)
	placeOrderUseCase := apporder.NewPlaceOrderUseCase(orderRepo, cartRepo, bookRepo, userRepo, txManager, publisherOrNil(mqPublisher))
	confirmUseCase := apppuborder.NewConfirmPubOrderUseCase(pubOrderRepo, bookRepo, txManager, publisherOrNil2(mqPublisher))

	// 接口层
	userHandler := handler.NewUserHandler(registerUseCase, loginUseCase, logoutUseCase, userService)
	bookHandler := handler.NewBookHandler(bookService)
	authorHandler := handler.NewAuthorHandler(authorService)
	publisherHandler := handler.NewPublisherHandler(publisherService)
	cartHandler := handler.NewCartHandler(cartService)
	orderHandler := handler.NewOrderHandler(placeOrderUseCase, orderService)
	pubOrderHandler := handler.NewPubOrderHandler(pubOrderService, confirmUseCase)
	reportHandler := handler.NewReportHandler(reportService)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, sessionStore)

	// 6. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// 前端SPA跨域
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// HTTP指标采集
	r.Use(metrics.GinMiddleware())

	// 7. 注册路由
	registerRoutes(r,
		userHandler, bookHandler, authorHandler, publisherHandler,
		cartHandler, orderHandler, pubOrderHandler, reportHandler,
		authMiddleware,
	)

	// 8. 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	fmt.Printf("\n🚀 服务启动成功！\n")
	fmt.Printf("   访问地址: http://localhost%s\n", addr)
	fmt.Printf("   健康检查: http://localhost%s/ping\n", addr)
	fmt.Printf("   API文档: http://localhost%s/swagger/index.html\n", addr)
	fmt.Printf("   指标: http://localhost%s/metrics\n", addr)
	fmt.Printf("\n按Ctrl+C停止服务\n\n")

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("启动服务失败: %v", err)
	}
}

// publisherOrNil *mq.Publisher → 下单用例的EventPublisher
// 类型化nil直接赋给接口会导致接口非nil,必须显式转换
func publisherOrNil(p *mq.Publisher) apporder.EventPublisher {
	if p == nil {
		return nil
	}
	return p
}

// publisherOrNil2 *mq.Publisher → 进货确认用例的EventPublisher
func publisherOrNil2(p *mq.Publisher) apppuborder.EventPublisher {
	if p == nil {
		return nil
	}
	return p
}

// registerRoutes 注册路由
// 权限分层:
// - 公开:注册/登录、图书查询、作者/出版社查询
// - 登录:购物车、下单、我的订单、个人资料
// - 管理员:图书/作者/出版社写操作、进货单、报表、用户管理、全部订单
func registerRoutes(
	r *gin.Engine,
	userHandler *handler.UserHandler,
	bookHandler *handler.BookHandler,
	authorHandler *handler.AuthorHandler,
	publisherHandler *handler.PublisherHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	pubOrderHandler *handler.PubOrderHandler,
	reportHandler *handler.ReportHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标
	r.GET("/metrics", metrics.Handler())

	// Swagger文档(生产环境建议关闭或加访问控制)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		// 公开接口
		v1.POST("/register", userHandler.Register)
		v1.POST("/login", userHandler.Login)

		v1.GET("/books", bookHandler.ListBooks)
		v1.GET("/books/search", bookHandler.SearchBooks)
		v1.GET("/books/:isbn", bookHandler.GetBook)
		v1.GET("/books/:isbn/photo", bookHandler.GetPhoto)
		v1.GET("/books/:isbn/authors", bookHandler.GetBookAuthors)

		v1.GET("/authors", authorHandler.ListAuthors)
		v1.GET("/authors/:id", authorHandler.GetAuthor)
		v1.GET("/publishers", publisherHandler.ListPublishers)
		v1.GET("/publishers/:id", publisherHandler.GetPublisher)

		// 登录接口
		authorized := v1.Group("")
		authorized.Use(authMiddleware.RequireAuth())
		{
			authorized.POST("/logout", userHandler.Logout)
			authorized.GET("/profile", userHandler.GetProfile)
			authorized.PUT("/profile", userHandler.UpdateProfile)
			authorized.PUT("/profile/password", userHandler.ChangePassword)

			authorized.GET("/cart", cartHandler.GetCart)
			authorized.DELETE("/cart", cartHandler.ClearCart)
			authorized.POST("/cart/items", cartHandler.AddItem)
			authorized.PUT("/cart/items/:id", cartHandler.UpdateItem)
			authorized.DELETE("/cart/items/:id", cartHandler.RemoveItem)

			authorized.POST("/orders", orderHandler.PlaceOrder)
			authorized.GET("/orders", orderHandler.ListMyOrders)
			authorized.GET("/orders/:id", orderHandler.GetOrder)
		}

		// 管理员接口(目录写操作挂在资源路径下,鉴权逐路由添加)
		adminOnly := []gin.HandlerFunc{authMiddleware.RequireAuth(), authMiddleware.RequireAdmin()}

		v1.POST("/books", append(adminOnly, bookHandler.CreateBook)...)
		v1.PUT("/books/:isbn", append(adminOnly, bookHandler.UpdateBook)...)
		v1.DELETE("/books/:isbn", append(adminOnly, bookHandler.DeleteBook)...)
		v1.POST("/books/:isbn/photo", append(adminOnly, bookHandler.UploadPhoto)...)
		v1.POST("/books/:isbn/authors", append(adminOnly, bookHandler.AddBookAuthors)...)
		v1.DELETE("/books/:isbn/authors", append(adminOnly, bookHandler.RemoveBookAuthors)...)

		v1.POST("/authors", append(adminOnly, authorHandler.CreateAuthor)...)
		v1.PUT("/authors/:id", append(adminOnly, authorHandler.UpdateAuthor)...)
		v1.DELETE("/authors/:id", append(adminOnly, authorHandler.DeleteAuthor)...)

		v1.POST("/publishers", append(adminOnly, publisherHandler.CreatePublisher)...)
		v1.PUT("/publishers/:id", append(adminOnly, publisherHandler.UpdatePublisher)...)
		v1.DELETE("/publishers/:id", append(adminOnly, publisherHandler.DeletePublisher)...)

		// 管理后台路由组
		admin := v1.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			admin.GET("/books/low-stock", bookHandler.ListLowStockBooks)

			admin.GET("/orders", orderHandler.ListAllOrders)
			admin.GET("/customers/:id/orders", orderHandler.ListCustomerOrders)

			admin.POST("/puborders", pubOrderHandler.CreatePubOrder)
			admin.GET("/puborders", pubOrderHandler.ListPubOrders)
			admin.GET("/puborders/:id", pubOrderHandler.GetPubOrder)
			admin.POST("/puborders/:id/confirm", pubOrderHandler.ConfirmPubOrder)

			admin.GET("/reports/sales/monthly", reportHandler.GetMonthlySales)
			admin.GET("/reports/sales/daily", reportHandler.GetDailySales)
			admin.GET("/reports/top-customers", reportHandler.GetTopCustomers)
			admin.GET("/reports/top-books", reportHandler.GetTopSellingBooks)
			admin.GET("/reports/books/:isbn", reportHandler.GetBookOrderCount)

			admin.GET("/users", userHandler.ListUsers)
			admin.GET("/users/:id", userHandler.GetUser)
			admin.DELETE("/users/:id", userHandler.DeleteUser)
		}
	}
}
