package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/luocheng/stockpile/docs" // swagger文档注册
	apporder "github.com/luocheng/stockpile/internal/application/order"
	"github.com/luocheng/stockpile/internal/domain/inventory"
	"github.com/luocheng/stockpile/internal/domain/item"
	"github.com/luocheng/stockpile/internal/infrastructure/config"
	"github.com/luocheng/stockpile/internal/infrastructure/persistence/mysql"
	"github.com/luocheng/stockpile/internal/infrastructure/persistence/redis"
	"github.com/luocheng/stockpile/internal/interface/http/handler"
	"github.com/luocheng/stockpile/internal/interface/http/middleware"
	"github.com/luocheng/stockpile/pkg/logger"
	"github.com/luocheng/stockpile/pkg/metrics"
	"github.com/luocheng/stockpile/pkg/response"
)

// @title        Stockpile API
// @version      1.0
// @description  库存与订单管理服务:商品CRUD、台账流水、下单/改单的库存核算
// @BasePath     /

// main 主程序入口
// 说明:手动依赖注入(wire.go提供等价的编译期生成方案)
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 2. 初始化日志
	if _, err := logger.New(logger.Config{
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		Output:       cfg.Log.Output,
		EnableCaller: cfg.Log.EnableCaller,
	}); err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer zap.L().Sync() //nolint:errcheck

	zap.L().Info("配置加载成功",
		zap.Int("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("database", fmt.Sprintf("%s:%d/%s", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)),
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
	)

	// 3. 初始化指标
	metrics.InitMetrics()

	// 4. 初始化数据库连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 5. 缓存(可选组件):关闭时两个缓存接口注入nil,行为不变
	var itemCache item.Cache
	var invCache inventory.Cache
	if cfg.Cache.Enabled {
		redisClient, err := redis.NewClient(cfg)
		if err != nil {
			log.Fatalf("初始化Redis失败: %v", err)
		}
		cacheStore := redis.NewCacheStore(redisClient, cfg.Cache)
		itemCache = cacheStore
		invCache = cacheStore
	}

	// 6. 依赖注入(手动组装)
	// Repository ← Service/UseCase ← Handler

	// 基础设施层
	itemRepo := mysql.NewItemRepository(db)
	invRepo := mysql.NewInventoryRepository(db)
	orderRepo := mysql.NewOrderRepository(db)
	txManager := mysql.NewTxManager(db)

	// 领域层
	itemService := item.NewService(itemRepo, itemCache)
	invService := inventory.NewService(invRepo, itemRepo, invCache)

	// 应用层
	createOrderUseCase := apporder.NewCreateOrderUseCase(orderRepo, itemRepo, invRepo, invCache, txManager)
	updateOrderUseCase := apporder.NewUpdateOrderUseCase(orderRepo, itemRepo, invRepo, invCache, txManager)
	deleteOrderUseCase := apporder.NewDeleteOrderUseCase(orderRepo)
	orderQueries := apporder.NewOrderQueries(orderRepo)

	// 接口层
	itemHandler := handler.NewItemHandler(itemService)
	invHandler := handler.NewInventoryHandler(invService)
	orderHandler := handler.NewOrderHandler(createOrderUseCase, updateOrderUseCase, deleteOrderUseCase, orderQueries)

	// 7. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog())
	r.Use(middleware.CORS())
	r.Use(middleware.Metrics())

	// 8. 注册路由
	registerRoutes(r, itemHandler, invHandler, orderHandler)

	// 9. 启动服务(带优雅停机)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		zap.L().Info("服务启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("启动服务失败", zap.Error(err))
		}
	}()

	// 等待退出信号,给在途请求留出完成时间
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("收到退出信号,开始停机")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Error("停机超时", zap.Error(err))
	}
	zap.L().Info("服务已退出")
}

// registerRoutes 注册路由
func registerRoutes(
	r *gin.Engine,
	itemHandler *handler.ItemHandler,
	invHandler *handler.InventoryHandler,
	orderHandler *handler.OrderHandler,
) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API路由组
	v1 := r.Group("/api/v1")
	{
		// 商品模块
		items := v1.Group("/items")
		{
			items.GET("", itemHandler.ListItems)
			items.GET("/:id", itemHandler.GetItem)
			items.POST("", itemHandler.CreateItem)
			items.PUT("", itemHandler.UpdateItem)
			items.DELETE("/:id", itemHandler.DeleteItem)
		}

		// 库存台账模块
		// 注意路由顺序:/items/:id子路由与/:id同组,gin按精确段区分
		inventories := v1.Group("/inventories")
		{
			inventories.GET("", invHandler.ListEntries)
			inventories.POST("", invHandler.CreateEntry)
			inventories.PUT("", invHandler.UpdateEntry)
			inventories.GET("/items/:id", invHandler.ListEntriesByItem)
			inventories.GET("/items/:id/summary", invHandler.SummaryByItem)
			inventories.GET("/:id", invHandler.GetEntry)
			inventories.DELETE("/:id", invHandler.DeleteEntry)
		}

		// 订单模块
		orders := v1.Group("/orders")
		{
			orders.GET("", orderHandler.ListOrders)
			orders.GET("/:orderNo", orderHandler.GetOrder)
			orders.POST("", orderHandler.CreateOrder)
			orders.PUT("", orderHandler.UpdateOrder)
			orders.DELETE("/:orderNo", orderHandler.DeleteOrder)
		}
	}
}
