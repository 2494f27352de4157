//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 说明:
// 1. Wire在编译期生成依赖组装代码,零运行时开销、类型安全
// 2. 运行 `wire gen ./cmd/api` 生成wire_gen.go
// 3. main.go中的手动组装与这里等价,二者保持同步

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	apporder "github.com/luocheng/stockpile/internal/application/order"
	"github.com/luocheng/stockpile/internal/domain/inventory"
	"github.com/luocheng/stockpile/internal/domain/item"
	"github.com/luocheng/stockpile/internal/infrastructure/config"
	"github.com/luocheng/stockpile/internal/infrastructure/persistence/mysql"
	"github.com/luocheng/stockpile/internal/infrastructure/persistence/redis"
	"github.com/luocheng/stockpile/internal/interface/http/handler"
	"github.com/luocheng/stockpile/internal/interface/http/middleware"
	"github.com/luocheng/stockpile/pkg/response"
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load, // 加载配置文件
	mysql.NewDB, // 创建MySQL连接
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	mysql.NewItemRepository,      // 商品仓储
	mysql.NewInventoryRepository, // 台账仓储
	mysql.NewOrderRepository,     // 订单仓储
	provideTxManager,             // 事务管理器(接口绑定)
	provideItemFinder,            // 商品存在性校验(接口收窄)
)

// cacheSet 缓存层依赖(可选组件)
var cacheSet = wire.NewSet(
	provideCacheStore,
	provideItemCache,
	provideInventoryCache,
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	item.NewService,      // 商品领域服务
	inventory.NewService, // 台账领域服务
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	apporder.NewCreateOrderUseCase, // 下单用例
	apporder.NewUpdateOrderUseCase, // 改单用例
	apporder.NewDeleteOrderUseCase, // 删单用例
	apporder.NewOrderQueries,       // 订单查询用例
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewItemHandler,      // 商品处理器
	handler.NewInventoryHandler, // 台账处理器
	handler.NewOrderHandler,     // 订单处理器
)

// provideTxManager 把具体的mysql事务管理器绑定到用例层接口
func provideTxManager(db *gorm.DB) apporder.TxManager {
	return mysql.NewTxManager(db)
}

// provideItemFinder 商品仓储收窄为台账服务需要的最小接口
func provideItemFinder(repo item.Repository) inventory.ItemFinder {
	return repo
}

// provideCacheStore 按配置创建缓存存储,禁用时返回nil
// 注意:这里同时负责Redis客户端的创建,缓存关闭时完全不连Redis
func provideCacheStore(cfg *config.Config) (*redis.CacheStore, error) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}

	client, err := redis.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return redis.NewCacheStore(client, cfg.Cache), nil
}

// provideItemCache 缓存接口绑定
// 必须显式返回无类型nil:带类型的nil指针装进接口后!=nil,会绕过禁用判断
func provideItemCache(store *redis.CacheStore) item.Cache {
	if store == nil {
		return nil
	}
	return store
}

// provideInventoryCache 缓存接口绑定(同上)
func provideInventoryCache(store *redis.CacheStore) inventory.Cache {
	if store == nil {
		return nil
	}
	return store
}

// provideGinEngine 创建并配置Gin引擎(中间件+全部路由)
func provideGinEngine(
	cfg *config.Config,
	itemHandler *handler.ItemHandler,
	invHandler *handler.InventoryHandler,
	orderHandler *handler.OrderHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog())
	r.Use(middleware.CORS())
	r.Use(middleware.Metrics())

	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		items := v1.Group("/items")
		{
			items.GET("", itemHandler.ListItems)
			items.GET("/:id", itemHandler.GetItem)
			items.POST("", itemHandler.CreateItem)
			items.PUT("", itemHandler.UpdateItem)
			items.DELETE("/:id", itemHandler.DeleteItem)
		}

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

		orders := v1.Group("/orders")
		{
			orders.GET("", orderHandler.ListOrders)
			orders.GET("/:orderNo", orderHandler.GetOrder)
			orders.POST("", orderHandler.CreateOrder)
			orders.PUT("", orderHandler.UpdateOrder)
			orders.DELETE("/:orderNo", orderHandler.DeleteOrder)
		}
	}

	return r
}

// InitializeApp 初始化整个应用
// wire.Build声明全部Provider,Wire在wire_gen.go中生成实际的组装代码
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		cacheSet,
		domainSet,
		applicationSet,
		handlerSet,
		provideGinEngine,
	)
	return nil, nil
}
