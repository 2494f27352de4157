package mysql

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/luocheng/stockpile/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 自动迁移表结构并种子化订单序列行
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.Database.DSN()

	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("obtain sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	zap.L().Info("database connected",
		zap.String("host", cfg.Database.Host),
		zap.String("dbname", cfg.Database.DBName),
	)

	// 注意：生产环境应使用版本化迁移脚本，不要依赖AutoMigrate
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return db, nil
}

// autoMigrate 自动迁移表结构,并保证订单序列行存在
func autoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&ItemModel{},
		&InventoryEntryModel{},
		&OrderModel{},
		&OrderSequenceModel{},
	); err != nil {
		return err
	}

	// 种子化订单序列计数器(已存在则跳过)
	return db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&OrderSequenceModel{Name: orderSeqName, Value: 0}).Error
}

// ItemModel GORM商品模型
// 设计说明:
// 1. 这是infrastructure层的数据模型,包含GORM tag;
//    domain/item/entity.go是领域实体,不依赖GORM
// 2. 价格使用int64存储"分"为单位(避免浮点数精度问题)
// 3. 商品上没有库存字段:库存永远从台账流水推导
type ItemModel struct {
	ID        uint                  `gorm:"primaryKey"`
	Name      string                `gorm:"size:200;not null;comment:商品名"`
	Price     int64                 `gorm:"not null;comment:价格(分)"`
	Entries   []InventoryEntryModel `gorm:"foreignKey:ItemID"` // 一对多关联(台账流水)
	CreatedAt time.Time             `gorm:"comment:创建时间"`
	UpdatedAt time.Time             `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (ItemModel) TableName() string {
	return "items"
}

// InventoryEntryModel GORM台账流水模型
// 设计说明:
// 1. 只增为常态;修改/删除仅通过管理接口
// 2. Type存单字符(T/W),节省空间且便于聚合统计
type InventoryEntryModel struct {
	ID        uint      `gorm:"primaryKey"`
	ItemID    uint      `gorm:"index;not null;comment:商品ID"`
	Item      ItemModel `gorm:"foreignKey:ItemID"` // 联表取商品名用
	Quantity  int       `gorm:"not null;comment:数量"`
	Type      string    `gorm:"type:char(1);not null;comment:类型(T=入库 W=出库)"`
	CreatedAt time.Time `gorm:"index;comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (InventoryEntryModel) TableName() string {
	return "inventory_entries"
}

// OrderModel GORM订单模型
// 设计说明:
// 1. OrderNo是业务主键(年月+8位序列,固定14位),没有自增ID
// 2. Price是下单时的价格快照(分)
type OrderModel struct {
	OrderNo   string    `gorm:"primaryKey;size:14;comment:订单号"`
	ItemID    uint      `gorm:"index;not null;comment:商品ID"`
	Item      ItemModel `gorm:"foreignKey:ItemID"` // 联表取商品名用
	Qty       int       `gorm:"not null;comment:下单数量"`
	Price     int64     `gorm:"not null;comment:下单时价格快照(分)"`
	CreatedAt time.Time `gorm:"index;comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (OrderModel) TableName() string {
	return "orders"
}

// orderSeqName 订单号序列行的名字
const orderSeqName = "order_no"

// OrderSequenceModel 持久序列计数器
// 设计说明:MySQL没有原生SEQUENCE,用单行计数器+LAST_INSERT_ID技巧模拟,
// 在下单事务内原子自增(见orderRepository.NextOrderSeq)
type OrderSequenceModel struct {
	Name  string `gorm:"primaryKey;size:32;comment:序列名"`
	Value int64  `gorm:"not null;comment:当前序列值"`
}

// TableName 指定表名
func (OrderSequenceModel) TableName() string {
	return "order_sequences"
}
