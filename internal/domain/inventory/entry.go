package inventory

import (
	"strings"
	"time"
)

// EntryType 台账流水类型
// 设计说明:
// 1. 存储层只存单字符（T/W），与台账表的TYPE列对应
// 2. 定义为类型别名，便于添加Label/Valid等方法
type EntryType string

const (
	EntryTypeTopUp      EntryType = "T" // 入库（Top-Up）
	EntryTypeWithdrawal EntryType = "W" // 出库（Withdrawal）
)

// Label 返回可读标签（用于响应与日志输出）
func (t EntryType) Label() string {
	switch t {
	case EntryTypeTopUp:
		return "Top-Up"
	case EntryTypeWithdrawal:
		return "Withdrawal"
	default:
		return "Unknown"
	}
}

// Valid 校验类型取值
func (t EntryType) Valid() bool {
	return t == EntryTypeTopUp || t == EntryTypeWithdrawal
}

// ParseEntryType 从字符串解析流水类型（大小写不敏感，容忍首尾空白）
func ParseEntryType(s string) (EntryType, bool) {
	t := EntryType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", false
	}
	return t, true
}

// Entry 台账流水实体
// 设计说明:
// 1. 每条流水是一次带符号的库存变动（T加、W减），只增不改是常态
// 2. 商品剩余库存永远不落库，总是从流水实时推导（见stock.go）
// 3. 修改/删除只通过显式的管理接口进行（管理员修正通道）
type Entry struct {
	ID        uint
	ItemID    uint
	ItemName  string // 冗余的商品名（查询时联表填充，仅用于展示）
	Quantity  int    // 数量（非负整数）
	Type      EntryType
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SignedQuantity 返回带符号数量（T为正、W为负）
func (e *Entry) SignedQuantity() int {
	if e.Type == EntryTypeWithdrawal {
		return -e.Quantity
	}
	return e.Quantity
}

// NewTopUp 创建入库流水（工厂方法）
func NewTopUp(itemID uint, qty int) *Entry {
	return &Entry{ItemID: itemID, Quantity: qty, Type: EntryTypeTopUp}
}

// NewWithdrawal 创建出库流水（工厂方法）
func NewWithdrawal(itemID uint, qty int) *Entry {
	return &Entry{ItemID: itemID, Quantity: qty, Type: EntryTypeWithdrawal}
}

// Summary 单个商品的台账汇总
// 设计说明:一条分组聚合查询的结果，RemainingStock = TotalTopUp - TotalWithdraw
type Summary struct {
	ItemID         uint   `json:"itemId"`
	ItemName       string `json:"itemName"`
	TotalTopUp     int    `json:"totalTopUp"`
	TotalWithdraw  int    `json:"totalWithdraw"`
	TopUpCount     int    `json:"topUpCount"`
	WithdrawCount  int    `json:"withdrawCount"`
	RemainingStock int    `json:"remainingStock"`
}
