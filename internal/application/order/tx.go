package order

import (
	"context"
)

// TxManager 事务边界
// 设计说明:
// 1. 一次公开的订单用例调用=一个事务:fn内的所有仓储操作要么全部提交,
//    要么全部回滚,不存在部分成功
// 2. 用例只依赖这个最小接口,由mysql.TxManager实现;
//    单元测试里用直通实现替代,不需要真实数据库
type TxManager interface {
	// Transaction 在单个事务内执行fn,fn返回error时回滚
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}
