package redis

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/luocheng/stockpile/internal/domain/inventory"
	"github.com/luocheng/stockpile/internal/domain/item"
	"github.com/luocheng/stockpile/internal/infrastructure/config"
)

// CacheStore 读缓存实现(Redis)
// 设计说明：
// 1. 同时实现item.Cache与inventory.Cache,写路径的失效在一处收口
// 2. Key设计（冒号分隔命名空间,便于监控与批量失效）:
//    - stockpile:item:detail:{id}       商品详情
//    - stockpile:item:list:{hash}       商品列表（按查询参数哈希）
//    - stockpile:inventory:summary:{id} 台账汇总
// 3. 未命中返回(nil, nil),调用方回源数据库;缓存只是读加速层,
//    所有写路径都做显式失效,正确性从不依赖TTL
type CacheStore struct {
	client *redis.Client
	cfg    config.CacheConfig
}

// NewCacheStore 创建缓存存储
func NewCacheStore(client *redis.Client, cfg config.CacheConfig) *CacheStore {
	return &CacheStore{client: client, cfg: cfg}
}

const (
	itemDetailKeyFmt  = "stockpile:item:detail:%d"
	itemListKeyFmt    = "stockpile:item:list:%s"
	itemListKeyScan   = "stockpile:item:list:*"
	summaryKeyFmt     = "stockpile:inventory:summary:%d"
	listScanBatchSize = 100
)

// itemListValue 列表缓存的存储形态（条目+总数一起缓存）
type itemListValue struct {
	Items []*item.Item `json:"items"`
	Total int64        `json:"total"`
}

// =========================================
// item.Cache 实现
// =========================================

// GetDetail 读商品详情缓存
func (c *CacheStore) GetDetail(ctx context.Context, id uint) (*item.Item, error) {
	key := fmt.Sprintf(itemDetailKeyFmt, id)

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // 未命中
		}
		return nil, err
	}

	var it item.Item
	if err := json.Unmarshal(data, &it); err != nil {
		// 脏数据当未命中处理,顺手清掉
		c.client.Del(ctx, key)
		return nil, nil
	}
	return &it, nil
}

// SetDetail 写商品详情缓存
func (c *CacheStore) SetDetail(ctx context.Context, it *item.Item) error {
	data, err := json.Marshal(it)
	if err != nil {
		return err
	}

	key := fmt.Sprintf(itemDetailKeyFmt, it.ID)
	return c.client.Set(ctx, key, data, c.cfg.DetailTTL).Err()
}

// GetList 读商品列表缓存
// 第三个返回值区分"未命中"与"命中了空列表"
func (c *CacheStore) GetList(ctx context.Context, params item.ListParams) ([]*item.Item, int64, bool, error) {
	key := fmt.Sprintf(itemListKeyFmt, listParamsHash(params))

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, 0, false, nil
		}
		return nil, 0, false, err
	}

	var value itemListValue
	if err := json.Unmarshal(data, &value); err != nil {
		c.client.Del(ctx, key)
		return nil, 0, false, nil
	}
	return value.Items, value.Total, true, nil
}

// SetList 写商品列表缓存
func (c *CacheStore) SetList(ctx context.Context, params item.ListParams, items []*item.Item, total int64) error {
	data, err := json.Marshal(itemListValue{Items: items, Total: total})
	if err != nil {
		return err
	}

	key := fmt.Sprintf(itemListKeyFmt, listParamsHash(params))
	return c.client.Set(ctx, key, data, c.cfg.ListTTL).Err()
}

// EvictDetail 失效单个商品详情缓存
func (c *CacheStore) EvictDetail(ctx context.Context, id uint) error {
	return c.client.Unlink(ctx, fmt.Sprintf(itemDetailKeyFmt, id)).Err()
}

// EvictLists 失效全部商品列表缓存
// 列表key按查询参数哈希,无法定点删除,用SCAN分批找出后UNLINK
// (UNLINK异步回收,避免大key阻塞;绝不在生产连接上用KEYS)
func (c *CacheStore) EvictLists(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, itemListKeyScan, listScanBatchSize).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.client.Unlink(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

// =========================================
// inventory.Cache 实现
// =========================================

// GetSummary 读台账汇总缓存
func (c *CacheStore) GetSummary(ctx context.Context, itemID uint) (*inventory.Summary, error) {
	key := fmt.Sprintf(summaryKeyFmt, itemID)

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var summary inventory.Summary
	if err := json.Unmarshal(data, &summary); err != nil {
		c.client.Del(ctx, key)
		return nil, nil
	}
	return &summary, nil
}

// SetSummary 写台账汇总缓存
func (c *CacheStore) SetSummary(ctx context.Context, summary *inventory.Summary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	key := fmt.Sprintf(summaryKeyFmt, summary.ItemID)
	return c.client.Set(ctx, key, data, c.cfg.SummaryTTL).Err()
}

// Evict 失效某商品相关的全部缓存
// 台账变动会改变商品的派生剩余库存,所以汇总、详情、列表一起清
func (c *CacheStore) Evict(ctx context.Context, itemID uint) error {
	err := c.client.Unlink(ctx,
		fmt.Sprintf(summaryKeyFmt, itemID),
		fmt.Sprintf(itemDetailKeyFmt, itemID),
	).Err()
	if err != nil {
		zap.L().Warn("缓存失效失败", zap.Uint("item_id", itemID), zap.Error(err))
	}

	return c.EvictLists(ctx)
}

// listParamsHash 列表查询参数 → 定长key片段
func listParamsHash(params item.ListParams) string {
	raw := fmt.Sprintf("p=%d&s=%d&f=%s", params.Page, params.Size, params.Filter)
	sum := sha1.Sum([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// Flush 清空本服务的全部缓存key（测试与运维用）
func (c *CacheStore) Flush(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, "stockpile:*", listScanBatchSize).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.client.Unlink(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}
