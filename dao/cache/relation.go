package cache

import (
	"Foodgram/config"
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	loadedMarker = "-"
	genTTL       = 24 * time.Hour
)

// ErrStaleFill 回源期间集合被 Invalidate，本次结果不写入缓存
var ErrStaleFill = errors.New("cache: relation changed during fill")

// RelationCache 用户收藏/购物车/关注的 id 集合缓存。
// 集合中始终带一个占位成员，用于区分“未加载”和“空集合”。
type RelationCache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewRelationCache(rds *redis.Client, conf *config.Config) *RelationCache {
	ttl := 10 * time.Minute
	if conf != nil && conf.Report != nil && conf.Report.CacheTTL() > 0 {
		ttl = conf.Report.CacheTTL()
	}
	return &RelationCache{redis: rds, ttl: ttl}
}

// Enabled redis 未配置时缓存不可用
func (c *RelationCache) Enabled() bool {
	return c != nil && c.redis != nil
}

func (c *RelationCache) key(kind string, uid uint64) string {
	return fmt.Sprintf("foodgram:relation:%s:%d", kind, uid)
}

// genKey 每次 Invalidate 自增的版本号
func (c *RelationCache) genKey(kind string, uid uint64) string {
	return fmt.Sprintf("foodgram:relation:gen:%s:%d", kind, uid)
}

func (c *RelationCache) generation(ctx context.Context, cmd redis.Cmdable, kind string, uid uint64) (int64, error) {
	gen, err := cmd.Get(ctx, c.genKey(kind, uid)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// Generation 回源前读取版本号，传给 Fill
func (c *RelationCache) Generation(ctx context.Context, kind string, uid uint64) (int64, error) {
	if !c.Enabled() {
		return 0, nil
	}
	return c.generation(ctx, c.redis, kind, uid)
}

// Members 返回缓存的 id 集合，hit=false 表示需要回源
func (c *RelationCache) Members(ctx context.Context, kind string, uid uint64) (map[uint64]bool, bool, error) {
	if !c.Enabled() {
		return nil, false, nil
	}
	items, err := c.redis.SMembers(ctx, c.key(kind, uid)).Result()
	if err != nil {
		return nil, false, err
	}
	if len(items) == 0 {
		return nil, false, nil
	}
	members := make(map[uint64]bool, len(items))
	for _, item := range items {
		if item == loadedMarker {
			continue
		}
		if id, err := strconv.ParseUint(item, 10, 64); err == nil {
			members[id] = true
		}
	}
	return members, true, nil
}

// Fill 用数据库结果整体覆盖缓存。gen 为回源前的 Generation，
// 期间发生过 Invalidate 时放弃写入并返回 ErrStaleFill
func (c *RelationCache) Fill(ctx context.Context, kind string, uid uint64, gen int64, ids []uint64) error {
	if !c.Enabled() {
		return nil
	}
	key := c.key(kind, uid)
	genKey := c.genKey(kind, uid)
	values := make([]any, 0, len(ids)+1)
	values = append(values, loadedMarker)
	for _, id := range ids {
		values = append(values, strconv.FormatUint(id, 10))
	}
	err := c.redis.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := c.generation(ctx, tx, kind, uid)
		if err != nil {
			return err
		}
		if cur != gen {
			return ErrStaleFill
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, key)
			pipe.SAdd(ctx, key, values...)
			pipe.Expire(ctx, key, c.ttl)
			return nil
		})
		return err
	}, genKey)
	if errors.Is(err, redis.TxFailedErr) {
		return ErrStaleFill
	}
	return err
}

// Invalidate 关系变更后删除缓存并推进版本号
func (c *RelationCache) Invalidate(ctx context.Context, kind string, uid uint64) error {
	if !c.Enabled() {
		return nil
	}
	genKey := c.genKey(kind, uid)
	_, err := c.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, c.key(kind, uid))
		pipe.Incr(ctx, genKey)
		pipe.Expire(ctx, genKey, genTTL)
		return nil
	})
	return err
}
