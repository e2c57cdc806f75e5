package cache

import (
	"Foodgram/config"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCache(t *testing.T) (*RelationCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rds := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rds.Close() })
	conf := &config.Config{Report: &config.Report{CacheTTLSeconds: 60}}
	return NewRelationCache(rds, conf), mr
}

func TestRelationCache_MissThenFill(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()

	_, hit, err := c.Members(ctx, "favorite", 1)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, c.Fill(ctx, "favorite", 1, 0, []uint64{10, 20}))

	members, hit, err := c.Members(ctx, "favorite", 1)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, map[uint64]bool{10: true, 20: true}, members)
	assert.Equal(t, time.Minute, mr.TTL("foodgram:relation:favorite:1"))
}

func TestRelationCache_EmptySetIsHit(t *testing.T) {
	c, _ := newCache(t)
	ctx := context.Background()

	require.NoError(t, c.Fill(ctx, "shopping_cart", 2, 0, nil))

	members, hit, err := c.Members(ctx, "shopping_cart", 2)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Empty(t, members)
}

func TestRelationCache_FillReplaces(t *testing.T) {
	c, _ := newCache(t)
	ctx := context.Background()

	require.NoError(t, c.Fill(ctx, "follow", 3, 0, []uint64{1, 2}))
	require.NoError(t, c.Fill(ctx, "follow", 3, 0, []uint64{5}))

	members, _, err := c.Members(ctx, "follow", 3)
	require.NoError(t, err)
	assert.Equal(t, map[uint64]bool{5: true}, members)
}

func TestRelationCache_Invalidate(t *testing.T) {
	c, _ := newCache(t)
	ctx := context.Background()

	require.NoError(t, c.Fill(ctx, "favorite", 4, 0, []uint64{7}))
	require.NoError(t, c.Invalidate(ctx, "favorite", 4))

	_, hit, err := c.Members(ctx, "favorite", 4)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRelationCache_Disabled(t *testing.T) {
	c := NewRelationCache(nil, nil)
	ctx := context.Background()

	assert.False(t, c.Enabled())
	require.NoError(t, c.Fill(ctx, "favorite", 1, 0, []uint64{1}))
	require.NoError(t, c.Invalidate(ctx, "favorite", 1))
	_, hit, err := c.Members(ctx, "favorite", 1)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRelationCache_StaleFillDropped(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()

	// 读请求回源前记录版本号，随后写请求提交并 Invalidate
	gen, err := c.Generation(ctx, "favorite", 5)
	require.NoError(t, err)
	assert.Zero(t, gen)
	require.NoError(t, c.Invalidate(ctx, "favorite", 5))

	// 读请求带着旧结果回填，应被丢弃
	err = c.Fill(ctx, "favorite", 5, gen, []uint64{1})
	assert.ErrorIs(t, err, ErrStaleFill)
	_, hit, err := c.Members(ctx, "favorite", 5)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.False(t, mr.Exists("foodgram:relation:favorite:5"))

	// 下一次回源使用新版本号可以写入
	gen, err = c.Generation(ctx, "favorite", 5)
	require.NoError(t, err)
	assert.Equal(t, int64(1), gen)
	require.NoError(t, c.Fill(ctx, "favorite", 5, gen, []uint64{1, 2}))
	members, hit, err := c.Members(ctx, "favorite", 5)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, map[uint64]bool{1: true, 2: true}, members)
}

func TestRelationCache_GenerationPerKey(t *testing.T) {
	c, _ := newCache(t)
	ctx := context.Background()

	require.NoError(t, c.Invalidate(ctx, "follow", 6))
	gen, err := c.Generation(ctx, "favorite", 6)
	require.NoError(t, err)
	assert.Zero(t, gen)
	require.NoError(t, c.Fill(ctx, "favorite", 6, gen, nil))
}
