package service

import (
	"Foodgram/dao"
	"Foodgram/dao/cache"
	"Foodgram/pkg/log"
	"context"
	"errors"

	"go.uber.org/zap"
)

type relationReader interface {
	ObjectIDs(ctx context.Context, subject uint64) ([]uint64, error)
	ObjectSet(ctx context.Context, subject uint64, objects []uint64) (map[uint64]bool, error)
}

// RelationFlags 计算当前用户与一批对象的收藏 / 购物清单 / 关注标记
type RelationFlags struct {
	Cache       *cache.RelationCache
	FavoriteDAO *dao.FavoriteDAO
	CartDAO     *dao.ShoppingCartDAO
	FollowDAO   *dao.UserFollowDAO
}

func (f *RelationFlags) reader(kind LinkKind) relationReader {
	switch kind {
	case LinkFavorite:
		return f.FavoriteDAO
	case LinkShoppingCart:
		return f.CartDAO
	case LinkFollow:
		return f.FollowDAO
	}
	return nil
}

// Of 返回 objects 中与 uid 存在 kind 关系的集合，匿名用户返回空集合
func (f *RelationFlags) Of(ctx context.Context, kind LinkKind, uid uint64, objects []uint64) (map[uint64]bool, error) {
	result := make(map[uint64]bool, len(objects))
	if uid == 0 || len(objects) == 0 {
		return result, nil
	}
	store := f.reader(kind)
	if store == nil {
		return result, nil
	}
	if !f.Cache.Enabled() {
		return store.ObjectSet(ctx, uid, objects)
	}

	members, hit, err := f.Cache.Members(ctx, string(kind), uid)
	if err != nil {
		log.L.Warn("relation cache read failed", zap.String("kind", string(kind)), zap.Uint64("uid", uid), zap.Error(err))
		return store.ObjectSet(ctx, uid, objects)
	}
	if !hit {
		gen, err := f.Cache.Generation(ctx, string(kind), uid)
		if err != nil {
			log.L.Warn("relation cache read failed", zap.String("kind", string(kind)), zap.Uint64("uid", uid), zap.Error(err))
			return store.ObjectSet(ctx, uid, objects)
		}
		ids, err := store.ObjectIDs(ctx, uid)
		if err != nil {
			return nil, err
		}
		err = f.Cache.Fill(ctx, string(kind), uid, gen, ids)
		switch {
		case errors.Is(err, cache.ErrStaleFill):
			log.L.Debug("relation cache fill skipped", zap.String("kind", string(kind)), zap.Uint64("uid", uid))
		case err != nil:
			log.L.Error("relation cache fill failed", zap.String("kind", string(kind)), zap.Uint64("uid", uid), zap.Error(err))
		}
		members = make(map[uint64]bool, len(ids))
		for _, id := range ids {
			members[id] = true
		}
	}
	for _, id := range objects {
		if members[id] {
			result[id] = true
		}
	}
	return result, nil
}

// Invalidate 关系变更后清理缓存，失败只记录日志
func (f *RelationFlags) Invalidate(ctx context.Context, kind LinkKind, uids ...uint64) {
	for _, uid := range uids {
		if err := f.Cache.Invalidate(ctx, string(kind), uid); err != nil {
			log.L.Error("relation cache invalidate failed", zap.String("kind", string(kind)), zap.Uint64("uid", uid), zap.Error(err))
		}
	}
}
