package service

import (
	"Foodgram/dao"
	"Foodgram/pkg/bizerr"
	"context"
	"errors"
)

// LinkKind 用户侧关系类型
type LinkKind string

const (
	LinkFavorite     LinkKind = "favorite"
	LinkShoppingCart LinkKind = "shopping_cart"
	LinkFollow       LinkKind = "follow"
)

var (
	linkedMsg = map[LinkKind]string{
		LinkFavorite:     "该食谱已在收藏中",
		LinkShoppingCart: "该食谱已在购物清单中",
		LinkFollow:       "已关注该用户",
	}
	notLinkedMsg = map[LinkKind]string{
		LinkFavorite:     "该食谱不在收藏中",
		LinkShoppingCart: "该食谱不在购物清单中",
		LinkFollow:       "未关注该用户",
	}
)

const msgSelfFollow = "不能关注自己"

var _ ILinkService = (*LinkService)(nil)

type ILinkService interface {
	// Add 建立关系，返回目标摘要：食谱为 *types.RecipeShort，关注为 *types.Subscription
	Add(ctx context.Context, kind LinkKind, userID, targetID uint64) (any, error)
	AddFollow(ctx context.Context, userID, authorID uint64, recipesLimit int) (any, error)
	Remove(ctx context.Context, kind LinkKind, userID, targetID uint64) error
}

type pairStore interface {
	Exists(ctx context.Context, subject, object uint64) (bool, error)
	Link(ctx context.Context, subject, object uint64) error
	Unlink(ctx context.Context, subject, object uint64) error
}

type LinkService struct {
	FavoriteDAO *dao.FavoriteDAO
	CartDAO     *dao.ShoppingCartDAO
	FollowDAO   *dao.UserFollowDAO
	RecipeDAO   *dao.RecipeDAO
	UsersDAO    *dao.Users
	Flags       *RelationFlags
}

func (s *LinkService) store(kind LinkKind) (pairStore, error) {
	switch kind {
	case LinkFavorite:
		return s.FavoriteDAO, nil
	case LinkShoppingCart:
		return s.CartDAO, nil
	case LinkFollow:
		return s.FollowDAO, nil
	}
	return nil, bizerr.Validation("未知的关系类型: %s", kind)
}

// target 校验目标存在并返回摘要
func (s *LinkService) target(ctx context.Context, kind LinkKind, targetID uint64, recipesLimit int) (any, error) {
	if kind == LinkFollow {
		author, err := s.UsersDAO.FindById(ctx, targetID)
		if dao.IsNotFound(err) {
			return nil, bizerr.NotFound("用户不存在")
		}
		if err != nil {
			return nil, err
		}
		return subscriptionOf(ctx, s.RecipeDAO, author, true, recipesLimit)
	}

	recipe, err := s.RecipeDAO.FindById(ctx, targetID)
	if dao.IsNotFound(err) {
		return nil, bizerr.NotFound("食谱不存在")
	}
	if err != nil {
		return nil, err
	}
	short := toRecipeShort(recipe)
	return &short, nil
}

func (s *LinkService) checkTarget(ctx context.Context, kind LinkKind, targetID uint64) error {
	if kind == LinkFollow {
		exist, err := s.UsersDAO.IsExist(ctx, "id = ?", targetID)
		if err != nil {
			return err
		}
		if !exist {
			return bizerr.NotFound("用户不存在")
		}
		return nil
	}
	exist, err := s.RecipeDAO.IsExist(ctx, "id = ?", targetID)
	if err != nil {
		return err
	}
	if !exist {
		return bizerr.NotFound("食谱不存在")
	}
	return nil
}

func (s *LinkService) Add(ctx context.Context, kind LinkKind, userID, targetID uint64) (any, error) {
	return s.add(ctx, kind, userID, targetID, 0)
}

// AddFollow 关注作者，返回的摘要中最多带 recipesLimit 条食谱
func (s *LinkService) AddFollow(ctx context.Context, userID, authorID uint64, recipesLimit int) (any, error) {
	return s.add(ctx, LinkFollow, userID, authorID, recipesLimit)
}

func (s *LinkService) add(ctx context.Context, kind LinkKind, userID, targetID uint64, recipesLimit int) (any, error) {
	store, err := s.store(kind)
	if err != nil {
		return nil, err
	}
	if kind == LinkFollow && userID == targetID {
		return nil, bizerr.SelfLinkForbidden(msgSelfFollow)
	}

	summary, err := s.target(ctx, kind, targetID, recipesLimit)
	if err != nil {
		return nil, err
	}

	exists, err := store.Exists(ctx, userID, targetID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, bizerr.AlreadyLinked("%s", linkedMsg[kind])
	}

	// 并发重复添加时以唯一索引为准
	if err := store.Link(ctx, userID, targetID); err != nil {
		if errors.Is(err, bizerr.ErrDuplicateRelation) {
			return nil, bizerr.AlreadyLinked("%s", linkedMsg[kind])
		}
		return nil, err
	}
	s.Flags.Invalidate(ctx, kind, userID)
	return summary, nil
}

func (s *LinkService) Remove(ctx context.Context, kind LinkKind, userID, targetID uint64) error {
	store, err := s.store(kind)
	if err != nil {
		return err
	}
	if err := s.checkTarget(ctx, kind, targetID); err != nil {
		return err
	}
	if err := store.Unlink(ctx, userID, targetID); err != nil {
		if errors.Is(err, bizerr.ErrNotFound) {
			return bizerr.NotFound("%s", notLinkedMsg[kind])
		}
		return err
	}
	s.Flags.Invalidate(ctx, kind, userID)
	return nil
}
