package service

import (
	"Foodgram/dao"
	"Foodgram/models"
	"Foodgram/pkg/bizerr"
	"Foodgram/pkg/encrypt"
	"Foodgram/pkg/utils"
	"Foodgram/pkg/validate"
	"Foodgram/types"
	"context"
	"errors"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*types.UserItem, error)
	Get(ctx context.Context, viewerID, userID uint64) (*types.UserItem, error)
	List(ctx context.Context, viewerID uint64, req *types.ListUsersRequest) (*types.Page[*types.UserItem], error)
	SetPassword(ctx context.Context, userID uint64, req *types.SetPasswordRequest) error
	Subscriptions(ctx context.Context, userID uint64, req *types.SubscriptionsRequest) (*types.Page[*types.Subscription], error)
}

type UserService struct {
	UsersRepo *dao.Users
	FollowDAO *dao.UserFollowDAO
	RecipeDAO *dao.RecipeDAO
	Flags     *RelationFlags
}

// Register 注册用户
func (s *UserService) Register(ctx context.Context, req *types.RegisterRequest) (*types.UserItem, error) {
	if !validate.Username(req.Username) {
		return nil, bizerr.Validation("用户名包含非法字符")
	}
	exist, err := s.UsersRepo.IsEmailExist(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exist {
		return nil, bizerr.Validation("该邮箱已被注册")
	}
	exist, err = s.UsersRepo.IsUsernameExist(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if exist {
		return nil, bizerr.Validation("该用户名已被占用")
	}

	hashed, err := encrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	user := &models.Users{
		Email:     req.Email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  hashed,
	}
	if err := s.UsersRepo.Insert(ctx, user); err != nil {
		if errors.Is(err, bizerr.ErrDuplicateRelation) {
			return nil, bizerr.Validation("邮箱或用户名已存在")
		}
		return nil, err
	}
	item := toUserItem(user, false)
	return &item, nil
}

func (s *UserService) Get(ctx context.Context, viewerID, userID uint64) (*types.UserItem, error) {
	user, err := s.UsersRepo.FindById(ctx, userID)
	if dao.IsNotFound(err) {
		return nil, bizerr.NotFound("用户不存在")
	}
	if err != nil {
		return nil, err
	}
	subscribed, err := s.Flags.Of(ctx, LinkFollow, viewerID, []uint64{user.ID})
	if err != nil {
		return nil, err
	}
	item := toUserItem(user, subscribed[user.ID])
	return &item, nil
}

func (s *UserService) List(ctx context.Context, viewerID uint64, req *types.ListUsersRequest) (*types.Page[*types.UserItem], error) {
	limit, offset := utils.Paginate(req.Page, req.Limit)
	users, total, err := s.UsersRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	ids := make([]uint64, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	subscribed, err := s.Flags.Of(ctx, LinkFollow, viewerID, ids)
	if err != nil {
		return nil, err
	}
	page := &types.Page[*types.UserItem]{Count: total, Results: make([]*types.UserItem, 0, len(users))}
	for _, u := range users {
		item := toUserItem(u, subscribed[u.ID])
		page.Results = append(page.Results, &item)
	}
	return page, nil
}

// SetPassword 校验当前密码后修改
func (s *UserService) SetPassword(ctx context.Context, userID uint64, req *types.SetPasswordRequest) error {
	user, err := s.UsersRepo.FindById(ctx, userID)
	if dao.IsNotFound(err) {
		return bizerr.NotFound("用户不存在")
	}
	if err != nil {
		return err
	}
	if !encrypt.VerifyPassword(user.Password, req.CurrentPassword) {
		return bizerr.Validation("当前密码错误")
	}
	hashed, err := encrypt.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	return s.UsersRepo.UpdatePassword(ctx, userID, hashed)
}

// Subscriptions 已关注的作者，最近关注的在前
func (s *UserService) Subscriptions(ctx context.Context, userID uint64, req *types.SubscriptionsRequest) (*types.Page[*types.Subscription], error) {
	authorIDs, err := s.FollowDAO.ObjectIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	page := &types.Page[*types.Subscription]{
		Count:   int64(len(authorIDs)),
		Results: make([]*types.Subscription, 0),
	}

	limit, offset := utils.Paginate(req.Page, req.Limit)
	if offset >= len(authorIDs) {
		return page, nil
	}
	authorIDs = authorIDs[offset:min(offset+limit, len(authorIDs))]

	authors, err := s.UsersRepo.ListByIds(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	for _, author := range authors {
		sub, err := subscriptionOf(ctx, s.RecipeDAO, author, true, req.RecipesLimit)
		if err != nil {
			return nil, err
		}
		page.Results = append(page.Results, sub)
	}
	return page, nil
}
