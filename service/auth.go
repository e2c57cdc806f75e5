package service

import (
	"Foodgram/config"
	"Foodgram/dao"
	"Foodgram/pkg/bizerr"
	"Foodgram/pkg/encrypt"
	"Foodgram/pkg/jwt"
	"Foodgram/types"
	"context"
)

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Login(ctx context.Context, email, password string) (*types.LoginResponse, error)
}

type AuthService struct {
	Config    *config.Config
	UsersRepo *dao.Users
}

// Login 邮箱密码登录，签发 access token
func (s *AuthService) Login(ctx context.Context, email, password string) (*types.LoginResponse, error) {
	user, err := s.UsersRepo.FindByEmail(ctx, email)
	if dao.IsNotFound(err) {
		return nil, bizerr.Validation("邮箱或密码错误")
	}
	if err != nil {
		return nil, err
	}
	if !encrypt.VerifyPassword(user.Password, password) {
		return nil, bizerr.Validation("邮箱或密码错误")
	}

	expire := s.Config.Jwt.Expire()
	token, err := jwt.GenerateToken([]byte(s.Config.Jwt.Secret), user.ID, user.Email, jwt.TypeAccess, expire)
	if err != nil {
		return nil, err
	}
	return &types.LoginResponse{AuthToken: token, ExpiresIn: int64(expire.Seconds())}, nil
}
