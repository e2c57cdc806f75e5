package handler

import (
	"Foodgram/config"
	"Foodgram/middleware"
	"Foodgram/pkg/context"
	"Foodgram/pkg/response"
	"Foodgram/service"
	"Foodgram/types"

	"github.com/gin-gonic/gin"
)

type User struct {
	Config      *config.Config
	UserService service.IUserService
	LinkService service.ILinkService
}

func (u *User) RegisterRouter(r gin.IRouter) {
	secret := []byte(u.Config.Jwt.Secret)
	authorize := middleware.Auth(secret)
	optional := middleware.OptionalAuth(secret)

	g := r.Group("/users")
	g.POST("", context.Wrap(u.Register))
	g.GET("", optional, context.Wrap(u.List))
	g.GET("/me", authorize, context.Wrap(u.Me))
	g.POST("/set_password", authorize, context.Wrap(u.SetPassword))
	g.GET("/subscriptions", authorize, context.Wrap(u.Subscriptions))
	g.GET("/:id", optional, context.Wrap(u.Get))
	g.POST("/:id/subscribe", authorize, context.Wrap(u.Subscribe))
	g.DELETE("/:id/subscribe", authorize, context.Wrap(u.Unsubscribe))
}

// Register 注册
func (u *User) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindErr(err)
	}
	item, err := u.UserService.Register(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Created(c, item)
	return nil
}

func (u *User) List(c *gin.Context) error {
	var req types.ListUsersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return bindErr(err)
	}
	page, err := u.UserService.List(c.Request.Context(), context.GetViewerID(c), &req)
	if err != nil {
		return err
	}
	response.Success(c, page)
	return nil
}

func (u *User) Get(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	item, err := u.UserService.Get(c.Request.Context(), context.GetViewerID(c), id)
	if err != nil {
		return err
	}
	response.Success(c, item)
	return nil
}

// Me 当前登录用户
func (u *User) Me(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	item, err := u.UserService.Get(c.Request.Context(), uid, uid)
	if err != nil {
		return err
	}
	response.Success(c, item)
	return nil
}

func (u *User) SetPassword(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.SetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindErr(err)
	}
	if err := u.UserService.SetPassword(c.Request.Context(), uid, &req); err != nil {
		return err
	}
	response.NoContent(c)
	return nil
}

// Subscriptions 我的订阅
func (u *User) Subscriptions(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.SubscriptionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return bindErr(err)
	}
	page, err := u.UserService.Subscriptions(c.Request.Context(), uid, &req)
	if err != nil {
		return err
	}
	response.Success(c, page)
	return nil
}

// Subscribe 关注作者
func (u *User) Subscribe(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	authorID, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	var req types.SubscriptionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return bindErr(err)
	}
	summary, err := u.LinkService.AddFollow(c.Request.Context(), uid, authorID, req.RecipesLimit)
	if err != nil {
		return err
	}
	response.Created(c, summary)
	return nil
}

// Unsubscribe 取消关注
func (u *User) Unsubscribe(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	authorID, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	if err := u.LinkService.Remove(c.Request.Context(), service.LinkFollow, uid, authorID); err != nil {
		return err
	}
	response.NoContent(c)
	return nil
}
