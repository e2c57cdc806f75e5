package context

import (
	"Foodgram/pkg/bizerr"
	"Foodgram/pkg/log"
	"Foodgram/pkg/response"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	CtxUserID = "user_id"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			status := response.Status(err)
			if status >= http.StatusInternalServerError {
				log.L.Error("request failed",
					zap.String("path", c.FullPath()),
					zap.Error(err),
				)
			}
			c.JSON(status, response.Response{
				Code: status,
				Msg:  err.Error(),
			})
		}
	}
}

// GetUserID 当前登录用户，未登录返回 Unauthorized
func GetUserID(c *gin.Context) (uint64, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, bizerr.Unauthorized("未登录")
	}

	uid, ok := v.(uint64)
	if !ok || uid == 0 {
		return 0, errors.New("user_id 类型错误")
	}

	return uid, nil
}

// GetViewerID 匿名访问返回 0
func GetViewerID(c *gin.Context) uint64 {
	uid, err := GetUserID(c)
	if err != nil {
		return 0
	}
	return uid
}

// ParamID 解析路径中的数字 ID
func ParamID(c *gin.Context, name string) (uint64, error) {
	raw := c.Param(name)
	if raw == "" {
		return 0, bizerr.Validation("缺少 %s", name)
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, bizerr.NotFound("%s 格式错误", name)
	}
	return id, nil
}
