package response

import (
	"Foodgram/pkg/bizerr"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

// Status 业务错误 -> HTTP 状态码
func Status(err error) int {
	var be *BizError
	if errors.As(err, &be) {
		return be.Code
	}
	switch bizerr.KindOf(err) {
	case bizerr.KindValidation, bizerr.KindDuplicateRelation, bizerr.KindAlreadyLinked:
		return http.StatusBadRequest
	case bizerr.KindUnauthorized:
		return http.StatusUnauthorized
	case bizerr.KindForbidden, bizerr.KindSelfLinkForbidden:
		return http.StatusForbidden
	case bizerr.KindNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Code: httpStatus,
		Msg:  msg,
		Data: nil,
	})
}
