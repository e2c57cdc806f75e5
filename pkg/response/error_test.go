package response

import (
	"Foodgram/pkg/bizerr"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", bizerr.Validation("烹饪时间必须大于 0"), http.StatusBadRequest},
		{"duplicate", bizerr.ErrDuplicateRelation, http.StatusBadRequest},
		{"already linked", bizerr.AlreadyLinked("该食谱已在收藏中"), http.StatusBadRequest},
		{"self link", bizerr.SelfLinkForbidden("不能关注自己"), http.StatusForbidden},
		{"forbidden", fmt.Errorf("wrapped: %w", bizerr.Forbidden("无权操作")), http.StatusForbidden},
		{"not found", bizerr.NotFound("食谱不存在"), http.StatusNotFound},
		{"unauthorized", bizerr.Unauthorized("未登录"), http.StatusUnauthorized},
		{"http error", NewError(http.StatusTeapot, "teapot"), http.StatusTeapot},
		{"unknown", errors.New("db down"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Status(tc.err))
		})
	}
}
