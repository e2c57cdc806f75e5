// Package validate 注册 gin binding 使用的自定义校验规则。
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	usernameRe  = regexp.MustCompile(`^[\p{L}\p{N}_.@+-]+$`)
	once        sync.Once
	registerErr error
)

// Username 用户名只允许字母数字及 . @ + - _
func Username(s string) bool {
	return usernameRe.MatchString(s)
}

func usernameRule(fl validator.FieldLevel) bool {
	return Username(fl.Field().String())
}

// Register 向 gin 默认校验器注册 username 规则，可重复调用
func Register() error {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("validate: gin validator engine is not validator/v10")
			return
		}
		if err := v.RegisterValidation("username", usernameRule); err != nil {
			registerErr = fmt.Errorf("validate: register username: %w", err)
		}
	})
	return registerErr
}
