package handler

import (
	"Foodgram/pkg/bizerr"
)

// bindErr 请求参数绑定失败统一按校验错误处理
func bindErr(err error) error {
	return bizerr.Wrap(bizerr.KindValidation, err, "参数错误: "+err.Error())
}
