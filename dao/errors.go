package dao

import (
	"Foodgram/pkg/bizerr"
	"errors"
	"strings"

	mysqlerr "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// isDupKeyErr 唯一索引冲突
func isDupKeyErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// MySQL duplicate key = 1062
	var me *mysqlerr.MySQLError
	if errors.As(err, &me) {
		return me.Number == 1062
	}
	// 兜底（未开启 TranslateError 时 sqlite 只有文本）
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}

func duplicateErr(err error) error {
	return bizerr.Wrap(bizerr.KindDuplicateRelation, err, "记录已存在")
}
