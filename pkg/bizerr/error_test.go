package bizerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIs_MatchesByKind(t *testing.T) {
	err := NotFound("食谱 %d 不存在", 7)

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrForbidden))
	assert.Equal(t, "食谱 7 不存在", err.Error())
}

func TestIs_ThroughWrapping(t *testing.T) {
	err := fmt.Errorf("service.Recipe.Update: %w", Forbidden("无权修改"))

	assert.True(t, errors.Is(err, ErrForbidden))
	assert.Equal(t, KindForbidden, KindOf(err))
}

func TestKindOf_Plain(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(errors.New("boom")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestWrap_KeepsCause(t *testing.T) {
	cause := errors.New("duplicate key")
	err := Wrap(KindDuplicateRelation, cause, "")

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrDuplicateRelation)
	assert.Equal(t, "duplicate key", err.Error())
}
