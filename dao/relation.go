package dao

import (
	"Foodgram/pkg/bizerr"
	"context"
	"fmt"

	"gorm.io/gorm"
)

// RelationStore (subject, object) 二元关系表的通用存取，依赖 (subject, object) 唯一索引
type RelationStore[T any] struct {
	Repo[T]
	subject string
	object  string
	newRow  func(subject, object uint64) *T
}

func NewRelationStore[T any](db *gorm.DB, subjectColumn, objectColumn string, newRow func(subject, object uint64) *T) *RelationStore[T] {
	return &RelationStore[T]{
		Repo:    NewRepo[T](db),
		subject: subjectColumn,
		object:  objectColumn,
		newRow:  newRow,
	}
}

func (s *RelationStore[T]) pair(ctx context.Context, subject, object uint64) *gorm.DB {
	return s.Conn(ctx).Model(new(T)).
		Where(s.subject+" = ? AND "+s.object+" = ?", subject, object)
}

// Exists 关系是否存在
func (s *RelationStore[T]) Exists(ctx context.Context, subject, object uint64) (bool, error) {
	var count int64
	if err := s.pair(ctx, subject, object).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Link 建立关系，唯一键冲突返回 bizerr.ErrDuplicateRelation
func (s *RelationStore[T]) Link(ctx context.Context, subject, object uint64) error {
	err := s.Conn(ctx).Create(s.newRow(subject, object)).Error
	if isDupKeyErr(err) {
		return duplicateErr(err)
	}
	return err
}

// LinkMany 批量建立关系，objects 需调用方去重
func (s *RelationStore[T]) LinkMany(ctx context.Context, subject uint64, objects []uint64) error {
	if len(objects) == 0 {
		return nil
	}
	rows := make([]*T, 0, len(objects))
	for _, object := range objects {
		rows = append(rows, s.newRow(subject, object))
	}
	err := s.Conn(ctx).CreateInBatches(rows, 100).Error
	if isDupKeyErr(err) {
		return duplicateErr(err)
	}
	return err
}

// Unlink 删除关系，不存在返回 bizerr.ErrNotFound
func (s *RelationStore[T]) Unlink(ctx context.Context, subject, object uint64) error {
	res := s.Conn(ctx).
		Where(s.subject+" = ? AND "+s.object+" = ?", subject, object).
		Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return bizerr.NotFound("关系不存在")
	}
	return nil
}

// ObjectIDs subject 关联的全部 object，按建立顺序倒序
func (s *RelationStore[T]) ObjectIDs(ctx context.Context, subject uint64) ([]uint64, error) {
	ids := make([]uint64, 0)
	err := s.Conn(ctx).Model(new(T)).
		Where(s.subject+" = ?", subject).
		Order("id DESC").
		Pluck(s.object, &ids).Error
	return ids, err
}

// SubjectIDs object 被哪些 subject 关联
func (s *RelationStore[T]) SubjectIDs(ctx context.Context, object uint64) ([]uint64, error) {
	ids := make([]uint64, 0)
	err := s.Conn(ctx).Model(new(T)).
		Where(s.object+" = ?", object).
		Order("id DESC").
		Pluck(s.subject, &ids).Error
	return ids, err
}

// ObjectSet 批量判断 objects 中哪些与 subject 存在关系
func (s *RelationStore[T]) ObjectSet(ctx context.Context, subject uint64, objects []uint64) (map[uint64]bool, error) {
	result := make(map[uint64]bool, len(objects))
	if len(objects) == 0 || subject == 0 {
		return result, nil
	}
	ids := make([]uint64, 0, len(objects))
	err := s.Conn(ctx).Model(new(T)).
		Where(s.subject+" = ? AND "+s.object+" IN ?", subject, objects).
		Pluck(s.object, &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		result[id] = true
	}
	return result, nil
}

// SubjectQuery 子查询：subject 关联的 object 列
func (s *RelationStore[T]) SubjectQuery(ctx context.Context, subject uint64) *gorm.DB {
	return s.Conn(ctx).Model(new(T)).Select(s.object).Where(s.subject+" = ?", subject)
}

func (s *RelationStore[T]) CountBySubject(ctx context.Context, subject uint64) (int64, error) {
	return s.Count(ctx, s.subject+" = ?", subject)
}

func (s *RelationStore[T]) CountByObject(ctx context.Context, object uint64) (int64, error) {
	return s.Count(ctx, s.object+" = ?", object)
}

// DeleteByObject 级联删除 object 的全部关系
func (s *RelationStore[T]) DeleteByObject(ctx context.Context, object uint64) error {
	if err := s.Conn(ctx).Where(s.object+" = ?", object).Delete(new(T)).Error; err != nil {
		return fmt.Errorf("dao.RelationStore.DeleteByObject: %w", err)
	}
	return nil
}

// DeleteBySubject 级联删除 subject 的全部关系
func (s *RelationStore[T]) DeleteBySubject(ctx context.Context, subject uint64) error {
	if err := s.Conn(ctx).Where(s.subject+" = ?", subject).Delete(new(T)).Error; err != nil {
		return fmt.Errorf("dao.RelationStore.DeleteBySubject: %w", err)
	}
	return nil
}
