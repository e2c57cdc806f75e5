package service

import (
	"Foodgram/dao"
	"Foodgram/pkg/bizerr"
	"Foodgram/types"
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

var _ ITagService = (*TagService)(nil)

type ITagService interface {
	List(ctx context.Context) ([]types.TagItem, error)
	Get(ctx context.Context, id uint64) (*types.TagItem, error)
}

type TagService struct {
	TagDAO *dao.TagDAO
}

func (s *TagService) List(ctx context.Context) ([]types.TagItem, error) {
	tags, err := s.TagDAO.All(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]types.TagItem, 0, len(tags))
	for _, t := range tags {
		items = append(items, toTagItem(t))
	}
	return items, nil
}

func (s *TagService) Get(ctx context.Context, id uint64) (*types.TagItem, error) {
	tag, err := s.TagDAO.FindById(ctx, id)
	if dao.IsNotFound(err) {
		return nil, bizerr.NotFound("标签不存在")
	}
	if err != nil {
		return nil, err
	}
	item := toTagItem(tag)
	return &item, nil
}

var _ IIngredientService = (*IngredientService)(nil)

type IIngredientService interface {
	Search(ctx context.Context, name string) ([]types.IngredientItem, error)
	Get(ctx context.Context, id uint64) (*types.IngredientItem, error)
	Load(ctx context.Context, r io.Reader) (*LoadResult, error)
}

type IngredientService struct {
	IngredientDAO *dao.IngredientDAO
}

// Search 名称前缀匹配，不区分大小写
func (s *IngredientService) Search(ctx context.Context, name string) ([]types.IngredientItem, error) {
	list, err := s.IngredientDAO.Search(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	items := make([]types.IngredientItem, 0, len(list))
	for _, i := range list {
		items = append(items, toIngredientItem(i))
	}
	return items, nil
}

func (s *IngredientService) Get(ctx context.Context, id uint64) (*types.IngredientItem, error) {
	ing, err := s.IngredientDAO.FindById(ctx, id)
	if dao.IsNotFound(err) {
		return nil, bizerr.NotFound("食材不存在")
	}
	if err != nil {
		return nil, err
	}
	item := toIngredientItem(ing)
	return &item, nil
}

// LoadResult 导入统计
type LoadResult struct {
	Total   int
	Created int
}

// Load 导入 "名称,单位" 格式的 csv，已存在的 (名称, 单位) 跳过
func (s *IngredientService) Load(ctx context.Context, r io.Reader) (*LoadResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	result := &LoadResult{}
	for line := 1; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return result, nil
		}
		if err != nil {
			return result, bizerr.Validation("第 %d 行解析失败: %v", line, err)
		}
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue
		}
		if len(record) < 2 {
			return result, bizerr.Validation("第 %d 行格式错误，应为: 名称,单位", line)
		}
		name, unit := strings.TrimSpace(record[0]), strings.TrimSpace(record[1])
		if name == "" || unit == "" {
			return result, bizerr.Validation("第 %d 行名称或单位为空", line)
		}

		_, created, err := s.IngredientDAO.GetOrCreate(ctx, name, unit)
		if err != nil {
			return result, err
		}
		result.Total++
		if created {
			result.Created++
		}
	}
}
