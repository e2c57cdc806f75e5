package dao

import (
	"Foodgram/models"
	"context"
	"strings"

	"gorm.io/gorm"
)

type TagDAO struct {
	Repo[models.Tag]
}

func NewTagDAO(db *gorm.DB) *TagDAO {
	return &TagDAO{Repo: NewRepo[models.Tag](db)}
}

func (d *TagDAO) All(ctx context.Context) ([]*models.Tag, error) {
	tags := make([]*models.Tag, 0)
	err := d.Conn(ctx).Order("id ASC").Find(&tags).Error
	return tags, err
}

type IngredientDAO struct {
	Repo[models.Ingredient]
}

func NewIngredientDAO(db *gorm.DB) *IngredientDAO {
	return &IngredientDAO{Repo: NewRepo[models.Ingredient](db)}
}

// Search 名称前缀匹配（不区分大小写），按名称排序
func (d *IngredientDAO) Search(ctx context.Context, prefix string) ([]*models.Ingredient, error) {
	items := make([]*models.Ingredient, 0)
	db := d.Conn(ctx)
	if prefix != "" {
		db = db.Where("LOWER(name) LIKE ? ESCAPE '!'", escapeLike(strings.ToLower(prefix))+"%")
	}
	err := db.Order("name ASC").Order("id ASC").Find(&items).Error
	return items, err
}

func escapeLike(s string) string {
	return strings.NewReplacer("!", "!!", "%", "!%", "_", "!_").Replace(s)
}

// GetOrCreate 按 (name, measurement_unit) 查找或创建，created 表示是否新建
func (d *IngredientDAO) GetOrCreate(ctx context.Context, name, unit string) (item *models.Ingredient, created bool, err error) {
	item, err = d.FindByWhere(ctx, "name = ? AND measurement_unit = ?", name, unit)
	if err == nil {
		return item, false, nil
	}
	if !IsNotFound(err) {
		return nil, false, err
	}
	item = &models.Ingredient{Name: name, MeasurementUnit: unit}
	if err := d.Create(ctx, item); err != nil {
		if isDupKeyErr(err) {
			// 并发导入时以已存在的记录为准
			item, err = d.FindByWhere(ctx, "name = ? AND measurement_unit = ?", name, unit)
			return item, false, err
		}
		return nil, false, err
	}
	return item, true, nil
}
