package dao

import (
	"Foodgram/models"
	"Foodgram/pkg/bizerr"
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RecipeDAO struct {
	Repo[models.Recipe]
}

func NewRecipeDAO(db *gorm.DB) *RecipeDAO {
	return &RecipeDAO{Repo: NewRepo[models.Recipe](db)}
}

// FindForUpdate 在事务中加行锁读取食谱，sqlite 下锁子句被忽略
func (d *RecipeDAO) FindForUpdate(ctx context.Context, recipeID uint64) (*models.Recipe, error) {
	var recipe models.Recipe
	err := d.Conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&recipe, "id = ?", recipeID).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// UpdateFields 更新食谱基础字段，食谱已不存在时返回 NotFound
func (d *RecipeDAO) UpdateFields(ctx context.Context, recipe *models.Recipe) error {
	res := d.Conn(ctx).
		Model(&models.Recipe{}).
		Where("id = ?", recipe.ID).
		Updates(map[string]any{
			"name":         recipe.Name,
			"text":         recipe.Text,
			"image":        recipe.Image,
			"cooking_time": recipe.CookingTime,
			"updated_at":   recipe.UpdatedAt,
		})
	if res.Error != nil {
		return fmt.Errorf("dao.Recipe.UpdateFields: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return bizerr.NotFound("食谱不存在")
	}
	return nil
}

func (d *RecipeDAO) Delete(ctx context.Context, recipeID uint64) error {
	if err := d.Conn(ctx).Where("id = ?", recipeID).Delete(&models.Recipe{}).Error; err != nil {
		return fmt.Errorf("dao.Recipe.Delete: %w", err)
	}
	return nil
}

// RecipeQuery 食谱列表筛选条件，零值表示不筛选
type RecipeQuery struct {
	AuthorID    uint64
	TagSlugs    []string
	FavoritedBy uint64
	InCartOf    uint64
	Limit       int
	Offset      int
}

// List 按发布时间倒序分页查询
func (d *RecipeDAO) List(ctx context.Context, q RecipeQuery) ([]*models.Recipe, int64, error) {
	filtered := func() *gorm.DB {
		db := d.Conn(ctx).Model(&models.Recipe{})
		if q.AuthorID > 0 {
			db = db.Where("author_id = ?", q.AuthorID)
		}
		if len(q.TagSlugs) > 0 {
			sub := d.Conn(ctx).Table("recipe_tags rt").
				Select("rt.recipe_id").
				Joins("JOIN tags t ON t.id = rt.tag_id").
				Where("t.slug IN ?", q.TagSlugs)
			db = db.Where("id IN (?)", sub)
		}
		if q.FavoritedBy > 0 {
			sub := d.Conn(ctx).Model(&models.Favorite{}).Select("recipe_id").Where("user_id = ?", q.FavoritedBy)
			db = db.Where("id IN (?)", sub)
		}
		if q.InCartOf > 0 {
			sub := d.Conn(ctx).Model(&models.ShoppingCart{}).Select("recipe_id").Where("user_id = ?", q.InCartOf)
			db = db.Where("id IN (?)", sub)
		}
		return db
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	recipes := make([]*models.Recipe, 0)
	db := filtered().Order("created_at DESC").Order("id DESC")
	if q.Limit > 0 {
		db = db.Limit(q.Limit).Offset(q.Offset)
	}
	if err := db.Find(&recipes).Error; err != nil {
		return nil, 0, err
	}
	return recipes, total, nil
}

// ListByAuthor 作者最新的 limit 条食谱，limit<=0 不限制
func (d *RecipeDAO) ListByAuthor(ctx context.Context, authorID uint64, limit int) ([]*models.Recipe, error) {
	recipes := make([]*models.Recipe, 0)
	db := d.Conn(ctx).Where("author_id = ?", authorID).Order("created_at DESC").Order("id DESC")
	if limit > 0 {
		db = db.Limit(limit)
	}
	err := db.Find(&recipes).Error
	return recipes, err
}

func (d *RecipeDAO) CountByAuthor(ctx context.Context, authorID uint64) (int64, error) {
	return d.Count(ctx, "author_id = ?", authorID)
}
