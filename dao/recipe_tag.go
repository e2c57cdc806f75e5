package dao

import (
	"Foodgram/models"
	"context"

	"gorm.io/gorm"
)

// RecipeTagDAO subject=食谱 object=标签
type RecipeTagDAO struct {
	*RelationStore[models.RecipeTag]
}

func NewRecipeTagDAO(db *gorm.DB) *RecipeTagDAO {
	return &RecipeTagDAO{
		RelationStore: NewRelationStore(db, "recipe_id", "tag_id", func(recipeID, tagID uint64) *models.RecipeTag {
			return &models.RecipeTag{RecipeID: recipeID, TagID: tagID}
		}),
	}
}

// Replace 整体替换食谱标签
func (d *RecipeTagDAO) Replace(ctx context.Context, recipeID uint64, tagIDs []uint64) error {
	if err := d.DeleteBySubject(ctx, recipeID); err != nil {
		return err
	}
	return d.LinkMany(ctx, recipeID, tagIDs)
}

type recipeTagRow struct {
	RecipeID uint64 `gorm:"column:recipe_id"`
	models.Tag
}

// TagsByRecipes 批量查询食谱标签，按标签 id 升序
func (d *RecipeTagDAO) TagsByRecipes(ctx context.Context, recipeIDs []uint64) (map[uint64][]models.Tag, error) {
	result := make(map[uint64][]models.Tag, len(recipeIDs))
	if len(recipeIDs) == 0 {
		return result, nil
	}
	var rows []recipeTagRow
	err := d.Conn(ctx).
		Table("recipe_tags rt").
		Select("rt.recipe_id, t.id, t.name, t.color, t.slug").
		Joins("JOIN tags t ON t.id = rt.tag_id").
		Where("rt.recipe_id IN ?", recipeIDs).
		Order("t.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.RecipeID] = append(result[row.RecipeID], row.Tag)
	}
	return result, nil
}
