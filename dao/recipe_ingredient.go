package dao

import (
	"Foodgram/models"
	"context"
	"fmt"

	"gorm.io/gorm"
)

type RecipeIngredientDAO struct {
	Repo[models.RecipeIngredient]
}

func NewRecipeIngredientDAO(db *gorm.DB) *RecipeIngredientDAO {
	return &RecipeIngredientDAO{Repo: NewRepo[models.RecipeIngredient](db)}
}

// InsertLines 批量写入食材行，(recipe_id, ingredient_id) 需调用方合并去重
func (d *RecipeIngredientDAO) InsertLines(ctx context.Context, lines []*models.RecipeIngredient) error {
	if len(lines) == 0 {
		return nil
	}
	err := d.Conn(ctx).CreateInBatches(lines, 100).Error
	if isDupKeyErr(err) {
		return duplicateErr(err)
	}
	return err
}

func (d *RecipeIngredientDAO) DeleteByRecipe(ctx context.Context, recipeID uint64) error {
	if err := d.Conn(ctx).Where("recipe_id = ?", recipeID).Delete(&models.RecipeIngredient{}).Error; err != nil {
		return fmt.Errorf("dao.RecipeIngredient.DeleteByRecipe: %w", err)
	}
	return nil
}

// ReplaceLines 先删后插，需在事务中调用
func (d *RecipeIngredientDAO) ReplaceLines(ctx context.Context, recipeID uint64, lines []*models.RecipeIngredient) error {
	if err := d.DeleteByRecipe(ctx, recipeID); err != nil {
		return err
	}
	return d.InsertLines(ctx, lines)
}

// IngredientLine 食材行及食材信息
type IngredientLine struct {
	RecipeID        uint64 `gorm:"column:recipe_id"`
	IngredientID    uint64 `gorm:"column:ingredient_id"`
	Name            string `gorm:"column:name"`
	MeasurementUnit string `gorm:"column:measurement_unit"`
	Amount          int    `gorm:"column:amount"`
}

// LinesByRecipes 批量查询食谱食材行，保持写入顺序
func (d *RecipeIngredientDAO) LinesByRecipes(ctx context.Context, recipeIDs []uint64) (map[uint64][]IngredientLine, error) {
	result := make(map[uint64][]IngredientLine, len(recipeIDs))
	if len(recipeIDs) == 0 {
		return result, nil
	}
	var rows []IngredientLine
	err := d.Conn(ctx).
		Table("recipe_ingredients ri").
		Select("ri.recipe_id, ri.ingredient_id, i.name, i.measurement_unit, ri.amount").
		Joins("JOIN ingredients i ON i.id = ri.ingredient_id").
		Where("ri.recipe_id IN ?", recipeIDs).
		Order("ri.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.RecipeID] = append(result[row.RecipeID], row)
	}
	return result, nil
}

// IngredientTotal 同一食材在多个食谱中的用量合计。
// 食材记录缺失时 Name / MeasurementUnit 为 nil。
type IngredientTotal struct {
	IngredientID    uint64  `gorm:"column:ingredient_id"`
	Name            *string `gorm:"column:name"`
	MeasurementUnit *string `gorm:"column:measurement_unit"`
	Amount          int64   `gorm:"column:amount"`
}

// SumByIngredient 按食材汇总 recipeIDs 中的用量
func (d *RecipeIngredientDAO) SumByIngredient(ctx context.Context, recipeIDs []uint64) ([]IngredientTotal, error) {
	totals := make([]IngredientTotal, 0)
	if len(recipeIDs) == 0 {
		return totals, nil
	}
	err := d.Conn(ctx).
		Table("recipe_ingredients ri").
		Select("ri.ingredient_id, i.name, i.measurement_unit, SUM(ri.amount) AS amount").
		Joins("LEFT JOIN ingredients i ON i.id = ri.ingredient_id").
		Where("ri.recipe_id IN ?", recipeIDs).
		Group("ri.ingredient_id, i.name, i.measurement_unit").
		Scan(&totals).Error
	if err != nil {
		return nil, fmt.Errorf("dao.RecipeIngredient.SumByIngredient: %w", err)
	}
	return totals, nil
}
