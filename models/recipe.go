package models

import "time"

type Recipe struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"` // 雪花算法ID
	AuthorID    uint64    `gorm:"column:author_id;not null;index:idx_recipes_author" json:"author_id"`
	Name        string    `gorm:"column:name;type:varchar(200);not null" json:"name"`
	Text        string    `gorm:"column:text;type:text;not null" json:"text"`
	Image       string    `gorm:"column:image;type:varchar(255);not null;default:''" json:"image"`
	CookingTime int       `gorm:"column:cooking_time;not null" json:"cooking_time"` // 分钟
	CreatedAt   time.Time `gorm:"column:created_at;index:idx_recipes_created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Recipe) TableName() string {
	return "recipes"
}

// RecipeIngredient 食谱食材行，唯一键: recipe_id + ingredient_id
type RecipeIngredient struct {
	ID           uint64 `gorm:"column:id;primaryKey;AUTO_INCREMENT" json:"id"`
	RecipeID     uint64 `gorm:"column:recipe_id;not null;uniqueIndex:uk_recipe_ingredient,priority:1" json:"recipe_id"`
	IngredientID uint64 `gorm:"column:ingredient_id;not null;uniqueIndex:uk_recipe_ingredient,priority:2;index" json:"ingredient_id"`
	Amount       int    `gorm:"column:amount;not null" json:"amount"`
}

func (RecipeIngredient) TableName() string {
	return "recipe_ingredients"
}

// RecipeTag 食谱标签，唯一键: recipe_id + tag_id
type RecipeTag struct {
	ID       uint64 `gorm:"column:id;primaryKey;AUTO_INCREMENT" json:"id"`
	RecipeID uint64 `gorm:"column:recipe_id;not null;uniqueIndex:uk_recipe_tag,priority:1" json:"recipe_id"`
	TagID    uint64 `gorm:"column:tag_id;not null;uniqueIndex:uk_recipe_tag,priority:2;index" json:"tag_id"`
}

func (RecipeTag) TableName() string {
	return "recipe_tags"
}
