package models

import "time"

// Favorite 收藏，唯一键: user_id + recipe_id
type Favorite struct {
	ID        uint64    `gorm:"column:id;primaryKey;AUTO_INCREMENT" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_favorite_user_recipe,priority:1" json:"user_id"`
	RecipeID  uint64    `gorm:"column:recipe_id;not null;uniqueIndex:uk_favorite_user_recipe,priority:2;index" json:"recipe_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Favorite) TableName() string {
	return "favorites"
}

// ShoppingCart 购物清单，唯一键: user_id + recipe_id
type ShoppingCart struct {
	ID        uint64    `gorm:"column:id;primaryKey;AUTO_INCREMENT" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_cart_user_recipe,priority:1" json:"user_id"`
	RecipeID  uint64    `gorm:"column:recipe_id;not null;uniqueIndex:uk_cart_user_recipe,priority:2;index" json:"recipe_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (ShoppingCart) TableName() string {
	return "shopping_carts"
}
