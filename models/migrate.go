package models

// All 需要 AutoMigrate 的表
func All() []any {
	return []any{
		&Users{},
		&UserFollow{},
		&Tag{},
		&Ingredient{},
		&Recipe{},
		&RecipeIngredient{},
		&RecipeTag{},
		&Favorite{},
		&ShoppingCart{},
	}
}
