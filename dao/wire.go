package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewTransaction,
	NewUsers,
	NewUserFollowDAO,
	NewTagDAO,
	NewIngredientDAO,
	NewRecipeDAO,
	NewRecipeIngredientDAO,
	NewRecipeTagDAO,
	NewFavoriteDAO,
	NewShoppingCartDAO,
)
