package dao

import (
	"Foodgram/models"

	"gorm.io/gorm"
)

type FavoriteDAO struct {
	*RelationStore[models.Favorite]
}

func NewFavoriteDAO(db *gorm.DB) *FavoriteDAO {
	return &FavoriteDAO{
		RelationStore: NewRelationStore(db, "user_id", "recipe_id", func(userID, recipeID uint64) *models.Favorite {
			return &models.Favorite{UserID: userID, RecipeID: recipeID}
		}),
	}
}

type ShoppingCartDAO struct {
	*RelationStore[models.ShoppingCart]
}

func NewShoppingCartDAO(db *gorm.DB) *ShoppingCartDAO {
	return &ShoppingCartDAO{
		RelationStore: NewRelationStore(db, "user_id", "recipe_id", func(userID, recipeID uint64) *models.ShoppingCart {
			return &models.ShoppingCart{UserID: userID, RecipeID: recipeID}
		}),
	}
}
