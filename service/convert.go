package service

import (
	"Foodgram/dao"
	"Foodgram/models"
	"Foodgram/types"
	"context"
)

func toTagItem(t *models.Tag) types.TagItem {
	return types.TagItem{ID: t.ID, Name: t.Name, Color: t.Color, Slug: t.Slug}
}

func toIngredientItem(i *models.Ingredient) types.IngredientItem {
	return types.IngredientItem{ID: i.ID, Name: i.Name, MeasurementUnit: i.MeasurementUnit}
}

func toUserItem(u *models.Users, subscribed bool) types.UserItem {
	return types.UserItem{
		Email:        u.Email,
		ID:           u.ID,
		Username:     u.Username,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		IsSubscribed: subscribed,
	}
}

func toRecipeShort(r *models.Recipe) types.RecipeShort {
	return types.RecipeShort{ID: r.ID, Name: r.Name, Image: r.Image, CookingTime: r.CookingTime}
}

// subscriptionOf 作者信息及其最新 recipesLimit 条食谱
func subscriptionOf(ctx context.Context, recipes *dao.RecipeDAO, author *models.Users, subscribed bool, recipesLimit int) (*types.Subscription, error) {
	list, err := recipes.ListByAuthor(ctx, author.ID, recipesLimit)
	if err != nil {
		return nil, err
	}
	count, err := recipes.CountByAuthor(ctx, author.ID)
	if err != nil {
		return nil, err
	}
	sub := &types.Subscription{
		UserItem:     toUserItem(author, subscribed),
		Recipes:      make([]types.RecipeShort, 0, len(list)),
		RecipesCount: count,
	}
	for _, r := range list {
		sub.Recipes = append(sub.Recipes, toRecipeShort(r))
	}
	return sub, nil
}
