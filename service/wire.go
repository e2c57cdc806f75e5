package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(RelationFlags), "*"),

	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(AuthService), "*"),
	wire.Bind(new(IAuthService), new(*AuthService)),

	wire.Struct(new(RecipeService), "*"),
	wire.Bind(new(IRecipeService), new(*RecipeService)),

	wire.Struct(new(LinkService), "*"),
	wire.Bind(new(ILinkService), new(*LinkService)),

	wire.Struct(new(ShoppingListService), "*"),
	wire.Bind(new(IShoppingListService), new(*ShoppingListService)),

	wire.Struct(new(TagService), "*"),
	wire.Bind(new(ITagService), new(*TagService)),

	wire.Struct(new(IngredientService), "*"),
	wire.Bind(new(IIngredientService), new(*IngredientService)),
)
