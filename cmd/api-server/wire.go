//go:build wireinject
// +build wireinject

package main

import (
	"Foodgram/config"
	"Foodgram/dao"
	"Foodgram/dao/cache"
	"Foodgram/handler"
	"Foodgram/pkg/client"
	"Foodgram/pkg/database"
	"Foodgram/pkg/server"
	"Foodgram/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,
		server.NewGinEngine,
		cache.ProviderSet,
		dao.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Recipe), "*"),
		wire.Struct(new(handler.Tag), "*"),
		wire.Struct(new(handler.Ingredient), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),
	)
	return nil
}

func InitTools(cfg *config.Config) *Tools {
	wire.Build(
		database.NewDB,
		dao.NewIngredientDAO,
		wire.Struct(new(service.IngredientService), "*"),
		wire.Bind(new(service.IIngredientService), new(*service.IngredientService)),
		wire.Struct(new(Tools), "*"),
	)
	return nil
}
