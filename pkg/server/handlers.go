package server

import (
	"Foodgram/handler"
)

type Handlers struct {
	Auth       *handler.Auth
	User       *handler.User
	Recipe     *handler.Recipe
	Tag        *handler.Tag
	Ingredient *handler.Ingredient
}
