package handler

import (
	"Foodgram/pkg/context"
	"Foodgram/pkg/response"
	"Foodgram/service"
	"Foodgram/types"

	"github.com/gin-gonic/gin"
)

type Tag struct {
	TagService service.ITagService
}

func (t *Tag) RegisterRouter(r gin.IRouter) {
	g := r.Group("/tags")
	g.GET("", context.Wrap(t.List))
	g.GET("/:id", context.Wrap(t.Get))
}

func (t *Tag) List(c *gin.Context) error {
	items, err := t.TagService.List(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, items)
	return nil
}

func (t *Tag) Get(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	item, err := t.TagService.Get(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, item)
	return nil
}

type Ingredient struct {
	IngredientService service.IIngredientService
}

func (i *Ingredient) RegisterRouter(r gin.IRouter) {
	g := r.Group("/ingredients")
	g.GET("", context.Wrap(i.Search))
	g.GET("/:id", context.Wrap(i.Get))
}

// Search ?name= 前缀搜索
func (i *Ingredient) Search(c *gin.Context) error {
	var req types.SearchIngredientsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return bindErr(err)
	}
	items, err := i.IngredientService.Search(c.Request.Context(), req.Name)
	if err != nil {
		return err
	}
	response.Success(c, items)
	return nil
}

func (i *Ingredient) Get(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	item, err := i.IngredientService.Get(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, item)
	return nil
}
