package handler

import (
	"Foodgram/config"
	"Foodgram/middleware"
	"Foodgram/pkg/context"
	"Foodgram/pkg/response"
	"Foodgram/service"
	"Foodgram/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

const shoppingListFilename = "shopping-list.txt"

type Recipe struct {
	Config              *config.Config
	RecipeService       service.IRecipeService
	LinkService         service.ILinkService
	ShoppingListService service.IShoppingListService
}

func (h *Recipe) RegisterRouter(r gin.IRouter) {
	secret := []byte(h.Config.Jwt.Secret)
	authorize := middleware.Auth(secret)
	optional := middleware.OptionalAuth(secret)

	g := r.Group("/recipes")
	g.GET("", optional, context.Wrap(h.List))
	g.POST("", authorize, context.Wrap(h.Create))
	g.GET("/download_shopping_cart", authorize, context.Wrap(h.DownloadShoppingCart))
	g.GET("/:id", optional, context.Wrap(h.Get))
	g.PATCH("/:id", authorize, context.Wrap(h.Update))
	g.DELETE("/:id", authorize, context.Wrap(h.Delete))
	g.POST("/:id/favorite", authorize, context.Wrap(h.addLink(service.LinkFavorite)))
	g.DELETE("/:id/favorite", authorize, context.Wrap(h.removeLink(service.LinkFavorite)))
	g.POST("/:id/shopping_cart", authorize, context.Wrap(h.addLink(service.LinkShoppingCart)))
	g.DELETE("/:id/shopping_cart", authorize, context.Wrap(h.removeLink(service.LinkShoppingCart)))
}

func (h *Recipe) List(c *gin.Context) error {
	var req types.ListRecipesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return bindErr(err)
	}
	page, err := h.RecipeService.List(c.Request.Context(), context.GetViewerID(c), &req)
	if err != nil {
		return err
	}
	response.Success(c, page)
	return nil
}

func (h *Recipe) Get(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	item, err := h.RecipeService.Get(c.Request.Context(), context.GetViewerID(c), id)
	if err != nil {
		return err
	}
	response.Success(c, item)
	return nil
}

// Create 发布食谱
func (h *Recipe) Create(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.RecipeWriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindErr(err)
	}
	item, err := h.RecipeService.Create(c.Request.Context(), uid, &req)
	if err != nil {
		return err
	}
	response.Created(c, item)
	return nil
}

// Update 仅作者可修改
func (h *Recipe) Update(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	var req types.RecipeWriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindErr(err)
	}
	item, err := h.RecipeService.Update(c.Request.Context(), uid, id, &req)
	if err != nil {
		return err
	}
	response.Success(c, item)
	return nil
}

func (h *Recipe) Delete(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	if err := h.RecipeService.Delete(c.Request.Context(), uid, id); err != nil {
		return err
	}
	response.NoContent(c)
	return nil
}

func (h *Recipe) addLink(kind service.LinkKind) func(*gin.Context) error {
	return func(c *gin.Context) error {
		uid, err := context.GetUserID(c)
		if err != nil {
			return err
		}
		id, err := context.ParamID(c, "id")
		if err != nil {
			return err
		}
		summary, err := h.LinkService.Add(c.Request.Context(), kind, uid, id)
		if err != nil {
			return err
		}
		response.Created(c, summary)
		return nil
	}
}

func (h *Recipe) removeLink(kind service.LinkKind) func(*gin.Context) error {
	return func(c *gin.Context) error {
		uid, err := context.GetUserID(c)
		if err != nil {
			return err
		}
		id, err := context.ParamID(c, "id")
		if err != nil {
			return err
		}
		if err := h.LinkService.Remove(c.Request.Context(), kind, uid, id); err != nil {
			return err
		}
		response.NoContent(c)
		return nil
	}
}

// DownloadShoppingCart 下载购物清单文本
func (h *Recipe) DownloadShoppingCart(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	text, err := h.ShoppingListService.Report(c.Request.Context(), uid)
	if err != nil {
		return err
	}
	c.Header("Content-Disposition", "attachment; filename="+shoppingListFilename)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
	return nil
}
