package types

// RecipeIngredientReq 食谱中的一种食材
type RecipeIngredientReq struct {
	ID     uint64 `json:"id" binding:"required,gt=0"`
	Amount int    `json:"amount" binding:"min=1,max=32767"` // 用量
}

// RecipeWriteRequest 创建 / 更新食谱
type RecipeWriteRequest struct {
	Ingredients []RecipeIngredientReq `json:"ingredients" binding:"required,min=1,dive"`
	Tags        []uint64              `json:"tags" binding:"required,min=1,dive,gt=0"`
	Image       string                `json:"image"`
	Name        string                `json:"name" binding:"required,max=200"`
	Text        string                `json:"text" binding:"required"`
	CookingTime int                   `json:"cooking_time" binding:"min=1,max=32767"` // 分钟
}

// ListRecipesRequest 食谱列表筛选
type ListRecipesRequest struct {
	Page             int      `form:"page"`
	Limit            int      `form:"limit"`
	Author           uint64   `form:"author"`
	Tags             []string `form:"tags"`
	IsFavorited      bool     `form:"is_favorited"`
	IsInShoppingCart bool     `form:"is_in_shopping_cart"`
}

type RecipeIngredientItem struct {
	ID              uint64 `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

type RecipeItem struct {
	ID               uint64                 `json:"id"`
	Tags             []TagItem              `json:"tags"`
	Author           *UserItem              `json:"author"`
	Ingredients      []RecipeIngredientItem `json:"ingredients"`
	IsFavorited      bool                   `json:"is_favorited"`
	IsInShoppingCart bool                   `json:"is_in_shopping_cart"`
	Name             string                 `json:"name"`
	Image            string                 `json:"image"`
	Text             string                 `json:"text"`
	CookingTime      int                    `json:"cooking_time"`
}

// RecipeShort 收藏、购物清单、订阅列表中的食谱摘要
type RecipeShort struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

// Page 分页结果
type Page[T any] struct {
	Count   int64 `json:"count"`
	Results []T   `json:"results"`
}
