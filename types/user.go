package types

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email,max=254"`
	Username  string `json:"username" binding:"required,max=150,username"`
	FirstName string `json:"first_name" binding:"required,max=150"`
	LastName  string `json:"last_name" binding:"required,max=150"`
	Password  string `json:"password" binding:"required,min=8,max=150"`
}

type SetPasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8,max=150"`
}

type ListUsersRequest struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

type SubscriptionsRequest struct {
	Page         int `form:"page"`
	Limit        int `form:"limit"`
	RecipesLimit int `form:"recipes_limit"` // <=0 不限制
}

type UserItem struct {
	Email        string `json:"email"`
	ID           uint64 `json:"id"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsSubscribed bool   `json:"is_subscribed"`
}

// Subscription 订阅作者及其食谱
type Subscription struct {
	UserItem
	Recipes      []RecipeShort `json:"recipes"`
	RecipesCount int64         `json:"recipes_count"`
}
