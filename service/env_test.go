package service

import (
	"Foodgram/config"
	"Foodgram/dao"
	"Foodgram/dao/cache"
	"Foodgram/internal/testutil"
	"Foodgram/models"
	"Foodgram/types"
	"strconv"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type testEnv struct {
	db     *gorm.DB
	fx     *testutil.Fixture
	conf   *config.Config
	flags  *RelationFlags
	recipe *RecipeService
	link   *LinkService
	report *ShoppingListService
	user   *UserService
	auth   *AuthService
	tag    *TagService
	ing    *IngredientService
	mr     *miniredis.Miniredis
}

// newTestEnv withCache 为 true 时关系缓存接入 miniredis
func newTestEnv(t *testing.T, withCache bool) *testEnv {
	t.Helper()
	db := testutil.NewDB(t)
	conf, err := config.Parse([]byte("jwt:\n  secret: test-secret\n"))
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}

	e := &testEnv{db: db, fx: testutil.NewFixture(t, db), conf: conf}
	var rds *redis.Client
	if withCache {
		e.mr = miniredis.RunT(t)
		rds = redis.NewClient(&redis.Options{Addr: e.mr.Addr()})
		t.Cleanup(func() { _ = rds.Close() })
	}

	users := dao.NewUsers(db)
	recipes := dao.NewRecipeDAO(db)
	favorites := dao.NewFavoriteDAO(db)
	carts := dao.NewShoppingCartDAO(db)
	follows := dao.NewUserFollowDAO(db)
	lines := dao.NewRecipeIngredientDAO(db)
	recipeTags := dao.NewRecipeTagDAO(db)
	ingredients := dao.NewIngredientDAO(db)
	tags := dao.NewTagDAO(db)

	e.flags = &RelationFlags{
		Cache:       cache.NewRelationCache(rds, conf),
		FavoriteDAO: favorites,
		CartDAO:     carts,
		FollowDAO:   follows,
	}
	e.recipe = &RecipeService{
		Tx:            dao.NewTransaction(db),
		RecipeDAO:     recipes,
		LineDAO:       lines,
		RecipeTagDAO:  recipeTags,
		IngredientDAO: ingredients,
		TagDAO:        tags,
		FavoriteDAO:   favorites,
		CartDAO:       carts,
		UsersDAO:      users,
		Flags:         e.flags,
	}
	e.link = &LinkService{
		FavoriteDAO: favorites,
		CartDAO:     carts,
		FollowDAO:   follows,
		RecipeDAO:   recipes,
		UsersDAO:    users,
		Flags:       e.flags,
	}
	e.report = &ShoppingListService{CartDAO: carts, LineDAO: lines}
	e.user = &UserService{UsersRepo: users, FollowDAO: follows, RecipeDAO: recipes, Flags: e.flags}
	e.auth = &AuthService{Config: conf, UsersRepo: users}
	e.tag = &TagService{TagDAO: tags}
	e.ing = &IngredientService{IngredientDAO: ingredients}
	return e
}

func (e *testEnv) count(t *testing.T, model any, where string, args ...any) int64 {
	t.Helper()
	var n int64
	if err := e.db.Model(model).Where(where, args...).Count(&n).Error; err != nil {
		t.Fatalf("count %T: %v", model, err)
	}
	return n
}

func (e *testEnv) lineAmounts(t *testing.T, recipeID uint64) map[uint64]int {
	t.Helper()
	var rows []models.RecipeIngredient
	if err := e.db.Where("recipe_id = ?", recipeID).Find(&rows).Error; err != nil {
		t.Fatalf("load lines: %v", err)
	}
	out := make(map[uint64]int, len(rows))
	for _, r := range rows {
		out[r.IngredientID] = r.Amount
	}
	return out
}

func (e *testEnv) tagIDs(t *testing.T, recipeID uint64) []uint64 {
	t.Helper()
	var ids []uint64
	if err := e.db.Model(&models.RecipeTag{}).Where("recipe_id = ?", recipeID).Order("tag_id").Pluck("tag_id", &ids).Error; err != nil {
		t.Fatalf("load tags: %v", err)
	}
	return ids
}

func writeReq(name string, tags []uint64, ingredients ...types.RecipeIngredientReq) *types.RecipeWriteRequest {
	return &types.RecipeWriteRequest{
		Ingredients: ingredients,
		Tags:        tags,
		Image:       "recipes/" + name + ".png",
		Name:        name,
		Text:        "Описание " + name,
		CookingTime: 15,
	}
}

func ing(id uint64, amount int) types.RecipeIngredientReq {
	return types.RecipeIngredientReq{ID: id, Amount: amount}
}

func itoa(id uint64) string {
	return strconv.FormatUint(id, 10)
}
