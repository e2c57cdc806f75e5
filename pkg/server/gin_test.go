package server

import (
	"Foodgram/config"
	"Foodgram/dao"
	"Foodgram/dao/cache"
	"Foodgram/handler"
	"Foodgram/internal/testutil"
	"Foodgram/models"
	"Foodgram/pkg/jwt"
	"Foodgram/service"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	t      *testing.T
	engine *gin.Engine
	fx     *testutil.Fixture
	conf   *config.Config
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	db := testutil.NewDB(t)
	conf, err := config.Parse([]byte("jwt:\n  secret: http-secret\n"))
	require.NoError(t, err)

	users := dao.NewUsers(db)
	recipes := dao.NewRecipeDAO(db)
	favorites := dao.NewFavoriteDAO(db)
	carts := dao.NewShoppingCartDAO(db)
	follows := dao.NewUserFollowDAO(db)
	lines := dao.NewRecipeIngredientDAO(db)
	ingredients := dao.NewIngredientDAO(db)
	tags := dao.NewTagDAO(db)

	flags := &service.RelationFlags{
		Cache:       cache.NewRelationCache(nil, conf),
		FavoriteDAO: favorites,
		CartDAO:     carts,
		FollowDAO:   follows,
	}
	links := &service.LinkService{
		FavoriteDAO: favorites, CartDAO: carts, FollowDAO: follows,
		RecipeDAO: recipes, UsersDAO: users, Flags: flags,
	}
	h := &Handlers{
		Auth: &handler.Auth{AuthService: &service.AuthService{Config: conf, UsersRepo: users}},
		User: &handler.User{
			Config:      conf,
			UserService: &service.UserService{UsersRepo: users, FollowDAO: follows, RecipeDAO: recipes, Flags: flags},
			LinkService: links,
		},
		Recipe: &handler.Recipe{
			Config: conf,
			RecipeService: &service.RecipeService{
				Tx: dao.NewTransaction(db), RecipeDAO: recipes, LineDAO: lines,
				RecipeTagDAO: dao.NewRecipeTagDAO(db), IngredientDAO: ingredients, TagDAO: tags,
				FavoriteDAO: favorites, CartDAO: carts, UsersDAO: users, Flags: flags,
			},
			LinkService:         links,
			ShoppingListService: &service.ShoppingListService{CartDAO: carts, LineDAO: lines},
		},
		Tag:        &handler.Tag{TagService: &service.TagService{TagDAO: tags}},
		Ingredient: &handler.Ingredient{IngredientService: &service.IngredientService{IngredientDAO: ingredients}},
	}
	return &testServer{t: t, engine: NewGinEngine(conf, h), fx: testutil.NewFixture(t, db), conf: conf}
}

func (s *testServer) token(u *models.Users) string {
	tok, err := jwt.GenerateToken([]byte(s.conf.Jwt.Secret), u.ID, u.Email, jwt.TypeAccess, time.Hour)
	require.NoError(s.t, err)
	return tok
}

type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func (s *testServer) do(method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 && w.Header().Get("Content-Type") != "text/plain; charset=utf-8" {
		require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

func recipeURL(id uint64, suffix string) string {
	return "/api/recipes/" + strconv.FormatUint(id, 10) + suffix
}

func TestAPI_RegisterAndLogin(t *testing.T) {
	s := newTestServer(t)

	w, _ := s.do(http.MethodPost, "/api/users", "", map[string]string{
		"email": "chef@foodgram.test", "username": "chef", "first_name": "Шеф",
		"last_name": "Повар", "password": "password-123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, env := s.do(http.MethodPost, "/api/users", "", map[string]string{
		"email": "bad@foodgram.test", "username": "bad name", "first_name": "A",
		"last_name": "B", "password": "password-123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, http.StatusBadRequest, env.Code)

	w, env = s.do(http.MethodPost, "/api/auth/token/login", "", map[string]string{
		"email": "chef@foodgram.test", "password": "password-123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var login struct {
		AuthToken string `json:"auth_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))

	w, env = s.do(http.MethodGet, "/api/users/me", login.AuthToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var me struct {
		Username string `json:"username"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, "chef", me.Username)

	w, _ = s.do(http.MethodGet, "/api/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w, _ = s.do(http.MethodGet, "/api/users/me", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAPI_RecipeLifecycle(t *testing.T) {
	s := newTestServer(t)
	author := s.fx.User("chef")
	guest := s.fx.User("guest")
	salt := s.fx.Ingredient("Salt", "g")
	lunch := s.fx.Tag("Lunch", "lunch")

	payload := map[string]any{
		"name": "Soup", "text": "Boil", "image": "soup.png", "cooking_time": 20,
		"tags":        []uint64{lunch.ID},
		"ingredients": []map[string]any{{"id": salt.ID, "amount": 10}, {"id": salt.ID, "amount": 5}},
	}
	w, _ := s.do(http.MethodPost, "/api/recipes", "", payload)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, env := s.do(http.MethodPost, "/api/recipes", s.token(author), payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		ID          uint64 `json:"id"`
		Ingredients []struct {
			Amount int `json:"amount"`
		} `json:"ingredients"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.Len(t, created.Ingredients, 1)
	assert.Equal(t, 15, created.Ingredients[0].Amount)

	bad := map[string]any{"name": "X", "text": "Y", "cooking_time": 0, "tags": []uint64{lunch.ID},
		"ingredients": []map[string]any{{"id": salt.ID, "amount": 1}}}
	w, _ = s.do(http.MethodPost, "/api/recipes", s.token(author), bad)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	for _, body := range []map[string]any{
		{"name": "X", "text": "Y", "cooking_time": 5, "tags": []uint64{lunch.ID},
			"ingredients": []map[string]any{{"id": 0, "amount": 7}}},
		{"name": "X", "text": "Y", "cooking_time": 5, "tags": []uint64{0},
			"ingredients": []map[string]any{{"id": salt.ID, "amount": 1}}},
		{"name": "X", "text": "Y", "cooking_time": 5, "tags": []uint64{lunch.ID},
			"ingredients": []map[string]any{{"id": salt.ID, "amount": 40000}}},
		{"name": "X", "text": "Y", "cooking_time": 5, "tags": []uint64{lunch.ID},
			"ingredients": []map[string]any{}},
	} {
		w, _ = s.do(http.MethodPost, "/api/recipes", s.token(author), body)
		assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	}

	w, _ = s.do(http.MethodPatch, recipeURL(created.ID, ""), s.token(guest), payload)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = s.do(http.MethodGet, recipeURL(created.ID, ""), "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = s.do(http.MethodGet, "/api/recipes/abc", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w, _ = s.do(http.MethodGet, recipeURL(987654321, ""), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, env = s.do(http.MethodGet, "/api/recipes?tags=lunch&limit=5", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var page struct {
		Count int64 `json:"count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Equal(t, int64(1), page.Count)

	w, _ = s.do(http.MethodDelete, recipeURL(created.ID, ""), s.token(guest), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w, _ = s.do(http.MethodDelete, recipeURL(created.ID, ""), s.token(author), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestAPI_FavoriteAndShoppingCart(t *testing.T) {
	s := newTestServer(t)
	author := s.fx.User("chef")
	user := s.fx.User("user")
	salt := s.fx.Ingredient("Salt", "g")
	s.fx.Recipe(1, author.ID, "A", map[uint64]int{salt.ID: 10})
	s.fx.Recipe(2, author.ID, "B", map[uint64]int{salt.ID: 5})
	tok := s.token(user)

	w, env := s.do(http.MethodPost, recipeURL(1, "/favorite"), tok, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var short struct {
		ID   uint64 `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &short))
	assert.Equal(t, "A", short.Name)

	w, env = s.do(http.MethodPost, recipeURL(1, "/favorite"), tok, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "该食谱已在收藏中", env.Msg)

	w, _ = s.do(http.MethodDelete, recipeURL(1, "/favorite"), tok, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w, _ = s.do(http.MethodDelete, recipeURL(1, "/favorite"), tok, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w, _ = s.do(http.MethodPost, recipeURL(404, "/favorite"), tok, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = s.do(http.MethodGet, "/api/recipes/download_shopping_cart", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Foodgram\nКорзина покупок:\n", w.Body.String())

	for _, id := range []uint64{1, 2} {
		w, _ = s.do(http.MethodPost, recipeURL(id, "/shopping_cart"), tok, nil)
		require.Equal(t, http.StatusCreated, w.Code)
	}
	w, env = s.do(http.MethodPost, recipeURL(2, "/shopping_cart"), tok, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "该食谱已在购物清单中", env.Msg)

	w, _ = s.do(http.MethodGet, "/api/recipes/download_shopping_cart", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=shopping-list.txt", w.Header().Get("Content-Disposition"))
	assert.Equal(t, "Foodgram\nКорзина покупок:\nSalt, 15 g\n", w.Body.String())
}

func TestAPI_Subscriptions(t *testing.T) {
	s := newTestServer(t)
	author := s.fx.User("chef")
	user := s.fx.User("user")
	s.fx.Recipe(1, author.ID, "A", nil)
	s.fx.Recipe(2, author.ID, "B", nil)
	tok := s.token(user)
	authorURL := "/api/users/" + strconv.FormatUint(author.ID, 10)

	w, env := s.do(http.MethodPost, "/api/users/"+strconv.FormatUint(user.ID, 10)+"/subscribe", tok, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "不能关注自己", env.Msg)

	w, _ = s.do(http.MethodPost, authorURL+"/subscribe?recipes_limit=1", tok, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	w, _ = s.do(http.MethodPost, authorURL+"/subscribe", tok, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = s.do(http.MethodGet, authorURL, tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var profile struct {
		IsSubscribed bool `json:"is_subscribed"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	assert.True(t, profile.IsSubscribed)

	w, env = s.do(http.MethodGet, "/api/users/subscriptions?recipes_limit=1", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var page struct {
		Count   int64 `json:"count"`
		Results []struct {
			Recipes      []json.RawMessage `json:"recipes"`
			RecipesCount int64             `json:"recipes_count"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	require.Len(t, page.Results, 1)
	assert.Len(t, page.Results[0].Recipes, 1)
	assert.Equal(t, int64(2), page.Results[0].RecipesCount)

	w, _ = s.do(http.MethodDelete, authorURL+"/subscribe", tok, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w, _ = s.do(http.MethodDelete, authorURL+"/subscribe", tok, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPI_ReferenceDataAndMetrics(t *testing.T) {
	s := newTestServer(t)
	s.fx.Tag("Lunch", "lunch")
	s.fx.Ingredient("Salt", "g")
	s.fx.Ingredient("Sugar", "g")
	s.fx.Ingredient("Milk", "ml")

	w, env := s.do(http.MethodGet, "/api/tags", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var tags []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &tags))
	assert.Len(t, tags, 1)

	w, env = s.do(http.MethodGet, "/api/ingredients?name=s", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var items []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &items))
	assert.Len(t, items, 2)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "foodgram_http_requests_total")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestCORSMiddleware(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/recipes", nil)
	req.Header.Set("Origin", "https://foodgram.example")
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://foodgram.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	assert.Equal(t, "Origin", w.Header().Get("Vary"))

	req = httptest.NewRequest(http.MethodGet, "/api/tags", nil)
	w = httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}
