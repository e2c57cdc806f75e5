package service

import (
	"Foodgram/dao"
	"Foodgram/models"
	"Foodgram/pkg/bizerr"
	"Foodgram/pkg/snowflake"
	"Foodgram/pkg/utils"
	"Foodgram/types"
	"context"
	"strings"
	"time"
)

var _ IRecipeService = (*RecipeService)(nil)

type IRecipeService interface {
	Create(ctx context.Context, authorID uint64, req *types.RecipeWriteRequest) (*types.RecipeItem, error)
	Update(ctx context.Context, userID, recipeID uint64, req *types.RecipeWriteRequest) (*types.RecipeItem, error)
	Delete(ctx context.Context, userID, recipeID uint64) error
	Get(ctx context.Context, viewerID, recipeID uint64) (*types.RecipeItem, error)
	List(ctx context.Context, viewerID uint64, req *types.ListRecipesRequest) (*types.Page[*types.RecipeItem], error)
}

// RecipeService 食谱及其食材行、标签作为一个整体读写
type RecipeService struct {
	Tx            *dao.Transaction
	RecipeDAO     *dao.RecipeDAO
	LineDAO       *dao.RecipeIngredientDAO
	RecipeTagDAO  *dao.RecipeTagDAO
	IngredientDAO *dao.IngredientDAO
	TagDAO        *dao.TagDAO
	FavoriteDAO   *dao.FavoriteDAO
	CartDAO       *dao.ShoppingCartDAO
	UsersDAO      *dao.Users
	Flags         *RelationFlags
}

// MaxAmount 食材用量与烹饪时间的上限（正 smallint 范围）
const MaxAmount = 32767

// composition 校验后的食材行与标签
type composition struct {
	lines  []*models.RecipeIngredient
	tagIDs []uint64
}

// compose 校验请求；同一食材出现多次时用量累加为一行
func (s *RecipeService) compose(ctx context.Context, req *types.RecipeWriteRequest) (*composition, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, bizerr.Validation("食谱名称不能为空")
	}
	if strings.TrimSpace(req.Text) == "" {
		return nil, bizerr.Validation("食谱描述不能为空")
	}
	if req.CookingTime < 1 {
		return nil, bizerr.Validation("烹饪时间必须大于 0")
	}
	if req.CookingTime > MaxAmount {
		return nil, bizerr.Validation("烹饪时间不能超过 %d", MaxAmount)
	}
	if len(req.Ingredients) == 0 {
		return nil, bizerr.Validation("至少需要一种食材")
	}
	if len(req.Tags) == 0 {
		return nil, bizerr.Validation("至少需要一个标签")
	}

	for _, id := range req.Tags {
		if id == 0 {
			return nil, bizerr.Validation("标签 id 不能为空")
		}
	}

	c := &composition{tagIDs: utils.Unique(req.Tags)}
	merged := make(map[uint64]*models.RecipeIngredient, len(req.Ingredients))
	for _, item := range req.Ingredients {
		if item.ID == 0 {
			return nil, bizerr.Validation("食材 id 不能为空")
		}
		if item.Amount <= 0 {
			return nil, bizerr.Validation("食材用量必须大于 0")
		}
		if item.Amount > MaxAmount {
			return nil, bizerr.Validation("食材用量不能超过 %d", MaxAmount)
		}
		if line, ok := merged[item.ID]; ok {
			// 两项都不超过 MaxAmount，相加不会溢出
			if line.Amount+item.Amount > MaxAmount {
				return nil, bizerr.Validation("食材 %d 合并后用量不能超过 %d", item.ID, MaxAmount)
			}
			line.Amount += item.Amount
			continue
		}
		line := &models.RecipeIngredient{IngredientID: item.ID, Amount: item.Amount}
		merged[item.ID] = line
		c.lines = append(c.lines, line)
	}

	ingredientIDs := make([]uint64, 0, len(c.lines))
	for _, line := range c.lines {
		ingredientIDs = append(ingredientIDs, line.IngredientID)
	}
	ingredients, err := s.IngredientDAO.FindByIds(ctx, ingredientIDs)
	if err != nil {
		return nil, err
	}
	if missing, ok := missingID(ingredientIDs, len(ingredients), func(i int) uint64 { return ingredients[i].ID }); ok {
		return nil, bizerr.NotFound("食材不存在: %d", missing)
	}
	tags, err := s.TagDAO.FindByIds(ctx, c.tagIDs)
	if err != nil {
		return nil, err
	}
	if missing, ok := missingID(c.tagIDs, len(tags), func(i int) uint64 { return tags[i].ID }); ok {
		return nil, bizerr.NotFound("标签不存在: %d", missing)
	}
	return c, nil
}

// missingID 返回 want 中第一个未查到的 id
func missingID(want []uint64, n int, id func(int) uint64) (uint64, bool) {
	found := make(map[uint64]bool, n)
	for i := 0; i < n; i++ {
		found[id(i)] = true
	}
	for _, w := range want {
		if !found[w] {
			return w, true
		}
	}
	return 0, false
}

func (c *composition) bind(recipeID uint64) []*models.RecipeIngredient {
	for _, line := range c.lines {
		line.RecipeID = recipeID
	}
	return c.lines
}

func (s *RecipeService) Create(ctx context.Context, authorID uint64, req *types.RecipeWriteRequest) (*types.RecipeItem, error) {
	c, err := s.compose(ctx, req)
	if err != nil {
		return nil, err
	}

	recipe := &models.Recipe{
		ID:          snowflake.GenID(),
		AuthorID:    authorID,
		Name:        req.Name,
		Text:        req.Text,
		Image:       req.Image,
		CookingTime: req.CookingTime,
	}
	err = s.Tx.Run(ctx, func(ctx context.Context) error {
		if err := s.RecipeDAO.Create(ctx, recipe); err != nil {
			return err
		}
		if err := s.LineDAO.InsertLines(ctx, c.bind(recipe.ID)); err != nil {
			return err
		}
		return s.RecipeTagDAO.LinkMany(ctx, recipe.ID, c.tagIDs)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, authorID, recipe.ID)
}

// owned 食谱存在且属于 userID，需在事务内调用，读取时加行锁
func (s *RecipeService) owned(ctx context.Context, userID, recipeID uint64) (*models.Recipe, error) {
	recipe, err := s.RecipeDAO.FindForUpdate(ctx, recipeID)
	if dao.IsNotFound(err) {
		return nil, bizerr.NotFound("食谱不存在")
	}
	if err != nil {
		return nil, err
	}
	if recipe.AuthorID != userID {
		return nil, bizerr.Forbidden("只有作者可以修改食谱")
	}
	return recipe, nil
}

// Update 整体替换食材行与标签
func (s *RecipeService) Update(ctx context.Context, userID, recipeID uint64, req *types.RecipeWriteRequest) (*types.RecipeItem, error) {
	err := s.Tx.Run(ctx, func(ctx context.Context) error {
		recipe, err := s.owned(ctx, userID, recipeID)
		if err != nil {
			return err
		}
		c, err := s.compose(ctx, req)
		if err != nil {
			return err
		}

		recipe.Name = req.Name
		recipe.Text = req.Text
		if req.Image != "" {
			recipe.Image = req.Image
		}
		recipe.CookingTime = req.CookingTime
		recipe.UpdatedAt = time.Now()

		if err := s.RecipeDAO.UpdateFields(ctx, recipe); err != nil {
			return err
		}
		if err := s.LineDAO.ReplaceLines(ctx, recipe.ID, c.bind(recipe.ID)); err != nil {
			return err
		}
		return s.RecipeTagDAO.Replace(ctx, recipe.ID, c.tagIDs)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, userID, recipeID)
}

// Delete 同时删除食材行、标签、收藏与购物清单记录
func (s *RecipeService) Delete(ctx context.Context, userID, recipeID uint64) error {
	var favoritedBy, cartOf []uint64
	err := s.Tx.Run(ctx, func(ctx context.Context) error {
		recipe, err := s.owned(ctx, userID, recipeID)
		if err != nil {
			return err
		}
		if favoritedBy, err = s.FavoriteDAO.SubjectIDs(ctx, recipe.ID); err != nil {
			return err
		}
		if cartOf, err = s.CartDAO.SubjectIDs(ctx, recipe.ID); err != nil {
			return err
		}
		if err := s.LineDAO.DeleteByRecipe(ctx, recipe.ID); err != nil {
			return err
		}
		if err := s.RecipeTagDAO.DeleteBySubject(ctx, recipe.ID); err != nil {
			return err
		}
		if err := s.FavoriteDAO.DeleteByObject(ctx, recipe.ID); err != nil {
			return err
		}
		if err := s.CartDAO.DeleteByObject(ctx, recipe.ID); err != nil {
			return err
		}
		return s.RecipeDAO.Delete(ctx, recipe.ID)
	})
	if err != nil {
		return err
	}
	s.Flags.Invalidate(ctx, LinkFavorite, favoritedBy...)
	s.Flags.Invalidate(ctx, LinkShoppingCart, cartOf...)
	return nil
}

func (s *RecipeService) Get(ctx context.Context, viewerID, recipeID uint64) (*types.RecipeItem, error) {
	recipe, err := s.RecipeDAO.FindById(ctx, recipeID)
	if dao.IsNotFound(err) {
		return nil, bizerr.NotFound("食谱不存在")
	}
	if err != nil {
		return nil, err
	}
	items, err := s.assemble(ctx, viewerID, []*models.Recipe{recipe})
	if err != nil {
		return nil, err
	}
	return items[0], nil
}

// List 按发布时间倒序；收藏、购物清单筛选仅对登录用户生效
func (s *RecipeService) List(ctx context.Context, viewerID uint64, req *types.ListRecipesRequest) (*types.Page[*types.RecipeItem], error) {
	limit, offset := utils.Paginate(req.Page, req.Limit)
	q := dao.RecipeQuery{
		AuthorID: req.Author,
		TagSlugs: req.Tags,
		Limit:    limit,
		Offset:   offset,
	}
	if viewerID > 0 && req.IsFavorited {
		q.FavoritedBy = viewerID
	}
	if viewerID > 0 && req.IsInShoppingCart {
		q.InCartOf = viewerID
	}

	recipes, total, err := s.RecipeDAO.List(ctx, q)
	if err != nil {
		return nil, err
	}
	items, err := s.assemble(ctx, viewerID, recipes)
	if err != nil {
		return nil, err
	}
	return &types.Page[*types.RecipeItem]{Count: total, Results: items}, nil
}

// assemble 批量补全作者、食材、标签及当前用户的标记
func (s *RecipeService) assemble(ctx context.Context, viewerID uint64, recipes []*models.Recipe) ([]*types.RecipeItem, error) {
	items := make([]*types.RecipeItem, 0, len(recipes))
	if len(recipes) == 0 {
		return items, nil
	}

	ids := make([]uint64, 0, len(recipes))
	authorIDs := make([]uint64, 0, len(recipes))
	for _, r := range recipes {
		ids = append(ids, r.ID)
		authorIDs = append(authorIDs, r.AuthorID)
	}
	authorIDs = utils.Unique(authorIDs)

	lines, err := s.LineDAO.LinesByRecipes(ctx, ids)
	if err != nil {
		return nil, err
	}
	tags, err := s.RecipeTagDAO.TagsByRecipes(ctx, ids)
	if err != nil {
		return nil, err
	}
	authors, err := s.UsersDAO.ListByIds(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	favorited, err := s.Flags.Of(ctx, LinkFavorite, viewerID, ids)
	if err != nil {
		return nil, err
	}
	inCart, err := s.Flags.Of(ctx, LinkShoppingCart, viewerID, ids)
	if err != nil {
		return nil, err
	}
	subscribed, err := s.Flags.Of(ctx, LinkFollow, viewerID, authorIDs)
	if err != nil {
		return nil, err
	}

	authorByID := make(map[uint64]*types.UserItem, len(authors))
	for _, a := range authors {
		item := toUserItem(a, subscribed[a.ID])
		authorByID[a.ID] = &item
	}

	for _, r := range recipes {
		item := &types.RecipeItem{
			ID:               r.ID,
			Tags:             make([]types.TagItem, 0, len(tags[r.ID])),
			Author:           authorByID[r.AuthorID],
			Ingredients:      make([]types.RecipeIngredientItem, 0, len(lines[r.ID])),
			IsFavorited:      favorited[r.ID],
			IsInShoppingCart: inCart[r.ID],
			Name:             r.Name,
			Image:            r.Image,
			Text:             r.Text,
			CookingTime:      r.CookingTime,
		}
		for i := range tags[r.ID] {
			item.Tags = append(item.Tags, toTagItem(&tags[r.ID][i]))
		}
		for _, line := range lines[r.ID] {
			item.Ingredients = append(item.Ingredients, types.RecipeIngredientItem{
				ID:              line.IngredientID,
				Name:            line.Name,
				MeasurementUnit: line.MeasurementUnit,
				Amount:          line.Amount,
			})
		}
		items = append(items, item)
	}
	return items, nil
}
