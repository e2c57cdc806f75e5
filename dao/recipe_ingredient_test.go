package dao

import (
	"Foodgram/internal/testutil"
	"Foodgram/models"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeIngredient_SumByIngredient(t *testing.T) {
	db := testutil.NewDB(t)
	fx := testutil.NewFixture(t, db)
	d := NewRecipeIngredientDAO(db)
	ctx := context.Background()

	author := fx.User("author")
	salt := fx.Ingredient("Salt", "g")
	milk := fx.Ingredient("Milk", "ml")
	fx.Recipe(1, author.ID, "A", map[uint64]int{salt.ID: 10, milk.ID: 200})
	fx.Recipe(2, author.ID, "B", map[uint64]int{salt.ID: 5})
	fx.Recipe(3, author.ID, "C", map[uint64]int{milk.ID: 1000})

	totals, err := d.SumByIngredient(ctx, []uint64{1, 2})
	require.NoError(t, err)
	require.Len(t, totals, 2)

	byID := map[uint64]IngredientTotal{}
	for _, total := range totals {
		byID[total.IngredientID] = total
	}
	assert.Equal(t, int64(15), byID[salt.ID].Amount)
	require.NotNil(t, byID[salt.ID].Name)
	assert.Equal(t, "Salt", *byID[salt.ID].Name)
	assert.Equal(t, "g", *byID[salt.ID].MeasurementUnit)
	assert.Equal(t, int64(200), byID[milk.ID].Amount)
}

func TestRecipeIngredient_SumMissingIngredient(t *testing.T) {
	db := testutil.NewDB(t)
	d := NewRecipeIngredientDAO(db)
	ctx := context.Background()

	require.NoError(t, d.InsertLines(ctx, []*models.RecipeIngredient{{RecipeID: 1, IngredientID: 999, Amount: 3}}))

	totals, err := d.SumByIngredient(ctx, []uint64{1})
	require.NoError(t, err)
	require.Len(t, totals, 1)
	assert.Nil(t, totals[0].Name)
	assert.Equal(t, int64(3), totals[0].Amount)
}

func TestRecipeIngredient_SumEmpty(t *testing.T) {
	db := testutil.NewDB(t)
	totals, err := NewRecipeIngredientDAO(db).SumByIngredient(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, totals)
}

func TestRecipeIngredient_ReplaceLines(t *testing.T) {
	db := testutil.NewDB(t)
	fx := testutil.NewFixture(t, db)
	d := NewRecipeIngredientDAO(db)
	ctx := context.Background()

	salt := fx.Ingredient("Salt", "g")
	egg := fx.Ingredient("Egg", "pcs")
	require.NoError(t, d.InsertLines(ctx, []*models.RecipeIngredient{{RecipeID: 1, IngredientID: salt.ID, Amount: 1}}))

	require.NoError(t, d.ReplaceLines(ctx, 1, []*models.RecipeIngredient{
		{RecipeID: 1, IngredientID: egg.ID, Amount: 2},
		{RecipeID: 1, IngredientID: salt.ID, Amount: 4},
	}))

	lines, err := d.LinesByRecipes(ctx, []uint64{1})
	require.NoError(t, err)
	require.Len(t, lines[1], 2)
	assert.Equal(t, "Egg", lines[1][0].Name)
	assert.Equal(t, 2, lines[1][0].Amount)
	assert.Equal(t, "Salt", lines[1][1].Name)
	assert.Equal(t, 4, lines[1][1].Amount)
}
