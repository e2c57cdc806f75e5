package service

import (
	"Foodgram/pkg/bizerr"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagService(t *testing.T) {
	e := newTestEnv(t, false)
	ctx := context.Background()
	lunch := e.fx.Tag("Обед", "lunch")
	e.fx.Tag("Ужин", "dinner")

	items, err := e.tag.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "lunch", items[0].Slug)

	item, err := e.tag.Get(ctx, lunch.ID)
	require.NoError(t, err)
	assert.Equal(t, "Обед", item.Name)

	_, err = e.tag.Get(ctx, 404)
	assert.ErrorIs(t, err, bizerr.ErrNotFound)
}

func TestIngredientLoadAndSearch(t *testing.T) {
	e := newTestEnv(t, false)
	ctx := context.Background()

	csv := "Apricot,g\napricot jam,g\nмолоко,мл\n\nApricot,g\n\"соль, морская\",г\n"
	result, err := e.ing.Load(ctx, strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 5, result.Total)
	assert.Equal(t, 4, result.Created)

	items, err := e.ing.Search(ctx, "APR")
	require.NoError(t, err)
	require.Len(t, items, 2)

	items, err = e.ing.Search(ctx, "соль")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "соль, морская", items[0].Name)

	got, err := e.ing.Get(ctx, items[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "г", got.MeasurementUnit)
	_, err = e.ing.Get(ctx, 404)
	assert.ErrorIs(t, err, bizerr.ErrNotFound)

	_, err = e.ing.Load(ctx, strings.NewReader("молоко,мл\nтолько-название\n"))
	assert.ErrorIs(t, err, bizerr.ErrValidation)
}
