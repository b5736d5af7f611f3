package recipe

import (
	"context"
	"daidokoro-note/domain"
	"daidokoro-note/pkg/fridge"
	"daidokoro-note/pkg/kv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store   kv.KVRepository
	recipes RecipeRepository
	fridge  fridge.FridgeRepository
	svc     RecipeService
}

func newFixture() fixture {
	store := kv.NewMemoryKVRepository()
	recipes := NewRecipeRepository(store)
	fridgeRepo := fridge.NewFridgeRepository(store)
	return fixture{
		store:   store,
		recipes: recipes,
		fridge:  fridgeRepo,
		svc:     NewRecipeService(recipes, fridgeRepo),
	}
}

func (f fixture) create(t *testing.T, title, category string, ingredients ...string) domain.Recipe {
	t.Helper()
	r, err := f.svc.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Title:       title,
		Ingredients: ingredients,
		Steps:       []string{"作る"},
		Source:      domain.SourceOriginal,
		Category:    category,
	})
	require.NoError(t, err)
	return r
}

func titles(recipes []domain.Recipe) []string {
	out := make([]string, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, r.Title)
	}
	return out
}

func TestCreateRecipe(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	created, err := f.svc.CreateRecipe(ctx, domain.CreateRecipeRequest{
		Title:       "  卵焼き ",
		Ingredients: []string{"卵 2個", "", "  砂糖 小さじ1 "},
		Steps:       []string{"混ぜる", "焼く"},
		Source:      domain.SourceX,
		SourceURL:   "https://x.com/cook/status/1",
		Category:    domain.CategorySide,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "卵焼き", created.Title)
	assert.Equal(t, []string{"卵 2個", "砂糖 小さじ1"}, created.Ingredients)
	assert.Equal(t, 0, created.CookedCount)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, "副菜", created.CategoryLabel)
	assert.NotNil(t, created.Images)

	got, err := f.svc.GetRecipeDetail(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, got.Title)
	assert.Equal(t, created.SourceURL, got.SourceURL)
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))
}

func TestCreateRecipeValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	_, err := f.svc.CreateRecipe(ctx, domain.CreateRecipeRequest{Title: " ", Source: domain.SourceBook, Category: domain.CategoryMain})
	assert.ErrorIs(t, err, domain.ErrRecipeTitleRequired)

	_, err = f.svc.CreateRecipe(ctx, domain.CreateRecipeRequest{Title: "x", Source: domain.SourceBook, Category: "dessert"})
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)

	_, err = f.svc.CreateRecipe(ctx, domain.CreateRecipeRequest{
		Title: "x", Source: domain.SourceBook, Category: domain.CategoryMain,
		Images: []string{"a", "b", "c", "d", "e"},
	})
	assert.ErrorIs(t, err, domain.ErrTooManyImages)

	_, err = f.svc.CreateRecipe(ctx, domain.CreateRecipeRequest{Title: "x", Source: "tiktok", Category: domain.CategoryMain})
	assert.ErrorIs(t, err, domain.ErrInvalidRecord)
}

func TestCreateRecipeUniqueIDsNewestFirst(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	seen := map[string]bool{}
	for _, title := range []string{"a", "b", "c"} {
		r := f.create(t, title, domain.CategoryMain)
		assert.False(t, seen[r.ID])
		seen[r.ID] = true
	}

	list, err := f.svc.GetRecipes(ctx, domain.RecipeFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a"}, titles(list.Recipes))
}

func TestUpdateRecipeShallowPatch(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	orig := f.create(t, "カレー", domain.CategoryCurry, "玉ねぎ", "にんじん")

	title := "チキンカレー"
	updated, err := f.svc.UpdateRecipe(ctx, orig.ID, domain.UpdateRecipeRequest{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "チキンカレー", updated.Title)
	assert.Equal(t, orig.Ingredients, updated.Ingredients)
	assert.Equal(t, orig.Category, updated.Category)
	assert.True(t, orig.CreatedAt.Equal(updated.CreatedAt))

	ingredients := []string{"鶏肉"}
	updated, err = f.svc.UpdateRecipe(ctx, orig.ID, domain.UpdateRecipeRequest{Ingredients: &ingredients})
	require.NoError(t, err)
	assert.Equal(t, []string{"鶏肉"}, updated.Ingredients)
	assert.Equal(t, "チキンカレー", updated.Title)
}

func TestUpdateRecipeErrors(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	orig := f.create(t, "カレー", domain.CategoryCurry)

	blank := "   "
	_, err := f.svc.UpdateRecipe(ctx, orig.ID, domain.UpdateRecipeRequest{Title: &blank})
	assert.ErrorIs(t, err, domain.ErrRecipeTitleRequired)

	before, err := f.store.Get(ctx, kv.KeyRecipes)
	require.NoError(t, err)

	title := "x"
	_, err = f.svc.UpdateRecipe(ctx, "missing", domain.UpdateRecipeRequest{Title: &title})
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)

	after, err := f.store.Get(ctx, kv.KeyRecipes)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestUpdateRecipeKeepsCookedCount(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	orig := f.create(t, "カレー", domain.CategoryCurry)

	_, err := f.recipes.IncrementCookedCount(ctx, orig.ID)
	require.NoError(t, err)

	title := "new"
	updated, err := f.svc.UpdateRecipe(ctx, orig.ID, domain.UpdateRecipeRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, 1, updated.CookedCount)
}

func TestDeleteRecipe(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	r := f.create(t, "a", domain.CategoryMain)

	require.NoError(t, f.svc.DeleteRecipe(ctx, r.ID))
	assert.ErrorIs(t, f.svc.DeleteRecipe(ctx, r.ID), domain.ErrRecipeNotFound)

	_, err := f.svc.GetRecipeDetail(ctx, r.ID)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestGetRecipesFilters(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.create(t, "味噌汁", domain.CategorySoup, "豆腐", "わかめ")
	f.create(t, "麻婆豆腐", domain.CategoryMain, "豆腐", "ひき肉")
	f.create(t, "ハンバーグ", domain.CategoryMain, "ひき肉", "卵")

	list, err := f.svc.GetRecipes(ctx, domain.RecipeFilter{Category: domain.CategoryMain})
	require.NoError(t, err)
	assert.Equal(t, []string{"ハンバーグ", "麻婆豆腐"}, titles(list.Recipes))

	list, err = f.svc.GetRecipes(ctx, domain.RecipeFilter{Category: domain.CategoryAll, Query: "豆腐"})
	require.NoError(t, err)
	assert.Equal(t, []string{"麻婆豆腐", "味噌汁"}, titles(list.Recipes))

	list, err = f.svc.GetRecipes(ctx, domain.RecipeFilter{Category: domain.CategorySoup, Query: "ひき肉"})
	require.NoError(t, err)
	assert.Empty(t, list.Recipes)
	assert.Equal(t, 0, list.Total)

	_, err = f.svc.GetRecipes(ctx, domain.RecipeFilter{Category: "dessert"})
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
}

func TestGetRecipesRecommendedCategory(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.create(t, "味噌汁", domain.CategorySoup, "豆腐", "わかめ")
	f.create(t, "麻婆豆腐", domain.CategoryMain, "豆腐", "ひき肉")

	_, err := f.fridge.AddIngredient(ctx, "ひき肉")
	require.NoError(t, err)
	_, err = f.fridge.AddIngredient(ctx, "豆腐")
	require.NoError(t, err)

	list, err := f.svc.GetRecipes(ctx, domain.RecipeFilter{Category: domain.CategoryRecommended})
	require.NoError(t, err)
	assert.Equal(t, []string{"麻婆豆腐", "味噌汁"}, titles(list.Recipes))
}

func TestSearchByIngredients(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.create(t, "a", domain.CategoryMain, "卵")
	f.create(t, "b", domain.CategoryMain, "塩")

	list, err := f.svc.SearchByIngredients(ctx, []string{"卵"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, titles(list.Recipes))

	list, err = f.svc.SearchByIngredients(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)
}

func TestGetRecipeRecommendations(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.create(t, "a", domain.CategoryMain, "卵2個", "砂糖50g")
	f.create(t, "b", domain.CategoryMain, "牛乳200ml", "卵1個")

	res, err := f.svc.GetRecipeRecommendations(ctx)
	require.NoError(t, err)
	assert.Empty(t, res.Recipes)
	assert.Equal(t, 0, res.FridgeItems)

	_, err = f.fridge.AddIngredient(ctx, "卵")
	require.NoError(t, err)
	_, err = f.fridge.AddIngredient(ctx, "牛乳")
	require.NoError(t, err)

	res, err = f.svc.GetRecipeRecommendations(ctx)
	require.NoError(t, err)
	require.Len(t, res.Recipes, 2)
	assert.Equal(t, "b", res.Recipes[0].Title)
	assert.Equal(t, 2, res.Recipes[0].MatchCount)
	assert.Equal(t, "a", res.Recipes[1].Title)
	assert.Equal(t, 1, res.Recipes[1].MatchCount)
	assert.Equal(t, 2, res.FridgeItems)
}

func TestGetCategories(t *testing.T) {
	categories := newFixture().svc.GetCategories()

	require.Len(t, categories, 9)
	assert.Equal(t, domain.Category{Value: domain.CategoryMain, Label: "メイン料理"}, categories[0])
	assert.Equal(t, domain.CategoryOther, categories[8].Value)
}

func TestCorruptRecipesFailClosed(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	require.NoError(t, f.store.Set(ctx, kv.KeyRecipes, []byte(`[{"id":"a"}]`)))

	_, err := f.svc.GetRecipes(ctx, domain.RecipeFilter{})
	assert.ErrorIs(t, err, domain.ErrCorruptState)

	_, err = f.svc.CreateRecipe(ctx, domain.CreateRecipeRequest{Title: "x", Source: domain.SourceBook, Category: domain.CategoryMain})
	assert.ErrorIs(t, err, domain.ErrCorruptState)

	raw, err := f.store.Get(ctx, kv.KeyRecipes)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"a"}]`, string(raw))
}
