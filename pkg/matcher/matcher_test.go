package matcher

import (
	"daidokoro-note/entities"
	"testing"

	"github.com/stretchr/testify/assert"
)

func recipe(id string, ingredients ...string) entities.Recipe {
	return entities.Recipe{ID: id, Title: "recipe " + id, Ingredients: ingredients, Category: "other"}
}

func recipeIDs(recipes []entities.Recipe) []string {
	out := make([]string, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, r.ID)
	}
	return out
}

func TestRecommendRanksByMatchCount(t *testing.T) {
	recipes := []entities.Recipe{
		recipe("a", "卵2個", "砂糖50g"),
		recipe("b", "牛乳200ml", "卵1個"),
		recipe("c", "塩"),
	}

	got := Recommend(recipes, []string{"卵", "牛乳"})

	assert.Equal(t, []string{"b", "a"}, recipeIDs(got))
}

func TestRankReportsScores(t *testing.T) {
	recipes := []entities.Recipe{
		recipe("a", "卵2個", "砂糖50g"),
		recipe("b", "牛乳200ml", "卵1個"),
	}

	got := Rank(recipes, []string{"卵", "牛乳"})

	assert.Equal(t, []Match{{Recipe: recipes[1], MatchCount: 2}, {Recipe: recipes[0], MatchCount: 1}}, got)
}

func TestRecommendEmptyFridge(t *testing.T) {
	recipes := []entities.Recipe{recipe("a", "卵")}

	assert.Empty(t, Recommend(recipes, nil))
	assert.Empty(t, Recommend(recipes, []string{}))
}

func TestRecommendEmptyCatalog(t *testing.T) {
	assert.Empty(t, Recommend(nil, []string{"卵"}))
}

func TestRecommendStableTies(t *testing.T) {
	recipes := []entities.Recipe{
		recipe("newest", "Egg"),
		recipe("middle", "egg yolk", "milk"),
		recipe("oldest", "EGGS"),
	}

	got := Recommend(recipes, []string{"egg"})

	assert.Equal(t, []string{"newest", "middle", "oldest"}, recipeIDs(got))
}

func TestRecommendCaseInsensitive(t *testing.T) {
	recipes := []entities.Recipe{recipe("a", "2 Tomatoes")}

	assert.Len(t, Recommend(recipes, []string{"TOMATO"}), 1)
}

func TestRecommendCountsDistinctNames(t *testing.T) {
	recipes := []entities.Recipe{
		recipe("a", "卵2個"),
		recipe("b", "卵1個", "ねぎ"),
	}

	got := Rank(recipes, []string{"卵", "卵", "ねぎ"})

	assert.Equal(t, "b", got[0].Recipe.ID)
	assert.Equal(t, 2, got[0].MatchCount)
	assert.Equal(t, 1, got[1].MatchCount)
}

func TestRecommendIgnoresBlankNames(t *testing.T) {
	recipes := []entities.Recipe{recipe("a", "塩"), recipe("b", "卵")}

	assert.Empty(t, Recommend(recipes, []string{"", "  "}))
	assert.Equal(t, []string{"b"}, recipeIDs(Recommend(recipes, []string{"", "卵"})))
}

func TestMatchCountSubstring(t *testing.T) {
	assert.Equal(t, 1, MatchCount([]string{"鶏もも肉300g"}, []string{"肉"}))
	assert.Equal(t, 0, MatchCount([]string{"鶏もも肉300g"}, []string{"豚"}))
}

func TestFilterByIngredients(t *testing.T) {
	recipes := []entities.Recipe{recipe("a", "卵"), recipe("b", "塩")}

	assert.Equal(t, []string{"a"}, recipeIDs(FilterByIngredients(recipes, []string{"卵"})))
	assert.Equal(t, []string{"a", "b"}, recipeIDs(FilterByIngredients(recipes, nil)))
}

func TestFilterByText(t *testing.T) {
	recipes := []entities.Recipe{
		{ID: "a", Title: "Omelette", Ingredients: []string{"egg"}},
		{ID: "b", Title: "Salad", Ingredients: []string{"Lettuce"}},
	}

	assert.Equal(t, []string{"a"}, recipeIDs(FilterByText(recipes, "omel")))
	assert.Equal(t, []string{"b"}, recipeIDs(FilterByText(recipes, "lettuce")))
	assert.Len(t, FilterByText(recipes, ""), 2)
}

func TestFilterByCategory(t *testing.T) {
	recipes := []entities.Recipe{
		{ID: "a", Category: "soup"},
		{ID: "b", Category: "main"},
	}

	assert.Equal(t, []string{"b"}, recipeIDs(FilterByCategory(recipes, "main")))
}
