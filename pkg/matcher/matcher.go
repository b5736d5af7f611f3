// Package matcher ranks recipes against the ingredients currently in the
// fridge.
//
// A fridge name matches a recipe when it is a case-insensitive substring of at
// least one of the recipe's ingredient lines ("卵" matches "卵2個"). There is no
// tokenization and no folding beyond lower-casing, so short names can match
// inside unrelated longer words.
package matcher

import (
	"daidokoro-note/entities"
	"sort"
	"strings"
)

type Match struct {
	Recipe     entities.Recipe
	MatchCount int
}

// Rank scores every recipe against fridgeNames, drops recipes with no match and
// orders the rest by score, highest first. Ties keep their input order.
func Rank(recipes []entities.Recipe, fridgeNames []string) []Match {
	names := foldNames(fridgeNames)
	if len(names) == 0 {
		return []Match{}
	}

	matches := make([]Match, 0, len(recipes))
	for _, recipe := range recipes {
		count := score(foldLines(recipe.Ingredients), names)
		if count > 0 {
			matches = append(matches, Match{Recipe: recipe, MatchCount: count})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchCount > matches[j].MatchCount
	})
	return matches
}

// Recommend is Rank without the scores.
func Recommend(recipes []entities.Recipe, fridgeNames []string) []entities.Recipe {
	ranked := Rank(recipes, fridgeNames)
	out := make([]entities.Recipe, 0, len(ranked))
	for _, m := range ranked {
		out = append(out, m.Recipe)
	}
	return out
}

// MatchCount is the number of distinct names found in ingredientLines.
func MatchCount(ingredientLines []string, fridgeNames []string) int {
	return score(foldLines(ingredientLines), foldNames(fridgeNames))
}

// FilterByIngredients keeps recipes that contain at least one of names. With no
// usable names every recipe is kept.
func FilterByIngredients(recipes []entities.Recipe, names []string) []entities.Recipe {
	folded := foldNames(names)
	if len(folded) == 0 {
		return recipes
	}

	out := make([]entities.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		if score(foldLines(recipe.Ingredients), folded) > 0 {
			out = append(out, recipe)
		}
	}
	return out
}

// FilterByText keeps recipes whose title or any ingredient line contains query,
// ignoring case. An empty query keeps everything.
func FilterByText(recipes []entities.Recipe, query string) []entities.Recipe {
	if query == "" {
		return recipes
	}
	q := strings.ToLower(query)

	out := make([]entities.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		if strings.Contains(strings.ToLower(recipe.Title), q) || anyContains(foldLines(recipe.Ingredients), q) {
			out = append(out, recipe)
		}
	}
	return out
}

func FilterByCategory(recipes []entities.Recipe, category string) []entities.Recipe {
	out := make([]entities.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		if recipe.Category == category {
			out = append(out, recipe)
		}
	}
	return out
}

func score(lines []string, names []string) int {
	count := 0
	for _, name := range names {
		if anyContains(lines, name) {
			count++
		}
	}
	return count
}

func anyContains(lines []string, needle string) bool {
	for _, line := range lines {
		if strings.Contains(line, needle) {
			return true
		}
	}
	return false
}

func foldLines(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = strings.ToLower(line)
	}
	return out
}

// foldNames lower-cases names and removes duplicates. Blank names are dropped:
// the empty string is a substring of every line.
func foldNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		folded := strings.ToLower(name)
		if _, ok := seen[folded]; ok {
			continue
		}
		seen[folded] = struct{}{}
		out = append(out, folded)
	}
	return out
}
