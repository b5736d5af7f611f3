package ocr

import (
	"daidokoro-note/domain"
	"sort"
	"strings"
)

// FormatIngredients renders one line per ingredient as "name amount (note)",
// leaving out the parts that are empty.
func FormatIngredients(ingredients []domain.OcrIngredient) string {
	lines := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		line := ing.Name
		if ing.Amount != "" {
			line += " " + ing.Amount
		}
		if ing.Note != "" {
			line += " (" + ing.Note + ")"
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// FormatSteps joins step texts in ascending order. The input is not reordered.
func FormatSteps(steps []domain.OcrStep) string {
	sorted := make([]domain.OcrStep, len(steps))
	copy(sorted, steps)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})

	lines := make([]string, 0, len(sorted))
	for _, step := range sorted {
		lines = append(lines, step.Text)
	}
	return strings.Join(lines, "\n")
}

// ToFormText reduces an ingest result to form fields. Without a structured
// recipe the raw recognized text lands in the steps field so nothing is lost.
func ToFormText(result domain.OcrIngestResponse) domain.OcrFormText {
	s := result.StructuredRecipe
	if s == nil {
		return domain.OcrFormText{StepsText: strings.TrimSpace(result.RawOcrText)}
	}
	return domain.OcrFormText{
		Title:           s.Title,
		IngredientsText: FormatIngredients(s.Ingredients),
		StepsText:       FormatSteps(s.Steps),
	}
}

// AppendBlock adds addition below existing, separated by a newline.
func AppendBlock(existing, addition string) string {
	existing = strings.TrimRight(existing, "\n")
	if existing == "" {
		return addition
	}
	if addition == "" {
		return existing
	}
	return existing + "\n" + addition
}
