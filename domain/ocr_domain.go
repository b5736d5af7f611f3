package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessIngestRecipe = "recipe image ingested successfully"
	MessageSuccessEncodeImage  = "image encoded successfully"
	MessageFailedIngestRecipe  = "failed to ingest recipe image"
	MessageFailedEncodeImage   = "failed to encode image"

	ErrOCRNotConfigured = errors.New("OCR service is not configured")
)

type (
	IngestRecipeRequest struct {
		Image           *multipart.FileHeader `form:"image" validate:"required"`
		SourceURL       string                `form:"source_url" validate:"omitempty,url"`
		TitleHint       string                `form:"title_hint"`
		IngredientsText string                `form:"ingredients_text"`
		StepsText       string                `form:"steps_text"`
	}

	OcrIngredient struct {
		Name   string `json:"name"`
		Amount string `json:"amount,omitempty"`
		Note   string `json:"note,omitempty"`
	}

	OcrStep struct {
		Order int    `json:"order"`
		Text  string `json:"text"`
	}

	StructuredRecipe struct {
		Title       string          `json:"title,omitempty"`
		Servings    string          `json:"servings,omitempty"`
		Ingredients []OcrIngredient `json:"ingredients"`
		Steps       []OcrStep       `json:"steps"`
		Time        string          `json:"time,omitempty"`
		Notes       []string        `json:"notes"`
		Tags        []string        `json:"tags"`
	}

	OcrIngestResponse struct {
		RecipeID         string            `json:"recipe_id"`
		RawOcrText       string            `json:"raw_ocr_text"`
		StructuredRecipe *StructuredRecipe `json:"structured_recipe,omitempty"`
		Confidence       *float64          `json:"confidence,omitempty"`
		Warnings         []string          `json:"warnings"`
	}

	// OcrFormText is the OCR result reduced to the three free-text fields of
	// the recipe form.
	OcrFormText struct {
		Title           string `json:"title"`
		IngredientsText string `json:"ingredients_text"`
		StepsText       string `json:"steps_text"`
	}

	IngestRecipeResponse struct {
		Result OcrIngestResponse `json:"result"`
		Form   OcrFormText       `json:"form"`
	}

	EncodeImageResponse struct {
		DataURI string `json:"data_uri"`
	}
)
