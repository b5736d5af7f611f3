package ocr

import (
	"context"
	"daidokoro-note/domain"
	"daidokoro-note/internal/utils"
	"mime/multipart"
)

type (
	OCRService interface {
		IngestRecipe(ctx context.Context, req domain.IngestRecipeRequest) (domain.IngestRecipeResponse, error)
		EncodeImage(ctx context.Context, image *multipart.FileHeader) (domain.EncodeImageResponse, error)
		Configured() bool
	}

	ocrService struct {
		client OCRClient
	}
)

func NewOCRService(client OCRClient) OCRService {
	return &ocrService{
		client: client,
	}
}

func (s *ocrService) Configured() bool {
	return s.client.Configured()
}

// IngestRecipe sends the uploaded photo for recognition and appends the
// recognized text to whatever the form already held.
func (s *ocrService) IngestRecipe(ctx context.Context, req domain.IngestRecipeRequest) (domain.IngestRecipeResponse, error) {
	image, err := utils.ReadFileHeader(req.Image)
	if err != nil {
		return domain.IngestRecipeResponse{}, err
	}

	result, err := s.client.Ingest(ctx, image, req.Image.Filename, Hints{
		SourceURL: req.SourceURL,
		TitleHint: req.TitleHint,
	})
	if err != nil {
		return domain.IngestRecipeResponse{}, err
	}

	form := ToFormText(result)
	if form.Title == "" {
		form.Title = req.TitleHint
	}
	form.IngredientsText = AppendBlock(req.IngredientsText, form.IngredientsText)
	form.StepsText = AppendBlock(req.StepsText, form.StepsText)

	return domain.IngestRecipeResponse{
		Result: result,
		Form:   form,
	}, nil
}

func (s *ocrService) EncodeImage(ctx context.Context, image *multipart.FileHeader) (domain.EncodeImageResponse, error) {
	data, err := utils.ReadFileHeader(image)
	if err != nil {
		return domain.EncodeImageResponse{}, err
	}

	uri, err := utils.EncodeDataURI(data)
	if err != nil {
		return domain.EncodeImageResponse{}, err
	}
	return domain.EncodeImageResponse{DataURI: uri}, nil
}
