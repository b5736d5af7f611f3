// Package ocr talks to the external recipe recognition service and turns its
// answers into text the recipe form can be pre-filled with.
package ocr

import (
	"bytes"
	"context"
	"daidokoro-note/domain"
	"daidokoro-note/internal/utils"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

const (
	IngestPath     = "/v1/recipes/ingest"
	DefaultTimeout = 30 * time.Second
)

var AllowOCRImage = []string{"image/jpeg", "image/png", "image/webp"}

// APIError is any non-2xx answer from the recognition service.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return e.Detail
}

type (
	Hints struct {
		SourceURL string
		TitleHint string
	}

	OCRClient interface {
		Ingest(ctx context.Context, image []byte, filename string, hints Hints) (domain.OcrIngestResponse, error)
		Configured() bool
	}

	ocrClient struct {
		baseURL    string
		token      string
		httpClient *http.Client
	}
)

// NewOCRClient returns a client for the service at baseURL. An empty baseURL
// yields a client whose Ingest always fails with domain.ErrOCRNotConfigured.
func NewOCRClient(baseURL, token string, timeout time.Duration) OCRClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &ocrClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *ocrClient) Configured() bool {
	return c.baseURL != ""
}

func (c *ocrClient) Ingest(ctx context.Context, image []byte, filename string, hints Hints) (domain.OcrIngestResponse, error) {
	if !c.Configured() {
		return domain.OcrIngestResponse{}, domain.ErrOCRNotConfigured
	}
	if len(image) > utils.MaxImageBytes {
		return domain.OcrIngestResponse{}, utils.ErrImageTooLarge
	}
	mimeType, err := utils.DetectImageType(image, AllowOCRImage...)
	if err != nil {
		return domain.OcrIngestResponse{}, err
	}

	body, contentType, err := encodeForm(image, filename, mimeType, hints)
	if err != nil {
		return domain.OcrIngestResponse{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+IngestPath, body)
	if err != nil {
		return domain.OcrIngestResponse{}, err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.OcrIngestResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := decodeAPIError(resp)
		log.Warnf("ocr ingest failed: status %d: %s", apiErr.StatusCode, apiErr.Detail)
		return domain.OcrIngestResponse{}, apiErr
	}

	var result domain.OcrIngestResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return domain.OcrIngestResponse{}, fmt.Errorf("failed to decode OCR response: %w", err)
	}

	// The caller gave up while the body was in flight.
	if err := ctx.Err(); err != nil {
		return domain.OcrIngestResponse{}, err
	}

	normalize(&result)
	return result, nil
}

func encodeForm(image []byte, filename, mimeType string, hints Hints) (io.Reader, string, error) {
	if filename == "" {
		filename = "image"
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, filename))
	header.Set("Content-Type", mimeType)
	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(image); err != nil {
		return nil, "", err
	}

	if hints.SourceURL != "" {
		if err := w.WriteField("source_url", hints.SourceURL); err != nil {
			return nil, "", err
		}
	}
	if hints.TitleHint != "" {
		if err := w.WriteField("title_hint", hints.TitleHint); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

// decodeAPIError reads {"detail": "..."} from the body. Bodies without a
// string detail get a message built from the status code.
func decodeAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Detail:     fmt.Sprintf("OCR API error: %d", resp.StatusCode),
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return apiErr
	}
	var body struct {
		Detail any `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return apiErr
	}
	if detail, ok := body.Detail.(string); ok && detail != "" {
		apiErr.Detail = detail
	}
	return apiErr
}

func normalize(result *domain.OcrIngestResponse) {
	if result.Warnings == nil {
		result.Warnings = []string{}
	}
	if s := result.StructuredRecipe; s != nil {
		if s.Ingredients == nil {
			s.Ingredients = []domain.OcrIngredient{}
		}
		if s.Steps == nil {
			s.Steps = []domain.OcrStep{}
		}
		if s.Notes == nil {
			s.Notes = []string{}
		}
		if s.Tags == nil {
			s.Tags = []string{}
		}
	}
}
