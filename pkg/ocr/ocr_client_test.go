package ocr

import (
	"bytes"
	"context"
	"daidokoro-note/domain"
	"daidokoro-note/internal/utils"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{G: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

const ingestJSON = `{
	"recipe_id": "r-1",
	"raw_ocr_text": "肉じゃが\n材料...",
	"structured_recipe": {
		"title": "肉じゃが",
		"ingredients": [{"name": "じゃがいも", "amount": "3個"}, {"name": "牛肉", "amount": "200g", "note": "薄切り"}],
		"steps": [{"order": 2, "text": "煮る"}, {"order": 1, "text": "切る"}],
		"notes": [],
		"tags": ["和食"]
	},
	"confidence": 0.87,
	"warnings": []
}`

func TestIngestSendsMultipartRequest(t *testing.T) {
	img := pngBytes(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, IngestPath, r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "https://x.com/post/1", r.FormValue("source_url"))
		assert.Equal(t, "肉じゃが", r.FormValue("title_hint"))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		got, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, img, got)
		assert.Equal(t, "photo.png", header.Filename)
		assert.Equal(t, "image/png", header.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(ingestJSON))
	}))
	defer srv.Close()

	client := NewOCRClient(srv.URL+"/", "secret", time.Second)
	res, err := client.Ingest(context.Background(), img, "photo.png", Hints{
		SourceURL: "https://x.com/post/1",
		TitleHint: "肉じゃが",
	})
	require.NoError(t, err)

	assert.Equal(t, "r-1", res.RecipeID)
	require.NotNil(t, res.StructuredRecipe)
	assert.Equal(t, "肉じゃが", res.StructuredRecipe.Title)
	require.NotNil(t, res.Confidence)
	assert.InDelta(t, 0.87, *res.Confidence, 1e-9)
	assert.Equal(t, []string{"和食"}, res.StructuredRecipe.Tags)
}

func TestIngestOmitsEmptyHints(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, hasSource := r.MultipartForm.Value["source_url"]
		_, hasTitle := r.MultipartForm.Value["title_hint"]
		assert.False(t, hasSource)
		assert.False(t, hasTitle)
		_, _ = w.Write([]byte(`{"recipe_id":"r","raw_ocr_text":"text"}`))
	}))
	defer srv.Close()

	res, err := NewOCRClient(srv.URL, "t", 0).Ingest(context.Background(), pngBytes(t), "a.png", Hints{})
	require.NoError(t, err)
	assert.Nil(t, res.StructuredRecipe)
	assert.Nil(t, res.Confidence)
	assert.NotNil(t, res.Warnings)
}

func TestIngestErrorDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Invalid token"}`))
	}))
	defer srv.Close()

	_, err := NewOCRClient(srv.URL, "bad", time.Second).Ingest(context.Background(), pngBytes(t), "a.png", Hints{})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid token", err.Error())
}

func TestIngestErrorWithoutDetail(t *testing.T) {
	bodies := map[string]string{
		"html":         `<html>bad gateway</html>`,
		"empty":        ``,
		"list detail":  `{"detail":[{"loc":["body","image"],"msg":"field required"}]}`,
		"empty detail": `{"detail":""}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				_, _ = w.Write([]byte(body))
			}))
			defer srv.Close()

			_, err := NewOCRClient(srv.URL, "t", time.Second).Ingest(context.Background(), pngBytes(t), "a.png", Hints{})

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, "OCR API error: 502", apiErr.Detail)
		})
	}
}

func TestIngestNotConfigured(t *testing.T) {
	client := NewOCRClient("", "", time.Second)

	assert.False(t, client.Configured())
	_, err := client.Ingest(context.Background(), pngBytes(t), "a.png", Hints{})
	assert.ErrorIs(t, err, domain.ErrOCRNotConfigured)
}

func TestIngestRejectsBeforeCalling(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()
	client := NewOCRClient(srv.URL, "t", time.Second)

	var gifBuf bytes.Buffer
	require.NoError(t, gif.Encode(&gifBuf, image.NewPaletted(image.Rect(0, 0, 1, 1), []color.Color{color.Black}), nil))

	_, err := client.Ingest(context.Background(), gifBuf.Bytes(), "a.gif", Hints{})
	assert.ErrorIs(t, err, utils.ErrUnsupportedImage)

	_, err = client.Ingest(context.Background(), make([]byte, utils.MaxImageBytes+1), "big.png", Hints{})
	assert.ErrorIs(t, err, utils.ErrImageTooLarge)

	assert.False(t, called)
}

func TestIngestCanceled(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		_, _ = w.Write([]byte(ingestJSON))
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewOCRClient(srv.URL, "t", time.Second).Ingest(ctx, pngBytes(t), "a.png", Hints{})
	assert.ErrorIs(t, err, context.Canceled)
}

func fileHeader(t *testing.T, field, filename string, data []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File[field][0]
}

func TestServiceIngestRecipeBuildsForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(ingestJSON))
	}))
	defer srv.Close()
	svc := NewOCRService(NewOCRClient(srv.URL, "t", time.Second))

	res, err := svc.IngestRecipe(context.Background(), domain.IngestRecipeRequest{
		Image:           fileHeader(t, "image", "page.png", pngBytes(t)),
		IngredientsText: "塩 少々\n",
	})
	require.NoError(t, err)

	assert.Equal(t, "肉じゃが", res.Form.Title)
	assert.Equal(t, "塩 少々\nじゃがいも 3個\n牛肉 200g (薄切り)", res.Form.IngredientsText)
	assert.Equal(t, "切る\n煮る", res.Form.StepsText)
	assert.Equal(t, "r-1", res.Result.RecipeID)
}

func TestServiceIngestRecipeRawTextFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"recipe_id":"r","raw_ocr_text":"  卵を焼く  ","warnings":["low confidence"]}`))
	}))
	defer srv.Close()
	svc := NewOCRService(NewOCRClient(srv.URL, "t", time.Second))

	res, err := svc.IngestRecipe(context.Background(), domain.IngestRecipeRequest{
		Image:     fileHeader(t, "image", "page.png", pngBytes(t)),
		TitleHint: "卵焼き",
	})
	require.NoError(t, err)

	assert.Equal(t, "卵焼き", res.Form.Title)
	assert.Empty(t, res.Form.IngredientsText)
	assert.Equal(t, "卵を焼く", res.Form.StepsText)
	assert.Equal(t, []string{"low confidence"}, res.Result.Warnings)
}

func TestServiceEncodeImage(t *testing.T) {
	svc := NewOCRService(NewOCRClient("", "", 0))

	res, err := svc.EncodeImage(context.Background(), fileHeader(t, "image", "a.png", pngBytes(t)))
	require.NoError(t, err)
	assert.Contains(t, res.DataURI, "data:image/png;base64,")

	_, err = svc.EncodeImage(context.Background(), fileHeader(t, "image", "a.txt", []byte("hello")))
	assert.ErrorIs(t, err, utils.ErrUnsupportedImage)
}
