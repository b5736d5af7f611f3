package utils

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

var (
	AllowImage = []string{"image/jpeg", "image/png", "image/webp", "image/gif"}

	ErrUnsupportedImage = errors.New("unsupported image type")
	ErrImageTooLarge    = errors.New("image too large")
)

const MaxImageBytes = 10 * 1024 * 1024

// DetectImageType sniffs the content and returns its MIME type when it is one
// of allowed.
func DetectImageType(data []byte, allowed ...string) (string, error) {
	mtype := mimetype.Detect(data)
	for _, a := range allowed {
		if mtype.Is(a) {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedImage, mtype.String())
}

// EncodeDataURI turns raw image bytes into an inline data URI.
func EncodeDataURI(data []byte) (string, error) {
	if len(data) > MaxImageBytes {
		return "", ErrImageTooLarge
	}
	mime, err := DetectImageType(data, AllowImage...)
	if err != nil {
		return "", err
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// DecodeDataURI is the inverse of EncodeDataURI.
func DecodeDataURI(uri string) ([]byte, string, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return nil, "", ErrUnsupportedImage
	}
	header, payload, ok := strings.Cut(rest, ",")
	if !ok || !strings.HasSuffix(header, ";base64") {
		return nil, "", ErrUnsupportedImage
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}
	return data, strings.TrimSuffix(header, ";base64"), nil
}

func ReadFileHeader(fh *multipart.FileHeader) ([]byte, error) {
	if fh.Size > MaxImageBytes {
		return nil, ErrImageTooLarge
	}
	file, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(io.LimitReader(file, MaxImageBytes+1))
}
