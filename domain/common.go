package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageSuccessHealth        = "service is healthy"
	MessageFailedHealth         = "service is degraded"

	ErrStoreUnavailable = errors.New("backing store unavailable")
	ErrCorruptState     = errors.New("stored data is corrupt")
	ErrInvalidRecord    = errors.New("record failed validation")
)

type (
	HealthResponse struct {
		Status         string `json:"status"`
		StoreDriver    string `json:"store_driver"`
		StoreReachable bool   `json:"store_reachable"`
		OCRConfigured  bool   `json:"ocr_configured"`
	}
)
