package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/Vaaraprasad44/movies2/config"
	sharedhttp "github.com/Vaaraprasad44/movies2/shared/http"
)

// OCRClient talks to the ocr-api sidecar, which wraps the tesseract CLI.
// The sidecar shares no state with this process; it just turns an image
// into text.
type OCRClient struct {
	baseURL string
	client  *http.Client
}

func NewOCRClient(cfg *config.Config) *OCRClient {
	return &OCRClient{
		baseURL: strings.TrimSuffix(cfg.OCRAPIURL, "/"),
		client:  sharedhttp.LongTimeoutClient,
	}
}

type ocrResponse struct {
	Text string `json:"text"`
}

// ExtractText uploads the image to the sidecar and returns the recognized
// text, trimmed. An empty result is not an error here; the caller decides
// whether an unreadable image is worth rejecting.
func (c *OCRClient) ExtractText(ctx context.Context, image []byte, filename string) (string, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("image", filename)
	if err != nil {
		return "", fmt.Errorf("failed to build OCR request: %w", err)
	}
	if _, err := part.Write(image); err != nil {
		return "", fmt.Errorf("failed to build OCR request: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("failed to build OCR request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/extract", &body)
	if err != nil {
		return "", fmt.Errorf("failed to create OCR request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("OCR service unreachable: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return "", fmt.Errorf("OCR service returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var out ocrResponse
	if err := sharedhttp.DecodeJSONResponse(resp, &out); err != nil {
		return "", fmt.Errorf("failed to decode OCR response: %w", err)
	}
	return strings.TrimSpace(out.Text), nil
}
