package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

// LongTimeoutClient is for operations that may take longer, like chat
// completions and OCR runs
var LongTimeoutClient = &http.Client{
	Timeout: 60 * time.Second,
}

// DecodeJSONResponse decodes a JSON response from an HTTP response body
func DecodeJSONResponse(resp *http.Response, v interface{}) error {
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
