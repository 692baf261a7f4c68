package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/Vaaraprasad44/movies2/metrics"
	"github.com/Vaaraprasad44/movies2/models"
	"github.com/Vaaraprasad44/movies2/services"
	"github.com/Vaaraprasad44/movies2/shared/format"
)

// maxImageSize bounds sign-up image uploads.
const maxImageSize = 10 << 20 // 10 MB

// SignUp creates a user profile from a single free-text sentence. The
// extraction service does the parsing; a failure there is the caller's
// 400, anything else is a 500.
//
// POST /api/signup
func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.UserInput) == "" {
		respondError(w, http.StatusBadRequest, "user_input must not be empty")
		return
	}

	h.createUserFromText(w, r, req.UserInput)
}

// SignUpImage creates a user profile from an ID-card photo: the OCR
// sidecar extracts the text, optional additional_text is appended, and
// the combined text goes through the same extraction path as SignUp.
//
// POST /api/signup/image
func (h *Handler) SignUpImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		respondError(w, http.StatusBadRequest, "missing image file")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		respondError(w, http.StatusBadRequest, "Invalid file type. Please upload an image.")
		return
	}

	image, err := io.ReadAll(io.LimitReader(file, maxImageSize))
	if err != nil {
		respondError(w, http.StatusBadRequest, "failed to read image")
		return
	}
	slog.Debug("sign-up image received",
		"filename", header.Filename,
		"size", format.Bytes(int64(len(image))))

	extracted, err := h.ocr.ExtractText(r.Context(), image, header.Filename)
	if err != nil {
		slog.Error("OCR extraction failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to process image")
		return
	}
	if extracted == "" {
		respondError(w, http.StatusBadRequest,
			"No text could be extracted from the image. Please ensure the ID is clear and readable.")
		return
	}

	combined := extracted
	if extra := strings.TrimSpace(r.FormValue("additional_text")); extra != "" {
		combined = extracted + " " + extra
	}
	slog.Info("sign-up image processed",
		"extracted_text", format.Preview(extracted, 200),
		"combined_text", format.Preview(combined, 200))

	h.createUserFromText(w, r, combined)
}

// createUserFromText runs the extraction service and stores the result.
func (h *Handler) createUserFromText(w http.ResponseWriter, r *http.Request, text string) {
	parsed, err := h.parser.ParseUserInfo(r.Context(), text)
	if err != nil {
		if errors.Is(err, services.ErrParseFailed) {
			metrics.SignupParseFailures.Inc()
			slog.Warn("sign-up parsing failed", "error", err)
			respondError(w, http.StatusBadRequest, "Failed to parse user information: "+err.Error())
			return
		}
		slog.Error("sign-up failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	id := h.store.CreateUser(parsed)
	user, ok := h.store.GetUserByID(id)
	if !ok {
		respondError(w, http.StatusInternalServerError, "Failed to create user profile")
		return
	}
	respondJSON(w, http.StatusOK, user)
}
