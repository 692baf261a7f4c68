package handlers

import (
	"context"

	"github.com/Vaaraprasad44/movies2/database"
	"github.com/Vaaraprasad44/movies2/models"
)

// UserInfoParser turns free-form sign-up text into structured fields.
// Implemented by services.AIParser.
type UserInfoParser interface {
	ParseUserInfo(ctx context.Context, userInput string) (models.ParsedUserInfo, error)
}

// TextExtractor recognizes text in an uploaded image. Implemented by
// services.OCRClient.
type TextExtractor interface {
	ExtractText(ctx context.Context, image []byte, filename string) (string, error)
}

// Handler carries the dependencies of all HTTP handlers. The store is
// injected explicitly rather than reached through package state.
type Handler struct {
	store  *database.MovieStore
	parser UserInfoParser
	ocr    TextExtractor
}

func New(store *database.MovieStore, parser UserInfoParser, ocr TextExtractor) *Handler {
	return &Handler{
		store:  store,
		parser: parser,
		ocr:    ocr,
	}
}
