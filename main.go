package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Vaaraprasad44/movies2/config"
	"github.com/Vaaraprasad44/movies2/database"
	"github.com/Vaaraprasad44/movies2/handlers"
	"github.com/Vaaraprasad44/movies2/middleware"
	"github.com/Vaaraprasad44/movies2/services"
	"github.com/Vaaraprasad44/movies2/shared/logger"
	"github.com/Vaaraprasad44/movies2/shared/server"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Environment, cfg.Debug)

	store := database.NewMovieStore(cfg)
	parser := services.NewAIParser(cfg)
	ocr := services.NewOCRClient(cfg)
	h := handlers.New(store, parser, ocr)

	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS)
	r.Use(middleware.Logging)
	r.Use(middleware.Metrics)

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pong"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/movies", func(r chi.Router) {
			r.Get("/", h.ListMovies)
			r.Post("/", h.CreateMovie)
			r.Get("/search", h.SearchMovies)
			r.Get("/favorites", h.FavoriteMovies)
			r.Get("/{id}", h.GetMovie)
			r.Put("/{id}", h.UpdateMovie)
			r.Delete("/{id}", h.DeleteMovie)
			r.Post("/{id}/favorite", h.ToggleFavorite)
		})

		r.Get("/stats", h.Stats)

		r.Post("/signup", h.SignUp)
		r.Post("/signup/image", h.SignUpImage)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.ListUsers)
			r.Get("/{id}", h.GetUser)
			r.Delete("/{id}", h.DeleteUser)
		})
	})

	addr := ":" + cfg.ServerPort
	slog.Info("movies2 starting",
		"addr", addr,
		"environment", cfg.Environment,
		"debug", cfg.Debug)

	srv := server.CreateServer(server.DefaultConfig(addr), r)
	if err := srv.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
