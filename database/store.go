package database

import (
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/Vaaraprasad44/movies2/config"
	"github.com/Vaaraprasad44/movies2/models"
)

// MovieStore owns the in-memory movie and user collections. A single
// coarse mutex serializes every read and write sequence; callers always
// receive copies, never aliases into the internal slices.
//
// The movie collection is populated lazily from the CSV dataset on the
// first read that needs it (never by writes). The sync.Once gate makes
// the at-most-once load guarantee structural: a failed load still counts
// as done, so a missing dataset cannot cause a retry storm.
type MovieStore struct {
	mu          sync.Mutex
	movies      []models.Movie
	users       []models.UserProfile
	nextMovieID int
	nextUserID  int

	csvPath  string
	loadOnce sync.Once
}

// NewMovieStore creates an empty store bound to the dataset resolved from
// the configuration. Nothing is read from disk until the first read
// operation.
func NewMovieStore(cfg *config.Config) *MovieStore {
	path := resolveDatasetPath(cfg)
	slog.Info("movie store initialized, dataset will be loaded on first request", "csv_path", path)
	return &MovieStore{
		nextMovieID: 1,
		nextUserID:  1,
		csvPath:     path,
	}
}

// resolveDatasetPath picks the dataset file: an explicit override wins,
// otherwise the full dataset when it actually holds the full data,
// otherwise the bundled sample.
func resolveDatasetPath(cfg *config.Config) string {
	if cfg.MoviesCSVPath != "" {
		return cfg.MoviesCSVPath
	}
	if isFullDataset(cfg.FullCSVPath) {
		return cfg.FullCSVPath
	}
	if _, err := os.Stat(cfg.SampleCSVPath); err == nil {
		slog.Info("full dataset not found, using sample dataset", "path", cfg.SampleCSVPath)
		return cfg.SampleCSVPath
	}
	slog.Warn("no dataset found, store will start empty", "path", cfg.FullCSVPath)
	return cfg.FullCSVPath
}

// ensureLoaded triggers the one-shot bulk load. Concurrent callers block
// inside the Once until the winning goroutine finishes.
func (s *MovieStore) ensureLoaded() {
	s.loadOnce.Do(func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.loadFromCSV()
	})
}

// CreateMovie appends a new movie and returns its identifier. Identifiers
// are current-max+1, monotonic for the process lifetime. User fields
// start at their defaults regardless of the command.
func (s *MovieStore) CreateMovie(cmd models.CreateMovieCommand) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	movie := models.Movie{
		ID:                  s.nextMovieID,
		Title:               cmd.Title,
		Overview:            cmd.Overview,
		Genres:              cmd.Genres,
		Keywords:            cmd.Keywords,
		Tagline:             cmd.Tagline,
		Cast:                cmd.Cast,
		Crew:                cmd.Crew,
		ProductionCompanies: cmd.ProductionCompanies,
		ProductionCountries: cmd.ProductionCountries,
		SpokenLanguages:     cmd.SpokenLanguages,
		OriginalLanguage:    cmd.OriginalLanguage,
		OriginalTitle:       cmd.OriginalTitle,
		ReleaseDate:         cmd.ReleaseDate,
		Runtime:             cmd.Runtime,
		VoteAverage:         cmd.VoteAverage,
		VoteCount:           cmd.VoteCount,
		Popularity:          cmd.Popularity,
		IsFavorite:          false,
		PersonalRating:      nil,
		PersonalNotes:       nil,
	}
	s.movies = append(s.movies, movie)
	s.nextMovieID++
	return movie.ID
}

// GetMovieByID returns a copy of the movie, or ok=false when the ID is
// unknown.
func (s *MovieStore) GetMovieByID(id int) (models.Movie, bool) {
	s.ensureLoaded()

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.movies {
		if s.movies[i].ID == id {
			return s.movies[i], true
		}
	}
	return models.Movie{}, false
}

// UpdateMovie applies the fields present in the command to an existing
// movie. Absent (nil) fields are left unchanged. Returns false when the
// ID is unknown; the collection is untouched in that case.
func (s *MovieStore) UpdateMovie(id int, cmd models.UpdateMovieCommand) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.movies {
		if s.movies[i].ID != id {
			continue
		}
		m := &s.movies[i]
		if cmd.Title != nil {
			m.Title = *cmd.Title
		}
		if cmd.Overview != nil {
			m.Overview = cmd.Overview
		}
		if cmd.IsFavorite != nil {
			m.IsFavorite = *cmd.IsFavorite
		}
		if cmd.PersonalRating != nil {
			m.PersonalRating = cmd.PersonalRating
		}
		if cmd.PersonalNotes != nil {
			m.PersonalNotes = cmd.PersonalNotes
		}
		return true
	}
	return false
}

// DeleteMovie removes a movie by ID. Returns false when the ID is
// unknown, so a second delete of the same ID reports not-found.
func (s *MovieStore) DeleteMovie(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.movies {
		if s.movies[i].ID == id {
			s.movies = append(s.movies[:i], s.movies[i+1:]...)
			return true
		}
	}
	return false
}

// GetMoviesPaginated returns the requested page of movies matching the
// filters, plus the total match count before pagination. Ordering is
// collection order (identifier-assignment order). Pages past the end
// return an empty slice without error.
func (s *MovieStore) GetMoviesPaginated(page, size int, filters *models.MovieFilters) ([]models.Movie, int) {
	s.ensureLoaded()

	s.mu.Lock()
	defer s.mu.Unlock()

	matched := applyFilters(s.movies, filters)
	total := len(matched)

	start := (page - 1) * size
	if start >= total {
		return []models.Movie{}, total
	}
	end := start + size
	if end > total {
		end = total
	}

	out := make([]models.Movie, end-start)
	copy(out, matched[start:end])
	return out, total
}

// CreateUser stores a new user profile built from parsed sign-up data and
// returns its identifier.
func (s *MovieStore) CreateUser(info models.ParsedUserInfo) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := models.UserProfile{
		ID:              s.nextUserID,
		FirstName:       info.FirstName,
		LastName:        info.LastName,
		PhoneNumber:     info.PhoneNumber,
		StreetAddress:   info.StreetAddress,
		ApartmentNumber: info.ApartmentNumber,
		City:            info.City,
		State:           info.State,
		Country:         info.Country,
		ZipCode:         info.ZipCode,
		CreatedAt:       time.Now(),
	}
	s.users = append(s.users, user)
	s.nextUserID++
	return user.ID
}

// GetUserByID returns a copy of the user profile, or ok=false when the ID
// is unknown.
func (s *MovieStore) GetUserByID(id int) (models.UserProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			return s.users[i], true
		}
	}
	return models.UserProfile{}, false
}

// GetAllUsers returns a copy of the full user list.
func (s *MovieStore) GetAllUsers() []models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.UserProfile, len(s.users))
	copy(out, s.users)
	return out
}

// DeleteUser removes a user profile by ID. Returns false when the ID is
// unknown.
func (s *MovieStore) DeleteUser(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return true
		}
	}
	return false
}
