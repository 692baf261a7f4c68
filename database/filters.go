package database

import (
	"strconv"
	"strings"

	"github.com/Vaaraprasad44/movies2/models"
)

// applyFilters returns the subsequence of movies matching every present
// predicate, in input order. No predicate can fail the scan: values that
// cannot be interpreted simply exclude their record.
func applyFilters(movies []models.Movie, f *models.MovieFilters) []models.Movie {
	if f.IsZero() {
		return movies
	}

	matched := make([]models.Movie, 0, len(movies))
	for i := range movies {
		if movieMatches(&movies[i], f) {
			matched = append(matched, movies[i])
		}
	}
	return matched
}

func movieMatches(m *models.Movie, f *models.MovieFilters) bool {
	if f.Search != nil && !matchesSearch(m, *f.Search) {
		return false
	}
	if len(f.Genres) > 0 && !matchesGenres(m, f.Genres) {
		return false
	}
	if (f.YearFrom != nil || f.YearTo != nil) && !matchesYear(m.ReleaseDate, f.YearFrom, f.YearTo) {
		return false
	}
	if f.RatingFrom != nil && (m.VoteAverage == nil || *m.VoteAverage < *f.RatingFrom) {
		return false
	}
	if f.RatingTo != nil && (m.VoteAverage == nil || *m.VoteAverage > *f.RatingTo) {
		return false
	}
	if f.RuntimeFrom != nil && (m.Runtime == nil || *m.Runtime < float64(*f.RuntimeFrom)) {
		return false
	}
	if f.RuntimeTo != nil && (m.Runtime == nil || *m.Runtime > float64(*f.RuntimeTo)) {
		return false
	}
	if f.Language != nil && (m.OriginalLanguage == nil || *m.OriginalLanguage != *f.Language) {
		return false
	}
	if f.IsFavorite != nil && m.IsFavorite != *f.IsFavorite {
		return false
	}
	if f.PersonalRatingFrom != nil && (m.PersonalRating == nil || *m.PersonalRating < *f.PersonalRatingFrom) {
		return false
	}
	if f.PersonalRatingTo != nil && (m.PersonalRating == nil || *m.PersonalRating > *f.PersonalRatingTo) {
		return false
	}
	return true
}

// matchesSearch is a case-insensitive substring match against the title,
// overview, and every cast and crew member name.
func matchesSearch(m *models.Movie, term string) bool {
	term = strings.ToLower(term)

	if strings.Contains(strings.ToLower(m.Title), term) {
		return true
	}
	if m.Overview != nil && strings.Contains(strings.ToLower(*m.Overview), term) {
		return true
	}
	for _, c := range m.Cast {
		if strings.Contains(strings.ToLower(c.Name), term) {
			return true
		}
	}
	for _, c := range m.Crew {
		if strings.Contains(strings.ToLower(c.Name), term) {
			return true
		}
	}
	return false
}

// matchesGenres matches when any of the movie's genre names equals any of
// the requested names, case-insensitively.
func matchesGenres(m *models.Movie, wanted []string) bool {
	for _, g := range m.Genres {
		name := strings.ToLower(g.Name)
		for _, w := range wanted {
			if name == strings.ToLower(w) {
				return true
			}
		}
	}
	return false
}

// matchesYear parses the leading 4-digit year of a YYYY-... release date
// and checks it against the bounds. A movie with no parseable year is
// excluded whenever either bound is set.
func matchesYear(releaseDate *string, from, to *int) bool {
	if releaseDate == nil {
		return false
	}
	yearStr, _, _ := strings.Cut(*releaseDate, "-")
	year, err := strconv.Atoi(strings.TrimSpace(yearStr))
	if err != nil {
		return false
	}
	if from != nil && year < *from {
		return false
	}
	if to != nil && year > *to {
		return false
	}
	return true
}
