package services

import (
	"sort"
	"strconv"
	"strings"

	"github.com/Vaaraprasad44/movies2/models"
)

type GenreCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type DecadeCount struct {
	Decade int `json:"decade"`
	Count  int `json:"count"`
}

type LibraryStats struct {
	TotalMovies        int           `json:"total_movies"`
	FavoritesCount     int           `json:"favorites_count"`
	RatedCount         int           `json:"rated_count"`
	TopGenres          []GenreCount  `json:"top_genres"`
	DecadeDistribution []DecadeCount `json:"decade_distribution"`
}

// ComputeLibraryStats aggregates favorites, personal ratings, the ten
// most common genres and the per-decade release distribution over the
// given movies.
func ComputeLibraryStats(movies []models.Movie, total int) LibraryStats {
	stats := LibraryStats{TotalMovies: total}

	genreCounts := make(map[string]int)
	decadeCounts := make(map[int]int)

	for i := range movies {
		m := &movies[i]
		if m.IsFavorite {
			stats.FavoritesCount++
		}
		if m.PersonalRating != nil {
			stats.RatedCount++
		}
		for _, g := range m.Genres {
			name := g.Name
			if name == "" {
				name = "Unknown"
			}
			genreCounts[name]++
		}
		if m.ReleaseDate != nil {
			yearStr, _, _ := strings.Cut(*m.ReleaseDate, "-")
			if year, err := strconv.Atoi(strings.TrimSpace(yearStr)); err == nil {
				decadeCounts[(year/10)*10]++
			}
		}
	}

	for name, count := range genreCounts {
		stats.TopGenres = append(stats.TopGenres, GenreCount{Name: name, Count: count})
	}
	sort.Slice(stats.TopGenres, func(i, j int) bool {
		if stats.TopGenres[i].Count != stats.TopGenres[j].Count {
			return stats.TopGenres[i].Count > stats.TopGenres[j].Count
		}
		return stats.TopGenres[i].Name < stats.TopGenres[j].Name
	})
	if len(stats.TopGenres) > 10 {
		stats.TopGenres = stats.TopGenres[:10]
	}

	for decade, count := range decadeCounts {
		stats.DecadeDistribution = append(stats.DecadeDistribution, DecadeCount{Decade: decade, Count: count})
	}
	sort.Slice(stats.DecadeDistribution, func(i, j int) bool {
		return stats.DecadeDistribution[i].Decade < stats.DecadeDistribution[j].Decade
	})

	return stats
}
