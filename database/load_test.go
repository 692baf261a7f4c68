package database

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vaaraprasad44/movies2/config"
	"github.com/Vaaraprasad44/movies2/models"
)

const testCSVHeader = "title_y,overview,genres,cast,release_date,vote_average,runtime,vote_count,original_language\n"

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "movies.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func storeFor(t *testing.T, path string) *MovieStore {
	t.Helper()
	return NewMovieStore(&config.Config{MoviesCSVPath: path})
}

func TestLoadFromCSVBasic(t *testing.T) {
	path := writeDataset(t, testCSVHeader+
		`Inception,A thief steals dreams.,"[{""id"": 28, ""name"": ""Action""}]","[{""name"": ""Leonardo DiCaprio""}]",2010-07-16,8.8,148,30000,en`+"\n"+
		`Amelie,A waitress in Montmartre.,"[{""name"": ""Comedy""}]",[],2001-04-25,8.3,122,9000.0,fr`+"\n")
	s := storeFor(t, path)

	movies, total := s.GetMoviesPaginated(1, 10, &models.MovieFilters{})
	require.Equal(t, 2, total)

	first := movies[0]
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, "Inception", first.Title)
	assert.Equal(t, "A thief steals dreams.", *first.Overview)
	require.Len(t, first.Genres, 1)
	assert.Equal(t, "Action", first.Genres[0].Name)
	require.Len(t, first.Cast, 1)
	assert.Equal(t, "Leonardo DiCaprio", first.Cast[0].Name)
	assert.Equal(t, 8.8, *first.VoteAverage)
	assert.Equal(t, 148.0, *first.Runtime)
	assert.Equal(t, 30000, *first.VoteCount)

	second := movies[1]
	assert.Equal(t, 2, second.ID)
	// "9000.0" style counts truncate to an int.
	assert.Equal(t, 9000, *second.VoteCount)
	assert.Empty(t, second.Cast)
}

func TestLoadFromCSVMissingFile(t *testing.T) {
	s := storeFor(t, filepath.Join(t.TempDir(), "nope.csv"))

	movies, total := s.GetMoviesPaginated(1, 10, &models.MovieFilters{})
	assert.Zero(t, total)
	assert.Empty(t, movies)

	// Creates still work against the empty library.
	id := s.CreateMovie(models.CreateMovieCommand{Title: "First"})
	assert.Equal(t, 1, id)
}

func TestLoadFromCSVBlankTitleFallsBack(t *testing.T) {
	path := writeDataset(t, testCSVHeader+
		",no title here,[],[],2015-01-01,5.0,90,10,en\n"+
		"nan,NaN title,[],[],2016-01-01,5.0,90,10,en\n")
	s := storeFor(t, path)

	movies, total := s.GetMoviesPaginated(1, 10, &models.MovieFilters{})
	require.Equal(t, 2, total)
	assert.Equal(t, "Untitled", movies[0].Title)
	assert.Equal(t, "Untitled", movies[1].Title)
}

func TestLoadFromCSVShortAndUnknownRows(t *testing.T) {
	// Rows may carry fewer cells than the header names; missing cells
	// degrade to absent values.
	path := writeDataset(t, testCSVHeader+
		"Sparse,only an overview\n")
	s := storeFor(t, path)

	movies, total := s.GetMoviesPaginated(1, 10, &models.MovieFilters{})
	require.Equal(t, 1, total)
	m := movies[0]
	assert.Equal(t, "Sparse", m.Title)
	assert.Equal(t, "only an overview", *m.Overview)
	assert.Nil(t, m.ReleaseDate)
	assert.Nil(t, m.VoteAverage)
	assert.Empty(t, m.Genres)
}

func TestLoadFromCSVLatin1(t *testing.T) {
	// 0xE9 is é in Latin-1 and an invalid byte sequence in UTF-8.
	raw := []byte(testCSVHeader + "Am\xe9lie,caf\xe9 au lait,[],[],2001-04-25,8.3,122,9000,fr\n")
	path := filepath.Join(t.TempDir(), "latin1.csv")
	require.NoError(t, os.WriteFile(path, raw, 0o644))
	s := storeFor(t, path)

	movies, total := s.GetMoviesPaginated(1, 10, &models.MovieFilters{})
	require.Equal(t, 1, total)
	assert.Equal(t, "Amélie", movies[0].Title)
	assert.Equal(t, "café au lait", *movies[0].Overview)
}

func TestLoadIDsContinueAfterEarlyCreate(t *testing.T) {
	path := writeDataset(t, testCSVHeader+
		"Row One,,[],[],2010-01-01,7.0,100,10,en\n"+
		"Row Two,,[],[],2011-01-01,7.0,100,10,en\n")
	s := storeFor(t, path)

	// A create before the first read must not collide with loaded rows.
	created := s.CreateMovie(models.CreateMovieCommand{Title: "Created First"})
	require.Equal(t, 1, created)

	movies, total := s.GetMoviesPaginated(1, 10, &models.MovieFilters{})
	require.Equal(t, 3, total)
	assert.Equal(t, []int{1, 2, 3}, []int{movies[0].ID, movies[1].ID, movies[2].ID})
	assert.Equal(t, "Created First", movies[0].Title)
	assert.Equal(t, "Row One", movies[1].Title)
	assert.Equal(t, "Row Two", movies[2].Title)

	next := s.CreateMovie(models.CreateMovieCommand{Title: "Created After"})
	assert.Equal(t, 4, next)
}

func TestLoadHappensAtMostOnce(t *testing.T) {
	path := writeDataset(t, testCSVHeader+
		"Solo,,[],[],2018-05-25,6.9,135,5000,en\n")
	s := storeFor(t, path)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.GetMoviesPaginated(1, 10, &models.MovieFilters{})
		}()
	}
	wg.Wait()

	_, total := s.GetMoviesPaginated(1, 10, &models.MovieFilters{})
	assert.Equal(t, 1, total)
}

func TestCreateDoesNotTriggerLoad(t *testing.T) {
	path := writeDataset(t, testCSVHeader+
		"Loaded Row,,[],[],2010-01-01,7.0,100,10,en\n")
	s := storeFor(t, path)

	s.CreateMovie(models.CreateMovieCommand{Title: "Write Only"})

	s.mu.Lock()
	count := len(s.movies)
	s.mu.Unlock()
	assert.Equal(t, 1, count, "writes must not pull in the dataset")
}

func TestIsFullDataset(t *testing.T) {
	small := writeDataset(t, testCSVHeader+"One,,[],[],2010-01-01,7.0,100,10,en\n")
	assert.False(t, isFullDataset(small))
	assert.False(t, isFullDataset(filepath.Join(t.TempDir(), "absent.csv")))

	big := testCSVHeader
	for i := 0; i < 1000; i++ {
		big += "Row,,[],[],2010-01-01,7.0,100,10,en\n"
	}
	assert.True(t, isFullDataset(writeDataset(t, big)))
}

func TestSafeString(t *testing.T) {
	assert.Nil(t, safeString(""))
	assert.Nil(t, safeString("  "))
	assert.Nil(t, safeString("nan"))
	assert.Nil(t, safeString("NaN"))
	assert.Equal(t, "ok", *safeString(" ok "))
}

func TestSafeEntityList(t *testing.T) {
	got := safeEntityList(`[{"id": 1, "name": "Drama"}, {"name": "War"}]`)
	require.Len(t, got, 2)
	assert.Equal(t, "Drama", got[0].Name)
	assert.Equal(t, float64(1), got[0].Attrs["id"])
	assert.Equal(t, "War", got[1].Name)

	// Doubled-quote artifacts inside the cell collapse before parsing.
	got = safeEntityList(`[{""name"": ""Action""}]`)
	require.Len(t, got, 1)
	assert.Equal(t, "Action", got[0].Name)

	// Garbage degrades to an empty, non-nil list.
	assert.NotNil(t, safeEntityList("not json"))
	assert.Empty(t, safeEntityList("not json"))
	assert.Empty(t, safeEntityList("nan"))
	assert.Empty(t, safeEntityList(""))
}

func TestSafeNumbers(t *testing.T) {
	assert.Equal(t, 7.5, *safeFloat("7.5"))
	assert.Nil(t, safeFloat("seven"))
	assert.Nil(t, safeFloat("nan"))

	assert.Equal(t, 123, *safeInt("123"))
	assert.Equal(t, 123, *safeInt("123.0"))
	assert.Nil(t, safeInt(""))
}
