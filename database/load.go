package database

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/goccy/go-json"
	"golang.org/x/text/encoding/charmap"

	"github.com/Vaaraprasad44/movies2/metrics"
	"github.com/Vaaraprasad44/movies2/models"
)

// loadChunkSize bounds how many rows are converted per batch during the
// bulk load. Any value preserves row order; this one keeps allocation
// spikes small on the full dataset.
const loadChunkSize = 200

// csvEncoding is one candidate text encoding for the dataset. A nil
// charmap means plain UTF-8.
type csvEncoding struct {
	name string
	cm   *charmap.Charmap
}

// Tried in order; the first one under which a small sample parses cleanly
// wins. The dataset ships as Latin-1, so that goes first.
var csvEncodings = []csvEncoding{
	{name: "latin-1", cm: charmap.ISO8859_1},
	{name: "utf-8", cm: nil},
	{name: "windows-1252", cm: charmap.Windows1252},
}

func (e csvEncoding) reader(r io.Reader) io.Reader {
	if e.cm == nil {
		return r
	}
	return e.cm.NewDecoder().Reader(r)
}

// isFullDataset reports whether the file at path holds the full dataset
// (1000+ data rows). Only line counts matter here, so raw bytes are fine.
func isFullDataset(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	lines := 0
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	for sc.Scan() {
		lines++
	}
	return lines-1 >= 1000 // minus header
}

// loadFromCSV ingests the dataset into the movie collection. Callers must
// hold s.mu. Any total failure (missing file, no compatible encoding)
// leaves the store empty; row-level failures skip the row and keep going.
func (s *MovieStore) loadFromCSV() {
	if _, err := os.Stat(s.csvPath); err != nil {
		slog.Warn("dataset not found, starting with empty library", "path", s.csvPath)
		return
	}

	enc, ok := detectEncoding(s.csvPath)
	if !ok {
		slog.Error("no compatible encoding for dataset, starting with empty library", "path", s.csvPath)
		return
	}
	slog.Info("loading movies from dataset", "path", s.csvPath, "encoding", enc.name)

	f, err := os.Open(s.csvPath)
	if err != nil {
		slog.Error("failed to open dataset", "path", s.csvPath, "error", err)
		return
	}
	defer f.Close()

	r := csv.NewReader(enc.reader(f))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		slog.Error("failed to read dataset header", "path", s.csvPath, "error", err)
		return
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	skipped := 0
	loaded := 0
	chunk := make([]models.Movie, 0, loadChunkSize)
	flush := func() {
		s.movies = append(s.movies, chunk...)
		chunk = chunk[:0]
	}

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				skipped++
				continue
			}
			// Read error mid-file: keep what we have.
			slog.Error("dataset read aborted", "error", err, "loaded", loaded)
			break
		}

		// IDs continue from the current max so rows stay in file order
		// without ever colliding with movies created before the load.
		chunk = append(chunk, movieFromRecord(cols, record, s.nextMovieID+loaded))
		loaded++
		if len(chunk) >= loadChunkSize {
			flush()
		}
	}
	flush()

	s.nextMovieID += loaded
	metrics.LibrarySize.Set(float64(len(s.movies)))
	if skipped > 0 {
		metrics.CSVRowsSkipped.Add(float64(skipped))
	}
	slog.Info("dataset loaded", "movies", len(s.movies), "skipped_rows", skipped)
}

// detectEncoding parses a small sample of the file under each candidate
// encoding and returns the first that works.
func detectEncoding(path string) (csvEncoding, bool) {
	sample, err := readSample(path, 64*1024)
	if err != nil {
		return csvEncoding{}, false
	}

	for _, enc := range csvEncodings {
		if sampleParses(sample, enc) {
			return enc, true
		}
	}
	return csvEncoding{}, false
}

func readSample(path string, n int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, n)
	read, err := io.ReadFull(f, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, err
	}
	return buf[:read], nil
}

// sampleParses checks that the first few CSV records of the sample decode
// and parse without error under the candidate encoding.
func sampleParses(sample []byte, enc csvEncoding) bool {
	var decoded io.Reader = strings.NewReader(string(sample))
	if enc.cm == nil {
		// Plain UTF-8 has no decoder to reject bad bytes, so validate
		// explicitly.
		if !utf8.Valid(sample) {
			return false
		}
	} else {
		decoded = enc.cm.NewDecoder().Reader(strings.NewReader(string(sample)))
	}

	r := csv.NewReader(decoded)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	for i := 0; i < 5; i++ {
		if _, err := r.Read(); err != nil {
			return err == io.EOF
		}
	}
	return true
}

// movieFromRecord converts one CSV row into a Movie. The conversion is
// total: bad cells degrade to absent values (or empty entity lists), and
// a blank title falls back to "Untitled".
func movieFromRecord(cols map[string]int, record []string, id int) models.Movie {
	field := func(name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return record[idx]
	}

	title := "Untitled"
	if t := safeString(field("title_y")); t != nil {
		title = *t
	}

	return models.Movie{
		ID:                  id,
		Title:               title,
		Overview:            safeString(field("overview")),
		Genres:              safeEntityList(field("genres")),
		Keywords:            safeEntityList(field("keywords")),
		Tagline:             safeString(field("tagline")),
		Cast:                safeEntityList(field("cast")),
		Crew:                safeEntityList(field("crew")),
		ProductionCompanies: safeEntityList(field("production_companies")),
		ProductionCountries: safeEntityList(field("production_countries")),
		SpokenLanguages:     safeEntityList(field("spoken_languages")),
		OriginalLanguage:    safeString(field("original_language")),
		OriginalTitle:       safeString(field("original_title")),
		ReleaseDate:         safeString(field("release_date")),
		Runtime:             safeFloat(field("runtime")),
		VoteAverage:         safeFloat(field("vote_average")),
		VoteCount:           safeInt(field("vote_count")),
		Popularity:          safeFloat(field("popularity")),
	}
}

// safeString treats blanks and pandas NaN artifacts as absent.
func safeString(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" || v == "nan" || v == "NaN" {
		return nil
	}
	return &v
}

// safeEntityList parses an embedded-JSON cell into named entities. The
// dataset carries doubled-quote escaping artifacts inside some cells, so
// those are collapsed before unmarshalling. Anything unparseable becomes
// an empty list, never an error.
func safeEntityList(v string) []models.NamedEntity {
	v = strings.TrimSpace(v)
	if v == "" || v == "nan" {
		return []models.NamedEntity{}
	}
	cleaned := strings.ReplaceAll(v, `""`, `"`)
	var entities []models.NamedEntity
	if err := json.Unmarshal([]byte(cleaned), &entities); err != nil {
		return []models.NamedEntity{}
	}
	return entities
}

func safeFloat(v string) *float64 {
	v = strings.TrimSpace(v)
	if v == "" || v == "nan" || v == "NaN" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

func safeInt(v string) *int {
	// Vote counts occasionally appear as "123.0" after pandas round
	// trips, so parse as float and truncate.
	f := safeFloat(v)
	if f == nil {
		return nil
	}
	i := int(*f)
	return &i
}
