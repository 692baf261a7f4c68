package models

// Movie is a single catalog record. Pointer fields are optional in the
// source dataset; nil means the value was absent or unparseable, which is
// distinct from a zero value (a nil VoteAverage is excluded by rating
// filters, a 0.0 one is not).
type Movie struct {
	ID                  int           `json:"id"`
	Title               string        `json:"title"`
	Overview            *string       `json:"overview"`
	Genres              []NamedEntity `json:"genres"`
	Keywords            []NamedEntity `json:"keywords"`
	Tagline             *string       `json:"tagline"`
	Cast                []NamedEntity `json:"cast"`
	Crew                []NamedEntity `json:"crew"`
	ProductionCompanies []NamedEntity `json:"production_companies"`
	ProductionCountries []NamedEntity `json:"production_countries"`
	SpokenLanguages     []NamedEntity `json:"spoken_languages"`
	OriginalLanguage    *string       `json:"original_language"`
	OriginalTitle       *string       `json:"original_title"`
	ReleaseDate         *string       `json:"release_date"`
	Runtime             *float64      `json:"runtime"`
	VoteAverage         *float64      `json:"vote_average"`
	VoteCount           *int          `json:"vote_count"`
	Popularity          *float64      `json:"popularity"`
	IsFavorite          bool          `json:"is_favorite"`
	PersonalRating      *float64      `json:"personal_rating"`
	PersonalNotes       *string       `json:"personal_notes"`
}

// CreateMovieCommand carries the caller-supplied fields for a new movie.
// User fields (favorite, personal rating, notes) are not settable at
// creation time; they start at their defaults.
type CreateMovieCommand struct {
	Title               string        `json:"title"`
	Overview            *string       `json:"overview"`
	Genres              []NamedEntity `json:"genres"`
	Keywords            []NamedEntity `json:"keywords"`
	Tagline             *string       `json:"tagline"`
	Cast                []NamedEntity `json:"cast"`
	Crew                []NamedEntity `json:"crew"`
	ProductionCompanies []NamedEntity `json:"production_companies"`
	ProductionCountries []NamedEntity `json:"production_countries"`
	SpokenLanguages     []NamedEntity `json:"spoken_languages"`
	OriginalLanguage    *string       `json:"original_language"`
	OriginalTitle       *string       `json:"original_title"`
	ReleaseDate         *string       `json:"release_date"`
	Runtime             *float64      `json:"runtime"`
	VoteAverage         *float64      `json:"vote_average"`
	VoteCount           *int          `json:"vote_count"`
	Popularity          *float64      `json:"popularity"`
}

// UpdateMovieCommand is a partial update: a nil field means "leave
// unchanged". This also means a caller cannot explicitly clear a field
// back to its zero value through an update; that is a known limitation of
// the contract, not something handlers work around.
type UpdateMovieCommand struct {
	Title          *string  `json:"title"`
	Overview       *string  `json:"overview"`
	IsFavorite     *bool    `json:"is_favorite"`
	PersonalRating *float64 `json:"personal_rating"`
	PersonalNotes  *string  `json:"personal_notes"`
}

// MovieFilters is the set of optional predicates for paginated listing.
// Absent predicates impose no constraint; present ones are ANDed together,
// except Genres which matches if any requested name matches any of the
// movie's genre names.
type MovieFilters struct {
	Search             *string  `json:"search"`
	Genres             []string `json:"genres"`
	YearFrom           *int     `json:"year_from"`
	YearTo             *int     `json:"year_to"`
	RatingFrom         *float64 `json:"rating_from"`
	RatingTo           *float64 `json:"rating_to"`
	RuntimeFrom        *int     `json:"runtime_from"`
	RuntimeTo          *int     `json:"runtime_to"`
	Language           *string  `json:"language"`
	IsFavorite         *bool    `json:"is_favorite"`
	PersonalRatingFrom *float64 `json:"personal_rating_from"`
	PersonalRatingTo   *float64 `json:"personal_rating_to"`
}

// IsZero reports whether no predicate is set.
func (f *MovieFilters) IsZero() bool {
	if f == nil {
		return true
	}
	return f.Search == nil && len(f.Genres) == 0 &&
		f.YearFrom == nil && f.YearTo == nil &&
		f.RatingFrom == nil && f.RatingTo == nil &&
		f.RuntimeFrom == nil && f.RuntimeTo == nil &&
		f.Language == nil && f.IsFavorite == nil &&
		f.PersonalRatingFrom == nil && f.PersonalRatingTo == nil
}

// PaginatedMovieResponse is the list endpoint envelope.
type PaginatedMovieResponse struct {
	Items []Movie `json:"items"`
	Total int     `json:"total"`
	Page  int     `json:"page"`
	Size  int     `json:"size"`
	Pages int     `json:"pages"`
}
