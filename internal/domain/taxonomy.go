package domain

import "strings"

// Category groups genres. Name is unique case-insensitively.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Genre classifies reviews. Name is unique case-insensitively; the category
// link is optional and, once set, survives upserts that omit a category.
type Genre struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	CategoryID *int   `json:"category_id,omitempty"`
}

// GenreRef identifies a genre (and optionally a category) either by id or by
// free-text name. Names are trimmed before use.
type GenreRef struct {
	GenreID      *int   `json:"genreId,omitempty"`
	GenreName    string `json:"genreName,omitempty"`
	CategoryID   *int   `json:"categoryId,omitempty"`
	CategoryName string `json:"categoryName,omitempty"`
}

// IsZero reports whether the ref carries no genre identity at all.
func (r GenreRef) IsZero() bool {
	return r.GenreID == nil && strings.TrimSpace(r.GenreName) == ""
}

// Validate checks that a genre id or a non-empty genre name is present.
func (r GenreRef) Validate() error {
	if r.IsZero() {
		return ErrGenreNameRequired
	}
	return nil
}

// GenreResolution is the result of normalizing a GenreRef: the stable genre
// row plus the display name of its linked category, if any.
type GenreResolution struct {
	Genre        Genre  `json:"genre"`
	CategoryName string `json:"categoryName,omitempty"`
}
