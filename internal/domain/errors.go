package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Review errors
	ErrMsgReviewNotFound     = "review not found"
	ErrMsgTitleRequired      = "title is required"
	ErrMsgGameNameRequired   = "game name is required"
	ErrMsgReviewTextRequired = "review text is required"
	ErrMsgRatingRequired     = "rating is required"

	// Archive errors
	ErrMsgArchiveNotFound = "archived review not found"
	ErrMsgEmptyPatch      = "patch must contain at least one field"

	// Taxonomy errors
	ErrMsgGenreNameRequired = "genre name or id is required"
	ErrMsgGenreNotFound     = "genre not found"
	ErrMsgCategoryNotFound  = "category not found"

	// Game errors
	ErrMsgGameNotFound  = "game not found"
	ErrMsgDuplicateGame = "a game with that name already exists"

	// WIP errors
	ErrMsgWipNotFound = "wip review not found"

	// Database/System errors
	ErrMsgDatabaseError = "database error"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Review errors
	ErrReviewNotFound     = errors.New(ErrMsgReviewNotFound)
	ErrTitleRequired      = errors.New(ErrMsgTitleRequired)
	ErrGameNameRequired   = errors.New(ErrMsgGameNameRequired)
	ErrReviewTextRequired = errors.New(ErrMsgReviewTextRequired)
	ErrRatingRequired     = errors.New(ErrMsgRatingRequired)

	// Archive errors
	ErrArchiveNotFound = errors.New(ErrMsgArchiveNotFound)
	ErrEmptyPatch      = errors.New(ErrMsgEmptyPatch)

	// Taxonomy errors
	ErrGenreNameRequired = errors.New(ErrMsgGenreNameRequired)
	ErrGenreNotFound     = errors.New(ErrMsgGenreNotFound)
	ErrCategoryNotFound  = errors.New(ErrMsgCategoryNotFound)

	// Game errors
	ErrGameNotFound  = errors.New(ErrMsgGameNotFound)
	ErrDuplicateGame = errors.New(ErrMsgDuplicateGame)

	// WIP errors
	ErrWipNotFound = errors.New(ErrMsgWipNotFound)

	// Database/System errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
