package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jpeder/gamevault/internal/domain"
	"github.com/jpeder/gamevault/internal/logger"
	"github.com/jpeder/gamevault/internal/taxonomy"
)

// NormalizeGenreRequest represents a genre normalization call. Either a
// genre id or a genre name must be given; category fields are optional.
type NormalizeGenreRequest struct {
	GenreID      *int   `json:"genreId,omitempty"`
	Genre        string `json:"genre,omitempty"`
	CategoryID   *int   `json:"categoryId,omitempty"`
	CategoryName string `json:"categoryName,omitempty"`
}

// HandleNormalizeGenre resolves free-text genre and category names into
// stable rows, creating them as needed
// @Summary Normalize a genre
// @Description Upserts genre and category by case-insensitive name and returns the resolved rows
// @Tags genres
// @Accept json
// @Produce json
// @Param request body NormalizeGenreRequest true "Genre reference"
// @Success 200 {object} domain.GenreResolution
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/genres/normalize [post]
func HandleNormalizeGenre(svc taxonomy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req NormalizeGenreRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Normalize genre"); err != nil {
			return
		}

		log.Debug("Normalize genre request", "genre", req.Genre, "category", req.CategoryName)

		res, err := svc.Normalize(r.Context(), domain.GenreRef{
			GenreID:      req.GenreID,
			GenreName:    req.Genre,
			CategoryID:   req.CategoryID,
			CategoryName: req.CategoryName,
		})
		if err != nil {
			respondServiceError(w, r, ErrMsgNormalizeGenreFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, res)
	}
}

// HandleGetGenre handles fetching one genre by id
// @Summary Get a genre
// @Tags genres
// @Produce json
// @Param id path int true "Genre ID"
// @Success 200 {object} domain.Genre
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/genres/{id} [get]
func HandleGetGenre(svc taxonomy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			logger.FromContext(r.Context()).Warn("Invalid genre id path parameter", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidGenreID)
			return
		}

		genre, err := svc.GetGenre(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetGenreFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, genre)
	}
}

// HandleListGenres handles listing all genres
// @Summary List genres
// @Tags genres
// @Produce json
// @Success 200 {array} domain.Genre
// @Router /api/v1/genres [get]
func HandleListGenres(svc taxonomy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		genres, err := svc.ListGenres(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgListGenresFailed, err)
			return
		}
		if genres == nil {
			genres = []domain.Genre{}
		}
		respondJSON(w, http.StatusOK, genres)
	}
}

// HandleListCategories handles listing all categories
// @Summary List categories
// @Tags genres
// @Produce json
// @Success 200 {array} domain.Category
// @Router /api/v1/categories [get]
func HandleListCategories(svc taxonomy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := svc.ListCategories(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgListCategoriesFailed, err)
			return
		}
		if categories == nil {
			categories = []domain.Category{}
		}
		respondJSON(w, http.StatusOK, categories)
	}
}
