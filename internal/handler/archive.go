package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/jpeder/gamevault/internal/archive"
	"github.com/jpeder/gamevault/internal/domain"
	"github.com/jpeder/gamevault/internal/logger"
)

// MaterializeRequest carries optional genre hints for the reconciliation
// path. All fields may be omitted, in which case the snapshot's own genre
// fields drive normalization.
type MaterializeRequest struct {
	GenreID      *int   `json:"genreId,omitempty"`
	Genre        string `json:"genre,omitempty"`
	CategoryID   *int   `json:"categoryId,omitempty"`
	CategoryName string `json:"categoryName,omitempty"`
}

// HandleGetArchive handles fetching a single archive snapshot
// @Summary Get an archived review
// @Tags archive
// @Produce json
// @Param id path string true "Archive UUID"
// @Success 200 {object} domain.ArchivedReview
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/archive/{id} [get]
func HandleGetArchive(svc archive.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetUUIDParam(r, w, "id", ErrMsgInvalidArchiveID)
		if !ok {
			return
		}

		arch, err := svc.Get(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetArchiveFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, arch)
	}
}

// HandleListArchives handles listing all archive snapshots
// @Summary List archived reviews
// @Tags archive
// @Produce json
// @Success 200 {array} domain.ArchivedReview
// @Router /api/v1/archive [get]
func HandleListArchives(svc archive.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		archives, err := svc.List(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgListArchivesFailed, err)
			return
		}
		if archives == nil {
			archives = []domain.ArchivedReview{}
		}
		respondJSON(w, http.StatusOK, archives)
	}
}

// HandleMaterializeArchive rebuilds the normalized review row from a snapshot
// @Summary Materialize an archived review
// @Description Recreates or updates the normalized review row from the stored JSON snapshot
// @Tags archive
// @Accept json
// @Produce json
// @Param id path string true "Archive UUID"
// @Param request body MaterializeRequest false "Optional genre hints"
// @Success 200 {object} domain.MaterializeResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/archive/{id}/materialize [post]
func HandleMaterializeArchive(svc archive.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		id, ok := GetUUIDParam(r, w, "id", ErrMsgInvalidArchiveID)
		if !ok {
			return
		}

		// The body is optional; an empty body means no hints
		var req MaterializeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			log.Error("Failed to decode materialize request", "error", err)
			http.Error(w, ErrMsgInvalidRequest, http.StatusBadRequest)
			return
		}

		ref := domain.GenreRef{
			GenreID:      req.GenreID,
			GenreName:    req.Genre,
			CategoryID:   req.CategoryID,
			CategoryName: req.CategoryName,
		}

		result, err := svc.Materialize(r.Context(), id, ref)
		if err != nil {
			respondServiceError(w, r, ErrMsgMaterializeFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

// HandlePatchArchive merges a partial JSON document into a snapshot
// @Summary Patch an archived review
// @Description Shallow-merges the given fields into the snapshot and syncs the linked review
// @Tags archive
// @Accept json
// @Produce json
// @Param id path string true "Archive UUID"
// @Param request body object true "Fields to merge"
// @Success 200 {object} domain.ArchivedReview
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/archive/{id} [patch]
func HandlePatchArchive(svc archive.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		id, ok := GetUUIDParam(r, w, "id", ErrMsgInvalidArchiveID)
		if !ok {
			return
		}

		var patch map[string]any
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			log.Error("Failed to decode patch request", "error", err)
			http.Error(w, ErrMsgInvalidRequest, http.StatusBadRequest)
			return
		}

		arch, err := svc.Patch(r.Context(), id, patch)
		if err != nil {
			respondServiceError(w, r, ErrMsgPatchArchiveFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, arch)
	}
}
