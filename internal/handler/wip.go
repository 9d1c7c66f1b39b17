package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jpeder/gamevault/internal/domain"
	"github.com/jpeder/gamevault/internal/logger"
	"github.com/jpeder/gamevault/internal/wip"
)

// WipRequest represents the payload for creating or replacing a scratch-pad entry
type WipRequest struct {
	GameName string `json:"game_name" validate:"required,notblank,max=300"`
	Remarks  string `json:"remarks"`
}

// getWipID parses the integer id path parameter. If ok is false, the HTTP
// response has already been written.
func getWipID(r *http.Request, w http.ResponseWriter) (int, bool) {
	log := logger.FromContext(r.Context())
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Warn("Invalid wip id path parameter", "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidWipID)
		return 0, false
	}
	return id, true
}

// HandleCreateWip handles creating a scratch-pad entry
// @Summary Create a wip review
// @Tags wip
// @Accept json
// @Produce json
// @Param request body WipRequest true "Scratch-pad payload"
// @Success 201 {object} domain.WipReview
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/wip [post]
func HandleCreateWip(svc wip.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req WipRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create wip review"); err != nil {
			return
		}

		entry, err := svc.Create(r.Context(), domain.WipReview{
			GameName: req.GameName,
			Remarks:  req.Remarks,
		})
		if err != nil {
			respondServiceError(w, r, ErrMsgCreateWipFailed, err)
			return
		}

		respondJSON(w, http.StatusCreated, entry)
	}
}

// HandleGetWip handles fetching a single scratch-pad entry
// @Summary Get a wip review
// @Tags wip
// @Produce json
// @Param id path int true "Wip id"
// @Success 200 {object} domain.WipReview
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/wip/{id} [get]
func HandleGetWip(svc wip.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := getWipID(r, w)
		if !ok {
			return
		}

		entry, err := svc.Get(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetWipFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, entry)
	}
}

// HandleListWips handles listing all scratch-pad entries
// @Summary List wip reviews
// @Tags wip
// @Produce json
// @Success 200 {array} domain.WipReview
// @Router /api/v1/wip [get]
func HandleListWips(svc wip.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := svc.List(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgListWipsFailed, err)
			return
		}
		if entries == nil {
			entries = []domain.WipReview{}
		}
		respondJSON(w, http.StatusOK, entries)
	}
}

// HandleUpdateWip handles replacing a scratch-pad entry
// @Summary Update a wip review
// @Tags wip
// @Accept json
// @Produce json
// @Param id path int true "Wip id"
// @Param request body WipRequest true "Replacement payload"
// @Success 200 {object} domain.WipReview
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/wip/{id} [put]
func HandleUpdateWip(svc wip.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := getWipID(r, w)
		if !ok {
			return
		}

		var req WipRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update wip review"); err != nil {
			return
		}

		entry, err := svc.Update(r.Context(), id, domain.WipReview{
			GameName: req.GameName,
			Remarks:  req.Remarks,
		})
		if err != nil {
			respondServiceError(w, r, ErrMsgUpdateWipFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, entry)
	}
}

// HandleDeleteWip handles deleting a scratch-pad entry
// @Summary Delete a wip review
// @Tags wip
// @Produce json
// @Param id path int true "Wip id"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/wip/{id} [delete]
func HandleDeleteWip(svc wip.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := getWipID(r, w)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			respondServiceError(w, r, ErrMsgDeleteWipFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgWipDeletedSuccess})
	}
}
