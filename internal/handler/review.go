package handler

import (
	"net/http"

	"github.com/jpeder/gamevault/internal/domain"
	"github.com/jpeder/gamevault/internal/logger"
	"github.com/jpeder/gamevault/internal/review"
)

// ReviewRequest represents the payload for submitting or replacing a review
type ReviewRequest struct {
	Title          string   `json:"title" validate:"required,notblank,max=300"`
	GameName       string   `json:"game_name" validate:"required,notblank,max=300"`
	ReviewText     string   `json:"review_text" validate:"required,notblank"`
	Rating         *float64 `json:"rating" validate:"required"`
	Genre          string   `json:"genre,omitempty"`
	CategoryName   string   `json:"categoryName,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	PositivePoints []string `json:"positive_points,omitempty"`
	NegativePoints []string `json:"negative_points,omitempty"`
}

// toSubmission converts a validated request into the domain payload
func (req *ReviewRequest) toSubmission() domain.ReviewSubmission {
	return domain.ReviewSubmission{
		Title:          req.Title,
		GameName:       req.GameName,
		ReviewText:     req.ReviewText,
		Rating:         *req.Rating,
		Genre:          req.Genre,
		CategoryName:   req.CategoryName,
		Tags:           req.Tags,
		PositivePoints: req.PositivePoints,
		NegativePoints: req.NegativePoints,
	}
}

// HandleSubmitReview handles new review submissions
// @Summary Submit a review
// @Description Stores a normalized review row and its full JSON archive snapshot atomically
// @Tags reviews
// @Accept json
// @Produce json
// @Param request body ReviewRequest true "Review payload"
// @Success 201 {object} domain.Review
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/reviews [post]
func HandleSubmitReview(svc review.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req ReviewRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Submit review"); err != nil {
			return
		}

		log.Debug("Submit review request", "game", req.GameName, "title", req.Title)

		rev, err := svc.Submit(r.Context(), req.toSubmission())
		if err != nil {
			respondServiceError(w, r, ErrMsgSubmitReviewFailed, err)
			return
		}

		respondJSON(w, http.StatusCreated, rev)
	}
}

// HandleGetReview handles fetching a single review by id
// @Summary Get a review
// @Tags reviews
// @Produce json
// @Param id path string true "Review UUID"
// @Success 200 {object} domain.Review
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/reviews/{id} [get]
func HandleGetReview(svc review.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetUUIDParam(r, w, "id", ErrMsgInvalidReviewID)
		if !ok {
			return
		}

		rev, err := svc.Get(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetReviewFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, rev)
	}
}

// HandleListReviews handles listing all reviews
// @Summary List reviews
// @Tags reviews
// @Produce json
// @Success 200 {array} domain.Review
// @Router /api/v1/reviews [get]
func HandleListReviews(svc review.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reviews, err := svc.List(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgListReviewsFailed, err)
			return
		}
		if reviews == nil {
			reviews = []domain.Review{}
		}
		respondJSON(w, http.StatusOK, reviews)
	}
}

// HandleUpdateReview handles replacing a review's fields
// @Summary Update a review
// @Description Replaces the review's fields and merges the changes into its archive snapshot
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path string true "Review UUID"
// @Param request body ReviewRequest true "Replacement payload"
// @Success 200 {object} domain.Review
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/reviews/{id} [put]
func HandleUpdateReview(svc review.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetUUIDParam(r, w, "id", ErrMsgInvalidReviewID)
		if !ok {
			return
		}

		var req ReviewRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update review"); err != nil {
			return
		}

		rev, err := svc.Update(r.Context(), id, req.toSubmission())
		if err != nil {
			respondServiceError(w, r, ErrMsgUpdateReviewFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, rev)
	}
}

// HandleDeleteReview handles deleting a review. The archive snapshot is kept.
// @Summary Delete a review
// @Tags reviews
// @Produce json
// @Param id path string true "Review UUID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/reviews/{id} [delete]
func HandleDeleteReview(svc review.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetUUIDParam(r, w, "id", ErrMsgInvalidReviewID)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			respondServiceError(w, r, ErrMsgDeleteReviewFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgReviewDeletedSuccess})
	}
}
