package handler

import (
	"net/http"

	"github.com/jpeder/gamevault/internal/archive"
	"github.com/jpeder/gamevault/internal/domain"
)

// HandleDashboardByRating serves the rating histogram over all snapshots
// @Summary Dashboard by rating
// @Description Counts archived reviews per rating value with up to three sample titles each
// @Tags dashboard
// @Produce json
// @Success 200 {array} domain.RatingBucket
// @Router /api/v1/dashboard/by-rating [get]
func HandleDashboardByRating(svc archive.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		buckets, err := svc.AggregateByRating(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgDashboardFailed, err)
			return
		}
		if buckets == nil {
			buckets = []domain.RatingBucket{}
		}
		respondJSON(w, http.StatusOK, buckets)
	}
}

// HandleDashboardByCategory serves rating aggregates grouped by category and genre
// @Summary Dashboard by category
// @Description Aggregates archived review ratings per category and per genre
// @Tags dashboard
// @Produce json
// @Success 200 {object} domain.CategoryDashboard
// @Router /api/v1/dashboard/by-category [get]
func HandleDashboardByCategory(svc archive.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dashboard, err := svc.AggregateByCategory(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgDashboardFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, dashboard)
	}
}
