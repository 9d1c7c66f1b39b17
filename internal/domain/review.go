package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Review is the normalized representation of a submitted review.
// Its ID is shared with the archive snapshot it was created from.
type Review struct {
	ID             uuid.UUID `json:"id"`
	GameID         int       `json:"game_id"`
	GameName       string    `json:"game_name"`
	Title          string    `json:"title"`
	ReviewText     string    `json:"review_text"`
	Rating         float64   `json:"rating"`
	PositivePoints []string  `json:"positive_points"`
	NegativePoints []string  `json:"negative_points"`
	Tags           []string  `json:"tags"`
	GenreID        *int      `json:"genre_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ReviewSubmission is the inbound payload of the write path.
type ReviewSubmission struct {
	Title          string   `json:"title"`
	GameName       string   `json:"game_name"`
	ReviewText     string   `json:"review_text"`
	Rating         float64  `json:"rating"`
	Genre          string   `json:"genre,omitempty"`
	CategoryName   string   `json:"categoryName,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	PositivePoints []string `json:"positive_points,omitempty"`
	NegativePoints []string `json:"negative_points,omitempty"`
}

// Validate checks the required fields of a submission.
// Validation runs before any write begins.
func (s *ReviewSubmission) Validate() error {
	if strings.TrimSpace(s.Title) == "" {
		return ErrTitleRequired
	}
	if strings.TrimSpace(s.GameName) == "" {
		return ErrGameNameRequired
	}
	if strings.TrimSpace(s.ReviewText) == "" {
		return ErrReviewTextRequired
	}
	return nil
}
