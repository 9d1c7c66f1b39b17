package domain

import (
	"strings"
	"time"
)

// WipReview is an independent scratch-pad entry for draft notes. It is not
// part of the review/archive reconciliation model.
type WipReview struct {
	ID        int       `json:"id"`
	GameName  string    `json:"game_name"`
	Remarks   string    `json:"remarks"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks the only invariant a WIP entry has: a present game name.
func (w *WipReview) Validate() error {
	if strings.TrimSpace(w.GameName) == "" {
		return ErrGameNameRequired
	}
	return nil
}
