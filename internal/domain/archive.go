package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// SnapshotSchemaVersion is the current version of the archive JSON layout.
// Older snapshots without a version decode with defaults for missing fields.
const SnapshotSchemaVersion = 1

// ArchivedReview preserves the full original JSON payload of a submission,
// independently of the normalized relational row. Its ID equals the
// normalized review's ID once materialization has occurred.
type ArchivedReview struct {
	ID         uuid.UUID       `json:"id"`
	ReviewJSON json.RawMessage `json:"review_json"`
	CreatedAt  time.Time       `json:"created_at"`
}

// ReviewSnapshot is the typed view of review_json. Every field is optional on
// the wire; DecodeSnapshot applies explicit defaults so callers never deal
// with absent keys.
type ReviewSnapshot struct {
	SchemaVersion  int      `json:"schema_version,omitempty"`
	Title          string   `json:"title"`
	GameName       string   `json:"game_name"`
	ReviewText     string   `json:"review_text"`
	Rating         *float64 `json:"rating,omitempty"`
	Genre          string   `json:"genre,omitempty"`
	CategoryName   string   `json:"categoryName,omitempty"`
	Tags           []string `json:"tags"`
	PositivePoints []string `json:"positive_points"`
	NegativePoints []string `json:"negative_points"`
}

// DecodeSnapshot parses raw archive JSON into a ReviewSnapshot, defaulting
// missing slices to empty and missing version to the pre-versioning layout.
func DecodeSnapshot(raw json.RawMessage) (ReviewSnapshot, error) {
	var snap ReviewSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return ReviewSnapshot{}, err
	}
	if snap.Tags == nil {
		snap.Tags = []string{}
	}
	if snap.PositivePoints == nil {
		snap.PositivePoints = []string{}
	}
	if snap.NegativePoints == nil {
		snap.NegativePoints = []string{}
	}
	return snap, nil
}

// SnapshotFromSubmission builds the archive JSON for a new submission.
func SnapshotFromSubmission(sub ReviewSubmission) ReviewSnapshot {
	rating := sub.Rating
	snap := ReviewSnapshot{
		SchemaVersion:  SnapshotSchemaVersion,
		Title:          sub.Title,
		GameName:       sub.GameName,
		ReviewText:     sub.ReviewText,
		Rating:         &rating,
		Genre:          sub.Genre,
		CategoryName:   sub.CategoryName,
		Tags:           sub.Tags,
		PositivePoints: sub.PositivePoints,
		NegativePoints: sub.NegativePoints,
	}
	if snap.Tags == nil {
		snap.Tags = []string{}
	}
	if snap.PositivePoints == nil {
		snap.PositivePoints = []string{}
	}
	if snap.NegativePoints == nil {
		snap.NegativePoints = []string{}
	}
	return snap
}

// MaterializeOutcome distinguishes whether materialization updated an
// existing normalized review, created a new one, or skipped the review
// write entirely because the snapshot has no game name.
type MaterializeOutcome string

const (
	MaterializeCreated MaterializeOutcome = "created"
	MaterializeUpdated MaterializeOutcome = "updated"
	MaterializeSkipped MaterializeOutcome = "skipped"
)

// MaterializeResult is returned by the reconciliation path. Review is nil
// when the outcome is skipped.
type MaterializeResult struct {
	Review       *Review            `json:"review,omitempty"`
	Genre        *GenreResolution   `json:"genre,omitempty"`
	Materialized MaterializeOutcome `json:"materialized"`
}
