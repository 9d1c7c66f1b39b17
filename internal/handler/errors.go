package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Path parameter error messages
	ErrMsgInvalidReviewID  = "Invalid review id"
	ErrMsgInvalidArchiveID = "Invalid archive id"
	ErrMsgInvalidWipID     = "Invalid wip id"
	ErrMsgInvalidGenreID   = "Invalid genre id"

	// Review operation error messages
	ErrMsgSubmitReviewFailed = "Failed to submit review"
	ErrMsgGetReviewFailed    = "Failed to get review"
	ErrMsgListReviewsFailed  = "Failed to list reviews"
	ErrMsgUpdateReviewFailed = "Failed to update review"
	ErrMsgDeleteReviewFailed = "Failed to delete review"

	// Archive operation error messages
	ErrMsgGetArchiveFailed    = "Failed to get archived review"
	ErrMsgListArchivesFailed  = "Failed to list archived reviews"
	ErrMsgMaterializeFailed   = "Failed to materialize archived review"
	ErrMsgPatchArchiveFailed  = "Failed to patch archived review"
	ErrMsgDashboardFailed     = "Failed to build dashboard"

	// Taxonomy operation error messages
	ErrMsgNormalizeGenreFailed = "Failed to normalize genre"
	ErrMsgGetGenreFailed       = "Failed to get genre"
	ErrMsgListGenresFailed     = "Failed to list genres"
	ErrMsgListCategoriesFailed = "Failed to list categories"

	// Scratch-pad operation error messages
	ErrMsgCreateWipFailed = "Failed to create wip review"
	ErrMsgGetWipFailed    = "Failed to get wip review"
	ErrMsgListWipsFailed  = "Failed to list wip reviews"
	ErrMsgUpdateWipFailed = "Failed to update wip review"
	ErrMsgDeleteWipFailed = "Failed to delete wip review"
)

// Success messages for API responses
const (
	MsgReviewDeletedSuccess = "Review deleted successfully"
	MsgWipDeletedSuccess    = "Wip review deleted successfully"
)
