package domain

// Game is created lazily the first time a review references its name.
// Lookup is by exact (case-sensitive) name match.
type Game struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
