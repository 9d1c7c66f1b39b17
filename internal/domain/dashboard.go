package domain

// RatingBucket is one by-rating dashboard row: an integer rating, how many
// archived reviews carry it, and a few sample titles.
type RatingBucket struct {
	Rating  int      `json:"rating"`
	Count   int      `json:"count"`
	Samples []string `json:"samples"`
}

// CategoryAggregate is the category-level dashboard row.
type CategoryAggregate struct {
	CategoryID   int     `json:"category_id"`
	CategoryName string  `json:"category_name"`
	Count        int     `json:"count"`
	AvgRating    float64 `json:"avg_rating"`
	SampleGame   string  `json:"sample_game"`
}

// GenreAggregate is the genre-level dashboard row, carrying its parent
// category id so the UI can nest it.
type GenreAggregate struct {
	GenreID    int     `json:"genre_id"`
	GenreName  string  `json:"genre_name"`
	CategoryID *int    `json:"category_id,omitempty"`
	Count      int     `json:"count"`
	AvgRating  float64 `json:"avg_rating"`
	SampleGame string  `json:"sample_game"`
}

// CategoryDashboard bundles both aggregation levels for one response.
type CategoryDashboard struct {
	Categories []CategoryAggregate `json:"categories"`
	Genres     []GenreAggregate    `json:"genres"`
}
