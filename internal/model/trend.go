package model

// Trend represents a row in the `trend` table.
//
// PopularityScore is the current popularity value of the trend.  Every
// change to it is also appended to `trend_popularity`, which keeps the
// full history (see TrendPopularity).
type Trend struct {
	ID              int64  `json:"id"`                    // trend.trend_id
	Name            string `json:"name"`                  // trend.trend_name
	Description     string `json:"description"`           // trend.trend_desc
	CategoryID      *int64 `json:"category_id,omitempty"` // trend.category_id (nullable)
	DesignerID      *int64 `json:"designer_id,omitempty"` // trend.designer_id (nullable)
	Location        string `json:"location"`              // trend.location
	Season          string `json:"season"`                // trend.season
	PopularityScore int    `json:"popularity_score"`      // trend.popularity_score
}
