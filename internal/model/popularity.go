package model

import "time"

// CategoryPopularity models a row in `category_popularity`.  The pair
// (CategoryID, Season) is the primary key; writes overwrite the score.
type CategoryPopularity struct {
	CategoryID int64  `json:"category_id"`
	Season     string `json:"season"`
	Score      int    `json:"score"`
}

// ProductPopularity models a row in `product_popularity`, keyed by
// (ProductID, TrendID).
type ProductPopularity struct {
	ProductID int64 `json:"product_id"`
	TrendID   int64 `json:"trend_id"`
	Score     int   `json:"score"`
}

// TrendPopularity models one entry of the append-only
// `trend_popularity` history.
type TrendPopularity struct {
	ID         int64     `json:"id"`
	TrendID    int64     `json:"trend_id"`
	Score      int       `json:"score"`
	RecordedAt time.Time `json:"recorded_at"`
}
