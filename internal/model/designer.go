package model

// Designer represents a row in the `designer` table.  TrendCount and
// PopularityScore are scalar values kept directly on the designer row;
// they are written by the client on add/update and never derived.
//
// Fields:
//  ID              – primary key identifier (designer_id).
//  Name            – designer name.
//  Location        – city/region the designer is based in.
//  TrendCount      – number of trends attributed to the designer.
//  PopularityScore – overall popularity score of the designer.
type Designer struct {
	ID              int64  `json:"id"`               // designer.designer_id
	Name            string `json:"name"`             // designer.designer_name
	Location        string `json:"location"`         // designer.designer_location
	TrendCount      int    `json:"trend_count"`      // designer.trend_count
	PopularityScore int    `json:"popularity_score"` // designer.popularity_score
}
