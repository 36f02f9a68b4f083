package models

// VisitorCount holds one row per calendar day. Date uses YYYY-MM-DD.
type VisitorCount struct {
	Date  string `db:"visit_date" json:"date"`
	Count int64  `db:"count" json:"count"`
}

// VisitorStats aggregates the counter for the stats endpoint.
type VisitorStats struct {
	Daily   int64 `json:"daily"`
	Monthly int64 `json:"monthly"`
}
