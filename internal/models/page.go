package models

// Page carries the flattened pagination fields of list responses.
type Page struct {
	Count       int `json:"count"`
	Total       int `json:"total"`
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
}

// NewPage derives response pagination from a result window.
func NewPage(count, total, page, limit int) Page {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Page{Count: count, Total: total, CurrentPage: page, TotalPages: totalPages}
}
