package dto

// PageMeta accompanies every list payload.
type PageMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

func NewPageMeta(page, limit int, total int64) PageMeta {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return PageMeta{Page: page, Limit: limit, Total: total, TotalPages: pages}
}
