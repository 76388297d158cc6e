package fedsearch

// Pagination is the page metadata block of every search response. Counts
// always describe the merged, deduplicated, ranked list, never a single
// source's contribution.
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	TotalCount int  `json:"totalCount"`
	TotalPages int  `json:"totalPages"`
	HasMore    bool `json:"hasMore"`
}

// Paginate slices the final list and computes page metadata. The slice is
// clamped to the list bounds: a page past the end yields an empty list
// with HasMore=false, never an out-of-range fault.
func Paginate[T any](items []T, page, limit int) ([]T, Pagination) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	total := len(items)
	totalPages := (total + limit - 1) / limit

	p := Pagination{
		Page:       page,
		Limit:      limit,
		TotalCount: total,
		TotalPages: totalPages,
		HasMore:    page < totalPages,
	}

	offset := (page - 1) * limit
	if offset >= total {
		return []T{}, p
	}
	end := offset + limit
	if end > total {
		end = total
	}

	out := make([]T, end-offset)
	copy(out, items[offset:end])
	return out, p
}
