package entity

// Page selects a window of a listing. Page numbers start at 1.
type Page struct {
	Number int
	Size   int
}

// Normalize clamps the page into [1, ..] and the size into [1, maxSize],
// falling back to defaultSize when unset.
func (p Page) Normalize(defaultSize, maxSize int) Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Size < 1 {
		p.Size = defaultSize
	}
	if maxSize > 0 && p.Size > maxSize {
		p.Size = maxSize
	}

	return p
}

// Offset returns the number of rows to skip.
func (p Page) Offset() int {
	if p.Number < 1 {
		return 0
	}

	return (p.Number - 1) * p.Size
}

// PagedResult is a page of items together with the total row count.
type PagedResult[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// NewPagedResult builds a PagedResult for the given page and total.
func NewPagedResult[T any](items []T, page Page, total int64) *PagedResult[T] {
	if items == nil {
		items = []T{}
	}

	totalPages := 0
	if page.Size > 0 {
		totalPages = int((total + int64(page.Size) - 1) / int64(page.Size))
	}

	return &PagedResult[T]{
		Items:      items,
		Page:       page.Number,
		PageSize:   page.Size,
		Total:      total,
		TotalPages: totalPages,
	}
}
