package catalog

// DefaultPageSize is the page size served to clients.
const DefaultPageSize = 20

// Page is one slice of a result set plus the total page count.
type Page struct {
	Items []Beer `json:"data"`
	Pages int    `json:"pages"`
}

// Paginate slices items into the 1-indexed page of the given size, clamped to
// bounds. Out-of-range pages yield an empty slice; Pages is always at least 1.
func Paginate(items []Beer, pageNum, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageNum < 1 {
		pageNum = 1
	}

	pages := (len(items) + pageSize - 1) / pageSize
	if pages < 1 {
		pages = 1
	}

	start := (pageNum - 1) * pageSize
	if start > len(items) {
		start = len(items)
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}

	slice := items[start:end]
	if slice == nil {
		slice = []Beer{}
	}
	return Page{Items: slice, Pages: pages}
}
