package application

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// normalizePaging clamps caller-supplied paging to the fixed default and cap.
// Out-of-range values fall back instead of failing, matching how filter
// parameters are treated.
func normalizePaging(page, pageSize int) (limit, offset int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return pageSize, (page - 1) * pageSize
}
