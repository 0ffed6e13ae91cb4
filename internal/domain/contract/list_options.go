package contract

// ListOptions is the shared query shape for every list endpoint: free-text
// search, sort field/direction and pagination. Defaults are applied at the
// HTTP boundary; repositories treat the struct as already normalized.
type ListOptions struct {
	Search       string
	SortBy       string
	SortOrder    string
	Page         int
	ItemsPerPage int
}

// Skip returns the pagination offset.
func (o ListOptions) Skip() int64 {
	return int64((o.Page - 1) * o.ItemsPerPage)
}

// Limit returns the page size cap.
func (o ListOptions) Limit() int64 {
	return int64(o.ItemsPerPage)
}
