package viewmodel

// Pagination contains pagination metadata for list views.
type Pagination struct {
	Page       int
	PageSize   int
	TotalPages int
	HasPrev    bool
	HasNext    bool
	TotalCount int
	PrevURL    string
	NextURL    string
}
