package dto

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams controls result ordering. Sort columns are set by services, never
// taken from request input.
type QueryParams struct {
	SortBy  string
	SortDir string
}
