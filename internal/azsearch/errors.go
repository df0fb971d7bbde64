package azsearch

import "fmt"

// QueryError is returned by SearchIDs when the search endpoint answers
// with a non-200 status. The raw body is kept for diagnostics.
type QueryError struct {
	StatusCode int
	Body       string
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("search failed: %d %s", e.StatusCode, e.Body)
}
