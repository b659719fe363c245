package spacex

import "launchdeck/internal/models"

// queryRequest is the body of a v4 /query call.
type queryRequest struct {
	Query   map[string]any `json:"query"`
	Options queryOptions   `json:"options"`
}

// queryOptions mirrors the mongoose-paginate options the API accepts.
type queryOptions struct {
	Select     []string `json:"select,omitempty"`
	Page       int      `json:"page,omitempty"`
	Limit      int      `json:"limit,omitempty"`
	Pagination bool     `json:"pagination"`
}

// page is the paginated envelope every /query endpoint returns.
type page[T any] struct {
	Docs        []T  `json:"docs"`
	TotalDocs   int  `json:"totalDocs"`
	Page        int  `json:"page"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	NextPage    *int `json:"nextPage"`
}

// dateFilter builds the date_unix constraint for a range. Absent bounds
// are omitted rather than replaced by sentinel dates; a fully unbounded
// range yields an empty query that matches the whole catalog. The end
// bound is expressed as an exclusive upper limit at the start of the
// following day, which makes the end day itself inclusive.
func dateFilter(r models.DateRange) map[string]any {
	bounds := map[string]any{}
	if r.Start != nil {
		bounds["$gte"] = r.Start.UTC().Unix()
	}
	if r.End != nil {
		bounds["$lt"] = r.End.Next().UTC().Unix()
	}

	if len(bounds) == 0 {
		return map[string]any{}
	}
	return map[string]any{"date_unix": bounds}
}
