package requests

// QueryParams collects the list-endpoint query string knobs.
type QueryParams struct {
	Page           int
	PageSize       int
	Search         string
	Specialization string
	Day            string
	Status         string
	Role           string
}

func (q *QueryParams) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 || q.PageSize > 100 {
		q.PageSize = 10
	}
}
