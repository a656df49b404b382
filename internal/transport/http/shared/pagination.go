package shared

import (
	"net/http"
	"strconv"
)

// Pagination is a window over a listing. Limit 0 means everything from Offset.
type Pagination struct {
	Limit  int
	Offset int
}

func ParsePagination(r *http.Request, maxLimit int) Pagination {
	limit := 0
	offset := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			offset = v
		}
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	return Pagination{Limit: limit, Offset: offset}
}

// Bounds clamps the window to a listing of n items for slicing.
func (p Pagination) Bounds(n int) (start, end int) {
	start = min(p.Offset, n)
	end = n
	if p.Limit > 0 {
		end = min(start+p.Limit, n)
	}
	return start, end
}
