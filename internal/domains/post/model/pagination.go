package model

// PaginationMeta is the pagination block returned alongside list results.
type PaginationMeta struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	TotalCount int  `json:"totalCount"`
	TotalPages int  `json:"totalPages"`
	HasMore    bool `json:"hasMore"`
}

// Paginate computes pagination metadata. Page and limit must already be
// positive; defaulting is the caller's job. A page beyond the last is
// not an error, it just yields an empty slice with HasMore=false.
func Paginate(page, limit, totalCount int) (*PaginationMeta, error) {
	if page < 1 || limit < 1 {
		return nil, ErrInvalidPageLimit
	}

	totalPages := (totalCount + limit - 1) / limit

	return &PaginationMeta{
		Page:       page,
		Limit:      limit,
		TotalCount: totalCount,
		TotalPages: totalPages,
		HasMore:    page < totalPages,
	}, nil
}

// Offset is the number of rows to skip for this page.
func (m *PaginationMeta) Offset() int {
	return (m.Page - 1) * m.Limit
}
