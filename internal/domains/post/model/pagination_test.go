package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		totalCount int
		totalPages int
		hasMore    bool
	}{
		{"20 items at 9 per page", 1, 9, 20, 3, true},
		{"middle page has more", 2, 9, 20, 3, true},
		{"last page has no more", 3, 9, 20, 3, false},
		{"exact multiple", 1, 10, 20, 2, true},
		{"empty result set", 1, 9, 0, 0, false},
		{"page beyond last", 5, 9, 20, 3, false},
		{"single item", 1, 9, 1, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, err := Paginate(tt.page, tt.limit, tt.totalCount)
			require.NoError(t, err)
			assert.Equal(t, tt.page, meta.Page)
			assert.Equal(t, tt.limit, meta.Limit)
			assert.Equal(t, tt.totalCount, meta.TotalCount)
			assert.Equal(t, tt.totalPages, meta.TotalPages)
			assert.Equal(t, tt.hasMore, meta.HasMore)
		})
	}
}

func TestPaginateRejectsNonPositiveInput(t *testing.T) {
	for _, tc := range [][2]int{{0, 9}, {-1, 9}, {1, 0}, {1, -5}} {
		_, err := Paginate(tc[0], tc[1], 100)
		assert.ErrorIs(t, err, ErrInvalidPageLimit, "page=%d limit=%d", tc[0], tc[1])
	}
}

func TestPaginationOffset(t *testing.T) {
	meta, err := Paginate(3, 9, 100)
	require.NoError(t, err)
	assert.Equal(t, 18, meta.Offset())

	meta, err = Paginate(1, 9, 100)
	require.NoError(t, err)
	assert.Equal(t, 0, meta.Offset())
}
