package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginatedRequest_Normalize(t *testing.T) {
	p := PaginatedRequest{}
	p.Normalize()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPerPage, p.PerPage)

	p = PaginatedRequest{Page: 3, PerPage: 500}
	p.Normalize()
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, MaxPerPage, p.PerPage)
}

func TestPaginatedRequest_OffsetAndLimit(t *testing.T) {
	p := PaginatedRequest{Page: 3, PerPage: 20}
	assert.Equal(t, 40, p.Offset())
	assert.Equal(t, 20, p.Limit())

	p = PaginatedRequest{Page: 2, PerPage: 1000}
	assert.Equal(t, 100, p.Offset())
	assert.Equal(t, 100, p.Limit())

	p = PaginatedRequest{}
	assert.Equal(t, 0, p.Offset())
	assert.Equal(t, DefaultPerPage, p.Limit())
}
