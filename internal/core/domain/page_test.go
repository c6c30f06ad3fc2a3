package domain_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/SscSPs/client_service/internal/apperrors"
	"github.com/SscSPs/client_service/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPageRequest(t *testing.T) {
	pr, err := domain.NewPageRequest(2, 6)
	require.NoError(t, err)
	assert.Equal(t, int64(12), pr.Offset())

	_, err = domain.NewPageRequest(-1, 6)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = domain.NewPageRequest(0, 0)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestPageMetadata(t *testing.T) {
	tests := []struct {
		name      string
		content   []int
		total     int64
		req       domain.PageRequest
		pages     int
		first     bool
		last      bool
		wantEmpty bool
	}{
		{name: "first of two", content: []int{1, 2, 3, 4, 5, 6}, total: 7, req: domain.PageRequest{Page: 0, Size: 6}, pages: 2, first: true, last: false},
		{name: "single partial page", content: []int{1, 2, 3, 4, 5}, total: 5, req: domain.PageRequest{Page: 0, Size: 6}, pages: 1, first: true, last: true},
		{name: "out of range", content: nil, total: 5, req: domain.PageRequest{Page: 3, Size: 6}, pages: 1, first: false, last: true, wantEmpty: true},
		{name: "no matches", content: nil, total: 0, req: domain.PageRequest{Page: 0, Size: 6}, pages: 0, first: true, last: true, wantEmpty: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := domain.NewPage(tt.content, tt.total, tt.req)
			assert.NotNil(t, p.Content)
			assert.Equal(t, tt.pages, p.TotalPages())
			assert.Equal(t, tt.first, p.IsFirst())
			assert.Equal(t, tt.last, p.IsLast())
			assert.Equal(t, tt.wantEmpty, p.IsEmpty())
		})
	}
}

func TestMapPageKeepsMetadata(t *testing.T) {
	p := domain.NewPage([]int{1, 2}, 9, domain.PageRequest{Page: 1, Size: 2})

	mapped := domain.MapPage(p, strconv.Itoa)

	assert.Equal(t, []string{"1", "2"}, mapped.Content)
	assert.Equal(t, int64(9), mapped.TotalElements)
	assert.Equal(t, 1, mapped.Number)
	assert.Equal(t, 2, mapped.Size)
	assert.Equal(t, 5, mapped.TotalPages())
}

func TestOffsetSaturates(t *testing.T) {
	pr := domain.PageRequest{Page: math.MaxInt64/2 + 1, Size: 2}
	assert.Equal(t, int64(math.MaxInt64), pr.Offset())

	pr = domain.PageRequest{Page: math.MaxInt64, Size: math.MaxInt64}
	assert.Equal(t, int64(math.MaxInt64), pr.Offset())
}
