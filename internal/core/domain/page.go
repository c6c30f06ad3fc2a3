package domain

import (
	"fmt"
	"math"

	"github.com/SscSPs/client_service/internal/apperrors"
)

// PageRequest selects one zero-based page of a result set.
type PageRequest struct {
	Page int
	Size int
}

// NewPageRequest validates page and size and returns a PageRequest.
func NewPageRequest(page, size int) (PageRequest, error) {
	pr := PageRequest{Page: page, Size: size}
	if err := pr.Validate(); err != nil {
		return PageRequest{}, err
	}
	return pr, nil
}

// Validate reports an apperrors.ErrValidation for a negative page or a non-positive size.
func (p PageRequest) Validate() error {
	if p.Page < 0 {
		return fmt.Errorf("%w: page index must not be less than zero, got %d", apperrors.ErrValidation, p.Page)
	}
	if p.Size < 1 {
		return fmt.Errorf("%w: page size must not be less than one, got %d", apperrors.ErrValidation, p.Size)
	}
	return nil
}

// Offset is the number of rows to skip before the page starts.
// It saturates at math.MaxInt64 so a huge page index stays past the end of any result set.
func (p PageRequest) Offset() int64 {
	if p.Page <= 0 || p.Size <= 0 {
		return 0
	}
	if int64(p.Page) > math.MaxInt64/int64(p.Size) {
		return math.MaxInt64
	}
	return int64(p.Page) * int64(p.Size)
}

// Page is a slice of a larger result set together with the size of that set.
type Page[T any] struct {
	Content       []T
	TotalElements int64
	Number        int
	Size          int
}

// NewPage builds a Page for the given request. A nil content slice becomes empty.
func NewPage[T any](content []T, total int64, req PageRequest) Page[T] {
	if content == nil {
		content = []T{}
	}
	return Page[T]{
		Content:       content,
		TotalElements: total,
		Number:        req.Page,
		Size:          req.Size,
	}
}

// TotalPages returns the number of pages needed to hold TotalElements.
func (p Page[T]) TotalPages() int {
	if p.Size <= 0 {
		return 1
	}
	return int((p.TotalElements + int64(p.Size) - 1) / int64(p.Size))
}

func (p Page[T]) IsFirst() bool { return p.Number == 0 }

func (p Page[T]) IsLast() bool { return p.Number+1 >= p.TotalPages() }

func (p Page[T]) IsEmpty() bool { return len(p.Content) == 0 }

// MapPage converts the content of a page while keeping its paging metadata.
func MapPage[T, R any](p Page[T], fn func(T) R) Page[R] {
	out := make([]R, len(p.Content))
	for i, item := range p.Content {
		out[i] = fn(item)
	}
	return Page[R]{
		Content:       out,
		TotalElements: p.TotalElements,
		Number:        p.Number,
		Size:          p.Size,
	}
}
