package dto

import (
	"fmt"
	"strconv"

	"github.com/kingrain94/saas-platform-api/internal/domain"
)

const (
	DefaultPageNumber = 1
	DefaultPageSize   = 10
	MaxPageSize       = 100
)

// PagingLimits bounds the page parameters accepted from callers.
type PagingLimits struct {
	DefaultPageSize int
	MaxPageSize     int
}

func DefaultPagingLimits() PagingLimits {
	return PagingLimits{DefaultPageSize: DefaultPageSize, MaxPageSize: MaxPageSize}
}

// Parse reads raw pageNumber and pageSize query values. Empty values take the
// defaults; anything out of range is a validation error.
func (l PagingLimits) Parse(pageNumber, pageSize string) (domain.PageRequest, error) {
	page := domain.PageRequest{PageNumber: DefaultPageNumber, PageSize: l.DefaultPageSize}
	var messages []string

	if pageNumber != "" {
		n, err := strconv.Atoi(pageNumber)
		if err != nil || n < 1 {
			messages = append(messages, "pageNumber must be a positive integer")
		} else {
			page.PageNumber = n
		}
	}

	if pageSize != "" {
		n, err := strconv.Atoi(pageSize)
		if err != nil || n < 1 || n > l.MaxPageSize {
			messages = append(messages, fmt.Sprintf("pageSize must be between 1 and %d", l.MaxPageSize))
		} else {
			page.PageSize = n
		}
	}

	if len(messages) > 0 {
		return domain.PageRequest{}, NewValidationError(messages...)
	}
	return page, nil
}
