package dto

import (
	"encoding/json"
	"math"
	"time"
)

// Response wraps every single-item and message-only reply.
type Response[T any] struct {
	Success   bool      `json:"success" example:"true"`
	Message   string    `json:"message" example:"Operation completed successfully"`
	Data      T         `json:"data"`
	Errors    []string  `json:"errors,omitempty"`
	Timestamp time.Time `json:"timestamp" example:"2025-07-17T21:20:48Z"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse = Response[any]

func OK[T any](data T, message string) Response[T] {
	return Response[T]{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}
}

func Fail(message string, errs ...string) ErrorResponse {
	return ErrorResponse{
		Success:   false,
		Message:   message,
		Errors:    errs,
		Timestamp: time.Now().UTC(),
	}
}

// PagedResponse wraps one page of a listing. The derived page counters are
// computed when the response is written.
type PagedResponse[T any] struct {
	Success      bool      `json:"success" example:"true"`
	Message      string    `json:"message" example:"Records retrieved successfully"`
	Data         []T       `json:"data"`
	PageNumber   int       `json:"pageNumber" example:"1"`
	PageSize     int       `json:"pageSize" example:"10"`
	TotalRecords int64     `json:"totalRecords" example:"42"`
	Timestamp    time.Time `json:"timestamp" example:"2025-07-17T21:20:48Z"`
}

func NewPagedResponse[T any](items []T, pageNumber, pageSize int, totalRecords int64, message string) PagedResponse[T] {
	if items == nil {
		items = []T{}
	}
	return PagedResponse[T]{
		Success:      true,
		Message:      message,
		Data:         items,
		PageNumber:   pageNumber,
		PageSize:     pageSize,
		TotalRecords: totalRecords,
		Timestamp:    time.Now().UTC(),
	}
}

func (p PagedResponse[T]) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	return int(math.Ceil(float64(p.TotalRecords) / float64(p.PageSize)))
}

func (p PagedResponse[T]) HasPreviousPage() bool {
	return p.PageNumber > 1
}

func (p PagedResponse[T]) HasNextPage() bool {
	return p.PageNumber < p.TotalPages()
}

type pagedWire[T any] struct {
	Success         bool      `json:"success"`
	Message         string    `json:"message"`
	Data            []T       `json:"data"`
	PageNumber      int       `json:"pageNumber"`
	PageSize        int       `json:"pageSize"`
	TotalRecords    int64     `json:"totalRecords"`
	TotalPages      int       `json:"totalPages"`
	HasPreviousPage bool      `json:"hasPreviousPage"`
	HasNextPage     bool      `json:"hasNextPage"`
	Timestamp       time.Time `json:"timestamp"`
}

func (p PagedResponse[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(pagedWire[T]{
		Success:         p.Success,
		Message:         p.Message,
		Data:            p.Data,
		PageNumber:      p.PageNumber,
		PageSize:        p.PageSize,
		TotalRecords:    p.TotalRecords,
		TotalPages:      p.TotalPages(),
		HasPreviousPage: p.HasPreviousPage(),
		HasNextPage:     p.HasNextPage(),
		Timestamp:       p.Timestamp,
	})
}
