package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPagedResponse_Counters(t *testing.T) {
	tests := []struct {
		name         string
		page, size   int
		total        int64
		wantPages    int
		wantPrevious bool
		wantNext     bool
	}{
		{name: "second of two pages", page: 2, size: 10, total: 15, wantPages: 2, wantPrevious: true},
		{name: "first of two pages", page: 1, size: 10, total: 15, wantPages: 2, wantNext: true},
		{name: "exact multiple", page: 2, size: 5, total: 15, wantPages: 3, wantPrevious: true, wantNext: true},
		{name: "empty result", page: 1, size: 10, total: 0, wantPages: 0},
		{name: "past the end", page: 4, size: 10, total: 15, wantPages: 2, wantPrevious: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagedResponse([]int{}, tt.page, tt.size, tt.total, "ok")

			assert.Equal(t, tt.wantPages, p.TotalPages())
			assert.Equal(t, tt.wantPrevious, p.HasPreviousPage())
			assert.Equal(t, tt.wantNext, p.HasNextPage())
		})
	}
}

func TestPagedResponse_MarshalUsesCamelCaseAndDerivedFields(t *testing.T) {
	p := NewPagedResponse([]string{"a", "b", "c", "d", "e"}, 2, 10, 15, "Customers retrieved")

	raw, err := json.Marshal(p)
	require.NoError(t, err)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(raw, &wire))
	assert.Equal(t, true, wire["success"])
	assert.Equal(t, "Customers retrieved", wire["message"])
	assert.Len(t, wire["data"], 5)
	assert.EqualValues(t, 2, wire["pageNumber"])
	assert.EqualValues(t, 10, wire["pageSize"])
	assert.EqualValues(t, 15, wire["totalRecords"])
	assert.EqualValues(t, 2, wire["totalPages"])
	assert.Equal(t, true, wire["hasPreviousPage"])
	assert.Equal(t, false, wire["hasNextPage"])
	assert.Contains(t, wire, "timestamp")
}

func TestPagedResponse_NilItemsMarshalAsEmptyArray(t *testing.T) {
	raw, err := json.Marshal(NewPagedResponse[int](nil, 1, 10, 0, "none"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"data":[]`)
}

func TestResponse_ErrorsOmittedWhenEmpty(t *testing.T) {
	raw, err := json.Marshal(OK(map[string]string{"id": "1"}, "done"))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "errors")

	raw, err = json.Marshal(Fail("Validation failed", "name is required"))
	require.NoError(t, err)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(raw, &wire))
	assert.Equal(t, false, wire["success"])
	assert.Equal(t, []any{"name is required"}, wire["errors"])
	assert.Nil(t, wire["data"])
}
