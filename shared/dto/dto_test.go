package dto_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"roam/shared/constant"
	"roam/shared/dto"
	"roam/shared/model"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "creator@example.com",
		ModifiedBy: "modifier@example.com",
	})

	assert.Equal(t, createdAt.Format(constant.DateFormat), metadata.CreatedAt)
	assert.Equal(t, modifiedAt.Format(constant.DateFormat), metadata.ModifiedAt)
	assert.Equal(t, "creator@example.com", metadata.CreatedBy)
	assert.Equal(t, "modifier@example.com", metadata.ModifiedBy)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		query          url.Values
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "all valid parameters",
			query: url.Values{
				"page":     {"2"},
				"limit":    {"20"},
				"keyword":  {"villa"},
				"sort_by":  {"name"},
				"sort_dir": {"desc"},
			},
			expected: dto.QueryParams{Page: 2, Limit: 20, Keyword: "villa", SortBy: "name", SortDir: "DESC"},
		},
		{
			name:           "defaults applied when requested",
			query:          url.Values{},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "no defaults without the flag",
			query:    url.Values{},
			expected: dto.QueryParams{},
		},
		{
			name: "invalid numbers are ignored",
			query: url.Values{
				"page":  {"abc"},
				"limit": {"-5"},
			},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name: "invalid sort direction is dropped",
			query: url.Values{
				"sort_dir": {"sideways"},
			},
			expected: dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &http.Request{URL: &url.URL{RawQuery: tt.query.Encode()}}

			params := dto.QueryParams{}
			params.FromRequest(r, tt.defaultRequest)

			assert.Equal(t, tt.expected, params)
		})
	}
}
