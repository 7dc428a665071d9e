package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		line     string
		expected string
		wantOk   bool
	}{
		{
			name:     "typical pixel line",
			line:     "https://www.mysite.com/pixel.gif?o=123&v=2222&i=555",
			expected: "o=123&v=2222&i=555",
			wantOk:   true,
		},
		{
			name:     "path only line",
			line:     "/betslip_pre?o=123&v=111",
			expected: "o=123&v=111",
			wantOk:   true,
		},
		{
			name:   "no question mark",
			line:   "https://www.mysite.com/pixel.gif",
			wantOk: false,
		},
		{
			name:   "empty line",
			line:   "",
			wantOk: false,
		},
		{
			name:   "question mark as last byte",
			line:   "https://www.mysite.com/pixel.gif?",
			wantOk: false,
		},
		{
			name:     "later question marks are literal",
			line:     "/page?o=1&q=what?&v=2",
			expected: "o=1&q=what?&v=2",
			wantOk:   true,
		},
		{
			name:     "question mark as first byte",
			line:     "?o=9",
			expected: "o=9",
			wantOk:   true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			query, ok := QueryString(tt.line)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.expected, query)
		})
	}
}

func TestParamValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		query    string
		key      ParamKey
		expected string
		wantOk   bool
	}{
		{
			name:     "key in the middle",
			query:    "o=123&v=2222&i=555",
			key:      ParamVideoID,
			expected: "2222",
			wantOk:   true,
		},
		{
			name:     "key first",
			query:    "o=123&v=2222",
			key:      ParamOwner,
			expected: "123",
			wantOk:   true,
		},
		{
			name:     "key last runs to end of query",
			query:    "o=123&i=555",
			key:      ParamAdImpressionID,
			expected: "555",
			wantOk:   true,
		},
		{
			name:   "key absent",
			query:  "o=123&v=2222",
			key:    ParamAdImpressionID,
			wantOk: false,
		},
		{
			name:     "key inside a longer name still matches",
			query:    "xo=5&v=1",
			key:      ParamOwner,
			expected: "5",
			wantOk:   true,
		},
		{
			name:     "first occurrence wins",
			query:    "o=1&o=2",
			key:      ParamOwner,
			expected: "1",
			wantOk:   true,
		},
		{
			name:     "empty value before separator",
			query:    "o=&v=1",
			key:      ParamOwner,
			expected: "",
			wantOk:   true,
		},
		{
			name:     "empty value at end of query",
			query:    "v=1&o=",
			key:      ParamOwner,
			expected: "",
			wantOk:   true,
		},
		{
			name:   "key as final byte with no equals",
			query:  "v=1&o",
			key:    ParamOwner,
			wantOk: false,
		},
		{
			name:   "key alone",
			query:  "o",
			key:    ParamOwner,
			wantOk: false,
		},
		{
			name:   "empty query",
			query:  "",
			key:    ParamOwner,
			wantOk: false,
		},
		{
			name:     "value may be non numeric at this layer",
			query:    "o=abc",
			key:      ParamOwner,
			expected: "abc",
			wantOk:   true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			value, ok := ParamValue(tt.query, tt.key)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.expected, value)
		})
	}
}
