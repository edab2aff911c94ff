package request

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func listContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestParseListParamsDefaults(t *testing.T) {
	c := listContext(t, "")

	p := ParseListParams(c, 20)

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.Limit)
	assert.Empty(t, p.Search)
	assert.Empty(t, p.SortBy)
	assert.Equal(t, "desc", p.SortOrder)
}

func TestParseListParamsClamping(t *testing.T) {
	cases := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"non-numeric page falls back", "page=abc&limit=10", 1, 10},
		{"zero page clamps to one", "page=0", 1, 20},
		{"negative page clamps to one", "page=-3", 1, 20},
		{"zero limit clamps to one", "limit=0", 1, 1},
		{"oversized limit clamps to max", "limit=500", 1, 100},
		{"non-numeric limit falls back", "limit=lots", 1, 20},
		{"valid values pass through", "page=3&limit=50", 3, 50},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := ParseListParams(listContext(t, tc.query), 20)
			assert.Equal(t, tc.wantPage, p.Page)
			assert.Equal(t, tc.wantLimit, p.Limit)
		})
	}
}

func TestParseListParamsSortAndSearch(t *testing.T) {
	p := ParseListParams(listContext(t, "search=+phone+&sortBy=name&sortOrder=ASC"), 20)

	assert.Equal(t, "phone", p.Search, "search is trimmed")
	assert.Equal(t, "name", p.SortBy)
	assert.Equal(t, "asc", p.SortOrder)

	p = ParseListParams(listContext(t, "sortOrder=sideways"), 20)
	assert.Equal(t, "desc", p.SortOrder, "unknown sort order falls back to desc")
}

func TestParseListParamsBadDefaultLimit(t *testing.T) {
	p := ParseListParams(listContext(t, ""), 0)
	assert.Equal(t, DefaultPageSize, p.Limit)

	p = ParseListParams(listContext(t, ""), 5000)
	assert.Equal(t, DefaultPageSize, p.Limit)
}

func TestListParamsOffset(t *testing.T) {
	p := ListParams{Page: 1, Limit: 10}
	assert.Equal(t, 0, p.Offset())

	p = ListParams{Page: 3, Limit: 25}
	assert.Equal(t, 50, p.Offset())
}
