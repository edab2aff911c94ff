package listing

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoplane/admin-backend/internal/pkg/request"
)

var productsBuilder = Builder{
	Table:        "public.products",
	Columns:      []string{"id", "name", "price"},
	SearchFields: []string{"name", "description"},
	Sortable:     []string{"name", "price", "created_at"},
	DefaultSort:  "created_at",
}

func TestSelectSearchDisjunction(t *testing.T) {
	p := request.ListParams{Page: 1, Limit: 20, Search: "phone", SortOrder: "desc"}

	sql, args, err := productsBuilder.Select(p, nil)
	require.NoError(t, err)

	assert.Contains(t, sql, "name ILIKE $1 OR description ILIKE $2")
	assert.Contains(t, args, "%phone%")
	assert.Contains(t, sql, "ORDER BY created_at DESC")
	assert.Contains(t, sql, "LIMIT 20")
	assert.Contains(t, sql, "OFFSET 0")
}

func TestSelectAndCountShareThePredicate(t *testing.T) {
	p := request.ListParams{Page: 2, Limit: 5, Search: "lamp", SortOrder: "asc"}
	filters := squirrel.Eq{"status": "active"}

	selectSQL, selectArgs, err := productsBuilder.Select(p, filters)
	require.NoError(t, err)

	countSQL, countArgs, err := productsBuilder.Count(p, filters)
	require.NoError(t, err)

	// The count query carries the same search and filter arguments so the
	// reported total always matches the slice it paginates.
	assert.Equal(t, selectArgs[:len(countArgs)], countArgs)
	assert.Contains(t, countSQL, "ILIKE")
	assert.Contains(t, countSQL, "status")
	assert.Contains(t, countSQL, "COUNT(*)")
	assert.NotContains(t, countSQL, "ORDER BY")
	assert.NotContains(t, countSQL, "LIMIT")

	assert.Contains(t, selectSQL, "OFFSET 5")
}

func TestOrderClauseWhitelist(t *testing.T) {
	cases := []struct {
		name      string
		sortBy    string
		sortOrder string
		want      string
	}{
		{"known column asc", "price", "asc", "ORDER BY price ASC"},
		{"known column desc", "name", "desc", "ORDER BY name DESC"},
		{"unknown column falls back", "password_hash", "asc", "ORDER BY created_at ASC"},
		{"empty falls back desc", "", "", "ORDER BY created_at DESC"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := request.ListParams{Page: 1, Limit: 10, SortBy: tc.sortBy, SortOrder: tc.sortOrder}
			sql, _, err := productsBuilder.Select(p, nil)
			require.NoError(t, err)
			assert.Contains(t, sql, tc.want)
		})
	}
}

func TestSelectWithoutSearchHasNoWhere(t *testing.T) {
	p := request.ListParams{Page: 1, Limit: 10}

	sql, args, err := productsBuilder.Select(p, nil)
	require.NoError(t, err)

	assert.NotContains(t, sql, "WHERE")
	assert.Empty(t, args)
}

func TestFiltersOnly(t *testing.T) {
	p := request.ListParams{Page: 1, Limit: 10}

	sql, args, err := productsBuilder.Select(p, squirrel.Eq{"category_id": "c-1"})
	require.NoError(t, err)

	assert.Contains(t, sql, "category_id")
	assert.Equal(t, []any{"c-1"}, args)
}
