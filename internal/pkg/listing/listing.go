// Package listing translates pagination, search and sort parameters into
// store queries. The page-slice query and the count query are always built
// from the same predicate so the reported page count stays consistent with
// the returned slice.
package listing

import (
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/shoplane/admin-backend/internal/pkg/request"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Builder describes how a table is listed: which columns come back, which
// fields the free-text search scans, and which sort fields are allowed.
type Builder struct {
	Table        string
	Columns      []string
	SearchFields []string
	Sortable     []string
	DefaultSort  string // column used when no (or an unknown) sortBy is given
}

// Select builds the page-slice query: filter + search predicate, ordering,
// limit and offset.
func (b Builder) Select(p request.ListParams, filters squirrel.Eq) (string, []any, error) {
	q := psql.Select(b.Columns...).From(b.Table)
	q = b.applyPredicate(q, p, filters)

	q = q.OrderBy(b.orderClause(p)).
		Limit(uint64(p.Limit)).
		Offset(uint64(p.Offset()))

	sql, args, err := q.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("build select for %s: %w", b.Table, err)
	}
	return sql, args, nil
}

// Count builds the total-count query under the same predicate as Select,
// without ordering or a page window.
func (b Builder) Count(p request.ListParams, filters squirrel.Eq) (string, []any, error) {
	q := psql.Select("COUNT(*)").From(b.Table)
	q = b.applyPredicate(q, p, filters)

	sql, args, err := q.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("build count for %s: %w", b.Table, err)
	}
	return sql, args, nil
}

func (b Builder) applyPredicate(q squirrel.SelectBuilder, p request.ListParams, filters squirrel.Eq) squirrel.SelectBuilder {
	if p.Search != "" && len(b.SearchFields) > 0 {
		pattern := "%" + p.Search + "%"
		or := make(squirrel.Or, 0, len(b.SearchFields))
		for _, f := range b.SearchFields {
			or = append(or, squirrel.ILike{f: pattern})
		}
		q = q.Where(or)
	}

	if len(filters) > 0 {
		q = q.Where(filters)
	}

	return q
}

func (b Builder) orderClause(p request.ListParams) string {
	col := b.DefaultSort
	if col == "" {
		col = "created_at"
	}
	for _, s := range b.Sortable {
		if p.SortBy == s {
			col = s
			break
		}
	}

	dir := "DESC"
	if strings.EqualFold(p.SortOrder, "asc") {
		dir = "ASC"
	}

	return col + " " + dir
}
