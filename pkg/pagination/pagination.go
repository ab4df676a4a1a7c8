// Package pagination provides offset/limit pagination over GORM queries with
// a database-side total count.
package pagination

import (
	"context"

	"gorm.io/gorm"
)

// Params carries the page coordinates. Bounds (page >= 1, page_size within
// [1,100]) are enforced at the API boundary before a query reaches Paginate.
type Params struct {
	Page     int
	PageSize int
}

// Offset returns the row offset of the first item on the page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Result is one page of a filtered query plus the total number of rows the
// query matches before pagination.
type Result[T any] struct {
	Items    []T
	Total    int64
	Page     int
	PageSize int
}

// Paginate counts the filtered query in the database and fetches the requested
// page. The full result set is never materialized: Total comes from a COUNT
// over the pre-pagination query. Ordering declared on the query is preserved
// for the page read. An offset beyond the data yields an empty Items slice
// while Total still reflects the full filtered count.
//
// Count and page read run on fresh sessions so the two statements do not
// share builder state.
func Paginate[T any](ctx context.Context, query *gorm.DB, p Params) (*Result[T], error) {
	var total int64
	if err := query.Session(&gorm.Session{}).WithContext(ctx).Count(&total).Error; err != nil {
		return nil, err
	}

	items := make([]T, 0, p.PageSize)
	err := query.Session(&gorm.Session{}).WithContext(ctx).
		Offset(p.Offset()).
		Limit(p.PageSize).
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	return &Result[T]{
		Items:    items,
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}
