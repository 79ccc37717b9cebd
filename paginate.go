package repoabs

import (
	"fmt"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

// Paginate builds an ordered, bounded query over table, keyed on idColumn.
//
// The id column must be unique and totally ordered (typically the primary
// key). Duplicate values at a page boundary can skip or repeat rows; this
// is a precondition, not something Paginate guards against.
//
// The cursor boundary is inclusive. With the peek row enabled (the default)
// a page of PageSize+1 rows means a next page exists; the discarded peek
// row's id is the next StartID, which guarantees no duplicate and no gap.
//
// An absent StartID resolves per direction: ascending starts at the FirstID
// sentinel, descending starts at the table maximum, bound as a subquery of
// the same statement. On an empty table the maximum is NULL, the comparison
// with NULL matches nothing and the page is empty, not an error.
//
// The returned builder is not executed; the caller chains further selects
// and filters before running it.
func (r *Repository) Paginate(table, idColumn string, opt PaginationOption) (*gorm.DB, error) {
	err := opt.validate()
	if err != nil {
		return nil, fmt.Errorf("cannot paginate: %w", err)
	}
	err = validateColumnName(idColumn)
	if err != nil {
		return nil, fmt.Errorf("cannot paginate: %w", err)
	}

	direction := opt.OrderOrDefault()
	comparator := direction.ForComparator()

	// Pagination orders by the id column itself; the option-level OrderBy
	// must not compete with it.
	baseOpt := opt.SelectOption
	baseOpt.Order = ""
	baseOpt.OrderBy = ""

	db, err := r.BaseQuery(table, baseOpt)
	if err != nil {
		return nil, fmt.Errorf("cannot paginate: %w", err)
	}

	boundary := opt.StartID
	if boundary == nil && direction == DirectionDESC {
		boundary, err = r.MaxQuery(table, idColumn, baseOpt)
		if err != nil {
			return nil, fmt.Errorf("cannot paginate: %w", err)
		}
	}
	if boundary == nil {
		boundary = opt.FirstIDOrDefault()
	}

	switch boundary.(type) {
	case *gorm.DB:
		db = db.Where(fmt.Sprintf("%s %s (?)", idColumn, comparator), boundary)
	default:
		db = db.Where(fmt.Sprintf("%s %s ?", idColumn, comparator), boundary)
	}

	db = db.Order(fmt.Sprintf("%s %s", idColumn, direction))

	if opt.PageSize > NoPageSize {
		db = db.Limit(r.DatasetLimit(opt))
	}

	return db, nil
}

// DatasetLimit returns the row count Paginate actually requests:
// PageSize+1 with the peek row enabled, PageSize otherwise.
func (r *Repository) DatasetLimit(opt PaginationOption) int {
	return lo.Ternary(r.PeekRowEnabled(), opt.PageSize+1, opt.PageSize)
}

// HasNextPage reports whether the executed result set carries a peek row,
// i.e. whether a further page exists. Only a peek-row query can return more
// than PageSize rows, so the check needs no configuration flag.
func HasNextPage[T any](opt PaginationOption, resultSet []T) bool {
	return opt.PageSize > NoPageSize && len(resultSet) > opt.PageSize
}

// TrimPage strips the peek row from the result set, returning the rows that
// belong to the current logical page. Suppose PageSize = 2 and
// resultSet = [a, b, c]:
//
//   - with a peek row present → [a, b].
//   - without (last page) → resultSet unchanged.
func TrimPage[T any](opt PaginationOption, resultSet []T) []T {
	if HasNextPage(opt, resultSet) {
		return resultSet[:opt.PageSize]
	}

	return resultSet
}

// NextStartID returns the cursor for the next page: the id of the peek row,
// extracted via getID. The boundary comparator is inclusive, so the peek row
// reappears as the first row of the next page. Returns false when the
// current page is the last one.
func NextStartID[T any](opt PaginationOption, resultSet []T, getID func(T) any) (any, bool) {
	if !HasNextPage(opt, resultSet) {
		return nil, false
	}

	return getID(resultSet[opt.PageSize]), true
}
