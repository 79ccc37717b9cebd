package repoabs

import "fmt"

// Comparator defines the boundary comparison operator for cursor filtering.
// Both comparators are inclusive: the row sitting exactly on the cursor
// boundary is returned as the first row of the page. Callers advance the
// cursor using the peek row, so inclusivity never produces duplicates as
// long as the id column is unique.
type Comparator string

func (c Comparator) Valid() bool {
	return c == ComparatorGTE || c == ComparatorLTE
}

func (c Comparator) ForOrdering() Direction {
	switch c {
	case ComparatorGTE:
		return DirectionASC
	case ComparatorLTE:
		return DirectionDESC
	default:
		panic(fmt.Errorf("cannot map comparator '%s' to ordering", c))
	}
}

const (
	ComparatorGTE Comparator = ">="
	ComparatorLTE Comparator = "<="
)
