package repoabs

import (
	"fmt"

	"gorm.io/gorm"
)

// QueryOption resolves where a single query executes.
//
// Options are plain value objects: every With* method copies the receiver,
// so an option constructed for one call can never be mutated by another.
// Construct a fresh option per call site, immediately before the query.
type QueryOption struct {
	// ReadOnly routes the query to the readonly handle. Ignored when Tx is
	// set: a transaction always binds to the writable session it was opened
	// on.
	ReadOnly bool
	// Tx is an already-open transaction handle owned by the caller. This
	// package never begins, commits or rolls back a transaction.
	Tx *gorm.DB
}

func (o QueryOption) WithReadOnly() QueryOption {
	o.ReadOnly = true
	return o
}

func (o QueryOption) WithTx(tx *gorm.DB) QueryOption {
	o.Tx = tx
	return o
}

// SelectOption extends QueryOption with select shaping: row locking and
// default ordering.
type SelectOption struct {
	QueryOption

	// ForUpdate requests a SELECT ... FOR UPDATE row lock. Requires Tx:
	// locks held outside a transaction are meaningless and are treated as a
	// caller error rather than silently corrected.
	ForUpdate bool
	// Order is the sort direction for OrderBy. Empty means DirectionASC.
	Order Direction
	// OrderBy is the ordering column. Pass an already-qualified reference
	// (see ColumnRef) when the query joins more than one table.
	OrderBy string
}

func (o SelectOption) WithReadOnly() SelectOption {
	o.QueryOption = o.QueryOption.WithReadOnly()
	return o
}

func (o SelectOption) WithTx(tx *gorm.DB) SelectOption {
	o.QueryOption = o.QueryOption.WithTx(tx)
	return o
}

func (o SelectOption) WithForUpdate() SelectOption {
	o.ForUpdate = true
	return o
}

func (o SelectOption) WithOrder(column string, direction Direction) SelectOption {
	o.OrderBy = column
	o.Order = direction
	return o
}

// OrderOrDefault returns the requested direction, defaulting to ascending.
func (o SelectOption) OrderOrDefault() Direction {
	if o.Order == "" {
		return DirectionASC
	}

	return o.Order
}

func (o SelectOption) validate() error {
	if o.ForUpdate {
		if o.Tx == nil {
			return fmt.Errorf("for-update lock requires an open transaction")
		}
		if o.ReadOnly {
			return fmt.Errorf("for-update lock cannot use the readonly handle")
		}
	}

	if o.Order != "" && !o.Order.Valid() {
		return fmt.Errorf("invalid ordering direction '%s'", o.Order)
	}

	if o.OrderBy != "" {
		err := validateColumnName(o.OrderBy)
		if err != nil {
			return err
		}
	}

	return nil
}

// PaginationOption extends SelectOption with cursor paging parameters.
type PaginationOption struct {
	SelectOption

	// PageSize is the number of rows in one logical page. Values <= 0 mean
	// unbounded: no limit clause and no peek-row semantics.
	PageSize int
	// StartID is the inclusive cursor boundary: a scalar of the id column's
	// domain, a *gorm.DB subquery expression, or nil. Nil resolves to the
	// direction-specific default boundary (FirstID for ascending, the table
	// maximum for descending).
	StartID any
	// FirstID is the domain-minimum sentinel used as the ascending default
	// boundary. Nil means 1, the floor of an auto-increment integer key.
	// Override it for id columns with a different domain minimum.
	FirstID any
}

func (o PaginationOption) WithReadOnly() PaginationOption {
	o.SelectOption = o.SelectOption.WithReadOnly()
	return o
}

func (o PaginationOption) WithTx(tx *gorm.DB) PaginationOption {
	o.SelectOption = o.SelectOption.WithTx(tx)
	return o
}

func (o PaginationOption) WithForUpdate() PaginationOption {
	o.SelectOption = o.SelectOption.WithForUpdate()
	return o
}

func (o PaginationOption) WithOrder(direction Direction) PaginationOption {
	o.Order = direction
	return o
}

func (o PaginationOption) WithPageSize(pageSize int) PaginationOption {
	o.PageSize = pageSize
	return o
}

func (o PaginationOption) WithStartID(startID any) PaginationOption {
	o.StartID = startID
	return o
}

// FirstIDOrDefault returns the ascending default boundary sentinel.
func (o PaginationOption) FirstIDOrDefault() any {
	if o.FirstID == nil {
		return 1
	}

	return o.FirstID
}

func (o PaginationOption) validate() error {
	return o.SelectOption.validate()
}

// SelectForUpdateIn is a preset for a locking read inside the transaction tx.
func SelectForUpdateIn(tx *gorm.DB) SelectOption {
	return SelectOption{}.WithTx(tx).WithForUpdate()
}

// UpdateIn is a preset for a plain write inside the transaction tx.
func UpdateIn(tx *gorm.DB) QueryOption {
	return QueryOption{}.WithTx(tx)
}

// ReadOnlySelect is a preset for a read routed to the readonly handle.
func ReadOnlySelect() SelectOption {
	return SelectOption{}.WithReadOnly()
}
