package repoabs

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository routes queries between a writable and a readonly handle and
// applies the common query shaping (transaction attachment, row locking,
// ordering) driven by the option model. Concrete repositories embed it and
// refine the returned builders with their own selects, joins and filters.
//
// A Repository is constructed once per connection pair and is safe for
// concurrent use: the handles are never mutated after New, and every call
// builds an independent query description.
type Repository struct {
	main     *gorm.DB
	readonly *gorm.DB

	disablePeekRow bool
}

type Option func(*Repository)

// WithReadonlyHandle supplies a handle bound to a read replica. Without it
// readonly queries fall back to the main handle.
func WithReadonlyHandle(db *gorm.DB) Option {
	return func(r *Repository) {
		r.readonly = db
	}
}

// WithoutPeekRow makes Paginate fetch exactly PageSize rows instead of
// PageSize+1. Callers lose the in-band "has next page" signal and must
// detect the end of the dataset by observing a short or empty page.
func WithoutPeekRow() Option {
	return func(r *Repository) {
		r.disablePeekRow = true
	}
}

func New(main *gorm.DB, opts ...Option) *Repository {
	r := &Repository{
		main:     main,
		readonly: main,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Handle resolves the underlying handle for one query. An open transaction
// always wins: it is bound to the writable session regardless of ReadOnly.
func (r *Repository) Handle(opt QueryOption) *gorm.DB {
	if opt.Tx != nil {
		return opt.Tx
	}
	if opt.ReadOnly {
		return r.readonly
	}

	return r.main
}

// PeekRowEnabled reports whether Paginate over-fetches one row per page.
func (r *Repository) PeekRowEnabled() bool {
	return !r.disablePeekRow
}

// BaseQuery returns a builder for table on the resolved handle with locking
// and ordering applied. The builder is not executed; the caller chains its
// own selects and filters onto it.
func (r *Repository) BaseQuery(table string, opt SelectOption) (*gorm.DB, error) {
	err := opt.validate()
	if err != nil {
		return nil, fmt.Errorf("cannot build base query: %w", err)
	}

	db := r.Handle(opt.QueryOption).Table(table)
	if opt.ForUpdate {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	if opt.OrderBy != "" {
		db = db.Order(fmt.Sprintf("%s %s", opt.OrderBy, opt.OrderOrDefault()))
	}

	return db, nil
}

// MaxQuery returns a single-row builder selecting the maximum value of
// column in table, honoring the option routing and locking. Paginate uses
// it as the descending cursor seed; repository code may also execute it
// standalone to fetch the current tail of a table.
func (r *Repository) MaxQuery(table, column string, opt SelectOption) (*gorm.DB, error) {
	err := opt.validate()
	if err != nil {
		return nil, fmt.Errorf("cannot build max query: %w", err)
	}
	err = validateColumnName(column)
	if err != nil {
		return nil, fmt.Errorf("cannot build max query: %w", err)
	}

	db := r.Handle(opt.QueryOption).
		Table(table).
		Select(fmt.Sprintf("MAX(%s)", column)).
		Limit(1)
	if opt.ForUpdate {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	return db, nil
}
