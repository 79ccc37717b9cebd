package repoabs

// Package repoabs provides a typed repository base and cursor pagination
// primitives for GORM.
//
// Overview
//
// repoabs routes every query between a writable and a readonly handle,
// attaches caller-owned transactions, and builds bounded keyset pages:
//   - Repository: resolves the handle per QueryOption and shapes base
//     queries (transaction scope, FOR UPDATE locking, ordering).
//   - Paginate: inclusive-boundary cursor pagination over a unique id
//     column, with an optional peek row for next-page detection.
//   - Option model: immutable QueryOption / SelectOption / PaginationOption
//     value objects constructed per call.
//
// Around the core, the package ships the raw fragments repositories keep
// reaching for: qualified column refs, CHAR casts, DATE+TIME concatenation,
// binary UUID conversion, upsert shaping, token-pattern date parsing and
// typed not-found errors.
//
// repoabs never executes a query and never owns a transaction: builders are
// returned unexecuted and failures of the underlying driver are surfaced to
// the caller unchanged.
//
// See README for examples and usage details.
