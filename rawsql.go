package repoabs

import (
	"fmt"

	"gorm.io/gorm/clause"
)

// Raw fragment builders consumed by concrete repositories. Identifiers are
// validated with the same charset guard as ordering columns; every builder
// returns an error instead of emitting a fragment with forbidden symbols.

// ColumnRef returns a qualified "table.column" reference. Always pass
// qualified references to ordering and filtering options when a query
// touches more than one table.
func ColumnRef(table, column string) (string, error) {
	err := validateColumnName(table)
	if err != nil {
		return "", fmt.Errorf("cannot build column ref: %w", err)
	}
	err = validateColumnName(column)
	if err != nil {
		return "", fmt.Errorf("cannot build column ref: %w", err)
	}

	return fmt.Sprintf("%s.%s", table, column), nil
}

// CastChar builds a "CAST(column AS CHAR(n))" fragment.
func CastChar(column string, length int) (clause.Expr, error) {
	err := validateColumnName(column)
	if err != nil {
		return clause.Expr{}, fmt.Errorf("cannot build cast: %w", err)
	}
	if length <= 0 {
		return clause.Expr{}, fmt.Errorf("cannot build cast: non-positive char length %d", length)
	}

	return clause.Expr{SQL: fmt.Sprintf("CAST(%s AS CHAR(%d))", column, length)}, nil
}

// ConcatDateTime builds a fragment combining a DATE column and a TIME column
// into one DATETIME value (MySQL TIMESTAMP(d, t)).
func ConcatDateTime(dateColumn, timeColumn string) (clause.Expr, error) {
	err := validateColumnName(dateColumn)
	if err != nil {
		return clause.Expr{}, fmt.Errorf("cannot build datetime concat: %w", err)
	}
	err = validateColumnName(timeColumn)
	if err != nil {
		return clause.Expr{}, fmt.Errorf("cannot build datetime concat: %w", err)
	}

	return clause.Expr{SQL: fmt.Sprintf("TIMESTAMP(%s, %s)", dateColumn, timeColumn)}, nil
}
