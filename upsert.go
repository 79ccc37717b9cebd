package repoabs

import (
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Upsert shapes db into an insert-or-update statement: on a conflict over
// conflictColumns, the columns listed in updateColumns are overwritten with
// the incoming values. The dialector decides the concrete SQL
// (ON DUPLICATE KEY UPDATE on MySQL, ON CONFLICT ... DO UPDATE on Postgres).
//
// The builder is not executed; chain Create on it with the rows to insert.
func Upsert(db *gorm.DB, conflictColumns []string, updateColumns []string) *gorm.DB {
	return db.Clauses(clause.OnConflict{
		Columns: lo.Map(conflictColumns, func(column string, _ int) clause.Column {
			return clause.Column{Name: column}
		}),
		DoUpdates: clause.AssignmentColumns(updateColumns),
	})
}

// UpsertAll is Upsert with every non-key column overwritten on conflict.
func UpsertAll(db *gorm.DB) *gorm.DB {
	return db.Clauses(clause.OnConflict{UpdateAll: true})
}

// UpsertNothing makes a conflicting insert a no-op instead of an error.
func UpsertNothing(db *gorm.DB, conflictColumns []string) *gorm.DB {
	return db.Clauses(clause.OnConflict{
		Columns: lo.Map(conflictColumns, func(column string, _ int) clause.Column {
			return clause.Column{Name: column}
		}),
		DoNothing: true,
	})
}
