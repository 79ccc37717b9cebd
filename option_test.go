package repoabs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Option_WithMethods_CopyReceiver(t *testing.T) {
	base := SelectOption{}
	derived := base.WithForUpdate().WithOrder("id", DirectionDESC)

	// Options are value objects: deriving one must not touch the original.
	if base.ForUpdate || base.OrderBy != "" || base.Order != "" {
		t.Fatal("base option mutated by With methods")
	}
	if !derived.ForUpdate || derived.OrderBy != "id" || derived.Order != DirectionDESC {
		t.Fatalf("derived option incomplete: %+v", derived)
	}
}

func Test_Option_Presets(t *testing.T) {
	_, db, dbMock, err := newGORMMySQLMock()
	require.NoError(t, err)

	dbMock.ExpectBegin()
	tx := db.Begin()
	require.NoError(t, tx.Error)

	forUpdate := SelectForUpdateIn(tx)
	if forUpdate.Tx != tx || !forUpdate.ForUpdate || forUpdate.ReadOnly {
		t.Fatalf("SelectForUpdateIn: %+v", forUpdate)
	}

	update := UpdateIn(tx)
	if update.Tx != tx || update.ReadOnly {
		t.Fatalf("UpdateIn: %+v", update)
	}

	readonly := ReadOnlySelect()
	if !readonly.ReadOnly || readonly.Tx != nil || readonly.ForUpdate {
		t.Fatalf("ReadOnlySelect: %+v", readonly)
	}
}

func Test_SelectOption_validate(t *testing.T) {
	_, db, dbMock, err := newGORMMySQLMock()
	require.NoError(t, err)

	dbMock.ExpectBegin()
	tx := db.Begin()
	require.NoError(t, tx.Error)

	tests := []struct {
		name    string
		opt     SelectOption
		wantErr bool
	}{
		{"empty option is valid", SelectOption{}, false},
		{"for update inside transaction", SelectForUpdateIn(tx), false},
		{"for update without transaction", SelectOption{ForUpdate: true}, true},
		{"for update on readonly", SelectOption{ForUpdate: true, QueryOption: QueryOption{ReadOnly: true, Tx: tx}}, true},
		{"invalid direction", SelectOption{Order: "bad"}, true},
		{"forbidden order column", SelectOption{}.WithOrder("id) --", DirectionASC), true},
		{"qualified order column", SelectOption{}.WithOrder("users.id", DirectionASC), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if gotErr := tt.opt.validate(); (gotErr != nil) != tt.wantErr {
				t.Errorf("%s: got error = %v, want error = %v", tt.name, gotErr, tt.wantErr)
			}
		})
	}
}

func Test_PaginationOption_FirstIDOrDefault(t *testing.T) {
	if got := (PaginationOption{}).FirstIDOrDefault(); got != 1 {
		t.Errorf("default sentinel: got %v want 1", got)
	}
	if got := (PaginationOption{FirstID: "00000000-0000-0000-0000-000000000000"}).FirstIDOrDefault(); got == 1 {
		t.Error("custom sentinel ignored")
	}
}
