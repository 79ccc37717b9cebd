package repoabs

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

// Binary UUID codec mirroring MySQL UUID_TO_BIN/BIN_TO_UUID. With swap
// enabled the time-low and time-high fields trade places, so that
// sequentially generated version-1 ids sort by creation time and cluster
// well in a BINARY(16) primary key index.

// UUIDToBin converts a UUID to its 16-byte binary form.
func UUIDToBin(u uuid.UUID, swap bool) []byte {
	ret := make([]byte, 16)
	if !swap {
		copy(ret, u[:])
		return ret
	}

	copy(ret[0:2], u[6:8])  // time_hi_and_version
	copy(ret[2:4], u[4:6])  // time_mid
	copy(ret[4:8], u[0:4])  // time_low
	copy(ret[8:16], u[8:16])

	return ret
}

// BinToUUID converts a 16-byte binary value back to a UUID, undoing the
// time-field swap when swap is true.
func BinToUUID(b []byte, swap bool) (uuid.UUID, error) {
	if len(b) != 16 {
		return uuid.Nil, fmt.Errorf("invalid binary uuid length %d", len(b))
	}

	var ret uuid.UUID
	if !swap {
		copy(ret[:], b)
		return ret, nil
	}

	copy(ret[6:8], b[0:2])
	copy(ret[4:6], b[2:4])
	copy(ret[0:4], b[4:8])
	copy(ret[8:16], b[8:16])

	return ret, nil
}

// UUIDToBinExpr builds a "UUID_TO_BIN(?, ?)" fragment for MySQL, converting
// the textual uuid server-side.
func UUIDToBinExpr(u uuid.UUID, swap bool) clause.Expr {
	return clause.Expr{
		SQL:  "UUID_TO_BIN(?, ?)",
		Vars: []any{u.String(), boolToSwapFlag(swap)},
	}
}

// BinToUUIDExpr builds a "BIN_TO_UUID(column, ?)" fragment for MySQL,
// rendering a binary column as its textual uuid.
func BinToUUIDExpr(column string, swap bool) (clause.Expr, error) {
	err := validateColumnName(column)
	if err != nil {
		return clause.Expr{}, fmt.Errorf("cannot build bin_to_uuid: %w", err)
	}

	return clause.Expr{
		SQL:  fmt.Sprintf("BIN_TO_UUID(%s, ?)", column),
		Vars: []any{boolToSwapFlag(swap)},
	}, nil
}

func boolToSwapFlag(swap bool) int {
	if swap {
		return 1
	}

	return 0
}
