package etl

import (
	"crypto/md5"
	"encoding/hex"
	"strings"

	"salespipe/pkg/models"
)

// OrderIDColumn is the natural key column of the sales-transaction family.
const OrderIDColumn = "order_id"

// ResolveIdentifiers assigns a deterministic synthetic order_id to every
// row that lacks a natural one. The identifier is a hex digest over the
// configured, ordered field tuple; missing fields contribute an empty
// string. Identical tuples always hash to the identical identifier, so
// re-running the pipeline over the same extracts is idempotent. Rows that
// already carry a natural identifier pass through untouched.
func ResolveIdentifiers(t Table, key models.SyntheticKey) Table {
	cols := make([]string, len(t.Columns))
	copy(cols, t.Columns)
	if !t.HasColumn(OrderIDColumn) {
		cols = append(cols, OrderIDColumn)
	}

	rows := make([]Row, len(t.Rows))
	for i, r := range t.Rows {
		nr := r.clone()
		if nr.Get(OrderIDColumn).IsMissing() {
			nr[OrderIDColumn] = Text(key.Prefix + syntheticID(r, key.Fields))
		}
		rows[i] = nr
	}
	return Table{Columns: cols, Rows: rows}
}

func syntheticID(r Row, fields []string) string {
	var sb strings.Builder
	for _, f := range fields {
		sb.WriteString(r.Get(f).String())
	}
	sum := md5.Sum([]byte(sb.String()))
	return hex.EncodeToString(sum[:])
}
