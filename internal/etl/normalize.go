package etl

import (
	"strings"

	"salespipe/pkg/models"
	"salespipe/pkg/utils"
)

// Normalize applies one source's schema configuration to a raw table:
// header trimming, irrelevant-column pruning, renaming to canonical names,
// then type coercion. Parse failures become the missing marker; they are
// handled downstream by the missing-value policy, never raised here.
func Normalize(t Table, spec models.SourceSpec) Table {
	trimmed := trimHeaders(t)
	dropped := dropColumns(trimmed, spec.DropColumns)
	renamed := renameColumns(dropped, spec.Rename)
	return coerceTypes(renamed, spec)
}

func trimHeaders(t Table) Table {
	cols := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = strings.TrimSpace(c)
	}
	rows := make([]Row, len(t.Rows))
	for i, r := range t.Rows {
		nr := make(Row, len(r))
		for k, v := range r {
			nr[strings.TrimSpace(k)] = v
		}
		rows[i] = nr
	}
	return Table{Columns: cols, Rows: rows}
}

// dropColumns removes the named columns. Dropping a column that does not
// exist is a no-op.
func dropColumns(t Table, drop []string) Table {
	if len(drop) == 0 {
		return t
	}
	dropSet := make(map[string]bool, len(drop))
	for _, c := range drop {
		dropSet[c] = true
	}

	var cols []string
	for _, c := range t.Columns {
		if !dropSet[c] {
			cols = append(cols, c)
		}
	}
	rows := make([]Row, len(t.Rows))
	for i, r := range t.Rows {
		nr := make(Row, len(cols))
		for k, v := range r {
			if !dropSet[k] {
				nr[k] = v
			}
		}
		rows[i] = nr
	}
	return Table{Columns: cols, Rows: rows}
}

func renameColumns(t Table, rename map[string]string) Table {
	if len(rename) == 0 {
		return t
	}
	canonical := func(name string) string {
		if to, ok := rename[name]; ok {
			return to
		}
		return name
	}

	cols := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = canonical(c)
	}
	rows := make([]Row, len(t.Rows))
	for i, r := range t.Rows {
		nr := make(Row, len(r))
		for k, v := range r {
			nr[canonical(k)] = v
		}
		rows[i] = nr
	}
	return Table{Columns: cols, Rows: rows}
}

// coerceTypes converts raw text cells into typed values. Integer columns
// are never left missing: unparseable or absent values become 0, because
// quantities and stock levels are whole numbers in the output schema.
func coerceTypes(t Table, spec models.SourceSpec) Table {
	dateCols := spec.DateColumns
	decimalCols := toSet(spec.DecimalColumns)
	intCols := toSet(spec.IntegerColumns)
	textCols := toSet(spec.TextColumns)
	boolCols := toSet(spec.BoolColumns)

	rows := make([]Row, len(t.Rows))
	for i, r := range t.Rows {
		nr := r.clone()
		for col, v := range r {
			if layout, ok := dateCols[col]; ok {
				nr[col] = coerceDate(v, layout)
				continue
			}
			switch {
			case decimalCols[col]:
				nr[col] = coerceDecimal(v)
			case intCols[col]:
				nr[col] = coerceInt(v)
			case textCols[col]:
				nr[col] = coerceText(v)
			case boolCols[col]:
				nr[col] = coerceBool(v)
			}
		}
		// Absent integer cells still coerce to 0.
		for col := range intCols {
			if _, ok := nr[col]; !ok && t.HasColumn(col) {
				nr[col] = Int(0)
			}
		}
		rows[i] = nr
	}

	cols := make([]string, len(t.Columns))
	copy(cols, t.Columns)
	return Table{Columns: cols, Rows: rows}
}

func coerceDate(v Value, layout string) Value {
	if v.IsMissing() {
		return Missing
	}
	t, ok := utils.ParseDate(v.String(), layout)
	if !ok {
		return Missing
	}
	return Date(t)
}

func coerceDecimal(v Value) Value {
	if v.IsMissing() {
		return Missing
	}
	f, ok := utils.ParseDecimal(v.String())
	if !ok {
		return Missing
	}
	return Decimal(f)
}

func coerceInt(v Value) Value {
	if v.IsMissing() {
		return Int(0)
	}
	n, ok := utils.ParseInt(v.String())
	if !ok {
		return Int(0)
	}
	return Int(n)
}

// coerceText keeps identifier-like values (postal codes) as text so
// formatting such as leading zeros survives.
func coerceText(v Value) Value {
	if v.IsMissing() {
		return Missing
	}
	return Text(strings.TrimSpace(v.String()))
}

func coerceBool(v Value) Value {
	if v.IsMissing() {
		return Missing
	}
	b, ok := utils.ParseBool(v.String())
	if !ok {
		return Missing
	}
	return Bool(b)
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
