package etl

// Concat stacks same-family tables row-wise. The output column set is the
// union of the inputs' columns in first-seen order; cells for columns a
// source never had stay missing, which is the expected consequence of
// combining heterogeneously shaped extracts.
func Concat(tables ...Table) Table {
	var cols []string
	seen := make(map[string]bool)
	total := 0
	for _, t := range tables {
		for _, c := range t.Columns {
			if !seen[c] {
				seen[c] = true
				cols = append(cols, c)
			}
		}
		total += len(t.Rows)
	}

	rows := make([]Row, 0, total)
	for _, t := range tables {
		for _, r := range t.Rows {
			rows = append(rows, r.clone())
		}
	}
	return Table{Columns: cols, Rows: rows}
}

// Deduplicate collapses the reference table to one row per distinct key,
// keeping the first occurrence by original row order. Rows whose key is
// missing cannot serve as reference entries and are discarded.
func Deduplicate(t Table, key string) Table {
	cols := make([]string, len(t.Columns))
	copy(cols, t.Columns)

	seen := make(map[string]bool)
	var rows []Row
	for _, r := range t.Rows {
		k := r.Get(key)
		if k.IsMissing() {
			continue
		}
		if seen[k.String()] {
			continue
		}
		seen[k.String()] = true
		rows = append(rows, r.clone())
	}
	return Table{Columns: cols, Rows: rows}
}

// LeftJoin enriches every transaction row with the reference row matching
// its key. Transaction rows are always retained; unmatched rows get the
// missing marker for reference-only columns. When both sides carry the
// same column, the output keeps a single copy, preferring the reference
// value when it is populated and falling back to the transaction value.
// The reference side must already be deduplicated, so the join conserves
// the transaction row count.
func LeftJoin(tx Table, ref Table, key string) Table {
	txCols := toSet(tx.Columns)

	index := make(map[string]Row, len(ref.Rows))
	for _, r := range ref.Rows {
		k := r.Get(key)
		if k.IsMissing() {
			continue
		}
		if _, ok := index[k.String()]; !ok {
			index[k.String()] = r
		}
	}

	cols := make([]string, len(tx.Columns))
	copy(cols, tx.Columns)
	var refOnly []string
	for _, c := range ref.Columns {
		if c != key && !txCols[c] {
			refOnly = append(refOnly, c)
			cols = append(cols, c)
		}
	}

	rows := make([]Row, len(tx.Rows))
	for i, r := range tx.Rows {
		nr := r.clone()
		match, found := index[r.Get(key).String()]
		if r.Get(key).IsMissing() {
			found = false
		}
		for _, c := range ref.Columns {
			if c == key {
				continue
			}
			if !found {
				if !txCols[c] {
					nr[c] = Missing
				}
				continue
			}
			refVal := match.Get(c)
			if txCols[c] {
				// Shared column: master wins when populated.
				if !refVal.IsMissing() {
					nr[c] = refVal
				}
			} else {
				nr[c] = refVal
			}
		}
		rows[i] = nr
	}
	return Table{Columns: cols, Rows: rows}
}
