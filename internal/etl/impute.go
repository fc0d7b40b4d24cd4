package etl

// ImputePolicy is the fixed, column-class-specific missing-value policy.
// Mandatory columns are never imputed: a row missing one is dropped.
type ImputePolicy struct {
	Mandatory   []string
	ZeroDecimal []string
	ZeroInteger []string
	FalseFill   []string
}

// DefaultImputePolicy matches the unified fact-table schema: sku and
// order_date are mandatory, monetary columns zero-fill as decimals,
// quantity and stock zero-fill as integers, is_b2b defaults to false, and
// every other still-missing cell becomes the literal "Unknown".
func DefaultImputePolicy() ImputePolicy {
	return ImputePolicy{
		Mandatory:   []string{"sku", "order_date"},
		ZeroDecimal: []string{"amount", "unit_price", "total_amount"},
		ZeroInteger: []string{"quantity", "current_stock"},
		FalseFill:   []string{"is_b2b"},
	}
}

// Impute applies the policy in its fixed order: mandatory-field drops
// first, then numeric zero-fill, then boolean false-fill, and finally the
// "Unknown" fill for the remaining descriptive columns. After this stage no
// cell in the table is missing. Returns the new table and the number of
// dropped rows.
func Impute(t Table, p ImputePolicy) (Table, int) {
	cols := make([]string, len(t.Columns))
	copy(cols, t.Columns)

	zeroDec := toSet(p.ZeroDecimal)
	zeroInt := toSet(p.ZeroInteger)
	falseFill := toSet(p.FalseFill)

	rows := make([]Row, 0, len(t.Rows))
	dropped := 0
	for _, r := range t.Rows {
		if missingMandatory(r, p.Mandatory) {
			dropped++
			continue
		}
		nr := r.clone()
		for _, c := range cols {
			if !nr.Get(c).IsMissing() {
				continue
			}
			switch {
			case zeroDec[c]:
				nr[c] = Decimal(0)
			case zeroInt[c]:
				nr[c] = Int(0)
			case falseFill[c]:
				nr[c] = Bool(false)
			default:
				nr[c] = Text("Unknown")
			}
		}
		rows = append(rows, nr)
	}
	return Table{Columns: cols, Rows: rows}, dropped
}

func missingMandatory(r Row, mandatory []string) bool {
	for _, c := range mandatory {
		if r.Get(c).IsMissing() {
			return true
		}
	}
	return false
}
