package etl

import (
	"strconv"
	"time"
)

// Kind enumerates the concrete types a cell can hold.
type Kind int

const (
	KindMissing Kind = iota
	KindText
	KindInt
	KindDecimal
	KindDate
	KindBool
)

// Value is one typed cell. The zero Value is the missing marker, which is
// distinct from empty text, zero numbers and false.
type Value struct {
	kind Kind
	s    string
	i    int64
	f    float64
	t    time.Time
	b    bool
}

// Missing is the explicit "value absent" sentinel.
var Missing = Value{}

func Text(s string) Value     { return Value{kind: KindText, s: s} }
func Int(i int64) Value       { return Value{kind: KindInt, i: i} }
func Decimal(f float64) Value { return Value{kind: KindDecimal, f: f} }
func Date(t time.Time) Value  { return Value{kind: KindDate, t: t} }
func Bool(b bool) Value       { return Value{kind: KindBool, b: b} }

func (v Value) Kind() Kind      { return v.kind }
func (v Value) IsMissing() bool { return v.kind == KindMissing }
func (v Value) Text() string    { return v.s }
func (v Value) Int() int64      { return v.i }
func (v Value) Decimal() float64 {
	if v.kind == KindInt {
		return float64(v.i)
	}
	return v.f
}
func (v Value) Date() time.Time { return v.t }
func (v Value) Bool() bool      { return v.b }

// String renders the value for hashing and logging. Missing renders as the
// empty string so synthetic keys stay stable across absent fields.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.s
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindDecimal:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case KindDate:
		return v.t.Format("2006-01-02 15:04:05")
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return ""
	}
}

// SQLValue converts the cell into a driver-compatible value.
func (v Value) SQLValue() interface{} {
	switch v.kind {
	case KindText:
		return v.s
	case KindInt:
		return v.i
	case KindDecimal:
		return v.f
	case KindDate:
		return v.t
	case KindBool:
		return v.b
	default:
		return nil
	}
}

// Row maps canonical column names to cell values.
type Row map[string]Value

func (r Row) clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Table is an ordered column list plus its rows. Stages never mutate an
// input Table; every transformation returns a new one.
type Table struct {
	Columns []string
	Rows    []Row
}

func (t Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Get returns the cell for a column, or Missing when the column is absent.
func (r Row) Get(col string) Value {
	if v, ok := r[col]; ok {
		return v
	}
	return Missing
}
