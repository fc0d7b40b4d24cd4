package etl

import (
	"database/sql"
	"fmt"
	"strings"

	"salespipe/pkg/logger"
)

// FactColumns is the destination schema of the sales fact table, in load
// order. Columns the unified table does not carry are loaded as NULL.
var FactColumns = []string{
	"order_id", "order_date", "order_status", "fulfillment_type",
	"sales_channel", "ship_service_level", "product_style", "sku",
	"product_asin", "courier_status", "quantity", "currency",
	"amount", "ship_city", "ship_state", "ship_postal_code",
	"ship_country", "promotion_ids", "is_b2b", "fulfillment_by",
	"customer_name", "unit_price", "total_amount", "design_no",
	"current_stock", "product_category", "product_size", "product_color",
	"order_year", "order_month_num", "order_day_of_week", "order_hour",
	"total_price",
}

// SQLLoader writes the unified table into the relational fact table with
// full-reload semantics: one transaction that clears prior contents and
// appends the newly computed set. Either the whole batch commits or
// nothing does.
type SQLLoader struct {
	DB    *sql.DB
	Table string
}

func (l *SQLLoader) Load(t Table) error {
	cols := loadColumns(t)
	if len(cols) == 0 {
		return fmt.Errorf("no loadable columns in unified table")
	}

	tx, err := l.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin load transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(fmt.Sprintf("DELETE FROM %s", l.Table)); err != nil {
		return fmt.Errorf("failed to clear table %s: %w", l.Table, err)
	}

	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = fmt.Sprintf("@p%d", i+1)
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		l.Table, strings.Join(cols, ", "), strings.Join(placeholders, ", "))

	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range t.Rows {
		args := make([]interface{}, len(cols))
		for j, c := range cols {
			args[j] = r.Get(c).SQLValue()
		}
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("failed to insert row %d: %w", i, err)
		}
		if (i+1)%1000 == 0 {
			logger.Infof("Loaded %d/%d rows into %s", i+1, len(t.Rows), l.Table)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit load: %w", err)
	}
	logger.Infof("Loaded %d rows into %s (full reload)", len(t.Rows), l.Table)
	return nil
}

// loadColumns keeps the fixed fact-table order, restricted to columns the
// unified table actually carries.
func loadColumns(t Table) []string {
	have := toSet(t.Columns)
	var cols []string
	for _, c := range FactColumns {
		if have[c] {
			cols = append(cols, c)
		}
	}
	return cols
}
