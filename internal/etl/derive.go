package etl

import (
	"strings"

	"salespipe/pkg/logger"
)

// Sales channel values.
const (
	ChannelAmazon    = "Amazon.in"
	ChannelNonAmazon = "Non-Amazon"
	ChannelUnknown   = "Unknown"
)

type channelRule struct {
	match   func(orderID string) bool
	channel string
}

// channelRules is evaluated in order, first match wins. Classification
// depends only on the order_id prefix, so it must run after identifier
// resolution.
var channelRules = []channelRule{
	{
		match:   func(id string) bool { return strings.HasPrefix(id, "B") },
		channel: ChannelAmazon,
	},
	{
		match: func(id string) bool {
			return strings.HasPrefix(id, "S") || strings.HasPrefix(id, "D")
		},
		channel: ChannelNonAmazon,
	},
}

// ClassifyChannel maps an order identifier to its sales channel.
func ClassifyChannel(orderID string) string {
	for _, rule := range channelRules {
		if rule.match(orderID) {
			return rule.channel
		}
	}
	return ChannelUnknown
}

// Derive computes the channel, the unified revenue and the time features
// for every row. It runs last, after imputation, so all inputs are
// concrete typed values.
func Derive(t Table) Table {
	cols := make([]string, len(t.Columns))
	copy(cols, t.Columns)
	for _, c := range []string{"sales_channel", "total_price", "order_year", "order_month_num", "order_day_of_week", "order_hour"} {
		if !t.HasColumn(c) {
			cols = append(cols, c)
		}
	}

	rows := make([]Row, len(t.Rows))
	zeroPriced := 0
	for i, r := range t.Rows {
		nr := r.clone()
		nr["sales_channel"] = Text(ClassifyChannel(r.Get(OrderIDColumn).Text()))
		nr["total_price"] = Decimal(derivePrice(r))
		deriveTimeFeatures(nr)
		if nr["total_price"].Decimal() == 0 && r.Get("quantity").Int() > 0 {
			zeroPriced++
		}
		rows[i] = nr
	}
	if zeroPriced > 0 {
		logger.Warnf("Found %d orders with quantity but zero price", zeroPriced)
	}
	return Table{Columns: cols, Rows: rows}
}

// derivePrice is the priority-ordered revenue fallback. Each branch
// requires strict positivity: a present-but-zero amount falls through to
// the next source of truth.
func derivePrice(r Row) float64 {
	if amount := r.Get("amount").Decimal(); amount > 0 {
		return amount
	}
	if total := r.Get("total_amount").Decimal(); total > 0 {
		return total
	}
	return float64(r.Get("quantity").Int()) * r.Get("unit_price").Decimal()
}

// deriveTimeFeatures recomputes the time attributes from order_date. They
// are never supplied independently; day-of-week is Monday-based (0..6).
func deriveTimeFeatures(r Row) {
	d := r.Get("order_date").Date()
	r["order_year"] = Int(int64(d.Year()))
	r["order_month_num"] = Int(int64(d.Month()))
	r["order_day_of_week"] = Int(int64((int(d.Weekday()) + 6) % 7))
	r["order_hour"] = Int(int64(d.Hour()))
}
