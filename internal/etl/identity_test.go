package etl

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salespipe/pkg/models"
)

var testKey = models.SyntheticKey{
	Prefix: "INT_",
	Fields: []string{"customer_name", "order_date", "product_style", "sku", "quantity", "unit_price", "total_amount"},
}

func intlRow(customer, sku string, qty int64) Row {
	return Row{
		"customer_name": Text(customer),
		"order_date":    Date(time.Date(2022, 6, 5, 0, 0, 0, 0, time.UTC)),
		"product_style": Text("JNE3797"),
		"sku":           Text(sku),
		"quantity":      Int(qty),
		"unit_price":    Decimal(616),
		"total_amount":  Decimal(1232),
	}
}

func TestResolveIdentifiersDeterministic(t *testing.T) {
	in := Table{
		Columns: []string{"customer_name", "order_date", "product_style", "sku", "quantity", "unit_price", "total_amount"},
		Rows:    []Row{intlRow("MULBERRIES", "JNE3797-G-XL", 2)},
	}

	first := ResolveIdentifiers(in, testKey)
	second := ResolveIdentifiers(in, testKey)

	id1 := first.Rows[0].Get(OrderIDColumn).Text()
	id2 := second.Rows[0].Get(OrderIDColumn).Text()
	require.NotEmpty(t, id1)
	assert.Equal(t, id1, id2)
	assert.True(t, strings.HasPrefix(id1, "INT_"))
	// 128-bit digest rendered as hex after the prefix.
	assert.Len(t, strings.TrimPrefix(id1, "INT_"), 32)
}

func TestResolveIdentifiersStableAndSensitive(t *testing.T) {
	cols := []string{"customer_name", "order_date", "product_style", "sku", "quantity", "unit_price", "total_amount"}
	in := Table{
		Columns: cols,
		Rows: []Row{
			intlRow("MULBERRIES", "JNE3797-G-XL", 2),
			intlRow("MULBERRIES", "JNE3797-G-XL", 2),
			intlRow("MULBERRIES", "JNE3797-G-XL", 3),
			intlRow("AMANI", "JNE3797-G-XL", 2),
		},
	}

	got := ResolveIdentifiers(in, testKey)

	ids := make([]string, len(got.Rows))
	for i, r := range got.Rows {
		ids[i] = r.Get(OrderIDColumn).Text()
	}
	// Identical tuples share the identifier; changing any field changes it.
	assert.Equal(t, ids[0], ids[1])
	assert.NotEqual(t, ids[0], ids[2])
	assert.NotEqual(t, ids[0], ids[3])
}

func TestResolveIdentifiersBypassesNaturalIDs(t *testing.T) {
	in := Table{
		Columns: []string{OrderIDColumn, "sku"},
		Rows: []Row{
			{OrderIDColumn: Text("405-8078784-5731545"), "sku": Text("SET389-KR-NP-S")},
			{"sku": Text("JNE3797-G-XL")},
		},
	}

	got := ResolveIdentifiers(in, testKey)

	assert.Equal(t, "405-8078784-5731545", got.Rows[0].Get(OrderIDColumn).Text())
	assert.True(t, strings.HasPrefix(got.Rows[1].Get(OrderIDColumn).Text(), "INT_"))
}

func TestResolveIdentifiersMissingFieldsHashAsEmpty(t *testing.T) {
	in := Table{
		Columns: []string{"sku"},
		Rows: []Row{
			{"sku": Text("JNE3797-G-XL")},
		},
	}

	got := ResolveIdentifiers(in, testKey)

	// Missing tuple fields contribute "" and still yield a stable id.
	assert.True(t, got.HasColumn(OrderIDColumn))
	id := got.Rows[0].Get(OrderIDColumn).Text()
	again := ResolveIdentifiers(in, testKey).Rows[0].Get(OrderIDColumn).Text()
	assert.Equal(t, id, again)
}
