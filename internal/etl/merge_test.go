package etl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcatUnionsColumns(t *testing.T) {
	amazon := Table{
		Columns: []string{"order_id", "sku", "amount"},
		Rows: []Row{
			{"order_id": Text("B01-1"), "sku": Text("X1"), "amount": Decimal(100)},
		},
	}
	international := Table{
		Columns: []string{"sku", "customer_name", "total_amount"},
		Rows: []Row{
			{"sku": Text("X2"), "customer_name": Text("AMANI"), "total_amount": Decimal(50)},
		},
	}

	got := Concat(amazon, international)

	assert.Equal(t, []string{"order_id", "sku", "amount", "customer_name", "total_amount"}, got.Columns)
	require.Len(t, got.Rows, 2)
	// Columns one source never had stay missing, not an error.
	assert.True(t, got.Rows[0].Get("customer_name").IsMissing())
	assert.True(t, got.Rows[1].Get("amount").IsMissing())
	assert.Equal(t, "AMANI", got.Rows[1].Get("customer_name").Text())
}

func TestDeduplicateKeepsFirstOccurrence(t *testing.T) {
	master := Table{
		Columns: []string{"sku", "product_category"},
		Rows: []Row{
			{"sku": Text("X1"), "product_category": Text("Kurta")},
			{"sku": Text("X1"), "product_category": Text("Western Dress")},
			{"sku": Text("X2"), "product_category": Text("Top")},
			{"product_category": Text("orphan")},
		},
	}

	got := Deduplicate(master, "sku")

	require.Len(t, got.Rows, 2)
	assert.Equal(t, "Kurta", got.Rows[0].Get("product_category").Text())
	assert.Equal(t, "X2", got.Rows[1].Get("sku").Text())
}

func TestLeftJoinConservesRowsAndEnriches(t *testing.T) {
	tx := Table{
		Columns: []string{"order_id", "sku"},
		Rows: []Row{
			{"order_id": Text("B01-1"), "sku": Text("X1")},
			{"order_id": Text("B01-2"), "sku": Text("NOPE")},
			{"order_id": Text("B01-3")},
		},
	}
	ref := Table{
		Columns: []string{"sku", "current_stock", "product_color"},
		Rows: []Row{
			{"sku": Text("X1"), "current_stock": Int(12), "product_color": Text("Red")},
		},
	}

	got := LeftJoin(tx, ref, "sku")

	// Left join never changes the transaction row count.
	require.Len(t, got.Rows, len(tx.Rows))
	assert.Equal(t, int64(12), got.Rows[0].Get("current_stock").Int())
	assert.Equal(t, "Red", got.Rows[0].Get("product_color").Text())
	// Unmatched rows receive missing markers for reference-only columns.
	assert.True(t, got.Rows[1].Get("current_stock").IsMissing())
	assert.True(t, got.Rows[2].Get("product_color").IsMissing())
}

func TestLeftJoinHarmonizesSharedColumns(t *testing.T) {
	tx := Table{
		Columns: []string{"sku", "product_category"},
		Rows: []Row{
			{"sku": Text("X1"), "product_category": Text("from-sales")},
			{"sku": Text("X2"), "product_category": Text("from-sales")},
			{"sku": Text("X3"), "product_category": Text("from-sales")},
		},
	}
	ref := Table{
		Columns: []string{"sku", "product_category"},
		Rows: []Row{
			{"sku": Text("X1"), "product_category": Text("from-master")},
			{"sku": Text("X2")},
		},
	}

	got := LeftJoin(tx, ref, "sku")

	// Exactly one copy of the shared column survives.
	assert.Equal(t, []string{"sku", "product_category"}, got.Columns)
	// Master value wins when populated.
	assert.Equal(t, "from-master", got.Rows[0].Get("product_category").Text())
	// Master value missing: transaction value is kept.
	assert.Equal(t, "from-sales", got.Rows[1].Get("product_category").Text())
	// No match at all: transaction value is kept.
	assert.Equal(t, "from-sales", got.Rows[2].Get("product_category").Text())
}
