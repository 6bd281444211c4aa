package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRegistryLookup(t *testing.T) {
	reg, err := NewRegistry([]StockItem{
		{SKU: 670, Description: "Apples", UnitPrice: 194},
		{SKU: 1234, Description: "Sherry", UnitPrice: 1010},
	})
	require.NoError(t, err)
	require.Equal(t, 2, reg.Len())

	item, ok := reg.Item(670)
	require.True(t, ok)
	require.Equal(t, "Apples", item.Description)

	_, ok = reg.Item(9999)
	require.False(t, ok)

	fallback := reg.ItemOrUnknown(9999)
	require.True(t, fallback.Unknown())
	require.Equal(t, UnknownDescription, fallback.Description)
	require.EqualValues(t, 0, fallback.UnitPrice)
}

func TestNewRegistryRejectsDuplicates(t *testing.T) {
	_, err := NewRegistry([]StockItem{
		{SKU: 670, Description: "Apples", UnitPrice: 194},
		{SKU: 670, Description: "Apples again", UnitPrice: 200},
	})
	require.Error(t, err)
}

func TestNewRegistryValidatesItems(t *testing.T) {
	_, err := NewRegistry([]StockItem{{SKU: 670, Description: "", UnitPrice: 194}})
	require.Error(t, err)

	_, err = NewRegistry([]StockItem{{SKU: 670, Description: "Apples", UnitPrice: -1}})
	require.Error(t, err)
}

func TestItemsPreservesLoadOrder(t *testing.T) {
	reg, err := NewRegistry([]StockItem{
		{SKU: 1234, Description: "Sherry", UnitPrice: 1010},
		{SKU: 670, Description: "Apples", UnitPrice: 194},
	})
	require.NoError(t, err)

	items := reg.Items()
	require.Len(t, items, 2)
	require.EqualValues(t, 1234, items[0].SKU)
	require.EqualValues(t, 670, items[1].SKU)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	doc := `{"items":[{"sku":670,"description":"Apples","unitPrice":194}]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	reg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, reg.Len())

	item, ok := reg.Item(670)
	require.True(t, ok)
	require.Equal(t, "Apples", item.Description)
	require.EqualValues(t, 194, item.UnitPrice)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
