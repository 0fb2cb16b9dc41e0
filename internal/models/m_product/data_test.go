package m_product

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskflow/catalog-backoffice/internal/app/catalog/contracts"
	"github.com/taskflow/catalog-backoffice/internal/app/catalog/domain"
)

// TestDecode_FullDocument verifies a well-formed document round-trips into the
// aggregate.
func TestDecode_FullDocument(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	doc := contracts.Document{
		ID: "prod-1",
		Data: map[string]interface{}{
			ColName:         "LED Strip 5m",
			ColSKU:          "SKU-001",
			ColRegularPrice: 1999.0,
			ColSalePrice:    int64(1499),
			ColDescriptionBlocks: []interface{}{
				map[string]interface{}{
					BlockColID:    "blk-1",
					BlockColType:  BlockTypeText,
					BlockColLabel: "Technical Specifications",
					BlockColValue: "WATTS: 12",
				},
			},
			ColMainImage:  "https://img/main.png",
			ColCategories: []interface{}{"strip light"},
			ColBrands:     []interface{}{"Ecoshift"},
			ColWebsite:    "Ecoshift",
			ColCreatedAt:  created,
		},
	}

	p, err := Decode(doc)
	require.NoError(t, err)

	assert.Equal(t, "prod-1", p.ID())
	assert.Equal(t, "LED Strip 5m", p.Name())
	assert.Equal(t, 1999.0, p.RegularPrice())
	assert.Equal(t, 1499.0, p.SalePrice())
	assert.Equal(t, []string{"strip light"}, p.Categories())
	assert.Equal(t, created, p.CreatedAt())

	blocks := p.Blocks()
	require.Len(t, blocks, 1)
	assert.Equal(t, "blk-1", blocks[0].ID)
	assert.Equal(t, "WATTS: 12", blocks[0].Value)
}

// TestDecode_SparseDocument verifies absent fields map to zero values instead
// of failing.
func TestDecode_SparseDocument(t *testing.T) {
	p, err := Decode(contracts.Document{ID: "legacy", Data: map[string]interface{}{}})
	require.NoError(t, err)

	assert.Equal(t, "legacy", p.ID())
	assert.Empty(t, p.Name())
	assert.Zero(t, p.RegularPrice())
	assert.Empty(t, p.Blocks())
	assert.Empty(t, p.Brands())
	assert.True(t, p.CreatedAt().IsZero())
}

// TestDecode_EmptyDocument verifies a document with no data is rejected.
func TestDecode_EmptyDocument(t *testing.T) {
	_, err := Decode(contracts.Document{ID: "broken"})
	require.Error(t, err)
}

// TestDecode_SingleStringClassification verifies brands/categories written as
// a bare string by earlier tool versions decode as a one-element list.
func TestDecode_SingleStringClassification(t *testing.T) {
	p, err := Decode(contracts.Document{
		ID: "legacy",
		Data: map[string]interface{}{
			ColBrands:     "Ecoshift",
			ColCategories: "",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Ecoshift"}, p.Brands())
	assert.Empty(t, p.Categories())
}

// TestDecode_NumericBlockIDs verifies legacy epoch-millisecond block ids
// decode to their decimal string form.
func TestDecode_NumericBlockIDs(t *testing.T) {
	p, err := Decode(contracts.Document{
		ID: "legacy",
		Data: map[string]interface{}{
			ColDescriptionBlocks: []interface{}{
				map[string]interface{}{BlockColID: int64(1717243200000), BlockColLabel: "A"},
				map[string]interface{}{BlockColID: 1717243200001.0, BlockColLabel: "B"},
			},
		},
	})
	require.NoError(t, err)

	blocks := p.Blocks()
	require.Len(t, blocks, 2)
	assert.Equal(t, "1717243200000", blocks[0].ID)
	assert.Equal(t, "1717243200001", blocks[1].ID)
}

// TestBuildCreateMap verifies the create document carries the server timestamp
// sentinel and no identifier.
func TestBuildCreateMap(t *testing.T) {
	p := testAggregate(t)

	data := BuildCreateMap(p)
	assert.Equal(t, contracts.ServerTimestamp, data[ColCreatedAt])
	assert.Equal(t, "LED Strip 5m", data[ColName])
	_, hasID := data["id"]
	assert.False(t, hasID)

	blocks, ok := data[ColDescriptionBlocks].([]interface{})
	require.True(t, ok)
	blk := blocks[0].(map[string]interface{})
	assert.Equal(t, BlockTypeText, blk[BlockColType])
}

// TestBuildMergeMap verifies the merge document carries the local createdAt
// unchanged and no identifier.
func TestBuildMergeMap(t *testing.T) {
	p := testAggregate(t)

	data := BuildMergeMap(p)
	assert.Equal(t, p.CreatedAt(), data[ColCreatedAt])
	_, hasID := data["id"]
	assert.False(t, hasID)
	assert.Len(t, data, 11)
}

func testAggregate(t *testing.T) *domain.Product {
	t.Helper()
	reg := domain.DefaultRegistry()
	p, err := domain.NewProduct(
		"prod-1", "LED Strip 5m", "SKU-001",
		1999, 1499,
		[]domain.SpecBlock{domain.DefaultSpecBlock("blk-1")},
		"https://img/main.png", "",
		"Ecoshift", []string{"strip light"}, []string{"Ecoshift"},
		reg, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return p
}
