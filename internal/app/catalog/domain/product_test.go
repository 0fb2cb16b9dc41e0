package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(t *testing.T) *Product {
	t.Helper()
	reg := DefaultRegistry()
	p, err := NewProduct(
		"prod-1", "LED Strip 5m", "SKU-001",
		1999, 1499,
		[]SpecBlock{DefaultSpecBlock("blk-1")},
		"https://img/main.png", "https://img/gallery.png",
		"Ecoshift", []string{"strip light"}, []string{"Ecoshift"},
		reg, time.Now().UTC(),
	)
	require.NoError(t, err)
	return p
}

// TestNewProduct_Validation verifies creation rejects records that violate the
// catalog invariants.
func TestNewProduct_Validation(t *testing.T) {
	reg := DefaultRegistry()
	now := time.Now().UTC()

	_, err := NewProduct("p", "   ", "", 0, 0, nil, "img", "", "Ecoshift", nil, nil, reg, now)
	assert.ErrorIs(t, err, ErrEmptyProductName)

	_, err = NewProduct("p", "Lamp", "", 0, 0, nil, "", "", "Ecoshift", nil, nil, reg, now)
	assert.ErrorIs(t, err, ErrMissingMainImage)

	_, err = NewProduct("p", "Lamp", "", -1, 0, nil, "img", "", "Ecoshift", nil, nil, reg, now)
	assert.ErrorIs(t, err, ErrNegativePrice)

	_, err = NewProduct("p", "Lamp", "", 0, 0, nil, "img", "", "Shopify", nil, nil, reg, now)
	assert.ErrorIs(t, err, ErrUnknownWebsite)

	_, err = NewProduct("p", "Lamp", "", 0, 0, nil, "img", "", "Ecoshift", nil, []string{"JISO"}, reg, now)
	assert.ErrorIs(t, err, ErrInvalidClassification)

	dup := []SpecBlock{{ID: "b", Label: "x"}, {ID: "b", Label: "y"}}
	_, err = NewProduct("p", "Lamp", "", 0, 0, dup, "img", "", "Ecoshift", nil, nil, reg, now)
	assert.ErrorIs(t, err, ErrDuplicateBlockID)
}

// TestReconstructProduct_SkipsValidation verifies stored records rebuild even
// when they predate today's invariants.
func TestReconstructProduct_SkipsValidation(t *testing.T) {
	p := ReconstructProduct("legacy", "", "", -5, 0, nil, "", "", "gone-site", nil, nil, time.Time{})
	assert.Equal(t, "legacy", p.ID())
	assert.Equal(t, "", p.Name())
	assert.Equal(t, float64(-5), p.RegularPrice())
}

// TestProduct_Clone verifies the clone is isolated: mutating it leaves the
// original untouched.
func TestProduct_Clone(t *testing.T) {
	p := testProduct(t)
	c := p.Clone()

	require.NoError(t, c.Rename("Renamed"))
	require.NoError(t, c.SetBlockValue("blk-1", "WATTS: 12"))
	c.SetSKU("SKU-999")

	assert.Equal(t, "LED Strip 5m", p.Name())
	assert.Equal(t, "SKU-001", p.SKU())
	assert.Equal(t, DefaultBlockValue, p.Blocks()[0].Value)

	assert.Equal(t, "Renamed", c.Name())
	assert.True(t, c.Changes().HasChanges())
	assert.False(t, p.Changes().HasChanges())
}

// TestProduct_ScalarMutators verifies dirty tracking and no-op detection.
func TestProduct_ScalarMutators(t *testing.T) {
	p := testProduct(t)

	// Setting the same value is a no-op.
	require.NoError(t, p.Rename("LED Strip 5m"))
	assert.False(t, p.Changes().HasChanges())

	require.NoError(t, p.Rename("  LED Strip 10m  "))
	assert.Equal(t, "LED Strip 10m", p.Name())
	assert.True(t, p.Changes().Dirty(FieldName))

	assert.ErrorIs(t, p.SetRegularPrice(-1), ErrNegativePrice)
	require.NoError(t, p.SetSalePrice(999))
	assert.True(t, p.Changes().Dirty(FieldSalePrice))

	assert.ErrorIs(t, p.SetMainImage(""), ErrMissingMainImage)
	p.SetGalleryImage("")
	assert.True(t, p.Changes().Dirty(FieldGalleryImage))
}

// TestProduct_ChangeWebsite verifies switching storefronts discards the old
// selection and applies the new website's default brand.
func TestProduct_ChangeWebsite(t *testing.T) {
	reg := DefaultRegistry()
	p := testProduct(t)

	require.NoError(t, p.ChangeWebsite(reg, "Disruptive"))
	assert.Equal(t, "Disruptive", p.Website())
	assert.Equal(t, []string{"Buildchem"}, p.Brands())
	assert.Empty(t, p.Categories())
	assert.True(t, p.Changes().Dirty(FieldWebsite))
	assert.True(t, p.Changes().Dirty(FieldBrands))
	assert.True(t, p.Changes().Dirty(FieldCategories))

	assert.ErrorIs(t, p.ChangeWebsite(reg, "Shopify"), ErrUnknownWebsite)

	// Switching to the current website is a no-op.
	q := testProduct(t)
	require.NoError(t, q.ChangeWebsite(reg, "Ecoshift"))
	assert.False(t, q.Changes().HasChanges())
	assert.Equal(t, []string{"Ecoshift"}, q.Brands())
}

// TestProduct_ToggleClassification verifies toggles add absent values and
// remove present ones, rejecting values outside the website's taxonomy.
func TestProduct_ToggleClassification(t *testing.T) {
	reg := DefaultRegistry()
	p := testProduct(t)

	require.NoError(t, p.ToggleCategory(reg, "spotlight"))
	assert.Equal(t, []string{"strip light", "spotlight"}, p.Categories())

	require.NoError(t, p.ToggleCategory(reg, "strip light"))
	assert.Equal(t, []string{"spotlight"}, p.Categories())

	assert.ErrorIs(t, p.ToggleBrand(reg, "JISO"), ErrInvalidClassification)

	require.NoError(t, p.ToggleBrand(reg, "Ecoshift"))
	assert.Empty(t, p.Brands())
}

// TestProduct_Blocks verifies append, removal and addressing by stable id.
func TestProduct_Blocks(t *testing.T) {
	p := testProduct(t)

	require.NoError(t, p.AddBlock(SpecBlock{ID: "blk-2", Label: "Dimensions"}))
	assert.ErrorIs(t, p.AddBlock(SpecBlock{ID: "blk-2"}), ErrDuplicateBlockID)
	assert.ErrorIs(t, p.AddBlock(SpecBlock{}), ErrBlockNotFound)

	require.NoError(t, p.SetBlockValue("blk-2", "H: 10cm"))
	require.NoError(t, p.SetBlockLabel("blk-2", "Size"))

	// Removing the first block leaves the second intact under its own id.
	require.NoError(t, p.RemoveBlock("blk-1"))
	blocks := p.Blocks()
	require.Len(t, blocks, 1)
	assert.Equal(t, "blk-2", blocks[0].ID)
	assert.Equal(t, "Size", blocks[0].Label)
	assert.Equal(t, "H: 10cm", blocks[0].Value)

	// Edits addressed to the removed block fail instead of landing elsewhere.
	assert.ErrorIs(t, p.SetBlockValue("blk-1", "stale"), ErrBlockNotFound)
	assert.ErrorIs(t, p.RemoveBlock("blk-1"), ErrBlockNotFound)
}
