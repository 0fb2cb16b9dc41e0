package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultRegistry_Websites verifies the three production storefronts are
// registered in order and expose non-empty vocabularies.
func TestDefaultRegistry_Websites(t *testing.T) {
	reg := DefaultRegistry()

	assert.Equal(t, []string{"Ecoshift", "Disruptive", "VAH"}, reg.Websites())

	for _, site := range reg.Websites() {
		require.True(t, reg.IsRegistered(site))
		assert.NotEmpty(t, reg.BrandsFor(site), "brands for %s", site)
		assert.NotEmpty(t, reg.CategoriesFor(site), "categories for %s", site)
	}
}

// TestRegistry_UnknownWebsite verifies unknown websites degrade to empty
// vocabularies instead of failing.
func TestRegistry_UnknownWebsite(t *testing.T) {
	reg := DefaultRegistry()

	assert.False(t, reg.IsRegistered("Shopify"))
	assert.Empty(t, reg.BrandsFor("Shopify"))
	assert.Empty(t, reg.CategoriesFor("Shopify"))
}

// TestRegistry_IsValidSelection verifies selections are accepted exactly when
// every value belongs to the website's own taxonomy.
func TestRegistry_IsValidSelection(t *testing.T) {
	reg := DefaultRegistry()

	assert.True(t, reg.IsValidSelection("Ecoshift", []string{"strip light"}, []string{"Ecoshift"}))
	assert.True(t, reg.IsValidSelection("Ecoshift", nil, nil), "empty selection is always valid")

	// Values from another website's taxonomy do not validate.
	assert.False(t, reg.IsValidSelection("Ecoshift", nil, []string{"JISO"}))
	assert.False(t, reg.IsValidSelection("Disruptive", []string{"strip light"}, nil))

	// An unregistered website only validates empty selections.
	assert.True(t, reg.IsValidSelection("Shopify", nil, nil))
	assert.False(t, reg.IsValidSelection("Shopify", []string{"anything"}, nil))
}

// TestRegistry_DefaultSelection verifies switching storefronts yields the first
// brand of the new website and no categories.
func TestRegistry_DefaultSelection(t *testing.T) {
	reg := DefaultRegistry()

	brands, categories := reg.DefaultSelection("Disruptive")
	assert.Equal(t, []string{"Buildchem"}, brands)
	assert.Nil(t, categories)

	brands, categories = reg.DefaultSelection("Shopify")
	assert.Empty(t, brands)
	assert.Nil(t, categories)
}

// TestNewRegistry_CopiesInputs verifies later mutation of the constructor
// arguments cannot leak into the registry.
func TestNewRegistry_CopiesInputs(t *testing.T) {
	order := []string{"A"}
	sites := map[string]Taxonomy{
		"A": {Categories: []string{"c1"}, Brands: []string{"b1"}},
	}
	reg := NewRegistry(order, sites)

	order[0] = "mutated"
	sites["A"].Categories[0] = "mutated"
	sites["A"].Brands[0] = "mutated"

	assert.Equal(t, []string{"A"}, reg.Websites())
	assert.Equal(t, []string{"c1"}, reg.CategoriesFor("A"))
	assert.Equal(t, []string{"b1"}, reg.BrandsFor("A"))
}
