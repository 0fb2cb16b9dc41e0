package domain

// Taxonomy is the vocabulary of one storefront website: the category and
// brand values a product on that website may select. Order is display order.
type Taxonomy struct {
	Categories []string
	Brands     []string
}

// Registry is an immutable lookup from website identifier to its Taxonomy.
// It is constructed once at startup and shared by reference; there is no
// runtime mutation. Unknown websites degrade to empty vocabularies rather
// than failing, so callers render "no options" instead of erroring.
type Registry struct {
	sites map[string]Taxonomy
	order []string
}

// NewRegistry builds a Registry from website identifiers in the given order.
// Slices are copied so later mutation of the inputs cannot leak in.
func NewRegistry(order []string, sites map[string]Taxonomy) *Registry {
	r := &Registry{
		sites: make(map[string]Taxonomy, len(sites)),
		order: append([]string(nil), order...),
	}
	for site, tx := range sites {
		r.sites[site] = Taxonomy{
			Categories: append([]string(nil), tx.Categories...),
			Brands:     append([]string(nil), tx.Brands...),
		}
	}
	return r
}

// DefaultRegistry returns the production storefront taxonomies.
func DefaultRegistry() *Registry {
	return NewRegistry(
		[]string{"Ecoshift", "Disruptive", "VAH"},
		map[string]Taxonomy{
			"Ecoshift": {
				Brands: []string{"Ecoshift"},
				Categories: []string{
					"weatherproof fixture",
					"wall lamp",
					"uv disinfection light",
					"tube light",
					"track light",
					"swimming pool light",
					"strip light",
					"streetlight",
					"spotlight",
					"solar street light",
				},
			},
			"Disruptive": {
				Brands: []string{"Buildchem", "JISO", "LIT", "ZUMTOBEL", "LUXIONA"},
				Categories: []string{
					"Uncategorized",
					"JISO - Bollard Light",
					"LIT - LED Batten",
					"LUXIONA - Wall Light",
				},
			},
			"VAH": {
				Brands: []string{
					"buildchem",
					"oko",
					"progressive dynamics inc.",
					"progressive materials solutions inc.",
				},
				Categories: []string{
					"Superplasticizers & High-Range Water Reducers",
					"Set Retarders & Accelerators",
					"Underwater Concrete Solutions",
					"Waterproofing Solutions",
					"Soil Stabilization & Road Foundation",
					"Mould Release Agents",
					"Corrosion Protection Solutions",
					"Curing Compounds",
					"Cement Processing & Grinding Aids",
					"Cleaning & Surface Preparation Chemicals",
				},
			},
		},
	)
}

// Websites lists registered website identifiers in registration order.
func (r *Registry) Websites() []string {
	return append([]string(nil), r.order...)
}

// IsRegistered reports whether the website identifier is known.
func (r *Registry) IsRegistered(website string) bool {
	_, ok := r.sites[website]
	return ok
}

// CategoriesFor returns the ordered category list for a website.
// Unknown websites yield an empty list.
func (r *Registry) CategoriesFor(website string) []string {
	return append([]string(nil), r.sites[website].Categories...)
}

// BrandsFor returns the ordered brand list for a website.
// Unknown websites yield an empty list.
func (r *Registry) BrandsFor(website string) []string {
	return append([]string(nil), r.sites[website].Brands...)
}

// IsValidSelection reports whether every selected category and brand belongs
// to the website's taxonomy. An unregistered website only validates empty
// selections.
func (r *Registry) IsValidSelection(website string, categories, brands []string) bool {
	tx := r.sites[website]
	return isSubset(categories, tx.Categories) && isSubset(brands, tx.Brands)
}

// DefaultSelection returns the selection applied when a draft switches to the
// given website: the single first brand of the new website's list and no
// categories. Brand and category identifiers are not comparable across
// taxonomies, so the previous selection is never carried over. Unknown
// websites yield empty brands.
func (r *Registry) DefaultSelection(website string) (brands, categories []string) {
	tx := r.sites[website]
	if len(tx.Brands) > 0 {
		brands = []string{tx.Brands[0]}
	}
	return brands, nil
}

func isSubset(selection, allowed []string) bool {
	if len(selection) == 0 {
		return true
	}
	set := make(map[string]struct{}, len(allowed))
	for _, v := range allowed {
		set[v] = struct{}{}
	}
	for _, v := range selection {
		if _, ok := set[v]; !ok {
			return false
		}
	}
	return true
}
