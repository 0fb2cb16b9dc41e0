package domain

import (
	"strings"
	"time"
)

// Field constants for change tracking
const (
	FieldName         = "name"
	FieldSKU          = "sku"
	FieldRegularPrice = "regularPrice"
	FieldSalePrice    = "salePrice"
	FieldBlocks       = "descriptionBlocks"
	FieldMainImage    = "mainImage"
	FieldGalleryImage = "galleryImage"
	FieldCategories   = "categories"
	FieldBrands       = "brands"
	FieldWebsite      = "website"
)

// Product is the aggregate root of the catalog. A product belongs to exactly
// one storefront website and its category/brand selections are constrained to
// that website's taxonomy. Records are created by the publish pipeline,
// mutated only through an edit draft, and deleted irreversibly.
type Product struct {
	id           string
	name         string
	sku          string
	regularPrice float64
	salePrice    float64
	blocks       []SpecBlock
	mainImage    string
	galleryImage string
	categories   []string
	brands       []string
	website      string
	createdAt    time.Time
	changes      *ChangeTracker
}

// NewProduct creates a validated Product ready to be written to the store.
// The main image reference must already be resolved (upload completed): a
// record never exists with a pending image. createdAt carries the local
// time only as a placeholder; the store assigns the authoritative timestamp.
func NewProduct(
	id, name, sku string,
	regularPrice, salePrice float64,
	blocks []SpecBlock,
	mainImage, galleryImage string,
	website string, categories, brands []string,
	reg *Registry,
	now time.Time,
) (*Product, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if mainImage == "" {
		return nil, ErrMissingMainImage
	}
	if regularPrice < 0 || salePrice < 0 {
		return nil, ErrNegativePrice
	}
	if !reg.IsRegistered(website) {
		return nil, ErrUnknownWebsite
	}
	if !reg.IsValidSelection(website, categories, brands) {
		return nil, ErrInvalidClassification
	}
	if err := validateBlocks(blocks); err != nil {
		return nil, err
	}

	return &Product{
		id:           id,
		name:         strings.TrimSpace(name),
		sku:          strings.TrimSpace(sku),
		regularPrice: regularPrice,
		salePrice:    salePrice,
		blocks:       cloneBlocks(blocks),
		mainImage:    mainImage,
		galleryImage: galleryImage,
		categories:   append([]string(nil), categories...),
		brands:       append([]string(nil), brands...),
		website:      website,
		createdAt:    now,
		changes:      NewChangeTracker(),
	}, nil
}

// ReconstructProduct rebuilds a Product from a stored document without
// re-running creation validation. The store is schema-less and older records
// may predate today's invariants; the feed must still materialize them.
func ReconstructProduct(
	id, name, sku string,
	regularPrice, salePrice float64,
	blocks []SpecBlock,
	mainImage, galleryImage string,
	website string, categories, brands []string,
	createdAt time.Time,
) *Product {
	return &Product{
		id:           id,
		name:         name,
		sku:          sku,
		regularPrice: regularPrice,
		salePrice:    salePrice,
		blocks:       cloneBlocks(blocks),
		mainImage:    mainImage,
		galleryImage: galleryImage,
		categories:   append([]string(nil), categories...),
		brands:       append([]string(nil), brands...),
		website:      website,
		createdAt:    createdAt,
		changes:      NewChangeTracker(),
	}
}

// Getters

func (p *Product) ID() string {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) SKU() string {
	return p.sku
}

func (p *Product) RegularPrice() float64 {
	return p.regularPrice
}

func (p *Product) SalePrice() float64 {
	return p.salePrice
}

// Blocks returns a copy of the ordered specification blocks.
func (p *Product) Blocks() []SpecBlock {
	return cloneBlocks(p.blocks)
}

func (p *Product) MainImage() string {
	return p.mainImage
}

func (p *Product) GalleryImage() string {
	return p.galleryImage
}

func (p *Product) Categories() []string {
	return append([]string(nil), p.categories...)
}

func (p *Product) Brands() []string {
	return append([]string(nil), p.brands...)
}

func (p *Product) Website() string {
	return p.website
}

func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Product) Changes() *ChangeTracker {
	return p.changes
}

// RecordID implements feed ordering identity.
func (p *Product) RecordID() string {
	return p.id
}

// OrderedAt implements the feed order key.
func (p *Product) OrderedAt() time.Time {
	return p.createdAt
}

// Clone returns a deep copy with a fresh ChangeTracker. Drafts are opened on
// clones so the live feed can keep replacing the underlying collection without
// ever touching an open draft.
func (p *Product) Clone() *Product {
	return &Product{
		id:           p.id,
		name:         p.name,
		sku:          p.sku,
		regularPrice: p.regularPrice,
		salePrice:    p.salePrice,
		blocks:       cloneBlocks(p.blocks),
		mainImage:    p.mainImage,
		galleryImage: p.galleryImage,
		categories:   append([]string(nil), p.categories...),
		brands:       append([]string(nil), p.brands...),
		website:      p.website,
		createdAt:    p.createdAt,
		changes:      NewChangeTracker(),
	}
}

// Scalar mutators. All are local and synchronous; they validate, apply and
// mark the field dirty.

func (p *Product) Rename(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	trimmed := strings.TrimSpace(name)
	if trimmed != p.name {
		p.name = trimmed
		p.changes.MarkDirty(FieldName)
	}
	return nil
}

func (p *Product) SetSKU(sku string) {
	trimmed := strings.TrimSpace(sku)
	if trimmed != p.sku {
		p.sku = trimmed
		p.changes.MarkDirty(FieldSKU)
	}
}

func (p *Product) SetRegularPrice(price float64) error {
	if price < 0 {
		return ErrNegativePrice
	}
	if price != p.regularPrice {
		p.regularPrice = price
		p.changes.MarkDirty(FieldRegularPrice)
	}
	return nil
}

func (p *Product) SetSalePrice(price float64) error {
	if price < 0 {
		return ErrNegativePrice
	}
	if price != p.salePrice {
		p.salePrice = price
		p.changes.MarkDirty(FieldSalePrice)
	}
	return nil
}

func (p *Product) SetMainImage(url string) error {
	if url == "" {
		return ErrMissingMainImage
	}
	if url != p.mainImage {
		p.mainImage = url
		p.changes.MarkDirty(FieldMainImage)
	}
	return nil
}

func (p *Product) SetGalleryImage(url string) {
	if url != p.galleryImage {
		p.galleryImage = url
		p.changes.MarkDirty(FieldGalleryImage)
	}
}

// Classification

// ChangeWebsite moves the product to another storefront. Brand and category
// identifiers are not comparable across taxonomies, so the previous selection
// is discarded: brands reset to the single first brand of the new website's
// list and categories are cleared.
func (p *Product) ChangeWebsite(reg *Registry, website string) error {
	if !reg.IsRegistered(website) {
		return ErrUnknownWebsite
	}
	if website == p.website {
		return nil
	}
	brands, categories := reg.DefaultSelection(website)
	p.website = website
	p.brands = brands
	p.categories = categories
	p.changes.MarkDirty(FieldWebsite)
	p.changes.MarkDirty(FieldBrands)
	p.changes.MarkDirty(FieldCategories)
	return nil
}

// SetCategories replaces the category selection, validated against the owning
// website's taxonomy.
func (p *Product) SetCategories(reg *Registry, categories []string) error {
	if !reg.IsValidSelection(p.website, categories, nil) {
		return ErrInvalidClassification
	}
	p.categories = append([]string(nil), categories...)
	p.changes.MarkDirty(FieldCategories)
	return nil
}

// SetBrands replaces the brand selection, validated against the owning
// website's taxonomy.
func (p *Product) SetBrands(reg *Registry, brands []string) error {
	if !reg.IsValidSelection(p.website, nil, brands) {
		return ErrInvalidClassification
	}
	p.brands = append([]string(nil), brands...)
	p.changes.MarkDirty(FieldBrands)
	return nil
}

// ToggleCategory adds or removes one category from the selection.
func (p *Product) ToggleCategory(reg *Registry, category string) error {
	if !reg.IsValidSelection(p.website, []string{category}, nil) {
		return ErrInvalidClassification
	}
	p.categories = toggleValue(p.categories, category)
	p.changes.MarkDirty(FieldCategories)
	return nil
}

// ToggleBrand adds or removes one brand from the selection.
func (p *Product) ToggleBrand(reg *Registry, brand string) error {
	if !reg.IsValidSelection(p.website, nil, []string{brand}) {
		return ErrInvalidClassification
	}
	p.brands = toggleValue(p.brands, brand)
	p.changes.MarkDirty(FieldBrands)
	return nil
}

// Specification blocks

// AddBlock appends a block. The identifier must be fresh: identifiers of
// removed blocks are never reissued.
func (p *Product) AddBlock(block SpecBlock) error {
	if block.ID == "" {
		return ErrBlockNotFound
	}
	for _, b := range p.blocks {
		if b.ID == block.ID {
			return ErrDuplicateBlockID
		}
	}
	p.blocks = append(p.blocks, block)
	p.changes.MarkDirty(FieldBlocks)
	return nil
}

// RemoveBlock deletes the block with the given identifier. Remaining blocks
// keep their identifiers and order.
func (p *Product) RemoveBlock(id string) error {
	for i, b := range p.blocks {
		if b.ID == id {
			p.blocks = append(p.blocks[:i], p.blocks[i+1:]...)
			p.changes.MarkDirty(FieldBlocks)
			return nil
		}
	}
	return ErrBlockNotFound
}

// SetBlockValue replaces the multi-line text of the block with the given id.
func (p *Product) SetBlockValue(id, value string) error {
	for i, b := range p.blocks {
		if b.ID == id {
			if p.blocks[i].Value != value {
				p.blocks[i].Value = value
				p.changes.MarkDirty(FieldBlocks)
			}
			return nil
		}
	}
	return ErrBlockNotFound
}

// SetBlockLabel replaces the label of the block with the given id.
func (p *Product) SetBlockLabel(id, label string) error {
	for i, b := range p.blocks {
		if b.ID == id {
			if p.blocks[i].Label != label {
				p.blocks[i].Label = label
				p.changes.MarkDirty(FieldBlocks)
			}
			return nil
		}
	}
	return ErrBlockNotFound
}

// Validation helpers

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyProductName
	}
	return nil
}

func validateBlocks(blocks []SpecBlock) error {
	seen := make(map[string]struct{}, len(blocks))
	for _, b := range blocks {
		if b.ID == "" {
			return ErrBlockNotFound
		}
		if _, ok := seen[b.ID]; ok {
			return ErrDuplicateBlockID
		}
		seen[b.ID] = struct{}{}
	}
	return nil
}

func toggleValue(values []string, v string) []string {
	for i, cur := range values {
		if cur == v {
			return append(values[:i], values[i+1:]...)
		}
	}
	return append(values, v)
}
