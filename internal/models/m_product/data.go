package m_product

import (
	"fmt"
	"time"

	"github.com/taskflow/catalog-backoffice/internal/app/catalog/contracts"
	"github.com/taskflow/catalog-backoffice/internal/app/catalog/domain"
)

// BuildCreateMap prepares the document written by the publish pipeline.
// createdAt is the ServerTimestamp sentinel: the store assigns the
// authoritative monotonic timestamp at write time.
func BuildCreateMap(p *domain.Product) map[string]interface{} {
	return map[string]interface{}{
		ColName:              p.Name(),
		ColSKU:               p.SKU(),
		ColRegularPrice:      p.RegularPrice(),
		ColSalePrice:         p.SalePrice(),
		ColDescriptionBlocks: encodeBlocks(p.Blocks()),
		ColMainImage:         p.MainImage(),
		ColGalleryImage:      p.GalleryImage(),
		ColCategories:        p.Categories(),
		ColBrands:            p.Brands(),
		ColWebsite:           p.Website(),
		ColCreatedAt:         contracts.ServerTimestamp,
	}
}

// BuildMergeMap prepares the whole-document merge written when a draft
// commits: every field of the draft, minus the identifier (the merge is keyed
// by it). createdAt is carried through unchanged.
func BuildMergeMap(p *domain.Product) map[string]interface{} {
	return map[string]interface{}{
		ColName:              p.Name(),
		ColSKU:               p.SKU(),
		ColRegularPrice:      p.RegularPrice(),
		ColSalePrice:         p.SalePrice(),
		ColDescriptionBlocks: encodeBlocks(p.Blocks()),
		ColMainImage:         p.MainImage(),
		ColGalleryImage:      p.GalleryImage(),
		ColCategories:        p.Categories(),
		ColBrands:            p.Brands(),
		ColWebsite:           p.Website(),
		ColCreatedAt:         p.CreatedAt(),
	}
}

func encodeBlocks(blocks []domain.SpecBlock) []interface{} {
	out := make([]interface{}, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, map[string]interface{}{
			BlockColID:    b.ID,
			BlockColType:  BlockTypeText,
			BlockColLabel: b.Label,
			BlockColValue: b.Value,
		})
	}
	return out
}

// Decode rebuilds a Product from a stored document. The store is schema-less
// and holds documents written by several tool versions, so decoding is
// tolerant: absent fields map to zero values, `brands`/`categories` accept a
// single string or a list, block ids accept numbers (legacy documents used
// epoch-millisecond ids).
func Decode(doc contracts.Document) (*domain.Product, error) {
	if doc.Data == nil {
		return nil, fmt.Errorf("product %s: empty document", doc.ID)
	}
	m := doc.Data
	return domain.ReconstructProduct(
		doc.ID,
		asString(m[ColName]),
		asString(m[ColSKU]),
		asFloat(m[ColRegularPrice]),
		asFloat(m[ColSalePrice]),
		decodeBlocks(m[ColDescriptionBlocks]),
		asString(m[ColMainImage]),
		asString(m[ColGalleryImage]),
		asString(m[ColWebsite]),
		asStringList(m[ColCategories]),
		asStringList(m[ColBrands]),
		asTime(m[ColCreatedAt]),
	), nil
}

func decodeBlocks(v interface{}) []domain.SpecBlock {
	list, ok := v.([]interface{})
	if !ok {
		return nil
	}
	blocks := make([]domain.SpecBlock, 0, len(list))
	for _, item := range list {
		raw, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		blocks = append(blocks, domain.SpecBlock{
			ID:    asBlockID(raw[BlockColID]),
			Label: asString(raw[BlockColLabel]),
			Value: asString(raw[BlockColValue]),
		})
	}
	return blocks
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asBlockID(v interface{}) string {
	switch id := v.(type) {
	case string:
		return id
	case int64:
		return fmt.Sprintf("%d", id)
	case float64:
		return fmt.Sprintf("%.0f", id)
	default:
		return ""
	}
}

func asFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	default:
		return 0
	}
}

func asStringList(v interface{}) []string {
	switch val := v.(type) {
	case []interface{}:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		if val == "" {
			return nil
		}
		return []string{val}
	default:
		return nil
	}
}

func asTime(v interface{}) time.Time {
	t, _ := v.(time.Time)
	return t
}
