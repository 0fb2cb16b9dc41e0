package domain

// SpecBlock is one operator-authored labeled text section of a product's
// technical description. The ID is opaque, unique within the product and
// stable across edits; it is never reused after the block is removed, so a
// stale edit addressed to a deleted block fails instead of landing on a
// neighbour.
type SpecBlock struct {
	ID    string
	Label string
	Value string
}

// Default first block seeded at product-creation time.
const (
	DefaultBlockLabel = "Technical Specifications"
	DefaultBlockValue = "WATTS: \nVOLTAGE: \nLUMENS: \nCOLOR TEMP: \nBEAM ANGLE: \nMATERIAL: "
)

// DefaultSpecBlock returns the template block every new product starts with.
// The caller supplies the freshly generated identifier.
func DefaultSpecBlock(id string) SpecBlock {
	return SpecBlock{ID: id, Label: DefaultBlockLabel, Value: DefaultBlockValue}
}

func cloneBlocks(blocks []SpecBlock) []SpecBlock {
	if blocks == nil {
		return nil
	}
	out := make([]SpecBlock, len(blocks))
	copy(out, blocks)
	return out
}
