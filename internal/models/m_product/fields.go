package m_product

// Field constants for product documents.
const (
	ColName              = "name"
	ColSKU               = "sku"
	ColRegularPrice      = "regularPrice"
	ColSalePrice         = "salePrice"
	ColDescriptionBlocks = "descriptionBlocks"
	ColMainImage         = "mainImage"
	ColGalleryImage      = "galleryImage"
	ColCategories        = "categories"
	ColBrands            = "brands"
	ColWebsite           = "website"
	ColCreatedAt         = "createdAt"
)

// Subfields of one description block.
const (
	BlockColID    = "id"
	BlockColType  = "type"
	BlockColLabel = "label"
	BlockColValue = "value"

	// BlockTypeText is the only block type in use; kept on the wire for
	// compatibility with documents written by earlier tool versions.
	BlockTypeText = "text"
)
