package domain

import "errors"

// Domain errors for the Product aggregate
var (
	// ErrProductNotFound indicates that a product with the given ID does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrEmptyProductName indicates an attempt to create/update a product with an empty name.
	ErrEmptyProductName = errors.New("product name cannot be empty")

	// ErrMissingMainImage indicates a product record without a resolved main image.
	ErrMissingMainImage = errors.New("product main image is required")

	// ErrNegativePrice indicates an attempt to set a negative price.
	ErrNegativePrice = errors.New("price cannot be negative")

	// ErrUnknownWebsite indicates a website identifier that is not registered.
	ErrUnknownWebsite = errors.New("website is not registered")

	// ErrInvalidClassification indicates category or brand selections outside
	// the owning website's taxonomy.
	ErrInvalidClassification = errors.New("selection is not part of the website taxonomy")
)

// Domain errors for specification blocks
var (
	// ErrBlockNotFound indicates an edit or removal addressed to a block
	// identifier that is not (or no longer) present.
	ErrBlockNotFound = errors.New("specification block not found")

	// ErrDuplicateBlockID indicates an attempt to add a block whose identifier
	// is already in use within the product.
	ErrDuplicateBlockID = errors.New("specification block id already in use")
)

// Domain errors for the Inquiry record
var (
	// ErrInquiryNotFound indicates that an inquiry with the given ID does not exist.
	ErrInquiryNotFound = errors.New("inquiry not found")

	// ErrInvalidQuantity indicates an inquiry item with a non-positive quantity.
	ErrInvalidQuantity = errors.New("item quantity must be positive")
)
