package contracts

import "github.com/taskflow/catalog-backoffice/internal/app/catalog/domain"

// ProductReadModel is the read side over the materialized product feed.
// Implemented by the product synchronizer; the collections it exposes are
// read-through caches, never authoritative.
type ProductReadModel interface {
	// Products returns the current materialized sequence, newest first.
	Products() []*domain.Product

	// Product looks a product up by id in the current sequence.
	Product(id string) (*domain.Product, bool)

	// Ready reports whether a first snapshot has been materialized.
	Ready() bool
}

// InquiryReadModel is the read side over the materialized inquiry feed.
type InquiryReadModel interface {
	Inquiries() []*domain.Inquiry
	Inquiry(id string) (*domain.Inquiry, bool)
	Ready() bool
}
