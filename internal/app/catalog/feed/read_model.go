package feed

import "github.com/taskflow/catalog-backoffice/internal/app/catalog/domain"

// ProductFeed adapts a product synchronizer to the ProductReadModel contract.
type ProductFeed struct {
	*Synchronizer[*domain.Product]
}

func (f ProductFeed) Products() []*domain.Product {
	return f.Snapshot()
}

func (f ProductFeed) Product(id string) (*domain.Product, bool) {
	return f.Find(id)
}

// InquiryFeed adapts an inquiry synchronizer to the InquiryReadModel contract.
type InquiryFeed struct {
	*Synchronizer[*domain.Inquiry]
}

func (f InquiryFeed) Inquiries() []*domain.Inquiry {
	return f.Snapshot()
}

func (f InquiryFeed) Inquiry(id string) (*domain.Inquiry, bool) {
	return f.Find(id)
}
