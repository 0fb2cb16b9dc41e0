package list_products

import (
	"github.com/taskflow/catalog-backoffice/internal/app/catalog/contracts"
	"github.com/taskflow/catalog-backoffice/internal/app/catalog/domain"
	"github.com/taskflow/catalog-backoffice/internal/app/catalog/search"
)

// Handler derives filtered product views from the materialized feed.
// It only ever reads the sequence; the synchronizer owns it.
type Handler struct {
	readModel contracts.ProductReadModel
}

func NewHandler(rm contracts.ProductReadModel) *Handler {
	return &Handler{readModel: rm}
}

// Execute returns the products matching the operator's filter, in feed order.
func (h *Handler) Execute(f search.ProductFilter) []*domain.Product {
	return search.Products(h.readModel.Products(), f)
}

// Brands returns the distinct brand list for the filter control, recomputed
// from the current sequence.
func (h *Handler) Brands() []string {
	return search.DistinctBrands(h.readModel.Products())
}

// Ready reports whether the feed has materialized a first snapshot.
func (h *Handler) Ready() bool {
	return h.readModel.Ready()
}
