package list_inquiries

import (
	"github.com/taskflow/catalog-backoffice/internal/app/catalog/contracts"
	"github.com/taskflow/catalog-backoffice/internal/app/catalog/domain"
	"github.com/taskflow/catalog-backoffice/internal/app/catalog/search"
)

// Handler derives filtered inquiry views from the materialized feed.
type Handler struct {
	readModel contracts.InquiryReadModel
}

func NewHandler(rm contracts.InquiryReadModel) *Handler {
	return &Handler{readModel: rm}
}

// Execute returns the inquiries matching the operator's filter, in feed order.
func (h *Handler) Execute(f search.InquiryFilter) []*domain.Inquiry {
	return search.Inquiries(h.readModel.Inquiries(), f)
}

// Ready reports whether the feed has materialized a first snapshot.
func (h *Handler) Ready() bool {
	return h.readModel.Ready()
}
