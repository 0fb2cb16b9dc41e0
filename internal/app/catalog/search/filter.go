// Package search filters the materialized feed sequences. Everything here is
// pure and synchronous: input sequence in, filtered view out, no I/O and no
// suspension, so calls are re-entrant and predicate order cannot matter.
package search

import (
	"strings"

	"github.com/taskflow/catalog-backoffice/internal/app/catalog/domain"
)

// Selector values that bypass the categorical predicate entirely.
const (
	AllBrands   = "All Brands"
	AllWebsites = "all"
)

// ProductFilter is the operator-entered predicate over the product feed.
type ProductFilter struct {
	// Text matches case-insensitively against name OR sku.
	Text string

	// Brand matches products whose brand set contains the selector.
	// AllBrands (or empty) disables the predicate.
	Brand string
}

// Products returns the products matching the filter, preserving input order.
func Products(products []*domain.Product, f ProductFilter) []*domain.Product {
	out := make([]*domain.Product, 0, len(products))
	for _, p := range products {
		if matchesProduct(p, f) {
			out = append(out, p)
		}
	}
	return out
}

func matchesProduct(p *domain.Product, f ProductFilter) bool {
	if f.Brand != "" && f.Brand != AllBrands && !contains(p.Brands(), f.Brand) {
		return false
	}
	if f.Text == "" {
		return true
	}
	q := strings.ToLower(f.Text)
	return strings.Contains(strings.ToLower(p.Name()), q) ||
		strings.Contains(strings.ToLower(p.SKU()), q)
}

// InquiryFilter is the operator-entered predicate over the inquiry feed.
type InquiryFilter struct {
	// Text matches case-insensitively against the customer's full name OR email.
	Text string

	// Website matches the inquiry's origin website identifier.
	// AllWebsites (or empty) disables the predicate.
	Website string
}

// Inquiries returns the inquiries matching the filter, preserving input order.
func Inquiries(inquiries []*domain.Inquiry, f InquiryFilter) []*domain.Inquiry {
	out := make([]*domain.Inquiry, 0, len(inquiries))
	for _, inq := range inquiries {
		if matchesInquiry(inq, f) {
			out = append(out, inq)
		}
	}
	return out
}

func matchesInquiry(inq *domain.Inquiry, f InquiryFilter) bool {
	if f.Website != "" && f.Website != AllWebsites && inq.Website() != f.Website {
		return false
	}
	if f.Text == "" {
		return true
	}
	q := strings.ToLower(f.Text)
	c := inq.Customer()
	return strings.Contains(strings.ToLower(c.FullName()), q) ||
		strings.Contains(strings.ToLower(c.Email), q)
}

// DistinctBrands derives the brand list for the filter control from the
// current sequence: first-seen order preserved, duplicates removed by value
// equality. Recomputed whenever the sequence changes.
func DistinctBrands(products []*domain.Product) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, p := range products {
		for _, b := range p.Brands() {
			if _, ok := seen[b]; ok {
				continue
			}
			seen[b] = struct{}{}
			out = append(out, b)
		}
	}
	return out
}

func contains(values []string, v string) bool {
	for _, cur := range values {
		if cur == v {
			return true
		}
	}
	return false
}
