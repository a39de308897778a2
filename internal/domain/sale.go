package domain

import (
	"strings"
)

// PendingSale is a source row that still needs an offer code.
type PendingSale struct {
	ID            int64
	InvoiceNumber string
	DealerID      string
	OfferCode     *string
}

// OfferAssignment is one row of the staging table applied in bulk to the sales table.
type OfferAssignment struct {
	InvoiceNumber string
	DealerID      string
	OfferCode     string
	OfferCodeURL  string
	BatchID       BatchID
}

// OfferURLPolicy chooses the landing page an offer code points at.
type OfferURLPolicy struct {
	BrandURL      string
	DefaultURL    string
	BrandDealerID string
}

func (p OfferURLPolicy) URL(dealerID, code string) string {
	base := p.DefaultURL
	if p.BrandDealerID != "" && strings.TrimSpace(dealerID) == p.BrandDealerID {
		base = p.BrandURL
	}
	return strings.TrimRight(base, "/") + "/" + code
}

// UniqueInvoices returns the distinct non-blank invoice numbers in first-seen order.
// Values are kept verbatim since they are matched back against the table.
func UniqueInvoices(sales []PendingSale) []string {
	seen := make(map[string]struct{}, len(sales))
	out := make([]string, 0, len(sales))
	for _, s := range sales {
		inv := s.InvoiceNumber
		if strings.TrimSpace(inv) == "" {
			continue
		}
		if _, ok := seen[inv]; ok {
			continue
		}
		seen[inv] = struct{}{}
		out = append(out, inv)
	}
	return out
}

// BuildAssignments pairs each (invoice, dealer) with the code assigned to its invoice.
// Rows missing either key, or whose invoice has no code, are dropped.
func BuildAssignments(sales []PendingSale, codes map[string]string, batchID BatchID, policy OfferURLPolicy) []OfferAssignment {
	type key struct{ invoice, dealer string }

	seen := make(map[key]struct{}, len(sales))
	out := make([]OfferAssignment, 0, len(sales))
	for _, s := range sales {
		k := key{s.InvoiceNumber, s.DealerID}
		if strings.TrimSpace(k.invoice) == "" || strings.TrimSpace(k.dealer) == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		code, ok := codes[k.invoice]
		if !ok || code == "" {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, OfferAssignment{
			InvoiceNumber: k.invoice,
			DealerID:      k.dealer,
			OfferCode:     code,
			OfferCodeURL:  policy.URL(k.dealer, code),
			BatchID:       batchID,
		})
	}
	return out
}
