package domain_test

import (
	"testing"

	"github.com/DanielPopoola/campaign-loader/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPolicy = domain.OfferURLPolicy{
	BrandURL:      "https://brand.example.com/",
	DefaultURL:    "https://offers.example.com",
	BrandDealerID: "5779155000141100449",
}

func TestOfferURLPolicy_URL(t *testing.T) {
	assert.Equal(t, "https://brand.example.com/AB3CD4", testPolicy.URL("5779155000141100449", "AB3CD4"))
	assert.Equal(t, "https://offers.example.com/AB3CD4", testPolicy.URL("42", "AB3CD4"))
}

func TestUniqueInvoices(t *testing.T) {
	sales := []domain.PendingSale{
		{InvoiceNumber: "INV-1", DealerID: "1"},
		{InvoiceNumber: "INV-2", DealerID: "1"},
		{InvoiceNumber: "INV-1", DealerID: "2"},
		{InvoiceNumber: "  ", DealerID: "3"},
	}

	assert.Equal(t, []string{"INV-1", "INV-2"}, domain.UniqueInvoices(sales))
}

func TestBuildAssignments(t *testing.T) {
	sales := []domain.PendingSale{
		{ID: 1, InvoiceNumber: "INV-1", DealerID: "5779155000141100449"},
		{ID: 2, InvoiceNumber: "INV-1", DealerID: "5779155000141100449"},
		{ID: 3, InvoiceNumber: "INV-1", DealerID: "77"},
		{ID: 4, InvoiceNumber: "INV-2", DealerID: ""},
		{ID: 5, InvoiceNumber: "INV-3", DealerID: "77"},
		{ID: 6, InvoiceNumber: "INV-4", DealerID: "77"},
	}
	codes := map[string]string{
		"INV-1": "AB3CD4",
		"INV-2": "ZZ22ZZ",
		"INV-3": "QR5ST6",
	}

	got := domain.BuildAssignments(sales, codes, domain.BatchID(99), testPolicy)

	require.Len(t, got, 3)
	assert.Equal(t, domain.OfferAssignment{
		InvoiceNumber: "INV-1",
		DealerID:      "5779155000141100449",
		OfferCode:     "AB3CD4",
		OfferCodeURL:  "https://brand.example.com/AB3CD4",
		BatchID:       99,
	}, got[0])
	assert.Equal(t, "77", got[1].DealerID)
	assert.Equal(t, "https://offers.example.com/AB3CD4", got[1].OfferCodeURL)
	assert.Equal(t, "QR5ST6", got[2].OfferCode)
}
