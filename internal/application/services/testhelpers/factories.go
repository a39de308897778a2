package testhelpers

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// SaleRow is one seeded row of mpos_post_sale_marketing. Nil pointers are stored as NULL.
type SaleRow struct {
	InvoiceNumber     string
	DealerID          string
	InboundBatchID    string
	NeedsProcess      string
	Email             *string
	FirstName         string
	LastName          string
	Manufacturer      string
	Department        string
	CampaignStartDate *time.Time
	CampaignDuration  *int
	OfferCode         *string
	OfferCodeURL      *string
	BatchID           *string
}

// NewSaleRow returns a pending row with a unique invoice number and a contact email.
func NewSaleRow(dealerID string) SaleRow {
	id := uuid.New().String()
	email := "customer-" + id[:8] + "@example.com"
	return SaleRow{
		InvoiceNumber: "INV-" + id[:12],
		DealerID:      dealerID,
		NeedsProcess:  "1",
		Email:         &email,
		FirstName:     "Pat",
		LastName:      "Buyer",
		Manufacturer:  "Acme",
		Department:    "Appliances",
	}
}

func (td *TestDatabase) InsertSale(t *testing.T, row SaleRow) int64 {
	t.Helper()

	query := `
		INSERT INTO mpos_post_sale_marketing (
			invoice_number, dealer_id, inbound_batch_id, needs_python_proccess,
			customer_email, customer_first_name, customer_last_name,
			manufacturer, department, campaign_start_date, campaign_duration,
			landing_page_offer_code, offer_code_url, batch_id
		) VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`

	needs := row.NeedsProcess
	if needs == "" {
		needs = "1"
	}

	var id int64
	err := td.DB.Pool.QueryRow(context.Background(), query,
		row.InvoiceNumber, row.DealerID, row.InboundBatchID, needs,
		row.Email, row.FirstName, row.LastName,
		row.Manufacturer, row.Department, row.CampaignStartDate, row.CampaignDuration,
		row.OfferCode, row.OfferCodeURL, row.BatchID,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

// StoredSale is the subset of columns assertions care about.
type StoredSale struct {
	NeedsProcess       string
	OfferCode          *string
	OfferCodeURL       *string
	BatchID            *string
	PlanPurchasedDate  *time.Time
	CampaignLoadedDate *time.Time
}

func (td *TestDatabase) GetSale(t *testing.T, id int64) StoredSale {
	t.Helper()

	query := `
		SELECT needs_python_proccess, landing_page_offer_code, offer_code_url, batch_id,
		       activity_plan_purchased_date, activity_zoho_campaign_load
		FROM mpos_post_sale_marketing WHERE id = $1
	`

	var s StoredSale
	err := td.DB.Pool.QueryRow(context.Background(), query, id).Scan(
		&s.NeedsProcess, &s.OfferCode, &s.OfferCodeURL, &s.BatchID,
		&s.PlanPurchasedDate, &s.CampaignLoadedDate,
	)
	require.NoError(t, err)

	return s
}

func Ptr[T any](v T) *T {
	return &v
}
