package postgres

import (
	"time"
)

// Columns of mpos_post_sale_marketing are nullable, so scans go through pointers.

type pendingSaleModel struct {
	ID            int64
	InvoiceNumber *string
	DealerID      *string
	OfferCode     *string
}

type contactModel struct {
	Email             *string
	FirstName         *string
	LastName          *string
	OfferCodeURL      *string
	OfferCode         *string
	CampaignStartDate *time.Time
	Manufacturer      *string
	Department        *string
	CampaignDuration  *int
}
