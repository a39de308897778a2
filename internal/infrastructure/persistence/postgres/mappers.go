package postgres

import (
	"github.com/DanielPopoola/campaign-loader/internal/domain"
)

func toPendingSale(m pendingSaleModel) domain.PendingSale {
	return domain.PendingSale{
		ID:            m.ID,
		InvoiceNumber: deref(m.InvoiceNumber),
		DealerID:      deref(m.DealerID),
		OfferCode:     m.OfferCode,
	}
}

func toContact(m contactModel) domain.Contact {
	return domain.Contact{
		Email:             deref(m.Email),
		FirstName:         deref(m.FirstName),
		LastName:          deref(m.LastName),
		OfferCodeURL:      deref(m.OfferCodeURL),
		OfferCode:         deref(m.OfferCode),
		CampaignStartDate: m.CampaignStartDate,
		Manufacturer:      deref(m.Manufacturer),
		Department:        deref(m.Department),
		CampaignDuration:  m.CampaignDuration,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
