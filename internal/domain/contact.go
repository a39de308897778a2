package domain

import (
	"strings"
	"time"
)

// CampaignDateLayout is the MM/DD/YYYY layout the campaign API expects.
const CampaignDateLayout = "01/02/2006"

// Contact is one row queued for the campaign API. It is read once per batch and never
// mutated; the outcome of its dispatch is reported, not stored on it.
type Contact struct {
	Email             string
	FirstName         string
	LastName          string
	OfferCodeURL      string
	OfferCode         string
	CampaignStartDate *time.Time
	Manufacturer      string
	Department        string
	CampaignDuration  *int
}

// PrimaryEmail returns the first address when several are stored separated by ';'.
func (c Contact) PrimaryEmail() string {
	first, _, _ := strings.Cut(c.Email, ";")
	return strings.TrimSpace(first)
}

// EmailsToSend maps the campaign duration in days to the number of follow-up emails.
func (c Contact) EmailsToSend() int {
	if c.CampaignDuration == nil {
		return 4
	}
	switch *c.CampaignDuration {
	case 30:
		return 2
	case 60:
		return 3
	default:
		return 4
	}
}

// CampaignDate renders the start date, or "" when unknown.
func (c Contact) CampaignDate() string {
	if c.CampaignStartDate == nil || c.CampaignStartDate.IsZero() {
		return ""
	}
	return c.CampaignStartDate.Format(CampaignDateLayout)
}

// LeadInfo is the payload the campaign API stores for a subscriber.
type LeadInfo struct {
	FirstName       string `json:"First Name"`
	LastName        string `json:"Last Name"`
	LeadEmail       string `json:"Lead Email"`
	ContractPageURL string `json:"contract_page_url"`
	Manufacturer    string `json:"manufacturer"`
	Department      string `json:"department"`
	CampaignDate    string `json:"campaign_date"`
	IsConverted     bool   `json:"Is Converted"`
	EmailsToSend    int    `json:"emails_to_send"`
}

func (c Contact) LeadInfo() LeadInfo {
	return LeadInfo{
		FirstName:       strings.TrimSpace(c.FirstName),
		LastName:        strings.TrimSpace(c.LastName),
		LeadEmail:       c.PrimaryEmail(),
		ContractPageURL: c.OfferCodeURL,
		Manufacturer:    c.Manufacturer,
		Department:      c.Department,
		CampaignDate:    c.CampaignDate(),
		IsConverted:     false,
		EmailsToSend:    c.EmailsToSend(),
	}
}
