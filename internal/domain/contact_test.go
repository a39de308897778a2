package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/DanielPopoola/campaign-loader/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestContact_EmailsToSend(t *testing.T) {
	t.Run("thirty day campaign sends two", func(t *testing.T) {
		c := domain.Contact{CampaignDuration: intPtr(30)}
		assert.Equal(t, 2, c.EmailsToSend())
	})

	t.Run("sixty day campaign sends three", func(t *testing.T) {
		c := domain.Contact{CampaignDuration: intPtr(60)}
		assert.Equal(t, 3, c.EmailsToSend())
	})

	t.Run("any other duration sends four", func(t *testing.T) {
		assert.Equal(t, 4, domain.Contact{CampaignDuration: intPtr(90)}.EmailsToSend())
		assert.Equal(t, 4, domain.Contact{CampaignDuration: intPtr(0)}.EmailsToSend())
		assert.Equal(t, 4, domain.Contact{}.EmailsToSend())
	})
}

func TestContact_PrimaryEmail(t *testing.T) {
	t.Run("single address", func(t *testing.T) {
		c := domain.Contact{Email: "jane@example.com"}
		assert.Equal(t, "jane@example.com", c.PrimaryEmail())
	})

	t.Run("takes first of several", func(t *testing.T) {
		c := domain.Contact{Email: " jane@example.com ; john@example.com"}
		assert.Equal(t, "jane@example.com", c.PrimaryEmail())
	})
}

func TestContact_CampaignDate(t *testing.T) {
	t.Run("formats month first", func(t *testing.T) {
		start := time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC)
		c := domain.Contact{CampaignStartDate: &start}
		assert.Equal(t, "03/07/2025", c.CampaignDate())
	})

	t.Run("empty when unknown", func(t *testing.T) {
		assert.Equal(t, "", domain.Contact{}.CampaignDate())
	})
}

func TestContact_LeadInfo(t *testing.T) {
	start := time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)
	c := domain.Contact{
		Email:             "jane@example.com;other@example.com",
		FirstName:         "Jane",
		LastName:          "Doe",
		OfferCodeURL:      "http://offers.example.com/AB3CD4",
		OfferCode:         "AB3CD4",
		CampaignStartDate: &start,
		Manufacturer:      "Acme",
		Department:        "Appliances",
		CampaignDuration:  intPtr(60),
	}

	raw, err := json.Marshal(c.LeadInfo())
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))

	assert.Equal(t, "Jane", fields["First Name"])
	assert.Equal(t, "Doe", fields["Last Name"])
	assert.Equal(t, "jane@example.com", fields["Lead Email"])
	assert.Equal(t, "http://offers.example.com/AB3CD4", fields["contract_page_url"])
	assert.Equal(t, "Acme", fields["manufacturer"])
	assert.Equal(t, "Appliances", fields["department"])
	assert.Equal(t, "10/01/2025", fields["campaign_date"])
	assert.Equal(t, false, fields["Is Converted"])
	assert.EqualValues(t, 3, fields["emails_to_send"])
}
