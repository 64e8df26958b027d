// Package payments carries the job-posting pricing table and the Stripe
// provider handle. Checkout UX itself is vendor-owned; this service only
// creates sessions and serves the pricing configuration.
package payments

// JobClassification selects the pricing tier for a posting.
type JobClassification string

const (
	ClassificationStandard JobClassification = "STANDARD"
	ClassificationPremium  JobClassification = "PREMIUM"
)

// PricingTier is one entry of the job pricing configuration. Price is in
// the smallest currency unit (cents).
type PricingTier struct {
	Price       int64  `json:"price"`
	Label       string `json:"label"`
	Description string `json:"description"`
	PriceID     string `json:"priceId"`
}

// PricingTable maps job classifications to their tier.
type PricingTable map[JobClassification]PricingTier

// NewPricingTable builds the stable pricing configuration. Price IDs come
// from configuration rather than being baked in.
func NewPricingTable(standardPriceID, premiumPriceID string) PricingTable {
	return PricingTable{
		ClassificationStandard: {
			Price:       500,
			Label:       "Standard (Worker/Tradesman)",
			Description: "For general tradesmen positions",
			PriceID:     standardPriceID,
		},
		ClassificationPremium: {
			Price:       1500,
			Label:       "Premium (Project Manager, Superintendent, Executive)",
			Description: "For leadership and management positions",
			PriceID:     premiumPriceID,
		},
	}
}

// Tier returns the pricing tier for a classification.
func (t PricingTable) Tier(c JobClassification) (PricingTier, bool) {
	tier, ok := t[c]
	return tier, ok
}
