package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hirelane/staffdesk/internal/admin/metrics"
	"github.com/hirelane/staffdesk/internal/admin/payments"
	"github.com/hirelane/staffdesk/pkg/slogx"
)

var ErrUnknownClassification = errors.New("unknown job classification")

// CheckoutSession is the subset of the provider's session the API
// returns: enough for the caller to redirect into the hosted flow.
type CheckoutSession struct {
	ID  string
	URL string
}

type CheckoutService struct {
	Pricing  payments.PricingTable
	Provider *payments.Provider
	Metrics  *metrics.Metrics
}

// CreateSession creates a hosted checkout session for a job posting fee.
func (s *CheckoutService) CreateSession(
	ctx context.Context,
	classification payments.JobClassification,
	successURL, cancelURL string,
) (CheckoutSession, error) {
	l := slogx.FromContext(ctx)

	tier, ok := s.Pricing.Tier(classification)
	if !ok {
		return CheckoutSession{}, ErrUnknownClassification
	}

	sess, err := s.Provider.NewCheckoutSession(ctx, tier.PriceID, successURL, cancelURL, uuid.NewString())
	if err != nil {
		return CheckoutSession{}, fmt.Errorf("create checkout session: %w", err)
	}

	s.Metrics.CheckoutSessions.Inc()
	l.Info("checkout session created",
		"classification", classification,
		"price_id", tier.PriceID,
		"session_id", sess.ID,
	)
	return CheckoutSession{ID: sess.ID, URL: sess.URL}, nil
}
