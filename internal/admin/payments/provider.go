package payments

import (
	"context"
	"errors"
	"sync"

	stripe "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// ErrMissingKey reports that the Stripe secret key was absent when the
// client was first requested. Configuration errors are terminal; callers
// must not retry.
var ErrMissingKey = errors.New("payments: stripe secret key is not configured")

// Provider owns the lazily-initialized Stripe API handle. It is built
// once at application start-up and passed by reference so initialization
// order stays explicit. The first Client call constructs the handle; every
// later call returns the same memoized handle (or the same error).
type Provider struct {
	secretKey string

	once sync.Once
	api  *client.API
	err  error
}

func NewProvider(secretKey string) *Provider {
	return &Provider{secretKey: secretKey}
}

// Client returns the memoized Stripe API handle. A racing first call only
// risks redundant construction inside sync.Once's barrier, never a torn
// handle.
func (p *Provider) Client() (*client.API, error) {
	p.once.Do(func() {
		if p.secretKey == "" {
			p.err = ErrMissingKey
			return
		}
		api := &client.API{}
		api.Init(p.secretKey, nil)
		p.api = api
	})
	return p.api, p.err
}

// NewCheckoutSession creates a payment-mode Checkout session for a single
// price. The idempotency key guards against double submission.
func (p *Provider) NewCheckoutSession(
	ctx context.Context,
	priceID, successURL, cancelURL, idempotencyKey string,
) (*stripe.CheckoutSession, error) {
	api, err := p.Client()
	if err != nil {
		return nil, err
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(successURL),
		CancelURL:  stripe.String(cancelURL),
	}
	params.Context = ctx
	if idempotencyKey != "" {
		params.SetIdempotencyKey(idempotencyKey)
	}

	return api.CheckoutSessions.New(params)
}
