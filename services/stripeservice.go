package services

import (
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// PaymentIntents wraps the Stripe client used for checkout.
type PaymentIntents struct {
	api *client.API
}

func NewPaymentIntents(secretKey string) *PaymentIntents {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &PaymentIntents{api: api}
}

// Create opens a card PaymentIntent for the given amount in USD cents and
// returns its client secret.
func (p *PaymentIntents) Create(amount int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	intent, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}
