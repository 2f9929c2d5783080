package controllers

import (
	"log/slog"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	stripe "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
)

// PaymentProvider creates a payment intent and returns the client-usable
// secret for it. Amounts are in the currency's minor unit.
type PaymentProvider interface {
	CreatePaymentIntent(amount int64, currency string) (clientSecret string, err error)
}

// StripeProvider is the production PaymentProvider.
type StripeProvider struct {
	Key string
}

func (p StripeProvider) CreatePaymentIntent(amount int64, currency string) (string, error) {
	stripe.Key = p.Key

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.IdempotencyKey = stripe.String(uuid.NewString())

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}

// CreatePayment converts the submitted fee to minor units and asks the
// provider for a payment intent. Provider failures surface as a generic
// server error.
func (h *Controller) CreatePayment(c *gin.Context) {
	var input struct {
		Fee float64 `json:"fee" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid fee"})
		return
	}

	amount := int64(math.Round(input.Fee * 100))
	clientSecret, err := h.Payments.CreatePaymentIntent(amount, "usd")
	if err != nil {
		slog.Error("payment intent creation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create payment intent"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"client_secret": clientSecret})
}
