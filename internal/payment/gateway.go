// Package payment builds the hosted-checkout handoff: the service signs the
// payment details, hands the customer's browser to the gateway, and verifies
// the signed token the gateway sends back on the return/cancel URLs.
package payment

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"transfer-booking/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
)

// CheckoutRequest is everything the gateway needs to render its hosted page.
type CheckoutRequest struct {
	CheckoutURL string
	MerchantID  string
	OrderID     string
	Amount      string
	Currency    string
	Description string
	ReturnURL   string
	CancelURL   string
	Signature   string
}

type checkoutClaims struct {
	OrderID  string  `json:"order_id"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	jwt.RegisteredClaims
}

type returnClaims struct {
	OrderID    string `json:"order_id"`
	Status     string `json:"status"`
	GatewayRef string `json:"gateway_ref,omitempty"`
	jwt.RegisteredClaims
}

type Gateway struct {
	config utils.GatewayConfig
}

func NewGateway(config utils.GatewayConfig) *Gateway {
	return &Gateway{config: config}
}

// BuildCheckout signs the order details and assembles the browser handoff.
func (g *Gateway) BuildCheckout(orderID string, amount float64, currency, description string) (*CheckoutRequest, error) {
	now := time.Now()
	claims := checkoutClaims{
		OrderID:  orderID,
		Amount:   amount,
		Currency: currency,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    g.config.MerchantID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(30 * time.Minute)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signature, err := token.SignedString([]byte(g.config.Secret))
	if err != nil {
		return nil, fmt.Errorf("sign checkout request %s: %w", orderID, err)
	}

	return &CheckoutRequest{
		CheckoutURL: g.config.CheckoutURL,
		MerchantID:  g.config.MerchantID,
		OrderID:     orderID,
		Amount:      fmt.Sprintf("%.2f", amount),
		Currency:    currency,
		Description: description,
		ReturnURL:   g.config.ReturnURL,
		CancelURL:   g.config.CancelURL,
		Signature:   signature,
	}, nil
}

// VerifyReturn validates the signed token the gateway appends to the
// return/cancel redirect and extracts the reported outcome.
func (g *Gateway) VerifyReturn(tokenString string) (orderID, status, gatewayRef string, err error) {
	token, err := jwt.ParseWithClaims(tokenString, &returnClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(g.config.Secret), nil
	})
	if err != nil {
		return "", "", "", fmt.Errorf("verify gateway return token: %w", err)
	}

	claims, ok := token.Claims.(*returnClaims)
	if !ok || !token.Valid {
		return "", "", "", fmt.Errorf("invalid gateway return token")
	}

	return claims.OrderID, claims.Status, claims.GatewayRef, nil
}

// checkoutPage is the auto-submitting form handed to the customer's browser.
// Full page navigation, not an API call: the gateway renders from here on.
var checkoutPage = template.Must(template.New("checkout").Parse(`<!DOCTYPE html>
<html>
<head><title>Redirecting to secure payment…</title></head>
<body onload="document.forms[0].submit()">
<p>Redirecting to the secure payment page…</p>
<form method="POST" action="{{.CheckoutURL}}">
<input type="hidden" name="merchant_id" value="{{.MerchantID}}">
<input type="hidden" name="order_id" value="{{.OrderID}}">
<input type="hidden" name="amount" value="{{.Amount}}">
<input type="hidden" name="currency" value="{{.Currency}}">
<input type="hidden" name="description" value="{{.Description}}">
<input type="hidden" name="return_url" value="{{.ReturnURL}}">
<input type="hidden" name="cancel_url" value="{{.CancelURL}}">
<input type="hidden" name="signature" value="{{.Signature}}">
<noscript><button type="submit">Continue to payment</button></noscript>
</form>
</body>
</html>
`))

// RenderCheckoutHTML writes the hosted-checkout redirect page.
func RenderCheckoutHTML(w io.Writer, req *CheckoutRequest) error {
	if err := checkoutPage.Execute(w, req); err != nil {
		return fmt.Errorf("render checkout page %s: %w", req.OrderID, err)
	}
	return nil
}
