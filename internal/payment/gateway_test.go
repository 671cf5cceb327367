package payment

import (
	"strings"
	"testing"
	"time"

	"transfer-booking/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGateway() *Gateway {
	return NewGateway(utils.GatewayConfig{
		CheckoutURL: "https://pay.example.com/checkout",
		MerchantID:  "merchant-1",
		Secret:      "test-secret",
		ReturnURL:   "https://transfers.example.com/api/payments/return",
		CancelURL:   "https://transfers.example.com/api/payments/cancel",
	})
}

// signReturnToken builds the token the gateway appends to its redirect.
func signReturnToken(t *testing.T, secret, orderID, status, gatewayRef string) string {
	t.Helper()

	claims := returnClaims{
		OrderID:    orderID,
		Status:     status,
		GatewayRef: gatewayRef,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(5 * time.Minute)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestBuildCheckout(t *testing.T) {
	g := testGateway()

	checkout, err := g.BuildCheckout("TRF-20240101-120000-0001", 130, "EUR", "Airport → City (return)")
	require.NoError(t, err)

	assert.Equal(t, "https://pay.example.com/checkout", checkout.CheckoutURL)
	assert.Equal(t, "merchant-1", checkout.MerchantID)
	assert.Equal(t, "130.00", checkout.Amount)
	assert.Equal(t, "EUR", checkout.Currency)
	assert.NotEmpty(t, checkout.Signature)

	// The signature must verify against the shared secret.
	parsed, err := jwt.ParseWithClaims(checkout.Signature, &checkoutClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(*checkoutClaims)
	assert.Equal(t, "TRF-20240101-120000-0001", claims.OrderID)
	assert.Equal(t, 130.0, claims.Amount)
}

func TestVerifyReturn(t *testing.T) {
	g := testGateway()

	t.Run("paid", func(t *testing.T) {
		token := signReturnToken(t, "test-secret", "TRF-1", "paid", "gw-ref-42")
		orderID, status, ref, err := g.VerifyReturn(token)
		require.NoError(t, err)
		assert.Equal(t, "TRF-1", orderID)
		assert.Equal(t, "paid", status)
		assert.Equal(t, "gw-ref-42", ref)
	})

	t.Run("failed without ref", func(t *testing.T) {
		token := signReturnToken(t, "test-secret", "TRF-2", "failed", "")
		orderID, status, ref, err := g.VerifyReturn(token)
		require.NoError(t, err)
		assert.Equal(t, "TRF-2", orderID)
		assert.Equal(t, "failed", status)
		assert.Empty(t, ref)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := signReturnToken(t, "other-secret", "TRF-3", "paid", "")
		_, _, _, err := g.VerifyReturn(token)
		assert.Error(t, err)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, _, _, err := g.VerifyReturn("not-a-jwt")
		assert.Error(t, err)
	})

	t.Run("unsigned token rejected", func(t *testing.T) {
		claims := returnClaims{OrderID: "TRF-4", Status: "paid"}
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, _, _, err = g.VerifyReturn(token)
		assert.Error(t, err)
	})
}

func TestRenderCheckoutHTML(t *testing.T) {
	g := testGateway()

	checkout, err := g.BuildCheckout("TRF-5", 65, "EUR", "Airport transfer")
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, RenderCheckoutHTML(&sb, checkout))

	html := sb.String()
	assert.Contains(t, html, `action="https://pay.example.com/checkout"`)
	assert.Contains(t, html, `name="order_id" value="TRF-5"`)
	assert.Contains(t, html, `name="amount" value="65.00"`)
	assert.Contains(t, html, checkout.Signature)
}
