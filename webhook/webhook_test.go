package webhook

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xummpay "github.com/XRPL-Labs/xumm-payments"
)

type fakeEngine struct {
	payments    []uuid.UUID
	refunds     []int
	settings    []string
	orderStatus xummpay.PaymentStatus
}

func (f *fakeEngine) ProcessPayment(_ context.Context, orderGUID uuid.UUID) (*xummpay.Order, error) {
	f.payments = append(f.payments, orderGUID)
	return &xummpay.Order{ID: 42, GUID: orderGUID, PaymentStatus: f.orderStatus}, nil
}

func (f *fakeEngine) ProcessRefund(_ context.Context, orderGUID uuid.UUID, count *int) (*xummpay.Order, error) {
	c := -1
	if count != nil {
		c = *count
	}
	f.refunds = append(f.refunds, c)
	return &xummpay.Order{ID: 42, GUID: orderGUID, PaymentStatus: f.orderStatus}, nil
}

func (f *fakeEngine) ProcessSettingsPayload(_ context.Context, identifier string) error {
	f.settings = append(f.settings, identifier)
	return nil
}

func newTestHandler(engine *fakeEngine) (*echo.Echo, *Handler) {
	h := NewHandler(engine,
		"https://shop.example/checkout/completed/%d",
		"https://shop.example/order/%d",
		"https://shop.example/",
	)
	e := echo.New()
	h.Register(e)
	return e, h
}

func postWebhook(e *echo.Echo, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhook/xumm", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestWebhook_PaymentIdentifier(t *testing.T) {
	engine := &fakeEngine{orderStatus: xummpay.PAID_PS}
	e, _ := newTestHandler(engine)

	guid := uuid.New()
	identifier := xummpay.PayloadIdentifier(guid, xummpay.PAYMENT_KIND, 2)
	rec := postWebhook(e, fmt.Sprintf(`{"custom_meta":{"identifier":%q}}`, identifier))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, engine.payments, 1)
	assert.Equal(t, guid, engine.payments[0])
}

func TestWebhook_RefundIdentifierCarriesCount(t *testing.T) {
	engine := &fakeEngine{orderStatus: xummpay.PARTIALLY_REFUNDED_PS}
	e, _ := newTestHandler(engine)

	identifier := xummpay.PayloadIdentifier(uuid.New(), xummpay.REFUND_KIND, 3)
	rec := postWebhook(e, fmt.Sprintf(`{"custom_meta":{"identifier":%q}}`, identifier))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []int{3}, engine.refunds)
}

func TestWebhook_ForeignIdentifierGoesToSettings(t *testing.T) {
	engine := &fakeEngine{}
	e, _ := newTestHandler(engine)

	rec := postWebhook(e, `{"custom_meta":{"identifier":"b3a4f3a0-1c2d-4e5f-8a9b-0c1d2e3f4a5b"}}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, engine.payments)
	assert.Equal(t, []string{"b3a4f3a0-1c2d-4e5f-8a9b-0c1d2e3f4a5b"}, engine.settings)
}

func TestWebhook_EmptyIdentifierIsAcknowledged(t *testing.T) {
	engine := &fakeEngine{}
	e, _ := newTestHandler(engine)

	rec := postWebhook(e, `{"custom_meta":{"identifier":""}}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, engine.payments)
	assert.Empty(t, engine.settings)
}

func TestPaymentCallback_PaidRedirectsToCompleted(t *testing.T) {
	engine := &fakeEngine{orderStatus: xummpay.PAID_PS}
	e, _ := newTestHandler(engine)

	req := httptest.NewRequest(http.MethodGet, "/xumm/payment/"+uuid.New().String(), nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "https://shop.example/checkout/completed/42", rec.Header().Get("Location"))
}

func TestPaymentCallback_PendingRedirectsToDetails(t *testing.T) {
	engine := &fakeEngine{orderStatus: xummpay.PENDING_PS}
	e, _ := newTestHandler(engine)

	req := httptest.NewRequest(http.MethodGet, "/xumm/payment/"+uuid.New().String(), nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "https://shop.example/order/42", rec.Header().Get("Location"))
}

func TestPaymentCallback_BadGUIDRedirectsHome(t *testing.T) {
	engine := &fakeEngine{}
	e, _ := newTestHandler(engine)

	req := httptest.NewRequest(http.MethodGet, "/xumm/payment/not-a-guid", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "https://shop.example/", rec.Header().Get("Location"))
	assert.Empty(t, engine.payments)
}

func TestRefundCallback_CountFromQuery(t *testing.T) {
	engine := &fakeEngine{orderStatus: xummpay.PARTIALLY_REFUNDED_PS}
	e, _ := newTestHandler(engine)

	req := httptest.NewRequest(http.MethodGet, "/xumm/refund/"+uuid.New().String()+"?count=2", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, []int{2}, engine.refunds)
	assert.Equal(t, "https://shop.example/order/42", rec.Header().Get("Location"))
}

func TestRefundCallback_MissingCountUsesCurrentCounter(t *testing.T) {
	engine := &fakeEngine{orderStatus: xummpay.PARTIALLY_REFUNDED_PS}
	e, _ := newTestHandler(engine)

	req := httptest.NewRequest(http.MethodGet, "/xumm/refund/"+uuid.New().String(), nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, []int{-1}, engine.refunds, "nil count forwarded to the engine")
}
