// Package webhook exposes the HTTP surface of the payment method: the
// signing network's webhook and the wallet return-URL callbacks. Both
// can race for the same event, the engine serializes them.
package webhook

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo"
	"go.uber.org/zap"

	xummpay "github.com/XRPL-Labs/xumm-payments"
	"github.com/XRPL-Labs/xumm-payments/xumm"
)

// Engine is the orchestration surface the handlers drive.
type Engine interface {
	ProcessPayment(ctx context.Context, orderGUID uuid.UUID) (*xummpay.Order, error)
	ProcessRefund(ctx context.Context, orderGUID uuid.UUID, count *int) (*xummpay.Order, error)
	ProcessSettingsPayload(ctx context.Context, identifier string) error
}

type Handler struct {
	engine Engine
	l      *zap.Logger

	// storefront redirect targets for the return-URL callbacks, each
	// taking the order id
	completedURL string
	detailsURL   string
	homeURL      string
}

func NewHandler(engine Engine, completedURL, detailsURL, homeURL string) *Handler {
	return &Handler{
		engine:       engine,
		l:            zap.L().Named("webhook"),
		completedURL: completedURL,
		detailsURL:   detailsURL,
		homeURL:      homeURL,
	}
}

func (h *Handler) Register(e *echo.Echo) {
	e.POST("/webhook/xumm", h.WebhookHandler())
	e.GET("/xumm/payment/:order_guid", h.PaymentCallbackHandler())
	e.GET("/xumm/refund/:order_guid", h.RefundCallbackHandler())
}

// WebhookHandler accepts sign-request resolution notifications. It
// always acknowledges: failures are logged and retried through the
// next delivery or the redirect callback, not through webhook retries
// with a stale body.
func (h *Handler) WebhookHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		var body xumm.WebhookBody
		if err := c.Bind(&body); err != nil {
			h.l.Warn("Failed decode webhook body.", zap.Error(err))
			return c.NoContent(http.StatusBadRequest)
		}
		identifier := body.CustomMeta.Identifier
		if identifier == "" {
			return c.NoContent(http.StatusOK)
		}

		ctx := c.Request().Context()
		orderGUID, kind, count, ok := xummpay.ParsePayloadIdentifier(identifier)
		if !ok {
			// not an order identifier, so it is a settings sign-request
			// (wallet pairing or trust line)
			if err := h.engine.ProcessSettingsPayload(ctx, identifier); err != nil {
				h.l.Warn("Failed process settings payload.",
					zap.String("identifier", identifier),
					zap.Error(err),
				)
			}
			return c.NoContent(http.StatusOK)
		}

		var err error
		switch kind {
		case xummpay.PAYMENT_KIND:
			_, err = h.engine.ProcessPayment(ctx, orderGUID)
		case xummpay.REFUND_KIND:
			_, err = h.engine.ProcessRefund(ctx, orderGUID, &count)
		}
		if err != nil {
			h.l.Warn("Failed process webhook.",
				zap.String("identifier", identifier),
				zap.Error(err),
			)
		}
		return c.NoContent(http.StatusOK)
	}
}

// PaymentCallbackHandler handles the wallet's return URL after a
// payment sign-request and sends the customer back to the storefront.
func (h *Handler) PaymentCallbackHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		orderGUID, err := uuid.Parse(c.Param("order_guid"))
		if err != nil {
			return h.redirect(c, h.homeURL)
		}

		order, err := h.engine.ProcessPayment(c.Request().Context(), orderGUID)
		if err != nil {
			h.l.Warn("Failed process payment callback.",
				zap.String("order_guid", orderGUID.String()),
				zap.Error(err),
			)
			return h.redirect(c, h.homeURL)
		}
		if order.PaymentStatus.Match(xummpay.PAID_PS) {
			return h.redirect(c, fmt.Sprintf(h.completedURL, order.ID))
		}
		return h.redirect(c, fmt.Sprintf(h.detailsURL, order.ID))
	}
}

// RefundCallbackHandler handles the store owner's return URL after a
// refund sign-request. The sequence count is baked into the URL when
// the sign-request is created.
func (h *Handler) RefundCallbackHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		orderGUID, err := uuid.Parse(c.Param("order_guid"))
		if err != nil {
			return h.redirect(c, h.homeURL)
		}

		var count *int
		if raw := c.QueryParam("count"); raw != "" {
			v, err := strconv.Atoi(raw)
			if err != nil {
				return h.redirect(c, h.homeURL)
			}
			count = &v
		}

		order, err := h.engine.ProcessRefund(c.Request().Context(), orderGUID, count)
		if err != nil {
			h.l.Warn("Failed process refund callback.",
				zap.String("order_guid", orderGUID.String()),
				zap.Error(err),
			)
			return h.redirect(c, h.homeURL)
		}
		return h.redirect(c, fmt.Sprintf(h.detailsURL, order.ID))
	}
}

func (h *Handler) redirect(c echo.Context, location string) error {
	c.Response().Header().Set("Location", location)
	c.Response().WriteHeader(http.StatusTemporaryRedirect)
	return nil
}
