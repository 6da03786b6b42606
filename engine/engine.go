// Package engine drives order payment and refund sign-requests from
// creation through exactly-once processing of their outcomes.
package engine

import (
	"context"
	"time"

	"go.uber.org/zap"

	xummpay "github.com/XRPL-Labs/xumm-payments"
	"github.com/XRPL-Labs/xumm-payments/keylock"
	"github.com/XRPL-Labs/xumm-payments/updates"
	"github.com/XRPL-Labs/xumm-payments/xrpl"
	"github.com/XRPL-Labs/xumm-payments/xumm"
)

// SignClient is the signing network surface the engine needs.
type SignClient interface {
	Ping(ctx context.Context) (bool, error)
	CreatePayload(ctx context.Context, in *xumm.CreatePayloadRequest) (*xumm.CreatedPayload, error)
	GetPayloadByIdentifier(ctx context.Context, identifier string) (*xumm.Payload, error)
	GetTransaction(ctx context.Context, txid string) (*xumm.Transaction, error)
}

// LedgerClient is the ledger network surface the engine needs.
type LedgerClient interface {
	ListTrustLines(ctx context.Context, account string) ([]xrpl.TrustLine, error)
	FindPath(ctx context.Context, source, destination string, destAmount, sendMax xrpl.Amount) (*xrpl.PathSpec, bool, error)
}

// Journal records submitted sign-requests and their latest observed
// resolution. Optional, a nil journal is skipped.
type Journal interface {
	RecordSignRequest(ctx context.Context, identifier string, orderGUID string, kind string, count int) error
	SetSignRequestStatus(ctx context.Context, identifier string, rawStatus string) error
}

type Engine struct {
	cfg Config

	sign       SignClient
	ledger     LedgerClient
	orders     xummpay.OrderService
	processing xummpay.OrderProcessingService
	attrs      xummpay.AttributeService
	mail       xummpay.MailService
	notify     xummpay.Notifier
	settings   xummpay.SettingsStore
	journal    Journal
	updates    *updates.Publisher

	locks   *keylock.KeyLock
	refunds *refundAmounts

	l *zap.Logger
}

type Deps struct {
	Sign       SignClient
	Ledger     LedgerClient
	Orders     xummpay.OrderService
	Processing xummpay.OrderProcessingService
	Attrs      xummpay.AttributeService
	Mail       xummpay.MailService
	Notify     xummpay.Notifier
	Settings   xummpay.SettingsStore
	Journal    Journal
	Updates    *updates.Publisher
}

func NewEngine(cfg Config, deps Deps) *Engine {
	return &Engine{
		cfg:        cfg,
		sign:       deps.Sign,
		ledger:     deps.Ledger,
		orders:     deps.Orders,
		processing: deps.Processing,
		attrs:      deps.Attrs,
		mail:       deps.Mail,
		notify:     deps.Notify,
		settings:   deps.Settings,
		journal:    deps.Journal,
		updates:    deps.Updates,
		locks:      keylock.New(),
		refunds:    newRefundAmounts(),
		l:          zap.L().Named("engine"),
	}
}

// Ping verifies the configured signing network credentials.
func (e *Engine) Ping(ctx context.Context) (bool, error) {
	pong, err := e.sign.Ping(ctx)
	if err != nil {
		e.l.Warn("Failed to retrieve pong with provided credentials.", zap.Error(err))
		return false, err
	}
	return pong, nil
}

func (e *Engine) insertOrderNote(ctx context.Context, order *xummpay.Order, note string) {
	if err := e.orders.InsertOrderNote(ctx, order, note, false, time.Now().UTC()); err != nil {
		e.l.Warn("Failed insert order note.",
			zap.String("order_guid", order.GUID.String()),
			zap.Error(err),
		)
	}
}

func (e *Engine) journalRecord(ctx context.Context, identifier string, order *xummpay.Order, kind xummpay.PayloadKind, count int) {
	if e.journal == nil {
		return
	}
	if err := e.journal.RecordSignRequest(ctx, identifier, order.GUID.String(), kind.String(), count); err != nil {
		e.l.Warn("Failed journal sign request.", zap.String("identifier", identifier), zap.Error(err))
	}
}

func (e *Engine) journalStatus(ctx context.Context, identifier string, status xumm.PayloadStatus) {
	if e.journal == nil {
		return
	}
	if err := e.journal.SetSignRequestStatus(ctx, identifier, string(status)); err != nil {
		e.l.Warn("Failed journal sign request status.", zap.String("identifier", identifier), zap.Error(err))
	}
}

func (e *Engine) publishUpdate(order *xummpay.Order, kind xummpay.PayloadKind, count int, status xumm.PayloadStatus) {
	e.updates.OrderUpdated(&updates.Update{
		OrderGUID:        order.GUID.String(),
		Kind:             kind.String(),
		Count:            count,
		PayloadStatus:    string(status),
		NewPaymentStatus: string(order.PaymentStatus),
	})
}
