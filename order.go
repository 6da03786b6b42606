package xummpay

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order lives in the host store. The orchestrator never owns orders, it
// reads them and requests transitions through OrderProcessingService.
type Order struct {
	ID            int64
	GUID          uuid.UUID
	Total         decimal.Decimal
	PaymentStatus PaymentStatus
}

type PaymentStatus string

func (s PaymentStatus) Match(in PaymentStatus) bool {
	return s == in
}

const (
	PENDING_PS            PaymentStatus = "pending"
	PAID_PS               PaymentStatus = "paid"
	PARTIALLY_REFUNDED_PS PaymentStatus = "partially_refunded"
	REFUNDED_PS           PaymentStatus = "refunded"
	CANCELLED_PS          PaymentStatus = "cancelled"
)

type OrderService interface {
	GetOrderByGUID(ctx context.Context, guid uuid.UUID) (*Order, error)
	InsertOrderNote(ctx context.Context, order *Order, note string, displayToCustomer bool, createdAt time.Time) error
}

type OrderProcessingService interface {
	CanMarkOrderAsPaid(order *Order) bool
	MarkOrderAsPaid(ctx context.Context, order *Order) error

	CanCancelOrder(order *Order) bool
	CancelOrder(ctx context.Context, order *Order, notifyCustomer bool) error

	// PartiallyRefund and FullyRefund return host validation errors.
	// An empty slice means the refund has been applied to the order.
	PartiallyRefund(ctx context.Context, order *Order, amount decimal.Decimal) []string
	FullyRefund(ctx context.Context, order *Order) []string
}

// AttributeService backs the attempt counters and processed sets with the
// host's generic per-entity attribute mechanism.
type AttributeService interface {
	GetInt(ctx context.Context, order *Order, name string) (int, error)
	SetInt(ctx context.Context, order *Order, name string, value int) error
	GetIntList(ctx context.Context, order *Order, name string) ([]int, error)
	SetIntList(ctx context.Context, order *Order, name string, values []int) error
}

// MailService dispatches the refund-approval mail to the store owner.
// Message composition is host-owned.
type MailService interface {
	SendRefundMailToStoreOwner(ctx context.Context, req *RefundPaymentRequest, refundURL string) ([]int64, error)
}

type Notifier interface {
	Success(msg string)
	Warning(msg string)
	Error(msg string)
}

// SettingsStore persists the wallet pairing outcome (account address) and
// the accepted trust line (currency, issuer).
type SettingsStore interface {
	SaveAccount(ctx context.Context, account string) error
	SaveTrustLine(ctx context.Context, currency, issuer string) error
}

// RefundPaymentRequest is the host's standard refund request.
type RefundPaymentRequest struct {
	Order           *Order
	AmountToRefund  decimal.Decimal
	IsPartialRefund bool
}

type RefundPaymentResult struct {
	NewPaymentStatus PaymentStatus
	Errors           []string
}
