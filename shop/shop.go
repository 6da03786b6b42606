package shop

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gopkg.in/reform.v1"

	xummpay "github.com/XRPL-Labs/xumm-payments"
)

type Shop struct {
	DB *reform.DB
	l  *zap.Logger

	// OwnerMail receives the refund-approval mails.
	OwnerMail string
}

func New(db *reform.DB, ownerMail string) *Shop {
	return &Shop{
		DB:        db,
		l:         zap.L().Named("shop"),
		OwnerMail: ownerMail,
	}
}

var (
	_ xummpay.OrderService           = (*Shop)(nil)
	_ xummpay.OrderProcessingService = (*Shop)(nil)
	_ xummpay.MailService            = (*Shop)(nil)
	_ xummpay.SettingsStore          = (*Shop)(nil)
)

// CreateOrder provisions a pending order, mostly for integrations and
// tests that do not already have one.
func (s *Shop) CreateOrder(ctx context.Context, guid uuid.UUID, total decimal.Decimal) (*xummpay.Order, error) {
	row := &Order{GUID: guid.String(), Total: total}
	if err := s.DB.WithContext(ctx).Insert(row); err != nil {
		return nil, errors.Wrap(err, "Failed insert order")
	}
	return row.toDomain(), nil
}

func (s *Shop) GetOrderByGUID(ctx context.Context, guid uuid.UUID) (*xummpay.Order, error) {
	var row Order
	err := s.DB.WithContext(ctx).SelectOneTo(&row, "WHERE order_guid = $1", guid.String())
	if err == reform.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "Failed get order")
	}
	return row.toDomain(), nil
}

func (s *Shop) InsertOrderNote(ctx context.Context, order *xummpay.Order, note string, displayToCustomer bool, createdAt time.Time) error {
	return s.DB.WithContext(ctx).Insert(&OrderNote{
		OrderID:           order.ID,
		Note:              note,
		DisplayToCustomer: displayToCustomer,
		CreatedAt:         createdAt,
	})
}

func (s *Shop) CanMarkOrderAsPaid(order *xummpay.Order) bool {
	return order.PaymentStatus.Match(xummpay.PENDING_PS)
}

func (s *Shop) MarkOrderAsPaid(ctx context.Context, order *xummpay.Order) error {
	return s.setPaymentStatus(ctx, order, xummpay.PAID_PS)
}

func (s *Shop) setPaymentStatus(ctx context.Context, order *xummpay.Order, status xummpay.PaymentStatus) error {
	row := &Order{ID: order.ID}
	if err := s.DB.WithContext(ctx).Reload(row); err != nil {
		return errors.Wrapf(err, "Failed reload order %d", order.ID)
	}
	row.PaymentStatus = status
	if err := s.DB.WithContext(ctx).Save(row); err != nil {
		return errors.Wrapf(err, "Failed update order %d status", order.ID)
	}
	order.PaymentStatus = status
	return nil
}

func (s *Shop) CanCancelOrder(order *xummpay.Order) bool {
	return order.PaymentStatus.Match(xummpay.PENDING_PS)
}

func (s *Shop) CancelOrder(ctx context.Context, order *xummpay.Order, notifyCustomer bool) error {
	if err := s.setPaymentStatus(ctx, order, xummpay.CANCELLED_PS); err != nil {
		return err
	}
	if notifyCustomer {
		return s.InsertOrderNote(ctx, order, "Your order has been cancelled.", true, time.Now().UTC())
	}
	return nil
}

// PartiallyRefund validates and applies a refund amount. Host
// validation failures come back as messages, not errors, so the caller
// can keep the sequence retryable.
func (s *Shop) PartiallyRefund(ctx context.Context, order *xummpay.Order, amount decimal.Decimal) []string {
	row := &Order{ID: order.ID}
	if err := s.DB.WithContext(ctx).Reload(row); err != nil {
		return []string{fmt.Sprintf("order %d: %v", order.ID, err)}
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return []string{"refund amount must be positive"}
	}
	remaining := row.Total.Sub(row.RefundedTotal)
	if amount.GreaterThan(remaining) {
		return []string{fmt.Sprintf("refund amount %s exceeds the remaining order total %s", amount, remaining)}
	}

	row.RefundedTotal = row.RefundedTotal.Add(amount)
	if row.RefundedTotal.Equal(row.Total) {
		row.PaymentStatus = xummpay.REFUNDED_PS
	} else {
		row.PaymentStatus = xummpay.PARTIALLY_REFUNDED_PS
	}
	if err := s.DB.WithContext(ctx).Save(row); err != nil {
		return []string{fmt.Sprintf("order %d: %v", order.ID, err)}
	}
	order.PaymentStatus = row.PaymentStatus
	return nil
}

func (s *Shop) FullyRefund(ctx context.Context, order *xummpay.Order) []string {
	row := &Order{ID: order.ID}
	if err := s.DB.WithContext(ctx).Reload(row); err != nil {
		return []string{fmt.Sprintf("order %d: %v", order.ID, err)}
	}
	return s.PartiallyRefund(ctx, order, row.Total.Sub(row.RefundedTotal))
}

// SendRefundMailToStoreOwner queues the refund-approval mail and
// returns the queued message ids.
func (s *Shop) SendRefundMailToStoreOwner(ctx context.Context, req *xummpay.RefundPaymentRequest, refundURL string) ([]int64, error) {
	mail := &QueuedMail{
		Recipient: s.OwnerMail,
		Subject:   fmt.Sprintf("Refund approval needed for order %d", req.Order.ID),
		Body: fmt.Sprintf("A refund of %s was requested for order %d. Sign it in your wallet: %s",
			req.AmountToRefund, req.Order.ID, refundURL),
	}
	if err := s.DB.WithContext(ctx).Insert(mail); err != nil {
		return nil, errors.Wrap(err, "Failed queue refund mail")
	}
	return []int64{mail.ID}, nil
}

const (
	settingAccount           = "xumm.account"
	settingTrustLineCurrency = "xumm.trustline.currency"
	settingTrustLineIssuer   = "xumm.trustline.issuer"
)

func (s *Shop) SaveAccount(ctx context.Context, account string) error {
	return s.saveSetting(ctx, settingAccount, account)
}

func (s *Shop) SaveTrustLine(ctx context.Context, currency, issuer string) error {
	if err := s.saveSetting(ctx, settingTrustLineCurrency, currency); err != nil {
		return err
	}
	return s.saveSetting(ctx, settingTrustLineIssuer, issuer)
}

func (s *Shop) saveSetting(ctx context.Context, name, value string) error {
	q := s.DB.WithContext(ctx)
	row := &Setting{Name: name}
	err := q.Reload(row)
	if err == reform.ErrNoRows {
		return q.Insert(&Setting{Name: name, Value: value})
	}
	if err != nil {
		return errors.Wrapf(err, "Failed get setting %q", name)
	}
	row.Value = value
	return q.Save(row)
}

func (o *Order) toDomain() *xummpay.Order {
	guid, _ := uuid.Parse(o.GUID)
	return &xummpay.Order{
		ID:            o.ID,
		GUID:          guid,
		Total:         o.Total,
		PaymentStatus: o.PaymentStatus,
	}
}
