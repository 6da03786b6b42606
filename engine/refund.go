package engine

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	xummpay "github.com/XRPL-Labs/xumm-payments"
	"github.com/XRPL-Labs/xumm-payments/xrpl"
	"github.com/XRPL-Labs/xumm-payments/xumm"
)

// refundAmountValue is deliberately generous: with tfPartialPayment set
// SendMax bounds the actual spend, Amount only has to exceed it.
var refundAmountValue = decimal.New(1_000_000, 0)

// CreateRefundRequest submits a refund sign-request against the most
// recent settled payment of the order and returns the wallet-facing URL.
func (e *Engine) CreateRefundRequest(ctx context.Context, req *xummpay.RefundPaymentRequest) (string, error) {
	order := req.Order

	payload, tx, err := e.findSettledPayment(ctx, order)
	if err != nil {
		return "", err
	}

	payer := payload.Response.Account

	deducted := tx.DeductedBalanceChanges(payer)
	if len(deducted) != 1 {
		return "", errors.Wrapf(xummpay.ErrAmbiguousAsset,
			"order %s: payer %s has %d deducted balance changes", order.GUID, payer, len(deducted))
	}
	received := tx.ReceivedBalanceChanges(e.cfg.Account)
	if len(received) != 1 {
		return "", errors.Wrapf(xummpay.ErrAmbiguousAsset,
			"order %s: account %s has %d received balance changes", order.GUID, e.cfg.Account, len(received))
	}

	if req.AmountToRefund.GreaterThan(received[0].Value.Abs()) {
		return "", errors.Wrapf(xummpay.ErrRefundTooHigh,
			"order %s: requested %s, received %s", order.GUID, req.AmountToRefund, received[0].Value.Abs())
	}

	refundTx := e.newPaymentTx(payer, e.cfg.RefundDestinationTag)
	refundTx.Flags = tfPartialPayment

	amount := changeAmount(deducted[0], refundAmountValue)
	sendMax := changeAmount(received[0], req.AmountToRefund)
	refundTx.Amount = &amount
	refundTx.SendMax = &sendMax

	if !deducted[0].SameAsset(received[0]) {
		// the payer paid in a different asset than the merchant
		// received, the refund has to be routed back across the books
		spec, found, err := e.ledger.FindPath(ctx, e.cfg.Account, payer, amount, sendMax)
		if err != nil {
			return "", err
		}
		if !found {
			return "", errors.Wrapf(xummpay.ErrNoPathFound,
				"order %s: no path from %s to %s", order.GUID, e.cfg.Account, payer)
		}
		refundTx.Paths = spec.Paths
	}

	txjson, err := refundTx.JSON()
	if err != nil {
		return "", errors.Wrap(err, "Failed marshal refund transaction")
	}

	count, err := e.attemptCount(ctx, order, xummpay.REFUND_KIND, true)
	if err != nil {
		return "", err
	}

	identifier := xummpay.PayloadIdentifier(order.GUID, xummpay.REFUND_KIND, count)
	created, err := e.sign.CreatePayload(ctx, &xumm.CreatePayloadRequest{
		TxJSON: txjson,
		Options: &xumm.PayloadOptions{
			ReturnURL: &xumm.PayloadReturnURL{Web: e.cfg.refundReturnURL(order.GUID, count)},
		},
		CustomMeta: &xumm.PayloadCustomMeta{
			Identifier:  identifier,
			Instruction: e.cfg.RefundInstruction,
		},
	})
	if err != nil {
		return "", errors.Wrap(err, "Failed create refund payload")
	}

	e.journalRecord(ctx, identifier, order, xummpay.REFUND_KIND, count)
	mPayloadsCreated.WithLabelValues(xummpay.REFUND_KIND.String()).Inc()
	e.l.Info("Created refund sign request.",
		zap.String("order_guid", order.GUID.String()),
		zap.Int("count", count),
	)
	return created.Next.Always, nil
}

// findSettledPayment scans backward from the current payment counter
// for an attempt that was signed and whose transaction settled with a
// success result. Attempts that never settled are skipped.
func (e *Engine) findSettledPayment(ctx context.Context, order *xummpay.Order) (*xumm.Payload, *xumm.Transaction, error) {
	count, err := e.attemptCount(ctx, order, xummpay.PAYMENT_KIND, false)
	if err != nil {
		return nil, nil, err
	}

	for ; count >= 1; count-- {
		identifier := xummpay.PayloadIdentifier(order.GUID, xummpay.PAYMENT_KIND, count)
		payload, err := e.sign.GetPayloadByIdentifier(ctx, identifier)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "Failed get payload %s", identifier)
		}
		if !xumm.ResolveStatus(payload).Settled() {
			continue
		}
		ok, tx, err := e.hasSuccessTransaction(ctx, order, payload.Response.Txid)
		if err != nil {
			return nil, nil, err
		}
		if ok {
			return payload, tx, nil
		}
	}
	return nil, nil, errors.Wrapf(xummpay.ErrNoSignedPayment, "order %s", order.GUID)
}

func changeAmount(change xumm.BalanceChange, value decimal.Decimal) xrpl.Amount {
	if change.CounterParty == "" {
		return xrpl.NewAmount(value)
	}
	return xrpl.NewIssuedAmount(change.Currency, change.CounterParty, value)
}

// ProcessRefund applies the outcome of a refund sign-request exactly
// once. When count is nil the current refund counter is used, redirect
// callbacks pass the count baked into their return URL.
func (e *Engine) ProcessRefund(ctx context.Context, orderGUID uuid.UUID, count *int) (*xummpay.Order, error) {
	release, err := e.locks.Lock(ctx, orderGUID.String())
	if err != nil {
		return nil, err
	}
	defer release()

	order, err := e.orders.GetOrderByGUID(ctx, orderGUID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.Wrapf(xummpay.ErrOrderNotFound, "order %s", orderGUID)
	}

	var c int
	if count != nil {
		c = *count
	} else {
		c, err = e.attemptCount(ctx, order, xummpay.REFUND_KIND, false)
		if err != nil {
			return nil, err
		}
	}

	processed, err := e.isProcessed(ctx, order, xummpay.REFUND_KIND, c)
	if err != nil {
		return nil, err
	}
	if processed {
		return order, nil
	}

	identifier := xummpay.PayloadIdentifier(order.GUID, xummpay.REFUND_KIND, c)
	payload, status, err := e.resolvePayload(ctx, identifier)
	if err != nil {
		return nil, err
	}

	e.insertOrderNote(ctx, order, fmt.Sprintf("%s: %s (#%d)", xummpay.REFUND_KIND, status, c))
	e.journalStatus(ctx, identifier, status)

	setAsProcessed := true
	if status.Settled() {
		ok, tx, err := e.hasSuccessTransaction(ctx, order, payload.Response.Txid)
		if err != nil {
			return nil, err
		}
		if ok {
			// what the merchant's account actually paid out, not what
			// the sign-request asked for
			amount := tx.SumDeducted(payload.Response.Account)

			// stash it so the host's standard refund validation in
			// ProcessRefundPaymentRequest accepts this amount
			e.refunds.Add(order.GUID.String(), amount)

			// partial refund is safe for full amounts too, the host
			// checks against the order total
			hostErrs := e.processing.PartiallyRefund(ctx, order, amount)
			for _, msg := range hostErrs {
				e.notify.Error(msg)
			}
			// leave the counter unprocessed so a retry can succeed
			// once the host-side validation issue is resolved
			setAsProcessed = len(hostErrs) == 0
		}
	}

	if setAsProcessed {
		if err := e.markProcessed(ctx, order, xummpay.REFUND_KIND, c); err != nil {
			return nil, err
		}
	}

	mPayloadsProcessed.WithLabelValues(xummpay.REFUND_KIND.String(), string(status)).Inc()
	e.publishUpdate(order, xummpay.REFUND_KIND, c, status)
	return order, nil
}

// ProcessRefundPaymentRequest is the host-facing refund entry point. An
// amount already accepted through a settled refund sign-request turns
// into a synchronous success; anything else kicks off the asynchronous
// approval flow by mailing the store owner a sign URL.
func (e *Engine) ProcessRefundPaymentRequest(ctx context.Context, req *xummpay.RefundPaymentRequest) (*xummpay.RefundPaymentResult, error) {
	if e.refunds.Contains(req.Order.GUID.String(), req.AmountToRefund) {
		status := xummpay.REFUNDED_PS
		if !req.AmountToRefund.Equal(req.Order.Total) {
			status = xummpay.PARTIALLY_REFUNDED_PS
		}
		return &xummpay.RefundPaymentResult{NewPaymentStatus: status}, nil
	}

	refundURL, err := e.CreateRefundRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	messageIDs, err := e.mail.SendRefundMailToStoreOwner(ctx, req, refundURL)
	if err != nil {
		return nil, errors.Wrap(err, "Failed send refund mail")
	}

	return &xummpay.RefundPaymentResult{
		Errors: []string{fmt.Sprintf("A refund approval mail has been sent to the store owner (messages %v).", messageIDs)},
	}, nil
}
