package engine

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	xummpay "github.com/XRPL-Labs/xumm-payments"
	"github.com/XRPL-Labs/xumm-payments/xrpl"
	"github.com/XRPL-Labs/xumm-payments/xumm"
)

// CreatePaymentRequest submits a payment sign-request for the order and
// returns the wallet-facing URL the customer is redirected to.
func (e *Engine) CreatePaymentRequest(ctx context.Context, order *xummpay.Order) (string, error) {
	tx := e.newPaymentTx(e.cfg.Account, e.cfg.DestinationTag)
	amount := e.requestedAmount(order)
	tx.Amount = &amount

	txjson, err := tx.JSON()
	if err != nil {
		return "", errors.Wrap(err, "Failed marshal payment transaction")
	}

	// persisted before the network call so a crash after submission
	// cannot be confused with a not-yet-attempted state
	count, err := e.attemptCount(ctx, order, xummpay.PAYMENT_KIND, true)
	if err != nil {
		return "", err
	}

	identifier := xummpay.PayloadIdentifier(order.GUID, xummpay.PAYMENT_KIND, count)
	created, err := e.sign.CreatePayload(ctx, &xumm.CreatePayloadRequest{
		TxJSON: txjson,
		Options: &xumm.PayloadOptions{
			ReturnURL: &xumm.PayloadReturnURL{Web: e.cfg.paymentReturnURL(order.GUID)},
		},
		CustomMeta: &xumm.PayloadCustomMeta{
			Identifier:  identifier,
			Instruction: e.cfg.PaymentInstruction,
		},
	})
	if err != nil {
		return "", errors.Wrap(err, "Failed create payment payload")
	}

	e.journalRecord(ctx, identifier, order, xummpay.PAYMENT_KIND, count)
	mPayloadsCreated.WithLabelValues(xummpay.PAYMENT_KIND.String()).Inc()
	e.l.Info("Created payment sign request.",
		zap.String("order_guid", order.GUID.String()),
		zap.Int("count", count),
	)
	return created.Next.Always, nil
}

// requestedAmount builds the order total in the configured asset.
func (e *Engine) requestedAmount(order *xummpay.Order) xrpl.Amount {
	if e.cfg.Currency == xrpl.XRP {
		return xrpl.NewAmount(order.Total)
	}
	return xrpl.NewIssuedAmount(e.cfg.Currency, e.cfg.Issuer, order.Total)
}

// ProcessPayment applies the outcome of the order's latest payment
// sign-request exactly once. A redirect callback and a webhook racing
// for the same event serialize on the per-order lock, and the loser
// short-circuits on the processed set.
func (e *Engine) ProcessPayment(ctx context.Context, orderGUID uuid.UUID) (*xummpay.Order, error) {
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

	count, err := e.attemptCount(ctx, order, xummpay.PAYMENT_KIND, false)
	if err != nil {
		return nil, err
	}
	processed, err := e.isProcessed(ctx, order, xummpay.PAYMENT_KIND, count)
	if err != nil {
		return nil, err
	}
	if processed {
		return order, nil
	}

	identifier := xummpay.PayloadIdentifier(order.GUID, xummpay.PAYMENT_KIND, count)
	payload, status, err := e.resolvePayload(ctx, identifier)
	if err != nil {
		return nil, err
	}

	e.insertOrderNote(ctx, order, fmt.Sprintf("%s: %s (#%d)", xummpay.PAYMENT_KIND, status, count))
	e.journalStatus(ctx, identifier, status)

	switch status {
	case xumm.SIGNED_PS, xumm.EXPIRED_SIGNED_PS:
		err = e.markOrderAsPaid(ctx, order, payload.Response.Txid)
	case xumm.REJECTED_PS:
		err = e.cancelOrder(ctx, order)
	case xumm.NOT_FOUND_PS:
		if e.cfg.CancelOnNotFound {
			err = e.cancelOrder(ctx, order)
		}
	case xumm.NOT_INTERACTED_PS:
		if e.cfg.CancelOnNotInteracted {
			err = e.cancelOrder(ctx, order)
		}
	}
	if err != nil {
		return nil, err
	}

	// processed means "never reconsidered", even for outcomes with no
	// side effect
	if err := e.markProcessed(ctx, order, xummpay.PAYMENT_KIND, count); err != nil {
		return nil, err
	}

	mPayloadsProcessed.WithLabelValues(xummpay.PAYMENT_KIND.String(), string(status)).Inc()
	e.publishUpdate(order, xummpay.PAYMENT_KIND, count, status)
	return order, nil
}

// resolvePayload fetches a sign-request and classifies it, rejecting
// payloads whose transaction type says something else reused the
// identifier.
func (e *Engine) resolvePayload(ctx context.Context, identifier string) (*xumm.Payload, xumm.PayloadStatus, error) {
	payload, err := e.sign.GetPayloadByIdentifier(ctx, identifier)
	if err != nil {
		return nil, "", errors.Wrapf(err, "Failed get payload %s", identifier)
	}
	status := xumm.ResolveStatus(payload)
	if status != xumm.NOT_FOUND_PS && payload.Payload.TxType != xumm.TxTypePayment {
		return nil, "", errors.Wrapf(xummpay.ErrUnexpectedTxType,
			"payload %s has transaction type %s", identifier, payload.Payload.TxType)
	}
	return payload, status, nil
}

func (e *Engine) markOrderAsPaid(ctx context.Context, order *xummpay.Order, txid string) error {
	if !e.processing.CanMarkOrderAsPaid(order) {
		return nil
	}
	ok, _, err := e.hasSuccessTransaction(ctx, order, txid)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	// the winner of the webhook/redirect race may have paid the order
	// while the transaction lookup was in flight
	if !e.processing.CanMarkOrderAsPaid(order) {
		return nil
	}
	return e.processing.MarkOrderAsPaid(ctx, order)
}

// hasSuccessTransaction checks the referenced ledger transaction landed
// with a success result code, noting the outcome on the order.
func (e *Engine) hasSuccessTransaction(ctx context.Context, order *xummpay.Order, txid string) (bool, *xumm.Transaction, error) {
	tx, err := e.sign.GetTransaction(ctx, txid)
	if err != nil {
		return false, nil, errors.Wrapf(err, "Failed get transaction %s", txid)
	}
	if tx == nil {
		e.insertOrderNote(ctx, order, fmt.Sprintf("Unable to fetch transaction with hash %q.", txid))
		return false, nil, nil
	}
	result, ok := tx.Result()
	if !ok {
		e.insertOrderNote(ctx, order, fmt.Sprintf("Unable to get 'meta.TransactionResult' of transaction with hash %q.", txid))
		return false, tx, nil
	}
	if tx.Succeeded() {
		e.insertOrderNote(ctx, order, fmt.Sprintf("Transaction %s succeeded with result %s.", txid, result))
		return true, tx, nil
	}
	e.insertOrderNote(ctx, order, fmt.Sprintf("Transaction %s failed with result %s.", txid, result))
	return false, tx, nil
}

func (e *Engine) cancelOrder(ctx context.Context, order *xummpay.Order) error {
	if !e.processing.CanCancelOrder(order) {
		return nil
	}
	return e.processing.CancelOrder(ctx, order, true)
}
