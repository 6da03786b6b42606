package engine

import (
	"context"
	"fmt"

	xummpay "github.com/XRPL-Labs/xumm-payments"
)

// Attribute names follow the host's generic attribute convention, one
// counter and one processed set per payload kind.
func countAttributeName(kind xummpay.PayloadKind) string {
	return fmt.Sprintf("XummOrder%sPayloadCount", kind)
}

func processedAttributeName(kind xummpay.PayloadKind) string {
	return fmt.Sprintf("XummOrder%sPayloadCountProcessed", kind)
}

// attemptCount returns the current sequence counter for (order, kind).
// With increment set, the new value is persisted before it is returned
// so a crash after submission never looks like a missing attempt.
func (e *Engine) attemptCount(ctx context.Context, order *xummpay.Order, kind xummpay.PayloadKind, increment bool) (int, error) {
	count, err := e.attrs.GetInt(ctx, order, countAttributeName(kind))
	if err != nil {
		return 0, err
	}
	if increment {
		count++
		if err := e.attrs.SetInt(ctx, order, countAttributeName(kind), count); err != nil {
			return 0, err
		}
	}
	return count, nil
}

func (e *Engine) isProcessed(ctx context.Context, order *xummpay.Order, kind xummpay.PayloadKind, count int) (bool, error) {
	processed, err := e.attrs.GetIntList(ctx, order, processedAttributeName(kind))
	if err != nil {
		return false, err
	}
	for _, c := range processed {
		if c == count {
			return true, nil
		}
	}
	return false, nil
}

// markProcessed adds count to the processed set of (order, kind). The
// set means "this sequence number will never be reconsidered", not
// "this sequence number succeeded".
func (e *Engine) markProcessed(ctx context.Context, order *xummpay.Order, kind xummpay.PayloadKind, count int) error {
	processed, err := e.attrs.GetIntList(ctx, order, processedAttributeName(kind))
	if err != nil {
		return err
	}
	for _, c := range processed {
		if c == count {
			return nil
		}
	}
	return e.attrs.SetIntList(ctx, order, processedAttributeName(kind), append(processed, count))
}
