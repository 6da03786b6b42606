package xummpay

import "errors"

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrNoSignedPayment  = errors.New("no signed payment payload")
	ErrRefundTooHigh    = errors.New("refund amount exceeds received amount")
	ErrAmbiguousAsset   = errors.New("ambiguous balance changes")
	ErrNoPathFound      = errors.New("no payment path found")
	ErrUnexpectedTxType = errors.New("unexpected transaction type")
)
