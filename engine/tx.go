package engine

import (
	"encoding/json"
	"strconv"

	"github.com/XRPL-Labs/xumm-payments/xrpl"
)

// tfPartialPayment lets a routed refund deliver less than Amount, with
// SendMax bounding what the merchant actually spends.
const tfPartialPayment uint32 = 0x00020000

// trustSetLimit is the default limit requested when establishing a
// trust line for the configured currency.
const trustSetLimit = "1000000000"

type paymentTx struct {
	TransactionType string          `json:"TransactionType"`
	Destination     string          `json:"Destination,omitempty"`
	DestinationTag  uint32          `json:"DestinationTag,omitempty"`
	Fee             string          `json:"Fee,omitempty"`
	Flags           uint32          `json:"Flags,omitempty"`
	Amount          *xrpl.Amount    `json:"Amount,omitempty"`
	SendMax         *xrpl.Amount    `json:"SendMax,omitempty"`
	Paths           json.RawMessage `json:"Paths,omitempty"`
}

type trustSetTx struct {
	TransactionType string      `json:"TransactionType"`
	Fee             string      `json:"Fee,omitempty"`
	LimitAmount     xrpl.Amount `json:"LimitAmount"`
}

type signInTx struct {
	TransactionType string `json:"TransactionType"`
}

func (e *Engine) newPaymentTx(destination string, destinationTag uint32) *paymentTx {
	return &paymentTx{
		TransactionType: "Payment",
		Destination:     destination,
		DestinationTag:  destinationTag,
		Fee:             strconv.FormatInt(e.cfg.Fee, 10),
	}
}

func (tx *paymentTx) JSON() (json.RawMessage, error) {
	return json.Marshal(tx)
}
