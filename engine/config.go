package engine

import (
	"fmt"

	"github.com/google/uuid"
)

// Config carries the merchant-side settings of the payment method.
type Config struct {
	// Account is the merchant's ledger address receiving payments and
	// funding refunds.
	Account string

	// Currency and Issuer select the asset payments are requested in.
	// Currency "XRP" means the native asset and needs no issuer.
	Currency string
	Issuer   string

	DestinationTag       uint32
	RefundDestinationTag uint32

	// Fee in drops attached to built transactions.
	Fee int64

	// Return URL templates. The order GUID is substituted in, and for
	// refunds the sequence count as well.
	PaymentReturnURL string
	RefundReturnURL  string

	PaymentInstruction string
	RefundInstruction  string

	// Cancellation policy for sign-requests the user never completed.
	// The source history flip-flopped on these, so they are explicit.
	CancelOnNotFound      bool
	CancelOnNotInteracted bool
}

func (c Config) paymentReturnURL(orderGUID uuid.UUID) string {
	return fmt.Sprintf(c.PaymentReturnURL, orderGUID.String())
}

func (c Config) refundReturnURL(orderGUID uuid.UUID, count int) string {
	return fmt.Sprintf(c.RefundReturnURL, orderGUID.String(), count)
}
