package xummpay

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// PayloadKind distinguishes the two families of sign-requests correlated
// to an order.
type PayloadKind int

const (
	UNKNOWN_KIND PayloadKind = 0
	PAYMENT_KIND PayloadKind = 1
	REFUND_KIND  PayloadKind = 2
)

func (k PayloadKind) Valid() bool {
	return k == PAYMENT_KIND || k == REFUND_KIND
}

func (k PayloadKind) String() string {
	switch k {
	case PAYMENT_KIND:
		return "Payment"
	case REFUND_KIND:
		return "Refund"
	}
	return "Unknown"
}

// PayloadIdentifier encodes (order guid, kind, count) into the custom
// identifier attached to a sign-request. The guid is rendered without
// dashes so the delimiter occurs exactly twice in a valid token.
func PayloadIdentifier(orderGUID uuid.UUID, kind PayloadKind, count int) string {
	guid := strings.ReplaceAll(orderGUID.String(), "-", "")
	return fmt.Sprintf("%s-%d-%d", guid, kind, count)
}

// ParsePayloadIdentifier is the inverse of PayloadIdentifier. Malformed or
// foreign tokens return ok=false, never panic. The two trailing integer
// fields are split from the right so the guid body can never swallow a
// delimiter.
func ParsePayloadIdentifier(token string) (orderGUID uuid.UUID, kind PayloadKind, count int, ok bool) {
	last := strings.LastIndex(token, "-")
	if last < 0 {
		return uuid.Nil, UNKNOWN_KIND, 0, false
	}
	count, err := strconv.Atoi(token[last+1:])
	if err != nil || count < 0 {
		return uuid.Nil, UNKNOWN_KIND, 0, false
	}

	rest := token[:last]
	last = strings.LastIndex(rest, "-")
	if last < 0 {
		return uuid.Nil, UNKNOWN_KIND, 0, false
	}
	code, err := strconv.Atoi(rest[last+1:])
	if err != nil {
		return uuid.Nil, UNKNOWN_KIND, 0, false
	}
	kind = PayloadKind(code)
	if !kind.Valid() {
		return uuid.Nil, UNKNOWN_KIND, 0, false
	}

	guid := rest[:last]
	if len(guid) != 32 {
		return uuid.Nil, UNKNOWN_KIND, 0, false
	}
	orderGUID, err = uuid.Parse(guid)
	if err != nil {
		return uuid.Nil, UNKNOWN_KIND, 0, false
	}
	return orderGUID, kind, count, true
}
