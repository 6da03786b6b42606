// Package updates broadcasts order processing outcomes over NATS so
// storefront frontends can react without polling.
package updates

import (
	"fmt"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

type Update struct {
	OrderGUID        string `json:"order_guid"`
	Kind             string `json:"kind"`
	Count            int    `json:"count"`
	PayloadStatus    string `json:"payload_status"`
	NewPaymentStatus string `json:"new_payment_status,omitempty"`
}

func SubjectFromOrder(orderGUID string) string {
	return fmt.Sprintf("order.%s.updates", orderGUID)
}

type Publisher struct {
	nc *nats.EncodedConn
	l  *zap.Logger
}

// NewPublisher wraps an encoded NATS connection. A nil connection
// yields a publisher that drops everything, useful in tests and when
// running without a broker.
func NewPublisher(nc *nats.EncodedConn) *Publisher {
	return &Publisher{
		nc: nc,
		l:  zap.L().Named("updates"),
	}
}

func (p *Publisher) OrderUpdated(u *Update) {
	if p == nil || p.nc == nil {
		return
	}
	if err := p.nc.Publish(SubjectFromOrder(u.OrderGUID), u); err != nil {
		p.l.Warn("Failed publish order update.",
			zap.String("order_guid", u.OrderGUID),
			zap.Error(err),
		)
	}
}
