// Package shop is a Postgres-backed host store implementation: orders,
// order notes, the refund-approval mail queue and the payment method
// settings. Storefronts with their own persistence implement the root
// contracts directly instead.
package shop

import (
	"time"

	"github.com/shopspring/decimal"

	xummpay "github.com/XRPL-Labs/xumm-payments"
)

//go:generate reform

//reform:shop.orders
type Order struct {
	ID            int64                 `reform:"id,pk"`
	GUID          string                `reform:"order_guid"`
	Total         decimal.Decimal       `reform:"total"`
	RefundedTotal decimal.Decimal       `reform:"refunded_total"`
	PaymentStatus xummpay.PaymentStatus `reform:"payment_status"`
	CreatedAt     time.Time             `reform:"created_at"`
	UpdatedAt     time.Time             `reform:"updated_at"`
}

func (o *Order) BeforeInsert() error {
	o.UpdatedAt = time.Now()
	o.CreatedAt = time.Now()
	if o.PaymentStatus == "" {
		o.PaymentStatus = xummpay.PENDING_PS
	}
	return nil
}

func (o *Order) BeforeUpdate() error {
	o.UpdatedAt = time.Now()
	return nil
}

//reform:shop.order_notes
type OrderNote struct {
	ID                int64     `reform:"id,pk"`
	OrderID           int64     `reform:"order_id"`
	Note              string    `reform:"note"`
	DisplayToCustomer bool      `reform:"display_to_customer"`
	CreatedAt         time.Time `reform:"created_at"`
}

//reform:shop.mail_queue
type QueuedMail struct {
	ID        int64     `reform:"id,pk"`
	Recipient string    `reform:"recipient"`
	Subject   string    `reform:"subject"`
	Body      string    `reform:"body"`
	CreatedAt time.Time `reform:"created_at"`
}

func (m *QueuedMail) BeforeInsert() error {
	m.CreatedAt = time.Now()
	return nil
}

//reform:shop.settings
type Setting struct {
	Name      string    `reform:"name,pk"`
	Value     string    `reform:"value"`
	UpdatedAt time.Time `reform:"updated_at"`
}

func (s *Setting) BeforeInsert() error {
	s.UpdatedAt = time.Now()
	return nil
}

func (s *Setting) BeforeUpdate() error {
	s.UpdatedAt = time.Now()
	return nil
}
