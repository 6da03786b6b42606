package engine

import (
	"sync"

	"github.com/shopspring/decimal"
)

// refundAmounts caches the amounts of settled refund sign-requests per
// order, so the host's standard refund validation can accept them.
type refundAmounts struct {
	mu sync.Mutex
	m  map[string][]decimal.Decimal
}

func newRefundAmounts() *refundAmounts {
	return &refundAmounts{m: make(map[string][]decimal.Decimal)}
}

func (r *refundAmounts) Add(orderGUID string, amount decimal.Decimal) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.m[orderGUID] {
		if a.Equal(amount) {
			return
		}
	}
	r.m[orderGUID] = append(r.m[orderGUID], amount)
}

func (r *refundAmounts) Contains(orderGUID string, amount decimal.Decimal) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.m[orderGUID] {
		if a.Equal(amount) {
			return true
		}
	}
	return false
}
