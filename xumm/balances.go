package xumm

import "github.com/shopspring/decimal"

// xrpCurrency is the native asset code in balance change reports.
const xrpCurrency = "XRP"

// SameAsset reports whether two balance changes refer to the same
// asset. Absent counterparties on both sides mean the native asset.
func (b BalanceChange) SameAsset(other BalanceChange) bool {
	if b.CounterParty == "" && other.CounterParty == "" {
		return true
	}
	if b.CounterParty != other.CounterParty {
		return false
	}
	return b.Currency == other.Currency
}

// DeductedBalanceChanges returns the changes where the account paid out.
func (t *Transaction) DeductedBalanceChanges(account string) []BalanceChange {
	return t.balanceChanges(account, true)
}

// ReceivedBalanceChanges returns the changes where the account was paid.
func (t *Transaction) ReceivedBalanceChanges(account string) []BalanceChange {
	return t.balanceChanges(account, false)
}

func (t *Transaction) balanceChanges(account string, deducted bool) []BalanceChange {
	var unfiltered []BalanceChange
	for _, change := range t.BalanceChanges[account] {
		if change.Value.IsNegative() == deducted {
			unfiltered = append(unfiltered, change)
		}
	}

	// drop XRP entries when XRP only covered the network fee
	var filtered []BalanceChange
	for _, change := range unfiltered {
		if change.Currency != xrpCurrency && change.CounterParty != "" {
			filtered = append(filtered, change)
		}
	}
	if len(filtered) != 0 {
		return filtered
	}
	return unfiltered
}

// SumDeducted adds up the absolute values paid out by the account.
func (t *Transaction) SumDeducted(account string) decimal.Decimal {
	sum := decimal.Zero
	for _, change := range t.DeductedBalanceChanges(account) {
		sum = sum.Add(change.Value.Abs())
	}
	return sum
}
