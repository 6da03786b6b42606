package xumm

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestBalanceChanges_FeeOnlyXRPIsFiltered(t *testing.T) {
	tx := &Transaction{BalanceChanges: map[string][]BalanceChange{
		"rPayer": {
			{Currency: "XRP", Value: dec("-0.000012")},
			{CounterParty: "rIssuer", Currency: "EUR", Value: dec("-25")},
		},
	}}

	deducted := tx.DeductedBalanceChanges("rPayer")
	require.Len(t, deducted, 1)
	assert.Equal(t, "EUR", deducted[0].Currency)
}

func TestBalanceChanges_NativePaymentKeepsXRP(t *testing.T) {
	tx := &Transaction{BalanceChanges: map[string][]BalanceChange{
		"rPayer":    {{Currency: "XRP", Value: dec("-10.000012")}},
		"rMerchant": {{Currency: "XRP", Value: dec("10")}},
	}}

	deducted := tx.DeductedBalanceChanges("rPayer")
	require.Len(t, deducted, 1)
	assert.Equal(t, "XRP", deducted[0].Currency)

	received := tx.ReceivedBalanceChanges("rMerchant")
	require.Len(t, received, 1)
	assert.True(t, received[0].Value.Equal(dec("10")))
}

func TestBalanceChanges_UnknownAccount(t *testing.T) {
	tx := &Transaction{BalanceChanges: map[string][]BalanceChange{}}
	assert.Empty(t, tx.DeductedBalanceChanges("rNobody"))
	assert.Empty(t, tx.ReceivedBalanceChanges("rNobody"))
}

func TestSumDeducted(t *testing.T) {
	tx := &Transaction{BalanceChanges: map[string][]BalanceChange{
		"rPayer": {
			{CounterParty: "rIssuer1", Currency: "EUR", Value: dec("-15.5")},
			{CounterParty: "rIssuer2", Currency: "EUR", Value: dec("-4.5")},
		},
	}}
	assert.True(t, tx.SumDeducted("rPayer").Equal(dec("20")))
}

func TestBalanceChange_SameAsset(t *testing.T) {
	xrp := BalanceChange{Currency: "XRP"}
	eur1 := BalanceChange{CounterParty: "rIssuer1", Currency: "EUR"}
	eur2 := BalanceChange{CounterParty: "rIssuer2", Currency: "EUR"}

	assert.True(t, xrp.SameAsset(BalanceChange{Currency: "XRP"}))
	assert.True(t, eur1.SameAsset(eur1))
	assert.False(t, eur1.SameAsset(eur2))
	assert.False(t, eur1.SameAsset(xrp))
}

func TestTransaction_Succeeded(t *testing.T) {
	tx := &Transaction{Transaction: []byte(`{"meta":{"TransactionResult":"tesSUCCESS"}}`)}
	assert.True(t, tx.Succeeded())

	result, ok := tx.Result()
	require.True(t, ok)
	assert.Equal(t, "tesSUCCESS", result)

	tx = &Transaction{Transaction: []byte(`{"meta":{"TransactionResult":"tecPATH_DRY"}}`)}
	assert.False(t, tx.Succeeded())

	tx = &Transaction{Transaction: []byte(`{"meta":{}}`)}
	assert.False(t, tx.Succeeded())
	_, ok = tx.Result()
	assert.False(t, ok)
}
