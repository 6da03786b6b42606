package xrpl

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const XRP = "XRP"

var dropsPerXRP = decimal.New(1, 6)

// Amount is a ledger currency amount. The native asset is serialized as an
// integer drops string, issued currencies as a currency/issuer/value object.
type Amount struct {
	Currency string
	Issuer   string
	Value    decimal.Decimal
}

func NewAmount(value decimal.Decimal) Amount {
	return Amount{Currency: XRP, Value: value}
}

func NewIssuedAmount(currency, issuer string, value decimal.Decimal) Amount {
	return Amount{Currency: currency, Issuer: issuer, Value: value}
}

func (a Amount) IsNative() bool {
	return a.Issuer == "" && (a.Currency == "" || a.Currency == XRP)
}

// SameAsset reports whether two amounts denominate the same asset,
// ignoring their values.
func (a Amount) SameAsset(b Amount) bool {
	if a.IsNative() || b.IsNative() {
		return a.IsNative() && b.IsNative()
	}
	return a.Currency == b.Currency && a.Issuer == b.Issuer
}

// Drops renders the native value as an integer drops string.
func (a Amount) Drops() string {
	return a.Value.Mul(dropsPerXRP).Truncate(0).String()
}

type issuedAmount struct {
	Currency string `json:"currency"`
	Issuer   string `json:"issuer"`
	Value    string `json:"value"`
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if a.IsNative() {
		return json.Marshal(a.Drops())
	}
	return json.Marshal(issuedAmount{
		Currency: a.Currency,
		Issuer:   a.Issuer,
		Value:    a.Value.String(),
	})
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	var drops string
	if err := json.Unmarshal(data, &drops); err == nil {
		v, err := decimal.NewFromString(drops)
		if err != nil {
			return errors.Wrapf(err, "failed parse drops amount %q", drops)
		}
		*a = Amount{Currency: XRP, Value: v.Div(dropsPerXRP)}
		return nil
	}

	var ia issuedAmount
	if err := json.Unmarshal(data, &ia); err != nil {
		return errors.Wrap(err, "failed parse currency amount")
	}
	v, err := decimal.NewFromString(ia.Value)
	if err != nil {
		return errors.Wrapf(err, "failed parse currency amount value %q", ia.Value)
	}
	*a = Amount{Currency: ia.Currency, Issuer: ia.Issuer, Value: v}
	return nil
}
