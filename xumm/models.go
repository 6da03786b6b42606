package xumm

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Transaction types appearing in sign-requests.
const (
	TxTypePayment  = "Payment"
	TxTypeTrustSet = "TrustSet"
	TxTypeSignIn   = "SignIn"
)

// successResultPrefix marks a validated ledger transaction ("tesSUCCESS" and friends).
const successResultPrefix = "tes"

type Pong struct {
	Pong bool `json:"pong"`
}

// CreatePayloadRequest is the body of a sign-request submission.
type CreatePayloadRequest struct {
	TxJSON     json.RawMessage    `json:"txjson"`
	Options    *PayloadOptions    `json:"options,omitempty"`
	CustomMeta *PayloadCustomMeta `json:"custom_meta,omitempty"`
}

type PayloadOptions struct {
	ReturnURL *PayloadReturnURL `json:"return_url,omitempty"`
}

type PayloadReturnURL struct {
	Web string `json:"web,omitempty"`
}

type PayloadCustomMeta struct {
	Identifier  string `json:"identifier,omitempty"`
	Instruction string `json:"instruction,omitempty"`
}

// CreatedPayload is the submission acknowledgement carrying the
// wallet-facing sign URL.
type CreatedPayload struct {
	UUID string `json:"uuid"`
	Next struct {
		Always string `json:"always"`
	} `json:"next"`
}

// Payload is a previously submitted sign-request with its current
// resolution flags.
type Payload struct {
	Meta     PayloadMeta     `json:"meta"`
	Payload  PayloadRequest  `json:"payload"`
	Response PayloadResponse `json:"response"`
}

type PayloadMeta struct {
	UUID      string `json:"uuid"`
	Resolved  bool   `json:"resolved"`
	Signed    bool   `json:"signed"`
	Cancelled bool   `json:"cancelled"`
	Expired   bool   `json:"expired"`
}

type PayloadRequest struct {
	TxType      string          `json:"tx_type"`
	RequestJSON json.RawMessage `json:"request_json"`
}

type PayloadResponse struct {
	Account string `json:"account"`
	Txid    string `json:"txid"`
}

// WebhookBody is the notification POSTed by the signing network when a
// sign-request resolves.
type WebhookBody struct {
	Meta struct {
		PayloadUUID string `json:"payload_uuidv4"`
	} `json:"meta"`
	CustomMeta struct {
		Identifier string `json:"identifier"`
	} `json:"custom_meta"`
}

// Transaction is a settled ledger transaction as reported by the
// signing network, with per-account balance changes precomputed.
type Transaction struct {
	Txid           string                     `json:"txid"`
	Transaction    json.RawMessage            `json:"transaction"`
	BalanceChanges map[string][]BalanceChange `json:"balance_changes"`
}

type BalanceChange struct {
	CounterParty string          `json:"counterparty"`
	Currency     string          `json:"currency"`
	Value        decimal.Decimal `json:"value"`
}

// Result extracts meta.TransactionResult from the raw transaction blob.
func (t *Transaction) Result() (string, bool) {
	var tx struct {
		Meta struct {
			TransactionResult string `json:"TransactionResult"`
		} `json:"meta"`
	}
	if err := json.Unmarshal(t.Transaction, &tx); err != nil || tx.Meta.TransactionResult == "" {
		return "", false
	}
	return tx.Meta.TransactionResult, true
}

// Succeeded reports whether the transaction was applied to a validated
// ledger with a success result code.
func (t *Transaction) Succeeded() bool {
	result, ok := t.Result()
	if !ok {
		return false
	}
	return len(result) >= len(successResultPrefix) && result[:len(successResultPrefix)] == successResultPrefix
}
