package xrpl

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type baseRequest struct {
	ID      string `json:"id"`
	Command string `json:"command"`
}

func newBaseRequest(command string) baseRequest {
	return baseRequest{
		ID:      uuid.New().String(),
		Command: command,
	}
}

// envelope is the common response framing: status is "success" or "error",
// result is decoded per command.
type envelope struct {
	ID     string          `json:"id"`
	Type   string          `json:"type"`
	Status string          `json:"status"`
	Error  string          `json:"error"`
	Result json.RawMessage `json:"result"`

	// path_find follow-up frames carry the body at the top level.
	FullReply    *bool             `json:"full_reply,omitempty"`
	Alternatives []pathAlternative `json:"alternatives,omitempty"`
}

func (e *envelope) Err() error {
	if e.Status == "error" {
		return &ProtocolError{Message: e.Error}
	}
	return nil
}

// ProtocolError is a status="error" reply from the ledger server.
type ProtocolError struct {
	Message string
}

func (e *ProtocolError) Error() string {
	return "xrpl: " + e.Message
}

type accountLinesRequest struct {
	baseRequest
	Account     string          `json:"account"`
	LedgerIndex string          `json:"ledger_index,omitempty"`
	Limit       int             `json:"limit,omitempty"`
	Marker      json.RawMessage `json:"marker,omitempty"`
}

type accountLinesResult struct {
	Account string          `json:"account"`
	Lines   []TrustLine     `json:"lines"`
	Marker  json.RawMessage `json:"marker"`
}

// TrustLine is one trust relationship of an account. Account is the
// counterparty issuer of the line.
type TrustLine struct {
	Account  string          `json:"account"`
	Currency string          `json:"currency"`
	Balance  decimal.Decimal `json:"balance"`
	Limit    decimal.Decimal `json:"limit"`
}

type pathFindRequest struct {
	baseRequest
	SubCommand         string      `json:"subcommand"`
	SourceAccount      string      `json:"source_account,omitempty"`
	DestinationAccount string      `json:"destination_account,omitempty"`
	DestinationAmount  interface{} `json:"destination_amount,omitempty"`
	SendMax            interface{} `json:"send_max,omitempty"`
}

type pathFindStatus struct {
	FullReply         bool              `json:"full_reply"`
	Alternatives      []pathAlternative `json:"alternatives"`
	DestinationAmount json.RawMessage   `json:"destination_amount"`
}

type pathAlternative struct {
	PathsComputed json.RawMessage `json:"paths_computed"`
	SourceAmount  json.RawMessage `json:"source_amount"`
}

// PathSpec is a usable path-find result: the routing field for a
// cross-currency payment plus the computed amounts.
type PathSpec struct {
	Paths             json.RawMessage
	SourceAmount      Amount
	DestinationAmount Amount
}
