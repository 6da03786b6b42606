package xrpl

import (
	"context"

	"encoding/json"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ListTrustLines enumerates all trust lines of an account, following the
// server continuation marker until exhausted. On failure it returns the
// pages collected so far together with the error; the caller decides
// whether a partial result is fatal.
func (c *Client) ListTrustLines(ctx context.Context, account string) ([]TrustLine, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	conn, err := c.dial(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	var lines []TrustLine
	var marker json.RawMessage
	for {
		req := &accountLinesRequest{
			baseRequest: newBaseRequest("account_lines"),
			Account:     account,
			LedgerIndex: "validated",
			Marker:      marker,
		}
		if err := c.send(conn, req); err != nil {
			return lines, err
		}
		env, err := c.read(conn)
		if err != nil {
			return lines, err
		}
		if err := env.Err(); err != nil {
			c.l.Warn("Failed to retrieve account lines.",
				zap.String("account", account),
				zap.Error(err),
			)
			return lines, err
		}

		var page accountLinesResult
		if err := json.Unmarshal(env.Result, &page); err != nil {
			return lines, errors.Wrap(err, "failed unmarshal account lines")
		}
		lines = append(lines, page.Lines...)

		if len(page.Marker) == 0 || string(page.Marker) == "null" {
			return lines, nil
		}
		marker = page.Marker
	}
}
