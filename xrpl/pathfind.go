package xrpl

import (
	"context"
	"encoding/json"
	"net"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// FindPath negotiates a payment route delivering destAmount's asset to the
// destination account while spending at most sendMax. It issues a
// path_find create request and consumes the follow-up frames the server
// streams as it reconsiders the current ledger, until a frame is marked
// full_reply and carries a usable alternative. The operation deadline
// elapsing is a normal "no path" outcome, not an error. found=false with a
// nil error means no path exists.
func (c *Client) FindPath(ctx context.Context, source, destination string, destAmount, sendMax Amount) (*PathSpec, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	conn, err := c.dial(ctx)
	if err != nil {
		return nil, false, err
	}
	defer conn.Close()

	create := &pathFindRequest{
		baseRequest:        newBaseRequest("path_find"),
		SubCommand:         "create",
		SourceAccount:      source,
		DestinationAccount: destination,
		DestinationAmount:  openEndedAmount(destAmount),
		SendMax:            sendMax,
	}
	if err := c.send(conn, create); err != nil {
		return nil, false, err
	}

	for {
		env, err := c.read(conn)
		if err != nil {
			if isTimeout(err) || ctx.Err() != nil {
				c.closePathFind(conn)
				return nil, false, nil
			}
			return nil, false, err
		}

		var st pathFindStatus
		switch env.Type {
		case "response":
			if err := env.Err(); err != nil {
				return nil, false, err
			}
			if err := json.Unmarshal(env.Result, &st); err != nil {
				return nil, false, errors.Wrap(err, "failed unmarshal path_find result")
			}
		case "path_find":
			if env.FullReply != nil {
				st.FullReply = *env.FullReply
			}
			st.Alternatives = env.Alternatives
		default:
			continue
		}

		if !st.FullReply {
			continue
		}
		spec, ok := st.pick()
		c.closePathFind(conn)
		if !ok {
			return nil, false, nil
		}
		return spec, true, nil
	}
}

// pick selects the first alternative carrying both a computed path set and
// a resolvable source amount.
func (st *pathFindStatus) pick() (*PathSpec, bool) {
	for _, alt := range st.Alternatives {
		if len(alt.PathsComputed) == 0 || string(alt.PathsComputed) == "null" {
			continue
		}
		var src Amount
		if err := json.Unmarshal(alt.SourceAmount, &src); err != nil {
			continue
		}
		spec := &PathSpec{
			Paths:        alt.PathsComputed,
			SourceAmount: src,
		}
		if len(st.DestinationAmount) != 0 {
			// best effort, the destination amount echo is informational
			_ = json.Unmarshal(st.DestinationAmount, &spec.DestinationAmount)
		}
		return spec, true
	}
	return nil, false
}

// closePathFind tells the server to stop streaming suggestions. Best
// effort: the session is discarded right after.
func (c *Client) closePathFind(conn *websocket.Conn) {
	_ = conn.SetWriteDeadline(time.Now().Add(time.Second))
	req := &pathFindRequest{
		baseRequest: newBaseRequest("path_find"),
		SubCommand:  "close",
	}
	if err := c.send(conn, req); err != nil {
		c.l.Debug("Failed to close path_find session.", zap.Error(err))
	}
}

// openEndedAmount asks the server to compute the maximum deliverable
// value of the given asset.
func openEndedAmount(a Amount) interface{} {
	if a.IsNative() {
		return "-1"
	}
	return issuedAmount{
		Currency: a.Currency,
		Issuer:   a.Issuer,
		Value:    "-1",
	}
}

func isTimeout(err error) bool {
	var ne net.Error
	if errors.As(err, &ne) {
		return ne.Timeout()
	}
	return false
}
