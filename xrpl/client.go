// Package xrpl implements the two ledger operations the payment flow
// needs: trust-line enumeration and payment path-finding. Each operation
// is its own connect/send/receive/close websocket session.
package xrpl

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	// DefaultCluster is the public full-history cluster endpoint.
	DefaultCluster = "wss://xrplcluster.com"

	// DefaultTimeout bounds a whole operation, including the path-find
	// negotiation loop.
	DefaultTimeout = 30 * time.Second

	// chunkSize is the transmit frame size; outbound messages are split
	// into chunkSize fragments with only the final fragment marked as
	// end-of-message.
	chunkSize = 1024
)

type Client struct {
	endpoint string
	timeout  time.Duration
	dialer   *websocket.Dialer
	l        *zap.Logger
}

func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultCluster
	}
	return &Client{
		endpoint: endpoint,
		timeout:  DefaultTimeout,
		dialer: &websocket.Dialer{
			HandshakeTimeout: 10 * time.Second,
			ReadBufferSize:   chunkSize,
			WriteBufferSize:  chunkSize,
		},
		l: zap.L().Named("xrpl_socket"),
	}
}

// SetTimeout overrides the per-operation deadline.
func (c *Client) SetTimeout(d time.Duration) {
	c.timeout = d
}

func (c *Client) dial(ctx context.Context) (*websocket.Conn, error) {
	conn, _, err := c.dialer.DialContext(ctx, c.endpoint, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed dial %s", c.endpoint)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetReadDeadline(deadline)
		_ = conn.SetWriteDeadline(deadline)
	}
	return conn, nil
}

// send marshals req and writes it in chunkSize fragments.
func (c *Client) send(conn *websocket.Conn, req interface{}) error {
	payload, err := json.Marshal(req)
	if err != nil {
		return errors.Wrap(err, "failed marshal request")
	}

	w, err := conn.NextWriter(websocket.TextMessage)
	if err != nil {
		return errors.Wrap(err, "failed open message writer")
	}
	for off := 0; off < len(payload); off += chunkSize {
		end := off + chunkSize
		if end > len(payload) {
			end = len(payload)
		}
		if _, err := w.Write(payload[off:end]); err != nil {
			return errors.Wrap(err, "failed write message chunk")
		}
	}
	if err := w.Close(); err != nil {
		return errors.Wrap(err, "failed finish message")
	}
	return nil
}

// read receives one complete message, reassembled across fragments, and
// decodes the response envelope.
func (c *Client) read(conn *websocket.Conn) (*envelope, error) {
	_, data, err := conn.ReadMessage()
	if err != nil {
		return nil, errors.Wrap(err, "failed read message")
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, errors.Wrap(err, "failed unmarshal response envelope")
	}
	return &env, nil
}
