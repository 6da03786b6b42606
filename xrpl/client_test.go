package xrpl

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func newTestServer(t *testing.T, handle func(t *testing.T, conn *websocket.Conn)) *Client {
	t.Helper()
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		defer conn.Close()
		handle(t, conn)
	}))
	t.Cleanup(s.Close)

	return NewClient("ws" + strings.TrimPrefix(s.URL, "http"))
}

func readRequest(t *testing.T, conn *websocket.Conn, out interface{}) map[string]interface{} {
	t.Helper()
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	if out != nil {
		require.NoError(t, json.Unmarshal(data, out))
	}
	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	return raw
}

func writeReply(t *testing.T, conn *websocket.Conn, id string, result string) {
	t.Helper()
	msg := fmt.Sprintf(`{"id":%q,"type":"response","status":"success","result":%s}`, id, result)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(msg)))
}

func TestListTrustLines_FollowsMarker(t *testing.T) {
	c := newTestServer(t, func(t *testing.T, conn *websocket.Conn) {
		req := readRequest(t, conn, nil)
		assert.Equal(t, "account_lines", req["command"])
		assert.Nil(t, req["marker"])
		writeReply(t, conn, req["id"].(string),
			`{"account":"rMerchant","lines":[{"account":"rIssuer1","currency":"EUR","balance":"10","limit":"1000"}],"marker":"page2"}`)

		req = readRequest(t, conn, nil)
		assert.Equal(t, "page2", req["marker"])
		writeReply(t, conn, req["id"].(string),
			`{"account":"rMerchant","lines":[{"account":"rIssuer2","currency":"USD","balance":"0","limit":"500"}]}`)
	})

	lines, err := c.ListTrustLines(context.Background(), "rMerchant")
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "rIssuer1", lines[0].Account)
	assert.Equal(t, "EUR", lines[0].Currency)
	assert.Equal(t, "rIssuer2", lines[1].Account)
	assert.True(t, lines[1].Limit.Equal(decimal.NewFromInt(500)))
}

func TestListTrustLines_ProtocolErrorKeepsPartialResult(t *testing.T) {
	c := newTestServer(t, func(t *testing.T, conn *websocket.Conn) {
		req := readRequest(t, conn, nil)
		writeReply(t, conn, req["id"].(string),
			`{"account":"rMerchant","lines":[{"account":"rIssuer1","currency":"EUR","balance":"10","limit":"1000"}],"marker":"page2"}`)

		req = readRequest(t, conn, nil)
		msg := fmt.Sprintf(`{"id":%q,"type":"response","status":"error","error":"actNotFound"}`, req["id"].(string))
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(msg)))
	})

	lines, err := c.ListTrustLines(context.Background(), "rMerchant")
	require.Error(t, err)
	var perr *ProtocolError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "actNotFound", perr.Message)
	assert.Len(t, lines, 1, "partial result must survive the failure")
}

func TestListTrustLines_LargeRequestIsReassembled(t *testing.T) {
	// fragmented outbound frames must arrive as one logical message
	account := "r" + strings.Repeat("Q", 4000)
	c := newTestServer(t, func(t *testing.T, conn *websocket.Conn) {
		req := readRequest(t, conn, nil)
		assert.Equal(t, account, req["account"])
		writeReply(t, conn, req["id"].(string), `{"account":"x","lines":[]}`)
	})

	lines, err := c.ListTrustLines(context.Background(), account)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestFindPath_AcceptsFullReply(t *testing.T) {
	c := newTestServer(t, func(t *testing.T, conn *websocket.Conn) {
		req := readRequest(t, conn, nil)
		assert.Equal(t, "path_find", req["command"])
		assert.Equal(t, "create", req["subcommand"])
		assert.Equal(t, "-1", req["destination_amount"])

		// first suggestion is incomplete, the client must keep waiting
		writeReply(t, conn, req["id"].(string), `{"full_reply":false,"alternatives":[]}`)

		// asynchronous follow-up frame with the final answer
		frame := `{"type":"path_find","full_reply":true,"alternatives":[{` +
			`"paths_computed":[[{"currency":"EUR","issuer":"rIssuer1","type":48}]],` +
			`"source_amount":{"currency":"EUR","issuer":"rIssuer1","value":"25.5"}}]}`
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(frame)))

		req = readRequest(t, conn, nil)
		assert.Equal(t, "close", req["subcommand"])
	})

	spec, found, err := c.FindPath(context.Background(), "rMerchant", "rPayer",
		NewAmount(decimal.NewFromInt(10)),
		NewIssuedAmount("EUR", "rIssuer1", decimal.NewFromInt(30)))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "EUR", spec.SourceAmount.Currency)
	assert.True(t, spec.SourceAmount.Value.Equal(decimal.RequireFromString("25.5")))
	assert.NotEmpty(t, spec.Paths)
}

func TestFindPath_TimeoutMeansNoPath(t *testing.T) {
	c := newTestServer(t, func(t *testing.T, conn *websocket.Conn) {
		readRequest(t, conn, nil)
		// never answer; the client deadline has to elapse
		time.Sleep(500 * time.Millisecond)
	})
	c.SetTimeout(150 * time.Millisecond)

	spec, found, err := c.FindPath(context.Background(), "rMerchant", "rPayer",
		NewAmount(decimal.NewFromInt(10)), NewAmount(decimal.NewFromInt(12)))
	require.NoError(t, err, "an elapsed deadline is a negative result, not an error")
	assert.False(t, found)
	assert.Nil(t, spec)
}

func TestFindPath_FullReplyWithoutAlternatives(t *testing.T) {
	c := newTestServer(t, func(t *testing.T, conn *websocket.Conn) {
		req := readRequest(t, conn, nil)
		writeReply(t, conn, req["id"].(string), `{"full_reply":true,"alternatives":[]}`)
		readRequest(t, conn, nil) // close
	})

	_, found, err := c.FindPath(context.Background(), "rMerchant", "rPayer",
		NewAmount(decimal.NewFromInt(10)), NewAmount(decimal.NewFromInt(12)))
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAmount_JSON(t *testing.T) {
	native := NewAmount(decimal.RequireFromString("1.5"))
	b, err := json.Marshal(native)
	require.NoError(t, err)
	assert.Equal(t, `"1500000"`, string(b), "native amounts serialize as drops")

	issued := NewIssuedAmount("EUR", "rIssuer1", decimal.RequireFromString("9.99"))
	b, err = json.Marshal(issued)
	require.NoError(t, err)
	assert.JSONEq(t, `{"currency":"EUR","issuer":"rIssuer1","value":"9.99"}`, string(b))

	var back Amount
	require.NoError(t, json.Unmarshal([]byte(`"2000000"`), &back))
	assert.True(t, back.IsNative())
	assert.True(t, back.Value.Equal(decimal.NewFromInt(2)))

	require.NoError(t, json.Unmarshal([]byte(`{"currency":"EUR","issuer":"rIssuer1","value":"9.99"}`), &back))
	assert.False(t, back.IsNative())
	assert.True(t, back.SameAsset(issued))
}
