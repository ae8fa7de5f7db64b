package httptesting

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockTransport(t *testing.T) {
	transport := &MockTransport{}
	transport.POST("/api/orders", func(req *http.Request) (*http.Response, error) {
		return BuildResponseJson(http.StatusOK, map[string]string{"orderId": "1"}), nil
	})

	client := transport.Client()

	resp, err := client.Post("https://example.test/api/orders", "application/json", strings.NewReader(`{"figi":"BBG004730N88"}`))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"orderId":"1"}`, string(body))
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	_, err = client.Get("https://example.test/api/orders")
	assert.Error(t, err)

	requests := transport.Requests()
	require.Len(t, requests, 2)

	var payload map[string]string
	require.NoError(t, DecodeRequestJson(requests[0], &payload))
	assert.Equal(t, "BBG004730N88", payload["figi"])
}

func TestMockWithJsonReply(t *testing.T) {
	client := MockWithJsonReply("/ping", `{"ok":true}`)

	resp, err := client.Get("https://example.test/ping")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
