package httptesting

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

func BuildResponseString(code int, payload string) *http.Response {
	return &http.Response{
		StatusCode: code,
		Status:     http.StatusText(code),
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(payload)),
	}
}

// BuildResponseJson encodes the data as the response body, strings and
// byte slices are sent as they are.
func BuildResponseJson(code int, data interface{}) *http.Response {
	var payload []byte
	switch v := data.(type) {
	case string:
		payload = []byte(v)
	case []byte:
		payload = v
	default:
		var err error
		payload, err = json.Marshal(data)
		if err != nil {
			payload = []byte(`{"message": "mock response marshal error"}`)
			code = http.StatusInternalServerError
		}
	}

	resp := &http.Response{
		StatusCode: code,
		Status:     http.StatusText(code),
		Header:     http.Header{},
		Body:       io.NopCloser(bytes.NewReader(payload)),
	}
	SetHeader(resp, "Content-Type", "application/json")
	return resp
}

func SetHeader(resp *http.Response, name, value string) {
	resp.Header.Set(name, value)
}

// DecodeRequestJson reads the json body of a captured request into v.
func DecodeRequestJson(req *http.Request, v interface{}) error {
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return err
		}
		defer body.Close()
		return json.NewDecoder(body).Decode(v)
	}

	return json.NewDecoder(req.Body).Decode(v)
}
