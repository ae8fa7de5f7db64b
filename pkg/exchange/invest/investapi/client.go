package investapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/c9s/requestgen"
	"golang.org/x/time/rate"
)

const defaultHTTPTimeout = time.Second * 15

const ProductionBaseURL = "https://invest-public-api.tinkoff.ru/rest"

const SandboxBaseURL = "https://sandbox-invest-public-api.tinkoff.ru/rest"

const (
	ordersServicePath  = "tinkoff.public.invest.api.contract.v1.OrdersService"
	sandboxServicePath = "tinkoff.public.invest.api.contract.v1.SandboxService"
)

// DefaultLimit is the orders service quota, 100 requests per minute
var DefaultLimit = rate.Every(600 * time.Millisecond)

type RestClient struct {
	requestgen.BaseAPIClient

	token   string
	sandbox bool
	limiter *rate.Limiter
}

func NewClient(baseURL string) (*RestClient, error) {
	if baseURL == "" {
		baseURL = ProductionBaseURL
	}

	// keep the base path when resolving the service paths
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}

	return &RestClient{
		BaseAPIClient: requestgen.BaseAPIClient{
			BaseURL: u,
			HttpClient: &http.Client{
				Timeout: defaultHTTPTimeout,
			},
		},
		limiter: rate.NewLimiter(DefaultLimit, 1),
	}, nil
}

func (c *RestClient) Auth(token string) {
	// pragma: allowlist nextline secret
	c.token = token
}

// SetSandbox routes the order requests to the sandbox service.
func (c *RestClient) SetSandbox(sandbox bool) {
	c.sandbox = sandbox
}

// SetRateLimit sets the allowed requests per second, 0 disables the limit.
func (c *RestClient) SetRateLimit(rps float64) {
	if rps <= 0 {
		c.limiter = rate.NewLimiter(rate.Inf, 1)
		return
	}
	c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
}

// Limit returns the current request rate limit.
func (c *RestClient) Limit() rate.Limit {
	return c.limiter.Limit()
}

func (c *RestClient) methodPath(method string) string {
	service := ordersServicePath
	if c.sandbox {
		service = sandboxServicePath
		method = sandboxMethods[method]
	}
	return service + "/" + method
}

var sandboxMethods = map[string]string{
	"GetOrders":   "GetSandboxOrders",
	"PostOrder":   "PostSandboxOrder",
	"CancelOrder": "CancelSandboxOrder",
}

func (c *RestClient) NewAuthenticatedRequest(ctx context.Context, method, refURL string, params url.Values, payload interface{}) (*http.Request, error) {
	req, err := c.NewRequest(ctx, method, refURL, params, payload)
	if err != nil {
		return nil, err
	}

	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	req.Header.Add("Authorization", "Bearer "+c.token)

	return req, nil
}

// SendRequest waits for the rate limiter, sends the request and converts the
// error responses into *APIError.
func (c *RestClient) SendRequest(req *http.Request) (*requestgen.Response, error) {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return nil, fmt.Errorf("rate limiter wait error: %w", err)
	}

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	response, err := requestgen.NewResponse(resp)
	if err != nil {
		return response, err
	}

	if response.IsError() {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.Unmarshal(response.Body, apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = string(response.Body)
		}
		return response, apiErr
	}

	return response, nil
}

func (c *RestClient) call(ctx context.Context, method string, payload, out interface{}) error {
	req, err := c.NewAuthenticatedRequest(ctx, http.MethodPost, c.methodPath(method), nil, payload)
	if err != nil {
		return err
	}

	response, err := c.SendRequest(req)
	if err != nil {
		return err
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(response.Body, out); err != nil {
		return fmt.Errorf("%s: can not decode response: %w", method, err)
	}
	return nil
}
