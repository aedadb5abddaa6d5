package authorizenet

import (
    "bytes"
    "context"
    "encoding/json"
    "fmt"
    "io"
    "net/http"
    "strings"
    "time"
)

const (
    SandboxEndpoint    = "https://apitest.authorize.net/xml/v1/request.api"
    ProductionEndpoint = "https://api.authorize.net/xml/v1/request.api"
    RequestTimeout     = 30 * time.Second

    // ResultOK is the request-level success result code.
    ResultOK = "Ok"
)

// Client is a thin JSON client for the Authorize.net API. One round trip
// per operation, no retries: a non-Ok result surfaces as a GatewayError
// and the caller decides what to do with it.
type Client struct {
    apiLoginID     string
    transactionKey string
    environment    string
    endpoint       string
    client         *http.Client
}

func NewClient(apiLoginID, transactionKey, environment string) *Client {
    transport := &http.Transport{
        MaxIdleConns:        100,
        MaxIdleConnsPerHost: 20,
        MaxConnsPerHost:     100,
        IdleConnTimeout:     90 * time.Second,
        TLSHandshakeTimeout: 10 * time.Second,
    }

    return &Client{
        apiLoginID:     apiLoginID,
        transactionKey: transactionKey,
        environment:    environment,
        client: &http.Client{
            Timeout:   RequestTimeout,
            Transport: transport,
        },
    }
}

// NewClientWithEndpoint builds a client pinned to an explicit URL instead
// of the environment-selected one.
func NewClientWithEndpoint(apiLoginID, transactionKey, endpoint string) *Client {
    c := NewClient(apiLoginID, transactionKey, "sandbox")
    c.endpoint = endpoint
    return c
}

// Endpoint returns the production URL only for the exact environment value
// "production"; anything else goes to the sandbox.
func (c *Client) Endpoint() string {
    if c.endpoint != "" {
        return c.endpoint
    }
    if c.environment == "production" {
        return ProductionEndpoint
    }
    return SandboxEndpoint
}

func (c *Client) merchantAuthentication() merchantAuthenticationType {
    return merchantAuthenticationType{
        Name:           c.apiLoginID,
        TransactionKey: c.transactionKey,
    }
}

// post marshals the request wrapper, performs one round trip, and decodes
// the response body into out. The gateway prefixes responses with a UTF-8
// BOM that must be stripped before decoding.
func (c *Client) post(ctx context.Context, payload, out interface{}) error {
    jsonPayload, err := json.Marshal(payload)
    if err != nil {
        return fmt.Errorf("error marshaling request: %v", err)
    }

    ctx, cancel := context.WithTimeout(ctx, RequestTimeout)
    defer cancel()

    httpReq, err := http.NewRequestWithContext(ctx, "POST", c.Endpoint(), bytes.NewBuffer(jsonPayload))
    if err != nil {
        return fmt.Errorf("error creating request: %v", err)
    }

    httpReq.Header.Set("Content-Type", "application/json")
    httpReq.Header.Set("Cache-Control", "no-cache")

    resp, err := c.client.Do(httpReq)
    if err != nil {
        return fmt.Errorf("error making request: %v", err)
    }
    defer resp.Body.Close()

    respBody, err := io.ReadAll(resp.Body)
    if err != nil {
        return fmt.Errorf("error reading response body: %v", err)
    }

    cleanBody := strings.TrimPrefix(string(respBody), "\ufeff")

    if err := json.Unmarshal([]byte(cleanBody), out); err != nil {
        return fmt.Errorf("error decoding response: %v, response body: %s", err, cleanBody)
    }

    return nil
}
