package auth

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// AuthorizationAPI is the external service that owns sessions. We forward the
// caller's headers, it answers with its own verdict; we trust it verbatim.
type AuthorizationAPI interface {
	Get(endpoint string, src *http.Request) (*http.Response, error)
	Post(endpoint string, body interface{}, src *http.Request) (*http.Response, error)
}

type Client struct {
	Address         string
	ApplicationCode string
	HTTPClient      *http.Client
}

func NewClient(address, applicationCode string) *Client {
	return &Client{
		Address:         address,
		ApplicationCode: applicationCode,
		HTTPClient:      &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) send(method, endpoint string, body interface{}, src *http.Request) (*http.Response, error) {
	var payload bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&payload).Encode(body); err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequest(method, fmt.Sprintf("http://%s/%s", c.Address, endpoint), &payload)
	if err != nil {
		return nil, err
	}
	// forward the caller's headers so the session can be matched
	for key, values := range src.Header {
		if key == "Content-Length" {
			continue
		}
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	req.Header.Set("application-code", c.ApplicationCode)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.HTTPClient.Do(req)
}

func (c *Client) Get(endpoint string, src *http.Request) (*http.Response, error) {
	return c.send(http.MethodGet, endpoint, nil, src)
}

func (c *Client) Post(endpoint string, body interface{}, src *http.Request) (*http.Response, error) {
	return c.send(http.MethodPost, endpoint, body, src)
}
