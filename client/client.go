// Package client provides the minimal HTTP wrapper used to drive the API
// under test. It knows nothing about any particular resource type; resource
// clients are built on top of it.
package client

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/alessio/shellescape"

	"github.com/notesvc/notes-contract-tests/framework"
)

const defaultHealthEndpoint = "/health"

// APIClient issues GET/POST/PATCH/DELETE requests against a single base URL
// over a persistent connection. Request and response bodies are JSON. There
// are no retries, no auth, and no timeout beyond the http.Client defaults.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
	logger     framework.Logger
}

// New creates an APIClient for the given base URL. The logger receives one
// line per request; pass nil to discard.
func New(baseURL string, logger framework.Logger) *APIClient {
	if logger == nil {
		logger = framework.NullLogger()
	}
	return &APIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// SetLogger replaces the logger that requests are logged to; nil installs a
// discarding logger. The scenario runner uses this to capture each scenario's
// traffic separately.
func (c *APIClient) SetLogger(logger framework.Logger) {
	if logger == nil {
		logger = framework.NullLogger()
	}
	c.logger = logger
}

// BaseURL returns the normalized base URL the client was created with.
func (c *APIClient) BaseURL() string {
	return c.baseURL
}

// Get issues a GET request with optional query parameters.
func (c *APIClient) Get(path string, params url.Values) (framework.Response, error) {
	return c.do(http.MethodGet, path, params, nil)
}

// Post issues a POST request with a JSON body. A nil body sends no body.
func (c *APIClient) Post(path string, body interface{}) (framework.Response, error) {
	return c.do(http.MethodPost, path, nil, body)
}

// Patch issues a PATCH request with a JSON body.
func (c *APIClient) Patch(path string, body interface{}) (framework.Response, error) {
	return c.do(http.MethodPatch, path, nil, body)
}

// Delete issues a DELETE request.
func (c *APIClient) Delete(path string) (framework.Response, error) {
	return c.do(http.MethodDelete, path, nil, nil)
}

// HealthCheck queries the service's health endpoint. An empty endpoint
// defaults to "/health".
func (c *APIClient) HealthCheck(endpoint string) (framework.Response, error) {
	if endpoint == "" {
		endpoint = defaultHealthEndpoint
	}
	return c.Get(endpoint, nil)
}

func (c *APIClient) do(method, path string, params url.Values, jsonBody interface{}) (framework.Response, error) {
	requestURL := c.baseURL + path
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	var bodyData []byte
	var bodyReader io.Reader
	if jsonBody != nil {
		data, err := json.Marshal(jsonBody)
		if err != nil {
			return framework.Response{}, err
		}
		bodyData = data
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, requestURL, bodyReader)
	if err != nil {
		return framework.Response{}, err
	}
	if bodyData != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Printf("%s", curlCommand(method, requestURL, bodyData))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return framework.Response{}, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return framework.Response{}, err
	}

	c.logger.Printf("%s %s -> HTTP %d (%d bytes)", method, requestURL, resp.StatusCode, len(respBody))

	return framework.Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
	}, nil
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// curlCommand renders an equivalent curl invocation for the request, so a
// failure seen in debug output can be reproduced by hand.
func curlCommand(method, requestURL string, body []byte) string {
	var cmd commandBuilder
	cmd.add("curl", "-s", "-X", method, requestURL)
	if body != nil {
		cmd.add("-H", "Content-Type: application/json", "-d", string(body))
	}
	return cmd.String()
}
