// Copyright 2026 Stock Parfait

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/stockparfait/errors"
	"github.com/stockparfait/fetch"
)

type contextKey int

const (
	clientContextKey contextKey = iota
)

// Default address of the ActiveTick Feed HTTP server.
const (
	DefaultHost = "127.0.0.1"
	DefaultPort = 5000
)

// Sentinel is the single-line page content meaning "no data in this window".
const Sentinel = "0"

// Page is the raw content of one response, one element per line.
type Page []string

// NewPage splits a response body into lines. Trailing carriage returns are
// stripped, and the final newline does not create an empty line.
func NewPage(body string) Page {
	if body == "" {
		return Page{}
	}
	lines := strings.Split(strings.TrimSuffix(body, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return Page(lines)
}

// IsSentinel checks whether the page is the explicit "no data" marker.
func (p Page) IsSentinel() bool {
	return len(p) == 1 && p[0] == Sentinel
}

// Fetcher executes a single query and returns the raw page.
type Fetcher interface {
	FetchPage(ctx context.Context, q Query) (Page, error)
}

// Client for the ActiveTick Feed HTTP server.
type Client struct {
	baseURL string // e.g. http://127.0.0.1:5000
}

var _ Fetcher = &Client{}

// NewClient creates a client for the server at the base URL.
func NewClient(baseURL string) *Client {
	return &Client{baseURL: strings.TrimSuffix(baseURL, "/")}
}

// NewClientForAddress creates a client for the server at host:port.
func NewClientForAddress(host string, port int) *Client {
	return NewClient(fmt.Sprintf("http://%s:%d", host, port))
}

// BaseURL of the server.
func (c *Client) BaseURL() string { return c.baseURL }

// GetClient extracts the Client from the context, if any.
func GetClient(ctx context.Context) *Client {
	c, ok := ctx.Value(clientContextKey).(*Client)
	if !ok {
		return nil
	}
	return c
}

// UseClient injects the client into the context.
func UseClient(ctx context.Context, c *Client) context.Context {
	return context.WithValue(ctx, clientContextKey, c)
}

// FetchPage implements Fetcher. Requests are not retried: any transport error
// or non-200 status is returned to the caller.
func (c *Client) FetchPage(ctx context.Context, q Query) (Page, error) {
	uri := c.baseURL + q.Path()
	resp, err := fetch.Get(ctx, uri, q.Values())
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		return nil, errors.Annotate(err, "failed to fetch %s", QueryString(q))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Reason("%s returned status %d", QueryString(q),
			resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Annotate(err, "failed to read response body")
	}
	return NewPage(string(body)), nil
}
