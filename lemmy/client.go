package lemmy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/carlmjohnson/versioninfo"
	"golang.org/x/time/rate"

	"github.com/lodestar-social/lodestar/util"
)

type RequestType int

const (
	Query = RequestType(iota)
	Procedure
	Update
)

// AuthInfo holds a login session token, as returned by the login endpoint.
type AuthInfo struct {
	Jwt string `json:"jwt"`
}

type Client struct {
	// Client is an HTTP client to use. If not set, defaults to util.RobustHTTPClient().
	Client    *http.Client
	Auth      *AuthInfo
	Host      string
	UserAgent *string
	Headers   map[string]string
	// Limiter, if set, is consulted before every outbound request.
	Limiter *rate.Limiter
}

func NewClient(host string) *Client {
	return &Client{Host: host}
}

func (c *Client) getClient() *http.Client {
	if c.Client == nil {
		return util.RobustHTTPClient()
	}
	return c.Client
}

// makeParams converts a map of string keys and any values into a URL-encoded string.
// If a value is a slice of strings, it will be joined with commas.
// Generally the values will be strings, numbers, or booleans.
func makeParams(p map[string]any) string {
	params := url.Values{}
	for k, v := range p {
		if s, ok := v.([]string); ok {
			for _, v := range s {
				params.Add(k, v)
			}
		} else {
			params.Add(k, fmt.Sprint(v))
		}
	}

	return params.Encode()
}

// Do issues a single API request against the configured host. "endpoint" is
// the path below /api/v3 (eg, "comment/report/resolve"). Query requests use
// GET with "params" encoded in the URL; Procedure and Update requests use
// POST and PUT with "bodyobj" JSON-encoded. A non-2xx status is decoded into
// an *Error with the server's error payload wrapped inside.
func (c *Client) Do(ctx context.Context, kind RequestType, endpoint string, params map[string]any, bodyobj any, out any) error {
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return err
		}
	}

	var body io.Reader
	if bodyobj != nil {
		b, err := json.Marshal(bodyobj)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	var m string
	switch kind {
	case Query:
		m = "GET"
	case Procedure:
		m = "POST"
	case Update:
		m = "PUT"
	default:
		return fmt.Errorf("unsupported request kind: %d", kind)
	}

	var paramStr string
	if len(params) > 0 {
		paramStr = "?" + makeParams(params)
	}

	uri := c.Host + "/api/v3/" + endpoint + paramStr

	req, err := http.NewRequest(m, uri, body)
	if err != nil {
		return err
	}

	if bodyobj != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.UserAgent != nil {
		req.Header.Set("User-Agent", *c.UserAgent)
	} else {
		req.Header.Set("User-Agent", "lodestar/"+versioninfo.Short())
	}

	for k, v := range c.Headers {
		req.Header.Set(k, v)
	}

	if c.Auth != nil {
		req.Header.Set("Authorization", "Bearer "+c.Auth.Jwt)
	}

	resp, err := c.getClient().Do(req.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var ae APIError
		if err := json.NewDecoder(resp.Body).Decode(&ae); err != nil {
			return errorFromHTTPResponse(resp, fmt.Errorf("failed to decode error message: %w", err))
		}
		return errorFromHTTPResponse(resp, &ae)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding API response: %w", err)
		}
	}

	return nil
}
