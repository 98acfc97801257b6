package grooveshark

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Invoke calls a remote method and returns the raw JSON response body.
//
// It handles:
// - Envelope construction with the current session token
// - Signing the exact body bytes with HMAC-MD5
// - Classifying the outcome as *TransportError, *ServerError or *DecodeError
//
// A service-level fault in a 200 response is not an error here; use
// DecodeResult to surface it.
func (c *Client) Invoke(ctx context.Context, method string, params Params) (json.RawMessage, error) {
	start := time.Now()
	status, body, err := c.invoke(ctx, method, params)

	if c.onCall != nil {
		c.onCall(CallInfo{
			Method:     method,
			StatusCode: status,
			Duration:   time.Since(start),
			Err:        err,
		})
	}
	if err != nil {
		c.logDebugf("grooveshark: %s failed: %v", method, err)
		return nil, err
	}

	c.logDebugf("grooveshark: %s succeeded", method)
	return body, nil
}

func (c *Client) invoke(ctx context.Context, method string, params Params) (int, json.RawMessage, error) {
	env := newEnvelope(method, params, c.apiKey, c.SessionID())
	payload, err := env.Marshal()
	if err != nil {
		return 0, nil, err
	}

	reqURL, err := c.signedURL(payload)
	if err != nil {
		return 0, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.logDebugf("grooveshark: calling %s", method)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, &TransportError{Method: method, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil, &ServerError{Method: method, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, &TransportError{Method: method, Err: err}
	}

	if !json.Valid(body) {
		return resp.StatusCode, nil, &DecodeError{Method: method, Err: errInvalidJSON(body)}
	}

	return resp.StatusCode, json.RawMessage(body), nil
}

// signedURL appends sig=<signature> to the endpoint, keeping any query
// the endpoint already carries.
func (c *Client) signedURL(payload []byte) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", c.baseURL, err)
	}
	q := u.Query()
	q.Set("sig", calculateSignature(c.apiKey, payload))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// errInvalidJSON returns the decoder's complaint about body.
func errInvalidJSON(body []byte) error {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return err
	}
	return errors.New("invalid JSON")
}
