package sync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/talentflow-app/talentflow/internal/common"
)

// do performs one backend call: apply the client's own chaos policy, send the
// request, then decode either the payload or the API's error envelope.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if err := c.policy.Wait(ctx); err != nil {
		return err
	}
	if c.policy.ShouldFail() {
		return fmt.Errorf("%w: injected client-side network failure", common.ErrUnavailable)
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	target := path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	// the host is a placeholder; the Doer decides where the request goes
	req, err := http.NewRequestWithContext(ctx, method, "http://talentflow"+target, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.doer.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}

	if resp.StatusCode >= 400 {
		return statusError(resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// statusError maps the API's status codes onto the shared sentinels, keeping
// the server's message for display.
func statusError(status int, body []byte) error {
	var envelope struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(body, &envelope)
	msg := envelope.Error
	if msg == "" {
		msg = http.StatusText(status)
	}

	switch status {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", common.ErrValidation, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", common.ErrNotFound, msg)
	default:
		return fmt.Errorf("%w: %s", common.ErrUnavailable, msg)
	}
}
